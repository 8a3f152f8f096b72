package content

var defaultSkills = []SkillCategory{
	{
		Category: "Languages",
		Skills:   []string{"Python", "Java", "C", "JavaScript", "SQL", "HTML", "CSS"},
	},
	{
		Category: "Web & Backend",
		Skills:   []string{"React", "Node.js", "REST APIs", "Chrome Extensions", "Responsive Design"},
	},
	{
		Category: "AI & Data",
		Skills:   []string{"Machine Learning", "Computer Vision", "CNNs", "Vision Transformers", "Transfer Learning", "Data Analytics", "SPSS"},
	},
	{
		Category: "Tools & Workflow",
		Skills:   []string{"Git", "VS Code", "Jupyter", "Statistical Analysis", "Research Methods", "Agile"},
	},
}

// Default returns a copy of the built-in skill list
func Default() []SkillCategory {
	return Clone(defaultSkills)
}
