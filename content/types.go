package content

// SkillCategory is one column of the skill network: a category name and its ordered skills
type SkillCategory struct {
	Category string   `toml:"name"`
	Skills   []string `toml:"skills"`
}

// skillFile is the on-disk layout of a skills file
//
//	[[category]]
//	name = "Languages"
//	skills = ["Go", "SQL"]
type skillFile struct {
	Categories []SkillCategory `toml:"category"`
}

// Names returns category names in order
func Names(cats []SkillCategory) []string {
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.Category
	}
	return names
}

// Counts returns the number of skills per category name
func Counts(cats []SkillCategory) map[string]int {
	counts := make(map[string]int, len(cats))
	for _, c := range cats {
		counts[c.Category] += len(c.Skills)
	}
	return counts
}

// Total returns the number of skills across all categories
func Total(cats []SkillCategory) int {
	n := 0
	for _, c := range cats {
		n += len(c.Skills)
	}
	return n
}

// Clone deep-copies categories so callers can mutate the result
func Clone(cats []SkillCategory) []SkillCategory {
	out := make([]SkillCategory, len(cats))
	for i, c := range cats {
		out[i] = SkillCategory{Category: c.Category, Skills: append([]string(nil), c.Skills...)}
	}
	return out
}
