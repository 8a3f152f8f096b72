package content

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrNoCategories is returned when a source yields no usable category
var ErrNoCategories = errors.New("content: no skill categories")

// skillFileExt is the extension of discoverable skill files
const skillFileExt = ".toml"

// Manager handles discovery and loading of skill files
type Manager struct {
	skillFiles []string
}

// NewManager creates a new content manager
func NewManager() *Manager {
	return &Manager{}
}

// Discover scans dir for .toml files in name order, skipping hidden files
// A missing directory is not an error, it yields no files
func (m *Manager) Discover(dir string) error {
	m.skillFiles = m.skillFiles[:0]

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Skills directory '%s' does not exist, no files discovered", dir)
			return nil
		}
		return fmt.Errorf("content: read skills directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			log.Printf("Skipping hidden file: %s", name)
			continue
		}
		if filepath.Ext(name) == skillFileExt {
			m.skillFiles = append(m.skillFiles, filepath.Join(dir, name))
		}
	}
	sort.Strings(m.skillFiles)

	log.Printf("Discovered %d skill file(s) in %s", len(m.skillFiles), dir)
	return nil
}

// Files returns the discovered skill files
func (m *Manager) Files() []string {
	return m.skillFiles
}

// LoadFile decodes one skills file, unknown keys are rejected
func (m *Manager) LoadFile(path string) ([]SkillCategory, error) {
	var f skillFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("content: decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("content: %s: unknown keys %v", path, undecoded)
	}
	return normalize(f.Categories), nil
}

// LoadAll loads every discovered file, merging categories of the same name in file order
func (m *Manager) LoadAll() ([]SkillCategory, error) {
	var merged []SkillCategory
	index := make(map[string]int)

	for _, path := range m.skillFiles {
		cats, err := m.LoadFile(path)
		if err != nil {
			return nil, err
		}
		for _, c := range cats {
			if i, ok := index[c.Category]; ok {
				merged[i].Skills = append(merged[i].Skills, c.Skills...)
				continue
			}
			index[c.Category] = len(merged)
			merged = append(merged, c)
		}
	}

	if len(merged) == 0 {
		return nil, ErrNoCategories
	}
	return merged, nil
}

// Resolve loads categories from a file or directory path, the built-in list when path is empty
func (m *Manager) Resolve(path string) ([]SkillCategory, error) {
	if path == "" {
		return Default(), nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}

	if info.IsDir() {
		if err := m.Discover(path); err != nil {
			return nil, err
		}
		return m.LoadAll()
	}

	cats, err := m.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if len(cats) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoCategories, path)
	}
	return cats, nil
}

// normalize trims names and drops blank skills and unnamed categories
// Categories left with no skills are kept, the layout skips them
func normalize(cats []SkillCategory) []SkillCategory {
	out := cats[:0]
	for _, c := range cats {
		c.Category = strings.TrimSpace(c.Category)
		if c.Category == "" {
			continue
		}
		skills := c.Skills[:0]
		for _, s := range c.Skills {
			if s = strings.TrimSpace(s); s != "" {
				skills = append(skills, s)
			}
		}
		c.Skills = skills
		out = append(out, c)
	}
	return out
}
