// Package palette maps category names to their display colors
package palette

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/lixenwraith/folio-fx/parameter/visual"
	"github.com/lixenwraith/folio-fx/render"
)

var (
	// ErrUncovered is reported for a category missing from the table
	ErrUncovered = errors.New("palette: category has no style")
	// ErrMalformed is reported for a color that does not parse as hsl()
	ErrMalformed = errors.New("palette: malformed color")
)

// Source records where a style came from
type Source uint8

const (
	SourceDefault  Source = iota // Unknown key, visual.HSLDefault
	SourceTheme                  // Theme variable cat-<slug>
	SourceFallback               // Fallback palette cycled by index
)

func (s Source) String() string {
	switch s {
	case SourceTheme:
		return "theme"
	case SourceFallback:
		return "fallback"
	default:
		return "default"
	}
}

// Style is the resolved color record of one category
type Style struct {
	Color  string     // hsl() string as configured
	RGB    render.RGB // Resolved, white when Color is malformed
	Source Source
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases and collapses runs of non-alphanumerics into single dashes
func Slugify(s string) string {
	return strings.Trim(slugPattern.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

// VarName returns the theme variable consulted for a category
func VarName(category string) string {
	return visual.ThemeVarPrefix + Slugify(category)
}

// Table is the explicit category to style mapping, built once at mount
type Table struct {
	styles map[string]Style
	order  []string
	def    Style
}

func newStyle(color string, src Source) Style {
	return Style{Color: color, RGB: render.ColorOf(color), Source: src}
}

// Build resolves a style for each category: theme variable when set, else the fallback palette by index
// Theme keys may be given with or without the leading "--"
func Build(categories []string, theme map[string]string) *Table {
	vars := make(map[string]string, len(theme))
	for k, v := range theme {
		vars[strings.TrimPrefix(k, "--")] = strings.TrimSpace(v)
	}

	t := &Table{
		styles: make(map[string]Style, len(categories)),
		def:    newStyle(visual.HSLDefault, SourceDefault),
	}
	for i, name := range categories {
		if _, dup := t.styles[name]; dup {
			continue
		}
		t.order = append(t.order, name)
		if v := vars[VarName(name)]; v != "" {
			t.styles[name] = newStyle(v, SourceTheme)
			continue
		}
		fb := visual.FallbackPalette[i%len(visual.FallbackPalette)]
		t.styles[name] = newStyle(fb, SourceFallback)
	}
	return t
}

// Style returns the category's style, the default style for unknown keys
func (t *Table) Style(category string) Style {
	if s, ok := t.styles[category]; ok {
		return s
	}
	return t.def
}

// Color returns the category's hsl() string
func (t *Table) Color(category string) string {
	return t.Style(category).Color
}

// Has reports whether the category has an explicit style
func (t *Table) Has(category string) bool {
	_, ok := t.styles[category]
	return ok
}

// Categories returns styled categories in build order
func (t *Table) Categories() []string {
	return t.order
}

// Validate checks coverage of every expected category and that every color parses
// Malformed colors still render, as white
func (t *Table) Validate(expected []string) error {
	var errs []error
	for _, name := range expected {
		if !t.Has(name) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUncovered, name))
		}
	}
	for _, name := range t.order {
		s := t.styles[name]
		if _, ok := render.ParseHSL(s.Color); !ok {
			errs = append(errs, fmt.Errorf("%w: %q for %q (%s)", ErrMalformed, s.Color, name, s.Source))
		}
	}
	return errors.Join(errs...)
}
