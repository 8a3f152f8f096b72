package palette

import (
	"errors"
	"testing"

	"github.com/lixenwraith/folio-fx/parameter/visual"
	"github.com/lixenwraith/folio-fx/render"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Languages", "languages"},
		{"Web & Backend", "web-backend"},
		{"AI & Data", "ai-data"},
		{"  Tools & Workflow!! ", "tools-workflow"},
		{"C++/C#", "c-c"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if got := VarName("Web & Backend"); got != "cat-web-backend" {
		t.Errorf("Unexpected var name %q", got)
	}
}

// TestBuildFallbackCycles verifies unthemed categories cycle the fallback palette by index
func TestBuildFallbackCycles(t *testing.T) {
	cats := []string{"a", "b", "c", "d", "e"}
	table := Build(cats, nil)

	for i, name := range cats {
		want := visual.FallbackPalette[i%len(visual.FallbackPalette)]
		if got := table.Color(name); got != want {
			t.Errorf("%s: expected %s, got %s", name, want, got)
		}
		if table.Style(name).Source != SourceFallback {
			t.Errorf("%s: expected fallback source", name)
		}
	}
}

// TestBuildThemeOverrides verifies theme variables win, with or without leading dashes
func TestBuildThemeOverrides(t *testing.T) {
	theme := map[string]string{
		"--cat-languages": " hsl(10 80% 50%) ",
		"cat-ai-data":     "hsl(150 60% 40%)",
		"cat-tools":       "",
	}
	table := Build([]string{"Languages", "AI & Data", "Tools"}, theme)

	if s := table.Style("Languages"); s.Color != "hsl(10 80% 50%)" || s.Source != SourceTheme {
		t.Errorf("Unexpected Languages style %+v", s)
	}
	if s := table.Style("AI & Data"); s.Color != "hsl(150 60% 40%)" || s.Source != SourceTheme {
		t.Errorf("Unexpected AI & Data style %+v", s)
	}
	// Blank variable falls through to the palette at its index
	if s := table.Style("Tools"); s.Color != visual.FallbackPalette[2] {
		t.Errorf("Expected fallback for blank variable, got %+v", s)
	}
}

// TestUnknownKeyDefault verifies lookups outside the table get the documented default
func TestUnknownKeyDefault(t *testing.T) {
	table := Build([]string{"A"}, nil)
	s := table.Style("nope")
	if s.Color != visual.HSLDefault || s.Source != SourceDefault {
		t.Errorf("Unexpected default style %+v", s)
	}
	if table.Has("nope") {
		t.Error("Has should be false for unknown key")
	}
}

// TestValidate verifies coverage gaps and malformed colors are both reported
func TestValidate(t *testing.T) {
	table := Build([]string{"A", "B"}, map[string]string{"cat-b": "purple"})

	if err := table.Validate([]string{"A", "B"}); !errors.Is(err, ErrMalformed) {
		t.Errorf("Expected ErrMalformed, got %v", err)
	}
	if s := table.Style("B"); s.RGB != render.RGBWhite {
		t.Errorf("Expected malformed color to resolve white, got %v", s.RGB)
	}

	err := table.Validate([]string{"A", "C"})
	if !errors.Is(err, ErrUncovered) {
		t.Errorf("Expected ErrUncovered, got %v", err)
	}

	clean := Build([]string{"A", "B"}, nil)
	if err := clean.Validate([]string{"A", "B"}); err != nil {
		t.Errorf("Expected valid table, got %v", err)
	}
}

func TestDuplicateCategoryKeepsFirst(t *testing.T) {
	table := Build([]string{"A", "A", "B"}, nil)
	if got := table.Categories(); len(got) != 2 {
		t.Errorf("Expected 2 categories, got %v", got)
	}
	if table.Color("B") != visual.FallbackPalette[2] {
		t.Errorf("Expected B to keep its positional palette entry, got %s", table.Color("B"))
	}
}
