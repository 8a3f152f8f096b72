package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/lixenwraith/folio-fx/content"
	"github.com/lixenwraith/folio-fx/palette"
	"github.com/spf13/cobra"
)

var (
	headerColor = color.New(color.FgHiCyan, color.Bold)
	subtleColor = color.New(color.FgHiBlack)
	warnColor   = color.New(color.FgYellow)
)

func newSkillsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "skills",
		Short: "List skill categories with their resolved colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cats, err := opts.load(cmd)
			if err != nil {
				return err
			}
			names := content.Names(cats)
			table := palette.Build(names, cfg.Theme)
			printSkills(cmd.OutOrStdout(), cats, table, table.Validate(names))
			return nil
		},
	}
}

// printSkills writes one block per category: swatch, name, count, theme variable and source
func printSkills(w io.Writer, cats []content.SkillCategory, table *palette.Table, problems error) {
	headerColor.Fprintf(w, "%d categories, %d skills\n\n", len(cats), content.Total(cats))

	for i, cat := range cats {
		style := table.Style(cat.Category)
		swatch := color.RGB(int(style.RGB.R), int(style.RGB.G), int(style.RGB.B))

		fmt.Fprintf(w, "%d %s %s %s\n", i+1, swatch.Sprint("●"), cat.Category, subtleColor.Sprintf("(%d)", len(cat.Skills)))
		subtleColor.Fprintf(w, "  --%s  %s  %s\n", palette.VarName(cat.Category), style.Color, style.Source)
		if len(cat.Skills) == 0 {
			warnColor.Fprintln(w, "  no skills, column left empty")
		}
		for _, s := range cat.Skills {
			fmt.Fprintf(w, "  - %s\n", s)
		}
		fmt.Fprintln(w)
	}

	if problems != nil {
		warnColor.Fprintf(w, "style table: %v\n", problems)
	}
}
