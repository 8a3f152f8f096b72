package render

import "github.com/lixenwraith/folio-fx/terminal"

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
)

// boxChars contains box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
}

const (
	boxTL = iota
	boxH
	boxTR
	boxV
	boxBL
	boxBR
)

// Box draws a border on the edge cells of r, backgrounds taken from the pixels underneath
func (b *RenderBuffer) Box(r Rect, line LineType, fg RGB) {
	if r.W < 2 || r.H < 2 {
		return
	}
	if int(line) >= len(boxChars) {
		line = LineSingle
	}
	chars := boxChars[line]
	right, bottom := r.X+r.W-1, r.Y+r.H-1

	b.label(r.X, r.Y, chars[boxTL], fg)
	b.label(right, r.Y, chars[boxTR], fg)
	b.label(r.X, bottom, chars[boxBL], fg)
	b.label(right, bottom, chars[boxBR], fg)
	for x := r.X + 1; x < right; x++ {
		b.label(x, r.Y, chars[boxH], fg)
		b.label(x, bottom, chars[boxH], fg)
	}
	for y := r.Y + 1; y < bottom; y++ {
		b.label(r.X, y, chars[boxV], fg)
		b.label(right, y, chars[boxV], fg)
	}
}

// Title writes a label into the top border of r, clipped to its inner width
func (b *RenderBuffer) Title(r Rect, title string, fg RGB) {
	inner := r.W - 4
	if inner <= 0 || title == "" {
		return
	}
	runes := []rune(title)
	if len(runes) > inner {
		runes = runes[:inner]
	}
	b.SetLabel(r.X+2, r.Y, string(runes), fg, terminal.AttrBold)
}

func (b *RenderBuffer) label(x, y int, r rune, fg RGB) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.text[y*b.width+x] = textCell{r: r, fg: fg, set: true, clear: true}
}
