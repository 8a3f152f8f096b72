package network

import (
	"math"
)

// Nearest returns the closest node by Euclidean distance, NoNode and +Inf when empty
func Nearest(nodes []Node, x, y float64) (int, float64) {
	best, dist := NoNode, math.Inf(1)
	for i := range nodes {
		d := math.Hypot(nodes[i].X-x, nodes[i].Y-y)
		if d < dist {
			best, dist = i, d
		}
	}
	return best, dist
}

// Pick returns the nearest node strictly within radius, NoNode otherwise
func Pick(nodes []Node, x, y, radius float64) int {
	i, d := Nearest(nodes, x, y)
	if i == NoNode || d >= radius {
		return NoNode
	}
	return i
}

// ToggleCategory returns the selection after clicking a node of category cat
// Clicking the selected category clears it, any other category replaces it
func ToggleCategory(selected, cat string) string {
	if selected == cat {
		return ""
	}
	return cat
}

// Hover updates hover and tooltip for a pointer at canvas (cx, cy) and display-local (lx, ly)
// Returns true when the hovered node changed
func Hover(cfg *Config, s *State, cx, cy, lx, ly float64) bool {
	s.PointerX, s.PointerY = cx, cy
	prev := s.Hovered

	i := Pick(s.Nodes, cx, cy, cfg.PickRadius)
	s.Hovered = i
	if i == NoNode {
		s.Tooltip = Tooltip{}
	} else {
		s.Tooltip = Tooltip{
			Visible: true,
			Text:    s.Nodes[i].Name,
			X:       lx + cfg.TooltipOffset,
			Y:       ly + cfg.TooltipOffset,
		}
	}
	return prev != i
}

// ClearHover drops hover and tooltip, true if something was hovered
func ClearHover(s *State) bool {
	had := s.Hovered != NoNode
	s.Hovered = NoNode
	s.Tooltip = Tooltip{}
	return had
}
