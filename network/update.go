package network

// Targets returns the size and opacity a node eases toward
func Targets(cfg *Config, s *State, i int, active string) (size, opacity float64) {
	n := &s.Nodes[i]
	switch {
	case i == s.Hovered:
		return n.BaseSize + cfg.HoverGrow, cfg.HoverAlpha
	case active != "" && n.Category == active:
		return n.BaseSize + cfg.ActiveGrow, cfg.ActiveAlpha
	default:
		return n.BaseSize, cfg.BaseAlpha
	}
}

// Update eases every node one frame toward its targets and advances the wobble clock
func Update(cfg *Config, s *State) {
	s.Time += cfg.TimeStep
	active := s.ActiveCategory()
	for i := range s.Nodes {
		size, opacity := Targets(cfg, s, i, active)
		n := &s.Nodes[i]
		n.Size += (size - n.Size) * cfg.Easing
		n.Opacity += (opacity - n.Opacity) * cfg.Easing
	}
}
