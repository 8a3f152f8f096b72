package trail

// Update advances every particle one frame and removes the expired
// Reverse iteration keeps removal safe and preserves order of survivors
func Update(cfg *Config, s *State) {
	ps := s.Particles
	for i := len(ps) - 1; i >= 0; i-- {
		p := &ps[i]
		p.X += p.VX
		p.Y += p.VY
		p.VX *= cfg.Damping
		p.VY *= cfg.Damping
		p.Life -= cfg.LifeDecay
		if p.Life <= 0 {
			ps = append(ps[:i], ps[i+1:]...)
		}
	}
	s.Particles = ps
}
