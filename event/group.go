package event

// Group tracks the subscriptions of one component so they detach together
type Group struct {
	bus  *Bus
	subs []Subscription
}

// NewGroup creates an empty group bound to a bus
func NewGroup(bus *Bus) *Group {
	return &Group{bus: bus}
}

// On subscribes a handler and records it in the group
func (g *Group) On(t Type, h Handler) {
	if g.bus == nil {
		return
	}
	g.subs = append(g.subs, g.bus.Subscribe(t, h))
}

// DetachAll unsubscribes every recorded handler
func (g *Group) DetachAll() {
	if g.bus != nil {
		for _, s := range g.subs {
			g.bus.Unsubscribe(s)
		}
	}
	g.subs = g.subs[:0]
}

// Len returns the number of live subscriptions
func (g *Group) Len() int {
	return len(g.subs)
}
