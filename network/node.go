package network

// Node is one skill placed in its category column
// Position is fixed at layout; Size and Opacity ease toward their targets every frame
type Node struct {
	Name          string
	Category      string
	CategoryIndex int
	Proficiency   float64 // 0.5-1.0, cosmetic
	X, Y          float64 // Canvas px
	BaseSize      float64

	Size    float64
	Opacity float64
}

// Edge connects a node to one in the next category, by node index
type Edge struct {
	From, To int
}

// Tooltip is the floating label payload, position in display px relative to the widget
type Tooltip struct {
	Visible bool
	Text    string
	X, Y    float64
}

// NoNode marks the absence of a hovered node
const NoNode = -1

// State is the network simulation and interaction state
type State struct {
	Nodes []Node
	Edges []Edge

	Hovered          int    // Node index under the pointer or NoNode
	ExternalCategory string // Hover from outside the widget, e.g. a legend row
	SelectedCategory string
	PointerX         float64 // Last pointer in canvas px
	PointerY         float64
	Time             float64 // Wobble clock
	Tooltip          Tooltip
}

// NewState wraps a layout with empty interaction state
func NewState(nodes []Node, edges []Edge) *State {
	return &State{Nodes: nodes, Edges: edges, Hovered: NoNode}
}

// ResetInteraction clears hover, selection and tooltip
func (s *State) ResetInteraction() {
	s.Hovered = NoNode
	s.ExternalCategory = ""
	s.SelectedCategory = ""
	s.PointerX, s.PointerY = 0, 0
	s.Tooltip = Tooltip{}
}

// HoveredNode returns the hovered node or nil
func (s *State) HoveredNode() *Node {
	if s.Hovered < 0 || s.Hovered >= len(s.Nodes) {
		return nil
	}
	return &s.Nodes[s.Hovered]
}

// ActiveCategory is the hovered node's category, else the external hover, else the selection
func (s *State) ActiveCategory() string {
	if n := s.HoveredNode(); n != nil {
		return n.Category
	}
	if s.ExternalCategory != "" {
		return s.ExternalCategory
	}
	return s.SelectedCategory
}
