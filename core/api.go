package core

// Flags returns the construction-time capabilities of g.
func (g *Graph) Flags() Flags {
	return g.flags
}
