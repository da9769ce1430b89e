package document

// Scene is an ordered list of root nodes.
type Scene struct {
	Name       string
	Extras     any
	Extensions any

	Nodes []*Node
}

// AddNode appends n to s's node list and returns it.
func (s *Scene) AddNode(n *Node) *Node {
	s.Nodes = append(s.Nodes, n)
	return n
}
