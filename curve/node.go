package curve

const none = -1

// Node is one element of a Chain.
//
// Neighbours are arena indices into the owning chain, so a node never holds
// a reference that could keep another node alive.
type Node struct {
	Point Point

	owner *Chain
	index int
	prev  int
	next  int
}

func newNode(owner *Chain, index int, p Point) *Node {
	return &Node{Point: p, owner: owner, index: index, prev: none, next: none}
}

// Index is the node's position in append order.
func (n *Node) Index() int { return n.index }

// Prev returns the previous node, or nil for the head. A node not created
// by Append has no neighbours.
func (n *Node) Prev() *Node {
	if n.owner == nil {
		return nil
	}
	return n.owner.at(n.prev)
}

// Next returns the next node, or nil for the tail.
func (n *Node) Next() *Node {
	if n.owner == nil {
		return nil
	}
	return n.owner.at(n.next)
}
