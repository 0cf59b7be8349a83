// Package curve holds the ordered control-point chain behind the editor.
//
// Points are kept monotone: x never decreases and y never increases from head
// to tail. Append trusts its caller to seed points in that order; Move keeps
// the order by clamping the moved point against its neighbours.
package curve

import "iter"

// Chain is an append-only sequence of nodes. It owns every node it creates.
//
// A Chain is not safe for concurrent use.
type Chain struct {
	nodes []*Node
	head  int
	tail  int
}

// New returns a chain seeded with points in order.
func New(points ...Point) *Chain {
	c := &Chain{head: none, tail: none}
	for _, p := range points {
		c.Append(p)
	}
	return c
}

func (c *Chain) at(i int) *Node {
	if i < 0 || i >= len(c.nodes) {
		return nil
	}
	return c.nodes[i]
}

// Append links a new node holding p after the current tail.
// Ordering is not checked.
func (c *Chain) Append(p Point) *Node {
	if len(c.nodes) == 0 {
		c.head, c.tail = none, none
	}
	n := newNode(c, len(c.nodes), p)
	c.nodes = append(c.nodes, n)
	if c.tail == none {
		c.head = n.index
		c.tail = n.index
		return n
	}
	n.prev = c.tail
	c.nodes[c.tail].next = n.index
	c.tail = n.index
	return n
}

// Head returns the first node, or nil if the chain is empty.
func (c *Chain) Head() *Node { return c.at(c.head) }

// Tail returns the last node, or nil if the chain is empty.
func (c *Chain) Tail() *Node { return c.at(c.tail) }

func (c *Chain) Len() int { return len(c.nodes) }

// All yields nodes from head to tail. Each range over the result starts a
// fresh traversal.
func (c *Chain) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for n := c.Head(); n != nil; n = n.Next() {
			if !yield(n) {
				return
			}
		}
	}
}

// Points returns a copy of the node coordinates in chain order.
func (c *Chain) Points() []Point {
	out := make([]Point, 0, len(c.nodes))
	for n := range c.All() {
		out = append(out, n.Point)
	}
	return out
}

// Monotone reports whether x is non-decreasing and y non-increasing along
// the chain. A NaN coordinate anywhere next to a neighbour fails.
func (c *Chain) Monotone() bool {
	for n := range c.All() {
		next := n.Next()
		if next == nil {
			break
		}
		if !(n.Point.X <= next.Point.X) || !(n.Point.Y >= next.Point.Y) {
			return false
		}
	}
	return true
}

// Move displaces n by delta, then clamps it so it does not cross its
// neighbours: no further left or higher than the previous node, no further
// right or lower than the next one. The head and tail are free on the side
// without a neighbour.
//
// n must belong to c; anything else panics.
func (c *Chain) Move(n *Node, delta Point) {
	if n == nil || n.owner != c {
		panic("curve: Move on a node from another chain")
	}

	p := n.Point.Add(delta)
	if prev := n.Prev(); prev != nil {
		if p.X < prev.Point.X {
			p.X = prev.Point.X
		}
		if p.Y > prev.Point.Y {
			p.Y = prev.Point.Y
		}
	}
	if next := n.Next(); next != nil {
		if p.X > next.Point.X {
			p.X = next.Point.X
		}
		if p.Y < next.Point.Y {
			p.Y = next.Point.Y
		}
	}
	n.Point = p
}
