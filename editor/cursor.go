package editor

import "curvedit/curve"

// Cursor is the pointer as the drag protocol sees it.
type Cursor struct {
	Pos     curve.Point
	Origin  curve.Point
	Pressed bool
}

// Press starts a gesture at p.
func (c *Cursor) Press(p curve.Point) {
	c.Pos = p
	c.Origin = p
	c.Pressed = true
}

func (c *Cursor) Release() { c.Pressed = false }

// MoveTo records the new cursor position. While pressed, every handle within
// radius of p is moved by the distance travelled since the origin, visiting
// nodes head to tail. Each move clamps against the neighbours as they are at
// that moment, so overlapping handles give order-dependent results.
//
// The origin only advances when a handle moved. It returns the number of
// handles moved.
func (c *Cursor) MoveTo(ch *curve.Chain, p curve.Point, radius float64) int {
	c.Pos = p
	if !c.Pressed {
		return 0
	}

	delta := p.Sub(c.Origin)
	moved := 0
	for n := range ch.All() {
		if !Hit(p, n.Point, radius) {
			continue
		}
		ch.Move(n, delta)
		moved++
	}
	if moved > 0 {
		c.Origin = p
	}
	return moved
}

// Hit reports whether p lies inside or on the circle of radius r around center.
func Hit(p, center curve.Point, r float64) bool {
	return p.DistSq(center) <= r*r
}

// HitNodes returns the nodes whose handles contain p, head to tail.
func HitNodes(ch *curve.Chain, p curve.Point, radius float64) []*curve.Node {
	var out []*curve.Node
	for n := range ch.All() {
		if Hit(p, n.Point, radius) {
			out = append(out, n)
		}
	}
	return out
}
