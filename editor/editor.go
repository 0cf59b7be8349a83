// Package editor is the interaction and presentation layer around a
// curve.Chain: pointer gestures in, framebuffer pixels out.
package editor

import (
	"go.uber.org/zap"

	"curvedit/curve"
	"curvedit/hal"
)

// Editor feeds pointer samples into the drag protocol for one chain.
type Editor struct {
	chain  *curve.Chain
	radius float64
	log    *zap.Logger

	cur     Cursor
	hovered []*curve.Node
}

func New(ch *curve.Chain, radius float64, log *zap.Logger) *Editor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Editor{chain: ch, radius: radius, log: log}
}

func (e *Editor) Chain() *curve.Chain { return e.chain }
func (e *Editor) Cursor() Cursor      { return e.cur }
func (e *Editor) Radius() float64     { return e.radius }

// Hovered returns the handles under the cursor after the last sample.
func (e *Editor) Hovered() []*curve.Node { return e.hovered }

// HandlePointer applies one polled sample as press, move and release
// transitions in that order. A move only fires when the position changed.
// It returns the number of handles moved.
func (e *Editor) HandlePointer(st hal.PointerState) int {
	pos := curve.Pt(float64(st.X), float64(st.Y))

	if st.Pressed && !e.cur.Pressed {
		e.cur.Press(pos)
		e.log.Debug("press", zap.Float64("x", pos.X), zap.Float64("y", pos.Y))
	}

	moved := 0
	if pos != e.cur.Pos {
		from := e.cur.Origin
		moved = e.cur.MoveTo(e.chain, pos, e.radius)
		if moved > 0 {
			e.log.Debug("drag",
				zap.Int("handles", moved),
				zap.Float64("dx", pos.X-from.X),
				zap.Float64("dy", pos.Y-from.Y),
			)
		}
	}

	if !st.Pressed && e.cur.Pressed {
		e.cur.Release()
		e.log.Debug("release", zap.Any("curve", e.chain.Points()))
	}

	e.hovered = HitNodes(e.chain, pos, e.radius)
	return moved
}
