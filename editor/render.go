package editor

import (
	"fmt"
	"image/color"
	"math"

	"curvedit/config"
	"curvedit/curve"
	"curvedit/hal"

	"tinygo.org/x/tinyfont"
)

var (
	colorBG     = color.RGBA{R: 0x0f, G: 0x0f, B: 0x0f, A: 0xff}
	colorGrid   = color.RGBA{R: 0x2a, G: 0x2a, B: 0x2a, A: 0xff}
	colorText   = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	colorCurve  = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	colorHandle = color.RGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff}
	colorRing   = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	colorHover  = color.RGBA{R: 0xff, G: 0xdd, B: 0x66, A: 0xff}
)

const (
	labelPad = 2
	// fontAscent is the TomThumb cap height above the baseline.
	fontAscent = 5
)

// Renderer draws the chart, the curve and its handles into a framebuffer.
type Renderer struct {
	d     *fbDisplay
	chart config.Chart
	font  tinyfont.Fonter
}

func NewRenderer(fb hal.Framebuffer, chart config.Chart) *Renderer {
	return &Renderer{d: newFBDisplay(fb), chart: chart, font: &tinyfont.TomThumb}
}

// Render redraws the whole frame and presents it.
func (r *Renderer) Render(ch *curve.Chain, radius float64, hovered []*curve.Node) error {
	w, h := r.d.Size()
	if w <= 0 || h <= 0 {
		return nil
	}

	r.d.clear(colorBG)
	r.drawGrid(float64(w), float64(h))
	r.drawLabels(w, h)
	r.drawCurve(ch, float64(w), float64(h))
	r.drawHandles(ch, radius, hovered)
	return r.d.Display()
}

func (r *Renderer) drawGrid(w, h float64) {
	xStep := w / float64(r.chart.XDivs)
	yStep := h / float64(r.chart.YDivs)
	for i := 0; i <= r.chart.XDivs; i++ {
		x := math.Min(float64(i)*xStep, w-1)
		r.d.line(x, 0, x, h-1, colorGrid)
	}
	for j := 0; j <= r.chart.YDivs; j++ {
		y := math.Min(float64(j)*yStep, h-1)
		r.d.line(0, y, w-1, y, colorGrid)
	}
}

func (r *Renderer) drawLabels(w, h int16) {
	xStep := float64(w) / float64(r.chart.XDivs)
	yStep := float64(h) / float64(r.chart.YDivs)

	for i := 0; i <= r.chart.XDivs; i++ {
		v := float64(i) * r.chart.XMax / float64(r.chart.XDivs)
		s := fmtAxis(v) + r.chart.XUnit
		_, tw := tinyfont.LineWidth(r.font, s)
		x := labelX(int(float64(i)*xStep), int(tw), int(w))
		tinyfont.WriteLine(r.d, r.font, x, h-labelPad, s, colorText)
	}

	for j := 0; j <= r.chart.YDivs; j++ {
		v := r.chart.YMax - float64(j)*r.chart.YMax/float64(r.chart.YDivs)
		s := fmtAxis(v) + r.chart.YUnit
		base := int16(float64(j)*yStep) + fontAscent/2
		base = int16(clampInt(int(base), fontAscent+labelPad, int(h)-labelPad))
		tinyfont.WriteLine(r.d, r.font, labelPad*2, base, s, colorText)
	}
}

// drawCurve joins consecutive handles, runs from the bottom-left corner up
// and across to the head, and from the tail to the top-right corner.
func (r *Renderer) drawCurve(ch *curve.Chain, w, h float64) {
	for n := range ch.All() {
		next := n.Next()
		if next == nil {
			break
		}
		r.d.thickLine(n.Point.X, n.Point.Y, next.Point.X, next.Point.Y, colorCurve)
	}

	if head := ch.Head(); head != nil {
		p := head.Point
		r.d.thickLine(0, h, 0, p.Y, colorCurve)
		r.d.thickLine(0, p.Y, p.X, p.Y, colorCurve)
	}
	if tail := ch.Tail(); tail != nil {
		p := tail.Point
		r.d.thickLine(p.X, p.Y, w, 0, colorCurve)
	}
}

func (r *Renderer) drawHandles(ch *curve.Chain, radius float64, hovered []*curve.Node) {
	for n := range ch.All() {
		ring := colorRing
		for _, hn := range hovered {
			if hn == n {
				ring = colorHover
				break
			}
		}
		r.d.disc(n.Point.X, n.Point.Y, radius, colorHandle, ring)
	}
}

// labelX centres a label of width tw on x, keeping it on screen. Labels wider
// than the framebuffer start at the left edge.
func labelX(x, tw, w int) int16 {
	return int16(clampInt(x-tw/2, 0, max(w-tw, 0)))
}

func fmtAxis(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	if math.Abs(v) < 1e-9 {
		return "0"
	}
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
