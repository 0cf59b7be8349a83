package editor

import (
	"image/color"

	"curvedit/hal"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*fbDisplay)(nil)

// fbDisplay exposes an RGB565 framebuffer as a tinygo display so tinyfont
// can draw into it.
type fbDisplay struct {
	fb hal.Framebuffer
}

func newFBDisplay(fb hal.Framebuffer) *fbDisplay {
	return &fbDisplay{fb: fb}
}

func (d *fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.setPixel(int(x), int(y), c)
}

func (d *fbDisplay) setPixel(x, y int, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}
	if x < 0 || x >= d.fb.Width() || y < 0 || y >= d.fb.Height() {
		return
	}

	pixel := hal.RGB565(c.R, c.G, c.B)
	off := y*d.fb.StrideBytes() + x*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *fbDisplay) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

func (d *fbDisplay) clear(c color.RGBA) {
	if d.fb != nil {
		d.fb.ClearRGB(c.R, c.G, c.B)
	}
}

// line draws a Bresenham line clipped to the framebuffer.
func (d *fbDisplay) line(x0, y0, x1, y1 float64, c color.RGBA) {
	w, h := d.Size()
	if w <= 0 || h <= 0 {
		return
	}
	cx0, cy0, cx1, cy1, ok := clipLineToRect(x0, y0, x1, y1, 0, 0, float64(w-1), float64(h-1))
	if !ok {
		return
	}

	ix0, iy0 := roundInt(cx0), roundInt(cy0)
	ix1, iy1 := roundInt(cx1), roundInt(cy1)
	dx := absInt(ix1 - ix0)
	dy := -absInt(iy1 - iy0)
	sx := -1
	if ix0 < ix1 {
		sx = 1
	}
	sy := -1
	if iy0 < iy1 {
		sy = 1
	}
	err := dx + dy
	for {
		d.setPixel(ix0, iy0, c)
		if ix0 == ix1 && iy0 == iy1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			ix0 += sx
		}
		if e2 <= dx {
			err += dx
			iy0 += sy
		}
	}
}

// thickLine draws line with an extra pixel row and column beside it.
func (d *fbDisplay) thickLine(x0, y0, x1, y1 float64, c color.RGBA) {
	d.line(x0, y0, x1, y1, c)
	d.line(x0+1, y0, x1+1, y1, c)
	d.line(x0, y0+1, x1, y1+1, c)
}

// disc fills a circle and draws a one pixel outline around it.
func (d *fbDisplay) disc(cx, cy, r float64, fill, outline color.RGBA) {
	if r <= 0 {
		return
	}
	w, h := d.Size()
	x0 := clampInt(roundInt(cx-r)-1, 0, int(w))
	x1 := clampInt(roundInt(cx+r)+1, 0, int(w))
	y0 := clampInt(roundInt(cy-r)-1, 0, int(h))
	y1 := clampInt(roundInt(cy+r)+1, 0, int(h))

	inner := (r - 1) * (r - 1)
	outer := r * r
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			dd := dx*dx + dy*dy
			switch {
			case dd <= inner:
				d.setPixel(x, y, fill)
			case dd <= outer:
				d.setPixel(x, y, outline)
			}
		}
	}
}

func clipLineToRect(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	dx := x1 - x0
	dy := y1 - y0
	u1 := 0.0
	u2 := 1.0

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - xmin, xmax - x0, y0 - ymin, ymax - y0}
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > u2 {
				return 0, 0, 0, 0, false
			}
			if t > u1 {
				u1 = t
			}
		} else {
			if t < u1 {
				return 0, 0, 0, 0, false
			}
			if t < u2 {
				u2 = t
			}
		}
	}

	cx0 = clampFloat(x0+u1*dx, xmin, xmax)
	cy0 = clampFloat(y0+u1*dy, ymin, ymax)
	cx1 = clampFloat(x0+u2*dx, xmin, xmax)
	cy1 = clampFloat(y0+u2*dy, ymin, ymax)
	return cx0, cy0, cx1, cy1, true
}

func roundInt(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
