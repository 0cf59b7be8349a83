//go:build cgo

package hal

import "github.com/hajimehoshi/ebiten/v2"

// poll samples the ebiten cursor. Coordinates are already in framebuffer
// pixels because the window layout is the framebuffer size.
func (p *hostPointer) poll() {
	x, y := ebiten.CursorPosition()
	p.st = PointerState{
		X:       x,
		Y:       y,
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}
