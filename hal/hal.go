package hal

import (
	"errors"

	"go.uber.org/zap"
)

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp little-endian: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// PointerState is one sample of the primary pointer in framebuffer pixels.
type PointerState struct {
	X       int
	Y       int
	Pressed bool
}

// Pointer is polled once per frame.
type Pointer interface {
	State() PointerState
}

// Input provides access to input devices (if available).
type Input interface {
	Pointer() Pointer
}

// HAL is the only contact point between the editor and the outside world.
type HAL interface {
	Logger() *zap.Logger
	Display() Display
	Input() Input
}
