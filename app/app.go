package app

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"curvedit/config"
	"curvedit/curve"
	"curvedit/editor"
	"curvedit/hal"
)

// App is one editor session bound to a HAL.
type App struct {
	log *zap.Logger
	ptr hal.Pointer
	ed  *editor.Editor
	r   *editor.Renderer

	frames uint64
}

// New seeds the curve from cfg and prepares the editor.
func New(h hal.HAL, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := h.Logger()
	if log == nil {
		log = zap.NewNop()
	}

	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return nil, fmt.Errorf("display: %w", hal.ErrNotImplemented)
	}
	fb := disp.Framebuffer()
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, errors.New("display: unsupported pixel format")
	}

	var ptr hal.Pointer
	if in := h.Input(); in != nil {
		ptr = in.Pointer()
	}
	if ptr == nil {
		log.Warn("no pointer device; curve is read-only")
	}

	ch := cfg.Curve()
	a := &App{
		log: log,
		ptr: ptr,
		ed:  editor.New(ch, cfg.HandleRadius, log.Named("editor")),
		r:   editor.NewRenderer(fb, cfg.Chart),
	}
	log.Info("curve ready",
		zap.Int("handles", ch.Len()),
		zap.Int("width", fb.Width()),
		zap.Int("height", fb.Height()),
	)
	return a, nil
}

// Factory adapts New to the HAL runners.
func Factory(cfg config.Config, started func(*App)) func(hal.HAL) (func() error, error) {
	return func(h hal.HAL) (func() error, error) {
		a, err := New(h, cfg)
		if err != nil {
			return nil, err
		}
		if started != nil {
			started(a)
		}
		return a.Step, nil
	}
}

// Step runs one frame: pointer sample, drag protocol, redraw.
func (a *App) Step() error {
	if a.ptr != nil {
		a.ed.HandlePointer(a.ptr.State())
	}
	if err := a.r.Render(a.ed.Chain(), a.ed.Radius(), a.ed.Hovered()); err != nil {
		return fmt.Errorf("render frame %d: %w", a.frames, err)
	}
	a.frames++
	return nil
}

func (a *App) Curve() *curve.Chain { return a.ed.Chain() }

func (a *App) Frames() uint64 { return a.frames }
