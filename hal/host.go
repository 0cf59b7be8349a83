package hal

import "go.uber.org/zap"

// HostConfig sizes the host framebuffer and supplies the logger.
type HostConfig struct {
	Width  int
	Height int
	Logger *zap.Logger
}

type hostHAL struct {
	log *zap.Logger
	fb  *hostFramebuffer
	ptr *hostPointer
}

// New returns a host HAL implementation.
func New(cfg HostConfig) HAL {
	return newHostHAL(cfg)
}

func newHostHAL(cfg HostConfig) *hostHAL {
	if cfg.Width <= 0 {
		cfg.Width = 320
	}
	if cfg.Height <= 0 {
		cfg.Height = 320
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &hostHAL{
		log: log,
		fb:  newHostFramebuffer(cfg.Width, cfg.Height),
		ptr: &hostPointer{},
	}
}

func (h *hostHAL) Logger() *zap.Logger { return h.log }
func (h *hostHAL) Display() Display    { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input        { return hostInput{ptr: h.ptr} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	ptr *hostPointer
}

func (in hostInput) Pointer() Pointer { return in.ptr }

type hostPointer struct {
	st PointerState
}

func (p *hostPointer) State() PointerState { return p.st }

func (p *hostPointer) set(st PointerState) { p.st = st }
