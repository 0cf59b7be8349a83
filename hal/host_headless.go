package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Host  HostConfig
	Hz    int
	Ticks uint64

	// Script is replayed as one pointer sample per tick. The last sample
	// holds once the script runs out.
	Script []PointerState
}

// RunHeadless runs the editor without opening a window.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, newApp func(HAL) (func() error, error)) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHostHAL(cfg.Host)
	step, err := newApp(h)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if tick < uint64(len(cfg.Script)) {
				h.ptr.set(cfg.Script[tick])
			}
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
