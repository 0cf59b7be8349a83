package app

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"curvedit/config"
	"curvedit/curve"
	"curvedit/hal"
)

func TestHeadlessDrag(t *testing.T) {
	script, err := hal.ParseScript("120,100;120,100,down;125,100,down;130,100,down;130,100,up")
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}

	var a *App
	cfg := config.Default()
	err = hal.RunHeadless(context.Background(), hal.HeadlessConfig{
		Host:   hal.HostConfig{Width: cfg.Window.Width, Height: cfg.Window.Height, Logger: zaptest.NewLogger(t)},
		Hz:     1000,
		Ticks:  6,
		Script: script,
	}, Factory(cfg, func(started *App) { a = started }))
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if a == nil {
		t.Fatal("started callback not called")
	}
	if a.Frames() != 6 {
		t.Fatalf("Frames() = %d, want 6", a.Frames())
	}

	got := a.Curve().Points()
	want := []curve.Point{curve.Pt(60, 100), curve.Pt(130, 100), curve.Pt(180, 100), curve.Pt(240, 100)}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Curve()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Points = []config.Point{{X: 100, Y: 10}, {X: 50, Y: 5}}
	h := hal.New(hal.HostConfig{})
	if _, err := New(h, cfg); !errors.Is(err, config.ErrUnorderedPoints) {
		t.Fatalf("New err = %v, want ErrUnorderedPoints", err)
	}
}

type noDisplayHAL struct{}

func (noDisplayHAL) Logger() *zap.Logger  { return nil }
func (noDisplayHAL) Display() hal.Display { return nil }
func (noDisplayHAL) Input() hal.Input     { return nil }

func TestNewWithoutDisplay(t *testing.T) {
	if _, err := New(noDisplayHAL{}, config.Default()); !errors.Is(err, hal.ErrNotImplemented) {
		t.Fatalf("New err = %v, want ErrNotImplemented", err)
	}
}
