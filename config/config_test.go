package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"curvedit/curve"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
	if len(cfg.Points) != 4 {
		t.Fatalf("len(Points) = %d, want 4", len(cfg.Points))
	}
	if cfg.Chart.XDivs != 10 || cfg.Chart.YDivs != 5 {
		t.Fatalf("divs = %dx%d, want 10x5", cfg.Chart.XDivs, cfg.Chart.YDivs)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if cfg.HandleRadius != Default().HandleRadius {
		t.Fatalf("HandleRadius = %v, want default", cfg.HandleRadius)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "curve.yaml")
	data := `
chart:
  x_unit: "F"
  x_max: 212
handle_radius: 6
points:
  - {x: 10, y: 300}
  - {x: 200, y: 20}
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Chart.XUnit != "F" || cfg.Chart.XMax != 212 {
		t.Fatalf("Chart = %+v, want overlaid unit and max", cfg.Chart)
	}
	if cfg.Chart.YUnit != "%" || cfg.Chart.XDivs != 10 {
		t.Fatalf("Chart = %+v, want untouched fields kept", cfg.Chart)
	}
	if cfg.Window.Width != 320 {
		t.Fatalf("Window.Width = %d, want default 320", cfg.Window.Width)
	}
	if cfg.HandleRadius != 6 {
		t.Fatalf("HandleRadius = %v, want 6", cfg.HandleRadius)
	}

	got := cfg.Curve().Points()
	want := []curve.Point{curve.Pt(10, 300), curve.Pt(200, 20)}
	if len(got) != len(want) {
		t.Fatalf("Curve() has %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Curve()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load(missing) err = %v, want os.ErrNotExist", err)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"syntax", "window: [", "parse config"},
		{"width", "window: {width: 10}", "Width"},
		{"radius", "handle_radius: 0", "HandleRadius"},
		{"no points", "points: []", "Points"},
		{"unit too long", "chart: {y_unit: percent}", "YUnit"},
		{"nan point", "points: [{x: 0, y: 100}, {x: .nan, y: .nan}, {x: 10, y: 0}]", "Points[1] must be finite"},
		{"inf point", "points: [{x: 0, y: 100}, {x: 10, y: -.inf}]", "Points[1] must be finite"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			err := Parse([]byte(tt.data), &cfg)
			if err == nil {
				t.Fatalf("Parse(%q) err = nil, want error", tt.data)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Parse(%q) err = %v, want mention of %q", tt.data, err, tt.want)
			}
		})
	}
}

func TestParseUnorderedPoints(t *testing.T) {
	cfg := Default()
	err := Parse([]byte("points: [{x: 100, y: 50}, {x: 50, y: 40}]"), &cfg)
	if !errors.Is(err, ErrUnorderedPoints) {
		t.Fatalf("Parse err = %v, want ErrUnorderedPoints", err)
	}

	cfg = Default()
	err = Parse([]byte("points: [{x: 0, y: 50}, {x: 50, y: 60}]"), &cfg)
	if !errors.Is(err, ErrUnorderedPoints) {
		t.Fatalf("Parse err = %v, want ErrUnorderedPoints", err)
	}
}
