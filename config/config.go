// Package config loads the editor layout and seed curve.
//
// Defaults reproduce the stock fan curve: a 320x320 chart of 0-100 C by
// 0-100 %, with four handles along the top. A YAML file overlays them.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"curvedit/curve"
)

// Window sizes the framebuffer and the desktop window around it.
type Window struct {
	Width  int `yaml:"width" validate:"gte=64,lte=4096"`
	Height int `yaml:"height" validate:"gte=64,lte=4096"`
	Scale  int `yaml:"scale" validate:"gte=1,lte=8"`
	TPS    int `yaml:"tps" validate:"gte=1,lte=240"`
}

// Chart describes the grid and the axis labels. Labels are computed in chart
// units; handles live in framebuffer pixels.
type Chart struct {
	XDivs int     `yaml:"x_divs" validate:"gte=1,lte=64"`
	YDivs int     `yaml:"y_divs" validate:"gte=1,lte=64"`
	XMax  float64 `yaml:"x_max" validate:"gt=0"`
	YMax  float64 `yaml:"y_max" validate:"gt=0"`
	XUnit string  `yaml:"x_unit" validate:"max=4"`
	YUnit string  `yaml:"y_unit" validate:"max=4"`
}

// Point is a seed handle position in framebuffer pixels.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Config struct {
	Window       Window  `yaml:"window"`
	Chart        Chart   `yaml:"chart"`
	HandleRadius float64 `yaml:"handle_radius" validate:"gt=0,lte=64"`
	Points       []Point `yaml:"points" validate:"min=1,max=64"`
}

// ErrUnorderedPoints is returned when the seed points are not monotone.
var ErrUnorderedPoints = errors.New("points must have non-decreasing x and non-increasing y")

// Default returns the stock configuration.
func Default() Config {
	cfg := Config{
		Window: Window{Width: 320, Height: 320, Scale: 2, TPS: 60},
		Chart: Chart{
			XDivs: 10,
			YDivs: 5,
			XMax:  100,
			YMax:  100,
			XUnit: "C",
			YUnit: "%",
		},
		HandleRadius: 10,
	}
	for k := 0; k < 4; k++ {
		cfg.Points = append(cfg.Points, Point{X: float64(k*60 + 60), Y: 100})
	}
	return cfg
}

// Load reads path over the defaults and validates the result. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := Parse(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg and validates it. Fields missing from data
// keep their current values.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return cfg.Validate()
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field ranges, that every seed point is finite and that the
// seed points are monotone.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s must satisfy %s=%s", fe.Namespace(), fe.Tag(), fe.Param())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	for i, p := range c.Points {
		if !finite(p.X) || !finite(p.Y) {
			return fmt.Errorf("invalid config: Config.Points[%d] must be finite, got (%v, %v)", i, p.X, p.Y)
		}
	}
	if !c.Curve().Monotone() {
		return ErrUnorderedPoints
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Curve builds the chain seeded from the configured points.
func (c Config) Curve() *curve.Chain {
	ch := curve.New()
	for _, p := range c.Points {
		ch.Append(curve.Pt(p.X, p.Y))
	}
	return ch
}
