package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"curvedit/app"
	"curvedit/config"
	"curvedit/hal"
	"curvedit/internal/buildinfo"
)

func main() {
	var (
		cfgPath  string
		logLevel string
		script   string
		scale    int
		hcfg     hal.HeadlessConfig
		headless bool
	)
	flag.StringVar(&cfgPath, "config", "", "YAML file overriding the default chart and seed curve.")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error).")
	flag.IntVar(&scale, "scale", 0, "Window scale factor (0 = config value).")
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&script, "script", "", `Pointer samples replayed in headless mode, e.g. "120,100,down;140,90,down;140,90,up".`)
	flag.Parse()

	log, err := hal.NewLogger(logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	if err := run(log, cfgPath, scale, headless, script, hcfg); err != nil {
		log.Error("exit", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.Logger, cfgPath string, scale int, headless bool, script string, hcfg hal.HeadlessConfig) error {
	cfg, err := loadConfig(cfgPath, scale)
	if err != nil {
		return err
	}

	log.Info("starting", zap.String("version", buildinfo.String()), zap.Bool("headless", headless))

	host := hal.HostConfig{Width: cfg.Window.Width, Height: cfg.Window.Height, Logger: log}
	var session *app.App
	newApp := app.Factory(cfg, func(a *app.App) { session = a })
	defer func() {
		if session != nil {
			log.Info("final curve", zap.Any("points", session.Curve().Points()), zap.Uint64("frames", session.Frames()))
		}
	}()

	if headless {
		hcfg.Host = host
		if hcfg.Script, err = hal.ParseScript(script); err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, hcfg, newApp); err != nil && err != context.Canceled {
			return err
		}
		return nil
	}

	return hal.RunWindow(hal.WindowConfig{
		Host:  host,
		Title: "curvedit (" + buildinfo.Short() + ")",
		Scale: cfg.Window.Scale,
		TPS:   cfg.Window.TPS,
	}, newApp)
}

// loadConfig reads the config file and applies the -scale override, then
// validates the result again so the override obeys the same range.
func loadConfig(path string, scale int) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if scale > 0 {
		cfg.Window.Scale = scale
		if err := cfg.Validate(); err != nil {
			return config.Config{}, fmt.Errorf("-scale %d: %w", scale, err)
		}
	}
	return cfg, nil
}
