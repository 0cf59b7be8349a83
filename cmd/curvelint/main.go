// Command curvelint validates editor config files and prints the seed curve
// each one produces.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"curvedit/config"
)

func main() {
	quiet := flag.Bool("q", false, "Only report errors.")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: curvelint [-q] config.yaml...\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if failed := lint(os.Stdout, flag.Args(), *quiet); failed > 0 {
		os.Exit(1)
	}
}

// lint checks every path and returns how many failed.
func lint(w io.Writer, paths []string, quiet bool) int {
	failed := 0
	for _, path := range paths {
		cfg, err := config.Load(path)
		if err != nil {
			fmt.Fprintf(w, "%s: FAIL: %v\n", path, err)
			failed++
			continue
		}
		if quiet {
			continue
		}
		fmt.Fprintf(w, "%s: ok (%dx%d, %d handles, r=%g)\n",
			path, cfg.Window.Width, cfg.Window.Height, len(cfg.Points), cfg.HandleRadius)
		for n := range cfg.Curve().All() {
			fmt.Fprintf(w, "  %d: (%g, %g)\n", n.Index(), n.Point.X, n.Point.Y)
		}
	}
	return failed
}
