//go:build cgo

// Command gammaview previews the generated gamma tables interactively,
// the way the viewer applies them: it is much easier to judge a preset
// on a ramp than in the emitted header.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/appengine-ltd/gammagen/internal/gamma"
	"github.com/appengine-ltd/gammagen/internal/tui"
	"github.com/appengine-ltd/gammagen/internal/view"
)

func main() {
	var (
		gammaQuery string
		terminal   bool
	)
	flag.StringVar(&gammaQuery, "gamma", "", "preset label to start on, e.g. 2.00")
	flag.BoolVar(&terminal, "tui", false, "render in the terminal instead of a window")
	flag.Parse()

	set, err := gamma.NewSet(gamma.DefaultPresets)
	if err != nil {
		die(err.Error())
	}

	start := 0
	if gammaQuery != "" {
		start, err = set.Find(gammaQuery)
		if err != nil {
			die(err.Error())
		}
	}

	if terminal {
		if err := tui.Run(set, start); err != nil {
			die(err.Error())
		}
		return
	}
	if err := view.Run(set, start); err != nil {
		die(err.Error())
	}
}

func die(msg string) {
	fmt.Fprintln(os.Stderr, "gammaview:", msg)
	os.Exit(1)
}
