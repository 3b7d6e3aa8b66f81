//go:build !cgo

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/appengine-ltd/gammagen/internal/gamma"
	"github.com/appengine-ltd/gammagen/internal/tui"
)

// Without cgo there is no raylib window; the terminal preview is the
// only mode.
func main() {
	var gammaQuery string
	flag.StringVar(&gammaQuery, "gamma", "", "preset label to start on, e.g. 2.00")
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

	if err := tui.Run(set, start); err != nil {
		die(err.Error())
	}
}

func die(msg string) {
	fmt.Fprintln(os.Stderr, "gammaview:", msg)
	os.Exit(1)
}
