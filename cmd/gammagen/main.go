// Command gammagen prints the precomputed gamma correction header for
// the viewer's render path. The preset list is fixed at compile time;
// run it and redirect:
//
//	go run ./cmd/gammagen > gamma.h
package main

import (
	"fmt"
	"os"

	"github.com/appengine-ltd/gammagen/internal/cheader"
	"github.com/appengine-ltd/gammagen/internal/gamma"
)

func main() {
	if err := cheader.Write(os.Stdout, gamma.DefaultPresets); err != nil {
		fmt.Fprintf(os.Stderr, "gammagen: %v\n", err)
		os.Exit(1)
	}
}
