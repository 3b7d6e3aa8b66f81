// Package cheader serialises precomputed gamma lookup tables as a C
// header for the viewer's render path.
package cheader

import (
	"fmt"
	"io"
	"strings"

	"github.com/appengine-ltd/gammagen/internal/gamma"
)

const preamble = `#pragma once

#include <stdint.h>

/*
 * 8-bit gamma correction lookup tables precomputed by cmd/gammagen
 * To change preset values, edit DefaultPresets in internal/gamma
 */

`

// Write emits the generated header for presets to w: the label array,
// the preset count, and one 256-entry uint8 table per preset, 16 values
// per line. The header is built in full before anything reaches w, so
// an invalid preset leaves the output untouched instead of handing the
// build a truncated table.
func Write(w io.Writer, presets []float64) error {
	labels, tables, err := gamma.Generate(presets)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(preamble)

	quoted := make([]string, len(labels))
	for i, label := range labels {
		quoted[i] = `"` + label + `"`
	}
	fmt.Fprintf(&b, "static const char *gammavals[%d] = {\n", len(labels))
	b.WriteString("\t" + strings.Join(quoted, ",") + "\n")
	b.WriteString("};\n\n")

	b.WriteString("static const int nr_gammavals = sizeof(gammavals) / sizeof(*gammavals);\n\n")

	fmt.Fprintf(&b, "static const uint8_t gammalookup[%d][256] = {\n", len(tables))
	for _, table := range tables {
		b.WriteString("{\n")
		for i, v := range table {
			fmt.Fprintf(&b, "% 4d,", v)
			if i%16 == 15 {
				b.WriteString("\n")
			}
		}
		b.WriteString("},\n")
	}
	b.WriteString("};\n")

	_, err = io.WriteString(w, b.String())
	return err
}
