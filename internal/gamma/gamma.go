// Package gamma computes 8-bit gamma correction lookup tables.
//
// A table maps input intensity i in [0,255] to round(pow(i/255, 1/g) * 255)
// for a gamma value g. Precomputing the tables keeps the per-pixel render
// path to a single array index; cmd/gammagen serialises them as a C header.
package gamma

import (
	"fmt"
	"math"
)

// DefaultPresets is the table set compiled into the viewer build.
// Order matters: index 0 is the startup preset and the G key cycles the
// list in this order, so identity stays first.
var DefaultPresets = []float64{1.0, 0.125, 0.25, 0.5, 0.75, 1.25, 1.5, 1.75, 2.0, 4.0}

// LUT maps an 8-bit input intensity to its gamma-corrected output.
type LUT [256]uint8

// Table computes the lookup table for gamma value g.
//
// Entries round half away from zero. g must be a positive finite number;
// anything else makes the power undefined and a partial table would
// silently corrupt whatever build consumes the header, so the whole run
// fails instead.
func Table(g float64) (LUT, error) {
	var t LUT
	if !(g > 0) || math.IsInf(g, 1) {
		return t, fmt.Errorf("invalid gamma value %v: preset must be a positive finite number", g)
	}
	inv := 1 / g
	for i := range t {
		t[i] = uint8(math.Round(math.Pow(float64(i)/255, inv) * 255))
	}
	return t, nil
}

// Label renders a preset value the way the generated header and the
// viewer HUD display it: fixed-point with exactly two decimals.
func Label(g float64) string {
	return fmt.Sprintf("%1.2f", g)
}

// Generate computes the label and table for every preset, in preset
// order. Duplicate presets are allowed and simply yield duplicate
// tables. The first invalid preset aborts the run; no partial result is
// returned.
func Generate(presets []float64) ([]string, []LUT, error) {
	labels := make([]string, 0, len(presets))
	tables := make([]LUT, 0, len(presets))
	for _, g := range presets {
		t, err := Table(g)
		if err != nil {
			return nil, nil, err
		}
		labels = append(labels, Label(g))
		tables = append(tables, t)
	}
	return labels, tables, nil
}
