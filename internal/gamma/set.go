package gamma

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Set is an ordered collection of presets with their computed tables,
// ready for the preview tools: labels for the HUD, tables for the
// render path, Next for the cycle key.
type Set struct {
	Labels []string
	Tables []LUT
}

// NewSet computes a Set for the given presets.
func NewSet(presets []float64) (*Set, error) {
	labels, tables, err := Generate(presets)
	if err != nil {
		return nil, err
	}
	return &Set{Labels: labels, Tables: tables}, nil
}

// Len reports the number of presets in the set.
func (s *Set) Len() int { return len(s.Labels) }

// Next returns the preset index after i, wrapping to the start.
func (s *Set) Next(i int) int { return (i + 1) % len(s.Labels) }

// tolerated edit distance for a typo'd label, by label length
func editLimit(n int) int {
	if n <= 4 {
		return 1
	}
	return 2
}

// Find resolves a preset by its label. Numeric queries are normalised
// first, so "2" and "2.0" both match "2.00". A near-miss ("2.OO",
// "1.25x") fails with the closest label as a suggestion rather than
// silently picking a table the caller did not ask for.
func (s *Set) Find(query string) (int, error) {
	q := strings.TrimSpace(query)
	if v, err := strconv.ParseFloat(q, 64); err == nil {
		q = Label(v)
	}
	best, bestDist := -1, len(q)+1
	for i, label := range s.Labels {
		if label == q {
			return i, nil
		}
		if d := levenshtein.ComputeDistance(q, label); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best >= 0 && bestDist <= editLimit(len(q)) {
		return 0, fmt.Errorf("unknown gamma preset %q (did you mean %q?)", query, s.Labels[best])
	}
	return 0, fmt.Errorf("unknown gamma preset %q", query)
}
