package gamma

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIdentityPresetMapsInputToItself(t *testing.T) {
	table, err := Table(1.0)
	if err != nil {
		t.Fatalf("Table(1.0): %v", err)
	}
	for i := range table {
		if int(table[i]) != i {
			t.Fatalf("Table(1.0)[%d]=%d want=%d", i, table[i], i)
		}
	}
}

func TestEveryDefaultTableIsMonotonicWithFixedEndpoints(t *testing.T) {
	for _, g := range DefaultPresets {
		table, err := Table(g)
		if err != nil {
			t.Fatalf("Table(%v): %v", g, err)
		}
		if table[0] != 0 {
			t.Fatalf("Table(%v)[0]=%d want=0", g, table[0])
		}
		if table[255] != 255 {
			t.Fatalf("Table(%v)[255]=%d want=255", g, table[255])
		}
		for i := 1; i < 256; i++ {
			if table[i] < table[i-1] {
				t.Fatalf("Table(%v) decreases at %d: %d -> %d", g, i, table[i-1], table[i])
			}
		}
	}
}

func TestKnownMidpointValues(t *testing.T) {
	// 64/255 ≈ 0.251; squared ≈ 0.063 -> 16, square-rooted ≈ 0.501 -> 128.
	tests := []struct {
		gamma float64
		in    int
		want  uint8
	}{
		{gamma: 0.5, in: 64, want: 16},
		{gamma: 2.0, in: 64, want: 128},
		{gamma: 1.0, in: 64, want: 64},
	}
	for _, tc := range tests {
		table, err := Table(tc.gamma)
		if err != nil {
			t.Fatalf("Table(%v): %v", tc.gamma, err)
		}
		if table[tc.in] != tc.want {
			t.Fatalf("Table(%v)[%d]=%d want=%d", tc.gamma, tc.in, table[tc.in], tc.want)
		}
	}
}

func TestNonPositiveGammaRejected(t *testing.T) {
	for _, g := range []float64{0, -1, -0.5, math.NaN(), math.Inf(1)} {
		if _, err := Table(g); err == nil {
			t.Fatalf("Table(%v) succeeded, want error", g)
		}
	}
}

func TestGenerateKeepsPresetOrderAndShape(t *testing.T) {
	labels, tables, err := Generate(DefaultPresets)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(tables) != len(DefaultPresets) {
		t.Fatalf("got %d tables want %d", len(tables), len(DefaultPresets))
	}
	wantLabels := []string{"1.00", "0.12", "0.25", "0.50", "0.75", "1.25", "1.50", "1.75", "2.00", "4.00"}
	if diff := cmp.Diff(wantLabels, labels); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateAllowsDuplicatePresets(t *testing.T) {
	_, tables, err := Generate([]float64{2.0, 2.0})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if diff := cmp.Diff(tables[0], tables[1]); diff != "" {
		t.Fatalf("duplicate presets produced different tables:\n%s", diff)
	}
}

func TestGenerateAbortsOnFirstInvalidPreset(t *testing.T) {
	labels, tables, err := Generate([]float64{1.0, -2.0, 0.5})
	if err == nil {
		t.Fatal("expected error for negative preset")
	}
	if labels != nil || tables != nil {
		t.Fatalf("partial output returned alongside error: %v %v", labels, tables)
	}
}

func TestLabelIsFixedTwoDecimal(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 1.0, want: "1.00"},
		{in: 0.125, want: "0.12"},
		{in: 0.75, want: "0.75"},
		{in: 4.0, want: "4.00"},
	}
	for _, tc := range tests {
		if got := Label(tc.in); got != tc.want {
			t.Fatalf("Label(%v)=%q want=%q", tc.in, got, tc.want)
		}
	}
}
