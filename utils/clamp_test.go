// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"testing"
)

func TestClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{
			name: "inside range",
			v:    0.5,
			lo:   0,
			hi:   1,
			want: 0.5,
		},
		{
			name: "below range",
			v:    -0.2,
			lo:   0,
			hi:   1,
			want: 0,
		},
		{
			name: "above range",
			v:    1.7,
			lo:   0,
			hi:   1,
			want: 1,
		},
		{
			name: "at lower bound",
			v:    0,
			lo:   0,
			hi:   1,
			want: 0,
		},
		{
			name: "at upper bound",
			v:    1,
			lo:   0,
			hi:   1,
			want: 1,
		},
		{
			name: "negative interval",
			v:    -10,
			lo:   -5,
			hi:   -1,
			want: -5,
		},
		{
			name: "radius style interval",
			v:    9,
			lo:   0,
			hi:   5,
			want: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Clamp(tt.v, tt.lo, tt.hi)
			if got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v",
					tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestClamp01(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input float64
		want  float64
	}{
		{input: 0.25, want: 0.25},
		{input: -1, want: 0},
		{input: 2, want: 1},
		{input: 0, want: 0},
		{input: 1, want: 1},
	}

	for _, tt := range tests {
		got := Clamp01(tt.input)
		if got != tt.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestMin3(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b, c float64
		want    float64
	}{
		{name: "first smallest", a: 1, b: 2, c: 3, want: 1},
		{name: "second smallest", a: 5, b: 2, c: 3, want: 2},
		{name: "third smallest", a: 5, b: 4, c: 3, want: 3},
		{name: "all equal", a: 2, b: 2, c: 2, want: 2},
		{name: "negatives", a: -1, b: -4, c: 0, want: -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Min3(tt.a, tt.b, tt.c)
			if got != tt.want {
				t.Errorf("Min3(%v, %v, %v) = %v, want %v",
					tt.a, tt.b, tt.c, got, tt.want)
			}
		})
	}
}

// TestClamp_ZeroAllocs verifies no heap allocations
func TestClamp_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = Clamp(0.7, 0, 1)
	})

	if allocs > 0 {
		t.Errorf("Clamp allocated %v times, want 0", allocs)
	}
}
