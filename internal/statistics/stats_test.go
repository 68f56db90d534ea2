package statistics

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestMean(t *testing.T) {
	tests := []struct {
		name   string
		input  []float64
		expect float64
	}{
		{"empty", nil, 0},
		{"single", []float64{0.5}, 0.5},
		{"multiple", []float64{0.2, 0.4, 0.6}, 0.4},
		{"all_same", []float64{0.7, 0.7, 0.7}, 0.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mean(tt.input)
			if !approxEqual(got, tt.expect) {
				t.Errorf("Mean(%v) = %f, want %f", tt.input, got, tt.expect)
			}
		})
	}
}

func TestVariance(t *testing.T) {
	tests := []struct {
		name   string
		input  []float64
		expect float64
	}{
		{"empty", nil, 0},
		{"single", []float64{0.5}, 0},
		{"identical", []float64{0.3, 0.3, 0.3}, 0},
		{"known", []float64{1, 2, 3, 4, 5}, 2.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Variance(tt.input)
			if !approxEqual(got, tt.expect) {
				t.Errorf("Variance(%v) = %f, want %f", tt.input, got, tt.expect)
			}
		})
	}
}

func TestStdDev(t *testing.T) {
	got := StdDev([]float64{1, 2, 3, 4, 5})
	want := math.Sqrt(2.0)
	if !approxEqual(got, want) {
		t.Errorf("StdDev = %f, want %f", got, want)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.Count != 0 || s.Mean != 0 || s.Min != 0 || s.Max != 0 || s.Spread != 0 {
		t.Errorf("expected zero Summary for empty input, got %+v", s)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{0.45, 0.61, 0.53})

	if s.Count != 3 {
		t.Errorf("Count = %d, want 3", s.Count)
	}
	if !approxEqual(s.Mean, 0.53) {
		t.Errorf("Mean = %f, want 0.53", s.Mean)
	}
	if !approxEqual(s.Min, 0.45) {
		t.Errorf("Min = %f, want 0.45", s.Min)
	}
	if !approxEqual(s.Max, 0.61) {
		t.Errorf("Max = %f, want 0.61", s.Max)
	}
	if !approxEqual(s.Spread, 0.16) {
		t.Errorf("Spread = %f, want 0.16", s.Spread)
	}
}
