package layout

import (
	"math"
	"testing"
)

func TestResolveLabelWidth(t *testing.T) {
	tests := []struct {
		name  string
		width float64
		want  float64
	}{
		{name: "narrow", width: 100, want: 30},
		{name: "medium", width: 500, want: 150},
		{name: "just below cap", width: 600, want: 180},
		{name: "at cap", width: 2000.0 / 3.0, want: 200},
		{name: "above cap", width: 1000, want: 200},
		{name: "huge", width: 1e9, want: 200},
		{name: "zero", width: 0, want: 0},
		{name: "negative", width: -50, want: 0},
		{name: "nan", width: math.NaN(), want: 0},
		{name: "inf", width: math.Inf(1), want: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveLabelWidth(tt.width)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("ResolveLabelWidth(%v) = %v, want %v", tt.width, got, tt.want)
			}
		})
	}
}

func TestResolveLabelWidth_ClampsAboveThreshold(t *testing.T) {
	for w := 666.67; w < 5000; w += 13.7 {
		if got := ResolveLabelWidth(w); got != 200 {
			t.Fatalf("ResolveLabelWidth(%v) = %v, want 200", w, got)
		}
	}
}

func TestResolveLabelWidth_ProportionalBelowThreshold(t *testing.T) {
	for w := 0.5; w < 666; w += 3.3 {
		got := ResolveLabelWidth(w)
		if want := w * 0.3; math.Abs(got-want) > 1e-9 {
			t.Fatalf("ResolveLabelWidth(%v) = %v, want %v", w, got, want)
		}
	}
}

func TestResolveLabelWidth_Monotonic(t *testing.T) {
	prev := ResolveLabelWidth(0)
	for w := 0.0; w <= 2000; w += 0.5 {
		got := ResolveLabelWidth(w)
		if got < prev {
			t.Fatalf("width decreased at %v: %v < %v", w, got, prev)
		}
		prev = got
	}
}

func TestWidthPolicy_Min(t *testing.T) {
	policy := WidthPolicy{Ratio: 0.5, Max: 120, Min: 40}

	if got := policy.Resolve(-1); got != 40 {
		t.Fatalf("negative width: got %v, want 40", got)
	}
	if got := policy.Resolve(60); got != 40 {
		t.Fatalf("below min: got %v, want 40", got)
	}
	if got := policy.Resolve(200); got != 100 {
		t.Fatalf("proportional: got %v, want 100", got)
	}
	if got := policy.Resolve(1000); got != 120 {
		t.Fatalf("capped: got %v, want 120", got)
	}
}
