package antifragile

import (
	"math"
	"testing"
)

func TestUSL_PeakN(t *testing.T) {
	tests := []struct {
		name         string
		alpha, beta  float64
		expectedPeak float64
		expectInf    bool
	}{
		{
			name:         "Low contention, low coherency",
			alpha:        0.05,
			beta:         0.01,
			expectedPeak: math.Sqrt(0.95 / 0.01), // ≈ 9.75
		},
		{
			name:         "High coherency",
			alpha:        0.05,
			beta:         0.05,
			expectedPeak: math.Sqrt(0.95 / 0.05), // ≈ 4.36
		},
		{
			name:      "Zero coherency (linear scaling)",
			alpha:     0.05,
			beta:      0,
			expectInf: true,
		},
		{
			name:         "Deadlock system",
			alpha:        1.0,
			beta:         0.01,
			expectedPeak: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			peak := USL{Lambda: 1000, Alpha: tt.alpha, Beta: tt.beta}.PeakN()

			if tt.expectInf {
				if !math.IsInf(peak, 1) {
					t.Errorf("Expected infinity, got %.2f", peak)
				}
				t.Logf("✓ %s: N_peak = ∞ (linear scaling)", tt.name)
				return
			}
			if math.Abs(peak-tt.expectedPeak) > 0.01 {
				t.Errorf("Expected peak ≈ %.2f, got %.2f", tt.expectedPeak, peak)
			}
			t.Logf("✓ %s: N_peak = %.2f", tt.name, peak)
		})
	}
}

func TestUSL_Throughput(t *testing.T) {
	usl := USL{Lambda: 1000, Alpha: 0.05, Beta: 0.01}

	tests := []struct {
		N             int
		expectedRange [2]float64 // [min, max]
	}{
		{N: 1, expectedRange: [2]float64{1000, 1000}},  // Baseline
		{N: 2, expectedRange: [2]float64{1850, 1900}},  // Slight overhead
		{N: 4, expectedRange: [2]float64{3100, 3200}},  // Contention visible
		{N: 8, expectedRange: [2]float64{4100, 4300}},  // Approaching peak
		{N: 10, expectedRange: [2]float64{4200, 4300}}, // Near peak capacity
	}

	for _, tt := range tests {
		throughput := usl.Payoff(tt.N)

		if throughput < tt.expectedRange[0] || throughput > tt.expectedRange[1] {
			t.Errorf("N=%d: throughput %.0f outside expected range [%.0f, %.0f]",
				tt.N, throughput, tt.expectedRange[0], tt.expectedRange[1])
		}

		t.Logf("N=%2d: throughput=%.0f ops/sec (%.1f%% efficiency)",
			tt.N, throughput, usl.Efficiency(tt.N)*100)
	}
}

func TestUSL_Classification(t *testing.T) {
	tests := []struct {
		name string
		usl  USL
		at   int
		want Triad
	}{
		{"Contention and coherency", USL{Lambda: 1000, Alpha: 0.05, Beta: 0.01}, 8, Fragile},
		{"Contention only", USL{Lambda: 1000, Alpha: 0.1}, 4, Fragile},
		{"Linear scaling", USL{Lambda: 1000}, 8, Robust},
		{"Superlinear", USL{Lambda: 1000, Beta: -0.001}, 8, Antifragile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			AssertClassification(t, tt.usl, tt.at, 1, tt.want)
		})
	}
}

func TestUSL_Efficiency(t *testing.T) {
	if e := (USL{Lambda: 1000}).Efficiency(16); e != 1 {
		t.Errorf("Linear USL efficiency should be 1, got %.3f", e)
	}
	if e := (USL{}).Efficiency(4); e != 0 {
		t.Errorf("Zero lambda efficiency should be 0, got %.3f", e)
	}

	contended := USL{Lambda: 1000, Alpha: 0.05, Beta: 0.01}
	if contended.Efficiency(8) >= contended.Efficiency(2) {
		t.Error("Efficiency should fall as N grows under contention")
	}
}
