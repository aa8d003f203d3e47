package antifragile

import (
	"testing"
)

// AssertClassification verifies sys lands on want at (at, delta).
//
// On failure the three evaluation points are reported so the curvature can
// be read straight off the test log.
func AssertClassification[S Stressor, P Payoff](t testing.TB, sys System[S, P], at, delta S, want Triad) {
	t.Helper()

	e := Evaluate(sys, at, delta)
	if e.Triad != want {
		t.Errorf("Classification mismatch at x=%v, δ=%v: got %s, want %s\n"+
			"  f(x-δ) = %v\n"+
			"  f(x)   = %v\n"+
			"  f(x+δ) = %v\n"+
			"  f(x-δ) + f(x+δ) = %v vs twin(f(x)) = %v",
			at, delta, e.Triad, want,
			e.Below, e.Center, e.Above, e.Sum, e.Twin)
		return
	}

	t.Logf("✓ %s at x=%v, δ=%v (sum=%v, twin=%v)", e.Triad, at, delta, e.Sum, e.Twin)
}

// AssertAntifragile verifies sys is convex at (at, delta):
//
//	f(x-δ) + f(x+δ) > 2·f(x)
func AssertAntifragile[S Stressor, P Payoff](t testing.TB, sys System[S, P], at, delta S) {
	t.Helper()
	AssertClassification(t, sys, at, delta, Antifragile)
}

// AssertFragile verifies sys is concave at (at, delta):
//
//	f(x-δ) + f(x+δ) < 2·f(x)
func AssertFragile[S Stressor, P Payoff](t testing.TB, sys System[S, P], at, delta S) {
	t.Helper()
	AssertClassification(t, sys, at, delta, Fragile)
}

// AssertRobust verifies sys is linear at (at, delta):
//
//	f(x-δ) + f(x+δ) = 2·f(x)
func AssertRobust[S Stressor, P Payoff](t testing.TB, sys System[S, P], at, delta S) {
	t.Helper()
	AssertClassification(t, sys, at, delta, Robust)
}

// PrintAnalysis outputs the convexity test for sys to the test log.
func PrintAnalysis[S Stressor, P Payoff](t testing.TB, sys System[S, P], at, delta S) {
	t.Helper()

	e := Evaluate(sys, at, delta)

	t.Logf("\n=== Convexity Analysis ===")
	t.Logf("Operating point: x = %v, δ = %v", at, delta)
	t.Logf("  f(x-δ) = %v", e.Below)
	t.Logf("  f(x)   = %v", e.Center)
	t.Logf("  f(x+δ) = %v", e.Above)
	t.Logf("  sum    = %v", e.Sum)
	t.Logf("  twin   = %v", e.Twin)

	t.Logf("\nInterpretation:")
	switch e.Triad {
	case Antifragile:
		t.Logf("  ✓ Convex (sum > twin) - gains from volatility")
	case Robust:
		t.Logf("  ✓ Linear (sum = twin) - indifferent to volatility")
	default:
		t.Logf("  ✗ Concave (sum < twin) - harmed by volatility")
	}
}
