package antifragile

// Evaluation records the three payoffs behind a classification.
type Evaluation[S Stressor, P Payoff] struct {
	At    S // Operating point x
	Delta S // Perturbation δ

	Below  P // f(x−δ)
	Center P // f(x)
	Above  P // f(x+δ)

	Sum  P // f(x−δ) + f(x+δ)
	Twin P // twin(f(x))

	Triad Triad
}

// Classify places sys on the Triad at operating point at, using the
// discrete convexity test (Jensen's inequality):
//
//	f(x−δ) + f(x+δ) > 2·f(x)  →  Antifragile (convex)
//	f(x−δ) + f(x+δ) < 2·f(x)  →  Fragile     (concave)
//	f(x−δ) + f(x+δ) = 2·f(x)  →  Robust      (linear)
//
// The comparison is exact. Floating-point payoffs near the linear boundary
// are therefore sensitive to rounding; use ClassifyWithTolerance when that
// matters. A zero delta always yields Robust. A NaN payoff makes both
// comparisons false and also yields Robust.
//
// Classify has no failure mode of its own. Panics raised by the payoff
// function propagate to the caller unchanged.
func Classify[S Stressor, P Payoff](sys System[S, P], at, delta S) Triad {
	return Evaluate(sys, at, delta).Triad
}

// Evaluate runs the convexity test and returns every intermediate value.
func Evaluate[S Stressor, P Payoff](sys System[S, P], at, delta S) Evaluation[S, P] {
	e := Evaluation[S, P]{At: at, Delta: delta}

	e.Below = sys.Payoff(at - delta)
	e.Center = sys.Payoff(at)
	e.Above = sys.Payoff(at + delta)

	e.Sum = e.Above + e.Below
	e.Twin = twinOf(sys, e.Center)

	switch {
	case e.Sum > e.Twin:
		e.Triad = Antifragile
	case e.Sum < e.Twin:
		e.Triad = Fragile
	default:
		e.Triad = Robust
	}
	return e
}

// ClassifyWithTolerance is Classify with a dead band: when
// |f(x−δ) + f(x+δ) − twin(f(x))| ≤ epsilon the system is Robust.
//
// Use it for float payoffs where exact equality is rare. An epsilon of zero
// (or below) gives the same answer as Classify.
func ClassifyWithTolerance[S Stressor, P Payoff](sys System[S, P], at, delta S, epsilon P) Triad {
	return Evaluate(sys, at, delta).WithTolerance(epsilon)
}

// WithTolerance reclassifies e with a dead band of epsilon around the twin,
// without evaluating the payoff again.
func (e Evaluation[S, P]) WithTolerance(epsilon P) Triad {
	switch {
	case e.Sum > e.Twin && e.Sum-e.Twin > epsilon:
		return Antifragile
	case e.Sum < e.Twin && e.Twin-e.Sum > epsilon:
		return Fragile
	default:
		return Robust
	}
}

// IsAntifragile reports whether sys classifies as Antifragile at (at, delta).
func IsAntifragile[S Stressor, P Payoff](sys System[S, P], at, delta S) bool {
	return Classify(sys, at, delta) == Antifragile
}

// GainsFromStress reports whether the payoff at high exceeds the payoff at low.
//
// This is a monotonicity check, not a convexity check: a concave learning
// curve gains from stress while still being Fragile.
func GainsFromStress[S Stressor, P Payoff](sys System[S, P], low, high S) bool {
	return sys.Payoff(high) > sys.Payoff(low)
}

// IsStable reports whether |payoff(high) − payoff(low)| ≤ threshold.
func IsStable[S Stressor, P Payoff](sys System[S, P], low, high S, threshold P) bool {
	pl, ph := sys.Payoff(low), sys.Payoff(high)
	if ph >= pl {
		return ph-pl <= threshold
	}
	return pl-ph <= threshold
}
