package antifragile

// Verified binds a system to the Triad it earned at one operating point.
//
// The classification is computed once, by Check, and never recomputed.
// To classify at another point or perturbation, build a new Verified.
// Verified owns its system: callers should not mutate the system after
// handing it over.
type Verified[T System[S, P], S Stressor, P Payoff] struct {
	system         T
	at             S
	delta          S
	classification Triad
}

// Check classifies system at (at, delta) and returns the bundle.
//
//	v := antifragile.Check(antifragile.Power{Coefficient: 1, Exponent: 2}, 10.0, 1.0)
//	v.IsAntifragile() // true
func Check[T System[S, P], S Stressor, P Payoff](system T, at, delta S) Verified[T, S, P] {
	return Verified[T, S, P]{
		system:         system,
		at:             at,
		delta:          delta,
		classification: Classify[S, P](system, at, delta),
	}
}

// Classification returns the stored Triad.
func (v Verified[T, S, P]) Classification() Triad {
	return v.classification
}

// IsAntifragile reports whether the system was classified Antifragile.
func (v Verified[T, S, P]) IsAntifragile() bool {
	return v.classification == Antifragile
}

// IsStable reports whether the system was classified Robust.
func (v Verified[T, S, P]) IsStable() bool {
	return v.classification == Robust
}

// IsFragile reports whether the system was classified Fragile.
func (v Verified[T, S, P]) IsFragile() bool {
	return v.classification == Fragile
}

// GainsFromStress reports whether added stress improves the payoff relative
// to the linear baseline. It is an alias of IsAntifragile.
func (v Verified[T, S, P]) GainsFromStress() bool {
	return v.IsAntifragile()
}

// Inner returns the wrapped system.
func (v Verified[T, S, P]) Inner() T {
	return v.system
}

// At returns the operating point the classification was computed at.
func (v Verified[T, S, P]) At() S {
	return v.at
}

// Delta returns the perturbation the classification was computed with.
func (v Verified[T, S, P]) Delta() S {
	return v.delta
}

// Payoff delegates to the wrapped system, so a Verified is itself a System.
func (v Verified[T, S, P]) Payoff(stressor S) P {
	return v.system.Payoff(stressor)
}

// Twin delegates to the wrapped system's Twinner, or adds p to itself.
func (v Verified[T, S, P]) Twin(p P) P {
	return twinOf[S, P](v.system, p)
}

// StillHolds reports whether classifying the wrapped system at (at, delta)
// gives the stored Triad. The stored value is left untouched.
func (v Verified[T, S, P]) StillHolds(at, delta S) bool {
	return Classify[S, P](v.system, at, delta) == v.classification
}
