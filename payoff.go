package antifragile

// Stressor is the set of types usable as an input stress level.
// The classifier needs x−δ and x+δ, so only signed numeric types qualify.
type Stressor interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Payoff is the set of types usable as a measured outcome.
// Classification only adds two payoffs and compares the result, so any
// ordered numeric type works, including unsigned ones.
type Payoff interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// System is anything whose outcome can be measured under stress.
//
// Payoff must be a pure function of its input for the convexity test to
// mean anything: the classifier calls it three times and assumes the
// answers are comparable. Implementations may cache or measure internally.
type System[S Stressor, P Payoff] interface {
	Payoff(stressor S) P
}

// Twinner is implemented by systems that know a cheaper or more precise way
// to double a payoff than p + p. The classifier uses it when present.
type Twinner[P Payoff] interface {
	Twin(p P) P
}

// Twin returns p + p.
//
// Named "twin" because the center payoff is counted twice against the two
// perturbed payoffs: f(x−δ) + f(x+δ) vs twin(f(x)).
func Twin[P Payoff](p P) P {
	return p + p
}

// Func adapts an ordinary function to the System interface.
//
//	square := antifragile.Func[float64, float64](func(x float64) float64 { return x * x })
//	antifragile.Classify(square, 10, 1) // Antifragile
type Func[S Stressor, P Payoff] func(S) P

// Payoff calls f(stressor).
func (f Func[S, P]) Payoff(stressor S) P {
	return f(stressor)
}

// twinOf doubles p using the system's own Twinner when it has one.
func twinOf[S Stressor, P Payoff](sys System[S, P], p P) P {
	if t, ok := sys.(Twinner[P]); ok {
		return t.Twin(p)
	}
	return Twin(p)
}
