package antifragile

// Logistic is the one-step logistic map as a payoff:
//
//	f(x) = r·x·(1 - x)
//
// r is the coupling parameter: how strongly load feeds back on itself. For
// r > 0 the map is a downward parabola, so it is Fragile at every interior
// point; r < 0 flips it to Antifragile and r = 0 is the constant zero
// (Robust).
type Logistic struct {
	R float64 `json:"r" yaml:"r"`
}

// Payoff implements System.
func (l Logistic) Payoff(x float64) float64 {
	return l.R * x * (1 - x)
}

// StableCoupling reports whether r lies in the stable equilibrium range
// 1 < r < 3. Below 1 the map decays to zero; from 3 upward it enters the
// period-doubling cascade.
func (l Logistic) StableCoupling() bool {
	return l.R > 1 && l.R < 3
}
