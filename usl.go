package antifragile

import "math"

// USL is the Universal Scalability Law as a payoff: throughput as a function
// of the number of concurrent workers N.
//
//	C(N) = λN / (1 + α(N-1) + βN(N-1))
//
// Where:
//   - λ (lambda): Serial performance (throughput at N=1)
//   - α (alpha): Contention coefficient (lock waiting)
//   - β (beta): Coordination coefficient (cache coherency, communication)
//
// With α = β = 0 throughput is linear in N and the system is Robust. Any
// positive contention or coordination bends the curve down, so below PeakN
// a USL system with α, β > 0 is Fragile with respect to concurrency: a burst
// of extra workers costs more than a matching lull saves. Well past the peak
// the retrograde tail flattens out and turns convex again. β < 0
// (superlinear, cache friendly batching) makes the curve convex.
//
// The stressor is the integer worker count, so Classify(usl, 8, 1)
// compares N=7, 8 and 9.
type USL struct {
	Lambda float64 `json:"lambda" yaml:"lambda"` // λ: Serial throughput (ops/sec at N=1)
	Alpha  float64 `json:"alpha" yaml:"alpha"`   // α: Contention coefficient
	Beta   float64 `json:"beta" yaml:"beta"`     // β: Coordination coefficient
}

// Payoff implements System[int, float64].
func (u USL) Payoff(n int) float64 {
	return u.Throughput(float64(n))
}

// Throughput evaluates C(N) for a fractional N.
func (u USL) Throughput(n float64) float64 {
	return (u.Lambda * n) / (1 + u.Alpha*(n-1) + u.Beta*n*(n-1))
}

// Efficiency returns the ratio of actual to ideal throughput.
// 1.0 = perfect linear scaling, <1.0 = contention/coordination overhead.
func (u USL) Efficiency(n int) float64 {
	ideal := u.Lambda * float64(n)
	if ideal == 0 {
		return 0
	}
	return u.Payoff(n) / ideal
}

// PeakN returns the concurrency where dC/dN = 0:
//
//	N_peak = sqrt((1-α)/β)
//
// Without a coordination penalty (β ≤ 0) there is no peak and PeakN
// returns +Inf.
func (u USL) PeakN() float64 {
	if u.Beta <= 0 {
		return math.Inf(1)
	}
	return math.Sqrt((1 - u.Alpha) / u.Beta)
}
