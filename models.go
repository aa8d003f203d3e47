package antifragile

import "math"

// Reference systems with known curvature. They are handy as baselines in
// tests and as building blocks for the CLI's named models.

// Linear is f(x) = Slope·x + Intercept. Affine payoffs are Robust at every
// operating point and for every perturbation.
type Linear struct {
	Slope     float64 `json:"slope" yaml:"slope"`
	Intercept float64 `json:"intercept" yaml:"intercept"`
}

// Payoff implements System.
func (l Linear) Payoff(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// Power is f(x) = Coefficient·x^Exponent.
//
// With a positive coefficient the curve is convex for Exponent > 1 and
// concave for 0 < Exponent < 1 on positive x. Negative x with a fractional
// exponent yields NaN, which classifies as Robust.
type Power struct {
	Coefficient float64 `json:"coefficient" yaml:"coefficient"`
	Exponent    float64 `json:"exponent" yaml:"exponent"`
}

// Payoff implements System.
func (p Power) Payoff(x float64) float64 {
	return p.Coefficient * math.Pow(x, p.Exponent)
}

// Root is f(x) = Coefficient·√|x|, concave on either side of zero.
type Root struct {
	Coefficient float64 `json:"coefficient" yaml:"coefficient"`
}

// Payoff implements System.
func (r Root) Payoff(x float64) float64 {
	return r.Coefficient * math.Sqrt(math.Abs(x))
}

// ServiceSnapshot models a cached service whose effective throughput grows
// faster than its load: repeated queries under stress hit a warm cache.
//
// The stressor is normalized load (requests per second / 100); the payoff is
// effective throughput capacity:
//
//	capacity = base · (1 + hitRate) · load^(1.1 + 0.4·hitRate)
//
// where base = 1000 / AvgResponseTimeMs. An exponent above one makes the
// model convex, so a snapshot is Antifragile for positive loads.
type ServiceSnapshot struct {
	TotalRequests     uint64  `json:"total_requests" yaml:"total_requests"`
	CacheHits         uint64  `json:"cache_hits" yaml:"cache_hits"`
	CacheMisses       uint64  `json:"cache_misses" yaml:"cache_misses"`
	AvgResponseTimeMs float64 `json:"avg_response_time_ms" yaml:"avg_response_time_ms"`
}

// HitRate returns CacheHits / TotalRequests, or 0.5 with no traffic yet.
func (s ServiceSnapshot) HitRate() float64 {
	if s.TotalRequests == 0 {
		return 0.5
	}
	return float64(s.CacheHits) / float64(s.TotalRequests)
}

// Payoff implements System.
func (s ServiceSnapshot) Payoff(load float64) float64 {
	// Clamp to a small positive load for continuity at zero.
	load = math.Max(math.Abs(load), 0.001)

	hit := s.HitRate()

	base := 10000.0 // response time negligible
	if s.AvgResponseTimeMs > 0.001 {
		base = 1000.0 / s.AvgResponseTimeMs
	}

	efficiency := 1.0 + hit   // 1.0 (no hits) to 2.0 (all hits)
	exponent := 1.1 + hit*0.4 // 1.1 (poor caching) to 1.5 (excellent)
	return base * efficiency * math.Pow(load, exponent)
}
