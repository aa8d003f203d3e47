// Package antifragile classifies how a system's outcome responds to
// volatility in its input.
//
// # Overview
//
// A system exposes a payoff function f(stressor). antifragile perturbs the
// stressor by ±δ around an operating point x and applies the discrete form
// of Jensen's inequality:
//
//	f(x-δ) + f(x+δ)  vs  2·f(x)
//
// The answer is a Triad:
//   - Antifragile: sum > 2·f(x) (convex, benefits from volatility)
//   - Robust:      sum = 2·f(x) (linear, unaffected by volatility)
//   - Fragile:     sum < 2·f(x) (concave, harmed by volatility)
//
// # Quick Start
//
// Implement System for your type:
//
//	type OptionsPortfolio struct {
//	    VegaExposure float64
//	}
//
//	func (p OptionsPortfolio) Payoff(volatility float64) float64 {
//	    return p.VegaExposure * volatility * volatility
//	}
//
//	triad := antifragile.Classify(OptionsPortfolio{VegaExposure: 1}, 0.2, 0.05)
//	fmt.Println(triad) // antifragile
//
// Or adapt a plain function:
//
//	root := antifragile.Func[float64, float64](math.Sqrt)
//	antifragile.Classify(root, 10, 1) // Fragile
//
// # Verified systems
//
// Check classifies once and keeps the system and its Triad together:
//
//	v := antifragile.Check(OptionsPortfolio{VegaExposure: 1}, 0.2, 0.05)
//	if v.IsAntifragile() {
//	    // route more volatility its way
//	}
//
// A Verified never changes. To test another operating point build a new
// one, or ask StillHolds.
//
// # The Triad
//
// Triad values are ordered by desirability, Fragile < Robust < Antifragile,
// and the zero value is Robust. They convert losslessly to a byte
// (0, 1, 2) with Uint8/FromUint8 and to a lowercase name with
// String/ParseTriad. Out-of-range input is rejected with
// *InvalidTriadValueError or *ParseTriadError, never coerced.
//
// # Exact comparison
//
// Classify compares payoffs exactly. For float payoffs this makes
// classification near the linear boundary sensitive to rounding noise; that
// is deliberate. ClassifyWithTolerance adds an explicit dead band when
// rounding must be ignored.
//
// # Encoding
//
// Triad always implements encoding.TextMarshaler, so JSON and YAML see its
// canonical name. On top of that, Triad's YAML marshalling (gopkg.in/yaml.v3)
// accepts the byte form, and Verified encodes as
// {system, at, delta, classification}. Build with
// -tags antifragile_noencoding to leave those out. Classification results
// and the name form are the same either way.
//
// # Testing
//
// Use assertions to pin the curvature of your own systems:
//
//	func TestPortfolio(t *testing.T) {
//	    antifragile.AssertAntifragile(t, OptionsPortfolio{VegaExposure: 1}, 0.2, 0.05)
//	}
//
// # See Also
//
//   - cmd/antifragile - classify expressions and YAML surveys from the shell
//   - examples/ - Working code samples
package antifragile
