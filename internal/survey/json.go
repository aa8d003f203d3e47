package survey

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/alexshd/antifragile"
)

// Float is a float64 whose JSON form spells NaN and ±Inf as the strings
// "NaN", "+Inf" and "-Inf". encoding/json rejects them as numbers, and a
// payoff outside its domain (log of a negative, say) produces them.
type Float float64

// MarshalJSON encodes finite values as numbers and the rest as strings.
func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}
	return json.Marshal(v)
}

// UnmarshalJSON accepts a number or one of the strings MarshalJSON writes.
func (f *Float) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || (!math.IsNaN(v) && !math.IsInf(v, 0)) {
			return fmt.Errorf("survey: invalid non-finite float %q", s)
		}
		*f = Float(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

type resultJSON struct {
	Name           string             `json:"name"`
	At             Float              `json:"at"`
	Delta          Float              `json:"delta"`
	Tolerance      Float              `json:"tolerance,omitempty"`
	Below          Float              `json:"below"`
	Center         Float              `json:"center"`
	Above          Float              `json:"above"`
	Sum            Float              `json:"sum"`
	Twin           Float              `json:"twin"`
	Classification antifragile.Triad  `json:"classification"`
	Expect         *antifragile.Triad `json:"expect,omitempty"`
	Error          string             `json:"error,omitempty"`
}

// MarshalJSON writes r with non-finite payoffs encoded as Float does.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		Name:           r.Name,
		At:             Float(r.At),
		Delta:          Float(r.Delta),
		Tolerance:      Float(r.Tolerance),
		Below:          Float(r.Below),
		Center:         Float(r.Center),
		Above:          Float(r.Above),
		Sum:            Float(r.Sum),
		Twin:           Float(r.Twin),
		Classification: r.Classification,
		Expect:         r.Expect,
		Error:          r.Error,
	})
}

// UnmarshalJSON reads what MarshalJSON writes. Err is not restored.
func (r *Result) UnmarshalJSON(data []byte) error {
	var w resultJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*r = Result{
		Name:           w.Name,
		At:             float64(w.At),
		Delta:          float64(w.Delta),
		Tolerance:      float64(w.Tolerance),
		Below:          float64(w.Below),
		Center:         float64(w.Center),
		Above:          float64(w.Above),
		Sum:            float64(w.Sum),
		Twin:           float64(w.Twin),
		Classification: w.Classification,
		Expect:         w.Expect,
		Error:          w.Error,
	}
	return nil
}
