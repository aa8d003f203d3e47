//go:build !antifragile_noencoding

package antifragile

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAML and Verified encoding. Build with -tags antifragile_noencoding to
// drop it; classification does not depend on anything in this file. The
// Triad text form in text.go stays available either way.

// MarshalYAML encodes t as its canonical name.
func (t Triad) MarshalYAML() (interface{}, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTriadValue, int8(t))
	}
	return t.String(), nil
}

// UnmarshalYAML accepts either the canonical name or the byte encoding.
func (t *Triad) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("triad: expected a scalar, got YAML node kind %d at line %d", value.Kind, value.Line)
	}

	var (
		v   Triad
		err error
	)
	if value.ShortTag() == "!!int" {
		var n int
		if err := value.Decode(&n); err != nil {
			return err
		}
		if n < 0 || n > 255 {
			return fmt.Errorf("%w: %d (expected 0, 1, or 2)", ErrInvalidTriadValue, n)
		}
		v, err = FromUint8(uint8(n))
	} else {
		v, err = ParseTriad(value.Value)
	}
	if err != nil {
		return err
	}
	*t = v
	return nil
}

var errMissingClassification = errors.New("verified: missing classification")

type verifiedWire[T any, S any] struct {
	System         T      `json:"system" yaml:"system"`
	At             S      `json:"at" yaml:"at"`
	Delta          S      `json:"delta" yaml:"delta"`
	Classification *Triad `json:"classification" yaml:"classification"`
}

func (v Verified[T, S, P]) wire() verifiedWire[T, S] {
	c := v.classification
	return verifiedWire[T, S]{System: v.system, At: v.at, Delta: v.delta, Classification: &c}
}

func (v *Verified[T, S, P]) fromWire(w verifiedWire[T, S]) error {
	if w.Classification == nil {
		return errMissingClassification
	}
	v.system = w.System
	v.at = w.At
	v.delta = w.Delta
	v.classification = *w.Classification
	return nil
}

// MarshalJSON encodes the system, the operating point, the perturbation and
// the stored classification. The system is encoded with its own rules.
func (v Verified[T, S, P]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.wire())
}

// UnmarshalJSON restores a Verified without re-running the classifier.
func (v *Verified[T, S, P]) UnmarshalJSON(data []byte) error {
	var w verifiedWire[T, S]
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("verified: %w", err)
	}
	return v.fromWire(w)
}

// MarshalYAML mirrors MarshalJSON.
func (v Verified[T, S, P]) MarshalYAML() (interface{}, error) {
	return v.wire(), nil
}

// UnmarshalYAML mirrors UnmarshalJSON.
func (v *Verified[T, S, P]) UnmarshalYAML(value *yaml.Node) error {
	var w verifiedWire[T, S]
	if err := value.Decode(&w); err != nil {
		return fmt.Errorf("verified: %w", err)
	}
	return v.fromWire(w)
}
