package antifragile

import "fmt"

// MarshalText encodes t as its canonical name. encoding/json and yaml.v3
// both use it, so a Triad never leaks its int8 representation.
func (t Triad) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTriadValue, int8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText decodes a canonical name, ignoring ASCII case.
func (t *Triad) UnmarshalText(text []byte) error {
	v, err := ParseTriad(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
