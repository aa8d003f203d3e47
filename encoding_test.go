//go:build !antifragile_noencoding

package antifragile

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// scaled is a serializable System: f(x) = Multiplier·x.
type scaled struct {
	Multiplier float64 `json:"multiplier" yaml:"multiplier"`
}

func (s scaled) Payoff(x float64) float64 { return s.Multiplier * x }

func TestTriad_YAML(t *testing.T) {
	for _, triad := range All() {
		data, err := yaml.Marshal(triad)
		if err != nil {
			t.Fatalf("Marshal(%s) failed: %v", triad, err)
		}
		if got := strings.TrimSpace(string(data)); got != triad.String() {
			t.Errorf("Marshal(%s) = %q", triad, got)
		}

		var back Triad
		if err := yaml.Unmarshal(data, &back); err != nil {
			t.Fatalf("Unmarshal(%q) failed: %v", data, err)
		}
		if back != triad {
			t.Errorf("YAML round trip %s → %s", triad, back)
		}
	}
}

func TestTriad_YAMLByteForm(t *testing.T) {
	tests := []struct {
		input string
		want  Triad
	}{
		{"0", Fragile},
		{"1", Robust},
		{"2", Antifragile},
		{"Robust", Robust},
	}

	for _, tt := range tests {
		var got Triad
		if err := yaml.Unmarshal([]byte(tt.input), &got); err != nil {
			t.Fatalf("Unmarshal(%q) failed: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Unmarshal(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestTriad_YAMLInvalid(t *testing.T) {
	tests := []struct {
		input  string
		target error
	}{
		{"3", ErrInvalidTriadValue},
		{"255", ErrInvalidTriadValue},
		{"-1", ErrInvalidTriadValue},
		{"1000", ErrInvalidTriadValue},
		{"sturdy", ErrParseTriad},
	}

	for _, tt := range tests {
		var got Triad
		err := yaml.Unmarshal([]byte(tt.input), &got)
		if !errors.Is(err, tt.target) {
			t.Errorf("Unmarshal(%q): expected %v, got %v", tt.input, tt.target, err)
		}
	}

	var got Triad
	if err := yaml.Unmarshal([]byte("[robust]"), &got); err == nil {
		t.Error("Expected error for sequence node")
	}
}

func TestVerified_JSONRoundTrip(t *testing.T) {
	v := Check(scaled{Multiplier: 2}, 10.0, 1.0)

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := `{"system":{"multiplier":2},"at":10,"delta":1,"classification":"robust"}`
	if string(data) != want {
		t.Errorf("Marshal = %s\nwant      %s", data, want)
	}

	var back Verified[scaled, float64, float64]
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if back.Classification() != v.Classification() {
		t.Errorf("classification %s → %s", v.Classification(), back.Classification())
	}
	if back.Inner() != v.Inner() || back.At() != v.At() || back.Delta() != v.Delta() {
		t.Errorf("round trip lost fields: %+v vs %+v", back.Inner(), v.Inner())
	}
}

func TestVerified_JSONTrustsStoredClassification(t *testing.T) {
	// A linear system stored as Antifragile: decoding does not re-classify.
	data := `{"system":{"multiplier":3},"at":1,"delta":1,"classification":"antifragile"}`

	var v Verified[scaled, float64, float64]
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !v.IsAntifragile() {
		t.Errorf("Expected stored Antifragile, got %s", v.Classification())
	}
	if v.StillHolds(v.At(), v.Delta()) {
		t.Error("StillHolds should expose the stale classification")
	}
}

func TestVerified_JSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Missing classification", `{"system":{"multiplier":2},"at":10,"delta":1}`},
		{"Null classification", `{"system":{"multiplier":2},"at":10,"delta":1,"classification":null}`},
		{"Bad classification", `{"system":{"multiplier":2},"at":10,"delta":1,"classification":"brittle"}`},
		{"Bad system", `{"system":"two","at":10,"delta":1,"classification":"robust"}`},
		{"Not an object", `[1,2,3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Verified[scaled, float64, float64]
			err := json.Unmarshal([]byte(tt.input), &v)
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.HasPrefix(err.Error(), "verified: ") {
				t.Errorf("Error not prefixed: %v", err)
			}
		})
	}
}

func TestVerified_YAMLRoundTrip(t *testing.T) {
	v := Check(Power{Coefficient: 1, Exponent: 2}, 10.0, 1.0)

	data, err := yaml.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), "classification: antifragile") {
		t.Errorf("YAML missing classification:\n%s", data)
	}

	var back Verified[Power, float64, float64]
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !back.IsAntifragile() || back.Inner() != v.Inner() {
		t.Errorf("YAML round trip lost data:\n%s", data)
	}
}

func TestVerified_YAMLMissingClassification(t *testing.T) {
	input := "system:\n  coefficient: 1\n  exponent: 2\nat: 10\ndelta: 1\n"

	var v Verified[Power, float64, float64]
	err := yaml.Unmarshal([]byte(input), &v)
	if !errors.Is(err, errMissingClassification) {
		t.Errorf("Expected missing classification error, got %v", err)
	}
}
