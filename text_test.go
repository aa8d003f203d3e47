package antifragile

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestTriad_JSON(t *testing.T) {
	for _, triad := range All() {
		data, err := json.Marshal(triad)
		if err != nil {
			t.Fatalf("Marshal(%s) failed: %v", triad, err)
		}
		if want := `"` + triad.String() + `"`; string(data) != want {
			t.Errorf("Marshal(%s) = %s, want %s", triad, data, want)
		}

		var back Triad
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("Unmarshal(%s) failed: %v", data, err)
		}
		if back != triad {
			t.Errorf("JSON round trip %s → %s", triad, back)
		}
	}
}

func TestTriad_JSONInStruct(t *testing.T) {
	type report struct {
		Name  string `json:"name"`
		Triad Triad  `json:"triad"`
	}

	var r report
	if err := json.Unmarshal([]byte(`{"name":"cache","triad":"AntiFragile"}`), &r); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if diff := cmp.Diff(report{Name: "cache", Triad: Antifragile}, r); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}

	// Triad also works as a map key
	counts := map[Triad]int{Fragile: 1, Antifragile: 2}
	data, err := json.Marshal(counts)
	if err != nil {
		t.Fatalf("Marshal map failed: %v", err)
	}
	if string(data) != `{"antifragile":2,"fragile":1}` {
		t.Errorf("Unexpected map encoding: %s", data)
	}
}

func TestTriad_JSONInvalid(t *testing.T) {
	var triad Triad
	err := json.Unmarshal([]byte(`"sturdy"`), &triad)
	if !errors.Is(err, ErrParseTriad) {
		t.Errorf("Expected ErrParseTriad, got %v", err)
	}

	// Numbers are not accepted by the JSON form
	if err := json.Unmarshal([]byte(`2`), &triad); err == nil {
		t.Error("Expected error for numeric JSON triad")
	}

	if _, err := json.Marshal(Triad(9)); !errors.Is(err, ErrInvalidTriadValue) {
		t.Errorf("Expected ErrInvalidTriadValue marshalling Triad(9), got %v", err)
	}
}

// Holds with and without the antifragile_noencoding build tag.
func TestTriad_NameFormInEveryBuild(t *testing.T) {
	data, err := json.Marshal(Fragile)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"fragile"` {
		t.Errorf("json.Marshal(Fragile) = %s, want \"fragile\"", data)
	}

	type entry struct {
		Expect Triad `yaml:"expect"`
	}

	out, err := yaml.Marshal(entry{Expect: Antifragile})
	if err != nil {
		t.Fatalf("yaml.Marshal failed: %v", err)
	}
	if string(out) != "expect: antifragile\n" {
		t.Errorf("yaml.Marshal = %q", out)
	}

	var e entry
	if err := yaml.Unmarshal([]byte("expect: ROBUST\n"), &e); err != nil {
		t.Fatalf("yaml.Unmarshal failed: %v", err)
	}
	if e.Expect != Robust {
		t.Errorf("Expected robust, got %s", e.Expect)
	}

	err = yaml.Unmarshal([]byte("expect: sturdy\n"), &e)
	if !errors.Is(err, ErrParseTriad) {
		t.Errorf("Expected ErrParseTriad, got %v", err)
	}
}
