package antifragile

import (
	"errors"
	"fmt"
)

// Triad is the three-way response of a system to volatility.
//
// Values are ordered by desirability, so the ordinary comparison operators
// rank them: Fragile < Robust < Antifragile. The zero value is Robust, the
// "no evidence either way" baseline.
type Triad int8

const (
	Fragile     Triad = -1 // Harmed by volatility (concave response)
	Robust      Triad = 0  // Unaffected by volatility (linear response)
	Antifragile Triad = 1  // Benefits from volatility (convex response)
)

var (
	// ErrInvalidTriadValue matches every *InvalidTriadValueError via errors.Is.
	ErrInvalidTriadValue = errors.New("invalid triad value")

	// ErrParseTriad matches every *ParseTriadError via errors.Is.
	ErrParseTriad = errors.New("invalid triad string")
)

// Byte and name tables, indexed by rank. The inverse lookups below walk
// these tables explicitly so no out-of-range value is ever coerced.
var (
	triadByRank = [...]Triad{Fragile, Robust, Antifragile}
	triadNames  = [...]string{"fragile", "robust", "antifragile"}
	triadLabels = [...]string{
		"Fragile (harmed by volatility)",
		"Robust (unaffected by volatility)",
		"Antifragile (benefits from volatility)",
	}
)

// All returns every Triad in ascending order of desirability.
func All() []Triad {
	out := make([]Triad, len(triadByRank))
	copy(out, triadByRank[:])
	return out
}

// Valid reports whether t is one of the three defined values.
func (t Triad) Valid() bool {
	return t >= Fragile && t <= Antifragile
}

// Rank returns the desirability rank: Fragile=0, Robust=1, Antifragile=2.
// It is also the single-byte encoding of t. Rank of an invalid Triad is
// meaningless; check Valid first when t comes from outside.
func (t Triad) Rank() uint8 {
	return uint8(t - Fragile)
}

// Uint8 returns the byte encoding of t (same as Rank).
func (t Triad) Uint8() uint8 {
	return t.Rank()
}

// FromUint8 decodes a byte produced by Uint8. Any value other than 0, 1 or 2
// fails with *InvalidTriadValueError.
func FromUint8(v uint8) (Triad, error) {
	if int(v) >= len(triadByRank) {
		return Robust, &InvalidTriadValueError{Value: v}
	}
	return triadByRank[v], nil
}

// ParseTriad decodes one of "fragile", "robust" or "antifragile", ignoring
// ASCII case. Anything else, including surrounding whitespace and non-ASCII
// look-alikes, fails with *ParseTriadError.
func ParseTriad(s string) (Triad, error) {
	for i, name := range triadNames {
		if equalFoldASCII(s, name) {
			return triadByRank[i], nil
		}
	}
	return Robust, &ParseTriadError{Input: s}
}

// equalFoldASCII reports whether s equals the lowercase name when only
// ASCII letters are folded. strings.EqualFold would also match Unicode
// variants such as 'ſ' for 's'.
func equalFoldASCII(s, name string) bool {
	if len(s) != len(name) {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != name[i] {
			return false
		}
	}
	return true
}

// String returns the lowercase canonical name.
func (t Triad) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Triad(%d)", int8(t))
	}
	return triadNames[t.Rank()]
}

// Describe returns a human-readable label such as
// "Antifragile (benefits from volatility)".
func (t Triad) Describe() string {
	if !t.Valid() {
		return t.String()
	}
	return triadLabels[t.Rank()]
}

// IsFragile reports whether t is Fragile.
func (t Triad) IsFragile() bool { return t == Fragile }

// IsRobust reports whether t is Robust.
func (t Triad) IsRobust() bool { return t == Robust }

// IsAntifragile reports whether t is Antifragile.
func (t Triad) IsAntifragile() bool { return t == Antifragile }

// Opposite swaps Fragile and Antifragile. Robust is its own opposite.
func (t Triad) Opposite() Triad {
	return -t
}

// Compare returns -1, 0 or +1 as a is less desirable than, as desirable as,
// or more desirable than b. Suitable for slices.SortFunc.
func Compare(a, b Triad) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// InvalidTriadValueError is returned when a byte outside {0, 1, 2} is
// decoded as a Triad.
type InvalidTriadValueError struct {
	Value uint8
}

func (e *InvalidTriadValueError) Error() string {
	return fmt.Sprintf("invalid triad value: %d (expected 0, 1, or 2)", e.Value)
}

func (e *InvalidTriadValueError) Is(target error) bool {
	return target == ErrInvalidTriadValue
}

// ParseTriadError is returned when a string is not one of the three
// canonical names.
type ParseTriadError struct {
	Input string
}

func (e *ParseTriadError) Error() string {
	return fmt.Sprintf("invalid triad string %q (expected \"antifragile\", \"fragile\", or \"robust\")", e.Input)
}

func (e *ParseTriadError) Is(target error) bool {
	return target == ErrParseTriad
}
