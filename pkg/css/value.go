package css

import (
	"strconv"
	"strings"
)

// Kind discriminates the token variants that can appear in a transition
// layer. Every switch over Kind in this package handles all three cases.
type Kind int

const (
	// KindUnit is a numeric value with a time unit, e.g. "200ms"
	KindUnit Kind = iota
	// KindKeyword is a bare identifier, e.g. "opacity" or "ease-in"
	KindKeyword
	// KindFunction is a functional easing, e.g. "cubic-bezier(0.4, 0, 1, 1)"
	KindFunction
)

// Value is a single typed token of a transition layer.
type Value struct {
	Kind Kind

	// KindUnit
	Number float64
	Unit   string

	// KindKeyword
	Keyword string

	// KindFunction
	Name string
	Args []string
}

// Unit constructs a time value.
func Unit(number float64, unit string) Value {
	return Value{Kind: KindUnit, Number: number, Unit: unit}
}

// Keyword constructs an identifier value.
func Keyword(kw string) Value {
	return Value{Kind: KindKeyword, Keyword: kw}
}

// Function constructs a functional value with pre-normalized arguments.
func Function(name string, args []string) Value {
	return Value{Kind: KindFunction, Name: name, Args: args}
}

// String renders the value in canonical form.
func (v Value) String() string {
	switch v.Kind {
	case KindUnit:
		return formatNumber(v.Number) + v.Unit
	case KindKeyword:
		return v.Keyword
	case KindFunction:
		return v.Name + "(" + strings.Join(v.Args, ", ") + ")"
	}
	return ""
}

// Equal reports whether two values are field-wise identical. Unit values
// compare by duration semantics, so "1s" equals "1000ms".
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindUnit:
		return v.milliseconds() == other.milliseconds()
	case KindKeyword:
		return v.Keyword == other.Keyword
	case KindFunction:
		if v.Name != other.Name || len(v.Args) != len(other.Args) {
			return false
		}
		for i := range v.Args {
			if v.Args[i] != other.Args[i] {
				return false
			}
		}
		return true
	}
	return false
}

func (v Value) milliseconds() float64 {
	if v.Unit == "s" {
		return v.Number * 1000
	}
	return v.Number
}

// Layer is one entry of a multi-layer transition value: an ordered tuple of
// at most four tokens in the order the parser assigned them. Use Extract to
// resolve tokens into their semantic roles.
type Layer []Value

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
