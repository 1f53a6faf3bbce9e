package css

import "fmt"

// Defaults supplies the fallback value for each transition sub-property when
// a partial edit leaves a field unresolved.
type Defaults struct {
	Property Value
	Duration Value
	Delay    Value
	Timing   Value
}

// StandardDefaults returns the CSS initial values for the transition
// shorthand.
func StandardDefaults() Defaults {
	return Defaults{
		Property: Keyword("all"),
		Duration: Unit(0, "s"),
		Delay:    Unit(0, "s"),
		Timing:   Keyword("ease"),
	}
}

// DefaultsFromStrings builds Defaults from user-supplied settings text. Each
// string must parse as a valid single-field transition token of the right
// role; empty strings keep the standard value.
func DefaultsFromStrings(property, duration, delay, timing string) (Defaults, error) {
	defaults := StandardDefaults()

	if property != "" {
		if !identPattern.MatchString(property) || easingKeywords[property] {
			return Defaults{}, fmt.Errorf("invalid default transition property %q", property)
		}
		defaults.Property = Keyword(property)
	}
	if duration != "" {
		v, ok := parseTime(duration)
		if !ok || v.Number < 0 {
			return Defaults{}, fmt.Errorf("invalid default duration %q", duration)
		}
		defaults.Duration = v
	}
	if delay != "" {
		v, ok := parseTime(delay)
		if !ok {
			return Defaults{}, fmt.Errorf("invalid default delay %q", delay)
		}
		defaults.Delay = v
	}
	if timing != "" {
		layer, ok := parseLayer(timing)
		if !ok || len(layer) != 1 || Extract(layer).Timing == nil {
			return Defaults{}, fmt.Errorf("invalid default timing function %q", timing)
		}
		defaults.Timing = layer[0]
	}
	return defaults, nil
}
