package css

import (
	"regexp"
	"strconv"
	"strings"
)

// easingKeywords are the keyword-form timing functions from the CSS Easing
// Functions spec.
var easingKeywords = map[string]bool{
	"ease":        true,
	"ease-in":     true,
	"ease-out":    true,
	"ease-in-out": true,
	"linear":      true,
	"step-start":  true,
	"step-end":    true,
}

// stepPositions are the valid second arguments to steps().
var stepPositions = map[string]bool{
	"jump-start": true,
	"jump-end":   true,
	"jump-none":  true,
	"jump-both":  true,
	"start":      true,
	"end":        true,
}

var identPattern = regexp.MustCompile(`^-?[A-Za-z_][A-Za-z0-9_-]*$`)

// ParseTransition parses the text of a CSS transition shorthand into its
// layers. Malformed input reports ok=false; parsing never panics and
// invalidity is not an error condition.
func ParseTransition(text string) ([]Layer, bool) {
	if strings.TrimSpace(text) == "" {
		return nil, false
	}

	parts, balanced := splitTopLevel(text, ',')
	if !balanced {
		return nil, false
	}

	layers := make([]Layer, 0, len(parts))
	for _, part := range parts {
		layer, ok := parseLayer(part)
		if !ok {
			return nil, false
		}
		layers = append(layers, layer)
	}
	return layers, true
}

// parseLayer parses a single comma-free layer such as "opacity 200ms ease-in 0s".
// Tokens may appear in any order; roles are assigned by token shape, except
// that the first time value is the duration and the second the delay.
func parseLayer(text string) (Layer, bool) {
	tokens, balanced := splitTopLevel(text, ' ')
	if !balanced || len(tokens) == 0 || len(tokens) > 4 {
		return nil, false
	}

	var layer Layer
	var property, duration, delay, timing *Value

	for _, tok := range tokens {
		switch {
		case looksLikeTime(tok):
			val, ok := parseTime(tok)
			if !ok {
				return nil, false
			}
			switch {
			case duration == nil:
				// Durations must be non-negative; only delays may rewind.
				if val.Number < 0 {
					return nil, false
				}
				duration = &val
			case delay == nil:
				delay = &val
			default:
				return nil, false
			}
		case strings.Contains(tok, "("):
			val, ok := parseEasingFunction(tok)
			if !ok || timing != nil {
				return nil, false
			}
			timing = &val
		default:
			ident := strings.ToLower(tok)
			if !identPattern.MatchString(ident) {
				return nil, false
			}
			if easingKeywords[ident] {
				if timing != nil {
					return nil, false
				}
				val := Keyword(ident)
				timing = &val
			} else {
				if property != nil {
					return nil, false
				}
				val := Keyword(ident)
				property = &val
			}
		}
	}

	for _, v := range []*Value{property, duration, delay, timing} {
		if v != nil {
			layer = append(layer, *v)
		}
	}
	return layer, true
}

// looksLikeTime reports whether the token starts like a dimension. Tokens
// that look like times but fail to parse are invalid rather than falling
// through to the identifier path.
func looksLikeTime(tok string) bool {
	if tok == "" {
		return false
	}
	c := tok[0]
	return c == '.' || c == '+' || (c >= '0' && c <= '9') ||
		(c == '-' && len(tok) > 1 && (tok[1] == '.' || (tok[1] >= '0' && tok[1] <= '9')))
}

// parseTime parses "<number>s" or "<number>ms". Unitless numbers are
// rejected; CSS time values always carry a unit.
func parseTime(tok string) (Value, bool) {
	lower := strings.ToLower(tok)
	var unit, number string
	switch {
	case strings.HasSuffix(lower, "ms"):
		unit, number = "ms", lower[:len(lower)-2]
	case strings.HasSuffix(lower, "s"):
		unit, number = "s", lower[:len(lower)-1]
	default:
		return Value{}, false
	}

	n, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return Value{}, false
	}
	return Unit(n, unit), true
}

// parseEasingFunction parses and validates cubic-bezier() or steps().
// Arguments are normalized so the canonical rendering is stable.
func parseEasingFunction(tok string) (Value, bool) {
	open := strings.Index(tok, "(")
	if open <= 0 || !strings.HasSuffix(tok, ")") {
		return Value{}, false
	}
	name := strings.ToLower(tok[:open])
	rawArgs := strings.Split(tok[open+1:len(tok)-1], ",")
	for i := range rawArgs {
		rawArgs[i] = strings.TrimSpace(rawArgs[i])
	}

	switch name {
	case "cubic-bezier":
		if len(rawArgs) != 4 {
			return Value{}, false
		}
		args := make([]string, 4)
		for i, raw := range rawArgs {
			n, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return Value{}, false
			}
			// x1 and x2 are constrained to [0, 1]; y values are free.
			if (i == 0 || i == 2) && (n < 0 || n > 1) {
				return Value{}, false
			}
			args[i] = formatNumber(n)
		}
		return Function(name, args), true
	case "steps":
		if len(rawArgs) < 1 || len(rawArgs) > 2 {
			return Value{}, false
		}
		count, err := strconv.Atoi(rawArgs[0])
		if err != nil || count <= 0 {
			return Value{}, false
		}
		args := []string{strconv.Itoa(count)}
		if len(rawArgs) == 2 {
			pos := strings.ToLower(rawArgs[1])
			if !stepPositions[pos] {
				return Value{}, false
			}
			args = append(args, pos)
		}
		return Function(name, args), true
	}
	return Value{}, false
}

// splitTopLevel splits text on a separator, ignoring separators inside
// parentheses. A space separator additionally treats runs of whitespace as
// one split point. Returns balanced=false on mismatched parentheses.
func splitTopLevel(text string, sep rune) ([]string, bool) {
	var parts []string
	var current strings.Builder
	depth := 0

	flush := func() {
		part := strings.TrimSpace(current.String())
		current.Reset()
		if part != "" || sep == ',' {
			parts = append(parts, part)
		}
	}

	for _, r := range text {
		switch {
		case r == '(':
			depth++
			current.WriteRune(r)
		case r == ')':
			depth--
			if depth < 0 {
				return nil, false
			}
			current.WriteRune(r)
		case depth == 0 && ((sep == ' ' && (r == ' ' || r == '\t' || r == '\n')) || (sep != ' ' && r == sep)):
			flush()
		default:
			current.WriteRune(r)
		}
	}
	if depth != 0 {
		return nil, false
	}
	flush()
	return parts, true
}
