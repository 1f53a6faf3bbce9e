package css

import "testing"

func TestParseTransition_Valid(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantText  string
		wantCount int
	}{
		{
			name:      "full layer",
			input:     "opacity 200ms ease-in 0s",
			wantText:  "opacity 200ms 0s ease-in",
			wantCount: 1,
		},
		{
			name:      "property only",
			input:     "opacity",
			wantText:  "opacity",
			wantCount: 1,
		},
		{
			name:      "duration only",
			input:     "150ms",
			wantText:  "150ms",
			wantCount: 1,
		},
		{
			name:      "reordered tokens normalize",
			input:     "ease-in 200ms opacity",
			wantText:  "opacity 200ms ease-in",
			wantCount: 1,
		},
		{
			name:      "two time values are duration then delay",
			input:     "transform 1s 500ms",
			wantText:  "transform 1s 500ms",
			wantCount: 1,
		},
		{
			name:      "negative delay allowed",
			input:     "opacity 1s -200ms",
			wantText:  "opacity 1s -200ms",
			wantCount: 1,
		},
		{
			name:      "cubic bezier function",
			input:     "width 300ms cubic-bezier(0.4, 0, 1, 1)",
			wantText:  "width 300ms cubic-bezier(0.4, 0, 1, 1)",
			wantCount: 1,
		},
		{
			name:      "steps function with position",
			input:     "height 2s steps(4, jump-end)",
			wantText:  "height 2s steps(4, jump-end)",
			wantCount: 1,
		},
		{
			name:      "multiple layers",
			input:     "opacity 200ms ease, transform 1s linear 100ms",
			wantText:  "opacity 200ms ease, transform 1s 100ms linear",
			wantCount: 2,
		},
		{
			name:      "extra whitespace collapses",
			input:     "  opacity   200ms\tease  ",
			wantText:  "opacity 200ms ease",
			wantCount: 1,
		},
		{
			name:      "uppercase normalizes",
			input:     "OPACITY 200MS EASE-IN",
			wantText:  "opacity 200ms ease-in",
			wantCount: 1,
		},
		{
			name:      "fractional seconds",
			input:     "all .25s",
			wantText:  "all 0.25s",
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layers, ok := ParseTransition(tt.input)
			if !ok {
				t.Fatalf("ParseTransition(%q) reported invalid, expected valid", tt.input)
			}
			if len(layers) != tt.wantCount {
				t.Errorf("layer count = %d, expected %d", len(layers), tt.wantCount)
			}
			if got := ToValueLayers(layers); got != tt.wantText {
				t.Errorf("canonical text = %q, expected %q", got, tt.wantText)
			}
		})
	}
}

func TestParseTransition_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "whitespace only", input: "   "},
		{name: "not a transition", input: "not a transition !!"},
		{name: "duplicate property", input: "opacity transform 200ms"},
		{name: "duplicate timing", input: "ease linear"},
		{name: "three time values", input: "1s 2s 3s"},
		{name: "negative duration", input: "opacity -1s"},
		{name: "unitless number", input: "opacity 200"},
		{name: "bad time suffix", input: "opacity 200px"},
		{name: "unknown function", input: "opacity 1s bouncy(1, 2)"},
		{name: "bezier wrong arity", input: "opacity 1s cubic-bezier(0.4, 0)"},
		{name: "bezier x out of range", input: "opacity 1s cubic-bezier(2, 0, 1, 1)"},
		{name: "steps zero count", input: "opacity 1s steps(0)"},
		{name: "steps bad position", input: "opacity 1s steps(4, sideways)"},
		{name: "unbalanced parens", input: "opacity 1s steps(4"},
		{name: "trailing comma", input: "opacity 200ms,"},
		{name: "empty layer between commas", input: "opacity 1s, , transform 1s"},
		{name: "five tokens", input: "opacity 1s 2s ease all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if layers, ok := ParseTransition(tt.input); ok {
				t.Errorf("ParseTransition(%q) = %v, expected invalid", tt.input, layers)
			}
		})
	}
}

func TestParseTransition_RoundTrip(t *testing.T) {
	inputs := []string{
		"opacity 200ms ease-in 0s",
		"all 0s 0s ease",
		"transform 1.5s cubic-bezier(0.25, 0.1, 0.25, 1) 100ms",
		"width 2s steps(4, jump-both) 0s",
		"opacity 200ms ease, transform 1s linear 100ms, all 0s",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first, ok := ParseTransition(input)
			if !ok {
				t.Fatalf("ParseTransition(%q) reported invalid", input)
			}
			text := ToValueLayers(first)
			second, ok := ParseTransition(text)
			if !ok {
				t.Fatalf("re-parse of %q reported invalid", text)
			}
			if len(first) != len(second) {
				t.Fatalf("layer count changed across round trip: %d != %d", len(first), len(second))
			}
			for i := range first {
				if !Extract(first[i]).Equal(Extract(second[i])) {
					t.Errorf("layer %d changed across round trip: %q vs %q", i, ToValue(first[i]), ToValue(second[i]))
				}
			}
		})
	}
}
