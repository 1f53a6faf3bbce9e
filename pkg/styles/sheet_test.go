package styles

import (
	"strings"
	"testing"
)

func TestParseSheet(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantRules int
		wantErr   bool
	}{
		{
			name:      "single rule",
			input:     ".card { opacity: 1; transition: opacity 200ms ease; }",
			wantRules: 1,
		},
		{
			name:      "multiple rules",
			input:     ".a { color: red; }\n.b { color: blue; }",
			wantRules: 2,
		},
		{
			name:      "empty sheet",
			input:     "",
			wantRules: 0,
		},
		{
			name:      "comment before rule",
			input:     "/* header */\n.a { color: red; }",
			wantRules: 1,
		},
		{
			name:      "at-rule kept opaque",
			input:     "@media (min-width: 600px) { .a { color: red; } }\n.b { color: blue; }",
			wantRules: 2,
		},
		{
			name:    "unterminated block",
			input:   ".a { color: red;",
			wantErr: true,
		},
		{
			name:    "declaration without colon",
			input:   ".a { nonsense; }",
			wantErr: true,
		},
		{
			name:    "text outside a block",
			input:   "just some text",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet, err := ParseSheet(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(sheet.Rules) != tt.wantRules {
				t.Errorf("rule count = %d, expected %d", len(sheet.Rules), tt.wantRules)
			}
		})
	}
}

func TestSheet_RoundTrip(t *testing.T) {
	input := `/* base styles */
.card {
  opacity: 1;
  transition: opacity 200ms ease;
  border-radius: 4px;
}

@media (min-width: 600px) { .card { opacity: 0.5; } }

.panel {
  transition: transform 1s linear 100ms;
}
`
	first, err := ParseSheet(input)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	second, err := ParseSheet(first.String())
	if err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}

	if len(first.Rules) != len(second.Rules) {
		t.Fatalf("rule count changed: %d != %d", len(first.Rules), len(second.Rules))
	}
	for i := range first.Rules {
		a, b := first.Rules[i], second.Rules[i]
		if a.Selector != b.Selector {
			t.Errorf("rule %d selector changed: %q != %q", i, a.Selector, b.Selector)
		}
		if len(a.Declarations) != len(b.Declarations) {
			t.Errorf("rule %d declaration count changed", i)
			continue
		}
		for j := range a.Declarations {
			if a.Declarations[j] != b.Declarations[j] {
				t.Errorf("rule %d declaration %d changed: %v != %v", i, j, a.Declarations[j], b.Declarations[j])
			}
		}
	}

	if !strings.Contains(first.String(), "@media (min-width: 600px)") {
		t.Error("opaque at-rule was not preserved")
	}
	if !strings.Contains(first.String(), "/* base styles */") {
		t.Error("leading comment was not preserved")
	}
}

func TestSheet_StackedCommentsPreserved(t *testing.T) {
	input := "/* license header */\n/* section: cards */\n.card { color: red; }"
	sheet, err := ParseSheet(input)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	out := sheet.String()
	if !strings.Contains(out, "/* license header */") {
		t.Error("first stacked comment was dropped")
	}
	if !strings.Contains(out, "/* section: cards */") {
		t.Error("second stacked comment was dropped")
	}
	if strings.Index(out, "/* license header */") > strings.Index(out, "/* section: cards */") {
		t.Error("stacked comments reordered")
	}
}

func TestSheet_SemicolonInsideParens(t *testing.T) {
	value := "url(data:image/png;base64,iVBORw0KGgo=)"
	sheet, err := ParseSheet(".a { background: " + value + "; transition: opacity 1s; }")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	got, found := sheet.Rules[0].Declaration("background")
	if !found {
		t.Fatal("background declaration was dropped")
	}
	if got != value {
		t.Errorf("background = %q, expected %q", got, value)
	}
	if _, found := sheet.Rules[0].Declaration("transition"); !found {
		t.Error("declaration after the data URI was lost")
	}
}

func TestSheet_PreservesUnknownDeclarations(t *testing.T) {
	sheet, err := ParseSheet(".a { transition: opacity 1s; backdrop-filter: blur(2px); }")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	value, found := sheet.Rules[0].Declaration("backdrop-filter")
	if !found {
		t.Fatal("unknown declaration was dropped")
	}
	if value != "blur(2px)" {
		t.Errorf("unknown declaration value = %q, expected %q", value, "blur(2px)")
	}
}

func TestSheet_Clone(t *testing.T) {
	sheet, err := ParseSheet(".a { color: red; }")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	clone := sheet.Clone()
	clone.Rules[0].Declarations[0].Value = "blue"

	if value, _ := sheet.Rules[0].Declaration("color"); value != "red" {
		t.Errorf("mutating a clone changed the original: color = %q", value)
	}
}
