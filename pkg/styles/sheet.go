package styles

import (
	"fmt"
	"strings"
)

// Declaration is one "property: value" pair inside a rule. Declarations this
// tool does not understand are carried through untouched.
type Declaration struct {
	Property string
	Value    string
}

// Rule is a single top-level style rule. Blocks the editor cannot edit
// (at-rules with nested blocks) are preserved verbatim in Raw and have no
// declarations.
type Rule struct {
	Selector     string
	Declarations []Declaration
	Comment      string // block comment immediately preceding the rule
	Raw          string
}

// Sheet is an in-memory stylesheet: an ordered list of rules plus any
// trailing comment after the last rule.
type Sheet struct {
	Rules    []Rule
	Trailing string
}

// Declaration returns the value of a property within the rule.
func (r Rule) Declaration(property string) (string, bool) {
	for _, d := range r.Declarations {
		if d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}

// ParseSheet parses stylesheet text into rules. This is not a general CSS
// parser: it understands top-level "selector { prop: value; }" blocks and
// keeps anything else (at-rules, nested blocks) as opaque raw text so the
// file survives a load/save cycle intact.
func ParseSheet(text string) (*Sheet, error) {
	sheet := &Sheet{}
	rest := text

	for {
		rest = strings.TrimLeft(rest, " \t\r\n")
		if rest == "" {
			return sheet, nil
		}

		var comments []string
		for strings.HasPrefix(rest, "/*") {
			end := strings.Index(rest, "*/")
			if end < 0 {
				return nil, fmt.Errorf("unterminated comment")
			}
			comments = append(comments, strings.TrimSpace(rest[:end+2]))
			rest = strings.TrimLeft(rest[end+2:], " \t\r\n")
		}
		comment := strings.Join(comments, "\n")
		if rest == "" {
			sheet.Trailing = comment
			return sheet, nil
		}

		open := strings.IndexRune(rest, '{')
		if open < 0 {
			return nil, fmt.Errorf("expected rule block near %q", snippet(rest))
		}
		selector := strings.TrimSpace(rest[:open])
		if selector == "" {
			return nil, fmt.Errorf("rule with empty selector near %q", snippet(rest))
		}

		body, remaining, err := readBlock(rest[open:])
		if err != nil {
			return nil, err
		}

		if strings.HasPrefix(selector, "@") || strings.ContainsRune(body, '{') {
			sheet.Rules = append(sheet.Rules, Rule{
				Selector: selector,
				Comment:  comment,
				Raw:      selector + " {" + body + "}",
			})
		} else {
			decls, err := parseDeclarations(body, selector)
			if err != nil {
				return nil, err
			}
			sheet.Rules = append(sheet.Rules, Rule{
				Selector:     selector,
				Declarations: decls,
				Comment:      comment,
			})
		}
		rest = remaining
	}
}

// readBlock consumes a brace-balanced block starting at "{" and returns its
// inner text and the remainder of the input.
func readBlock(text string) (body, rest string, err error) {
	depth := 0
	for i, r := range text {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[1:i], text[i+1:], nil
			}
		}
	}
	return "", "", fmt.Errorf("unterminated block near %q", snippet(text))
}

func parseDeclarations(body, selector string) ([]Declaration, error) {
	var decls []Declaration
	for _, part := range splitDeclarations(body) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.HasPrefix(part, "/*") && strings.HasSuffix(part, "*/") {
			continue
		}
		colon := strings.IndexRune(part, ':')
		if colon < 0 {
			return nil, fmt.Errorf("malformed declaration %q in rule %q", snippet(part), selector)
		}
		decls = append(decls, Declaration{
			Property: strings.ToLower(strings.TrimSpace(part[:colon])),
			Value:    strings.TrimSpace(part[colon+1:]),
		})
	}
	return decls, nil
}

// splitDeclarations splits a rule body on semicolons outside parentheses, so
// values like url(data:image/png;base64,...) stay whole.
func splitDeclarations(body string) []string {
	var parts []string
	var current strings.Builder
	depth := 0
	for _, r := range body {
		switch {
		case r == '(':
			depth++
			current.WriteRune(r)
		case r == ')':
			if depth > 0 {
				depth--
			}
			current.WriteRune(r)
		case r == ';' && depth == 0:
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	parts = append(parts, current.String())
	return parts
}

// String renders the sheet back to text with a fixed two-space indent.
// Whitespace is normalized; declarations and rule order are preserved.
func (s *Sheet) String() string {
	var b strings.Builder
	for i, rule := range s.Rules {
		if i > 0 {
			b.WriteString("\n")
		}
		if rule.Comment != "" {
			b.WriteString(rule.Comment)
			b.WriteString("\n")
		}
		if rule.Raw != "" {
			b.WriteString(rule.Raw)
			b.WriteString("\n")
			continue
		}
		b.WriteString(rule.Selector)
		b.WriteString(" {\n")
		for _, d := range rule.Declarations {
			fmt.Fprintf(&b, "  %s: %s;\n", d.Property, d.Value)
		}
		b.WriteString("}\n")
	}
	if s.Trailing != "" {
		if len(s.Rules) > 0 {
			b.WriteString("\n")
		}
		b.WriteString(s.Trailing)
		b.WriteString("\n")
	}
	return b.String()
}

// Clone deep-copies the sheet for undo snapshots.
func (s *Sheet) Clone() *Sheet {
	clone := &Sheet{Trailing: s.Trailing, Rules: make([]Rule, len(s.Rules))}
	for i, rule := range s.Rules {
		copied := rule
		copied.Declarations = append([]Declaration(nil), rule.Declarations...)
		clone.Rules[i] = copied
	}
	return clone
}

func snippet(text string) string {
	text = strings.TrimSpace(text)
	if len(text) > 24 {
		return text[:24] + "..."
	}
	return text
}
