package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/tween-tui/tween/pkg/css"
	"github.com/tween-tui/tween/pkg/styles"
)

func (m *LayerEditorModel) View() string {
	var b strings.Builder

	header := fmt.Sprintf("Transition layer %d: %s", m.State.Index+1, m.selector)
	b.WriteString(HeaderStyle.Render(header))
	b.WriteString("\n\n")

	b.WriteString(m.renderTextRow())
	b.WriteString("\n")
	b.WriteString(m.renderFieldRows())
	b.WriteString("\n")
	b.WriteString(m.renderPreview())

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render("× " + m.errMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(HelpStyle.Render("tab: next field • ↑/↓: adjust • enter: commit • esc: back • ctrl+d: delete layer"))

	width := m.width
	if width <= 0 {
		width = 80
	}
	border := ActiveBorderStyle
	return border.Width(width - 2).Render(b.String())
}

// renderTextRow shows the free-text buffer, marked red when the last commit
// attempt failed to parse.
func (m *LayerEditorModel) renderTextRow() string {
	label := m.fieldLabel(fieldText, "value")
	input := m.textInput.View()
	if m.State.Buffer.IsInvalid() {
		input = InvalidInputStyle.Render(m.State.Buffer.Value())
		input += "  " + ErrorStyle.Render("(not a valid transition)")
	}
	return label + " " + input + "\n"
}

func (m *LayerEditorModel) renderFieldRows() string {
	props := m.State.Fields()
	defaults := m.State.Defaults

	show := func(v *css.Value, fallback css.Value) string {
		if v == nil {
			return DimStyle.Render(fallback.String())
		}
		return NormalStyle.Render(v.String())
	}

	var b strings.Builder
	property := m.propInput.View()
	if m.focus != fieldProperty {
		property = show(props.Property, defaults.Property)
	}
	fmt.Fprintf(&b, "%s %s\n", m.fieldLabel(fieldProperty, "property"), property)
	fmt.Fprintf(&b, "%s %s\n", m.fieldLabel(fieldDuration, "duration"), show(props.Duration, defaults.Duration))
	fmt.Fprintf(&b, "%s %s\n", m.fieldLabel(fieldDelay, "delay"), show(props.Delay, defaults.Delay))

	timing := show(props.Timing, defaults.Timing)
	if m.focus == fieldTiming {
		timing = SelectedStyle.Render(" " + timingOptions[m.timingIdx].String() + " ")
	}
	fmt.Fprintf(&b, "%s %s\n", m.fieldLabel(fieldTiming, "timing"), timing)
	return b.String()
}

// renderPreview shows the rule's whole multi-layer value with the edited
// layer in context.
func (m *LayerEditorModel) renderPreview() string {
	rule, err := m.store.Rule(m.ruleIndex)
	if err != nil {
		return ""
	}
	layers, ok := styles.TransitionLayers(rule)
	if !ok || len(layers) == 0 {
		return ""
	}

	width := m.width - 6
	if width < 20 {
		width = 20
	}
	value := css.ToValueLayers(layers)
	wrapped := wordwrap.String("transition: "+value+";", width)
	return DimStyle.Render(wrapped) + "\n"
}

func (m *LayerEditorModel) fieldLabel(field editorField, name string) string {
	label := fmt.Sprintf("%-9s", name)
	if m.focus == field {
		return SelectedStyle.Render(label)
	}
	return DimStyle.Render(label)
}
