package tui

import (
	"fmt"
	"strings"

	"github.com/tween-tui/tween/pkg/css"
	"github.com/tween-tui/tween/pkg/styles"
)

func (m *RuleListModel) View() string {
	var b strings.Builder

	title := m.store.Path()
	if title == "" {
		title = "stylesheet"
	}
	if m.store.Dirty() {
		title += " *"
	}
	b.WriteString(HeaderStyle.Render(title))
	b.WriteString("\n\n")

	rules := m.editableRules()
	if len(rules) == 0 {
		b.WriteString(DimStyle.Render("No editable rules in this stylesheet."))
	}

	for pos, ruleIndex := range rules {
		rule, err := m.store.Rule(ruleIndex)
		if err != nil {
			continue
		}
		selected := pos == m.ruleCursor

		selector := rule.Selector
		if selected {
			b.WriteString(SelectedStyle.Render(" " + selector + " "))
		} else {
			b.WriteString(NormalStyle.Render(" " + selector))
		}
		b.WriteString("\n")

		layers, ok := styles.TransitionLayers(rule)
		switch {
		case !ok:
			b.WriteString(ErrorStyle.Render("   transition value does not parse"))
			b.WriteString("\n")
		case len(layers) == 0:
			if selected {
				b.WriteString(DimStyle.Render("   no transition (enter/a to add one)"))
				b.WriteString("\n")
			}
		default:
			for i, layer := range layers {
				line := fmt.Sprintf("   %d. %s", i+1, css.ToValue(layer))
				if selected && i == m.layerCur {
					b.WriteString(SelectedStyle.Render(line))
				} else {
					b.WriteString(DimStyle.Render(line))
				}
				b.WriteString("\n")
			}
		}
	}

	if m.deleteConfirm.Active() {
		b.WriteString("\n")
		b.WriteString(m.deleteConfirm.View())
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("↑/↓: rule • ←/→: layer • enter: edit • a: add • d: delete • u: undo • y: copy • ctrl+s: save • q: quit"))

	m.viewport.SetContent(b.String())
	return m.viewport.View()
}
