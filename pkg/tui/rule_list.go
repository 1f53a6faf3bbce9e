package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tween-tui/tween/internal/logger"
	"github.com/tween-tui/tween/pkg/css"
	"github.com/tween-tui/tween/pkg/styles"
)

// openEditorMsg asks the app to open the layer editor.
type openEditorMsg struct {
	ruleIndex  int
	layerIndex int
	layer      css.Layer
}

// RuleListModel shows the stylesheet's rules with their transition layers
// and dispatches edits to the layer editor.
type RuleListModel struct {
	store    *styles.Store
	defaults css.Defaults
	log      *logger.Logger

	viewport   viewport.Model
	ruleCursor int
	layerCur   int

	deleteConfirm *ConfirmationModel

	width  int
	height int
}

// NewRuleListModel creates the rule list over a loaded store.
func NewRuleListModel(store *styles.Store, defaults css.Defaults, log *logger.Logger) *RuleListModel {
	return &RuleListModel{
		store:         store,
		defaults:      defaults,
		log:           log,
		viewport:      viewport.New(80, 20),
		deleteConfirm: NewConfirmation(),
	}
}

func (m *RuleListModel) Init() tea.Cmd {
	return nil
}

func (m *RuleListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width - 2
	m.viewport.Height = height - 6
}

// editableRules returns the indices of rules the editor can work on.
func (m *RuleListModel) editableRules() []int {
	var indices []int
	for i, rule := range m.store.Sheet().Rules {
		if rule.Raw == "" {
			indices = append(indices, i)
		}
	}
	return indices
}

// selectedRule resolves the cursor to a sheet rule index.
func (m *RuleListModel) selectedRule() (int, bool) {
	rules := m.editableRules()
	if len(rules) == 0 {
		return 0, false
	}
	if m.ruleCursor >= len(rules) {
		m.ruleCursor = len(rules) - 1
	}
	return rules[m.ruleCursor], true
}

func (m *RuleListModel) selectedLayers() []css.Layer {
	ruleIndex, ok := m.selectedRule()
	if !ok {
		return nil
	}
	rule, err := m.store.Rule(ruleIndex)
	if err != nil {
		return nil
	}
	layers, _ := styles.TransitionLayers(rule)
	return layers
}

func (m *RuleListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if m.deleteConfirm.Active() {
		return m, m.deleteConfirm.Update(keyMsg)
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.ruleCursor > 0 {
			m.ruleCursor--
			m.layerCur = 0
		}

	case "down", "j":
		if m.ruleCursor < len(m.editableRules())-1 {
			m.ruleCursor++
			m.layerCur = 0
		}

	case "left", "h":
		if m.layerCur > 0 {
			m.layerCur--
		}

	case "right", "l":
		if m.layerCur < len(m.selectedLayers())-1 {
			m.layerCur++
		}

	case "enter":
		return m, m.openSelectedLayer()

	case "a":
		return m, m.openNewLayer()

	case "d":
		return m, m.confirmDeleteLayer()

	case "u":
		if m.store.Undo() {
			m.layerCur = 0
			return m, func() tea.Msg { return StatusMsg("↺ Undid last change") }
		}
		return m, func() tea.Msg { return StatusMsg("Nothing to undo") }

	case "y":
		return m, m.yankValue()

	case "ctrl+s":
		if err := m.store.Save(); err != nil {
			m.log.Error("save failed", err)
			return m, func() tea.Msg { return StatusMsg(fmt.Sprintf("× Save failed: %v", err)) }
		}
		return m, func() tea.Msg { return StatusMsg(fmt.Sprintf("✓ Saved %s", m.store.Path())) }
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// openSelectedLayer opens the editor on the layer under the cursor, or
// starts the first layer when the rule has none.
func (m *RuleListModel) openSelectedLayer() tea.Cmd {
	ruleIndex, ok := m.selectedRule()
	if !ok {
		return nil
	}
	layers := m.selectedLayers()
	if len(layers) == 0 {
		return m.openNewLayer()
	}
	if m.layerCur >= len(layers) {
		m.layerCur = len(layers) - 1
	}
	layer := layers[m.layerCur]
	index := m.layerCur
	return func() tea.Msg {
		return openEditorMsg{ruleIndex: ruleIndex, layerIndex: index, layer: layer}
	}
}

// openNewLayer opens the editor on a fresh layer appended after the existing
// ones, seeded entirely from defaults.
func (m *RuleListModel) openNewLayer() tea.Cmd {
	ruleIndex, ok := m.selectedRule()
	if !ok {
		return nil
	}
	layer := css.Properties{}.Merge(css.Properties{}, m.defaults).Layer()
	index := len(m.selectedLayers())
	return func() tea.Msg {
		return openEditorMsg{ruleIndex: ruleIndex, layerIndex: index, layer: layer}
	}
}

func (m *RuleListModel) confirmDeleteLayer() tea.Cmd {
	ruleIndex, ok := m.selectedRule()
	if !ok || len(m.selectedLayers()) == 0 {
		return nil
	}
	rule, _ := m.store.Rule(ruleIndex)
	index := m.layerCur

	m.deleteConfirm.Show(
		fmt.Sprintf("Delete layer %d of %s?", index+1, rule.Selector),
		true,
		func() tea.Cmd {
			if err := styles.DeleteTransitionLayer(m.store, ruleIndex, index, styles.CommitOptions{}); err != nil {
				return func() tea.Msg { return StatusMsg(fmt.Sprintf("× Delete failed: %v", err)) }
			}
			if m.layerCur > 0 {
				m.layerCur--
			}
			return func() tea.Msg { return StatusMsg("✓ Layer deleted") }
		},
		func() tea.Cmd { return nil },
	)
	return nil
}

// yankValue copies the selected rule's canonical transition value.
func (m *RuleListModel) yankValue() tea.Cmd {
	layers := m.selectedLayers()
	if len(layers) == 0 {
		return nil
	}
	value := css.ToValueLayers(layers)
	if err := clipboard.WriteAll(value); err != nil {
		return func() tea.Msg { return StatusMsg(fmt.Sprintf("× Clipboard error: %v", err)) }
	}
	return func() tea.Msg { return StatusMsg(fmt.Sprintf("✓ Copied %q", value)) }
}
