package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tween-tui/tween/internal/logger"
	"github.com/tween-tui/tween/pkg/css"
	"github.com/tween-tui/tween/pkg/styles"
)

// editorField identifies which sub-editor has focus.
type editorField int

const (
	fieldText editorField = iota
	fieldProperty
	fieldDuration
	fieldDelay
	fieldTiming
)

const fieldCount = 5

// timeStepMs is the increment used by the duration and delay steppers.
const timeStepMs = 50

// timingOptions are the easing curves the picker cycles through.
var timingOptions = []css.Value{
	css.Keyword("ease"),
	css.Keyword("ease-in"),
	css.Keyword("ease-out"),
	css.Keyword("ease-in-out"),
	css.Keyword("linear"),
	css.Keyword("step-start"),
	css.Keyword("step-end"),
	css.Function("cubic-bezier", []string{"0.4", "0", "0.2", "1"}),
	css.Function("steps", []string{"4", "jump-end"}),
}

// editorClosedMsg tells the app to return to the rule list.
type editorClosedMsg struct{}

// LayerEditorModel wires the layer reconciliation state machine to the
// terminal: a free-text input for the whole layer plus one sub-editor per
// field. All edits flow through the state machine's four operations.
type LayerEditorModel struct {
	State *LayerEditorState

	store     *styles.Store
	ruleIndex int
	selector  string
	log       *logger.Logger

	textInput textinput.Model
	propInput textinput.Model
	timingIdx int
	focus     editorField

	width  int
	height int
	errMsg string
}

// NewLayerEditorModel creates an editor for the layer at index within the
// rule's transition value.
func NewLayerEditorModel(store *styles.Store, ruleIndex, index int, layer css.Layer, defaults css.Defaults, log *logger.Logger) *LayerEditorModel {
	state := NewLayerEditorState(index, layer, defaults)

	ti := textinput.New()
	ti.Placeholder = "property duration delay timing-function"
	ti.CharLimit = 0
	ti.SetValue(state.Buffer.Text)
	ti.Focus()

	pi := textinput.New()
	pi.Placeholder = defaults.Property.Keyword
	if props := state.Fields(); props.Property != nil {
		pi.SetValue(props.Property.Keyword)
	}

	rule, _ := store.Rule(ruleIndex)

	m := &LayerEditorModel{
		State:     state,
		store:     store,
		ruleIndex: ruleIndex,
		selector:  rule.Selector,
		log:       log,
		textInput: ti,
		propInput: pi,
		timingIdx: timingIndexOf(state.Fields().Timing),
		focus:     fieldText,
	}
	m.attachSinks()
	return m
}

// attachSinks connects the state machine callbacks to the store.
func (m *LayerEditorModel) attachSinks() {
	m.State.OnEdit = func(index int, layers []css.Layer, opts styles.CommitOptions) {
		if err := styles.EditTransitionLayer(m.store, m.ruleIndex, index, layers, opts); err != nil {
			m.errMsg = err.Error()
			m.log.Error("layer commit failed", err)
			return
		}
		m.errMsg = ""
		m.refreshLayer()
		m.log.WithFields(map[string]any{
			"selector":  m.selector,
			"layer":     index,
			"ephemeral": opts.Ephemeral,
		}).Debug("layer committed")
	}
	m.State.OnDelete = func(index int) {
		if err := styles.DeleteTransitionLayer(m.store, m.ruleIndex, index, styles.CommitOptions{}); err != nil {
			m.errMsg = err.Error()
			m.log.Error("layer delete failed", err)
			return
		}
		m.log.WithFields(map[string]any{"selector": m.selector, "layer": index}).Debug("layer deleted")
	}
}

// refreshLayer re-derives the committed tuple from the store after a commit.
func (m *LayerEditorModel) refreshLayer() {
	rule, err := m.store.Rule(m.ruleIndex)
	if err != nil {
		return
	}
	layers, ok := styles.TransitionLayers(rule)
	if ok && m.State.Index < len(layers) {
		m.State.SetLayer(layers[m.State.Index])
	}
}

func (m *LayerEditorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LayerEditorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.textInput.Width = width - 8
	m.propInput.Width = 24
}

func (m *LayerEditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateInputs(msg)
	}

	switch keyMsg.String() {
	case "tab":
		m.blurCurrent()
		m.focus = (m.focus + 1) % fieldCount
		m.focusCurrent()
		return m, nil

	case "shift+tab":
		m.blurCurrent()
		m.focus = (m.focus + fieldCount - 1) % fieldCount
		m.focusCurrent()
		return m, nil

	case "enter":
		m.confirmFocused()
		return m, nil

	case "esc":
		// Leaving the editor is a loss of focus: push a live preview of
		// whatever the buffer holds before returning to the list.
		m.commitOnBlur()
		return m, func() tea.Msg { return editorClosedMsg{} }

	case "ctrl+d":
		// Explicit abort: deletes this layer, no-op once the buffer is gone.
		hadBuffer := m.State.Buffer.Exists()
		m.State.Cancel()
		if hadBuffer {
			return m, tea.Batch(
				func() tea.Msg { return StatusMsg(fmt.Sprintf("✓ Deleted layer %d of %s", m.State.Index+1, m.selector)) },
				func() tea.Msg { return editorClosedMsg{} },
			)
		}
		return m, func() tea.Msg { return editorClosedMsg{} }

	case "up", "down":
		if handled := m.stepFocused(keyMsg.String() == "up"); handled {
			return m, nil
		}
	}

	return m, m.updateInputs(msg)
}

// updateInputs forwards a message to the focused text input and mirrors text
// changes into the state machine.
func (m *LayerEditorModel) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case fieldText:
		before := m.textInput.Value()
		m.textInput, cmd = m.textInput.Update(msg)
		if after := m.textInput.Value(); after != before {
			m.State.ApplyTextEdit(after)
		}
	case fieldProperty:
		m.propInput, cmd = m.propInput.Update(msg)
	case fieldDuration, fieldDelay, fieldTiming:
		// Steppers and the picker only react to key handling above.
	}
	return cmd
}

// confirmFocused applies the focused sub-editor as a final commit.
func (m *LayerEditorModel) confirmFocused() {
	switch m.focus {
	case fieldText:
		m.State.RequestCommit(styles.CommitOptions{Ephemeral: false})
		m.syncTextInput()
	case fieldProperty:
		value := m.propInput.Value()
		if value == "" {
			return
		}
		kw := css.Keyword(value)
		m.State.ApplyFieldEdit(css.Properties{Property: &kw}, styles.CommitOptions{Ephemeral: false})
		m.syncTextInput()
	case fieldDuration, fieldDelay, fieldTiming:
		// Re-apply the currently shown value as a final commit.
		m.applyShownField(styles.CommitOptions{Ephemeral: false})
		m.syncTextInput()
	}
}

// stepFocused adjusts the focused stepper or picker and pushes the change as
// a live preview.
func (m *LayerEditorModel) stepFocused(up bool) bool {
	delta := float64(timeStepMs)
	if !up {
		delta = -delta
	}

	switch m.focus {
	case fieldDuration:
		next := css.Unit(maxFloat(0, m.shownTime(fieldDuration)+delta), "ms")
		m.State.ApplyFieldEdit(css.Properties{Duration: &next}, styles.CommitOptions{Ephemeral: true})
	case fieldDelay:
		next := css.Unit(m.shownTime(fieldDelay)+delta, "ms")
		m.State.ApplyFieldEdit(css.Properties{Delay: &next}, styles.CommitOptions{Ephemeral: true})
	case fieldTiming:
		if up {
			m.timingIdx = (m.timingIdx + len(timingOptions) - 1) % len(timingOptions)
		} else {
			m.timingIdx = (m.timingIdx + 1) % len(timingOptions)
		}
		timing := timingOptions[m.timingIdx]
		m.State.ApplyFieldEdit(css.Properties{Timing: &timing}, styles.CommitOptions{Ephemeral: true})
	default:
		return false
	}
	m.syncTextInput()
	return true
}

// applyShownField re-sends the focused field's current value.
func (m *LayerEditorModel) applyShownField(opts styles.CommitOptions) {
	switch m.focus {
	case fieldDuration:
		v := css.Unit(m.shownTime(fieldDuration), "ms")
		m.State.ApplyFieldEdit(css.Properties{Duration: &v}, opts)
	case fieldDelay:
		v := css.Unit(m.shownTime(fieldDelay), "ms")
		m.State.ApplyFieldEdit(css.Properties{Delay: &v}, opts)
	case fieldTiming:
		timing := timingOptions[m.timingIdx]
		m.State.ApplyFieldEdit(css.Properties{Timing: &timing}, opts)
	}
}

// shownTime returns the focused time field in milliseconds, falling back to
// the configured default.
func (m *LayerEditorModel) shownTime(field editorField) float64 {
	props := m.State.Fields()
	var v *css.Value
	if field == fieldDuration {
		v = props.Duration
		if v == nil {
			d := m.State.Defaults.Duration
			v = &d
		}
	} else {
		v = props.Delay
		if v == nil {
			d := m.State.Defaults.Delay
			v = &d
		}
	}
	if v.Unit == "s" {
		return v.Number * 1000
	}
	return v.Number
}

// syncTextInput mirrors the buffer back into the text control so field edits
// are visible in the free-text form too.
func (m *LayerEditorModel) syncTextInput() {
	if m.textInput.Value() != m.State.Buffer.Value() {
		m.textInput.SetValue(m.State.Buffer.Value())
		m.textInput.CursorEnd()
	}
}

func (m *LayerEditorModel) blurCurrent() {
	switch m.focus {
	case fieldText:
		m.textInput.Blur()
		m.commitOnBlur()
	case fieldProperty:
		m.propInput.Blur()
	}
}

// commitOnBlur pushes the buffer as a live preview. Text still matching the
// committed tuple is skipped, so opening an editor and leaving without
// touching anything never writes to the store. For a freshly added layer the
// tuple is the seeded default that only exists in this editor.
func (m *LayerEditorModel) commitOnBlur() {
	if !m.State.Buffer.Exists() || m.State.Buffer.Text == css.ToValue(m.State.Layer) {
		return
	}
	m.State.RequestCommit(styles.CommitOptions{Ephemeral: true})
}

func (m *LayerEditorModel) focusCurrent() {
	switch m.focus {
	case fieldText:
		m.textInput.Focus()
	case fieldProperty:
		m.propInput.Focus()
	}
}

func timingIndexOf(timing *css.Value) int {
	if timing == nil {
		return 0
	}
	for i, opt := range timingOptions {
		if opt.Equal(*timing) {
			return i
		}
	}
	return 0
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
