package tui

import (
	"github.com/tween-tui/tween/pkg/css"
	"github.com/tween-tui/tween/pkg/styles"
)

// BufferState tags the edit buffer of a layer editor. Exactly one state
// holds at any time.
type BufferState int

const (
	// BufferIntermediate is user-visible text that may not be committed yet
	BufferIntermediate BufferState = iota
	// BufferInvalid is text that failed parsing; the raw text is preserved
	// so the user can correct it
	BufferInvalid
	// BufferUnset means no buffer exists, the transient state after cancel
	BufferUnset
)

// EditBuffer is the text a layer editor currently shows, independent of the
// last committed value.
type EditBuffer struct {
	State BufferState
	Text  string
}

// UnsetBuffer returns the cleared buffer.
func UnsetBuffer() EditBuffer {
	return EditBuffer{State: BufferUnset}
}

// Value returns the text to display: the buffer's text, or empty when unset.
func (b EditBuffer) Value() string {
	if b.State == BufferUnset {
		return ""
	}
	return b.Text
}

// Exists reports whether a buffer currently holds text.
func (b EditBuffer) Exists() bool {
	return b.State != BufferUnset
}

// IsInvalid reports whether the buffer holds text that failed parsing.
func (b EditBuffer) IsInvalid() bool {
	return b.State == BufferInvalid
}

// LayerEditorState manages ONLY the reconciliation state for one transition
// layer - no rendering. It keeps three representations in sync: the
// structured layer (owned by the store, read-only here), the text buffer
// (owned by this state), and the committed value sent through OnEdit.
// ApplyFieldEdit, ApplyTextEdit, RequestCommit and Cancel are the only
// mutation entry points.
type LayerEditorState struct {
	// Index is the layer's position within the owning multi-layer value.
	Index int
	// Layer is the current committed tuple, refreshed by the owner after
	// every successful commit.
	Layer css.Layer
	// Buffer is the component-local text state.
	Buffer EditBuffer
	// Defaults fill fields a partial edit leaves unresolved.
	Defaults css.Defaults

	// OnEdit is the upstream commit sink. It is never called with text that
	// failed to parse.
	OnEdit func(index int, layers []css.Layer, opts styles.CommitOptions)
	// OnDelete removes this layer from the owning value.
	OnDelete func(index int)
}

// NewLayerEditorState creates the editor state for the layer at index,
// seeding the buffer from the layer's canonical text.
func NewLayerEditorState(index int, layer css.Layer, defaults css.Defaults) *LayerEditorState {
	return &LayerEditorState{
		Index:    index,
		Layer:    layer,
		Buffer:   EditBuffer{State: BufferIntermediate, Text: css.ToValue(layer)},
		Defaults: defaults,
	}
}

// SetLayer refreshes the committed tuple from the store. The buffer is left
// alone; committed text stays visible exactly as typed.
func (s *LayerEditorState) SetLayer(layer css.Layer) {
	s.Layer = layer
}

// Fields returns the current committed layer resolved into roles.
func (s *LayerEditorState) Fields() css.Properties {
	return css.Extract(s.Layer)
}

// ApplyFieldEdit merges a partial field update over the current fields,
// fills the gaps from defaults, serializes and re-parses. A successful parse
// updates the buffer and commits; a failed parse flips the buffer to invalid
// and never reaches the store.
func (s *LayerEditorState) ApplyFieldEdit(partial css.Properties, opts styles.CommitOptions) {
	merged := s.Fields().Merge(partial, s.Defaults)
	text := css.ToValue(merged.Layer())

	layers, ok := css.ParseTransition(text)
	if !ok {
		s.Buffer = EditBuffer{State: BufferInvalid, Text: text}
		return
	}

	s.Buffer = EditBuffer{State: BufferIntermediate, Text: text}
	if s.OnEdit != nil {
		s.OnEdit(s.Index, layers, opts)
	}
}

// ApplyTextEdit replaces the buffer text without validating. Live typing is
// deliberately not parsed per keystroke; validity is only decided on an
// explicit commit request.
func (s *LayerEditorState) ApplyTextEdit(text string) {
	s.Buffer = EditBuffer{State: BufferIntermediate, Text: text}
}

// RequestCommit parses the buffer and, on success, sends the layers
// upstream. The buffer keeps its text either way: committing does not clear
// the visible text, and a failed parse preserves it for correction.
func (s *LayerEditorState) RequestCommit(opts styles.CommitOptions) {
	if !s.Buffer.Exists() {
		return
	}

	layers, ok := css.ParseTransition(s.Buffer.Text)
	if !ok {
		s.Buffer = EditBuffer{State: BufferInvalid, Text: s.Buffer.Text}
		return
	}

	s.Buffer = EditBuffer{State: BufferIntermediate, Text: s.Buffer.Text}
	if s.OnEdit != nil {
		s.OnEdit(s.Index, layers, opts)
	}
}

// Cancel deletes this layer from the owning value and clears the buffer.
// A second cancel with the buffer already unset is a no-op.
func (s *LayerEditorState) Cancel() {
	if !s.Buffer.Exists() {
		return
	}
	if s.OnDelete != nil {
		s.OnDelete(s.Index)
	}
	s.Buffer = UnsetBuffer()
}
