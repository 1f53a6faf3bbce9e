package styles

import (
	"fmt"
	"os"
)

// CommitOptions distinguishes live-preview updates from final ones. An
// ephemeral publish updates the sheet but is not undo-worthy on its own; the
// first ephemeral publish of an edit gesture pins the undo base so the
// following final publish rewinds to the state before the gesture started.
type CommitOptions struct {
	Ephemeral bool
}

// maxUndoLevels bounds the store's undo history.
const maxUndoLevels = 50

// Store owns a stylesheet. Editors never mutate the sheet directly; all
// changes flow through batch updates so undo tracking and dirty state stay
// consistent.
type Store struct {
	path  string
	sheet *Sheet

	undoStack   []*Sheet
	pendingBase *Sheet
	dirty       bool
}

// NewStore wraps an already-parsed sheet, used by tests and the CLI.
func NewStore(sheet *Sheet) *Store {
	return &Store{sheet: sheet}
}

// LoadStore reads and parses a stylesheet file.
func LoadStore(path string) (*Store, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stylesheet %s: %w", path, err)
	}

	sheet, err := ParseSheet(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse stylesheet %s: %w", path, err)
	}

	return &Store{path: path, sheet: sheet}, nil
}

// Save writes the sheet back to its file.
func (s *Store) Save() error {
	if s.path == "" {
		return fmt.Errorf("store has no backing file")
	}
	if err := os.WriteFile(s.path, []byte(s.sheet.String()), 0644); err != nil {
		return fmt.Errorf("failed to write stylesheet %s: %w", s.path, err)
	}
	s.dirty = false
	return nil
}

// Path returns the backing file path, empty for in-memory stores.
func (s *Store) Path() string {
	return s.path
}

// Sheet exposes the current sheet read-only; callers must not mutate it.
func (s *Store) Sheet() *Sheet {
	return s.sheet
}

// Rule returns the rule at index.
func (s *Store) Rule(index int) (Rule, error) {
	if index < 0 || index >= len(s.sheet.Rules) {
		return Rule{}, fmt.Errorf("rule index %d out of range", index)
	}
	return s.sheet.Rules[index], nil
}

// Dirty reports whether the sheet has unsaved changes.
func (s *Store) Dirty() bool {
	return s.dirty
}

// Undo rewinds the last final publish. Returns false when there is nothing
// to undo.
func (s *Store) Undo() bool {
	if len(s.undoStack) == 0 {
		return false
	}
	last := len(s.undoStack) - 1
	s.sheet = s.undoStack[last]
	s.undoStack = s.undoStack[:last]
	s.pendingBase = nil
	s.dirty = true
	return true
}

// UndoDepth returns the number of undoable publishes.
func (s *Store) UndoDepth() int {
	return len(s.undoStack)
}

// BatchUpdate stages declaration changes against one rule and applies them
// atomically on Publish.
type BatchUpdate struct {
	store     *Store
	ruleIndex int
	sets      []Declaration
	deletes   []string
}

// CreateBatchUpdate starts a staged update against the rule at index.
func (s *Store) CreateBatchUpdate(ruleIndex int) (*BatchUpdate, error) {
	if ruleIndex < 0 || ruleIndex >= len(s.sheet.Rules) {
		return nil, fmt.Errorf("rule index %d out of range", ruleIndex)
	}
	if s.sheet.Rules[ruleIndex].Raw != "" {
		return nil, fmt.Errorf("rule %q is opaque and cannot be edited", s.sheet.Rules[ruleIndex].Selector)
	}
	return &BatchUpdate{store: s, ruleIndex: ruleIndex}, nil
}

// Set stages a property write. A later Set of the same property within the
// batch wins.
func (b *BatchUpdate) Set(property, value string) {
	for i := range b.sets {
		if b.sets[i].Property == property {
			b.sets[i].Value = value
			return
		}
	}
	b.sets = append(b.sets, Declaration{Property: property, Value: value})
}

// Delete stages a property removal.
func (b *BatchUpdate) Delete(property string) {
	b.deletes = append(b.deletes, property)
}

// Publish applies the staged changes. Final publishes push an undo snapshot
// of the sheet as it was before the edit gesture began; ephemeral publishes
// only pin that base.
func (b *BatchUpdate) Publish(opts CommitOptions) {
	s := b.store

	if opts.Ephemeral {
		if s.pendingBase == nil {
			s.pendingBase = s.sheet.Clone()
		}
	} else {
		base := s.pendingBase
		if base == nil {
			base = s.sheet.Clone()
		}
		s.pendingBase = nil
		s.undoStack = append(s.undoStack, base)
		if len(s.undoStack) > maxUndoLevels {
			s.undoStack = s.undoStack[len(s.undoStack)-maxUndoLevels:]
		}
	}

	rule := &s.sheet.Rules[b.ruleIndex]
	for _, set := range b.sets {
		applySet(rule, set)
	}
	for _, property := range b.deletes {
		applyDelete(rule, property)
	}
	s.dirty = true
}

func applySet(rule *Rule, set Declaration) {
	for i := range rule.Declarations {
		if rule.Declarations[i].Property == set.Property {
			rule.Declarations[i].Value = set.Value
			return
		}
	}
	rule.Declarations = append(rule.Declarations, set)
}

func applyDelete(rule *Rule, property string) {
	for i := range rule.Declarations {
		if rule.Declarations[i].Property == property {
			rule.Declarations = append(rule.Declarations[:i], rule.Declarations[i+1:]...)
			return
		}
	}
}
