package styles

import (
	"fmt"

	"github.com/tween-tui/tween/pkg/css"
)

// TransitionProperty is the declaration this tool edits.
const TransitionProperty = "transition"

// TransitionLayers parses a rule's transition declaration. A rule without
// one has zero layers; a rule whose value does not parse reports ok=false.
func TransitionLayers(rule Rule) ([]css.Layer, bool) {
	value, found := rule.Declaration(TransitionProperty)
	if !found {
		return nil, true
	}
	return css.ParseTransition(value)
}

// HasTransition reports whether the rule carries a transition declaration.
func HasTransition(rule Rule) bool {
	_, found := rule.Declaration(TransitionProperty)
	return found
}

// EditTransitionLayer splices layers into the rule's transition value at
// index, replacing the layer currently there. Index equal to the layer count
// appends. The change goes through a batch update so ephemeral and final
// commits get their undo semantics.
func EditTransitionLayer(store *Store, ruleIndex, index int, layers []css.Layer, opts CommitOptions) error {
	if len(layers) == 0 {
		return fmt.Errorf("no layers to apply")
	}

	rule, err := store.Rule(ruleIndex)
	if err != nil {
		return err
	}
	current, ok := TransitionLayers(rule)
	if !ok {
		return fmt.Errorf("rule %q has an unparseable transition value", rule.Selector)
	}
	if index < 0 || index > len(current) {
		return fmt.Errorf("layer index %d out of range", index)
	}

	var updated []css.Layer
	if index == len(current) {
		updated = append(append(updated, current...), layers...)
	} else {
		updated = append(updated, current[:index]...)
		updated = append(updated, layers...)
		updated = append(updated, current[index+1:]...)
	}

	batch, err := store.CreateBatchUpdate(ruleIndex)
	if err != nil {
		return err
	}
	batch.Set(TransitionProperty, css.ToValueLayers(updated))
	batch.Publish(opts)
	return nil
}

// DeleteTransitionLayer removes the layer at index from the rule's
// transition value. Removing the last remaining layer removes the
// declaration itself.
func DeleteTransitionLayer(store *Store, ruleIndex, index int, opts CommitOptions) error {
	rule, err := store.Rule(ruleIndex)
	if err != nil {
		return err
	}
	current, ok := TransitionLayers(rule)
	if !ok {
		return fmt.Errorf("rule %q has an unparseable transition value", rule.Selector)
	}
	if index < 0 || index >= len(current) {
		return fmt.Errorf("layer index %d out of range", index)
	}

	remaining := append(append([]css.Layer{}, current[:index]...), current[index+1:]...)

	batch, err := store.CreateBatchUpdate(ruleIndex)
	if err != nil {
		return err
	}
	if len(remaining) == 0 {
		batch.Delete(TransitionProperty)
	} else {
		batch.Set(TransitionProperty, css.ToValueLayers(remaining))
	}
	batch.Publish(opts)
	return nil
}
