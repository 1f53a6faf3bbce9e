package styles

import "testing"

func testStore(t *testing.T, text string) *Store {
	t.Helper()
	sheet, err := ParseSheet(text)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return NewStore(sheet)
}

func TestBatchUpdate_SetAndDelete(t *testing.T) {
	store := testStore(t, ".a { color: red; transition: opacity 1s; }")

	batch, err := store.CreateBatchUpdate(0)
	if err != nil {
		t.Fatalf("CreateBatchUpdate failed: %v", err)
	}
	batch.Set("transition", "opacity 2s ease")
	batch.Set("opacity", "0.5")
	batch.Delete("color")
	batch.Publish(CommitOptions{})

	rule, _ := store.Rule(0)
	if value, _ := rule.Declaration("transition"); value != "opacity 2s ease" {
		t.Errorf("transition = %q, expected %q", value, "opacity 2s ease")
	}
	if value, _ := rule.Declaration("opacity"); value != "0.5" {
		t.Errorf("opacity = %q, expected %q", value, "0.5")
	}
	if _, found := rule.Declaration("color"); found {
		t.Error("deleted declaration still present")
	}
	if !store.Dirty() {
		t.Error("publish did not mark store dirty")
	}
}

func TestBatchUpdate_LastSetWins(t *testing.T) {
	store := testStore(t, ".a { }")

	batch, err := store.CreateBatchUpdate(0)
	if err != nil {
		t.Fatalf("CreateBatchUpdate failed: %v", err)
	}
	batch.Set("transition", "opacity 1s")
	batch.Set("transition", "opacity 2s")
	batch.Publish(CommitOptions{})

	rule, _ := store.Rule(0)
	if value, _ := rule.Declaration("transition"); value != "opacity 2s" {
		t.Errorf("transition = %q, expected %q", value, "opacity 2s")
	}
}

func TestBatchUpdate_OpaqueRuleRejected(t *testing.T) {
	store := testStore(t, "@media (min-width: 600px) { .a { color: red; } }")

	if _, err := store.CreateBatchUpdate(0); err == nil {
		t.Error("expected error for opaque rule, got nil")
	}
}

func TestStore_UndoOnlyTracksFinalPublishes(t *testing.T) {
	store := testStore(t, ".a { transition: opacity 1s; }")

	publish := func(value string, ephemeral bool) {
		t.Helper()
		batch, err := store.CreateBatchUpdate(0)
		if err != nil {
			t.Fatalf("CreateBatchUpdate failed: %v", err)
		}
		batch.Set("transition", value)
		batch.Publish(CommitOptions{Ephemeral: ephemeral})
	}

	// A gesture: two live previews followed by one final commit.
	publish("opacity 2s", true)
	publish("opacity 3s", true)
	publish("opacity 3s ease", false)

	if depth := store.UndoDepth(); depth != 1 {
		t.Fatalf("undo depth = %d, expected 1", depth)
	}

	if !store.Undo() {
		t.Fatal("Undo() returned false with history present")
	}
	rule, _ := store.Rule(0)
	if value, _ := rule.Declaration("transition"); value != "opacity 1s" {
		t.Errorf("undo restored %q, expected the pre-gesture value %q", value, "opacity 1s")
	}

	if store.Undo() {
		t.Error("Undo() succeeded with empty history")
	}
}

func TestStore_EphemeralOnlyNeverUndoable(t *testing.T) {
	store := testStore(t, ".a { transition: opacity 1s; }")

	batch, _ := store.CreateBatchUpdate(0)
	batch.Set("transition", "opacity 9s")
	batch.Publish(CommitOptions{Ephemeral: true})

	if store.UndoDepth() != 0 {
		t.Errorf("ephemeral publish created an undo entry")
	}
}
