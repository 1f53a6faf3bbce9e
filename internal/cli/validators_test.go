package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tween-tui/tween/pkg/styles"
)

func TestParseLayerIndex(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    int
		wantErr bool
	}{
		{name: "first layer", arg: "1", want: 0},
		{name: "third layer", arg: "3", want: 2},
		{name: "zero", arg: "0", wantErr: true},
		{name: "negative", arg: "-1", wantErr: true},
		{name: "not a number", arg: "first", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLayerIndex(tt.arg)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("index = %d, expected %d", got, tt.want)
			}
		})
	}
}

func TestFindRule(t *testing.T) {
	sheet, err := styles.ParseSheet(".a { color: red; }\n@media (x) { .b { color: blue; } }\n.c { color: green; }")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	store := styles.NewStore(sheet)

	if index, err := FindRule(store, ".c"); err != nil || index != 2 {
		t.Errorf("FindRule(.c) = %d, %v, expected 2, nil", index, err)
	}
	if _, err := FindRule(store, ".missing"); err == nil {
		t.Error("expected error for unknown selector")
	}
	// Opaque at-rules are not addressable by selector.
	if _, err := FindRule(store, "@media (x)"); err == nil {
		t.Error("expected error for opaque rule")
	}
}

func TestValidateStylesheetPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "styles.css")
	if err := os.WriteFile(path, []byte(".a { color: red; }"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if err := ValidateStylesheetPath(path); err != nil {
		t.Errorf("unexpected error for existing file: %v", err)
	}
	if err := ValidateStylesheetPath(filepath.Join(dir, "missing.css")); err == nil {
		t.Error("expected error for missing file")
	}
	if err := ValidateStylesheetPath(dir); err == nil {
		t.Error("expected error for directory")
	}
}
