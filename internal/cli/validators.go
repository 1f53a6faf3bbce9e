package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/tween-tui/tween/pkg/styles"
)

// ValidateStylesheetPath validates that a stylesheet path exists and is a file
func ValidateStylesheetPath(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("stylesheet not found: %s", path)
	}
	if err != nil {
		return fmt.Errorf("cannot access %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a stylesheet", path)
	}
	return nil
}

// ParseLayerIndex converts a 1-based index argument to a 0-based index
func ParseLayerIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid layer index %q (must be a positive number)", arg)
	}
	return n - 1, nil
}

// FindRule resolves a selector to its rule index within the store
func FindRule(store *styles.Store, selector string) (int, error) {
	for i, rule := range store.Sheet().Rules {
		if rule.Raw == "" && rule.Selector == selector {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no rule with selector %q", selector)
}
