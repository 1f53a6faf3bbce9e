package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

var (
	quiet       bool
	skipConfirm bool
)

// SetQuiet enables or disables quiet mode
func SetQuiet(q bool) {
	quiet = q
}

// SetSkipConfirm enables or disables confirmation skipping
func SetSkipConfirm(skip bool) {
	skipConfirm = skip
}

// Confirm prompts the user for confirmation
func Confirm(prompt string, defaultYes bool) (bool, error) {
	if skipConfirm {
		return true, nil
	}

	suffix := " [y/N]: "
	if defaultYes {
		suffix = " [Y/n]: "
	}

	fmt.Print(prompt + suffix)

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}

	response = strings.ToLower(strings.TrimSpace(response))
	if response == "" {
		return defaultYes, nil
	}
	return response == "y" || response == "yes", nil
}

// PrintSuccess prints a success message unless quiet mode is enabled
func PrintSuccess(format string, args ...interface{}) {
	if !quiet {
		fmt.Printf("✓ "+format+"\n", args...)
	}
}

// PrintError prints an error message to stderr
func PrintError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "× "+format+"\n", args...)
}
