package commands

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/tween-tui/tween/internal/cli"
	"github.com/tween-tui/tween/pkg/css"
	"github.com/tween-tui/tween/pkg/styles"
)

var showCopy bool

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <stylesheet> [selector]",
		Short: "List transition layers in a stylesheet",
		Long: `List the transition layers of every rule in a stylesheet, or of a
single rule when a selector is given.

Examples:
  tween show styles.css
  tween show styles.css .card
  tween show styles.css .card --copy`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runShow,
	}

	cmd.Flags().BoolVarP(&showCopy, "copy", "c", false, "Copy the rule's canonical transition value to the clipboard")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	path := args[0]
	if err := cli.ValidateStylesheetPath(path); err != nil {
		return err
	}

	store, err := styles.LoadStore(path)
	if err != nil {
		return err
	}

	var ruleIndices []int
	if len(args) == 2 {
		index, err := cli.FindRule(store, args[1])
		if err != nil {
			return err
		}
		ruleIndices = []int{index}
	} else {
		for i, rule := range store.Sheet().Rules {
			if rule.Raw == "" && styles.HasTransition(rule) {
				ruleIndices = append(ruleIndices, i)
			}
		}
	}

	if len(ruleIndices) == 0 {
		fmt.Println("No transition declarations found.")
		return nil
	}

	table := cli.NewTableFormatter(os.Stdout)
	table.Header("SELECTOR", "#", "PROPERTY", "DURATION", "DELAY", "TIMING")

	for _, ruleIndex := range ruleIndices {
		rule, err := store.Rule(ruleIndex)
		if err != nil {
			return err
		}
		layers, ok := styles.TransitionLayers(rule)
		if !ok {
			table.Row(rule.Selector, "-", "(value does not parse)", "", "", "")
			continue
		}
		for i, layer := range layers {
			row := append([]string{rule.Selector}, cli.LayerRow(i, layer)...)
			table.Row(row...)
		}
	}
	table.Flush()

	if showCopy {
		if len(args) != 2 {
			return fmt.Errorf("--copy requires a selector")
		}
		rule, _ := store.Rule(ruleIndices[0])
		layers, ok := styles.TransitionLayers(rule)
		if !ok || len(layers) == 0 {
			return fmt.Errorf("rule %q has no valid transition value to copy", args[1])
		}
		value := css.ToValueLayers(layers)
		if err := clipboard.WriteAll(value); err != nil {
			return fmt.Errorf("clipboard error: %w", err)
		}
		cli.PrintSuccess("Copied %q", value)
	}
	return nil
}
