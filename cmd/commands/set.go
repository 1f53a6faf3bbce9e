package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tween-tui/tween/internal/cli"
	"github.com/tween-tui/tween/pkg/css"
	"github.com/tween-tui/tween/pkg/styles"
)

// NewSetCommand creates the set command
func NewSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <stylesheet> <selector> <index> <layer>",
		Short: "Set a transition layer on a rule",
		Long: `Replace the transition layer at a 1-based index within a rule's
transition value. An index one past the last layer appends a new one.

The layer text goes through the same parser as the interactive editor:
invalid text never reaches the file.

Examples:
  tween set styles.css .card 1 "opacity 200ms ease-in"
  tween set styles.css .card 2 "transform 1s linear 100ms"`,
		Args: cobra.ExactArgs(4),
		RunE: runSet,
	}
}

func runSet(cmd *cobra.Command, args []string) error {
	path, selector, indexArg, layerText := args[0], args[1], args[2], args[3]

	if err := cli.ValidateStylesheetPath(path); err != nil {
		return err
	}
	index, err := cli.ParseLayerIndex(indexArg)
	if err != nil {
		return err
	}

	layers, ok := css.ParseTransition(layerText)
	if !ok {
		return fmt.Errorf("%q is not a valid transition layer", layerText)
	}

	store, err := styles.LoadStore(path)
	if err != nil {
		return err
	}
	ruleIndex, err := cli.FindRule(store, selector)
	if err != nil {
		return err
	}

	if err := styles.EditTransitionLayer(store, ruleIndex, index, layers, styles.CommitOptions{}); err != nil {
		return err
	}
	if err := store.Save(); err != nil {
		return err
	}

	cli.PrintSuccess("Set layer %s of %s to %q", indexArg, selector, css.ToValueLayers(layers))
	return nil
}
