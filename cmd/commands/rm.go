package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tween-tui/tween/internal/cli"
	"github.com/tween-tui/tween/pkg/styles"
)

var rmYes bool

// NewRmCommand creates the rm command
func NewRmCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <stylesheet> <selector> <index>",
		Short: "Remove a transition layer from a rule",
		Long: `Remove the transition layer at a 1-based index within a rule's
transition value. Removing the last remaining layer removes the whole
transition declaration.

Examples:
  tween rm styles.css .card 2
  tween rm styles.css .card 1 --yes`,
		Args: cobra.ExactArgs(3),
		RunE: runRm,
	}

	cmd.Flags().BoolVarP(&rmYes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func runRm(cmd *cobra.Command, args []string) error {
	path, selector, indexArg := args[0], args[1], args[2]

	if err := cli.ValidateStylesheetPath(path); err != nil {
		return err
	}
	index, err := cli.ParseLayerIndex(indexArg)
	if err != nil {
		return err
	}

	store, err := styles.LoadStore(path)
	if err != nil {
		return err
	}
	ruleIndex, err := cli.FindRule(store, selector)
	if err != nil {
		return err
	}

	if !rmYes {
		ok, err := cli.Confirm(fmt.Sprintf("Delete layer %s of %s?", indexArg, selector), false)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := styles.DeleteTransitionLayer(store, ruleIndex, index, styles.CommitOptions{}); err != nil {
		return err
	}
	if err := store.Save(); err != nil {
		return err
	}

	cli.PrintSuccess("Removed layer %s of %s", indexArg, selector)
	return nil
}
