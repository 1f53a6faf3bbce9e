package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tween-tui/tween/pkg/css"
)

// NewFmtCommand creates the fmt command
func NewFmtCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <value>",
		Short: "Print the canonical form of a transition value",
		Long: `Parse a CSS transition value and print its canonical form.

Fields are reordered to property, duration, delay, timing-function and
whitespace is normalized. Exits non-zero when the value does not parse.

Examples:
  tween fmt "ease-in 200ms opacity"
  tween fmt "opacity 1s, transform 2s linear"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layers, ok := css.ParseTransition(args[0])
			if !ok {
				return fmt.Errorf("%q is not a valid transition value", args[0])
			}
			fmt.Println(css.ToValueLayers(layers))
			return nil
		},
	}
}
