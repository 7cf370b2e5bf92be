package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all kitchen items",
		Long: `List every ingredient in the kitchen inventory, in the order it
was added.

Example:
  larder list
  larder list --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}
	return cmd
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	app, cleanup, err := openApp(cmd.Context(), opts)
	if err != nil {
		return err
	}
	defer cleanup()

	ingredients := app.Pantry.Ingredients()

	out := formatter(opts, cmd.OutOrStdout())
	if out.JSON() {
		return out.Success(ingredients)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "All Kitchen Items")
	if len(ingredients) == 0 {
		fmt.Fprintln(w, "Your kitchen is empty.")
		return nil
	}
	for _, ing := range ingredients {
		brand := ing.Brand
		if brand == "" {
			brand = "No brand"
		}
		fmt.Fprintf(w, "  %s  %s (%s)\n", ing.ID, ing.Name, brand)
	}
	return nil
}
