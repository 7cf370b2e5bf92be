package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/larder/internal/derive"
)

// NewRecheckCommand creates the recheck command.
func NewRecheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recheck",
		Short: "Show ingredients whose ripeness needs rechecking",
		Long: `Show ingredients whose ripeness assessment is stale - last checked
more than three days ago. Items with no ripeness record never appear.

Example:
  larder recheck`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecheck(rootOpts, cmd)
		},
	}
	return cmd
}

func runRecheck(opts *RootOptions, cmd *cobra.Command) error {
	app, cleanup, err := openApp(cmd.Context(), opts)
	if err != nil {
		return err
	}
	defer cleanup()

	items := derive.NeedsRipenessCheck(app.Pantry.Ingredients(), app.Clock.Now())

	out := formatter(opts, cmd.OutOrStdout())
	if out.JSON() {
		return out.Success(items)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "Ripeness Check Needed")
	if len(items) == 0 {
		fmt.Fprintln(w, "All items are up to date.")
		return nil
	}
	for _, ing := range items {
		fmt.Fprintf(w, "  %-20s Last checked: %s\n",
			ing.Name, ing.Ripeness.LastChecked.Format(dateLayout))
	}
	return nil
}

// LowStockOptions holds flags for the lowstock command.
type LowStockOptions struct {
	*RootOptions
	AddToGroceries bool
}

// NewLowStockCommand creates the lowstock command.
func NewLowStockCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LowStockOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "lowstock",
		Short: "Show ingredients at or below one remaining unit",
		Long: `Show ingredients that are present but nearly gone: quantity above
zero and at most one unit. With --add-to-groceries, each one is also
pushed onto the grocery list.

Example:
  larder lowstock
  larder lowstock --add-to-groceries`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLowStock(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.AddToGroceries, "add-to-groceries", false, "add each low item to the grocery list")

	return cmd
}

func runLowStock(opts *LowStockOptions, cmd *cobra.Command) error {
	app, cleanup, err := openApp(cmd.Context(), opts.RootOptions)
	if err != nil {
		return err
	}
	defer cleanup()

	items := derive.LowStock(app.Pantry.Ingredients())

	if opts.AddToGroceries {
		for _, ing := range items {
			if err := app.Pantry.AddToGroceryList(cmd.Context(), ing.Name); err != nil {
				return storeError("failed to add to grocery list", err)
			}
		}
	}

	out := formatter(opts.RootOptions, cmd.OutOrStdout())
	if out.JSON() {
		return out.Success(items)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "Low Stock Items")
	if len(items) == 0 {
		fmt.Fprintln(w, "No items are low on stock.")
		return nil
	}
	for _, ing := range items {
		fmt.Fprintf(w, "  %-20s Qty: %g %s\n", ing.Name, ing.Quantity.Value, ing.Quantity.Unit)
	}
	if opts.AddToGroceries {
		fmt.Fprintf(w, "Added %d item(s) to the grocery list.\n", len(items))
	}
	return nil
}
