package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/larder/internal/pantry"
)

// NewGroceryCommand creates the grocery command group.
func NewGroceryCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grocery",
		Short: "Manage the grocery list",
		Long: `Manage the grocery list that feeds the kitchen inventory: quick-add
items to buy, mark them bought, and stock bought items into the
kitchen.`,
	}

	cmd.AddCommand(newGroceryAddCommand(rootOpts))
	cmd.AddCommand(newGroceryListCommand(rootOpts))
	cmd.AddCommand(newGroceryBuyCommand(rootOpts))
	cmd.AddCommand(newGroceryStockCommand(rootOpts))

	return cmd
}

func newGroceryAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Quick-add an item to the grocery list",
		Long: `Quick-add an item to the active grocery list. An item with the same
name (compared case-insensitively) is already covered, so the add is
skipped rather than duplicated.

Example:
  larder grocery add "Olive Oil"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGroceryAdd(rootOpts, strings.TrimSpace(args[0]), cmd)
		},
	}
}

func runGroceryAdd(opts *RootOptions, name string, cmd *cobra.Command) error {
	app, cleanup, err := openApp(cmd.Context(), opts)
	if err != nil {
		return err
	}
	defer cleanup()

	before := len(app.Pantry.GroceryList())
	if err := app.Pantry.AddToGroceryList(cmd.Context(), name); err != nil {
		return storeError("failed to add grocery item", err)
	}
	added := len(app.Pantry.GroceryList()) > before

	out := formatter(opts, cmd.OutOrStdout())
	if out.JSON() {
		return out.Success(map[string]any{"name": name, "added": added})
	}
	if added {
		fmt.Fprintf(cmd.OutOrStdout(), "%s was added to your grocery list.\n", name)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is already on your grocery list.\n", name)
	}
	return nil
}

// GroceryListOptions holds flags for the grocery list command.
type GroceryListOptions struct {
	*RootOptions
	Bought bool
}

func newGroceryListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GroceryListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the grocery list",
		Long: `Show the active grocery list, or with --bought the recently bought
items waiting to be stocked into the kitchen.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGroceryList(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Bought, "bought", false, "show recently bought items instead")

	return cmd
}

func runGroceryList(opts *GroceryListOptions, cmd *cobra.Command) error {
	app, cleanup, err := openApp(cmd.Context(), opts.RootOptions)
	if err != nil {
		return err
	}
	defer cleanup()

	var (
		header string
		empty  string
		items  []pantry.GroceryItem
	)
	if opts.Bought {
		header = "Recently Bought"
		empty = "Nothing has been bought recently."
		items = app.Pantry.RecentlyBought()
	} else {
		header = "Grocery List"
		empty = "Your grocery list is empty."
		items = app.Pantry.GroceryList()
	}

	out := formatter(opts.RootOptions, cmd.OutOrStdout())
	if out.JSON() {
		return out.Success(items)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, header)
	if len(items) == 0 {
		fmt.Fprintln(w, empty)
		return nil
	}
	for _, item := range items {
		fmt.Fprintf(w, "  %s  %s\n", item.ID, item.Name)
	}
	return nil
}

func newGroceryBuyCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "buy <id>",
		Short: "Mark a grocery item as bought",
		Long: `Move an item from the active grocery list to the recently bought
list. Stock it into the kitchen afterwards with 'larder grocery stock'.

Example:
  larder grocery buy 0198c7...`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGroceryBuy(rootOpts, args[0], cmd)
		},
	}
}

func runGroceryBuy(opts *RootOptions, id string, cmd *cobra.Command) error {
	app, cleanup, err := openApp(cmd.Context(), opts)
	if err != nil {
		return err
	}
	defer cleanup()

	// The store treats an unknown id as a no-op; the CLI reports it so
	// a typo does not pass silently.
	name := ""
	for _, item := range app.Pantry.GroceryList() {
		if item.ID == id {
			name = item.Name
			break
		}
	}
	if name == "" {
		return NewExitError(ExitFailure, fmt.Sprintf("no active grocery item with id %s", id))
	}

	if err := app.Pantry.BuyFromGroceryList(cmd.Context(), id); err != nil {
		return storeError("failed to mark item bought", err)
	}

	out := formatter(opts, cmd.OutOrStdout())
	if out.JSON() {
		return out.Success(map[string]any{"id": id, "name": name})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s was marked as bought.\n", name)
	return nil
}

// GroceryStockOptions holds flags for the grocery stock command.
type GroceryStockOptions struct {
	*AddOptions
	Name string
}

func newGroceryStockCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GroceryStockOptions{AddOptions: &AddOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "stock <id>",
		Short: "Stock a bought item into the kitchen",
		Long: `Create a kitchen ingredient from a recently bought grocery item and
remove the item from the recently bought list, in one step. The
ingredient name defaults to the item name; flags fill in the rest.

Example:
  larder grocery stock 0198c7... --category Dairy --expires 2026-09-04`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGroceryStock(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "ingredient name (defaults to the item name)")
	cmd.Flags().StringVar(&opts.Brand, "brand", "", "brand name")
	cmd.Flags().StringVar(&opts.Category, "category", "", "category")
	cmd.Flags().StringVar(&opts.Location, "location", "", "storage location")
	cmd.Flags().StringVar(&opts.Confection, "confection", "", "confection type")
	cmd.Flags().StringVar(&opts.Expires, "expires", "", "expiration date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&opts.Quantity, "quantity", 0, "remaining quantity")
	cmd.Flags().StringVar(&opts.Unit, "unit", "", "quantity unit")

	return cmd
}

func runGroceryStock(opts *GroceryStockOptions, id string, cmd *cobra.Command) error {
	app, cleanup, err := openApp(cmd.Context(), opts.RootOptions)
	if err != nil {
		return err
	}
	defer cleanup()

	source, ok := app.Pantry.FindRecentlyBought(id)
	if !ok {
		return NewExitError(ExitFailure, fmt.Sprintf("no recently bought item with id %s", id))
	}

	name := opts.Name
	if strings.TrimSpace(name) == "" {
		name = source.Name
	}
	draft, err := buildDraft(name, opts.AddOptions, cmd)
	if err != nil {
		return err
	}

	ing, err := app.Pantry.AddIngredientFromBought(cmd.Context(), source, draft)
	if err != nil {
		return storeError("failed to stock ingredient", err)
	}

	out := formatter(opts.RootOptions, cmd.OutOrStdout())
	if out.JSON() {
		return out.Success(ing)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s was added to your kitchen! (id %s)\n", ing.Name, ing.ID)
	return nil
}
