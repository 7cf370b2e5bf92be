package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/larder/internal/pantry"
)

// dateLayout is the wire format for --expires flags.
const dateLayout = "2006-01-02"

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Brand      string
	Category   string
	Location   string
	Confection string
	Expires    string
	Quantity   float64
	Unit       string
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an ingredient to the kitchen",
		Long: `Add an ingredient to the kitchen inventory.

Example:
  larder add "Milk" --brand Granarolo --category Dairy --location Fridge --expires 2026-09-04
  larder add "Bananas" --quantity 6 --unit pieces`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Brand, "brand", "", "brand name")
	cmd.Flags().StringVar(&opts.Category, "category", "", "category, e.g. Dairy, Produce, Meat")
	cmd.Flags().StringVar(&opts.Location, "location", "", "storage location, e.g. Fridge, Pantry, Freezer")
	cmd.Flags().StringVar(&opts.Confection, "confection", "", "confection type, e.g. fresh, canned, frozen")
	cmd.Flags().StringVar(&opts.Expires, "expires", "", "expiration date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&opts.Quantity, "quantity", 0, "remaining quantity")
	cmd.Flags().StringVar(&opts.Unit, "unit", "", "quantity unit, e.g. liters, pieces")

	return cmd
}

func runAdd(opts *AddOptions, name string, cmd *cobra.Command) error {
	draft, err := buildDraft(name, opts, cmd)
	if err != nil {
		return err
	}

	app, cleanup, err := openApp(cmd.Context(), opts.RootOptions)
	if err != nil {
		return err
	}
	defer cleanup()

	ing, err := app.Pantry.AddIngredient(cmd.Context(), draft)
	if err != nil {
		return storeError("failed to add ingredient", err)
	}

	out := formatter(opts.RootOptions, cmd.OutOrStdout())
	if out.JSON() {
		return out.Success(ing)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s was added. (id %s)\n", ing.Name, ing.ID)
	return nil
}

// buildDraft assembles an IngredientDraft from the add flags. New
// ingredients start unfrozen and unopened, matching the add form.
func buildDraft(name string, opts *AddOptions, cmd *cobra.Command) (pantry.IngredientDraft, error) {
	draft := pantry.IngredientDraft{
		Name:           strings.TrimSpace(name),
		Brand:          strings.TrimSpace(opts.Brand),
		Category:       strings.TrimSpace(opts.Category),
		Location:       strings.TrimSpace(opts.Location),
		ConfectionType: strings.TrimSpace(opts.Confection),
		Open:           &pantry.Open{Status: false},
	}

	if opts.Expires != "" {
		t, err := parseDate(opts.Expires)
		if err != nil {
			return pantry.IngredientDraft{}, err
		}
		draft.ExpirationDate = &t
	}

	if cmd.Flags().Changed("quantity") {
		if opts.Quantity < 0 {
			return pantry.IngredientDraft{}, NewExitError(ExitCommandError, "--quantity must not be negative")
		}
		draft.Quantity = &pantry.Quantity{Value: opts.Quantity, Unit: opts.Unit}
	}

	return draft, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, WrapExitError(ExitCommandError, fmt.Sprintf("invalid date %q (want YYYY-MM-DD)", s), err)
	}
	return t, nil
}

// storeError maps a store error onto an exit code: rejected input is a
// command error, lost durability is a domain failure the user should
// see but the session survives.
func storeError(message string, err error) error {
	if pantry.IsInvalidArgument(err) {
		return WrapExitError(ExitCommandError, message, err)
	}
	return WrapExitError(ExitFailure, message, err)
}
