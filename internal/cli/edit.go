package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/larder/internal/pantry"
)

// EditOptions holds flags for the edit command.
type EditOptions struct {
	*RootOptions
	Name       string
	Brand      string
	Category   string
	Location   string
	Confection string
	Expires    string
	Quantity   float64
	Unit       string
	Frozen     bool
	Open       bool
	Ripeness   string
}

// NewEditCommand creates the edit command.
func NewEditCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EditOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an ingredient",
		Long: `Replace fields of an existing ingredient. Only flags that are set
change; everything else is preserved.

Freezing an unfrozen ingredient extends its expiration to six months
out unless it already expires later. Opening one stamps the opened-on
date the first time. Setting ripeness re-stamps its last-checked date.

Example:
  larder edit 0198c7... --frozen=true
  larder edit 0198c7... --ripeness "ripe/mature"
  larder edit 0198c7... --open=true --quantity 0.5 --unit liters`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "display name")
	cmd.Flags().StringVar(&opts.Brand, "brand", "", "brand name")
	cmd.Flags().StringVar(&opts.Category, "category", "", "category")
	cmd.Flags().StringVar(&opts.Location, "location", "", "storage location")
	cmd.Flags().StringVar(&opts.Confection, "confection", "", "confection type")
	cmd.Flags().StringVar(&opts.Expires, "expires", "", "expiration date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&opts.Quantity, "quantity", 0, "remaining quantity")
	cmd.Flags().StringVar(&opts.Unit, "unit", "", "quantity unit")
	cmd.Flags().BoolVar(&opts.Frozen, "frozen", false, "frozen state")
	cmd.Flags().BoolVar(&opts.Open, "open", false, "opened state")
	cmd.Flags().StringVar(&opts.Ripeness, "ripeness", "", `ripeness: none, green, "ripe/mature", advanced, "too ripe"`)

	return cmd
}

func runEdit(opts *EditOptions, id string, cmd *cobra.Command) error {
	app, cleanup, err := openApp(cmd.Context(), opts.RootOptions)
	if err != nil {
		return err
	}
	defer cleanup()

	ing, ok := app.Pantry.FindIngredient(id)
	if !ok {
		return NewExitError(ExitFailure, fmt.Sprintf("no ingredient with id %s", id))
	}

	updated, err := applyEdits(ing, opts, cmd, app.Clock.Now())
	if err != nil {
		return err
	}

	if err := app.Pantry.UpdateIngredient(cmd.Context(), updated); err != nil {
		return storeError("failed to update ingredient", err)
	}

	out := formatter(opts.RootOptions, cmd.OutOrStdout())
	if out.JSON() {
		return out.Success(updated)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s was updated.\n", updated.Name)
	return nil
}

// applyEdits folds the changed flags into the stored record, routing
// state flips through the pantry transition primitives so their side
// effects (freeze extension, opened-on stamp, last-checked stamp) hold.
func applyEdits(ing pantry.Ingredient, opts *EditOptions, cmd *cobra.Command, now time.Time) (pantry.Ingredient, error) {
	flags := cmd.Flags()

	if flags.Changed("name") {
		ing.Name = strings.TrimSpace(opts.Name)
	}
	if flags.Changed("brand") {
		ing.Brand = strings.TrimSpace(opts.Brand)
	}
	if flags.Changed("category") {
		ing.Category = strings.TrimSpace(opts.Category)
	}
	if flags.Changed("location") {
		ing.Location = strings.TrimSpace(opts.Location)
	}
	if flags.Changed("confection") {
		ing.ConfectionType = strings.TrimSpace(opts.Confection)
	}
	if flags.Changed("expires") {
		t, err := parseDate(opts.Expires)
		if err != nil {
			return pantry.Ingredient{}, err
		}
		ing.ExpirationDate = &t
	}
	if flags.Changed("quantity") || flags.Changed("unit") {
		q := pantry.Quantity{}
		if ing.Quantity != nil {
			q = *ing.Quantity
		}
		if flags.Changed("quantity") {
			if opts.Quantity < 0 {
				return pantry.Ingredient{}, NewExitError(ExitCommandError, "--quantity must not be negative")
			}
			q.Value = opts.Quantity
		}
		if flags.Changed("unit") {
			q.Unit = opts.Unit
		}
		ing.Quantity = &q
	}
	if flags.Changed("open") {
		ing.Open = pantry.MarkOpened(now, ing.Open, opts.Open)
	}
	if flags.Changed("ripeness") {
		status := pantry.RipenessStatus(opts.Ripeness)
		if !status.Valid() {
			return pantry.Ingredient{}, NewExitError(ExitCommandError,
				fmt.Sprintf("invalid ripeness %q (want one of %v)", opts.Ripeness, pantry.ValidRipenessStatuses))
		}
		ing.Ripeness = pantry.SetRipeness(now, status)
	}
	if flags.Changed("frozen") {
		// The expiration extension applies only on the false-to-true
		// flip; re-saving while frozen, or thawing, must not re-extend.
		if opts.Frozen && !ing.IsFrozen {
			ing.ExpirationDate = pantry.ExtendExpirationOnFreeze(now, ing.ExpirationDate)
		}
		ing.IsFrozen = opts.Frozen
	}

	return ing, nil
}
