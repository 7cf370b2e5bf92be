package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/larder/internal/barcode"
)

// ScanOptions holds flags for the scan command.
type ScanOptions struct {
	*AddOptions
	Add bool
}

// NewScanCommand creates the scan command.
func NewScanCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ScanOptions{AddOptions: &AddOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "scan <barcode>",
		Short: "Look up a product by barcode",
		Long: `Look up a scanned barcode against the Open Food Facts database and
print the product name and brand. With --add, the looked-up details
pre-fill a new kitchen ingredient immediately.

Example:
  larder scan 8001300129219
  larder scan 8001300129219 --add --expires 2026-09-04`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Add, "add", false, "add the product to the kitchen after lookup")
	cmd.Flags().StringVar(&opts.Category, "category", "", "category (with --add)")
	cmd.Flags().StringVar(&opts.Location, "location", "", "storage location (with --add)")
	cmd.Flags().StringVar(&opts.Expires, "expires", "", "expiration date YYYY-MM-DD (with --add)")
	cmd.Flags().Float64Var(&opts.Quantity, "quantity", 0, "remaining quantity (with --add)")
	cmd.Flags().StringVar(&opts.Unit, "unit", "", "quantity unit (with --add)")

	return cmd
}

func runScan(opts *ScanOptions, code string, cmd *cobra.Command) error {
	app, cleanup, err := openApp(cmd.Context(), opts.RootOptions)
	if err != nil {
		return err
	}
	defer cleanup()

	client := barcode.NewClient(
		barcode.WithBaseURL(app.Config.Barcode.BaseURL),
		barcode.WithTimeout(app.Config.Barcode.Timeout.Std()),
	)

	product, err := client.Lookup(cmd.Context(), code)
	if errors.Is(err, barcode.ErrNotFound) {
		return NewExitError(ExitFailure, fmt.Sprintf("could not find a product with barcode %s", code))
	}
	if err != nil {
		// Lookup failures stay at the collaborator boundary; the
		// inventory core is untouched.
		return WrapExitError(ExitFailure, "could not reach the food database", err)
	}

	out := formatter(opts.RootOptions, cmd.OutOrStdout())
	w := cmd.OutOrStdout()

	if !opts.Add {
		if out.JSON() {
			return out.Success(product)
		}
		name := product.Name
		if name == "" {
			name = "Unknown"
		}
		fmt.Fprintf(w, "Product found: %s (%s)\n", name, product.Brand)
		return nil
	}

	name := strings.TrimSpace(product.Name)
	if name == "" {
		return NewExitError(ExitFailure,
			fmt.Sprintf("product %s has no usable name; add it manually with 'larder add'", code))
	}

	opts.Brand = product.Brand
	draft, err := buildDraft(name, opts.AddOptions, cmd)
	if err != nil {
		return err
	}

	ing, err := app.Pantry.AddIngredient(cmd.Context(), draft)
	if err != nil {
		return storeError("failed to add ingredient", err)
	}

	if out.JSON() {
		return out.Success(ing)
	}
	fmt.Fprintf(w, "%s was added to your kitchen! (id %s)\n", ing.Name, ing.ID)
	return nil
}
