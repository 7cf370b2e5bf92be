package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/larder/internal/derive"
)

// ExpiringOptions holds flags for the expiring command.
type ExpiringOptions struct {
	*RootOptions
	Days int
}

// NewExpiringCommand creates the expiring command.
func NewExpiringCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExpiringOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "expiring",
		Short: "Show ingredients expiring soon",
		Long: `Show ingredients needing imminent attention: expiring within the
window, marked ripe, or already opened. Urgent rows (three days or
less) are flagged with '!'.

Example:
  larder expiring
  larder expiring --days 14`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpiring(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Days, "days", 0, "expiring window in days (default from config)")

	return cmd
}

func runExpiring(opts *ExpiringOptions, cmd *cobra.Command) error {
	app, cleanup, err := openApp(cmd.Context(), opts.RootOptions)
	if err != nil {
		return err
	}
	defer cleanup()

	days := opts.Days
	if days <= 0 {
		days = app.Config.DaysThreshold
	}

	items := derive.ExpiringSoon(app.Pantry.Ingredients(), app.Clock.Now(), days)

	out := formatter(opts.RootOptions, cmd.OutOrStdout())
	if out.JSON() {
		return out.Success(items)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Expiring in Next %d Days\n", days)
	if len(items) == 0 {
		fmt.Fprintln(w, "Nothing is expiring soon.")
		return nil
	}
	for _, item := range items {
		mark := " "
		if item.Urgent {
			mark = "!"
		}
		fmt.Fprintf(w, "%s %-20s %s\n", mark, item.Ingredient.Name, item.Detail)
	}
	return nil
}
