package cli

import (
	"github.com/spf13/cobra"

	"github.com/contentcompass/trendcompass/internal/display"
)

var creditsCmd = &cobra.Command{
	Use:   "credits",
	Short: "Show credit usage and per-category costs",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		registry := sess.Registry()

		if jsonOutput {
			costs := make(map[string]int)
			for _, d := range registry.Descriptors() {
				costs[d.Category] = d.Cost
			}
			return display.OutputJSON(outWriter, map[string]any{
				"mode":         sess.Mode(),
				"credits_used": sess.CurrentUsage(),
				"costs":        costs,
			})
		}

		out("%s", display.RenderCreditsSummary(sess.Mode(), sess.CurrentUsage(), sess.HasCredential()))
		outln()

		rows := make([][]string, 0)
		for _, d := range registry.Descriptors() {
			status := "disabled"
			if registry.Enabled(d.Category) {
				status = "enabled"
			}
			rows = append(rows, []string{d.Category, display.FormatCredits(d.Cost), status})
		}
		outln(display.NewTableWithOptions([]string{"Category", "Cost per fetch", "Status"}, rows, tableOpts("Fetch Costs")))
		outln("Cached reads and demo mode are free.")
		return nil
	},
}
