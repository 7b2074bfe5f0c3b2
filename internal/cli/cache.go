package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/contentcompass/trendcompass/internal/display"
	"github.com/contentcompass/trendcompass/internal/session"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and manage cached trend data",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCacheShow(cmd)
	},
}

var cacheShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List cached entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCacheShow(cmd)
	},
}

func runCacheShow(cmd *cobra.Command) error {
	sess, err := newSession(cmd.Context())
	if err != nil {
		return err
	}
	fps := sess.Store().Fingerprints()
	sort.Strings(fps)

	if jsonOutput {
		return display.OutputJSON(outWriter, map[string]any{
			"entries":      fps,
			"count":        len(fps),
			"credits_used": sess.CurrentUsage(),
		})
	}
	outln(display.RenderCacheSummary(fps, display.TableOptions{
		Title: "Cache", NoColor: noColor, Width: display.TerminalWidth(),
	}))
	out("%d entries, %s credits used\n", len(fps), display.FormatCredits(sess.CurrentUsage()))
	return nil
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear [category]",
	Short: "Remove cached entries, optionally for one category",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		category := ""
		if len(args) == 1 {
			category = args[0]
		}
		removed := sess.Invalidate(category)
		if category == "" || category == "all" {
			out("Cleared %d cached entries.\n", removed)
		} else {
			out("Cleared %d cached entries for %s.\n", removed, category)
		}
		return nil
	},
}

var cacheRefreshCmd = &cobra.Command{
	Use:   "refresh <category>",
	Short: "Drop and refetch one category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category := args[0]

		sess, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		sess.Invalidate(category)

		env, res := accessWithSpinner(cmd.Context(), sess, category, nil)
		if jsonOutput {
			return display.OutputAccessJSON(outWriter, env, res)
		}
		switch res.Source {
		case session.SourceFailed:
			return fmt.Errorf("refreshing %s: %w", category, res.Err)
		case session.SourceGated:
			return fmt.Errorf("category %q is disabled", category)
		}
		out("Refreshed %s (%d results, source %s", category, env.Results, res.Source)
		if res.Charged > 0 {
			out(", %s credits", display.FormatCredits(res.Charged))
		}
		outln(")")
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheShowCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheRefreshCmd)
}
