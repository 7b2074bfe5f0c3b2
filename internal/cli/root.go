// Package cli wires the cobra command tree: the trend hub dashboard,
// per-category data commands, the planner, and the mode, cache, credit,
// and endpoint management commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/contentcompass/trendcompass/internal/config"
	"github.com/contentcompass/trendcompass/internal/display"
	"github.com/contentcompass/trendcompass/internal/logging"
	"github.com/contentcompass/trendcompass/internal/session"
	"github.com/contentcompass/trendcompass/internal/spinner"
	"github.com/contentcompass/trendcompass/internal/trend"
)

// version is injected at build time via -ldflags.
var version = "dev"

var (
	jsonOutput bool
	noColor    bool
	verbose    bool
	quiet      bool
	refresh    bool
)

var rootCmd = &cobra.Command{
	Use:          "trendcompass",
	Short:        "Explore short-video trends without burning API credits",
	Long:         "A trend dashboard for short-video creators: trending topics, hashtag stats, top videos, and content planning, backed by a credit-metered API with a free demo mode.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose && quiet {
			verbose = false
		}
		l := newConfiguredLogger()
		ctx := logging.WithLogger(cmd.Context(), l)
		cmd.SetContext(ctx)

		// Load config from disk so malformed files surface a warning.
		if _, err := config.Init(); err != nil {
			l.Warn("config file is malformed, using defaults", "err", err)
		}
	},
	RunE: runDefault,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")
	rootCmd.PersistentFlags().BoolVarP(&refresh, "refresh", "r", false, "Bypass the cache and fetch fresh data")
	rootCmd.Flags().Bool("version", false, "Show version and exit")

	rootCmd.AddCommand(makeTrendsCmd())
	rootCmd.AddCommand(makeHashtagsCmd())
	rootCmd.AddCommand(makeVideosCmd())
	rootCmd.AddCommand(makeNichesCmd())

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(briefCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(modeCmd)
	rootCmd.AddCommand(creditsCmd)
	rootCmd.AddCommand(endpointsCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(demoCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context.
// Commands access it via cmd.Context().
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func runDefault(cmd *cobra.Command, args []string) error {
	if v, _ := cmd.Flags().GetBool("version"); v {
		out("trendcompass %s\n", version)
		return nil
	}

	if config.Get().Mode == config.ModeUnset && !jsonOutput && !quiet {
		showFirstRunMessage()
		return nil
	}

	return runTrendHub(cmd.Context())
}

func isTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func showFirstRunMessage() {
	outln()
	outln("Welcome to trendcompass!")
	outln("Explore short-video trends in demo mode, or connect an API key to go live.")
	outln()
	outln("Get started with:")
	outln("  trendcompass init")
	outln()
}

func makeTrendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   trend.CategoryTrends,
		Short: "Show the trending topics digest",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCategory(cmd.Context(), trend.CategoryTrends, nil)
		},
	}
}

func makeHashtagsCmd() *cobra.Command {
	var (
		limit     int
		orderBy   string
		startDate string
		endDate   string
	)
	cmd := &cobra.Command{
		Use:   trend.CategoryHashtags,
		Short: "Show trending hashtag stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := map[string]any{
				"limit":    limit,
				"order_by": orderBy,
			}
			if startDate != "" {
				params["start_date"] = startDate
			}
			if endDate != "" {
				params["end_date"] = endDate
			}
			return runCategory(cmd.Context(), trend.CategoryHashtags, params)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum hashtags to fetch")
	cmd.Flags().StringVar(&orderBy, "order-by", "views", "Ranking field (views, count)")
	cmd.Flags().StringVar(&startDate, "start-date", "", "Window start (YYYY-MM-DD, default 7 days ago)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "Window end (YYYY-MM-DD, default today)")
	return cmd
}

func makeVideosCmd() *cobra.Command {
	var (
		limit int
		niche string
	)
	cmd := &cobra.Command{
		Use:   trend.CategoryVideos,
		Short: "Show top-performing videos",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := map[string]any{"limit": limit}
			if niche != "" {
				params["niche"] = niche
			}
			return runCategory(cmd.Context(), trend.CategoryVideos, params)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum videos to fetch")
	cmd.Flags().StringVar(&niche, "niche", "", "Filter by content niche")
	return cmd
}

func makeNichesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   trend.CategoryNiches,
		Short: "Show content niches",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCategory(cmd.Context(), trend.CategoryNiches, nil)
		},
	}
}

func runCategory(ctx context.Context, category string, params map[string]any) error {
	logger := logging.FromContext(ctx)

	if config.Get().Mode == config.ModeUnset {
		if !jsonOutput && !quiet {
			showFirstRunMessage()
			return nil
		}
		return fmt.Errorf("no mode configured; run: trendcompass init")
	}

	sess, err := newSession(ctx)
	if err != nil {
		return err
	}

	env, res := accessWithSpinner(ctx, sess, category, params)

	if jsonOutput {
		return display.OutputAccessJSON(outWriter, env, res)
	}

	switch res.Source {
	case session.SourceFailed:
		return fmt.Errorf("fetching %s: %w", category, res.Err)
	case session.SourceGated:
		out("Category %q is disabled. Enable it with:\n  trendcompass endpoints enable %s\n", category, category)
		return nil
	}

	logger.Debug("access complete",
		"category", res.Category,
		"source", res.Source,
		"fingerprint", res.Fingerprint,
		"charged", res.Charged,
	)

	outln(display.RenderCategory(category, env, tableOpts("")))
	if !quiet {
		out("source: %s", res.Source)
		if res.Charged > 0 {
			out("  credits: %s", display.FormatCredits(res.Charged))
		}
		outln()
	}
	return nil
}

// accessWithSpinner runs one access, showing progress when attached to
// an interactive terminal.
func accessWithSpinner(ctx context.Context, sess *session.Session, category string, params map[string]any) (trend.Envelope, session.Result) {
	var (
		env trend.Envelope
		res session.Result
	)
	if spinner.ShouldShow(quiet, jsonOutput, !isTerminal()) {
		_ = spinner.Run([]string{category}, func(onComplete func(spinner.CompletionInfo)) {
			env, res = sess.Access(ctx, category, params, refresh)
			onComplete(resultToCompletion(res))
		})
	} else {
		env, res = sess.Access(ctx, category, params, refresh)
	}
	return env, res
}

func resultToCompletion(res session.Result) spinner.CompletionInfo {
	info := spinner.CompletionInfo{
		Category: res.Category,
		Success:  res.Source != session.SourceFailed,
	}
	if res.Err != nil {
		info.Error = res.Err.Error()
	}
	return info
}
