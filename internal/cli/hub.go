package cli

import (
	"context"

	"github.com/contentcompass/trendcompass/internal/display"
	"github.com/contentcompass/trendcompass/internal/session"
	"github.com/contentcompass/trendcompass/internal/spinner"
	"github.com/contentcompass/trendcompass/internal/trend"
)

// hubParams are the hashtag fetch parameters the dashboard always uses,
// kept fixed so rerunning the hub hits the same cache entry.
func hubHashtagParams() map[string]any {
	return map[string]any{"limit": 50, "order_by": "views"}
}

// runTrendHub renders the combined dashboard: trends digest plus hashtag
// strategies, with mode and credit stats up top.
func runTrendHub(ctx context.Context) error {
	sess, err := newSession(ctx)
	if err != nil {
		return err
	}

	var (
		trendsEnv, tagsEnv trend.Envelope
		trendsRes, tagsRes session.Result
	)

	fetchBoth := func(onComplete func(spinner.CompletionInfo)) {
		trendsEnv, trendsRes = sess.Access(ctx, trend.CategoryTrends, nil, refresh)
		onComplete(resultToCompletion(trendsRes))
		tagsEnv, tagsRes = sess.Access(ctx, trend.CategoryHashtags, hubHashtagParams(), refresh)
		onComplete(resultToCompletion(tagsRes))
	}

	if spinner.ShouldShow(quiet, jsonOutput, !isTerminal()) {
		if err := spinner.Run([]string{trend.CategoryTrends, trend.CategoryHashtags}, fetchBoth); err != nil {
			return err
		}
	} else {
		fetchBoth(func(spinner.CompletionInfo) {})
	}

	if jsonOutput {
		return display.OutputJSON(outWriter, map[string]any{
			"mode":         sess.Mode(),
			"credits_used": sess.CurrentUsage(),
			"trends":       trendsEnv,
			"hashtags":     tagsEnv,
		})
	}

	trends := trend.FlattenTrends(trendsEnv)

	if quiet {
		out("trends: %d  hashtags: %d  credits: %d  mode: %s\n",
			len(trends), tagsEnv.Results, sess.CurrentUsage(), sess.Mode())
		return nil
	}

	outln(display.RenderCreditsSummary(sess.Mode(), sess.CurrentUsage(), sess.HasCredential()))

	if len(trends) > 0 {
		outln(renderTopTrends(trends))
		outln()
	}
	if !tagsEnv.IsEmpty() {
		outln(display.RenderHashtagSets(tagsEnv, tableOpts("Hashtag Strategies")))
		outln()
		outln(display.RenderHashtags(tagsEnv, tableOpts("All Hashtags")))
		outln()
	}
	if len(trends) > 0 {
		outln(display.RenderTrends(trendsEnv, tableOpts("All Trends")))
	}

	if trendsEnv.IsEmpty() && tagsEnv.IsEmpty() {
		outln("No trend data available.")
		if trendsRes.Source == session.SourceGated && tagsRes.Source == session.SourceGated {
			outln("All dashboard categories are disabled. Re-enable with:")
			outln("  trendcompass endpoints enable trends")
		}
	}
	return nil
}

// renderTopTrends shows the top three trends with momentum labels.
func renderTopTrends(trends []trend.RankedTrend) string {
	labels := []string{"Hottest", "Rising", "Emerging"}
	rows := make([][]string, 0, 3)
	for i, t := range trends {
		if i >= len(labels) {
			break
		}
		rows = append(rows, []string{
			labels[i],
			t.Trend.Name,
			display.Truncate(t.Trend.Description, 80),
		})
	}
	return display.NewTableWithOptions([]string{"", "Trend", "Description"}, rows, tableOpts("Top Trends"))
}
