package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/contentcompass/trendcompass/internal/endpoint"
	"github.com/contentcompass/trendcompass/internal/trend"
)

// RenderTrends renders ranked trends as a table, rank order preserved.
func RenderTrends(env trend.Envelope, opts TableOptions) string {
	trends := trend.FlattenTrends(env)
	if len(trends) == 0 {
		return "No trends available."
	}
	rows := make([][]string, 0, len(trends))
	for i, t := range trends {
		rank := t.Ranking
		if rank == 0 {
			rank = i + 1
		}
		rows = append(rows, []string{
			"#" + strconv.Itoa(rank),
			t.Trend.Name,
			Truncate(t.Trend.Description, 60),
		})
	}
	return NewTableWithOptions([]string{"Rank", "Trend", "Description"}, rows, opts)
}

// RenderHashtags renders hashtag stats as a table.
func RenderHashtags(env trend.Envelope, opts TableOptions) string {
	tags, err := trend.DecodeHashtags(env)
	if err != nil || len(tags) == 0 {
		return "No hashtags available."
	}
	rows := make([][]string, 0, len(tags))
	for _, h := range tags {
		rows = append(rows, []string{
			h.Hashtag,
			FormatNumber(h.Count),
			FormatNumber(h.TotalViews),
		})
	}
	return NewTableWithOptions([]string{"Hashtag", "Posts", "Views"}, rows, opts)
}

// RenderVideos renders top videos as a table.
func RenderVideos(env trend.Envelope, opts TableOptions) string {
	videos, err := trend.DecodeVideos(env)
	if err != nil || len(videos) == 0 {
		return "No videos available."
	}
	rows := make([][]string, 0, len(videos))
	for _, v := range videos {
		tags := v.Hashtags
		if len(tags) > 3 {
			tags = tags[:3]
		}
		rows = append(rows, []string{
			strings.ToUpper(v.Type),
			FormatDuration(v.Duration),
			FormatNumber(v.Views),
			Truncate(v.Description, 50),
			strings.Join(tags, " "),
		})
	}
	return NewTableWithOptions([]string{"Platform", "Length", "Views", "Description", "Tags"}, rows, opts)
}

// RenderNiches renders content niches as a table.
func RenderNiches(env trend.Envelope, opts TableOptions) string {
	niches, err := trend.DecodeNiches(env)
	if err != nil || len(niches) == 0 {
		return "No niches available."
	}
	rows := make([][]string, 0, len(niches))
	for _, n := range niches {
		rows = append(rows, []string{
			n.Name,
			strconv.Itoa(n.VideoCount),
			Truncate(n.Description, 60),
		})
	}
	return NewTableWithOptions([]string{"Niche", "Videos", "Description"}, rows, opts)
}

// RenderCategory routes an envelope to the renderer for its category.
func RenderCategory(category string, env trend.Envelope, opts TableOptions) string {
	switch category {
	case trend.CategoryTrends:
		return RenderTrends(env, opts)
	case trend.CategoryHashtags:
		return RenderHashtags(env, opts)
	case trend.CategoryVideos:
		return RenderVideos(env, opts)
	case trend.CategoryNiches:
		return RenderNiches(env, opts)
	default:
		return "No data available."
	}
}

// HashtagSets splits ranked hashtags into three posting strategies:
// safe (top of the ranking), aggressive (next tier), and hidden gems
// (bottom of the ranking, low competition).
func HashtagSets(tags []trend.Hashtag) (safe, aggressive, gems []string) {
	names := make([]string, 0, len(tags))
	for _, h := range tags {
		names = append(names, h.Hashtag)
	}
	if len(names) >= 4 {
		safe = names[:4]
		gems = names[len(names)-4:]
	} else {
		safe = names
		gems = names
	}
	if len(names) >= 8 {
		aggressive = names[4:8]
	} else {
		lo, hi := 2, 6
		if lo > len(names) {
			lo = len(names)
		}
		if hi > len(names) {
			hi = len(names)
		}
		aggressive = names[lo:hi]
	}
	return safe, aggressive, gems
}

// RenderHashtagSets renders the three strategy sets as a table.
func RenderHashtagSets(env trend.Envelope, opts TableOptions) string {
	tags, err := trend.DecodeHashtags(env)
	if err != nil || len(tags) == 0 {
		return "No hashtags available."
	}
	safe, aggressive, gems := HashtagSets(tags)
	rows := [][]string{
		{"Safe Play", strings.Join(safe, " "), "Mid competition, stable reach"},
		{"Aggressive", strings.Join(aggressive, " "), "High reach, competitive"},
		{"Hidden Gems", strings.Join(gems, " "), "Low competition, rising fast"},
	}
	return NewTableWithOptions([]string{"Set", "Hashtags", "Notes"}, rows, opts)
}

// RenderEndpoints renders the endpoint registry with costs and status.
func RenderEndpoints(descs []endpoint.Descriptor, enabled func(string) bool, opts TableOptions) string {
	rows := make([][]string, 0, len(descs))
	for _, d := range descs {
		status := "disabled"
		if enabled(d.Category) {
			status = "enabled"
		}
		rows = append(rows, []string{
			d.Category,
			d.Path,
			FormatCredits(d.Cost),
			status,
		})
	}
	return NewTableWithOptions([]string{"Category", "Path", "Credits", "Status"}, rows, opts)
}

// RenderCacheSummary renders one row per cached fingerprint.
func RenderCacheSummary(fingerprints []string, opts TableOptions) string {
	if len(fingerprints) == 0 {
		return "Cache is empty."
	}
	rows := make([][]string, 0, len(fingerprints))
	for _, fp := range fingerprints {
		category := fp
		if i := strings.IndexByte(fp, ':'); i >= 0 {
			category = fp[:i]
		}
		rows = append(rows, []string{category, fp})
	}
	return NewTableWithOptions([]string{"Category", "Fingerprint"}, rows, opts)
}

// RenderCreditsSummary renders mode and usage as a short block.
func RenderCreditsSummary(mode string, usage int, hasKey bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Mode:         %s\n", mode)
	fmt.Fprintf(&b, "Credits used: %s\n", FormatCredits(usage))
	key := "not configured"
	if hasKey {
		key = "configured"
	}
	fmt.Fprintf(&b, "API key:      %s\n", key)
	return b.String()
}
