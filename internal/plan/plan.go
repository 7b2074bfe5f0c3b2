// Package plan generates weekly content plans and per-trend briefs from
// already-fetched trend data. Generation is deterministic: the same
// inputs always produce the same plan, which keeps the stored artifacts
// reproducible.
package plan

import (
	"fmt"
	"strings"
	"time"

	"github.com/contentcompass/trendcompass/internal/trend"
)

// Idea is one day's entry in a weekly plan.
type Idea struct {
	Day        string   `json:"day"`
	Trend      string   `json:"trend"`
	VideoIdea  string   `json:"video_idea"`
	Hook       string   `json:"hook"`
	Hashtags   []string `json:"hashtags"`
	Difficulty string   `json:"difficulty"`
	BestTime   string   `json:"best_time"`
}

// WeeklyPlan holds five weekday ideas plus the inputs that shaped them.
type WeeklyPlan struct {
	Ideas    []Idea `json:"ideas"`
	Niche    string `json:"niche"`
	Platform string `json:"platform"`
}

// BriefSections is the body of a content brief.
type BriefSections struct {
	WhyThisTrend       string   `json:"why_this_trend"`
	Format             string   `json:"format"`
	Length             string   `json:"length"`
	HookCopy           string   `json:"hook_copy"`
	BestTime           string   `json:"best_time"`
	SafeHashtags       []string `json:"safe_hashtags"`
	AggressiveHashtags []string `json:"aggressive_hashtags"`
	GemHashtags        []string `json:"gem_hashtags"`
}

// Brief is a complete content brief for one trend.
type Brief struct {
	TrendName    string        `json:"trend_name"`
	Niche        string        `json:"niche"`
	PreparedDate string        `json:"prepared_date"`
	Description  string        `json:"description"`
	Sections     BriefSections `json:"sections"`
}

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

var difficulties = []string{"Easy", "Medium", "Hard"}

// TrendNames extracts up to limit trend names from ranked trends, for
// seeding plan generation.
func TrendNames(trends []trend.RankedTrend, limit int) []string {
	names := make([]string, 0, limit)
	for _, t := range trends {
		if len(names) >= limit {
			break
		}
		if t.Trend.Name != "" {
			names = append(names, t.Trend.Name)
		}
	}
	return names
}

// GenerateWeeklyPlan builds a Monday-to-Friday plan. Each day is seeded
// with one of the supplied trend names; days past the available trends
// fall back to generic niche content.
func GenerateWeeklyPlan(niche, platform, tone string, trendNames []string) WeeklyPlan {
	ideas := make([]Idea, 0, len(weekdays))
	for i, day := range weekdays {
		name := niche + " tips"
		if i < len(trendNames) {
			name = trendNames[i]
		}
		ideas = append(ideas, Idea{
			Day:       day,
			Trend:     name,
			VideoIdea: fmt.Sprintf("Create a %s %s video about %s", strings.ToLower(tone), platform, name),
			Hook:      fmt.Sprintf("POV: You just discovered %s...", name),
			Hashtags: []string{
				"#fyp",
				"#viral",
				"#" + strings.ReplaceAll(strings.ToLower(niche), " ", ""),
			},
			Difficulty: difficulties[i%len(difficulties)],
			BestTime:   fmt.Sprintf("%d:00 UTC", 14+i%4),
		})
	}
	return WeeklyPlan{Ideas: ideas, Niche: niche, Platform: platform}
}

// GenerateBrief builds a brief for one topic. A prefill idea, typically
// taken from a weekly plan, carries its hook and posting time over.
func GenerateBrief(topic, niche, description string, prefill *Idea, now time.Time) Brief {
	hook := fmt.Sprintf("Wait... is this really %s?", topic)
	bestTime := "2-4 PM UTC"
	if prefill != nil {
		if prefill.Hook != "" {
			hook = prefill.Hook
		}
		if prefill.BestTime != "" {
			bestTime = prefill.BestTime
		}
	}
	return Brief{
		TrendName:    topic,
		Niche:        niche,
		PreparedDate: now.Format("2006-01-02"),
		Description:  description,
		Sections: BriefSections{
			WhyThisTrend: fmt.Sprintf(
				"The %s trend is gaining momentum and presents a timely opportunity for creators in the %s space.",
				topic, niche),
			Format:             "Vertical video, fast-paced editing",
			Length:             "30-60 seconds",
			HookCopy:           hook,
			BestTime:           bestTime,
			SafeHashtags:       []string{"#fyp", "#viral", "#trending", "#foryou"},
			AggressiveHashtags: []string{"#fyp", "#foryou", "#explore", "#viral"},
			GemHashtags:        []string{"#newtrend", "#underrated", "#mustwatch"},
		},
	}
}

// ExportText renders the plan as a plain-text document for download or
// clipboard use.
func (p WeeklyPlan) ExportText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "WEEKLY CONTENT PLAN\nNiche: %s | Platform: %s\n\n", orDefault(p.Niche, "General"), orDefault(p.Platform, "TikTok"))
	for _, idea := range p.Ideas {
		fmt.Fprintf(&b, "=== %s ===\n", idea.Day)
		fmt.Fprintf(&b, "Trend: %s\n", idea.Trend)
		fmt.Fprintf(&b, "Idea: %s\n", idea.VideoIdea)
		fmt.Fprintf(&b, "Hook: %s\n", idea.Hook)
		fmt.Fprintf(&b, "Hashtags: %s\n", strings.Join(idea.Hashtags, " "))
		fmt.Fprintf(&b, "Difficulty: %s | Best Time: %s\n\n", idea.Difficulty, idea.BestTime)
	}
	return b.String()
}

// ExportText renders the brief as a plain-text document.
func (br Brief) ExportText() string {
	s := br.Sections
	var b strings.Builder
	fmt.Fprintf(&b, "CONTENT BRIEF: %s\n", br.TrendName)
	fmt.Fprintf(&b, "Niche: %s | Date: %s\n\n", br.Niche, br.PreparedDate)
	fmt.Fprintf(&b, "WHY THIS TREND\n%s\n\n", s.WhyThisTrend)
	b.WriteString("WHAT TO CREATE\n")
	fmt.Fprintf(&b, "Format: %s\n", s.Format)
	fmt.Fprintf(&b, "Length: %s\n", s.Length)
	fmt.Fprintf(&b, "Hook: %s\n", s.HookCopy)
	fmt.Fprintf(&b, "Best time: %s\n\n", s.BestTime)
	b.WriteString("HASHTAGS\n")
	fmt.Fprintf(&b, "Safe: %s\n", strings.Join(s.SafeHashtags, " "))
	fmt.Fprintf(&b, "Aggressive: %s\n", strings.Join(s.AggressiveHashtags, " "))
	fmt.Fprintf(&b, "Gems: %s\n", strings.Join(s.GemHashtags, " "))
	return b.String()
}

// FileName returns a filesystem-safe name for an exported plan.
func (p WeeklyPlan) FileName() string {
	niche := orDefault(p.Niche, "content")
	return "weekly_plan_" + strings.ReplaceAll(niche, " ", "_") + ".txt"
}

// FileName returns a filesystem-safe name for an exported brief.
func (br Brief) FileName() string {
	return "brief_" + strings.ReplaceAll(br.TrendName, " ", "_") + ".txt"
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
