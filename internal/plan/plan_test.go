package plan

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/contentcompass/trendcompass/internal/trend"
)

func sampleTrends() []trend.RankedTrend {
	names := []string{"Silent Vlogging", "Micro Recipes", "Desk Setups"}
	out := make([]trend.RankedTrend, 0, len(names))
	for i, n := range names {
		out = append(out, trend.RankedTrend{Ranking: i + 1, Trend: trend.TrendInfo{Name: n}})
	}
	return out
}

func TestTrendNames(t *testing.T) {
	names := TrendNames(sampleTrends(), 2)
	if !reflect.DeepEqual(names, []string{"Silent Vlogging", "Micro Recipes"}) {
		t.Errorf("TrendNames = %v", names)
	}
	if got := TrendNames(nil, 5); len(got) != 0 {
		t.Errorf("TrendNames(nil) = %v", got)
	}
}

func TestGenerateWeeklyPlan(t *testing.T) {
	names := TrendNames(sampleTrends(), 5)
	p := GenerateWeeklyPlan("Tech", "TikTok", "Funny", names)

	if len(p.Ideas) != 5 {
		t.Fatalf("got %d ideas, want 5", len(p.Ideas))
	}
	wantDays := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	for i, idea := range p.Ideas {
		if idea.Day != wantDays[i] {
			t.Errorf("day %d = %q, want %q", i, idea.Day, wantDays[i])
		}
		if len(idea.Hashtags) != 3 {
			t.Errorf("%s: %d hashtags, want 3", idea.Day, len(idea.Hashtags))
		}
		if idea.Difficulty == "" || idea.BestTime == "" {
			t.Errorf("%s missing difficulty or time", idea.Day)
		}
	}

	// First days are seeded with trends, the rest fall back to the niche.
	if p.Ideas[0].Trend != "Silent Vlogging" {
		t.Errorf("Monday trend = %q", p.Ideas[0].Trend)
	}
	if p.Ideas[4].Trend != "Tech tips" {
		t.Errorf("Friday fallback = %q, want \"Tech tips\"", p.Ideas[4].Trend)
	}

	if p.Ideas[2].Hashtags[2] != "#tech" {
		t.Errorf("niche hashtag = %q, want #tech", p.Ideas[2].Hashtags[2])
	}
	if !strings.Contains(p.Ideas[0].VideoIdea, "funny") || !strings.Contains(p.Ideas[0].VideoIdea, "TikTok") {
		t.Errorf("idea missing tone/platform: %q", p.Ideas[0].VideoIdea)
	}
}

func TestGenerateWeeklyPlanDeterministic(t *testing.T) {
	names := []string{"A", "B"}
	a := GenerateWeeklyPlan("Fitness", "YouTube Shorts", "Educational", names)
	b := GenerateWeeklyPlan("Fitness", "YouTube Shorts", "Educational", names)
	if !reflect.DeepEqual(a, b) {
		t.Error("same inputs produced different plans")
	}
}

func TestGenerateBrief(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	br := GenerateBrief("Silent Vlogging", "Tech", "calm aesthetic", nil, now)

	if br.TrendName != "Silent Vlogging" || br.Niche != "Tech" {
		t.Errorf("header = %+v", br)
	}
	if br.PreparedDate != "2026-08-30" {
		t.Errorf("PreparedDate = %q", br.PreparedDate)
	}
	if !strings.Contains(br.Sections.WhyThisTrend, "Silent Vlogging") {
		t.Errorf("WhyThisTrend = %q", br.Sections.WhyThisTrend)
	}
	if len(br.Sections.SafeHashtags) != 4 || len(br.Sections.GemHashtags) != 3 {
		t.Errorf("hashtag sets = %+v", br.Sections)
	}
}

func TestGenerateBriefPrefill(t *testing.T) {
	idea := &Idea{
		Day:      "Monday",
		Trend:    "Micro Recipes",
		Hook:     "POV: dinner in 25 seconds",
		BestTime: "16:00 UTC",
	}
	br := GenerateBrief("Micro Recipes", "Food", "", idea, time.Now())
	if br.Sections.HookCopy != idea.Hook {
		t.Errorf("HookCopy = %q, want prefill hook", br.Sections.HookCopy)
	}
	if br.Sections.BestTime != idea.BestTime {
		t.Errorf("BestTime = %q, want prefill time", br.Sections.BestTime)
	}
}

func TestPlanExportText(t *testing.T) {
	p := GenerateWeeklyPlan("Tech", "TikTok", "Funny", []string{"Silent Vlogging"})
	text := p.ExportText()

	for _, want := range []string{
		"WEEKLY CONTENT PLAN",
		"Niche: Tech | Platform: TikTok",
		"=== Monday ===",
		"Trend: Silent Vlogging",
		"=== Friday ===",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("export missing %q", want)
		}
	}
}

func TestBriefExportText(t *testing.T) {
	br := GenerateBrief("Desk Setups", "Tech", "", nil, time.Now())
	text := br.ExportText()
	for _, want := range []string{
		"CONTENT BRIEF: Desk Setups",
		"WHY THIS TREND",
		"WHAT TO CREATE",
		"HASHTAGS",
		"Safe: #fyp",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("export missing %q", want)
		}
	}
}

func TestFileNames(t *testing.T) {
	p := WeeklyPlan{Niche: "Home Fitness"}
	if got := p.FileName(); got != "weekly_plan_Home_Fitness.txt" {
		t.Errorf("plan FileName = %q", got)
	}
	if got := (WeeklyPlan{}).FileName(); got != "weekly_plan_content.txt" {
		t.Errorf("empty plan FileName = %q", got)
	}
	br := Brief{TrendName: "Micro Recipes"}
	if got := br.FileName(); got != "brief_Micro_Recipes.txt" {
		t.Errorf("brief FileName = %q", got)
	}
}
