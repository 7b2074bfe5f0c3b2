package cli

import (
	"encoding/json"
	"strings"
	"testing"
)

func setPlanFlags(t *testing.T, niche, platform, tone string) {
	t.Helper()
	oldNiche, oldPlatform, oldTone := planNiche, planPlatform, planTone
	planNiche, planPlatform, planTone = niche, platform, tone
	t.Cleanup(func() {
		planNiche, planPlatform, planTone = oldNiche, oldPlatform, oldTone
	})
}

func TestPlanGenerateShowClear(t *testing.T) {
	buf := setupCLI(t)
	t.Setenv("TRENDCOMPASS_MODE", "demo")
	reloadConfig()
	setPlanFlags(t, "Tech", "TikTok", "Funny")

	if err := runCmd(t, planGenerateCmd, nil); err != nil {
		t.Fatalf("generate: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Monday") || !strings.Contains(out, "Friday") {
		t.Errorf("plan table incomplete:\n%s", out)
	}
	// Demo trends seed the first days of the plan.
	if !strings.Contains(out, "Silent Vlogging") {
		t.Errorf("plan not seeded with trends:\n%s", out)
	}

	buf.Reset()
	if err := runCmd(t, planShowCmd, nil); err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(buf.String(), "Tech") {
		t.Errorf("saved plan missing:\n%s", buf.String())
	}

	buf.Reset()
	if err := runCmd(t, planClearCmd, nil); err != nil {
		t.Fatalf("clear: %v", err)
	}
	buf.Reset()
	if err := runCmd(t, planShowCmd, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No saved plan") {
		t.Errorf("plan should be gone:\n%s", buf.String())
	}
}

func TestPlanGenerateJSON(t *testing.T) {
	buf := setupCLI(t)
	t.Setenv("TRENDCOMPASS_MODE", "demo")
	reloadConfig()
	setPlanFlags(t, "Fitness", "YouTube Shorts", "Educational")
	jsonOutput = true

	if err := runCmd(t, planGenerateCmd, nil); err != nil {
		t.Fatal(err)
	}
	var out struct {
		Ideas []struct {
			Day      string   `json:"day"`
			Hashtags []string `json:"hashtags"`
		} `json:"ideas"`
		Niche    string `json:"niche"`
		Platform string `json:"platform"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("not JSON: %v", err)
	}
	if len(out.Ideas) != 5 || out.Niche != "Fitness" {
		t.Errorf("got %+v", out)
	}
}

func TestBriefFromPlanDay(t *testing.T) {
	buf := setupCLI(t)
	t.Setenv("TRENDCOMPASS_MODE", "demo")
	reloadConfig()
	setPlanFlags(t, "Tech", "TikTok", "Funny")

	if err := runCmd(t, planGenerateCmd, nil); err != nil {
		t.Fatal(err)
	}

	oldFromDay := briefFromDay
	briefFromDay = "monday"
	t.Cleanup(func() { briefFromDay = oldFromDay })

	buf.Reset()
	if err := runCmd(t, briefGenerateCmd, nil); err != nil {
		t.Fatalf("brief generate: %v", err)
	}
	out := buf.String()
	// Monday's trend is the top demo trend; the brief inherits it.
	if !strings.Contains(out, "Silent Vlogging") {
		t.Errorf("brief topic not taken from plan:\n%s", out)
	}
	if !strings.Contains(out, "Hashtag Strategy") {
		t.Errorf("brief sections missing:\n%s", out)
	}
}

func TestBriefFromDayWithoutPlan(t *testing.T) {
	setupCLI(t)
	t.Setenv("TRENDCOMPASS_MODE", "demo")
	reloadConfig()

	oldFromDay := briefFromDay
	briefFromDay = "Monday"
	t.Cleanup(func() { briefFromDay = oldFromDay })

	if err := runCmd(t, briefGenerateCmd, nil); err == nil {
		t.Error("expected error when no plan is saved")
	}
}

func TestBriefShowEmpty(t *testing.T) {
	buf := setupCLI(t)
	t.Setenv("TRENDCOMPASS_MODE", "demo")
	reloadConfig()

	if err := runCmd(t, briefShowCmd, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No saved brief") {
		t.Errorf("output:\n%s", buf.String())
	}
}
