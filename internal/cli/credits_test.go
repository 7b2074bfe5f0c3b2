package cli

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCreditsCommand(t *testing.T) {
	buf := setupCLI(t)
	t.Setenv("TRENDCOMPASS_MODE", "demo")
	reloadConfig()

	if err := runCmd(t, creditsCmd, nil); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Credits used: 0", "1,000", "Cached reads and demo mode are free."} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q:\n%s", want, out)
		}
	}
}

func TestCreditsJSON(t *testing.T) {
	buf := setupCLI(t)
	t.Setenv("TRENDCOMPASS_MODE", "demo")
	reloadConfig()
	jsonOutput = true

	if err := runCmd(t, creditsCmd, nil); err != nil {
		t.Fatal(err)
	}
	var out struct {
		Mode        string         `json:"mode"`
		CreditsUsed int            `json:"credits_used"`
		Costs       map[string]int `json:"costs"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("not JSON: %v\n%s", err, buf.String())
	}
	if out.Mode != "demo" {
		t.Errorf("mode = %q", out.Mode)
	}
	wantCosts := map[string]int{"trends": 1000, "hashtags": 10, "videos": 100, "niches": 50}
	for category, cost := range wantCosts {
		if out.Costs[category] != cost {
			t.Errorf("cost[%s] = %d, want %d", category, out.Costs[category], cost)
		}
	}
}

func TestCreditsRespectsDisabledCategories(t *testing.T) {
	buf := setupCLI(t)
	t.Setenv("TRENDCOMPASS_MODE", "demo")
	t.Setenv("TRENDCOMPASS_ENABLED_CATEGORIES", "hashtags")
	reloadConfig()

	if err := runCmd(t, creditsCmd, nil); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "disabled") {
		t.Errorf("disabled categories not flagged:\n%s", out)
	}
}
