package cli

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCacheShowEmpty(t *testing.T) {
	buf := setupCLI(t)
	t.Setenv("TRENDCOMPASS_MODE", "demo")
	reloadConfig()

	if err := runCmd(t, cacheShowCmd, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Cache is empty.") {
		t.Errorf("expected empty-cache notice:\n%s", buf.String())
	}
}

func TestCacheShowAfterFetch(t *testing.T) {
	buf := setupCLI(t)
	t.Setenv("TRENDCOMPASS_MODE", "demo")
	reloadConfig()

	if err := runCmd(t, makeTrendsCmd(), nil); err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	if err := runCmd(t, cacheShowCmd, nil); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "trends:") {
		t.Errorf("cached fingerprint missing:\n%s", out)
	}
	if !strings.Contains(out, "1 entries") {
		t.Errorf("entry count missing:\n%s", out)
	}
}

func TestCacheShowJSON(t *testing.T) {
	buf := setupCLI(t)
	t.Setenv("TRENDCOMPASS_MODE", "demo")
	reloadConfig()

	if err := runCmd(t, makeTrendsCmd(), nil); err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	jsonOutput = true
	if err := runCmd(t, cacheShowCmd, nil); err != nil {
		t.Fatal(err)
	}
	var out struct {
		Entries     []string `json:"entries"`
		Count       int      `json:"count"`
		CreditsUsed int      `json:"credits_used"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("not JSON: %v", err)
	}
	if out.Count != 1 || len(out.Entries) != 1 {
		t.Errorf("got %+v", out)
	}
	if out.CreditsUsed != 0 {
		t.Errorf("demo fetch charged %d", out.CreditsUsed)
	}
}

func TestCacheClearCategory(t *testing.T) {
	buf := setupCLI(t)
	t.Setenv("TRENDCOMPASS_MODE", "demo")
	reloadConfig()

	if err := runCmd(t, makeTrendsCmd(), nil); err != nil {
		t.Fatal(err)
	}
	if err := runCmd(t, makeNichesCmd(), nil); err != nil {
		t.Fatal(err)
	}

	buf.Reset()
	if err := runCmd(t, cacheClearCmd, []string{"trends"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Cleared 1 cached entries for trends.") {
		t.Errorf("clear output:\n%s", buf.String())
	}

	// Niches entry must survive the selective clear.
	buf.Reset()
	if err := runCmd(t, makeNichesCmd(), nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "source: cache") {
		t.Errorf("niches should still be cached:\n%s", buf.String())
	}
}

func TestCacheClearAll(t *testing.T) {
	buf := setupCLI(t)
	t.Setenv("TRENDCOMPASS_MODE", "demo")
	reloadConfig()

	if err := runCmd(t, makeTrendsCmd(), nil); err != nil {
		t.Fatal(err)
	}
	if err := runCmd(t, makeNichesCmd(), nil); err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	if err := runCmd(t, cacheClearCmd, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Cleared 2 cached entries.") {
		t.Errorf("clear output:\n%s", buf.String())
	}
}

func TestCacheRefresh(t *testing.T) {
	buf := setupCLI(t)
	t.Setenv("TRENDCOMPASS_MODE", "demo")
	reloadConfig()

	if err := runCmd(t, makeTrendsCmd(), nil); err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	if err := runCmd(t, cacheRefreshCmd, []string{"trends"}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Refreshed trends") || !strings.Contains(out, "source offline") {
		t.Errorf("refresh output:\n%s", out)
	}
}
