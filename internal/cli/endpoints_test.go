package cli

import (
	"strings"
	"testing"

	"github.com/contentcompass/trendcompass/internal/config"
)

func TestEndpointsList(t *testing.T) {
	buf := setupCLI(t)
	t.Setenv("TRENDCOMPASS_MODE", "demo")
	reloadConfig()

	if err := runCmd(t, endpointsCmd, nil); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"trends", "hashtags", "videos", "niches", "1,000"} {
		if !strings.Contains(out, want) {
			t.Errorf("list missing %q:\n%s", want, out)
		}
	}
}

func TestEndpointsDisablePersists(t *testing.T) {
	buf := setupCLI(t)
	t.Setenv("TRENDCOMPASS_MODE", "demo")
	reloadConfig()

	if err := runCmd(t, endpointsDisableCmd, []string{"trends"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "trends is now disabled") {
		t.Errorf("output:\n%s", buf.String())
	}

	cfg := config.Get()
	if cfg.IsCategoryEnabled("trends") {
		t.Error("disable did not persist to config")
	}
	if !cfg.IsCategoryEnabled("hashtags") {
		t.Error("other categories should stay enabled")
	}

	// Re-enable and confirm the explicit list grows back.
	buf.Reset()
	if err := runCmd(t, endpointsEnableCmd, []string{"trends"}); err != nil {
		t.Fatal(err)
	}
	if !config.Get().IsCategoryEnabled("trends") {
		t.Error("enable did not persist")
	}
}

func TestEndpointsDisableUnknown(t *testing.T) {
	setupCLI(t)
	if err := runCmd(t, endpointsDisableCmd, []string{"bogus"}); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestEndpointsCannotDisableLast(t *testing.T) {
	setupCLI(t)
	err := config.Update(func(c *config.Config) error {
		c.EnabledCategories = []string{"trends"}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := runCmd(t, endpointsDisableCmd, []string{"trends"}); err == nil {
		t.Error("disabling the last enabled category should error")
	}
}

func TestEndpointsToggleIgnoresEnvNarrowing(t *testing.T) {
	setupCLI(t)
	t.Setenv("TRENDCOMPASS_ENABLED_CATEGORIES", "trends")
	reloadConfig()

	if err := runCmd(t, endpointsDisableCmd, []string{"videos"}); err != nil {
		t.Fatal(err)
	}

	// With the env narrowing gone, the file shows everything but videos:
	// the transient override was not written back.
	t.Setenv("TRENDCOMPASS_ENABLED_CATEGORIES", "")
	reloadConfig()
	cfg := config.Get()
	if !cfg.IsCategoryEnabled("trends") || !cfg.IsCategoryEnabled("hashtags") {
		t.Errorf("env narrowing leaked into the config file: %v", cfg.EnabledCategories)
	}
	if cfg.IsCategoryEnabled("videos") {
		t.Error("disable did not persist")
	}
}
