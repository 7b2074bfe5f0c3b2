package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/contentcompass/trendcompass/internal/config"
	"github.com/contentcompass/trendcompass/internal/display"
	"github.com/contentcompass/trendcompass/internal/endpoint"
	"github.com/contentcompass/trendcompass/internal/prompt"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Run first-time setup wizard",
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			key, source := config.APIKey()
			cfg := config.Get()
			return display.OutputJSON(outWriter, map[string]any{
				"mode":        cfg.Mode,
				"has_api_key": key != "",
				"key_source":  source,
			})
		}
		return interactiveWizard()
	},
}

func interactiveWizard() error {
	if quiet {
		outln("Use 'trendcompass mode demo' or 'trendcompass mode live' to set up")
		return nil
	}

	registry, err := endpoint.NewRegistry()
	if err != nil {
		return err
	}

	outln()
	outln("  Welcome to trendcompass!")
	outln()
	outln("  Explore short-video trends, hashtags, and top videos.")
	outln("  Demo mode is free; live mode spends API credits per fetch.")
	outln()

	// Pick the data categories to keep enabled.
	options := make([]prompt.SelectOption, 0)
	for _, d := range registry.Descriptors() {
		label := fmt.Sprintf("%s (%s credits) - %s", d.Category, display.FormatCredits(d.Cost), d.Description)
		options = append(options, prompt.SelectOption{Label: label, Value: d.Category, Selected: true})
	}
	categories, err := prompt.Default.MultiSelect(prompt.MultiSelectConfig{
		Title:       "Data categories",
		Description: "Disabled categories are never fetched (and never charged).",
		Options:     options,
		Validate: func(selected []string) error {
			if len(selected) == 0 {
				return errors.New("select at least one category")
			}
			return nil
		},
	})
	if err != nil {
		return err
	}

	mode, err := prompt.Default.Select(prompt.SelectConfig{
		Title: "Data source",
		Options: []prompt.SelectOption{
			{Label: "Demo - bundled sample data, free", Value: config.ModeDemo, Selected: true},
			{Label: "Live - real data from the Virlo API, costs credits", Value: config.ModeLive},
		},
	})
	if err != nil {
		return err
	}

	if mode == config.ModeLive {
		if key, _ := config.APIKey(); key == "" {
			entered, err := prompt.Default.Input(prompt.InputConfig{
				Title:    "Virlo API key",
				EchoMode: huh.EchoModePassword,
				Validate: prompt.ValidateNotEmpty,
			})
			if err != nil {
				return err
			}
			if err := config.SaveAPIKey(entered); err != nil {
				return fmt.Errorf("saving API key: %w", err)
			}
		}
	}

	err = config.Update(func(c *config.Config) error {
		c.Mode = mode
		c.EnabledCategories = categories
		return nil
	})
	if err != nil {
		return err
	}

	if mode == config.ModeLive {
		total := 0
		for _, c := range categories {
			total += registry.Cost(c)
		}
		out("\nEstimated cost to fetch everything once: %s credits\n", display.FormatCredits(total))
	}

	outln()
	out("Setup complete: %s mode, %d categories enabled.\n", mode, len(categories))
	outln("Run 'trendcompass' to open the trend hub.")
	return nil
}
