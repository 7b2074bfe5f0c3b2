package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/contentcompass/trendcompass/internal/config"
	"github.com/contentcompass/trendcompass/internal/display"
	"github.com/contentcompass/trendcompass/internal/prompt"
)

var modeCmd = &cobra.Command{
	Use:       "mode [demo|live|reset]",
	Short:     "Show or switch the data source mode",
	Long:      "Demo mode serves bundled sample data for free. Live mode fetches from the remote API and spends credits. Switching modes clears the cache and resets the credit counter. Reset returns to the unconfigured state.",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{config.ModeDemo, config.ModeLive, "reset"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runModeShow(cmd)
		}
		switch args[0] {
		case config.ModeDemo:
			return runModeSwitch(cmd, config.ModeDemo)
		case config.ModeLive:
			return runModeSwitch(cmd, config.ModeLive)
		case "reset":
			return runModeReset(cmd)
		default:
			return fmt.Errorf("unknown mode %q (demo, live, or reset)", args[0])
		}
	},
}

func runModeShow(cmd *cobra.Command) error {
	sess, err := newSession(cmd.Context())
	if err != nil {
		return err
	}
	mode := sess.Mode()
	if mode == config.ModeUnset {
		mode = "not configured"
	}
	if jsonOutput {
		key, source := config.APIKey()
		return display.OutputJSON(outWriter, map[string]any{
			"mode":         sess.Mode(),
			"credits_used": sess.CurrentUsage(),
			"has_api_key":  key != "",
			"key_source":   source,
		})
	}
	out("%s", display.RenderCreditsSummary(mode, sess.CurrentUsage(), sess.HasCredential()))
	return nil
}

func runModeSwitch(cmd *cobra.Command, mode string) error {
	key, _ := config.APIKey()

	if mode == config.ModeLive && key == "" {
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
		key = entered
	}

	sess, err := newSession(cmd.Context())
	if err != nil {
		return err
	}
	if sess.Mode() == mode {
		out("Already in %s mode.\n", mode)
		return nil
	}

	sess.SwitchMode(mode, key)
	if err := config.SetMode(mode); err != nil {
		return fmt.Errorf("saving mode: %w", err)
	}

	out("Switched to %s mode. Cache cleared, credit counter reset.\n", mode)
	return nil
}

func runModeReset(cmd *cobra.Command) error {
	confirmed, err := prompt.Default.Confirm(prompt.ConfirmConfig{
		Title:       "Reset trendcompass?",
		Description: "Removes the cache, credit counter, saved plan and brief, and the configured mode.",
		Default:     false,
	})
	if err != nil {
		return err
	}
	if !confirmed {
		outln("Cancelled.")
		return nil
	}

	sess, err := newSession(cmd.Context())
	if err != nil {
		return err
	}
	sess.Store().DeleteSnapshot()
	if err := config.SetMode(config.ModeUnset); err != nil {
		return fmt.Errorf("saving mode: %w", err)
	}
	outln("Reset complete. Run: trendcompass init")
	return nil
}
