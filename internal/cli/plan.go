package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/contentcompass/trendcompass/internal/display"
	"github.com/contentcompass/trendcompass/internal/plan"
	"github.com/contentcompass/trendcompass/internal/prompt"
	"github.com/contentcompass/trendcompass/internal/store"
	"github.com/contentcompass/trendcompass/internal/trend"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Weekly content plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlanShow(cmd)
	},
}

var (
	planNiche    string
	planPlatform string
	planTone     string
)

var planGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a Monday-to-Friday content plan seeded with current trends",
	RunE: func(cmd *cobra.Command, args []string) error {
		niche := planNiche
		if niche == "" {
			var err error
			niche, err = prompt.Default.Input(prompt.InputConfig{
				Title:       "Your niche",
				Placeholder: "e.g., Tech, Fitness, Comedy",
				Validate:    prompt.ValidateNotEmpty,
			})
			if err != nil {
				return err
			}
		}

		sess, err := newSession(cmd.Context())
		if err != nil {
			return err
		}

		env, _ := accessWithSpinner(cmd.Context(), sess, trend.CategoryTrends, nil)
		names := plan.TrendNames(trend.FlattenTrends(env), 5)

		p := plan.GenerateWeeklyPlan(niche, planPlatform, planTone, names)
		if err := sess.Store().SetArtifact(store.ArtifactWeeklyPlan, p); err != nil {
			return err
		}
		if err := sess.Store().Persist(); err != nil {
			return fmt.Errorf("saving plan: %w", err)
		}

		if jsonOutput {
			return display.OutputJSON(outWriter, p)
		}
		outln(renderPlan(p))
		return nil
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the saved weekly plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlanShow(cmd)
	},
}

func runPlanShow(cmd *cobra.Command) error {
	sess, err := newSession(cmd.Context())
	if err != nil {
		return err
	}
	var p plan.WeeklyPlan
	if !sess.Store().Artifact(store.ArtifactWeeklyPlan, &p) {
		outln("No saved plan. Generate one with:")
		outln("  trendcompass plan generate --niche <niche>")
		return nil
	}
	if jsonOutput {
		return display.OutputJSON(outWriter, p)
	}
	outln(renderPlan(p))
	return nil
}

var planExportOutput string

var planExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the saved plan as a text file",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		var p plan.WeeklyPlan
		if !sess.Store().Artifact(store.ArtifactWeeklyPlan, &p) {
			return fmt.Errorf("no saved plan to export")
		}
		text := p.ExportText()
		if planExportOutput == "-" {
			out("%s", text)
			return nil
		}
		name := planExportOutput
		if name == "" {
			name = p.FileName()
		}
		if err := os.WriteFile(name, []byte(text), 0o644); err != nil {
			return fmt.Errorf("exporting plan: %w", err)
		}
		out("Wrote %s\n", name)
		return nil
	},
}

var planClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the saved plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		sess.Store().ClearArtifact(store.ArtifactWeeklyPlan)
		if err := sess.Store().Persist(); err != nil {
			return fmt.Errorf("saving state: %w", err)
		}
		outln("Plan cleared.")
		return nil
	},
}

func init() {
	planGenerateCmd.Flags().StringVar(&planNiche, "niche", "", "Content niche (prompted if omitted)")
	planGenerateCmd.Flags().StringVar(&planPlatform, "platform", "TikTok", "Target platform")
	planGenerateCmd.Flags().StringVar(&planTone, "tone", "Funny", "Content tone")
	planExportCmd.Flags().StringVarP(&planExportOutput, "output", "o", "", "Output file (default derived from niche, \"-\" for stdout)")

	planCmd.AddCommand(planGenerateCmd)
	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planExportCmd)
	planCmd.AddCommand(planClearCmd)
}

func renderPlan(p plan.WeeklyPlan) string {
	rows := make([][]string, 0, len(p.Ideas))
	for _, idea := range p.Ideas {
		rows = append(rows, []string{
			idea.Day,
			idea.Trend,
			display.Truncate(idea.VideoIdea, 50),
			strings.Join(idea.Hashtags, " "),
			idea.Difficulty,
			idea.BestTime,
		})
	}
	title := fmt.Sprintf("Weekly Plan: %s on %s", p.Niche, p.Platform)
	return display.NewTableWithOptions(
		[]string{"Day", "Trend", "Idea", "Hashtags", "Difficulty", "Best Time"},
		rows, tableOpts(title))
}
