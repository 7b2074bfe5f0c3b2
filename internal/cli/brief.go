package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/contentcompass/trendcompass/internal/display"
	"github.com/contentcompass/trendcompass/internal/plan"
	"github.com/contentcompass/trendcompass/internal/prompt"
	"github.com/contentcompass/trendcompass/internal/store"
)

var briefCmd = &cobra.Command{
	Use:   "brief",
	Short: "Content briefs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBriefShow(cmd)
	},
}

var (
	briefTopic       string
	briefNiche       string
	briefDescription string
	briefFromDay     string
)

var briefGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a content brief for a trend",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession(cmd.Context())
		if err != nil {
			return err
		}

		// --from-day seeds the brief from one idea of the saved plan.
		var prefill *plan.Idea
		if briefFromDay != "" {
			var p plan.WeeklyPlan
			if !sess.Store().Artifact(store.ArtifactWeeklyPlan, &p) {
				return fmt.Errorf("no saved plan to take %s from", briefFromDay)
			}
			for i := range p.Ideas {
				if strings.EqualFold(p.Ideas[i].Day, briefFromDay) {
					prefill = &p.Ideas[i]
					break
				}
			}
			if prefill == nil {
				return fmt.Errorf("no plan entry for day %q", briefFromDay)
			}
		}

		topic := briefTopic
		if topic == "" && prefill != nil {
			topic = prefill.Trend
		}
		if topic == "" {
			topic, err = prompt.Default.Input(prompt.InputConfig{
				Title:       "Topic or trend",
				Placeholder: "e.g., Silent Vlogging",
				Validate:    prompt.ValidateNotEmpty,
			})
			if err != nil {
				return err
			}
		}

		description := briefDescription
		if description == "" && prefill != nil {
			description = prefill.VideoIdea
		}

		br := plan.GenerateBrief(topic, briefNiche, description, prefill, time.Now())
		if err := sess.Store().SetArtifact(store.ArtifactBrief, br); err != nil {
			return err
		}
		if err := sess.Store().Persist(); err != nil {
			return fmt.Errorf("saving brief: %w", err)
		}

		if jsonOutput {
			return display.OutputJSON(outWriter, br)
		}
		outln(renderBrief(br))
		return nil
	},
}

var briefShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the saved brief",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBriefShow(cmd)
	},
}

func runBriefShow(cmd *cobra.Command) error {
	sess, err := newSession(cmd.Context())
	if err != nil {
		return err
	}
	var br plan.Brief
	if !sess.Store().Artifact(store.ArtifactBrief, &br) {
		outln("No saved brief. Generate one with:")
		outln("  trendcompass brief generate --topic <topic>")
		return nil
	}
	if jsonOutput {
		return display.OutputJSON(outWriter, br)
	}
	outln(renderBrief(br))
	return nil
}

var briefExportOutput string

var briefExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the saved brief as a text file",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		var br plan.Brief
		if !sess.Store().Artifact(store.ArtifactBrief, &br) {
			return fmt.Errorf("no saved brief to export")
		}
		text := br.ExportText()
		if briefExportOutput == "-" {
			out("%s", text)
			return nil
		}
		name := briefExportOutput
		if name == "" {
			name = br.FileName()
		}
		if err := os.WriteFile(name, []byte(text), 0o644); err != nil {
			return fmt.Errorf("exporting brief: %w", err)
		}
		out("Wrote %s\n", name)
		return nil
	},
}

var briefClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the saved brief",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		sess.Store().ClearArtifact(store.ArtifactBrief)
		if err := sess.Store().Persist(); err != nil {
			return fmt.Errorf("saving state: %w", err)
		}
		outln("Brief cleared.")
		return nil
	},
}

func init() {
	briefGenerateCmd.Flags().StringVar(&briefTopic, "topic", "", "Topic or trend (prompted if omitted)")
	briefGenerateCmd.Flags().StringVar(&briefNiche, "niche", "General", "Content niche")
	briefGenerateCmd.Flags().StringVar(&briefDescription, "description", "", "Extra context for the brief")
	briefGenerateCmd.Flags().StringVar(&briefFromDay, "from-day", "", "Seed from the saved plan's entry for this weekday")
	briefExportCmd.Flags().StringVarP(&briefExportOutput, "output", "o", "", "Output file (default derived from topic, \"-\" for stdout)")

	briefCmd.AddCommand(briefGenerateCmd)
	briefCmd.AddCommand(briefShowCmd)
	briefCmd.AddCommand(briefExportCmd)
	briefCmd.AddCommand(briefClearCmd)
}

func renderBrief(br plan.Brief) string {
	s := br.Sections
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", br.TrendName)
	fmt.Fprintf(&b, "Niche: %s | Prepared: %s\n\n", br.Niche, br.PreparedDate)
	fmt.Fprintf(&b, "Why this trend:\n  %s\n\n", s.WhyThisTrend)
	fmt.Fprintf(&b, "What to create:\n")
	fmt.Fprintf(&b, "  Format:    %s\n", s.Format)
	fmt.Fprintf(&b, "  Length:    %s\n", s.Length)
	fmt.Fprintf(&b, "  Hook:      %s\n", s.HookCopy)
	fmt.Fprintf(&b, "  Best time: %s\n\n", s.BestTime)
	rows := [][]string{
		{"Safe", strings.Join(s.SafeHashtags, " ")},
		{"Aggressive", strings.Join(s.AggressiveHashtags, " ")},
		{"Hidden Gems", strings.Join(s.GemHashtags, " ")},
	}
	b.WriteString(display.NewTableWithOptions([]string{"Set", "Hashtags"}, rows, tableOpts("Hashtag Strategy")))
	return b.String()
}
