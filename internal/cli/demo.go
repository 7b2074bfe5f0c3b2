package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/contentcompass/trendcompass/internal/config"
	"github.com/contentcompass/trendcompass/internal/demo"
	"github.com/contentcompass/trendcompass/internal/display"
	"github.com/contentcompass/trendcompass/internal/endpoint"
	"github.com/contentcompass/trendcompass/internal/session"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Manage the offline demo datasets",
}

var demoExportDir string

var demoExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the bundled demo datasets to a directory for editing",
	Long:  "Exports the embedded demo JSON files so they can be customized. Point the demo.dir config option (or TRENDCOMPASS_DEMO_DIR) at the directory to serve the edited copies.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if demoExportDir == "" {
			return fmt.Errorf("--dir is required")
		}
		registry, err := endpoint.NewRegistry()
		if err != nil {
			return err
		}
		if err := demo.Export(demoExportDir, registry.Categories()); err != nil {
			return err
		}
		out("Exported demo datasets to %s\n", demoExportDir)
		outln("Set demo.dir in the config file (or TRENDCOMPASS_DEMO_DIR) to serve them.")
		return nil
	},
}

var demoRegenerateDir string

var demoRegenerateCmd = &cobra.Command{
	Use:   "regenerate",
	Short: "Refresh the demo datasets from live data",
	Long:  "Fetches every enabled category from the live service and writes the results as demo JSON files. Requires live mode with an API key; each fetch is charged like any other.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		if cfg.Mode != config.ModeLive {
			return fmt.Errorf("demo regenerate requires live mode (run 'trendcompass mode live')")
		}

		sess, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		if !sess.HasCredential() {
			return fmt.Errorf("no API key configured (set %s or run 'trendcompass mode live')", config.APIKeyEnvVar)
		}

		dir := demoRegenerateDir
		if dir == "" {
			dir = cfg.Demo.Dir
		}
		if dir == "" {
			return fmt.Errorf("no destination directory: pass --dir or set demo.dir")
		}

		written := 0
		for _, category := range sess.Registry().Categories() {
			env, res := sess.Access(cmd.Context(), category, nil, true)
			switch res.Source {
			case session.SourceGated:
				continue
			case session.SourceFailed:
				return fmt.Errorf("fetching %s: %w", category, res.Err)
			}
			if err := demo.WriteDataset(dir, category, env); err != nil {
				return err
			}
			out("Wrote %s (%d results, %s credits)\n",
				filepath.Join(dir, category+".json"), env.Results, display.FormatCredits(res.Charged))
			written++
		}
		if written == 0 {
			outln("No categories enabled, nothing written.")
			return nil
		}
		out("Regenerated %d demo datasets in %s\n", written, dir)
		return nil
	},
}

func init() {
	demoExportCmd.Flags().StringVar(&demoExportDir, "dir", "", "Destination directory")
	demoRegenerateCmd.Flags().StringVar(&demoRegenerateDir, "dir", "", "Destination directory (default demo.dir)")
	demoCmd.AddCommand(demoExportCmd)
	demoCmd.AddCommand(demoRegenerateCmd)
}
