package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/contentcompass/trendcompass/internal/config"
	"github.com/contentcompass/trendcompass/internal/display"
	"github.com/contentcompass/trendcompass/internal/endpoint"
)

var endpointsCmd = &cobra.Command{
	Use:   "endpoints",
	Short: "Show and toggle data categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEndpointsList(cmd)
	},
}

var endpointsEnableCmd = &cobra.Command{
	Use:   "enable <category>",
	Short: "Enable a data category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setCategoryEnabled(args[0], true)
	},
}

var endpointsDisableCmd = &cobra.Command{
	Use:   "disable <category>",
	Short: "Disable a data category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setCategoryEnabled(args[0], false)
	},
}

func init() {
	endpointsCmd.AddCommand(endpointsEnableCmd)
	endpointsCmd.AddCommand(endpointsDisableCmd)
}

func runEndpointsList(cmd *cobra.Command) error {
	sess, err := newSession(cmd.Context())
	if err != nil {
		return err
	}
	registry := sess.Registry()

	if jsonOutput {
		return display.OutputJSON(outWriter, registry.Descriptors())
	}
	outln(display.RenderEndpoints(
		registry.Descriptors(),
		registry.Enabled,
		display.TableOptions{Title: "Data Categories", NoColor: noColor, Width: display.TerminalWidth()},
	))
	return nil
}

// setCategoryEnabled persists the toggle in config so it holds across
// invocations. Cached entries for a disabled category stay readable;
// only new fetches are gated.
func setCategoryEnabled(category string, enabled bool) error {
	registry, err := endpoint.NewRegistry()
	if err != nil {
		return err
	}
	if _, ok := registry.Get(category); !ok {
		return fmt.Errorf("unknown category %q", category)
	}

	// The toggle applies to the on-disk list, so a transient
	// TRENDCOMPASS_ENABLED_CATEGORIES narrowing is never written back.
	err = config.Update(func(c *config.Config) error {
		registry.RestrictTo(c.EnabledCategories)
		if !registry.SetEnabled(category, enabled) {
			return fmt.Errorf("unknown category %q", category)
		}

		// Write back the full explicit list so future narrowing is stable.
		var enabledList []string
		for _, d := range registry.Descriptors() {
			if registry.Enabled(d.Category) {
				enabledList = append(enabledList, d.Category)
			}
		}
		// An empty enabled_categories list means "everything", so disabling
		// the last category would silently re-enable them all.
		if len(enabledList) == 0 {
			return fmt.Errorf("at least one category must stay enabled")
		}
		c.EnabledCategories = enabledList
		return nil
	})
	if err != nil {
		return err
	}

	state := "disabled"
	if enabled {
		state = "enabled"
	}
	out("Category %s is now %s.\n", category, state)
	return nil
}
