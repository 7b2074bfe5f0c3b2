package cli

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/spf13/cobra"

	"github.com/contentcompass/trendcompass/internal/config"
	"github.com/contentcompass/trendcompass/internal/logging"
	"github.com/contentcompass/trendcompass/internal/testenv"
)

// setupCLI isolates config/cache dirs, clears env overrides, resets CLI
// flag state, and captures command output in the returned buffer.
func setupCLI(t *testing.T) *bytes.Buffer {
	t.Helper()

	testenv.Apply(t.Setenv, t.TempDir())
	t.Setenv("TRENDCOMPASS_MODE", "")
	t.Setenv("TRENDCOMPASS_ENABLED_CATEGORIES", "")
	t.Setenv("TRENDCOMPASS_DEMO_DIR", "")
	t.Setenv(config.APIKeyEnvVar, "")
	reloadConfig()

	buf := &bytes.Buffer{}
	oldWriter := outWriter
	outWriter = buf

	oldJSON, oldNoColor, oldVerbose, oldQuiet, oldRefresh := jsonOutput, noColor, verbose, quiet, refresh
	jsonOutput, noColor, verbose, quiet, refresh = false, true, false, false, false

	t.Cleanup(func() {
		outWriter = oldWriter
		jsonOutput, noColor, verbose, quiet, refresh = oldJSON, oldNoColor, oldVerbose, oldQuiet, oldRefresh
	})
	return buf
}

// reloadConfig forces a config reload. Used by tests that modify
// TRENDCOMPASS_* env vars via t.Setenv before exercising commands.
func reloadConfig() {
	_, _ = config.Reload()
}

// runCmd executes a command's RunE with a quiet test logger attached.
func runCmd(t *testing.T, cmd *cobra.Command, args []string) error {
	t.Helper()
	l := logging.NewLogger(io.Discard)
	cmd.SetContext(logging.WithLogger(context.Background(), l))
	return cmd.RunE(cmd, args)
}
