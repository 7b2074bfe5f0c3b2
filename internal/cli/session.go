package cli

import (
	"context"
	"time"

	"github.com/contentcompass/trendcompass/internal/config"
	"github.com/contentcompass/trendcompass/internal/demo"
	"github.com/contentcompass/trendcompass/internal/display"
	"github.com/contentcompass/trendcompass/internal/endpoint"
	"github.com/contentcompass/trendcompass/internal/logging"
	"github.com/contentcompass/trendcompass/internal/session"
	"github.com/contentcompass/trendcompass/internal/store"
	"github.com/contentcompass/trendcompass/internal/virlo"
)

// newSession assembles the data-access facade from config, the durable
// snapshot, and (in live mode) the remote client. Every data command
// goes through here so they all see the same wiring.
func newSession(ctx context.Context) (*session.Session, error) {
	cfg := config.Get()

	registry, err := endpoint.NewRegistry()
	if err != nil {
		return nil, err
	}
	registry.RestrictTo(cfg.EnabledCategories)

	st := store.Open(config.SnapshotFile())

	key, _ := config.APIKey()
	var remote session.Remote
	if cfg.Mode == config.ModeLive && key != "" {
		timeout := time.Duration(cfg.Fetch.Timeout * float64(time.Second))
		remote = virlo.New(cfg.Fetch.BaseURL, key, timeout)
	}

	return session.New(session.Options{
		Mode:     cfg.Mode,
		APIKey:   key,
		Registry: registry,
		Store:    st,
		Remote:   remote,
		Offline:  demo.Source{Dir: cfg.Demo.Dir},
		Logger:   logging.FromContext(ctx),
	}), nil
}

// tableOpts builds display options honoring the global color flag.
func tableOpts(title string) display.TableOptions {
	return display.TableOptions{Title: title, NoColor: noColor}
}
