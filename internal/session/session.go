// Package session owns the per-run data-access state: mode, credential,
// cache, usage counter, and the single entry point every consumer of
// trend data calls. It routes each request to the cache, the paid remote
// service, or the offline datasets, and it is the only component that
// charges credits.
package session

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/contentcompass/trendcompass/internal/config"
	"github.com/contentcompass/trendcompass/internal/endpoint"
	"github.com/contentcompass/trendcompass/internal/logging"
	"github.com/contentcompass/trendcompass/internal/store"
	"github.com/contentcompass/trendcompass/internal/trend"
)

// Source identifies the terminal state an access request ended in.
type Source string

const (
	SourceCache   Source = "cache"
	SourceLive    Source = "live"
	SourceOffline Source = "offline"
	SourceGated   Source = "gated"
	SourceFailed  Source = "failed"
)

// Remote is the paid API client. Satisfied by *virlo.Client; tests
// inject fakes.
type Remote interface {
	Fetch(ctx context.Context, desc endpoint.Descriptor, params map[string]any) (trend.Envelope, error)
}

// Offline serves the bundled demo datasets. Satisfied by demo.Source.
type Offline interface {
	Read(category string) trend.Envelope
}

// Result reports how an access request was served.
type Result struct {
	Category    string `json:"category"`
	Fingerprint string `json:"fingerprint"`
	Source      Source `json:"source"`
	Charged     int    `json:"charged"`
	Err         error  `json:"-"`
}

// Session is the explicit context object holding all mutable data-access
// state. It is the single logical writer of the store; one request runs
// to completion before the next begins.
type Session struct {
	mode     string
	apiKey   string
	registry *endpoint.Registry
	store    *store.Store
	remote   Remote
	offline  Offline
	logger   *log.Logger
}

// Options wires a Session. Logger may be nil.
type Options struct {
	Mode     string
	APIKey   string
	Registry *endpoint.Registry
	Store    *store.Store
	Remote   Remote
	Offline  Offline
	Logger   *log.Logger
}

func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewLogger(io.Discard)
	}
	return &Session{
		mode:     opts.Mode,
		apiKey:   opts.APIKey,
		registry: opts.Registry,
		store:    opts.Store,
		remote:   opts.Remote,
		offline:  opts.Offline,
		logger:   logger,
	}
}

func (s *Session) Mode() string                 { return s.mode }
func (s *Session) HasCredential() bool          { return s.apiKey != "" }
func (s *Session) Registry() *endpoint.Registry { return s.registry }
func (s *Session) Store() *store.Store          { return s.store }

// CurrentUsage returns the credits charged since the last reset.
func (s *Session) CurrentUsage() int { return s.store.Usage() }

// SetEnabled toggles a category; takes effect on the next access.
func (s *Session) SetEnabled(category string, enabled bool) bool {
	return s.registry.SetEnabled(category, enabled)
}

// Access serves one request for a category. The ordering is load-bearing:
// the cache lookup comes first so hits cost nothing, the gate check comes
// before source selection so a disabled category never reaches the
// network, and the charge sits strictly inside the live success branch
// so a failed call is free.
func (s *Session) Access(ctx context.Context, category string, params map[string]any, forceRefresh bool) (trend.Envelope, Result) {
	fp := store.Fingerprint(category, params)
	res := Result{Category: category, Fingerprint: fp}

	if !forceRefresh {
		if env, ok := s.store.Get(fp); ok {
			res.Source = SourceCache
			return env, res
		}
	}

	if !s.registry.Enabled(category) {
		// Not cached, so re-enabling takes effect immediately.
		res.Source = SourceGated
		return trend.Empty(), res
	}

	if s.mode == config.ModeLive && s.apiKey != "" && s.remote != nil {
		return s.accessLive(ctx, category, params, fp, res)
	}
	return s.accessOffline(category, fp, res)
}

func (s *Session) accessLive(ctx context.Context, category string, params map[string]any, fp string, res Result) (trend.Envelope, Result) {
	desc, ok := s.registry.Get(category)
	if !ok {
		res.Source = SourceGated
		return trend.Empty(), res
	}

	env, err := s.remote.Fetch(ctx, desc, params)
	if err != nil {
		// Failures are never cached and never charged; the next call
		// retries the network instead of replaying the failure.
		s.logger.Warn("remote fetch failed", "category", category, "err", err)
		res.Source = SourceFailed
		res.Err = err
		return trend.Empty(), res
	}

	s.store.Put(fp, env)
	s.store.Charge(desc.Cost)
	res.Charged = desc.Cost
	s.persist()

	res.Source = SourceLive
	return env, res
}

func (s *Session) accessOffline(category, fp string, res Result) (trend.Envelope, Result) {
	env := s.offline.Read(category)
	// Offline reads are cached so repeated reads are cheap and
	// consistent; they are never charged.
	s.store.Put(fp, env)
	s.persist()

	res.Source = SourceOffline
	return env, res
}

// Invalidate removes cached entries for one category, or everything when
// category is empty or "all". A full clear is a session reset: the usage
// counter and the saved plan/brief go with the entries, while a selective
// invalidation leaves both alone. Persists the shrunken snapshot.
func (s *Session) Invalidate(category string) int {
	var removed int
	if category == "" || category == "all" {
		removed = s.store.Len()
		s.store.Reset()
		s.store.ClearArtifact(store.ArtifactWeeklyPlan)
		s.store.ClearArtifact(store.ArtifactBrief)
	} else {
		removed = s.store.InvalidateCategory(category)
	}
	s.persist()
	return removed
}

// SwitchMode changes between demo and live. As a side effect the cache
// is cleared and the usage counter reset: entries and credits belong to
// the mode session that produced them.
func (s *Session) SwitchMode(mode, apiKey string) {
	s.mode = mode
	s.apiKey = apiKey
	s.store.Reset()
	s.persist()
}

// persist mirrors state to disk, best-effort. Write failures never fail
// the in-memory operation that triggered them.
func (s *Session) persist() {
	if err := s.store.Persist(); err != nil {
		s.logger.Debug("snapshot write failed", "err", err)
	}
}
