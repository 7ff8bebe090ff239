package monitor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/neurotune/neurotune/pkg/config"
	"github.com/neurotune/neurotune/pkg/defaults"
	"github.com/neurotune/neurotune/pkg/recommender"
	"github.com/neurotune/neurotune/pkg/snapshotter"
	"github.com/neurotune/neurotune/pkg/vllm"

	"golang.org/x/sync/errgroup"
)

// Scraper reads one set of raw counters from the vLLM metrics endpoint.
// Satisfied by vllm.Client.
type Scraper interface {
	Scrape(ctx context.Context) (vllm.RawCounters, error)
}

// ParameterSource loads the serving parameters in effect. Satisfied by
// config.Store.
type ParameterSource interface {
	LoadCurrent() (config.ParameterSet, bool, error)
}

// Monitor drives the tuning feedback loop: every interval it snapshots the
// accelerators, scrapes the vLLM server, derives rates, evaluates the
// advice rules against the current parameters, and renders a status block.
type Monitor struct {
	version     string
	interval    time.Duration
	once        bool
	metricsAddr string

	out      io.Writer
	quit     io.Reader
	capturer snapshotter.Capturer
	scraper  Scraper
	params   ParameterSource
	engine   *recommender.Engine
	sampler  *vllm.Sampler
}

// Option is a functional option for configuring the Monitor.
type Option func(*Monitor)

// WithVersion sets the tool version used when the monitor builds its own
// collaborators.
func WithVersion(version string) Option {
	return func(m *Monitor) {
		m.version = version
	}
}

// WithInterval sets the delay between ticks.
func WithInterval(d time.Duration) Option {
	return func(m *Monitor) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithOnce makes Run render a single tick and return.
func WithOnce(once bool) Option {
	return func(m *Monitor) {
		m.once = once
	}
}

// WithMetricsAddress enables the Prometheus metrics listener on the given
// address. Empty leaves it off.
func WithMetricsAddress(addr string) Option {
	return func(m *Monitor) {
		m.metricsAddr = addr
	}
}

// WithOutput sets the writer status blocks are rendered to.
func WithOutput(w io.Writer) Option {
	return func(m *Monitor) {
		m.out = w
	}
}

// WithQuitReader sets the reader watched for operator quit lines. Nil
// disables the watcher.
func WithQuitReader(r io.Reader) Option {
	return func(m *Monitor) {
		m.quit = r
	}
}

// WithCapturer sets the resource snapshot source.
func WithCapturer(c snapshotter.Capturer) Option {
	return func(m *Monitor) {
		m.capturer = c
	}
}

// WithScraper sets the vLLM metrics source.
func WithScraper(s Scraper) Option {
	return func(m *Monitor) {
		m.scraper = s
	}
}

// WithParameterSource sets where current parameters are loaded from each
// tick.
func WithParameterSource(p ParameterSource) Option {
	return func(m *Monitor) {
		m.params = p
	}
}

// WithEngine sets the advice engine.
func WithEngine(e *recommender.Engine) Option {
	return func(m *Monitor) {
		m.engine = e
	}
}

// New creates a new Monitor with the provided options. Collaborators not
// supplied are built from process settings.
func New(opts ...Option) *Monitor {
	m := &Monitor{
		interval: defaults.MonitorInterval,
		out:      os.Stdout,
		sampler:  vllm.NewSampler(),
	}

	// Apply options
	for _, opt := range opts {
		opt(m)
	}

	if m.capturer == nil {
		m.capturer = &snapshotter.NodeSnapshotter{Version: m.version}
	}
	if m.scraper == nil {
		m.scraper = vllm.NewClient(config.Load().MetricsURL())
	}
	if m.params == nil {
		m.params = config.NewStore(config.Load().ConfigDir)
	}
	if m.engine == nil {
		m.engine = recommender.New(recommender.WithVersion(m.version))
	}

	return m
}

// Run executes the monitor loop until the context is cancelled or the
// operator types a quit line. The first tick runs immediately; a host probe
// failure there aborts, because it means the tool cannot see the machine at
// all. After startup no probe or scrape failure stops the loop.
func (m *Monitor) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if m.quit != nil {
		go m.watchQuit(cancel)
	}

	var serverErr <-chan error
	if m.metricsAddr != "" {
		server := newMetricsServer(m.metricsAddr)
		serverErr = server.start()
		defer func() {
			if err := server.shutdown(); err != nil {
				slog.Warn("metrics server shutdown", slog.String("error", err.Error()))
			}
		}()
		slog.Info("metrics server listening", slog.String("address", m.metricsAddr))
	}

	slog.Info("monitor starting",
		slog.Duration("interval", m.interval),
		slog.Bool("once", m.once))

	if err := m.tick(ctx, true); err != nil {
		return fmt.Errorf("initial resource probe failed: %w", err)
	}
	if m.once {
		return nil
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("monitor stopped")
			return nil
		case err := <-serverErr:
			return fmt.Errorf("metrics server failed: %w", err)
		case <-ticker.C:
			if err := m.tick(ctx, false); err != nil {
				// Only render failures land here; probe and scrape
				// problems degrade the tick instead.
				slog.Error("tick failed", slog.String("error", err.Error()))
			}
		}
	}
}

// tick runs one iteration of the loop: probe and scrape concurrently, each
// under its own timeout, then derive, evaluate, and render. In strict mode
// a snapshot failure is returned instead of degrading the tick.
func (m *Monitor) tick(ctx context.Context, strict bool) error {
	start := time.Now()

	status := &Status{Time: start}

	var (
		snap      *snapshotter.Snapshot
		raw       vllm.RawCounters
		probeNote string
		scrapNote string
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		cctx, ccancel := context.WithTimeout(gctx, defaults.SnapshotTimeout)
		defer ccancel()
		s, err := m.capturer.Capture(cctx)
		if err != nil {
			if strict {
				return err
			}
			slog.Warn("resource probe failed, continuing degraded",
				slog.String("error", err.Error()))
			probeNote = fmt.Sprintf("resource probe failed: %v", err)
			return nil
		}
		snap = s
		return nil
	})

	g.Go(func() error {
		sctx, scancel := context.WithTimeout(gctx, defaults.ScrapeTimeout)
		defer scancel()
		r, err := m.scraper.Scrape(sctx)
		if err != nil {
			// The server being down is the normal state before vLLM
			// starts; scrape failures never abort, even on the first tick.
			slog.Debug("metrics scrape failed, continuing degraded",
				slog.String("error", err.Error()))
			scrapNote = fmt.Sprintf("metrics endpoint unreachable: %v", err)
			return nil
		}
		raw = r
		return nil
	})

	if err := g.Wait(); err != nil {
		monitorTicksTotal.WithLabelValues("error").Inc()
		return err
	}

	if snap == nil {
		snap = snapshotter.NewSnapshot()
	}
	status.Snapshot = snap
	status.Notes = append(status.Notes, snap.Notes...)
	if probeNote != "" {
		status.addNote(probeNote)
	}
	if scrapNote != "" {
		status.addNote(scrapNote)
	}

	// Both legs are joined before the memory fraction is read so the
	// runtime view never mixes this tick's counters with a stale snapshot.
	rates := m.sampler.Rates(raw, time.Now())
	status.Metrics = vllm.BuildSnapshot(raw, rates, snap.AcceleratorMemoryUsageFraction())

	params, found, err := m.params.LoadCurrent()
	if err != nil {
		status.addNote(fmt.Sprintf("loading current parameters: %v", err))
		params = config.Default()
	} else if !found {
		params = config.Default()
	}
	status.Params = params
	status.ParamsPersisted = err == nil && found

	status.Advice = m.engine.Evaluate(status.Metrics, params)

	outcome := "ok"
	if status.Degraded() {
		outcome = "degraded"
	}
	monitorTicksTotal.WithLabelValues(outcome).Inc()
	monitorTickDuration.Observe(time.Since(start).Seconds())
	monitorLastTick.SetToCurrentTime()

	if err := Render(m.out, status); err != nil {
		return fmt.Errorf("rendering status: %w", err)
	}
	return nil
}

// watchQuit cancels the loop when the operator enters q or quit. Reading
// stdin cannot be interrupted, so the goroutine is simply abandoned when
// Run returns.
func (m *Monitor) watchQuit(cancel context.CancelFunc) {
	scanner := bufio.NewScanner(m.quit)
	for scanner.Scan() {
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "q", "quit":
			slog.Info("quit requested")
			cancel()
			return
		}
	}
}
