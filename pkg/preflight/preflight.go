package preflight

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"syscall"
	"time"

	"github.com/neurotune/neurotune/pkg/collector"
	"github.com/neurotune/neurotune/pkg/collector/host"
	"github.com/neurotune/neurotune/pkg/collector/systemd"
	"github.com/neurotune/neurotune/pkg/defaults"
	"github.com/neurotune/neurotune/pkg/errors"
	"github.com/neurotune/neurotune/pkg/header"
	"github.com/neurotune/neurotune/pkg/snapshotter"
)

// Capacity floors for building and serving a model on this host. Model
// weights plus compiled Neuron artifacts routinely exceed 100GB on disk,
// and compilation is memory-hungry.
const (
	minMemoryBytes   = 16 << 30
	minRootFreeBytes = 200 << 30
)

// dockerUnit is the systemd unit expected to run the container daemon.
const dockerUnit = "docker.service"

// Package variables so tests can run hermetically.
var (
	rootPath = "/"
	statfs   = syscall.Statfs
	lookPath = exec.LookPath
)

// requiredBinary describes one PATH lookup and why the tool matters.
type requiredBinary struct {
	name     string
	purpose  string
	optional bool
}

// binaries lists the tools the serving workflow shells out to. neuron-top
// only matters for interactive debugging, so its absence downgrades to a
// skip.
var binaries = []requiredBinary{
	{name: "neuron-ls", purpose: "accelerator inventory"},
	{name: "docker", purpose: "runs the model server container"},
	{name: "git", purpose: "fetches code and models"},
	{name: "neuron-top", purpose: "live accelerator monitoring", optional: true},
}

// UnitCollector probes systemd unit state.
type UnitCollector interface {
	Collect(ctx context.Context) ([]systemd.UnitState, error)
}

// Runner executes host readiness checks.
type Runner struct {
	version string
	host    collector.HostCollector
	units   UnitCollector
}

// Option is a functional option for configuring Runner instances.
type Option func(*Runner)

// WithVersion sets the tool version stamped on check results.
func WithVersion(version string) Option {
	return func(r *Runner) {
		r.version = version
	}
}

// WithHostCollector replaces the procfs host collector.
func WithHostCollector(hc collector.HostCollector) Option {
	return func(r *Runner) {
		r.host = hc
	}
}

// WithUnitCollector replaces the systemd prober.
func WithUnitCollector(uc UnitCollector) Option {
	return func(r *Runner) {
		r.units = uc
	}
}

// New creates a Runner with the provided options.
func New(opts ...Option) *Runner {
	r := &Runner{}

	// Apply options
	for _, opt := range opts {
		opt(r)
	}

	if r.host == nil {
		r.host = host.NewCollector()
	}
	if r.units == nil {
		r.units = systemd.NewCollector(dockerUnit)
	}

	return r
}

// Run executes every readiness check and returns the aggregate result.
// Only an unreadable host is an error: individual shortfalls are reported
// in the result, and conditions that cannot be evaluated on this host are
// skipped rather than failed.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	result := NewResult()
	result.Init(header.KindCheckResult, snapshotter.FullAPIVersion, r.version)

	// Host capacity first. If the host itself cannot be read there is
	// nothing meaningful to report on, so the whole run errors.
	cctx, cancel := context.WithTimeout(ctx, defaults.CollectorTimeout)
	defer cancel()
	info, err := r.host.Collect(cctx)
	if err != nil {
		checkRunsTotal.WithLabelValues("error").Inc()
		return nil, errors.Wrap(errors.ErrCodeUnavailable, "host probe failed", err)
	}

	checks := []Check{
		checkMemory(info),
		checkRootDisk(),
	}
	checks = append(checks, checkBinaries()...)
	checks = append(checks, r.checkDockerService(ctx))

	for _, c := range checks {
		result.Checks = append(result.Checks, c)

		// Update summary counts
		switch c.Status {
		case CheckStatusPass:
			result.Summary.Passed++
		case CheckStatusFail:
			result.Summary.Failed++
			slog.Warn("readiness check failed",
				"name", c.Name,
				"detail", c.Detail)
		case CheckStatusSkip:
			result.Summary.Skipped++
		}
		checksTotal.WithLabelValues(string(c.Status)).Inc()
	}

	result.Summary.Total = len(checks)
	result.Summary.Duration = time.Since(start)

	// Determine overall status
	switch {
	case result.Summary.Failed > 0:
		result.Summary.Status = StatusFail
	case result.Summary.Skipped > 0:
		result.Summary.Status = StatusPartial
	default:
		result.Summary.Status = StatusPass
	}

	checkRunsTotal.WithLabelValues("success").Inc()
	checkDuration.Observe(time.Since(start).Seconds())

	slog.Debug("readiness checks completed",
		"passed", result.Summary.Passed,
		"failed", result.Summary.Failed,
		"skipped", result.Summary.Skipped,
		"status", result.Summary.Status,
		"duration", result.Summary.Duration)

	return result, nil
}

// checkMemory verifies total system memory against the serving floor.
func checkMemory(info *host.Info) Check {
	c := Check{Name: "host.memory"}

	c.Detail = fmt.Sprintf("%.1fGB total (minimum: %dGB)",
		float64(info.MemoryTotalBytes)/(1<<30), minMemoryBytes>>30)

	if info.MemoryTotalBytes >= minMemoryBytes {
		c.Status = CheckStatusPass
	} else {
		c.Status = CheckStatusFail
	}

	return c
}

// checkRootDisk verifies free space for model weights and compiled
// artifacts on the root filesystem.
func checkRootDisk() Check {
	c := Check{Name: "host.disk"}

	var stat syscall.Statfs_t
	if err := statfs(rootPath, &stat); err != nil {
		c.Status = CheckStatusFail
		c.Detail = fmt.Sprintf("statfs %s: %v", rootPath, err)
		return c
	}

	free := stat.Bavail * uint64(stat.Bsize)
	c.Detail = fmt.Sprintf("%.1fGB free on %s (minimum: %dGB)",
		float64(free)/(1<<30), rootPath, minRootFreeBytes>>30)

	if free >= minRootFreeBytes {
		c.Status = CheckStatusPass
	} else {
		c.Status = CheckStatusFail
	}

	return c
}

// checkBinaries looks up each workflow tool on PATH.
func checkBinaries() []Check {
	checks := make([]Check, 0, len(binaries))

	for _, b := range binaries {
		c := Check{Name: "binary." + b.name}

		path, err := lookPath(b.name)
		switch {
		case err == nil:
			c.Status = CheckStatusPass
			c.Detail = fmt.Sprintf("%s (%s)", path, b.purpose)
		case b.optional:
			c.Status = CheckStatusSkip
			c.Detail = fmt.Sprintf("not found in PATH (optional, %s)", b.purpose)
		default:
			c.Status = CheckStatusFail
			c.Detail = fmt.Sprintf("not found in PATH (%s)", b.purpose)
		}

		checks = append(checks, c)
	}

	return checks
}

// checkDockerService verifies the container daemon is running. Hosts
// without a reachable systemd (containers, minimal images) skip rather
// than fail: the daemon state is unknowable there.
func (r *Runner) checkDockerService(ctx context.Context) Check {
	c := Check{Name: "service.docker"}

	qctx, cancel := context.WithTimeout(ctx, defaults.SystemdQueryTimeout)
	defer cancel()

	states, err := r.units.Collect(qctx)
	if err != nil {
		c.Status = CheckStatusSkip
		c.Detail = fmt.Sprintf("systemd unavailable: %v", err)
		return c
	}

	for _, s := range states {
		if s.Name != dockerUnit {
			continue
		}
		c.Detail = fmt.Sprintf("%s (%s)", s.ActiveState, s.SubState)
		if s.Active() {
			c.Status = CheckStatusPass
		} else {
			c.Status = CheckStatusFail
		}
		return c
	}

	c.Status = CheckStatusSkip
	c.Detail = "unit state not reported"
	return c
}
