// Package preflight runs host readiness checks for serving on Inferentia.
//
// # Overview
//
// Before pulling a model and starting the server it is cheaper to find out
// that the host is short on memory, missing docker, or has no room for
// compiled artifacts. The Runner evaluates a fixed set of checks and
// reports each as pass, fail, or skip:
//
//   - host.memory: total system memory meets the serving floor
//   - host.disk: root filesystem free space covers weights and artifacts
//   - binary.*: neuron-ls, docker, and git on PATH (neuron-top optional)
//   - service.docker: docker.service active per systemd
//
// # Error Semantics
//
// Failing a check is a finding, not an error: Run returns a Result whose
// Summary counts pass/fail/skip, and callers decide whether failures are
// fatal. Only an unreadable host (the procfs probe itself erroring) makes
// Run return an error, since no other check result would be trustworthy.
//
// Checks that cannot be evaluated on the host are skipped. A container
// without a reachable systemd cannot know the docker daemon's state, and a
// missing optional tool is a note, not a defect.
//
// # Usage
//
//	runner := preflight.New(
//	    preflight.WithVersion("v1.0.0"),
//	)
//
//	result, err := runner.Run(ctx)
//	if err != nil {
//	    return err
//	}
//	if result.Failed() {
//	    // host is not ready
//	}
//
// # Observability
//
// The package exports Prometheus metrics:
//   - neurotune_preflight_duration_seconds: Run duration
//   - neurotune_preflight_checks_total{status}: Check outcomes
//   - neurotune_preflight_runs_total{status}: Run attempts
package preflight
