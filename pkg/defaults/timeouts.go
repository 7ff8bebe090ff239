// Copyright (c) 2025, Neurotune Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package defaults

import "time"

// Collector timeouts for resource probing operations.
const (
	// CollectorTimeout is the default timeout for a single collector,
	// covering /proc reads and the neuron-ls exec. Collectors should
	// respect parent context deadlines when shorter.
	CollectorTimeout = 10 * time.Second

	// SnapshotTimeout bounds a full resource snapshot across all
	// collectors.
	SnapshotTimeout = 30 * time.Second
)

// Monitor timing for the polling loop.
const (
	// MonitorInterval is the default delay between monitor ticks.
	MonitorInterval = 2 * time.Second

	// ScrapeTimeout bounds a single vLLM metrics endpoint read. It must
	// not exceed MonitorInterval or ticks would queue behind slow
	// scrapes.
	ScrapeTimeout = 2 * time.Second
)

// Server timeouts for the optional metrics endpoint.
const (
	// ServerReadTimeout is the maximum duration for reading a request.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// HTTP client timeouts for outbound requests (metrics scrapes and
// load test completions).
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	// Long enough for a full completion against a cold model server.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second

	// HTTPExpectContinueTimeout is the timeout for Expect: 100-continue.
	HTTPExpectContinueTimeout = 1 * time.Second
)

// Load test pacing defaults.
const (
	// LoadTestRunsPerCase is the default number of runs per prompt case.
	LoadTestRunsPerCase = 3

	// LoadTestRequestsPerSecond is the default request pacing rate.
	LoadTestRequestsPerSecond = 1.0
)

// Preflight timeouts for host readiness checks.
const (
	// SystemdQueryTimeout bounds a single D-Bus unit state query.
	SystemdQueryTimeout = 5 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// CLISnapshotTimeout is the default timeout for snapshot and advise
	// operations.
	CLISnapshotTimeout = 2 * time.Minute

	// CLICheckTimeout is the default timeout for the preflight check run.
	CLICheckTimeout = 1 * time.Minute
)
