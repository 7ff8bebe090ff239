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

// Package defaults provides centralized configuration constants for neurotune.
//
// This package defines timeout values, pacing rates, and other configuration
// defaults used across the codebase. Centralizing these values ensures
// consistency and makes tuning easier.
//
// # Timeout Categories
//
// Timeouts are organized by component:
//
//   - Collector timeouts: For resource probing (/proc reads, neuron-ls)
//   - Monitor timing: Tick interval and scrape bounds for the polling loop
//   - Server timeouts: For the optional metrics endpoint
//   - HTTP client timeouts: For outbound scrapes and load test requests
//   - Preflight timeouts: For host readiness checks
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/neurotune/neurotune/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.CollectorTimeout)
//	defer cancel()
package defaults
