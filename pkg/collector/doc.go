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

// Package collector provides interfaces and implementations for probing host resources.
//
// # Overview
//
// This package defines the interfaces for gathering capacity data from the
// host and its Neuron accelerators. Collectors run concurrently under the
// snapshotter and return structured data that feeds parameter sizing.
//
// # Core Interfaces
//
// The two collector interfaces each return their probe's typed result:
//
//	type HostCollector interface {
//	    Collect(ctx context.Context) (*host.Info, error)
//	}
//
//	type AcceleratorCollector interface {
//	    Collect(ctx context.Context) ([]neuron.Device, error)
//	}
//
// All collectors support context-based cancellation for graceful shutdown and
// timeout handling.
//
// # Factory Pattern
//
// The Factory interface enables dependency injection and testing by
// abstracting collector creation:
//
//	type Factory interface {
//	    CreateHostCollector() HostCollector
//	    CreateAcceleratorCollector() AcceleratorCollector
//	}
//
// The DefaultFactory provides production implementations:
//
//	factory := collector.NewDefaultFactory()
//	hostCollector := factory.CreateHostCollector()
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	info, err := hostCollector.Collect(ctx)
//	if err != nil {
//	    log.Fatalf("collection failed: %v", err)
//	}
//
// # Subpackages
//
// The collector package is organized into subpackages by data source:
//   - collector/host - procfs CPU and memory collectors
//   - collector/neuron - neuron-ls accelerator collectors
//   - collector/file - line/key-value file parsing shared by collectors
//
// # Error Handling
//
// The two collectors carry different error weights. Host capacity is required
// for any sizing decision, so HostCollector errors are fatal to the caller.
// Accelerator probing is best-effort: AcceleratorCollector errors mean the
// host is treated as having no devices, and sizing falls back to floor
// values.
package collector
