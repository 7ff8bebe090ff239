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

package collector

import (
	"context"

	"github.com/neurotune/neurotune/pkg/collector/host"
	"github.com/neurotune/neurotune/pkg/collector/neuron"
)

// HostCollector probes host CPU and memory capacity.
type HostCollector interface {
	Collect(ctx context.Context) (*host.Info, error)
}

// AcceleratorCollector probes Neuron accelerator inventory.
type AcceleratorCollector interface {
	Collect(ctx context.Context) ([]neuron.Device, error)
}
