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
	"testing"

	"github.com/neurotune/neurotune/pkg/collector/host"
	"github.com/neurotune/neurotune/pkg/collector/neuron"
)

func TestDefaultFactory_CreateHostCollector(t *testing.T) {
	factory := NewDefaultFactory()

	col := factory.CreateHostCollector()
	if col == nil {
		t.Fatal("Expected non-nil collector")
	}

	if _, ok := col.(*host.Collector); !ok {
		t.Fatalf("Expected *host.Collector, got %T", col)
	}
}

func TestDefaultFactory_CreateAcceleratorCollector(t *testing.T) {
	factory := NewDefaultFactory()

	col := factory.CreateAcceleratorCollector()
	if col == nil {
		t.Fatal("Expected non-nil collector")
	}

	if _, ok := col.(*neuron.Collector); !ok {
		t.Fatalf("Expected *neuron.Collector, got %T", col)
	}
}
