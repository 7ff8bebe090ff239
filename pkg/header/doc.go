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

// Package header provides the common header type for neurotune artifacts.
//
// Every serialized artifact (resource snapshots, recommendations, check
// results, load test reports) embeds a Header carrying its kind, schema
// version, and metadata such as the creation timestamp and tool version.
//
// # Usage
//
//	var snap Snapshot
//	snap.Init(header.KindResourceSnapshot, "neurotune.dev/v1alpha1", version)
//
// # Serialization
//
// Headers serialize consistently to JSON and YAML:
//
//	{
//	  "kind": "ResourceSnapshot",
//	  "apiVersion": "neurotune.dev/v1alpha1",
//	  "metadata": {
//	    "timestamp": "2025-12-30T10:30:00Z",
//	    "version": "v0.3.0"
//	  }
//	}
package header
