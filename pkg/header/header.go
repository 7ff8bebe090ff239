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

package header

import (
	"time"
)

// Kind represents the type of a neurotune artifact.
// All serialized artifacts should use these constants for consistency.
type Kind string

// Valid Kind constants for all neurotune artifact types.
const (
	KindResourceSnapshot Kind = "ResourceSnapshot"
	KindRecommendation   Kind = "Recommendation"
	KindCheckResult      Kind = "CheckResult"
	KindLoadTestReport   Kind = "LoadTestReport"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether the Kind is one of the recognized kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindResourceSnapshot, KindRecommendation, KindCheckResult, KindLoadTestReport:
		return true
	default:
		return false
	}
}

// Header contains metadata and versioning information for neurotune artifacts.
// It follows Kubernetes-style resource conventions with Kind, APIVersion, and
// Metadata fields, and is embedded by each artifact type rather than built
// standalone.
type Header struct {
	// Kind is the type of the artifact.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the schema version of the artifact.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains key-value pairs with metadata about the artifact.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init stamps the header with the artifact kind and schema version, and
// resets Metadata to the creation timestamp plus the tool version when
// one is given. Artifacts call this once when they are built.
func (h *Header) Init(kind Kind, apiVersion string, version string) {
	h.Kind = kind
	h.APIVersion = apiVersion
	h.Metadata = make(map[string]string)

	h.Metadata["timestamp"] = time.Now().UTC().Format(time.RFC3339)
	if version != "" {
		h.Metadata["version"] = version
	}
}
