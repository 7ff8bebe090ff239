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

// Package serializer provides encoding and decoding of neurotune artifacts in multiple formats.
//
// # Overview
//
// The serializer package handles conversion between artifact data structures and
// various output formats including JSON, YAML, and human-readable tables. It supports
// both encoding (writing data) and decoding (reading data) operations with automatic
// format detection.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, compact representation
//   - Suitable for API responses and programmatic consumption
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable with preserved structure
//   - Suitable for configuration files and version control
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Flattened FIELD/VALUE text representation
//   - Suitable for terminal/console viewing
//   - Read-only (no deserialization support)
//
// # Usage - Encoding
//
// Write to stdout (YAML):
//
//	w, err := serializer.NewStdoutWriter(serializer.FormatYAML)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	data := map[string]any{"version": "1.0.0", "status": "ok"}
//	if err := w.Serialize(ctx, data); err != nil {
//	    log.Fatal(err)
//	}
//
// Write to a file, falling back to stdout when the file cannot be created:
//
//	w, err := serializer.NewFileWriterOrStdout(ctx, "snapshot.json", serializer.FormatJSON)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer w.Close()
//
//	if err := w.Serialize(ctx, snapshot); err != nil {
//	    log.Fatal(err)
//	}
//
// # Usage - Decoding
//
// Read from a file with automatic format detection:
//
//	snap, err := serializer.FromFile[snapshotter.Snapshot]("snapshot.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Read with a custom io.Reader:
//
//	r, err := serializer.NewReader(serializer.FormatYAML, strings.NewReader(yamlData))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var params config.ParameterSet
//	if err := r.Deserialize(&params); err != nil {
//	    log.Fatal(err)
//	}
//
// Remote files are downloaded transparently: NewFileReader accepts http(s)
// URLs and fetches them with HttpReader before decoding.
//
// # Format Detection
//
// File extension-based detection:
//   - .json → JSON
//   - .yaml, .yml → YAML
//   - .table, .txt → Table
//   - Other → JSON (default)
//
// Format detection is automatic when using:
//   - NewFileWriterOrStdout(ctx, path, FormatUnknown)
//   - NewFileReaderAuto(path)
//   - FromFile[T](path)
//
// # Resource Management
//
// Always close writers and readers that manage files:
//
//	w, err := serializer.NewFileWriterOrStdout(ctx, "report.json", serializer.FormatJSON)
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//
// Stdout writers don't require closing but Close() is safe to call.
//
// # Error Handling
//
// Errors are returned when:
//   - Format is unknown or unsupported
//   - File cannot be opened or downloaded
//   - Data cannot be marshaled/unmarshaled
//   - Table format used for deserialization
//
// # Integration
//
// Used throughout neurotune for artifact I/O:
//   - pkg/cli - Command output formatting
//   - pkg/snapshotter - Resource snapshot serialization
//   - pkg/loadtest - Load test report encoding
package serializer
