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

// Package file provides a small line/key-value parser for configuration and
// procfs style files.
//
// The parser is the single point through which collectors read files like
// /proc/cpuinfo, /proc/meminfo, and /etc/os-release, so size limits, UTF-8
// validation, and comment handling are applied consistently.
//
// # Usage
//
// Parse /proc/meminfo into a map (values keep their unit suffix):
//
//	p := file.NewParser(file.WithKVDelimiter(":"))
//	kv, err := p.GetMap("/proc/meminfo")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(kv["MemTotal"]) // "32795852 kB"
//
// Read /proc/cpuinfo line by line:
//
//	lines, err := file.NewParser().GetLines("/proc/cpuinfo")
//	if err != nil {
//	    // Handle error
//	}
//
// # Error Handling
//
// Errors are wrapped with descriptive context:
//
//	_, err := p.GetMap("/nonexistent")
//	// Error: failed to read file "/nonexistent": no such file or directory
//
// Common error scenarios:
//   - File does not exist (os.ErrNotExist)
//   - Permission denied (os.ErrPermission)
//   - File exceeds the configured maximum size
//   - Content is not valid UTF-8
//
// # Thread Safety
//
// A Parser holds only configuration and no per-call state, so it is safe to
// share between goroutines.
package file
