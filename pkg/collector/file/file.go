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

package file

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"
)

// Option configures a Parser.
type Option func(*Parser)

// Parser reads line-oriented text files of the kind found under /proc
// and /etc: one record per line, optional "#" comments, and key/value
// pairs separated by a configurable delimiter.
type Parser struct {
	delimiter       string
	maxSize         int
	skipComments    bool
	kvDelimiter     string
	vDefault        string
	vTrimChars      string
	skipEmptyValues bool
}

// WithDelimiter overrides the record separator. Default is newline.
func WithDelimiter(delim string) Option {
	return func(p *Parser) {
		p.delimiter = delim
	}
}

// WithMaxSize caps how many bytes GetLines will read. Files over the
// cap are rejected rather than truncated. Default is 1MB, generous for
// anything under /proc.
func WithMaxSize(size int) Option {
	return func(p *Parser) {
		p.maxSize = size
	}
}

// WithSkipComments controls whether lines starting with "#" are
// dropped. Default is true.
func WithSkipComments(skip bool) Option {
	return func(p *Parser) {
		p.skipComments = skip
	}
}

// WithKVDelimiter sets the key/value separator used by GetMap.
// Default is "="; /proc/meminfo style files want ":".
func WithKVDelimiter(kvDelim string) Option {
	return func(p *Parser) {
		p.kvDelimiter = kvDelim
	}
}

// WithVDefault sets the value recorded for lines that carry a bare key
// with no separator. Default is the empty string.
func WithVDefault(vDefault string) Option {
	return func(p *Parser) {
		p.vDefault = vDefault
	}
}

// WithVTrimChars sets a character set trimmed from both ends of each
// value, for os-release style quoting. Default is no trimming.
func WithVTrimChars(trimChars string) Option {
	return func(p *Parser) {
		p.vTrimChars = trimChars
	}
}

// WithSkipEmptyValues drops entries whose value resolves to the empty
// string instead of recording them. Default is false.
func WithSkipEmptyValues(skip bool) Option {
	return func(p *Parser) {
		p.skipEmptyValues = skip
	}
}

// NewParser creates a parser with the given options applied over the
// defaults: newline records, "=" key/value separator, comments
// skipped, 1MB size cap.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		delimiter:    "\n",
		maxSize:      1 << 20,
		skipComments: true,
		kvDelimiter:  "=",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GetLines reads the file at path and returns its non-blank records,
// each trimmed of surrounding whitespace. Comment lines are dropped
// unless disabled. Returns an error if the file cannot be read,
// exceeds the size cap, or is not valid UTF-8.
func (p *Parser) GetLines(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("file path cannot be empty")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}

	if len(b) > p.maxSize {
		return nil, fmt.Errorf("file %q exceeds maximum size of %d bytes", path, p.maxSize)
	}
	if !utf8.Valid(b) {
		return nil, fmt.Errorf("content of file %q is not valid UTF-8", path)
	}

	raw := strings.Split(string(b), p.delimiter)
	lines := make([]string, 0, len(raw))
	for _, entry := range raw {
		line := strings.TrimSpace(entry)
		if line == "" {
			continue
		}
		if p.skipComments && strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// GetMap reads the file at path and parses each record into a
// key/value pair on the configured separator. Records without the
// separator keep their whole text as the key and take the configured
// default value. Values keep any later occurrences of the separator
// intact, so "model name : Xeon @ 2.5GHz: rev 7" parses as expected.
func (p *Parser) GetMap(path string) (map[string]string, error) {
	lines, err := p.GetLines(path)
	if err != nil {
		return nil, err
	}

	result := make(map[string]string, len(lines))
	for _, line := range lines {
		k, v, found := strings.Cut(line, p.kvDelimiter)
		key := strings.TrimSpace(k)

		if !found {
			if p.skipEmptyValues && p.vDefault == "" {
				slog.Debug("skipping bare key with empty default", "key", key)
				continue
			}
			result[key] = p.vDefault
			continue
		}

		value := strings.TrimSpace(v)
		if p.vTrimChars != "" {
			value = strings.Trim(value, p.vTrimChars)
		}
		if p.skipEmptyValues && value == "" {
			slog.Debug("skipping entry with empty value", "key", key)
			continue
		}

		result[key] = value
	}

	return result, nil
}
