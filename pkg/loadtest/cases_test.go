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

package loadtest

import (
	"strings"
	"testing"
)

func TestCases(t *testing.T) {
	cases := Cases()

	if len(cases) != 8 {
		t.Fatalf("Cases() returned %d cases, want 8", len(cases))
	}

	perCategory := make(map[Category]int)
	names := make(map[string]bool)
	for _, c := range cases {
		perCategory[c.Category]++
		if names[c.Name] {
			t.Errorf("duplicate case name %q", c.Name)
		}
		names[c.Name] = true
		if c.Prompt == "" {
			t.Errorf("case %q has empty prompt", c.Name)
		}
	}

	for _, cat := range categoryOrder {
		if perCategory[cat] != 2 {
			t.Errorf("category %s has %d cases, want 2", cat, perCategory[cat])
		}
	}
}

func TestContextWindowCase(t *testing.T) {
	for _, c := range Cases() {
		if c.Name != "Context Window Test" {
			continue
		}
		if !strings.HasPrefix(c.Prompt, strings.Repeat("A", 1000)) {
			t.Error("context window prompt missing long filler prefix")
		}
		if !strings.HasSuffix(c.Prompt, "Summarize this text.") {
			t.Errorf("context window prompt ends with %q", c.Prompt[len(c.Prompt)-30:])
		}
		return
	}
	t.Fatal("Context Window Test case not found")
}

func TestCaseMaxTokens(t *testing.T) {
	tests := []struct {
		name   string
		length LengthClass
		limit  int
		want   int
	}{
		{"short stays at limit", LengthShort, 2048, 2048},
		{"medium stays at limit", LengthMedium, 4096, 4096},
		{"long doubles", LengthLong, 2048, 4096},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Case{Length: tt.length}
			if got := c.MaxTokens(tt.limit); got != tt.want {
				t.Errorf("MaxTokens(%d) = %d, want %d", tt.limit, got, tt.want)
			}
		})
	}
}
