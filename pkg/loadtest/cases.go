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
)

// Category groups prompt cases by the load shape they exercise.
type Category string

// Prompt case categories, in report order.
const (
	CategoryShort   Category = "short"
	CategoryMedium  Category = "medium"
	CategoryLong    Category = "long"
	CategorySpecial Category = "special"
)

var categoryOrder = []Category{
	CategoryShort,
	CategoryMedium,
	CategoryLong,
	CategorySpecial,
}

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// LengthClass is the expected response length of a case. It controls the
// completion token budget, not the grouping.
type LengthClass string

// Expected response lengths.
const (
	LengthShort  LengthClass = "short"
	LengthMedium LengthClass = "medium"
	LengthLong   LengthClass = "long"
)

// Case is one prompt in the load test suite.
type Case struct {
	// Name identifies the case in logs and reports.
	Name string `json:"name" yaml:"name"`

	// Category is the load shape group the case belongs to.
	Category Category `json:"category" yaml:"category"`

	// Prompt is the completion prompt sent to the server.
	Prompt string `json:"prompt" yaml:"prompt"`

	// Length is the expected response length class.
	Length LengthClass `json:"length" yaml:"length"`
}

// MaxTokens returns the completion token budget for the case given the
// serving context length. Long-form cases get double the budget so the
// response is not clipped by the default.
func (c Case) MaxTokens(maxModelLen int) int {
	if c.Length == LengthLong {
		return maxModelLen * 2
	}
	return maxModelLen
}

// Cases returns the built-in prompt suite: two short, two medium, two
// long, and two special cases. The context window case front-loads a
// thousand characters of filler to push prompt length rather than
// response length.
func Cases() []Case {
	return []Case{
		{
			Name:     "Basic Math",
			Category: CategoryShort,
			Prompt:   "What is 2+2? Explain your reasoning.",
			Length:   LengthShort,
		},
		{
			Name:     "Simple Definition",
			Category: CategoryShort,
			Prompt:   "Define what is a neural network.",
			Length:   LengthShort,
		},
		{
			Name:     "Code Generation",
			Category: CategoryMedium,
			Prompt: "Write a Python function that implements bubble sort. " +
				"Include comments explaining how it works and provide an example usage.",
			Length: LengthMedium,
		},
		{
			Name:     "Complex Math",
			Category: CategoryMedium,
			Prompt: "Solve this calculus problem:\n" +
				"Find the derivative of f(x) = x^3 * sin(x).\n" +
				"Show your step-by-step solution using the product rule.",
			Length: LengthMedium,
		},
		{
			Name:     "Essay Generation",
			Category: CategoryLong,
			Prompt: "Write a comprehensive essay about the impact of artificial " +
				"intelligence on society. Include sections about economic impact, " +
				"ethical considerations, and future predictions. Provide specific " +
				"examples and cite relevant research.",
			Length: LengthLong,
		},
		{
			Name:     "Technical Analysis",
			Category: CategoryLong,
			Prompt: "Provide a detailed technical analysis of how transformer " +
				"models work. Include explanations of self-attention, multi-head attention, " +
				"positional encoding, and the overall architecture. Use examples to " +
				"illustrate key concepts.",
			Length: LengthLong,
		},
		{
			Name:     "Context Window Test",
			Category: CategorySpecial,
			Prompt:   strings.Repeat("A", 1000) + "\nSummarize this text.",
			Length:   LengthMedium,
		},
		{
			Name:     "Multi-turn Dialogue",
			Category: CategorySpecial,
			Prompt: "User: Hi, I'd like to learn about quantum computing.\n" +
				"Assistant: I'll help you understand quantum computing. What specific aspects would you like to know about?\n" +
				"User: Can you explain qubits?\n" +
				"Assistant: I'll explain qubits in detail. Would you like me to start with the basics or go into more advanced concepts?\n" +
				"User: Start with the basics please.",
			Length: LengthMedium,
		},
	}
}
