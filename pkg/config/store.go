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

package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Parameter file names under the store directory.
const (
	RecommendedParamsFile = "recommended_params.json"
	CurrentParamsFile     = "current_params.json"
)

// Store persists parameter sets as flat JSON files in a directory.
// recommended_params.json holds the advisor's output; current_params.json
// holds the live set used by the monitor and load tester. Writes within a
// process are serialized with a mutex; there is no cross-process locking.
type Store struct {
	dir string
	mu  sync.Mutex
}

// NewStore creates a Store rooted at dir. The directory is created on the
// first save, not here.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// RecommendedPath returns the path of the recommended parameters file.
func (s *Store) RecommendedPath() string {
	return filepath.Join(s.dir, RecommendedParamsFile)
}

// CurrentPath returns the path of the current parameters file.
func (s *Store) CurrentPath() string {
	return filepath.Join(s.dir, CurrentParamsFile)
}

// LoadCurrent reads the current parameter set. A missing file returns the
// defaults and false; an unreadable or invalid file returns an error.
func (s *Store) LoadCurrent() (ParameterSet, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(CurrentParamsFile)
}

// LoadRecommended reads the recommended parameter set. A missing file
// returns the defaults and false; an unreadable or invalid file returns an
// error.
func (s *Store) LoadRecommended() (ParameterSet, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(RecommendedParamsFile)
}

// SaveCurrent writes the current parameter set.
func (s *Store) SaveCurrent(p ParameterSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(CurrentParamsFile, p)
}

// SaveRecommended writes the recommended parameter set.
func (s *Store) SaveRecommended(p ParameterSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(RecommendedParamsFile, p)
}

// Update loads the current set, applies the patch, validates the result,
// and saves it. The merged set is returned. Nothing is written when
// validation fails.
func (s *Store) Update(patch Patch) (ParameterSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, _, err := s.load(CurrentParamsFile)
	if err != nil {
		return ParameterSet{}, err
	}

	merged := current.Apply(patch)
	if err := merged.Validate(); err != nil {
		return ParameterSet{}, fmt.Errorf("invalid parameters after update: %w", err)
	}

	if err := s.save(CurrentParamsFile, merged); err != nil {
		return ParameterSet{}, err
	}

	return merged, nil
}

func (s *Store) load(name string) (ParameterSet, bool, error) {
	path := filepath.Join(s.dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("parameter file not found, using defaults", slog.String("path", path))
			return Default(), false, nil
		}
		return ParameterSet{}, false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return ParameterSet{}, false, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return p, true, nil
}

func (s *Store) save(name string, p ParameterSet) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", s.dir, err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode parameters: %w", err)
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	slog.Debug("saved parameters", slog.String("path", path))
	return nil
}
