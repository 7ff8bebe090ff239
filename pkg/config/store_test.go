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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStore_LoadMissingReturnsDefaults(t *testing.T) {
	store := NewStore(t.TempDir())

	params, found, err := store.LoadCurrent()
	if err != nil {
		t.Fatalf("LoadCurrent() error = %v, want nil", err)
	}
	if found {
		t.Error("found = true for missing file, want false")
	}
	if params != Default() {
		t.Errorf("params = %+v, want defaults", params)
	}

	params, found, err = store.LoadRecommended()
	if err != nil {
		t.Fatalf("LoadRecommended() error = %v, want nil", err)
	}
	if found {
		t.Error("found = true for missing file, want false")
	}
	if params != Default() {
		t.Errorf("params = %+v, want defaults", params)
	}
}

func TestStore_SaveAndLoadRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "configs"))

	want := ParameterSet{
		TensorParallelSize: 8,
		BlockSize:          32,
		MaxNumSeqs:         16,
		MaxModelLen:        8192,
		Temperature:        0.7,
		TopP:               0.9,
	}

	if err := store.SaveRecommended(want); err != nil {
		t.Fatalf("SaveRecommended() error = %v", err)
	}

	got, found, err := store.LoadRecommended()
	if err != nil {
		t.Fatalf("LoadRecommended() error = %v", err)
	}
	if !found {
		t.Error("found = false after save, want true")
	}
	if got != want {
		t.Errorf("loaded = %+v, want %+v", got, want)
	}

	// Current and recommended files are independent.
	_, found, err = store.LoadCurrent()
	if err != nil {
		t.Fatalf("LoadCurrent() error = %v", err)
	}
	if found {
		t.Error("LoadCurrent() found = true, recommended save must not create it")
	}
}

func TestStore_SaveCreatesDirAndRestrictsFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "configs")
	store := NewStore(dir)

	if err := store.SaveCurrent(Default()); err != nil {
		t.Fatalf("SaveCurrent() error = %v", err)
	}

	info, err := os.Stat(store.CurrentPath())
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("file mode = %o, want 600", perm)
	}
}

func TestStore_FileFormatIsFlatJSON(t *testing.T) {
	store := NewStore(t.TempDir())

	if err := store.SaveCurrent(Default()); err != nil {
		t.Fatalf("SaveCurrent() error = %v", err)
	}

	data, err := os.ReadFile(store.CurrentPath())
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("file is not valid JSON: %v", err)
	}
	if _, ok := m["tensor_parallel_size"]; !ok {
		t.Error("file missing tensor_parallel_size key")
	}
	if _, ok := m["kind"]; ok {
		t.Error("file must not carry a resource envelope")
	}
}

func TestStore_LoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	if err := os.WriteFile(filepath.Join(dir, CurrentParamsFile), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, _, err := store.LoadCurrent()
	if err == nil {
		t.Fatal("LoadCurrent() = nil error for corrupt file")
	}
	if !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("error = %v, want parse failure", err)
	}
}

func TestStore_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	partial := []byte(`{"tensor_parallel_size": 8}`)
	if err := os.WriteFile(filepath.Join(dir, CurrentParamsFile), partial, 0o600); err != nil {
		t.Fatal(err)
	}

	params, found, err := store.LoadCurrent()
	if err != nil {
		t.Fatalf("LoadCurrent() error = %v", err)
	}
	if !found {
		t.Error("found = false, want true")
	}
	if params.TensorParallelSize != 8 {
		t.Errorf("TensorParallelSize = %d, want 8", params.TensorParallelSize)
	}
	if params.BlockSize != DefaultBlockSize {
		t.Errorf("BlockSize = %d, want default %d", params.BlockSize, DefaultBlockSize)
	}
	if params.TopP != DefaultTopP {
		t.Errorf("TopP = %g, want default %g", params.TopP, DefaultTopP)
	}
}

func TestStore_Update(t *testing.T) {
	t.Run("merges patch into current and persists", func(t *testing.T) {
		store := NewStore(t.TempDir())

		tp := 4
		seqs := 8
		merged, err := store.Update(Patch{TensorParallelSize: &tp, MaxNumSeqs: &seqs})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}

		if merged.TensorParallelSize != 4 {
			t.Errorf("TensorParallelSize = %d, want 4", merged.TensorParallelSize)
		}
		if merged.MaxNumSeqs != 8 {
			t.Errorf("MaxNumSeqs = %d, want 8", merged.MaxNumSeqs)
		}
		if merged.BlockSize != DefaultBlockSize {
			t.Errorf("BlockSize = %d, want default", merged.BlockSize)
		}

		loaded, found, err := store.LoadCurrent()
		if err != nil {
			t.Fatalf("LoadCurrent() error = %v", err)
		}
		if !found {
			t.Error("found = false after Update, want true")
		}
		if loaded != merged {
			t.Errorf("loaded = %+v, want %+v", loaded, merged)
		}
	})

	t.Run("invalid merge writes nothing", func(t *testing.T) {
		store := NewStore(t.TempDir())

		bad := 0
		_, err := store.Update(Patch{TensorParallelSize: &bad})
		if err == nil {
			t.Fatal("Update() = nil error for invalid patch")
		}
		if !strings.Contains(err.Error(), "invalid parameters after update") {
			t.Errorf("error = %v, want validation failure", err)
		}

		if _, err := os.Stat(store.CurrentPath()); !os.IsNotExist(err) {
			t.Error("current params file should not exist after failed update")
		}
	})

	t.Run("sequential updates accumulate", func(t *testing.T) {
		store := NewStore(t.TempDir())

		tp := 4
		if _, err := store.Update(Patch{TensorParallelSize: &tp}); err != nil {
			t.Fatalf("first Update() error = %v", err)
		}

		bs := 16
		merged, err := store.Update(Patch{BlockSize: &bs})
		if err != nil {
			t.Fatalf("second Update() error = %v", err)
		}

		if merged.TensorParallelSize != 4 {
			t.Errorf("TensorParallelSize = %d, want 4 from first update", merged.TensorParallelSize)
		}
		if merged.BlockSize != 16 {
			t.Errorf("BlockSize = %d, want 16", merged.BlockSize)
		}
	})
}
