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

package systemd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/coreos/go-systemd/v22/dbus"
)

// connection is the slice of the D-Bus API the collector needs.
type connection interface {
	GetUnitPropertiesContext(ctx context.Context, unit string) (map[string]interface{}, error)
	Close()
}

// newConnection is a variable so tests can substitute a fake bus.
var newConnection = func(ctx context.Context) (connection, error) {
	return dbus.NewSystemdConnectionContext(ctx)
}

// UnitState describes the load and activation state of one systemd unit.
type UnitState struct {
	// Name is the unit name as queried.
	Name string `json:"name" yaml:"name"`
	// LoadState reports whether the unit file is known to systemd
	// (loaded, not-found, masked).
	LoadState string `json:"loadState" yaml:"loadState"`
	// ActiveState reports whether the unit is running (active, inactive,
	// failed).
	ActiveState string `json:"activeState" yaml:"activeState"`
	// SubState refines ActiveState per unit type (running, dead, exited).
	SubState string `json:"subState" yaml:"subState"`
}

// Active reports whether the unit is currently running.
func (u UnitState) Active() bool {
	return u.ActiveState == "active"
}

// Loaded reports whether systemd knows the unit file.
func (u UnitState) Loaded() bool {
	return u.LoadState == "loaded"
}

// Collector probes systemd unit state over D-Bus.
type Collector struct {
	Units []string
}

// NewCollector creates a systemd collector for the named units.
func NewCollector(units ...string) *Collector {
	return &Collector{Units: units}
}

// Collect queries the load and activation state of each configured unit.
// A connection failure means the states are unknowable on this host, not
// that the units are down.
func (c *Collector) Collect(ctx context.Context) ([]UnitState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	conn, err := newConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to systemd: %w", err)
	}
	defer conn.Close()

	states := make([]UnitState, 0, len(c.Units))
	for _, unit := range c.Units {
		props, err := conn.GetUnitPropertiesContext(ctx, unit)
		if err != nil {
			return nil, fmt.Errorf("failed to get unit properties for %s: %w", unit, err)
		}

		state := unitStateFromProps(unit, props)
		states = append(states, state)

		slog.Debug("collected unit state",
			slog.String("unit", state.Name),
			slog.String("loadState", state.LoadState),
			slog.String("activeState", state.ActiveState),
		)
	}

	return states, nil
}

// unitStateFromProps extracts the state fields from a unit property map.
// Missing or non-string properties read as empty.
func unitStateFromProps(name string, props map[string]interface{}) UnitState {
	return UnitState{
		Name:        name,
		LoadState:   stringProp(props, "LoadState"),
		ActiveState: stringProp(props, "ActiveState"),
		SubState:    stringProp(props, "SubState"),
	}
}

func stringProp(props map[string]interface{}, key string) string {
	v, ok := props[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}
