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

// Package systemd probes the state of systemd units over D-Bus.
//
// # Collected Data
//
// One UnitState per configured unit:
//   - Name: the unit name as queried (e.g. "docker.service")
//   - LoadState: whether the unit file is known to systemd
//   - ActiveState, SubState: whether the unit is running, and how
//
// A unit that does not exist is still reported, with LoadState "not-found";
// only the D-Bus query itself fails.
//
// # Error Semantics
//
// Connecting requires a reachable systemd instance. Containers and other
// hosts without one fail at the connection step; callers treat that as the
// states being unknowable rather than as the units being down.
package systemd
