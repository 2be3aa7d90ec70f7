// Copyright 2026 The schematable Authors
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

package schematable

import "sync"

// State is the transient UI state of one table instance. It lives for the
// table's mount duration and is re-derived when the owning schema's
// pagination size or the host-supplied display column list changes.
type State struct {
	// Pagination is the current page and page size.
	Pagination PaginationConfig

	// SelectedRowKeys are the keys of selected rows. Insertion order is
	// irrelevant.
	SelectedRowKeys []string

	// DisplayColumnKeys are the hidable columns currently shown.
	DisplayColumnKeys []string

	// Filters maps column key to active filter values.
	Filters map[string][]any
}

// StatePatch is a partial state. Non-nil fields overwrite the
// corresponding state field wholesale; the merge is strictly shallow, so a
// caller updating one pagination field must carry the others itself.
type StatePatch struct {
	Pagination        *PaginationConfig
	SelectedRowKeys   *[]string
	DisplayColumnKeys *[]string
	Filters           *map[string][]any
}

// Updater derives a patch from the current state.
type Updater func(State) StatePatch

// Store holds UI state and applies patches atomically. Updates are
// synchronous; the next read observes the most recently applied merge.
type Store struct {
	mu    sync.Mutex
	state State
}

// NewStore creates a store seeded with the given state.
func NewStore(initial State) *Store {
	return &Store{state: initial}
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Apply shallow-merges a patch onto the current state.
func (s *Store) Apply(p StatePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = merge(s.state, p)
}

// ApplyFunc derives a patch from the current state and shallow-merges it.
// Both entry points fold through the same merge primitive.
func (s *Store) ApplyFunc(u Updater) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = merge(s.state, u(s.state))
}

// merge overwrites each patched top-level field wholesale. Deliberately
// not a deep merge: patching Pagination replaces the whole pagination
// value, sibling fields and all.
func merge(cur State, p StatePatch) State {
	if p.Pagination != nil {
		cur.Pagination = *p.Pagination
	}
	if p.SelectedRowKeys != nil {
		cur.SelectedRowKeys = *p.SelectedRowKeys
	}
	if p.DisplayColumnKeys != nil {
		cur.DisplayColumnKeys = *p.DisplayColumnKeys
	}
	if p.Filters != nil {
		cur.Filters = *p.Filters
	}
	return cur
}
