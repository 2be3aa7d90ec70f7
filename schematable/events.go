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

// Event is the unified outward interaction fired by renderers. Every cell
// or row interaction funnels through one dispatch carrying the row, the
// record and the table context, so the host never needs per-row listener
// state.
type Event struct {
	// Name identifies the interaction, e.g. "link-click".
	Name string

	// Payload is renderer-specific event data.
	Payload any

	// Record is the row record the event originated from.
	Record Record

	// RowIndex is the record's index within the dataset.
	RowIndex int
}

// fireEvent forwards an event to the host's handler. The ambient table
// information is augmented with a transient record field scoped to this
// dispatch only; the stored info is never modified.
func (t *Table) fireEvent(name string, payload any, rec Record, index int) {
	if t.opts.Callbacks.OnEvent == nil {
		return
	}
	scoped := *t.info
	scoped.Record = rec
	t.opts.Callbacks.OnEvent(Event{
		Name:     name,
		Payload:  payload,
		Record:   rec,
		RowIndex: index,
	}, &scoped)
}
