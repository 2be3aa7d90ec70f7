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

// TableInfo is the read-only composite handed to every host callback:
// the schema, the dataset, and a back-reference to the parent table's
// information when this table is a subtable. The parent reference is for
// identity and lookup only; a parent owns the infos of the children it
// composes during a render pass (never the other way around), which rules
// out ownership cycles.
type TableInfo struct {
	// ID is the resolved table identifier.
	ID string

	// Schema is the table's schema.
	Schema *Schema

	// DataSource is the dataset the table renders.
	DataSource []Record

	// Parent points at the parent table's information, or nil at the
	// root.
	Parent *TableInfo

	// Record is only set on the copy passed during an event dispatch: it
	// identifies the row that fired the event. It is transient and never
	// persisted into state.
	Record Record
}

// Depth counts parents above this table. A root table has depth 0.
func (ti *TableInfo) Depth() int {
	d := 0
	for p := ti.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

// Root walks the parent chain to the top-level table information.
func (ti *TableInfo) Root() *TableInfo {
	cur := ti
	for cur.Parent != nil {
		cur = cur.Parent
	}
	return cur
}
