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

import (
	"strconv"

	"github.com/spf13/cast"
)

// Record is one row: an open key/value map. Records are treated as
// immutable snapshots per render; the engine never mutates a host record
// in place. Every mutation path produces a new map and reports it outward.
type Record map[string]any

// Get projects a value out of the record along the data index path. The
// projection is pure: it never mutates the record and returns fallback
// when any path segment is absent or not traversable.
func (d DataIndex) Get(r Record, fallback any) any {
	if len(d) == 0 || r == nil {
		return fallback
	}
	var cur any = map[string]any(r)
	for _, seg := range d {
		m, ok := cur.(map[string]any)
		if !ok {
			if rec, isRec := cur.(Record); isRec {
				m = map[string]any(rec)
			} else {
				return fallback
			}
		}
		v, present := m[seg]
		if !present {
			return fallback
		}
		cur = v
	}
	return cur
}

// Put returns a copy of the record with the value written back along the
// data index path. Maps along the path are cloned; the original record and
// its nested maps are left untouched. Missing intermediate segments are
// created.
func (d DataIndex) Put(r Record, value any) Record {
	if len(d) == 0 {
		return r
	}
	out := make(Record, len(r)+1)
	for k, v := range r {
		out[k] = v
	}
	cur := map[string]any(out)
	for i, seg := range d {
		if i == len(d)-1 {
			cur[seg] = value
			break
		}
		next := make(map[string]any)
		switch existing := cur[seg].(type) {
		case map[string]any:
			for k, v := range existing {
				next[k] = v
			}
		case Record:
			for k, v := range existing {
				next[k] = v
			}
		}
		cur[seg] = next
		cur = next
	}
	return out
}

// ReplaceRow builds a new dataset with the row at index replaced. The
// input slice is not modified.
func ReplaceRow(ds []Record, index int, updated Record) []Record {
	out := make([]Record, len(ds))
	copy(out, ds)
	if index >= 0 && index < len(out) {
		out[index] = updated
	}
	return out
}

// rowKeyOf returns the record's key under the resolved rowKey field, or
// the positional index as a synthetic key when the field is absent. The
// synthetic key is stable only for a given dataset instance.
func rowKeyOf(r Record, keyField string, index int) string {
	if v, ok := r[keyField]; ok && v != nil {
		if s := cast.ToString(v); s != "" {
			return s
		}
	}
	return strconv.Itoa(index)
}

// childRecords extracts the nested dataset under key. A value of any type
// other than an array is treated as "no children".
func childRecords(r Record, key string) []Record {
	if key == "" {
		return nil
	}
	switch v := r[key].(type) {
	case []Record:
		return v
	case []any:
		out := make([]Record, 0, len(v))
		for _, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				if rec, isRec := item.(Record); isRec {
					out = append(out, rec)
					continue
				}
				return nil
			}
			out = append(out, Record(m))
		}
		return out
	case []map[string]any:
		out := make([]Record, len(v))
		for i, m := range v {
			out[i] = Record(m)
		}
		return out
	default:
		return nil
	}
}
