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

// Package arrowsource converts Arrow tables into the engine's record
// dataset, so columnar data can feed a schema-driven table directly.
package arrowsource

import (
	"errors"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/tablekit/schematable/schematable"
)

// ErrNoTable is returned when the Arrow table is nil.
var ErrNoTable = errors.New("arrow table is nil")

// readBatchSize is the chunk size used when walking the table.
const readBatchSize = 1024

// Records converts every row of an Arrow table into a record map keyed by
// field name. The table is only read; callers keep ownership and release
// it themselves.
func Records(tbl arrow.Table) ([]schematable.Record, error) {
	if tbl == nil {
		return nil, ErrNoTable
	}
	schema := tbl.Schema()
	out := make([]schematable.Record, 0, int(tbl.NumRows()))

	tr := array.NewTableReader(tbl, readBatchSize)
	defer tr.Release()

	for tr.Next() {
		rec := tr.Record()
		cols := int(rec.NumCols())
		for row := 0; row < int(rec.NumRows()); row++ {
			m := make(schematable.Record, cols)
			for c := 0; c < cols; c++ {
				m[schema.Field(c).Name] = cellValue(rec.Column(c), row)
			}
			out = append(out, m)
		}
	}
	return out, nil
}

// cellValue extracts a Go value from an Arrow array position. Nested
// struct and list values convert recursively into maps and slices, so
// they remain addressable by data index paths and subtable dataset keys.
func cellValue(col arrow.Array, row int) any {
	if col.IsNull(row) {
		return nil
	}

	switch a := col.(type) {
	case *array.String:
		return a.Value(row)
	case *array.LargeString:
		return a.Value(row)
	case *array.Binary:
		return a.Value(row)
	case *array.Boolean:
		return a.Value(row)
	case *array.Int8:
		return int64(a.Value(row))
	case *array.Int16:
		return int64(a.Value(row))
	case *array.Int32:
		return int64(a.Value(row))
	case *array.Int64:
		return a.Value(row)
	case *array.Uint8:
		return uint64(a.Value(row))
	case *array.Uint16:
		return uint64(a.Value(row))
	case *array.Uint32:
		return uint64(a.Value(row))
	case *array.Uint64:
		return a.Value(row)
	case *array.Float32:
		return float64(a.Value(row))
	case *array.Float64:
		return a.Value(row)
	case *array.Date32:
		return a.Value(row).ToTime()
	case *array.Date64:
		return a.Value(row).ToTime()
	case *array.Timestamp:
		unit := a.DataType().(*arrow.TimestampType).Unit
		return a.Value(row).ToTime(unit)
	case *array.Decimal128:
		scale := a.DataType().(*arrow.Decimal128Type).Scale
		return a.Value(row).ToFloat64(scale)
	case *array.Struct:
		st := a.DataType().(*arrow.StructType)
		m := make(map[string]any, a.NumField())
		for i := 0; i < a.NumField(); i++ {
			m[st.Field(i).Name] = cellValue(a.Field(i), row)
		}
		return m
	case *array.List:
		offsets := a.Offsets()
		values := a.ListValues()
		start, end := int(offsets[row]), int(offsets[row+1])
		items := make([]any, 0, end-start)
		for i := start; i < end; i++ {
			items = append(items, cellValue(values, i))
		}
		return items
	default:
		return col.ValueStr(row)
	}
}
