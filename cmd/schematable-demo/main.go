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

// Command schematable-demo renders a sample schema with the Fyne driver.
package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/tablekit/schematable/drivers/fynedriver"
	"github.com/tablekit/schematable/renderers"
	"github.com/tablekit/schematable/schematable"
)

const demoSchema = `{
	"id": "orders",
	"rowKey": "id",
	"header": true,
	"bordered": true,
	"rowSelection": true,
	"pagination": {"pageSize": 5},
	"columns": [
		{"key": "id", "title": "Order", "dataIndex": "id", "component": "text"},
		{"key": "customer", "title": "Customer", "dataIndex": ["customer", "name"],
		 "component": "text", "description": "The account that placed the order."},
		{"key": "total", "title": "Total", "dataIndex": "total",
		 "component": "number", "options": {"decimals": 2, "prefix": "$"}, "align": "right"},
		{"key": "paid", "title": "Paid", "dataIndex": "paid",
		 "component": "bool", "options": {"yes": "paid", "no": "due"}, "hidable": true,
		 "filters": [{"text": "Paid", "value": true}, {"text": "Due", "value": false}]},
		{"key": "margin", "title": "Margin", "component": "expr",
		 "options": {"expression": "record[\"total\"].(float64) - record[\"cost\"].(float64)"}},
		{"key": "legacy", "title": "Notes", "dataIndex": "notes",
		 "ui:type": "text", "ui:props": {"placeholder": "-"}}
	],
	"subtable": {
		"dataSourceKey": "items",
		"schema": {
			"id": "order-items",
			"rowKey": "sku",
			"pagination": false,
			"columns": [
				{"key": "sku", "title": "SKU", "dataIndex": "sku", "component": "text"},
				{"key": "qty", "title": "Qty", "dataIndex": "qty", "component": "number"}
			]
		},
		"overrides": [
			{"properties": {"size": "small"}},
			{"tableId": "orders", "properties": {"bordered": true}}
		]
	}
}`

var demoData = []schematable.Record{
	{
		"id": "A-1001", "customer": map[string]any{"name": "Acme"},
		"total": 220.50, "cost": 180.00, "paid": true,
		"items": []any{
			map[string]any{"sku": "W-1", "qty": 3},
			map[string]any{"sku": "W-2", "qty": 1},
		},
	},
	{
		"id": "A-1002", "customer": map[string]any{"name": "Globex"},
		"total": 99.00, "cost": 70.00, "paid": false,
	},
	{
		"id": "A-1003", "customer": map[string]any{"name": "Initech"},
		"total": 1250.00, "cost": 940.25, "paid": true, "notes": "rush order",
	},
}

func main() {
	a := app.New()
	w := a.NewWindow("schematable demo")

	schema, err := schematable.ParseSchema([]byte(demoSchema))
	if err != nil {
		log.Fatalf("parse schema: %v", err)
	}

	opts := schematable.DefaultOptions()
	opts.Driver = fynedriver.New(w)
	opts.Builtins = renderers.Builtins()
	opts.Virtualizer = fynedriver.Virtualizer{}
	opts.Callbacks = schematable.Callbacks{
		OnEvent: func(ev schematable.Event, info *schematable.TableInfo) {
			log.Printf("event %s from table %s row %d: %v", ev.Name, info.ID, ev.RowIndex, ev.Payload)
		},
		OnDataSourceChange: func(ds []schematable.Record, info *schematable.TableInfo) {
			log.Printf("table %s reported %d rows after edit", info.ID, len(ds))
		},
		OnSearch: func(term string, info *schematable.TableInfo) {
			log.Printf("search %q on table %s", term, info.ID)
		},
	}

	table, err := schematable.New(schema, demoData, opts)
	if err != nil {
		log.Fatalf("create table: %v", err)
	}

	content, ok := table.Render().(fyne.CanvasObject)
	if !ok {
		log.Fatal("driver produced no canvas content")
	}
	w.SetContent(content)
	w.Resize(fyne.NewSize(900, 600))
	w.ShowAndRun()
}
