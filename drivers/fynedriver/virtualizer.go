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

package fynedriver

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/tablekit/schematable/schematable"
)

// Virtualizer renders the table body with Fyne's windowed table widget,
// which only materializes visible cells. It honours the same TableProps
// contract as the standard body; cell content is projected to text, since
// the windowed widget recycles a flat label template.
type Virtualizer struct{}

// RenderBody implements the schematable.Virtualizer interface.
func (Virtualizer) RenderBody(drv schematable.Driver, props schematable.TableProps) schematable.Renderable {
	body := widget.NewTable(
		func() (int, int) {
			return props.RowCount, len(props.Columns)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, o fyne.CanvasObject) {
			label, ok := o.(*widget.Label)
			if !ok {
				return
			}
			label.SetText(cellText(props.CellAt(id.Row, id.Col)))
		},
	)
	if props.ShowHeader {
		body.ShowHeaderRow = true
		body.CreateHeader = func() fyne.CanvasObject {
			return widget.NewLabel("")
		}
		body.UpdateHeader = func(id widget.TableCellID, template fyne.CanvasObject) {
			label, ok := template.(*widget.Label)
			if !ok || id.Row != -1 || id.Col < 0 || id.Col >= len(props.Columns) {
				return
			}
			label.SetText(props.Columns[id.Col].TitleText)
		}
	}
	if props.Pagination == nil {
		return body
	}
	fd, ok := drv.(*Driver)
	if !ok {
		return body
	}
	return container.NewBorder(nil, fd.pager(props.Pagination), nil, nil, body)
}

// cellText extracts a textual projection from a rendered cell.
func cellText(cell schematable.Renderable) string {
	switch c := cell.(type) {
	case *widget.Label:
		return c.Text
	case *widget.Button:
		return c.Text
	default:
		return ""
	}
}
