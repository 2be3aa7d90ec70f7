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

// Package fynedriver implements the engine driver contract with Fyne
// widgets. It is the reference backend; any toolkit honouring the same
// contract can replace it.
package fynedriver

import (
	"fmt"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/spf13/cast"

	"github.com/tablekit/schematable/schematable"
)

// Driver renders engine primitives with Fyne widgets. Renderables
// produced by this driver are fyne.CanvasObject values.
type Driver struct {
	win fyne.Window
}

// New creates a driver bound to a window; the window canvas hosts
// popovers.
func New(win fyne.Window) *Driver {
	return &Driver{win: win}
}

// asObject unwraps a renderable into a canvas object. Anything else
// degrades to an empty label rather than a panic.
func asObject(r schematable.Renderable) fyne.CanvasObject {
	if obj, ok := r.(fyne.CanvasObject); ok && obj != nil {
		return obj
	}
	return widget.NewLabel("")
}

// Text implements the schematable.Driver interface.
func (d *Driver) Text(s string) schematable.Renderable {
	return widget.NewLabel(s)
}

// ErrorText implements the schematable.Driver interface.
func (d *Driver) ErrorText(s string) schematable.Renderable {
	l := widget.NewLabel(s)
	l.Importance = widget.DangerImportance
	l.Wrapping = fyne.TextWrapWord
	return l
}

// Icon implements the schematable.Driver interface.
func (d *Driver) Icon(name string) schematable.Renderable {
	switch name {
	case "info":
		return widget.NewIcon(theme.InfoIcon())
	case "search":
		return widget.NewIcon(theme.SearchIcon())
	case "warning":
		return widget.NewIcon(theme.WarningIcon())
	default:
		return widget.NewIcon(theme.QuestionIcon())
	}
}

// Popover implements the schematable.Driver interface. The trigger stays
// visible; a small info button next to it reveals the content in a popup.
func (d *Driver) Popover(trigger, content schematable.Renderable) schematable.Renderable {
	body := asObject(content)
	btn := widget.NewButtonWithIcon("", theme.InfoIcon(), func() {
		if d.win != nil {
			widget.ShowPopUp(body, d.win.Canvas())
		}
	})
	return container.NewHBox(asObject(trigger), btn)
}

// Button implements the schematable.Driver interface.
func (d *Driver) Button(label string, onTap func()) schematable.Renderable {
	return widget.NewButton(label, onTap)
}

// Search implements the schematable.Driver interface.
func (d *Driver) Search(placeholder string, onSubmit func(string)) schematable.Renderable {
	e := widget.NewEntry()
	if placeholder == "" {
		placeholder = "Search"
	}
	e.SetPlaceHolder(placeholder)
	e.OnSubmitted = onSubmit
	return e
}

// MultiSelect implements the schematable.Driver interface. The choices
// open in a popup behind a settings button, following the column selector
// idiom.
func (d *Driver) MultiSelect(options []schematable.SelectOption, selected []string, onChange func([]string)) schematable.Renderable {
	labels := make([]string, len(options))
	byLabel := make(map[string]string, len(options))
	for i, o := range options {
		label := o.Label
		if label == "" {
			label = o.Key
		}
		labels[i] = label
		byLabel[label] = o.Key
	}
	group := widget.NewCheckGroup(labels, func(chosen []string) {
		keys := make([]string, 0, len(chosen))
		for _, label := range chosen {
			keys = append(keys, byLabel[label])
		}
		if onChange != nil {
			onChange(keys)
		}
	})
	var preset []string
	for i, o := range options {
		if slices.Contains(selected, o.Key) {
			preset = append(preset, labels[i])
		}
	}
	group.Selected = preset
	return widget.NewButtonWithIcon("Columns", theme.SettingsIcon(), func() {
		if d.win != nil {
			widget.ShowPopUp(group, d.win.Canvas())
		}
	})
}

// Row implements the schematable.Driver interface.
func (d *Driver) Row(items ...schematable.Renderable) schematable.Renderable {
	objs := make([]fyne.CanvasObject, len(items))
	for i, it := range items {
		objs[i] = asObject(it)
	}
	return container.NewHBox(objs...)
}

// Column implements the schematable.Driver interface.
func (d *Driver) Column(items ...schematable.Renderable) schematable.Renderable {
	objs := make([]fyne.CanvasObject, len(items))
	for i, it := range items {
		objs[i] = asObject(it)
	}
	return container.NewVBox(objs...)
}

// Spacer implements the schematable.Driver interface.
func (d *Driver) Spacer() schematable.Renderable {
	return layout.NewSpacer()
}

// Table implements the schematable.Driver interface: the standard body
// strategy, every row materialized.
func (d *Driver) Table(props schematable.TableProps) schematable.Renderable {
	cols := len(props.Columns)
	if props.Selection != nil {
		cols++
	}
	if cols == 0 {
		return widget.NewLabel("")
	}

	rows := make([]fyne.CanvasObject, 0, props.RowCount+2)
	if props.ShowHeader {
		rows = append(rows, d.headerRow(props, cols))
	}

	selected := make(map[string]bool, 8)
	if props.Selection != nil {
		for _, k := range props.Selection.SelectedKeys {
			selected[k] = true
		}
	}

	for r := 0; r < props.RowCount; r++ {
		cells := make([]fyne.CanvasObject, 0, cols)
		if props.Selection != nil {
			cells = append(cells, d.selectionCheck(props, selected, r))
		}
		for c := range props.Columns {
			cells = append(cells, asObject(props.CellAt(r, c)))
		}
		rowObj := container.NewGridWithColumns(cols, cells...)
		if props.OnRowClick != nil || props.OnRowDoubleClick != nil {
			rowObj = container.NewGridWithColumns(1, newTapRow(rowObj, r, props.OnRowClick, props.OnRowDoubleClick))
		}
		rows = append(rows, rowObj)

		if props.ExpandedAt != nil {
			if content := props.ExpandedAt(r); content != nil {
				item := widget.NewAccordionItem("Details", asObject(content))
				rows = append(rows, widget.NewAccordion(item))
			}
		}
	}

	if props.Pagination != nil {
		rows = append(rows, d.pager(props.Pagination))
	}

	body := container.NewVBox(rows...)
	if props.Bordered {
		return container.NewPadded(body)
	}
	return body
}

// headerRow builds the title row, including per-column filter pickers.
func (d *Driver) headerRow(props schematable.TableProps, cols int) fyne.CanvasObject {
	cells := make([]fyne.CanvasObject, 0, cols)
	if props.Selection != nil {
		cells = append(cells, widget.NewLabel(""))
	}
	for i := range props.Columns {
		col := &props.Columns[i]
		title := asObject(col.Title)
		if len(col.Filters) > 0 && col.OnFilter != nil {
			cells = append(cells, container.NewHBox(title, d.filterButton(col)))
			continue
		}
		cells = append(cells, title)
	}
	return container.NewGridWithColumns(cols, cells...)
}

// filterButton opens the filter value picker for one column.
func (d *Driver) filterButton(col *schematable.ColumnDescriptor) fyne.CanvasObject {
	labels := make([]string, len(col.Filters))
	byLabel := make(map[string]any, len(col.Filters))
	for i, f := range col.Filters {
		labels[i] = f.Text
		byLabel[f.Text] = f.Value
	}
	group := widget.NewCheckGroup(labels, func(chosen []string) {
		values := make([]any, 0, len(chosen))
		for _, label := range chosen {
			values = append(values, byLabel[label])
		}
		col.OnFilter(values)
	})
	return widget.NewButtonWithIcon("", theme.MenuDropDownIcon(), func() {
		if d.win != nil {
			widget.ShowPopUp(group, d.win.Canvas())
		}
	})
}

// selectionCheck builds one row's selection checkbox.
func (d *Driver) selectionCheck(props schematable.TableProps, selected map[string]bool, row int) fyne.CanvasObject {
	key := props.RowKey(row)
	chk := widget.NewCheck("", func(on bool) {
		if on {
			selected[key] = true
		} else {
			delete(selected, key)
		}
		keys := make([]string, 0, len(selected))
		for k := range selected {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		props.Selection.OnChange(keys)
	})
	chk.SetChecked(selected[key])
	return chk
}

// pager builds the pagination bar.
func (d *Driver) pager(p *schematable.PaginationProps) fyne.CanvasObject {
	pages := (p.Total + p.PageSize - 1) / p.PageSize
	if pages < 1 {
		pages = 1
	}
	label := widget.NewLabel(fmt.Sprintf("Page %d of %d (%s rows)", p.Current, pages, cast.ToString(p.Total)))
	prev := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
		if p.Current > 1 {
			p.OnChange(p.Current-1, p.PageSize)
		}
	})
	next := widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() {
		if p.Current < pages {
			p.OnChange(p.Current+1, p.PageSize)
		}
	})
	return container.NewHBox(layout.NewSpacer(), prev, label, next, layout.NewSpacer())
}
