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
	"fyne.io/fyne/v2/widget"
)

// tapRow wraps a row's content so taps and double taps reach the engine's
// row interaction callbacks.
type tapRow struct {
	widget.BaseWidget
	content     fyne.CanvasObject
	row         int
	onTap       func(int)
	onDoubleTap func(int)
}

func newTapRow(content fyne.CanvasObject, row int, onTap, onDoubleTap func(int)) *tapRow {
	t := &tapRow{content: content, row: row, onTap: onTap, onDoubleTap: onDoubleTap}
	t.ExtendBaseWidget(t)
	return t
}

// CreateRenderer implements the fyne.Widget interface.
func (t *tapRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.content)
}

// Tapped implements the fyne.Tappable interface.
func (t *tapRow) Tapped(*fyne.PointEvent) {
	if t.onTap != nil {
		t.onTap(t.row)
	}
}

// DoubleTapped implements the fyne.DoubleTappable interface.
func (t *tapRow) DoubleTapped(*fyne.PointEvent) {
	if t.onDoubleTap != nil {
		t.onDoubleTap(t.row)
	}
}
