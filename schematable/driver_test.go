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

// fakeDriver records every primitive it is asked to draw. Renderables are
// plain marker structs so tests can assert on what the engine composed.
type fakeDriver struct {
	tables      []TableProps
	multiSelect []fakeMultiSelect
	searches    []fakeSearch
	buttons     []fakeButton
}

type fakeText struct{ s string }
type fakeErrorText struct{ s string }
type fakeIcon struct{ name string }
type fakePopover struct{ trigger, content Renderable }
type fakeButton struct {
	label string
	onTap func()
}
type fakeSearch struct {
	placeholder string
	onSubmit    func(string)
}
type fakeMultiSelect struct {
	options  []SelectOption
	selected []string
	onChange func([]string)
}
type fakeTable struct{ props TableProps }
type fakeRow struct{ items []Renderable }
type fakeColumn struct{ items []Renderable }
type fakeSpacer struct{}

func (d *fakeDriver) Table(props TableProps) Renderable {
	d.tables = append(d.tables, props)
	return fakeTable{props: props}
}

func (d *fakeDriver) Text(s string) Renderable      { return fakeText{s: s} }
func (d *fakeDriver) ErrorText(s string) Renderable { return fakeErrorText{s: s} }
func (d *fakeDriver) Icon(name string) Renderable   { return fakeIcon{name: name} }

func (d *fakeDriver) Popover(trigger, content Renderable) Renderable {
	return fakePopover{trigger: trigger, content: content}
}

func (d *fakeDriver) Button(label string, onTap func()) Renderable {
	b := fakeButton{label: label, onTap: onTap}
	d.buttons = append(d.buttons, b)
	return b
}

func (d *fakeDriver) Search(placeholder string, onSubmit func(string)) Renderable {
	s := fakeSearch{placeholder: placeholder, onSubmit: onSubmit}
	d.searches = append(d.searches, s)
	return s
}

func (d *fakeDriver) MultiSelect(options []SelectOption, selected []string, onChange func([]string)) Renderable {
	ms := fakeMultiSelect{options: options, selected: selected, onChange: onChange}
	d.multiSelect = append(d.multiSelect, ms)
	return ms
}

func (d *fakeDriver) Row(items ...Renderable) Renderable    { return fakeRow{items: items} }
func (d *fakeDriver) Column(items ...Renderable) Renderable { return fakeColumn{items: items} }
func (d *fakeDriver) Spacer() Renderable                    { return fakeSpacer{} }

// lastTable returns the props of the most recently drawn table body.
func (d *fakeDriver) lastTable() TableProps {
	return d.tables[len(d.tables)-1]
}
