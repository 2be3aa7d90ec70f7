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
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubRenderer is the minimal renderer used across the package tests.
type stubRenderer struct {
	out    Renderable
	err    error
	schema []byte
}

func (s *stubRenderer) Render(ctx *RenderContext) (Renderable, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.out != nil {
		return s.out, nil
	}
	return ctx.Driver.Text("stub"), nil
}

func (s *stubRenderer) OptionsSchema() []byte {
	return s.schema
}

func TestResolve(t *testing.T) {
	builtin := &stubRenderer{}
	custom := &stubRenderer{}
	builtins := map[string]Renderer{"text": builtin}
	external := Registry{"acme": {"badge": custom}}

	assert.Same(t, Renderer(builtin), Resolve("text", builtins, external))
	assert.Same(t, Renderer(custom), Resolve("acme::badge", builtins, external))

	// Misses return nil rather than failing hard.
	assert.Nil(t, Resolve("nope", builtins, external))
	assert.Nil(t, Resolve("acme::nope", builtins, external))
	assert.Nil(t, Resolve("other::badge", builtins, external))
	assert.Nil(t, Resolve("", builtins, external))

	// A namespaced identifier never falls back to the builtin set.
	assert.Nil(t, Resolve("acme::text", builtins, external))
}

func TestResolveNilSets(t *testing.T) {
	assert.Nil(t, Resolve("text", nil, nil))
	assert.Nil(t, Resolve("a::b", nil, nil))
}
