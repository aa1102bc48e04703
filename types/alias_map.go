// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package types

import (
	"github.com/benbjohnson/immutable"
)

var emptyMap = immutable.NewSortedMap(nil)

var EmptyAliasMap = AliasMap{emptyMap}

// AliasMap contains immutable mappings from names to alias definitions, sorted by name.
type AliasMap struct {
	m *immutable.SortedMap
}

// Get the number of entries in the map.
func (m AliasMap) Len() int {
	if m.m == nil {
		return 0
	}
	return m.m.Len()
}

// Get the alias for a name.
func (m AliasMap) Get(name string) (*Alias, bool) {
	if m.m == nil {
		return nil, false
	}
	v, ok := m.m.Get(name)
	if !ok {
		return nil, false
	}
	return v.(*Alias), true
}

// Iterate over entries in the map, in order of name.
// If f returns false, iteration will be stopped.
func (m AliasMap) Range(f func(string, *Alias) bool) {
	if m.m == nil {
		return
	}
	iter := m.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(*Alias)) {
			return
		}
	}
}

// AliasMapBuilder enables in-place updates of a map before finalization.
type AliasMapBuilder struct {
	b *immutable.SortedMapBuilder
}

func NewAliasMapBuilder() AliasMapBuilder {
	return AliasMapBuilder{immutable.NewSortedMapBuilder(emptyMap)}
}

// Get the number of entries in the builder.
func (b AliasMapBuilder) Len() int {
	if b.b == nil {
		return 0
	}
	return b.b.Len()
}

// Get the alias for a name from the builder.
func (b AliasMapBuilder) Get(name string) (*Alias, bool) {
	v, ok := b.b.Get(name)
	if !ok {
		return nil, false
	}
	return v.(*Alias), true
}

// Set the alias for the given name in the builder.
func (b AliasMapBuilder) Set(name string, a *Alias) AliasMapBuilder {
	b.b.Set(name, a)
	return b
}

// Finalize the builder into an immutable map.
func (b AliasMapBuilder) Build() AliasMap {
	if b.b == nil {
		return EmptyAliasMap
	}
	return AliasMap{b.b.Map()}
}
