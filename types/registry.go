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
	"fmt"
)

// Registry maps alias names to their definitions. A registry is immutable, so it may be
// shared across goroutines once built.
type Registry struct {
	aliases AliasMap
}

// Len returns the number of declared aliases.
func (r Registry) Len() int { return r.aliases.Len() }

// Lookup returns the alias declared with name.
func (r Registry) Lookup(name string) (*Alias, bool) { return r.aliases.Get(name) }

// Names returns the declared alias names in sorted order.
func (r Registry) Names() []string {
	names := make([]string, 0, r.Len())
	r.aliases.Range(func(name string, _ *Alias) bool {
		names = append(names, name)
		return true
	})
	return names
}

// Unfold substitutes one level of an alias definition: if ref is an alias reference,
// the body of the referenced alias is returned. Unfold returns ErrUnknownAlias if the
// alias is not declared, and returns ref unchanged if it is not an alias reference.
func (r Registry) Unfold(a *Arena, ref Ref) (Ref, error) {
	t, ok := a.Get(ref).(*AliasRef)
	if !ok {
		return ref, nil
	}
	alias, ok := r.aliases.Get(t.Name)
	if !ok {
		return NoRef, fmt.Errorf("%w: %s()", ErrUnknownAlias, t.Name)
	}
	return alias.Body, nil
}

// RegistryBuilder collects alias declarations before the registry is frozen.
type RegistryBuilder struct {
	b AliasMapBuilder
}

// Create an empty registry builder.
func NewRegistryBuilder() *RegistryBuilder {
	return &RegistryBuilder{b: NewAliasMapBuilder()}
}

// Declare adds an alias definition. Names must be unique and must not shadow a built-in type.
func (rb *RegistryBuilder) Declare(a *Alias) error {
	if IsReservedName(a.Name) {
		return fmt.Errorf("%w: %s()", ErrReservedName, a.Name)
	}
	if _, ok := rb.b.Get(a.Name); ok {
		return fmt.Errorf("%w: %s()", ErrDuplicateAlias, a.Name)
	}
	rb.b.Set(a.Name, a)
	return nil
}

// Len returns the number of declarations.
func (rb *RegistryBuilder) Len() int { return rb.b.Len() }

// Build finalizes the declarations into an immutable registry. The builder must not be
// used after Build.
func (rb *RegistryBuilder) Build() Registry {
	return Registry{aliases: rb.b.Build()}
}
