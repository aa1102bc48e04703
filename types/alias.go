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
	"errors"

	"github.com/wdamron/compat/loc"
)

// Alias is a named type definition. The body may refer to the alias itself (or to
// other aliases) through AliasRef terms; recursion is never represented by a cycle
// between terms.
type Alias struct {
	Name string
	Body Ref
	// Range of the declaration within the session's source files.
	Range loc.Range
	// Sites lists the alias references within the declaration's body, in source order.
	Sites []Site
}

// Site is the location of an alias reference within a declaration.
type Site struct {
	Name  string
	Range loc.Range
}

// FirstSite returns the range of the first reference to name within the declaration,
// falling back to the range of the declaration itself.
func (d *Alias) FirstSite(name string) loc.Range {
	for _, s := range d.Sites {
		if s.Name == name {
			return s.Range
		}
	}
	return d.Range
}

var (
	ErrDuplicateAlias = errors.New("alias is already declared")
	ErrReservedName   = errors.New("alias name is reserved for a built-in type")
	ErrUnknownAlias   = errors.New("reference to an undeclared alias")
)

var reservedNames = map[string]bool{
	"atom": true, "any": true, "binary": true, "boolean": true, "float": true,
	"fun": true, "integer": true, "list": true, "none": true, "number": true,
	"string": true, "term": true, "tuple": true,
}

// IsReservedName reports whether name is the name of a built-in type.
func IsReservedName(name string) bool { return reservedNames[name] }
