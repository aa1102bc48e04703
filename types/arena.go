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
	"sort"
	"strconv"
	"strings"
)

// Ref is a stable handle to a term interned within an Arena.
type Ref int32

// NoRef is the zero handle for absent terms; it is never returned by Intern.
const NoRef Ref = -1

// Arena interns normalized terms. Structurally equal terms share a single handle, so
// equality of normalized terms is equality of handles.
//
// An arena is built during the first phase of a checking session and then frozen.
// A frozen arena is read-only and may be shared across goroutines.
type Arena struct {
	terms  []Type
	text   []string
	index  map[string]Ref
	frozen bool
	keyBuf []byte
}

// Create an empty arena.
func NewArena() *Arena {
	return &Arena{index: make(map[string]Ref, 64)}
}

// Len returns the number of interned terms.
func (a *Arena) Len() int { return len(a.terms) }

// Valid reports whether r is a handle within the arena.
func (a *Arena) Valid(r Ref) bool { return r >= 0 && int(r) < len(a.terms) }

// Get returns the term for a handle. Get panics if the handle is not within the arena.
func (a *Arena) Get(r Ref) Type {
	if !a.Valid(r) {
		panic("types: handle " + strconv.Itoa(int(r)) + " is not within the arena")
	}
	return a.terms[r]
}

// Kind returns the kind of the term for a handle.
func (a *Arena) Kind(r Ref) Kind { return a.Get(r).Kind() }

// Text returns the canonical rendering of a term.
func (a *Arena) Text(r Ref) string {
	a.Get(r)
	return a.text[r]
}

// Freeze prevents further interning. Interning into a frozen arena panics.
func (a *Arena) Freeze() { a.frozen = true }

// Frozen reports whether the arena has been frozen.
func (a *Arena) Frozen() bool { return a.frozen }

// Intern normalizes t and returns the handle of the canonical term.
//
// Unions are flattened (no union directly contains a union), deduplicated, stripped of
// none() members, and sorted into canonical member order; a union with a single member is
// that member, and an empty union is none(). Intern panics if a sub-term handle is not within the arena, or if the
// arena is frozen.
func (a *Arena) Intern(t Type) Ref {
	if a.frozen {
		panic("types: intern into a frozen arena")
	}
	switch t := t.(type) {
	case nil:
		panic("types: intern of a nil term")
	case *UnionType:
		return a.internUnion(t.Members)
	case *TupleType:
		a.checkList(t.Elems)
	case *ListType:
		a.Get(t.Elem)
	case *FunType:
		a.checkList(t.Params)
		a.Get(t.Return)
	}
	return a.intern(t)
}

func (a *Arena) checkList(l TypeList) {
	l.Range(func(_ int, r Ref) bool {
		a.Get(r)
		return true
	})
}

func (a *Arena) intern(t Type) Ref {
	key := a.key(t)
	if r, ok := a.index[key]; ok {
		return r
	}
	r := Ref(len(a.terms))
	a.terms = append(a.terms, t)
	a.text = append(a.text, typeString(a, t))
	a.index[key] = r
	return r
}

func (a *Arena) internUnion(members TypeList) Ref {
	seen := make(map[Ref]bool, members.Len())
	flat := make([]Ref, 0, members.Len())
	var add func(r Ref)
	add = func(r Ref) {
		if u, ok := a.Get(r).(*UnionType); ok {
			u.Members.Range(func(_ int, m Ref) bool {
				add(m)
				return true
			})
			return
		}
		if _, ok := a.terms[r].(*NoneType); ok {
			return
		}
		if !seen[r] {
			seen[r] = true
			flat = append(flat, r)
		}
	}
	members.Range(func(_ int, m Ref) bool {
		add(m)
		return true
	})
	switch len(flat) {
	case 0:
		return a.intern(&NoneType{})
	case 1:
		return flat[0]
	}
	a.SortCanonical(flat)
	return a.intern(&UnionType{Members: NewTypeList(flat...)})
}

// SortCanonical sorts handles into canonical union-member order: by kind, then by
// rendered text.
func (a *Arena) SortCanonical(refs []Ref) {
	sort.Slice(refs, func(i, j int) bool {
		ki, kj := a.Kind(refs[i]), a.Kind(refs[j])
		if ki != kj {
			return ki < kj
		}
		return a.text[refs[i]] < a.text[refs[j]]
	})
}

func (a *Arena) key(t Type) string {
	b := append(a.keyBuf[:0], byte(t.Kind()), ':')
	appendList := func(l TypeList) {
		l.Range(func(i int, r Ref) bool {
			if i > 0 {
				b = append(b, ',')
			}
			b = strconv.AppendInt(b, int64(r), 10)
			return true
		})
	}
	switch t := t.(type) {
	case *AtomLit:
		b = append(b, t.Name...)
	case *BoolLit:
		b = strconv.AppendBool(b, t.Value)
	case *AliasRef:
		b = append(b, t.Name...)
	case *TupleType:
		appendList(t.Elems)
	case *ListType:
		b = strconv.AppendInt(b, int64(t.Elem), 10)
	case *UnionType:
		appendList(t.Members)
	case *FunType:
		appendList(t.Params)
		b = append(b, '>')
		b = strconv.AppendInt(b, int64(t.Return), 10)
	case *AtomType, *NumberType, *StringType, *BinaryType, *TermType, *NoneType:
	default:
		panic("types: unknown term " + t.TypeName())
	}
	a.keyBuf = b
	return string(b)
}

// Walk visits r and every sub-term reachable from r without unfolding aliases, in
// depth-first, left-to-right order. If f returns false, the sub-terms of the visited
// term are skipped.
func (a *Arena) Walk(r Ref, f func(Ref) bool) {
	if !f(r) {
		return
	}
	visit := func(_ int, c Ref) bool {
		a.Walk(c, f)
		return true
	}
	switch t := a.Get(r).(type) {
	case *TupleType:
		t.Elems.Range(visit)
	case *ListType:
		a.Walk(t.Elem, f)
	case *UnionType:
		t.Members.Range(visit)
	case *FunType:
		t.Params.Range(visit)
		a.Walk(t.Return, f)
	}
}

// AliasNames returns the sorted names of the aliases referenced from r, without unfolding.
func (a *Arena) AliasNames(r Ref) []string {
	seen := make(map[string]bool)
	var names []string
	a.Walk(r, func(c Ref) bool {
		if ref, ok := a.Get(c).(*AliasRef); ok && !seen[ref.Name] {
			seen[ref.Name] = true
			names = append(names, ref.Name)
		}
		return true
	})
	sort.Strings(names)
	return names
}

func quoteAtom(name string) string {
	if !strings.ContainsAny(name, `'\`) {
		return "'" + name + "'"
	}
	var sb strings.Builder
	sb.WriteByte('\'')
	for i := 0; i < len(name); i++ {
		if name[i] == '\'' || name[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(name[i])
	}
	sb.WriteByte('\'')
	return sb.String()
}
