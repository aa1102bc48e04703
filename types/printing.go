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
	"strings"
	"sync"
	"unicode"
)

var printerPool = sync.Pool{
	New: func() interface{} { return &typePrinter{} },
}

func newTypePrinter(a *Arena) *typePrinter {
	p := printerPool.Get().(*typePrinter)
	p.arena = a
	return p
}

func (p *typePrinter) Release() {
	p.arena = nil
	p.sb.Reset()
	printerPool.Put(p)
}

type typePrinter struct {
	arena *Arena
	sb    strings.Builder
}

// TypeString returns the canonical rendering of an interned term.
func TypeString(a *Arena, r Ref) string { return a.Text(r) }

// typeString renders a term whose sub-terms are already interned.
func typeString(a *Arena, t Type) string {
	p := newTypePrinter(a)
	p.term(t)
	s := p.sb.String()
	p.Release()
	return s
}

func (p *typePrinter) ref(r Ref) { p.sb.WriteString(p.arena.text[r]) }

func (p *typePrinter) list(l TypeList) {
	l.Range(func(i int, r Ref) bool {
		if i > 0 {
			p.sb.WriteString(", ")
		}
		p.ref(r)
		return true
	})
}

func (p *typePrinter) term(t Type) {
	switch t := t.(type) {
	case *AtomLit:
		p.sb.WriteString(quoteAtom(t.Name))

	case *AtomType:
		p.sb.WriteString("atom()")

	case *BoolLit:
		if t.Value {
			p.sb.WriteString("true")
		} else {
			p.sb.WriteString("false")
		}

	case *NumberType:
		p.sb.WriteString("number()")

	case *StringType:
		p.sb.WriteString("string()")

	case *BinaryType:
		p.sb.WriteString("binary()")

	case *TupleType:
		p.sb.WriteByte('{')
		p.list(t.Elems)
		p.sb.WriteByte('}')

	case *ListType:
		p.sb.WriteByte('[')
		p.ref(t.Elem)
		p.sb.WriteByte(']')

	case *UnionType:
		// true | false is printed as boolean(), in the position of the first literal.
		hasTrue, hasFalse := false, false
		t.Members.Range(func(_ int, r Ref) bool {
			if b, ok := p.arena.terms[r].(*BoolLit); ok {
				hasTrue, hasFalse = hasTrue || b.Value, hasFalse || !b.Value
			}
			return true
		})
		both, printedBool, n := hasTrue && hasFalse, false, 0
		t.Members.Range(func(_ int, r Ref) bool {
			_, isBool := p.arena.terms[r].(*BoolLit)
			if isBool && both && printedBool {
				return true
			}
			if n > 0 {
				p.sb.WriteString(" | ")
			}
			if isBool && both {
				p.sb.WriteString("boolean()")
				printedBool = true
			} else {
				p.ref(r)
			}
			n++
			return true
		})

	case *FunType:
		p.sb.WriteString("fun((")
		p.list(t.Params)
		p.sb.WriteString(") -> ")
		p.ref(t.Return)
		p.sb.WriteByte(')')

	case *AliasRef:
		p.sb.WriteString(AtomName(t.Name))
		p.sb.WriteString("()")

	case *TermType:
		p.sb.WriteString("term()")

	case *NoneType:
		p.sb.WriteString("none()")

	default:
		panic("types: unknown term " + t.TypeName())
	}
}

// AtomName renders an atom used as a name: unquoted when it starts with a lowercase
// letter and contains only letters, digits, '_' and '@', and single-quoted otherwise.
func AtomName(name string) string {
	if isUnquotedAtom(name) {
		return name
	}
	return quoteAtom(name)
}

func isUnquotedAtom(s string) bool {
	for i, c := range s {
		if i == 0 && !unicode.IsLower(c) {
			return false
		}
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '_' && c != '@' {
			return false
		}
	}
	return s != ""
}
