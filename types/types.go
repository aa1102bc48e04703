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

// Package types contains the structural type model: terms, the arena which interns them,
// and the registry of (possibly recursive) type aliases.
package types

var (
	_ Type = (*AtomLit)(nil)
	_ Type = (*AtomType)(nil)
	_ Type = (*BoolLit)(nil)
	_ Type = (*NumberType)(nil)
	_ Type = (*StringType)(nil)
	_ Type = (*BinaryType)(nil)
	_ Type = (*TupleType)(nil)
	_ Type = (*ListType)(nil)
	_ Type = (*UnionType)(nil)
	_ Type = (*FunType)(nil)
	_ Type = (*AliasRef)(nil)
	_ Type = (*TermType)(nil)
	_ Type = (*NoneType)(nil)
)

// Type is the base interface for all terms. The set of terms is closed.
type Type interface {
	// Name of the shape of the term.
	TypeName() string
	// Kind of the term; used for exhaustive dispatch and canonical ordering.
	Kind() Kind
	isType()
}

// Kind enumerates the shapes of terms. The order of the constants is the canonical
// order of union members.
type Kind uint8

const (
	KindNone Kind = iota
	KindAtomLit
	KindAtom
	KindBoolLit
	KindNumber
	KindString
	KindBinary
	KindTuple
	KindList
	KindFun
	KindAliasRef
	KindUnion
	KindTerm
)

var kindNames = [...]string{
	KindNone:     "none",
	KindAtomLit:  "atom literal",
	KindAtom:     "atom",
	KindBoolLit:  "boolean",
	KindNumber:   "number",
	KindString:   "string",
	KindBinary:   "binary",
	KindTuple:    "tuple",
	KindList:     "list",
	KindFun:      "fun",
	KindAliasRef: "alias",
	KindUnion:    "union",
	KindTerm:     "term",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Atom literal: `'foo'`
type AtomLit struct{ Name string }

// Any atom: `atom()`
type AtomType struct{}

// Boolean literal: `true` or `false`
type BoolLit struct{ Value bool }

// `number()`
type NumberType struct{}

// `string()`
type StringType struct{}

// `binary()`
type BinaryType struct{}

// Fixed-arity tuple: `{number(), atom()}`
type TupleType struct{ Elems TypeList }

// Homogeneous list: `[number()]`
type ListType struct{ Elem Ref }

// Union: `'a' | 'b'`. Members are flattened, deduplicated and in canonical order.
type UnionType struct{ Members TypeList }

// Function type: `fun((number(), atom()) -> binary())`
type FunType struct {
	Params TypeList
	Return Ref
}

// Reference to a named alias within the Registry: `tree()`
type AliasRef struct{ Name string }

// Top type: `term()`
type TermType struct{}

// Bottom type: `none()`
type NoneType struct{}

func (*AtomLit) TypeName() string    { return "AtomLit" }
func (*AtomType) TypeName() string   { return "AtomType" }
func (*BoolLit) TypeName() string    { return "BoolLit" }
func (*NumberType) TypeName() string { return "NumberType" }
func (*StringType) TypeName() string { return "StringType" }
func (*BinaryType) TypeName() string { return "BinaryType" }
func (*TupleType) TypeName() string  { return "TupleType" }
func (*ListType) TypeName() string   { return "ListType" }
func (*UnionType) TypeName() string  { return "UnionType" }
func (*FunType) TypeName() string    { return "FunType" }
func (*AliasRef) TypeName() string   { return "AliasRef" }
func (*TermType) TypeName() string   { return "TermType" }
func (*NoneType) TypeName() string   { return "NoneType" }

func (*AtomLit) Kind() Kind    { return KindAtomLit }
func (*AtomType) Kind() Kind   { return KindAtom }
func (*BoolLit) Kind() Kind    { return KindBoolLit }
func (*NumberType) Kind() Kind { return KindNumber }
func (*StringType) Kind() Kind { return KindString }
func (*BinaryType) Kind() Kind { return KindBinary }
func (*TupleType) Kind() Kind  { return KindTuple }
func (*ListType) Kind() Kind   { return KindList }
func (*UnionType) Kind() Kind  { return KindUnion }
func (*FunType) Kind() Kind    { return KindFun }
func (*AliasRef) Kind() Kind   { return KindAliasRef }
func (*TermType) Kind() Kind   { return KindTerm }
func (*NoneType) Kind() Kind   { return KindNone }

func (*AtomLit) isType()    {}
func (*AtomType) isType()   {}
func (*BoolLit) isType()    {}
func (*NumberType) isType() {}
func (*StringType) isType() {}
func (*BinaryType) isType() {}
func (*TupleType) isType()  {}
func (*ListType) isType()   {}
func (*UnionType) isType()  {}
func (*FunType) isType()    {}
func (*AliasRef) isType()   {}
func (*TermType) isType()   {}
func (*NoneType) isType()   {}
