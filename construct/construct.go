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

package construct

import (
	"github.com/wdamron/compat/loc"
	"github.com/wdamron/compat/types"
)

// Types

// Atom literal: `'foo'`
func TAtom(a *types.Arena, name string) types.Ref {
	return a.Intern(&types.AtomLit{Name: name})
}

// Any atom: `atom()`
func TAtomType(a *types.Arena) types.Ref { return a.Intern(&types.AtomType{}) }

// Boolean literal: `true` or `false`
func TBool(a *types.Arena, v bool) types.Ref { return a.Intern(&types.BoolLit{Value: v}) }

// Any boolean: `true | false`, printed as `boolean()`
func TBoolean(a *types.Arena) types.Ref {
	return TUnion(a, TBool(a, true), TBool(a, false))
}

// `number()`
func TNumber(a *types.Arena) types.Ref { return a.Intern(&types.NumberType{}) }

// `string()`
func TString(a *types.Arena) types.Ref { return a.Intern(&types.StringType{}) }

// `binary()`
func TBinary(a *types.Arena) types.Ref { return a.Intern(&types.BinaryType{}) }

// `term()`
func TTerm(a *types.Arena) types.Ref { return a.Intern(&types.TermType{}) }

// `none()`
func TNone(a *types.Arena) types.Ref { return a.Intern(&types.NoneType{}) }

// Tuple type: `{number(), atom()}`
func TTuple(a *types.Arena, elems ...types.Ref) types.Ref {
	return a.Intern(&types.TupleType{Elems: types.NewTypeList(elems...)})
}

// List type: `[number()]`
func TList(a *types.Arena, elem types.Ref) types.Ref {
	return a.Intern(&types.ListType{Elem: elem})
}

// Union type: `'a' | 'b'`. The result is normalized, so it may not be a union.
func TUnion(a *types.Arena, members ...types.Ref) types.Ref {
	return a.Intern(&types.UnionType{Members: types.NewTypeList(members...)})
}

// Function type: `fun((number(), atom()) -> binary())`
func TFun(a *types.Arena, params []types.Ref, ret types.Ref) types.Ref {
	return a.Intern(&types.FunType{Params: types.NewTypeList(params...), Return: ret})
}

// Function type: `fun((number()) -> binary())`
func TFun1(a *types.Arena, param, ret types.Ref) types.Ref {
	return a.Intern(&types.FunType{Params: types.SingletonTypeList(param), Return: ret})
}

// Alias reference: `tree()`
func TAlias(a *types.Arena, name string) types.Ref {
	return a.Intern(&types.AliasRef{Name: name})
}

// Aliases

// Alias declaration: `-type name() :: body.`
func Alias(name string, body types.Ref) *types.Alias {
	return &types.Alias{Name: name, Body: body, Range: loc.NoRange}
}
