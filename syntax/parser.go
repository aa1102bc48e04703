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


// Package syntax parses the notation in which types are rendered, and alias declarations
// of the form `-type name() :: T.`
package syntax

import (
	"errors"
	"fmt"

	"github.com/eaburns/peggy/peg"

	"github.com/wdamron/compat/loc"
	"github.com/wdamron/compat/types"
)

var ErrSyntax = errors.New("syntax error")

// Error is a syntax error at a byte offset.
type Error struct {
	Offset int
	Msg    string
	fail   *peg.Fail
}

func (e *Error) Error() string { return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg) }

func (e *Error) Unwrap() error { return ErrSyntax }

// Tree is the failure tree of a grammar error, or nil for errors found after parsing.
func (e *Error) Tree() *peg.Fail { return e.fail }

// ParseType parses a type, interning it into a. base is added to every recorded range.
// The returned sites are the alias references within the type, in source order.
func ParseType(a *types.Arena, src string, base int) (types.Ref, []types.Site, error) {
	_p := _NewParser(src)
	if pos, perr := _TopAccepts(_p, 0); pos < 0 {
		_, fail := _TopFail(_p, 0, perr)
		return types.NoRef, nil, grammarError(_p.text, base, perr, fail)
	}
	_, t := _TopAction(_p, 0)
	r := &resolver{a: a, base: base}
	ref, err := r.typ(*t)
	if err != nil {
		return types.NoRef, nil, err
	}
	return ref, r.sites, nil
}

// ParseDecl parses an alias declaration, interning its body into a. base is the offset of src
// within the session's source files.
func ParseDecl(a *types.Arena, src string, base int) (*types.Alias, error) {
	_p := _NewParser(src)
	if pos, perr := _DeclAccepts(_p, 0); pos < 0 {
		_, fail := _DeclFail(_p, 0, perr)
		return nil, grammarError(_p.text, base, perr, fail)
	}
	_, d := _DeclAction(_p, 0)
	r := &resolver{a: a, base: base}
	return r.decl(d)
}

func grammarError(text string, base, perr int, fail *peg.Fail) error {
	return &Error{Offset: base + perr, Msg: peg.SimpleError(text, fail).Error(), fail: fail}
}

// resolver interns parsed expressions, resolving built-in type names and recording alias
// reference sites.
type resolver struct {
	a     *types.Arena
	base  int
	sites []types.Site
}

func (r *resolver) errorf(n texpr, format string, args ...interface{}) error {
	start, _ := n.span()
	return &Error{Offset: r.base + start, Msg: fmt.Sprintf(format, args...)}
}

func (r *resolver) decl(d *declExpr) (*types.Alias, error) {
	if k := d.Kind; k.Text != "type" && k.Text != "opaque" {
		return nil, r.errorf(k, "expected type declaration, found %q", k.Text)
	}
	if len(d.Params) > 0 {
		return nil, r.errorf(d.Params[0], "parameterized aliases are not supported")
	}
	body, err := r.typ(d.Body)
	if err != nil {
		return nil, err
	}
	return &types.Alias{
		Name:  d.Name.Text,
		Body:  body,
		Range: loc.Range{r.base + d.start, r.base + d.end},
		Sites: r.sites,
	}, nil
}

func (r *resolver) typs(ns []texpr) ([]types.Ref, error) {
	var refs []types.Ref
	for _, n := range ns {
		ref, err := r.typ(n)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func (r *resolver) typ(n texpr) (types.Ref, error) {
	a := r.a
	switch n := n.(type) {
	case *unionExpr:
		members, err := r.typs(n.Members)
		if err != nil {
			return types.NoRef, err
		}
		return a.Intern(&types.UnionType{Members: types.NewTypeList(members...)}), nil

	case *atomExpr:
		if !n.Name.Quoted {
			switch n.Name.Text {
			case "true":
				return a.Intern(&types.BoolLit{Value: true}), nil
			case "false":
				return a.Intern(&types.BoolLit{Value: false}), nil
			}
		}
		return a.Intern(&types.AtomLit{Name: n.Name.Text}), nil

	case *varExpr:
		return types.NoRef, r.errorf(n, "type variables are not supported: %s", n.Name)

	case *tupleExpr:
		elems, err := r.typs(n.Elems)
		if err != nil {
			return types.NoRef, err
		}
		return a.Intern(&types.TupleType{Elems: types.NewTypeList(elems...)}), nil

	case *listExpr:
		switch len(n.Elems) {
		case 0:
			return types.NoRef, r.errorf(n, "empty list types are not supported")
		case 1:
		default:
			return types.NoRef, r.errorf(n.Elems[1], "list types take one element type")
		}
		elem, err := r.typ(n.Elems[0])
		if err != nil {
			return types.NoRef, err
		}
		return a.Intern(&types.ListType{Elem: elem}), nil

	case *funExpr:
		params, err := r.typs(n.Params)
		if err != nil {
			return types.NoRef, err
		}
		ret, err := r.typ(n.Ret)
		if err != nil {
			return types.NoRef, err
		}
		return a.Intern(&types.FunType{Params: types.NewTypeList(params...), Return: ret}), nil

	case *callExpr:
		return r.call(n)
	}
	panic(fmt.Sprintf("impossible type expression %T", n))
}

// call resolves name(Args...), a built-in type or an alias reference.
func (r *resolver) call(n *callExpr) (types.Ref, error) {
	args, err := r.typs(n.Args)
	if err != nil {
		return types.NoRef, err
	}
	if !n.Name.Quoted {
		if ref, ok, err := r.builtin(n, args); ok || err != nil {
			return ref, err
		}
	}
	name := n.Name.Text
	if len(args) > 0 {
		return types.NoRef, r.errorf(n, "parameterized aliases are not supported: %s()", types.AtomName(name))
	}
	r.sites = append(r.sites, types.Site{Name: name, Range: loc.Range{r.base + n.start, r.base + n.end}})
	return r.a.Intern(&types.AliasRef{Name: name}), nil
}

func (r *resolver) builtin(n *callExpr, args []types.Ref) (types.Ref, bool, error) {
	a := r.a
	name := n.Name.Text
	nullary := func(t types.Type) (types.Ref, bool, error) {
		if len(args) != 0 {
			return types.NoRef, true, r.errorf(n, "%s() takes no arguments", name)
		}
		return a.Intern(t), true, nil
	}
	switch name {
	case "atom":
		return nullary(&types.AtomType{})
	case "number", "integer", "float":
		return nullary(&types.NumberType{})
	case "string":
		return nullary(&types.StringType{})
	case "binary":
		return nullary(&types.BinaryType{})
	case "term", "any":
		return nullary(&types.TermType{})
	case "none":
		return nullary(&types.NoneType{})
	case "boolean":
		if len(args) != 0 {
			return types.NoRef, true, r.errorf(n, "boolean() takes no arguments")
		}
		t, f := a.Intern(&types.BoolLit{Value: true}), a.Intern(&types.BoolLit{Value: false})
		return a.Intern(&types.UnionType{Members: types.NewTypeList(t, f)}), true, nil
	case "list":
		switch len(args) {
		case 0:
			return a.Intern(&types.ListType{Elem: a.Intern(&types.TermType{})}), true, nil
		case 1:
			return a.Intern(&types.ListType{Elem: args[0]}), true, nil
		}
		return types.NoRef, true, r.errorf(n, "list() takes at most one argument")
	case "tuple", "fun":
		return types.NoRef, true, r.errorf(n, "%s() of unknown arity is not supported", name)
	}
	return types.NoRef, false, nil
}
