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

package typeutil

import (
	"fmt"
	"strconv"

	"github.com/wdamron/compat/explain"
	"github.com/wdamron/compat/types"
)

// Compatible decides whether actual is a subtype of expected. If it is not, the returned
// node explains the first failure found. An error is returned only for malformed input:
// a handle outside the arena or a reference to an undeclared alias.
func (ctx *Context) Compatible(actual, expected types.Ref) (*explain.Node, error) {
	return ctx.sub(emptyPath, actual, expected)
}

func (ctx *Context) sub(path pathSet, actual, expected types.Ref) (*explain.Node, error) {
	ctx.Steps++
	if actual == expected {
		return nil, nil
	}
	a := ctx.Arena
	if !a.Valid(actual) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHandle, actual)
	}
	if !a.Valid(expected) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHandle, expected)
	}
	ctx.trace(path.len(), "subtype", actual, expected)

	at, et := a.Get(actual), a.Get(expected)
	if _, ok := et.(*types.TermType); ok {
		return nil, nil
	}
	if _, ok := at.(*types.NoneType); ok {
		return nil, nil
	}

	if ref, ok := at.(*types.AliasRef); ok {
		return ctx.unfold(path, actual, expected, explain.ActualSide, ref.Name)
	}

	if u, ok := at.(*types.UnionType); ok {
		var failed []*explain.Node
		var err error
		u.Members.Range(func(i int, m types.Ref) bool {
			var child *explain.Node
			if child, err = ctx.sub(path, m, expected); err != nil {
				return false
			}
			if child != nil {
				failed = append(failed, child.WithKey(i+1))
			}
			return child == nil || ctx.AllActualBranches
		})
		if err != nil || len(failed) == 0 {
			return nil, err
		}
		return explain.NewUnionBranch(actual, expected, explain.ActualSide, failed...), nil
	}

	if ref, ok := et.(*types.AliasRef); ok {
		return ctx.unfold(path, actual, expected, explain.ExpectedSide, ref.Name)
	}

	if u, ok := et.(*types.UnionType); ok {
		failed := make([]*explain.Node, 0, u.Members.Len())
		var (
			err     error
			matched bool
		)
		u.Members.Range(func(i int, m types.Ref) bool {
			var child *explain.Node
			if child, err = ctx.sub(path, actual, m); err != nil {
				return false
			}
			if child == nil {
				matched = true
				return false
			}
			failed = append(failed, child.WithKey(i+1))
			return true
		})
		if err != nil || matched {
			return nil, err
		}
		return explain.NewUnionBranch(actual, expected, explain.ExpectedSide, failed...), nil
	}

	switch at := at.(type) {
	case *types.AtomLit:
		if _, ok := et.(*types.AtomType); ok {
			return nil, nil
		}

	case *types.TupleType:
		et, ok := et.(*types.TupleType)
		if !ok {
			break
		}
		if at.Elems.Len() != et.Elems.Len() {
			return explain.NewElementary(actual, expected, arityReason("tuple", at.Elems.Len(), et.Elems.Len())), nil
		}
		for i := 0; i < at.Elems.Len(); i++ {
			child, err := ctx.sub(path, at.Elems.Get(i), et.Elems.Get(i))
			if err != nil || child != nil {
				return wrapChild(child, err, func(c *explain.Node) *explain.Node {
					return explain.NewTupleIndex(actual, expected, i+1, c)
				})
			}
		}
		return nil, nil

	case *types.ListType:
		et, ok := et.(*types.ListType)
		if !ok {
			break
		}
		child, err := ctx.sub(path, at.Elem, et.Elem)
		return wrapChild(child, err, func(c *explain.Node) *explain.Node {
			return explain.NewListElement(actual, expected, c)
		})

	case *types.FunType:
		et, ok := et.(*types.FunType)
		if !ok {
			break
		}
		if at.Params.Len() != et.Params.Len() {
			return explain.NewElementary(actual, expected, arityReason("function", at.Params.Len(), et.Params.Len())), nil
		}
		// Parameters are contravariant.
		for i := 0; i < at.Params.Len(); i++ {
			child, err := ctx.sub(path, et.Params.Get(i), at.Params.Get(i))
			if err != nil || child != nil {
				return wrapChild(child, err, func(c *explain.Node) *explain.Node {
					return explain.NewFunPosition(actual, expected, i+1, c)
				})
			}
		}
		child, err := ctx.sub(path, at.Return, et.Return)
		return wrapChild(child, err, func(c *explain.Node) *explain.Node {
			return explain.NewFunPosition(actual, expected, 0, c)
		})
	}

	return explain.NewElementary(actual, expected, ""), nil
}

// unfold replaces the alias on side with its definition. A pair which is already under
// examination on the current path is accepted: any counterexample would have to be found
// through the outer occurrence of the same pair.
func (ctx *Context) unfold(path pathSet, actual, expected types.Ref, side explain.Side, name string) (*explain.Node, error) {
	if path.has(actual, expected) {
		ctx.trace(path.len(), "assume", actual, expected)
		return nil, nil
	}
	target := actual
	if side == explain.ExpectedSide {
		target = expected
	}
	body, err := ctx.Aliases.Unfold(ctx.Arena, target)
	if err != nil {
		return nil, err
	}
	inner := path.with(actual, expected)
	var child *explain.Node
	if side == explain.ActualSide {
		child, err = ctx.sub(inner, body, expected)
	} else {
		child, err = ctx.sub(inner, actual, body)
	}
	return wrapChild(child, err, func(c *explain.Node) *explain.Node {
		return explain.NewAliasUnfold(actual, expected, side, name, c)
	})
}

func wrapChild(child *explain.Node, err error, f func(*explain.Node) *explain.Node) (*explain.Node, error) {
	if err != nil || child == nil {
		return nil, err
	}
	return f(child), nil
}

func arityReason(shape string, actual, expected int) string {
	return "a " + shape + " of arity " + strconv.Itoa(actual) +
		" is not compatible with a " + shape + " of arity " + strconv.Itoa(expected)
}
