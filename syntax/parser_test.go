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

package syntax

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wdamron/compat/loc"
	"github.com/wdamron/compat/types"
)

func TestParseType(t *testing.T) {
	for _, tc := range []struct {
		src, want string
	}{
		{"{number(), 'foo'}", "{number(), 'foo'}"},
		{"{number(), foo}", "{number(), 'foo'}"},
		{"leaf | {node, tree(), tree()}", "'leaf' | {'node', tree(), tree()}"},
		{"boolean()", "boolean()"},
		{"true | number() | false", "boolean() | number()"},
		{"[integer()]", "[number()]"},
		{"list(atom())", "[atom()]"},
		{"list()", "[term()]"},
		{"fun((number(), atom()) -> binary())", "fun((number(), atom()) -> binary())"},
		{"fun(() -> none())", "fun(() -> none())"},
		{"any() % trailing comment", "term()"},
		{"{}", "{}"},
		{"'Quoted Atom' | 'it\\'s'", `'Quoted Atom' | 'it\'s'`},
		{"'Weird'()", "'Weird'()"},
		{"string() | binary() | string()", "string() | binary()"},
		{"% leading\n{ atom() ,\n\t'b' }", "{atom(), 'b'}"},
		{"list( )", "[term()]"},
		{"fun ( ( ) -> 'fun' )", "fun(() -> 'fun')"},
	} {
		a := types.NewArena()
		r, _, err := ParseType(a, tc.src, 0)
		require.NoError(t, err, tc.src)
		require.Equal(t, tc.want, a.Text(r), tc.src)
	}
}

func TestParseTypeSites(t *testing.T) {
	a := types.NewArena()
	src := "leaf | {node, tree(), tree( )}"
	_, sites, err := ParseType(a, src, 100)
	require.NoError(t, err)
	require.Equal(t, []types.Site{
		{Name: "tree", Range: loc.Range{114, 120}},
		{Name: "tree", Range: loc.Range{122, 129}},
	}, sites)
}

func TestParseDecl(t *testing.T) {
	a := types.NewArena()
	src := "-type d() :: [term() | d()]."
	decl, err := ParseDecl(a, src, 0)
	require.NoError(t, err)
	require.Equal(t, "d", decl.Name)
	require.Equal(t, "[d() | term()]", a.Text(decl.Body))
	require.Equal(t, loc.Range{0, 28}, decl.Range)
	require.Equal(t, []types.Site{{Name: "d", Range: loc.Range{23, 26}}}, decl.Sites)
	require.Equal(t, loc.Range{23, 26}, decl.FirstSite("d"))

	decl, err = ParseDecl(a, "-opaque 'Tree'() :: leaf\n  | {node, 'Tree'(), 'Tree'()}.", 40)
	require.NoError(t, err)
	require.Equal(t, "Tree", decl.Name)
	require.Len(t, decl.Sites, 2)
	require.Equal(t, loc.Range{40, 96}, decl.Range)
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		src    string
		offset int
	}{
		{"X", 0},
		{"{number(),", 10},
		{"'abc", 4},
		{"{atom() | }", 10},
		{"tuple()", 0},
		{"fun()", 0},
		{"number(atom())", 0},
		{"[]", 0},
		{"number() number()", 9},
		{"foo(atom())", 0},
	} {
		a := types.NewArena()
		_, _, err := ParseType(a, tc.src, 0)
		require.Error(t, err, tc.src)
		require.True(t, errors.Is(err, ErrSyntax), tc.src)
		var serr *Error
		require.True(t, errors.As(err, &serr), tc.src)
		require.Equal(t, tc.offset, serr.Offset, tc.src)
	}

	a := types.NewArena()
	_, err := ParseDecl(a, "-type t(A) :: A.", 0)
	require.ErrorIs(t, err, ErrSyntax)
	_, err = ParseDecl(a, "-spec f() -> ok.", 0)
	require.ErrorIs(t, err, ErrSyntax)
	_, err = ParseDecl(a, "-type t() :: ok", 0)
	require.ErrorIs(t, err, ErrSyntax)
}

func TestParseErrorTree(t *testing.T) {
	a := types.NewArena()
	_, _, err := ParseType(a, "{atom(), ", 20)
	var serr *Error
	require.True(t, errors.As(err, &serr))
	require.Equal(t, 29, serr.Offset)
	require.NotNil(t, serr.Tree())

	_, _, err = ParseType(a, "X", 0)
	require.True(t, errors.As(err, &serr))
	require.Nil(t, serr.Tree())
	require.Contains(t, serr.Msg, "type variables")
}
