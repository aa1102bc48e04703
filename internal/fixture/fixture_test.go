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

package fixture

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wdamron/compat"
	"github.com/wdamron/compat/loc"
	"github.com/wdamron/compat/report"
	"github.com/wdamron/compat/types"
)

func newSession() *compat.Session {
	return compat.NewSession(compat.Config{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
}

func TestLoadTuple(t *testing.T) {
	f, err := Load("testdata/tuple.yaml")
	require.NoError(t, err)
	require.Equal(t, "src/tuple.erl", f.Path)
	require.Len(t, f.Aliases, 1)
	require.Len(t, f.Judgments, 3)

	s := newSession()
	judgments, err := f.Declare(s)
	require.NoError(t, err)
	require.Equal(t, loc.Range{63, 71}, judgments[0].Range)
	require.Equal(t, loc.Range{63, 71}, judgments[1].Range)
	require.Equal(t, loc.Range{67, 70}, judgments[2].Range)

	env, reports := s.Freeze()
	require.Empty(t, reports)
	run, err := env.CheckAll(context.Background(), judgments)
	require.NoError(t, err)
	require.Len(t, run.Reports, 2)
	require.Empty(t, run.Errors)

	out := run.String()
	require.Contains(t, out, "┌─ src/tuple.erl:4:5")
	require.Contains(t, out, "  after unfolding pair():\n  {number(), atom()} is not compatible with {atom(), number()}\n")
	require.Contains(t, out, "  at tuple index 1:\n  number() is not compatible with atom()\n")
	require.True(t, strings.HasSuffix(out, "\n2 ERRORS\n"), out)
}

func TestLoadRecursive(t *testing.T) {
	f, err := Load("testdata/recursive.yaml")
	require.NoError(t, err)

	s := newSession()
	judgments, err := f.Declare(s)
	require.NoError(t, err)
	env, reports := s.Freeze()
	require.Len(t, reports, 1)
	require.Equal(t, report.RecursiveConstraint, reports[0].Kind)
	require.Equal(t, "d", reports[0].Alias)

	run, err := env.CheckAll(context.Background(), judgments)
	require.NoError(t, err)
	require.Len(t, run.Reports, 1)
	require.Contains(t, run.String(), "┌─ src/recursive.erl:2:24")
	require.True(t, strings.HasSuffix(run.String(), "\n1 ERROR\n"))
}

func TestDecodeErrors(t *testing.T) {
	for name, src := range map[string]string{
		"empty":          "",
		"missing file":   "judgments: []\n",
		"unknown field":  "file: a.erl\nbogus: 1\n",
		"missing actual": "file: a.erl\njudgments:\n  - expected: atom()\n",
		"span order":     "file: a.erl\nsource: abcdef\njudgments:\n  - {actual: atom(), expected: atom(), span: [4, 2]}\n",
		"span length":    "file: a.erl\nsource: abcdef\njudgments:\n  - {actual: atom(), expected: atom(), span: [1, 2, 3]}\n",
		"span range":     "file: a.erl\nsource: abcdef\njudgments:\n  - {actual: atom(), expected: atom(), span: [1, 20]}\n",
		"span and expr":  "file: a.erl\nsource: abcdef\njudgments:\n  - {actual: atom(), expected: atom(), span: [1, 2], expr: b}\n",
		"expr":           "file: a.erl\nsource: abcdef\njudgments:\n  - {actual: atom(), expected: atom(), expr: xyz}\n",
		"missing decl":   "file: a.erl\naliases:\n  - {}\n",
	} {
		_, err := Decode(strings.NewReader(src))
		require.Error(t, err, name)
	}

	_, err := Load("testdata/missing.yaml")
	require.Error(t, err)
}

func TestDeclareErrors(t *testing.T) {
	f := &File{Path: "a.erl", Aliases: []Alias{{Decl: "-type t() :: ok"}}}
	_, err := f.Declare(newSession())
	require.ErrorContains(t, err, "aliases[0]")

	f = &File{Path: "a.erl", Judgments: []Judgment{{Actual: "atom()", Expected: "Var"}}}
	_, err = f.Declare(newSession())
	require.ErrorContains(t, err, "judgments[0].expected")

	f = &File{Path: "a.erl", Aliases: []Alias{{Decl: "-type t() :: ok."}, {Decl: "-type t() :: error."}}}
	_, err = f.Declare(newSession())
	require.ErrorIs(t, err, types.ErrDuplicateAlias)
}
