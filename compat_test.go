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

package compat

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wdamron/compat/loc"
	"github.com/wdamron/compat/report"
	"github.com/wdamron/compat/syntax"
	"github.com/wdamron/compat/types"
)

const source = `-module(a).
-type d() :: [term() | d()].
-type e() :: {atom(), e()}.
f() ->
    {X, foo}.
`

type testSession struct {
	*Session
	log bytes.Buffer
}

func newTestSession(t *testing.T, cfg Config) *testSession {
	t.Helper()
	s := &testSession{}
	cfg.Logger = slog.New(slog.NewTextHandler(&s.log, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s.Session = NewSession(cfg)
	s.AddFile("src/a.erl", source)
	return s
}

func (s *testSession) typ(t *testing.T, src string) types.Ref {
	t.Helper()
	r, _, err := syntax.ParseType(s.Arena(), src, 0)
	if err != nil {
		t.Fatalf("%s: %v", src, err)
	}
	return r
}

func (s *testSession) decl(t *testing.T, src string) {
	t.Helper()
	offs := strings.Index(source, src)
	if offs < 0 {
		t.Fatalf("declaration not found in source: %s", src)
	}
	a, err := syntax.ParseDecl(s.Arena(), src, offs)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Declare(a); err != nil {
		t.Fatal(err)
	}
}

var exprRange = func() loc.Range {
	offs := strings.Index(source, "{X, foo}")
	return loc.Range{offs, offs + len("{X, foo}")}
}()

func checkRun(t *testing.T, s *testSession, judgments ...Judgment) *Run {
	t.Helper()
	env, _ := s.Freeze()
	run, err := env.CheckAll(context.Background(), judgments)
	if err != nil {
		t.Fatal(err)
	}
	return run
}

func TestStringBinary(t *testing.T) {
	s := newTestSession(t, Config{})
	str, bin := s.typ(t, "string()"), s.typ(t, "binary()")
	run := checkRun(t, s,
		Judgment{Actual: str, Expected: bin, Range: exprRange},
		Judgment{Actual: bin, Expected: str, Range: exprRange},
	)
	want := `error: incompatible_types (See https://fb.me/eqwalizer_errors#incompatible_types)
  ┌─ src/a.erl:5:5
  │
5 │     {X, foo}.
  │     ^^^^^^^^ {X, foo}
Expression has type:   string()
Context expected type: binary()

------------------------------ Detailed message ------------------------------

  string() is not compatible with binary()

error: incompatible_types (See https://fb.me/eqwalizer_errors#incompatible_types)
  ┌─ src/a.erl:5:5
  │
5 │     {X, foo}.
  │     ^^^^^^^^ {X, foo}
Expression has type:   binary()
Context expected type: string()

------------------------------ Detailed message ------------------------------

  binary() is not compatible with string()

2 ERRORS
`
	if diff := cmp.Diff(want, run.String()); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}
	if !run.Failed() {
		t.Fatalf("expected the run to fail")
	}
}

func TestTupleScenario(t *testing.T) {
	s := newTestSession(t, Config{})
	actual, expected := s.typ(t, "{number(), atom()}"), s.typ(t, "{atom(), number()}")
	run := checkRun(t, s, Judgment{Actual: actual, Expected: expected, Range: exprRange})
	if len(run.Reports) != 1 {
		t.Fatalf("expected one report, found %d", len(run.Reports))
	}
	out := run.String()
	detail := out[strings.Index(out, "Detailed message"):]
	want := "  {number(), atom()} is not compatible with {atom(), number()}\n" +
		"  because\n" +
		"  at tuple index 1:\n" +
		"  number() is not compatible with atom()\n"
	if !strings.Contains(detail, want) {
		t.Fatalf("unexpected detailed message:\n%s", out)
	}
	if !strings.Contains(out, "Because in the expression's type:") {
		t.Fatalf("expected a because section:\n%s", out)
	}
}

func TestSubtypingProperties(t *testing.T) {
	s := newTestSession(t, Config{})
	s.decl(t, "-type e() :: {atom(), e()}.")
	pass := [][2]string{
		{"'a' | 'b'", "atom()"},
		{"number()", "atom() | number()"},
		{"fun((term()) -> number())", "fun((atom()) -> term())"},
		{"[foo]", "[atom()]"},
		{"e()", "{atom(), term()}"},
		{"none()", "e()"},
		{"true", "boolean()"},
	}
	fail := [][2]string{
		{"'a' | number()", "atom()"},
		{"number()", "atom() | binary()"},
		{"fun((atom()) -> number())", "fun((term()) -> number())"},
		{"fun((atom()) -> term())", "fun((atom()) -> number())"},
		{"e()", "{atom(), {number(), term()}}"},
		{"true", "atom()"},
	}
	type pair struct{ actual, expected types.Ref }
	var passing, failing []pair
	for _, p := range pass {
		passing = append(passing, pair{s.typ(t, p[0]), s.typ(t, p[1])})
	}
	for _, p := range fail {
		failing = append(failing, pair{s.typ(t, p[0]), s.typ(t, p[1])})
	}
	env, reports := s.Freeze()
	if len(reports) != 0 {
		t.Fatalf("unexpected reports: %v", reports)
	}
	for i, p := range passing {
		ok, err := env.Compatible(p.actual, p.expected)
		if err != nil || !ok {
			t.Fatalf("expected %s to be compatible with %s (%v)", pass[i][0], pass[i][1], err)
		}
	}
	for i, p := range failing {
		ok, err := env.Compatible(p.actual, p.expected)
		if err != nil || ok {
			t.Fatalf("expected %s to be incompatible with %s (%v)", fail[i][0], fail[i][1], err)
		}
	}
}

func TestRecursiveConstraint(t *testing.T) {
	s := newTestSession(t, Config{})
	s.decl(t, "-type d() :: [term() | d()].")
	s.decl(t, "-type e() :: {atom(), e()}.")
	d := s.typ(t, "d()")
	lst := s.typ(t, "[term()]")
	env, reports := s.Freeze()
	if len(reports) != 1 || reports[0].Kind != report.RecursiveConstraint || reports[0].Alias != "d" {
		t.Fatalf("expected d() to be rejected, found %v", reports)
	}
	run, err := env.CheckAll(context.Background(), []Judgment{{Actual: d, Expected: lst, Range: exprRange}})
	if err != nil {
		t.Fatal(err)
	}
	want := `error: recursive_constraint (See https://fb.me/eqwalizer_errors#recursive_constraint)
  ┌─ src/a.erl:2:24
  │
2 │ -type d() :: [term() | d()].
  │                        ^^^ d()
Recursive reference to d() within its own definition is not guarded by a tuple or function type.
Unguarded cycle: d() -> d()

1 ERROR
`
	if diff := cmp.Diff(want, run.String()); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}

	s = newTestSession(t, Config{ListGuards: true})
	s.decl(t, "-type d() :: [term() | d()].")
	if _, reports := s.Freeze(); len(reports) != 0 {
		t.Fatalf("expected list guards to accept d(), found %v", reports)
	}

	s = newTestSession(t, Config{ListGuards: true})
	u, err := syntax.ParseDecl(s.Arena(), "-type u() :: atom() | u().", 0)
	if err != nil {
		t.Fatal(err)
	}
	u.Range, u.Sites = loc.NoRange, nil
	if err := s.Declare(u); err != nil {
		t.Fatal(err)
	}
	run = checkRun(t, s)
	if out := run.String(); !strings.Contains(out, "is not guarded by a tuple, list or function type.") {
		t.Fatalf("expected the list guard wording, found:\n%s", out)
	}
}

func TestZeroErrors(t *testing.T) {
	s := newTestSession(t, Config{})
	num := s.typ(t, "number()")
	run := checkRun(t, s, Judgment{Actual: num, Expected: num, Range: exprRange})
	if out := run.String(); out != "0 ERRORS\n" {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if run.Failed() {
		t.Fatalf("expected the run to pass")
	}
}

func TestCheckAllOrder(t *testing.T) {
	s := newTestSession(t, Config{Workers: 4})
	top := s.typ(t, "term()")
	var judgments []Judgment
	for i := 0; i < 64; i++ {
		atom := s.typ(t, fmt.Sprintf("'a%d'", i))
		if i%3 == 0 {
			judgments = append(judgments, Judgment{Actual: atom, Expected: top, Range: loc.NoRange})
		} else {
			judgments = append(judgments, Judgment{Actual: top, Expected: atom, Range: loc.NoRange})
		}
	}
	run := checkRun(t, s, judgments...)
	var got, want []types.Ref
	for _, j := range judgments {
		if j.Actual == top {
			want = append(want, j.Expected)
		}
	}
	for _, rep := range run.Reports {
		got = append(got, rep.Expected)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("expected reports in judgment order (-want +got):\n%s", diff)
	}
}

func TestMalformedTermIsolated(t *testing.T) {
	s := newTestSession(t, Config{Workers: 2})
	num, atom, undeclared := s.typ(t, "number()"), s.typ(t, "atom()"), s.typ(t, "nope()")
	run := checkRun(t, s,
		Judgment{Actual: num, Expected: atom, Range: exprRange},
		Judgment{Actual: undeclared, Expected: atom, Range: exprRange},
		Judgment{Actual: atom, Expected: num, Range: exprRange},
	)
	if len(run.Reports) != 2 {
		t.Fatalf("expected two reports, found %d", len(run.Reports))
	}
	if len(run.Errors) != 1 || run.Errors[0].Index != 1 {
		t.Fatalf("expected the second judgment to fail, found %v", run.Errors)
	}
	err := run.Errors[0]
	if !errors.Is(err, ErrMalformedTerm) || !errors.Is(err, types.ErrUnknownAlias) {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(s.log.String(), `level=ERROR msg="malformed term"`) {
		t.Fatalf("expected the malformed term to be logged:\n%s", s.log.String())
	}
	if !strings.HasSuffix(run.String(), "\n2 ERRORS\n") {
		t.Fatalf("unexpected output:\n%s", run.String())
	}
}

func TestSessionPhases(t *testing.T) {
	s := newTestSession(t, Config{})
	s.decl(t, "-type e() :: {atom(), e()}.")
	if err := s.Declare(&types.Alias{Name: "e", Body: s.typ(t, "atom()")}); !errors.Is(err, types.ErrDuplicateAlias) {
		t.Fatalf("expected a duplicate alias error, found %v", err)
	}
	env, _ := s.Freeze()
	if env2, _ := s.Freeze(); env2 != env {
		t.Fatalf("expected Freeze to return the same environment")
	}
	if err := s.Declare(&types.Alias{Name: "f", Body: 0}); !errors.Is(err, ErrFrozen) {
		t.Fatalf("expected declaring into a frozen session to fail, found %v", err)
	}
	if !env.Arena().Frozen() {
		t.Fatalf("expected the arena to be frozen")
	}
	if names := env.Registry().Names(); len(names) != 1 || names[0] != "e" {
		t.Fatalf("unexpected aliases: %v", names)
	}
}

func TestCheckAllCancelled(t *testing.T) {
	s := newTestSession(t, Config{Workers: 1})
	num := s.typ(t, "number()")
	env, _ := s.Freeze()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := env.CheckAll(ctx, []Judgment{{Actual: num, Expected: num}}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected a cancelled run, found %v", err)
	}
}

func TestTrace(t *testing.T) {
	s := newTestSession(t, Config{Trace: true})
	x, y := s.typ(t, "{number()}"), s.typ(t, "{atom()}")
	env, _ := s.Freeze()
	if _, err := env.Explain(x, y); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(s.log.String(), `msg=subtype depth=0 actual={number()} expected={atom()}`) {
		t.Fatalf("expected trace output:\n%s", s.log.String())
	}
}

func BenchmarkCheckAll(b *testing.B) {
	s := NewSession(Config{Logger: slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))})
	tree, _ := syntax.ParseDecl(s.Arena(), "-type tree() :: leaf | {node, tree(), tree()}.", 0)
	tree2, _ := syntax.ParseDecl(s.Arena(), "-type tree2() :: leaf | {node, tree2(), tree2()}.", 0)
	s.Declare(tree)
	s.Declare(tree2)
	x, _, _ := syntax.ParseType(s.Arena(), "[tree()]", 0)
	y, _, _ := syntax.ParseType(s.Arena(), "[tree2()]", 0)
	env, _ := s.Freeze()
	judgments := make([]Judgment, 256)
	for i := range judgments {
		judgments[i] = Judgment{Actual: x, Expected: y, Range: loc.NoRange}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		env.CheckAll(context.Background(), judgments)
	}
}
