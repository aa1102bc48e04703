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

package report

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/wdamron/compat/construct"
	"github.com/wdamron/compat/explain"
	"github.com/wdamron/compat/loc"
	"github.com/wdamron/compat/types"
)

const moduleA = "-module(a).\nf() ->\n    {X, foo}.\n"

func newRenderer(files ...string) *Renderer {
	r := &Renderer{Arena: types.NewArena()}
	for i := 0; i+1 < len(files); i += 2 {
		r.Files.Add(files[i], files[i+1])
	}
	return r
}

func checkText(t *testing.T, want, got string) {
	t.Helper()
	if diff := cmp.Diff(strings.Split(want, "\n"), strings.Split(got, "\n")); diff != "" {
		t.Fatalf("unexpected report (-want +got):\n%s", diff)
	}
}

func TestElementaryReport(t *testing.T) {
	r := newRenderer("src/a.erl", moduleA)
	a := r.Arena
	str, bin := TString(a), TBinary(a)
	rep := Report{
		Kind:     IncompatibleTypes,
		Range:    loc.Range{23, 31},
		Actual:   str,
		Expected: bin,
		Tree:     explain.NewElementary(str, bin, ""),
	}
	want := `error: incompatible_types (See https://fb.me/eqwalizer_errors#incompatible_types)
  ┌─ src/a.erl:3:5
  │
3 │     {X, foo}.
  │     ^^^^^^^^ {X, foo}
Expression has type:   string()
Context expected type: binary()

------------------------------ Detailed message ------------------------------

  string() is not compatible with binary()
`
	got := r.Render(rep)
	checkText(t, want, got)
	if strings.Contains(got, "Because") {
		t.Fatalf("expected no because section for an elementary mismatch")
	}
	if got2 := r.Render(rep); got2 != got {
		t.Fatalf("expected rendering to be deterministic")
	}
}

func TestTupleReport(t *testing.T) {
	r := newRenderer("src/a.erl", moduleA)
	a := r.Arena
	num, atom := TNumber(a), TAtomType(a)
	actual, expected := TTuple(a, num, atom), TTuple(a, atom, num)
	rep := Report{
		Kind:     IncompatibleTypes,
		Range:    loc.Range{23, 31},
		Actual:   actual,
		Expected: expected,
		Tree:     explain.NewTupleIndex(actual, expected, 1, explain.NewElementary(num, atom, "")),
	}
	want := `error: incompatible_types (See https://fb.me/eqwalizer_errors#incompatible_types)
  ┌─ src/a.erl:3:5
  │
3 │     {X, foo}.
  │     ^^^^^^^^ {X, foo}
Expression has type:   {number(), atom()}
Context expected type: {atom(), number()}

Because in the expression's type:
  {number(), atom()}
    at tuple index 1:
      Here the type is:     number()
      Context expects type: atom()

------------------------------ Detailed message ------------------------------

  {number(), atom()} is not compatible with {atom(), number()}
  because
  at tuple index 1:
  number() is not compatible with atom()
`
	checkText(t, want, r.Render(rep))
}

func TestUnionReport(t *testing.T) {
	r := newRenderer()
	r.DocBase = "https://example.com/errors#"
	a := r.Arena
	num, atom, bin := TNumber(a), TAtomType(a), TBinary(a)
	u := TUnion(a, atom, bin)
	lst, ulst := TList(a, num), TList(a, u)
	tree := explain.NewListElement(lst, ulst, explain.NewUnionBranch(num, u, explain.ExpectedSide,
		explain.NewElementary(num, atom, "").WithKey(1),
		explain.NewElementary(num, bin, "").WithKey(2),
	))
	rep := Report{Kind: IncompatibleTypes, Range: loc.NoRange, Actual: lst, Expected: ulst, Tree: tree}
	want := `error: incompatible_types (See https://example.com/errors#incompatible_types)
Expression has type:   [number()]
Context expected type: [atom() | binary()]

Because in the expression's type:
  [number()]
    at list element:
      number()
        at expected union member 1:
          Here the type is:     number()
          Context expects type: atom()
        at expected union member 2:
          Here the type is:     number()
          Context expects type: binary()

------------------------------ Detailed message ------------------------------

  [number()] is not compatible with [atom() | binary()]
  because
  at list element:
  number() is not compatible with atom() | binary()
  because
  at expected union member 1:
  number() is not compatible with atom()
`
	checkText(t, want, r.Render(rep))
}

func TestArityReason(t *testing.T) {
	r := newRenderer()
	a := r.Arena
	num := TNumber(a)
	x, y := TTuple(a, num, num), TTuple(a, num)
	reason := "a tuple of arity 2 is not compatible with a tuple of arity 1"
	rep := Report{Kind: IncompatibleTypes, Range: loc.NoRange, Actual: x, Expected: y, Tree: explain.NewElementary(x, y, reason)}
	want := `error: incompatible_types (See https://fb.me/eqwalizer_errors#incompatible_types)
Expression has type:   {number(), number()}
Context expected type: {number()}

------------------------------ Detailed message ------------------------------

  {number(), number()} is not compatible with {number()}
  because
  a tuple of arity 2 is not compatible with a tuple of arity 1
`
	checkText(t, want, r.Render(rep))
}

func TestRecursiveConstraintReport(t *testing.T) {
	r := newRenderer("src/d.erl", "-type d() :: [term() | d()].\n")
	rep := Report{Kind: RecursiveConstraint, Range: loc.Range{23, 26}, Alias: "d", Target: "d", Cycle: []string{"d", "d"}}
	want := `error: recursive_constraint (See https://fb.me/eqwalizer_errors#recursive_constraint)
  ┌─ src/d.erl:1:24
  │
1 │ -type d() :: [term() | d()].
  │                        ^^^ d()
Recursive reference to d() within its own definition is not guarded by a tuple or function type.
Unguarded cycle: d() -> d()
`
	got := r.Render(rep)
	checkText(t, want, got)
	if strings.Contains(got, "Expression has type") {
		t.Fatalf("expected no type summary in a recursive constraint report")
	}

	rep = Report{Kind: RecursiveConstraint, Range: loc.NoRange, Alias: "e", Target: "f", Cycle: []string{"e", "f", "e"}}
	want = `error: recursive_constraint (See https://fb.me/eqwalizer_errors#recursive_constraint)
Reference to f() within the definition of e() is not guarded by a tuple or function type.
Unguarded cycle: e() -> f() -> e()
`
	checkText(t, want, r.Render(rep))
}

func TestListGuardsWording(t *testing.T) {
	r := newRenderer()
	r.ListGuards = true
	rep := Report{Kind: RecursiveConstraint, Range: loc.NoRange, Alias: "u", Target: "u", Cycle: []string{"u", "u"}}
	want := `error: recursive_constraint (See https://fb.me/eqwalizer_errors#recursive_constraint)
Recursive reference to u() within its own definition is not guarded by a tuple, list or function type.
Unguarded cycle: u() -> u()
`
	checkText(t, want, r.Render(rep))
}

func TestNonASCIIColumns(t *testing.T) {
	r := newRenderer("src/c.erl", "f() -> \"héllo\", {X, foo}.\ng() -> ok.\n")
	a := r.Arena
	rep := Report{Kind: IncompatibleTypes, Range: loc.Range{17, 25}, Actual: TString(a), Expected: TBinary(a)}
	want := `error: incompatible_types (See https://fb.me/eqwalizer_errors#incompatible_types)
  ┌─ src/c.erl:1:17
  │
1 │ f() -> "héllo", {X, foo}.
  │                 ^^^^^^^^ {X, foo}
Expression has type:   string()
Context expected type: binary()
`
	checkText(t, want, r.Render(rep))

	// A span running past the end of its first line is underlined to the end of the line.
	rep.Range = loc.Range{8, 30}
	got := r.Render(rep)
	if !strings.Contains(got, "│ "+strings.Repeat(" ", 8)+strings.Repeat("^", 17)+"\n") {
		t.Fatalf("expected the underline to end with the line, found:\n%s", got)
	}
}

func TestGutterWidth(t *testing.T) {
	src := strings.Repeat("\n", 11) + "    X.\n"
	r := newRenderer("src/b.erl", src)
	a := r.Arena
	rep := Report{Kind: IncompatibleTypes, Range: loc.Range{15, 16}, Actual: TAtom(a, "a"), Expected: TAtom(a, "b")}
	want := `error: incompatible_types (See https://fb.me/eqwalizer_errors#incompatible_types)
   ┌─ src/b.erl:12:5
   │
12 │     X.
   │     ^ X
Expression has type:   'a'
Context expected type: 'b'
`
	checkText(t, want, r.Render(rep))
}

func TestRenderAll(t *testing.T) {
	r := newRenderer()
	checkText(t, "0 ERRORS\n", r.RenderAll(nil))

	a := r.Arena
	str, bin := TString(a), TBinary(a)
	rep := Report{Kind: IncompatibleTypes, Range: loc.NoRange, Actual: str, Expected: bin, Tree: explain.NewElementary(str, bin, "")}
	out := r.RenderAll([]Report{rep})
	if !strings.HasSuffix(out, "\n\n1 ERROR\n") {
		t.Fatalf("unexpected run output:\n%s", out)
	}
	if s := Summary(3); s != "3 ERRORS" {
		t.Fatalf("unexpected summary: %s", s)
	}
}
