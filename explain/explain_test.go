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

package explain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Handles are opaque to explanation trees, so these tests use arbitrary values.
func testTree() *Node {
	return NewAliasUnfold(1, 2, ActualSide, "pair",
		NewTupleIndex(3, 2, 2,
			NewUnionBranch(4, 5, ExpectedSide,
				NewElementary(4, 7, "").WithKey(2),
				NewListElement(4, 6, NewElementary(8, 9, "")).WithKey(1),
			),
		),
	)
}

func TestUnionChildrenSorted(t *testing.T) {
	u := testTree().Primary().Primary()
	var keys []int
	for _, c := range u.Children {
		keys = append(keys, c.Key)
	}
	if diff := cmp.Diff([]int{1, 2}, keys); diff != "" {
		t.Fatalf("expected children in key order (-want +got):\n%s", diff)
	}
	if u.Pos != 0 {
		t.Fatalf("expected no position for a union with several failing members, found %d", u.Pos)
	}
	single := NewUnionBranch(4, 5, ActualSide, NewElementary(4, 5, "").WithKey(3))
	if single.Pos != 3 {
		t.Fatalf("expected the position of the single failing member, found %d", single.Pos)
	}
}

func TestChain(t *testing.T) {
	root := testTree()
	var kinds []Kind
	for _, n := range root.Chain() {
		kinds = append(kinds, n.Kind)
	}
	want := []Kind{AliasUnfold, TupleIndex, UnionBranch, ListElement, Elementary}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("unexpected chain (-want +got):\n%s", diff)
	}
	if leaf := root.Leaf(); leaf.Actual != 8 || leaf.Expected != 9 {
		t.Fatalf("unexpected leaf: %+v", leaf)
	}
	if d := root.Depth(); d != 5 {
		t.Fatalf("expected depth 5, found %d", d)
	}
	if d := NewElementary(1, 2, "").Depth(); d != 1 {
		t.Fatalf("expected depth 1 for a leaf, found %d", d)
	}
	if n := root.Count(); n != 6 {
		t.Fatalf("expected 6 nodes, found %d", n)
	}
}

func TestWalk(t *testing.T) {
	type visit struct {
		Kind  Kind
		Depth int
	}
	var visits []visit
	testTree().Walk(func(n *Node, depth int) bool {
		visits = append(visits, visit{n.Kind, depth})
		return n.Kind != ListElement
	})
	want := []visit{
		{AliasUnfold, 0},
		{TupleIndex, 1},
		{UnionBranch, 2},
		{ListElement, 3},
		{Elementary, 3},
	}
	if diff := cmp.Diff(want, visits); diff != "" {
		t.Fatalf("unexpected walk (-want +got):\n%s", diff)
	}
}

func TestKindString(t *testing.T) {
	if s := UnionBranch.String(); s != "union branch" {
		t.Fatalf("unexpected kind name: %s", s)
	}
	if s := Kind(42).String(); s != "Kind(42)" {
		t.Fatalf("unexpected kind name: %s", s)
	}
	if ExpectedSide.String() != "expected" || ActualSide.String() != "actual" {
		t.Fatalf("unexpected side names")
	}
}
