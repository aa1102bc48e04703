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

package util_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/wdamron/compat/internal/util"
)

func TestSCC(t *testing.T) {
	g := NewGraph(6)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 1)
	g.AddEdge(2, 3)
	g.AddEdge(4, 4)
	g.AddEdge(4, 4)
	if len(g[4]) != 1 {
		t.Fatalf("expected duplicate edges to be ignored")
	}

	sccs := g.SCC()
	if diff := cmp.Diff([][]int{{5}, {4}, {0}, {1, 2}, {3}}, sccs); diff != "" {
		t.Fatalf("unexpected components (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][]int{{4}, {1, 2}}, g.Cycles()); diff != "" {
		t.Fatalf("unexpected cycles (-want +got):\n%s", diff)
	}
}

func TestShortestCycle(t *testing.T) {
	g := NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)
	g.AddEdge(1, 0)
	g.AddEdge(3, 3)

	if diff := cmp.Diff([]int{0, 1, 0}, g.ShortestCycle(0)); diff != "" {
		t.Fatalf("unexpected cycle (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2, 0, 1, 2}, g.ShortestCycle(2)); diff != "" {
		t.Fatalf("unexpected cycle (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{3, 3}, g.ShortestCycle(3)); diff != "" {
		t.Fatalf("unexpected cycle (-want +got):\n%s", diff)
	}
	g = NewGraph(2)
	g.AddEdge(0, 1)
	if c := g.ShortestCycle(0); c != nil {
		t.Fatalf("expected no cycle, found %v", c)
	}
}
