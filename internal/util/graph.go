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

package util

import "sort"

// Graph is a directed graph over vertices 0..len(g)-1, stored as adjacency lists.
type Graph [][]int

func NewGraph(numVerts int) Graph { return Graph(make([][]int, numVerts)) }

// AddEdge adds an edge, ignoring duplicates. Successors keep the order they were added in.
func (g Graph) AddEdge(from, to int) {
	if !g.HasEdge(from, to) {
		g[from] = append(g[from], to)
	}
}

func (g Graph) HasEdge(from, to int) bool {
	for _, succ := range g[from] {
		if succ == to {
			return true
		}
	}
	return false
}

// SCC returns the strongly connected components of the graph in topological order.
// The vertices of each component are sorted.
func (g Graph) SCC() [][]int {
	state := sccState{
		indexTable: make([]int, len(g)),
		lowLink:    make([]int, len(g)),
		onStack:    make([]bool, len(g)),
	}
	for v := range g {
		if state.indexTable[v] == 0 {
			g.tarjanSCC(&state, v)
		}
	}
	sccs := state.sccs
	for i, j := 0, len(sccs)-1; i < j; i, j = i+1, j-1 {
		sccs[i], sccs[j] = sccs[j], sccs[i]
	}
	for _, c := range sccs {
		sort.Ints(c)
	}
	return sccs
}

// Cycles returns the components which contain a cycle: those with more than one vertex,
// and single vertices with an edge to themselves.
func (g Graph) Cycles() [][]int {
	var cycles [][]int
	for _, c := range g.SCC() {
		if len(c) > 1 || g.HasEdge(c[0], c[0]) {
			cycles = append(cycles, c)
		}
	}
	return cycles
}

// ShortestCycle returns the vertices of a shortest path from v back to itself, starting and
// ending with v, or nil if v is not on a cycle.
func (g Graph) ShortestCycle(v int) []int {
	prev := make([]int, len(g))
	for i := range prev {
		prev[i] = -1
	}
	queue := []int{v}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, succ := range g[u] {
			if succ == v {
				path := []int{v}
				for w := u; w != v; w = prev[w] {
					path = append(path, w)
				}
				path = append(path, v)
				for i, j := 1, len(path)-2; i < j; i, j = i+1, j-1 {
					path[i], path[j] = path[j], path[i]
				}
				return path
			}
			if prev[succ] < 0 {
				prev[succ] = u
				queue = append(queue, succ)
			}
		}
	}
	return nil
}

type sccState struct {
	index      int
	indexTable []int
	lowLink    []int
	onStack    []bool

	stack []int
	sccs  [][]int
}

// Tarjan's algorithm, after https://github.com/gonum/gonum/blob/master/graph/topo/tarjan.go
//
// Components are appended in reverse topological order.
func (g Graph) tarjanSCC(state *sccState, v int) {
	state.index++
	state.indexTable[v] = state.index
	state.lowLink[v] = state.index
	state.stack = append(state.stack, v)
	state.onStack[v] = true

	for _, succ := range g[v] {
		if state.indexTable[succ] == 0 {
			g.tarjanSCC(state, succ)
			state.lowLink[v] = min(state.lowLink[v], state.lowLink[succ])
		} else if state.onStack[succ] {
			state.lowLink[v] = min(state.lowLink[v], state.indexTable[succ])
		}
	}

	if state.lowLink[v] != state.indexTable[v] {
		return
	}
	var c []int
	for {
		w := state.stack[len(state.stack)-1]
		state.stack = state.stack[:len(state.stack)-1]
		state.onStack[w] = false
		c = append(c, w)
		if w == v {
			break
		}
	}
	state.sccs = append(state.sccs, c)
}
