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

// Package explain contains explanation trees: the record of why a subtyping judgment
// failed, rooted at the pair of types the judgment was made for.
package explain

import (
	"sort"
	"strconv"

	"github.com/wdamron/compat/types"
)

// Kind is the discriminant of an explanation node.
type Kind uint8

const (
	// Two types of incompatible shapes, with no further structure to descend into.
	Elementary Kind = iota
	// A tuple element was incompatible. Pos is the 1-based index.
	TupleIndex
	// A union member was incompatible. Side tells which side of the judgment held the union;
	// Pos is the 1-based index of the member in canonical order.
	UnionBranch
	// A function parameter (Pos >= 1) or the return type (Pos == 0) was incompatible.
	FunPosition
	// The element types of two lists were incompatible.
	ListElement
	// An alias was unfolded on Side before the failure was found.
	AliasUnfold
)

var kindNames = [...]string{
	Elementary:  "elementary",
	TupleIndex:  "tuple index",
	UnionBranch: "union branch",
	FunPosition: "function position",
	ListElement: "list element",
	AliasUnfold: "alias unfold",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Side names the side of a judgment.
type Side uint8

const (
	ActualSide Side = iota
	ExpectedSide
)

func (s Side) String() string {
	if s == ExpectedSide {
		return "expected"
	}
	return "actual"
}

// Node is one step of an explanation. Actual and Expected are the types compared at the
// step; the children explain the step's failure in terms of sub-terms.
type Node struct {
	Kind     Kind
	Actual   types.Ref
	Expected types.Ref
	// Tuple index, parameter index or union member index (1-based); 0 for a function's return.
	Pos  int
	Side Side
	// Name of the unfolded alias, for AliasUnfold nodes.
	Alias string
	// Reason is set on elementary nodes whose shapes match but whose structure does not,
	// such as tuples of different arity.
	Reason string
	// Key orders the node among its siblings; lower keys come first.
	Key      int
	Children []*Node
}

// NewElementary creates a leaf node.
func NewElementary(actual, expected types.Ref, reason string) *Node {
	return &Node{Kind: Elementary, Actual: actual, Expected: expected, Reason: reason}
}

// NewTupleIndex wraps the failure of the element at index i (1-based).
func NewTupleIndex(actual, expected types.Ref, i int, child *Node) *Node {
	return wrap(&Node{Kind: TupleIndex, Actual: actual, Expected: expected, Pos: i}, child)
}

// NewFunPosition wraps the failure of parameter i (1-based), or of the return type if i is 0.
func NewFunPosition(actual, expected types.Ref, i int, child *Node) *Node {
	return wrap(&Node{Kind: FunPosition, Actual: actual, Expected: expected, Pos: i}, child)
}

// NewListElement wraps the failure of the element types of two lists.
func NewListElement(actual, expected types.Ref, child *Node) *Node {
	return wrap(&Node{Kind: ListElement, Actual: actual, Expected: expected}, child)
}

// NewAliasUnfold wraps the failure found after unfolding alias on side.
func NewAliasUnfold(actual, expected types.Ref, side Side, alias string, child *Node) *Node {
	return wrap(&Node{Kind: AliasUnfold, Actual: actual, Expected: expected, Side: side, Alias: alias}, child)
}

// NewUnionBranch creates a node for a union on side. Each child explains one failing member;
// children must carry their member index as their Key.
func NewUnionBranch(actual, expected types.Ref, side Side, children ...*Node) *Node {
	n := &Node{Kind: UnionBranch, Actual: actual, Expected: expected, Side: side, Children: children}
	if len(children) == 1 {
		n.Pos = children[0].Key
	}
	n.Sort()
	return n
}

func wrap(n, child *Node) *Node {
	if child != nil {
		n.Children = []*Node{child}
	}
	return n
}

// WithKey sets the key of the node and returns it.
func (n *Node) WithKey(key int) *Node {
	n.Key = key
	return n
}

// Sort orders children by key, keeping the relative order of equal keys.
func (n *Node) Sort() {
	sort.SliceStable(n.Children, func(i, j int) bool { return n.Children[i].Key < n.Children[j].Key })
}

// Primary returns the lowest-keyed child, or nil for a leaf.
func (n *Node) Primary() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// Chain flattens the primary path of the tree: the node itself, its primary child, that
// child's primary child, and so on down to a leaf.
func (n *Node) Chain() []*Node {
	var chain []*Node
	for c := n; c != nil; c = c.Primary() {
		chain = append(chain, c)
	}
	return chain
}

// Leaf returns the last node of the primary path.
func (n *Node) Leaf() *Node {
	c := n
	for c.Primary() != nil {
		c = c.Primary()
	}
	return c
}

// Depth returns the number of nodes on the longest path from n to a leaf.
func (n *Node) Depth() int {
	d := 0
	for _, c := range n.Children {
		if cd := c.Depth(); cd > d {
			d = cd
		}
	}
	return d + 1
}

// Walk visits the tree in pre-order, with children in key order. depth is 0 for n.
// If f returns false, the children of the visited node are skipped.
func (n *Node) Walk(f func(node *Node, depth int) bool) { n.walk(f, 0) }

func (n *Node) walk(f func(*Node, int) bool, depth int) {
	if !f(n, depth) {
		return
	}
	for _, c := range n.Children {
		c.walk(f, depth+1)
	}
}

// Count returns the number of nodes in the tree.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node, int) bool {
		count++
		return true
	})
	return count
}
