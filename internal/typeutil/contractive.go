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
	"sort"
	"strings"

	"github.com/wdamron/compat/internal/util"
	"github.com/wdamron/compat/types"
)

// Violation is an alias which can reach itself through alias references alone, without
// passing through a guarding constructor.
type Violation struct {
	// The alias whose declaration is rejected.
	Alias string
	// The unguarded reference in the alias's body through which Path leaves it.
	Target string
	// A shortest unguarded cycle, starting and ending with Alias.
	Path []string
}

// Message describes the cycle in the form `d() -> e() -> d()`.
func (v Violation) Message() string {
	var sb strings.Builder
	for i, name := range v.Path {
		if i > 0 {
			sb.WriteString(" -> ")
		}
		sb.WriteString(types.AtomName(name))
		sb.WriteString("()")
	}
	return sb.String()
}

// Contractive reports every alias in the registry which is not contractive: an alias whose
// definition can unfold back to itself without passing through a tuple or function type
// (or a list type, when listGuards is set). Unions are never guards. Violations are sorted
// by alias name.
func Contractive(a *types.Arena, reg types.Registry, listGuards bool) []Violation {
	names := reg.Names()
	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}
	g := util.NewGraph(len(names))
	for i, name := range names {
		alias, _ := reg.Lookup(name)
		for _, ref := range UnguardedRefs(a, alias.Body, listGuards) {
			// References to undeclared aliases are reported when a judgment reaches them.
			if j, ok := index[ref]; ok {
				g.AddEdge(i, j)
			}
		}
	}

	var violations []Violation
	for _, c := range g.Cycles() {
		for _, v := range c {
			path := g.ShortestCycle(v)
			vio := Violation{Alias: names[v], Path: make([]string, len(path))}
			for i, w := range path {
				vio.Path[i] = names[w]
			}
			if len(path) > 1 {
				vio.Target = vio.Path[1]
			}
			violations = append(violations, vio)
		}
	}
	sort.Slice(violations, func(i, j int) bool { return violations[i].Alias < violations[j].Alias })
	return violations
}

// UnguardedRefs returns the names of aliases referenced from r without an intervening
// guard, in the order they are first reached.
func UnguardedRefs(a *types.Arena, r types.Ref, listGuards bool) []string {
	var refs []string
	seen := make(map[string]bool)
	a.Walk(r, func(c types.Ref) bool {
		switch t := a.Get(c).(type) {
		case *types.TupleType, *types.FunType:
			return false
		case *types.ListType:
			return !listGuards
		case *types.AliasRef:
			if !seen[t.Name] {
				seen[t.Name] = true
				refs = append(refs, t.Name)
			}
		}
		return true
	})
	return refs
}
