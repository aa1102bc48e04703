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

// Package report renders diagnostics for failed judgments and rejected alias declarations.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/wdamron/compat/explain"
	"github.com/wdamron/compat/loc"
	"github.com/wdamron/compat/types"
)

// Kind is the error code of a report.
type Kind string

const (
	IncompatibleTypes   Kind = "incompatible_types"
	RecursiveConstraint Kind = "recursive_constraint"
)

const DefaultDocBase = "https://fb.me/eqwalizer_errors#"

const detailedHeader = "------------------------------ Detailed message ------------------------------"

// Report is a single user-facing diagnostic.
type Report struct {
	Kind  Kind
	Range loc.Range

	// Incompatible types:
	Actual   types.Ref
	Expected types.Ref
	Tree     *explain.Node

	// Recursive constraint: Alias is the enclosing declaration and Target the alias referenced
	// at Range. Cycle lists the aliases of the unguarded cycle, starting and ending with Alias.
	Alias  string
	Target string
	Cycle  []string
}

// Renderer renders reports against the terms of an arena and the text of source files.
// Rendering does not modify the renderer, so one renderer may be shared across goroutines.
type Renderer struct {
	Arena      *types.Arena
	Files      loc.Files
	DocBase    string
	// ListGuards reports list types among the guards of a recursive alias.
	ListGuards bool
}

// Summary is the final line of a run.
func Summary(n int) string {
	if n == 1 {
		return "1 ERROR"
	}
	return strconv.Itoa(n) + " ERRORS"
}

// RenderAll renders each report followed by a blank line, then the summary line.
func (r *Renderer) RenderAll(reports []Report) string {
	var sb strings.Builder
	for _, rep := range reports {
		r.render(&sb, rep)
		sb.WriteByte('\n')
	}
	sb.WriteString(Summary(len(reports)))
	sb.WriteByte('\n')
	return sb.String()
}

// Render renders a single report.
func (r *Renderer) Render(rep Report) string {
	var sb strings.Builder
	r.render(&sb, rep)
	return sb.String()
}

func (r *Renderer) render(sb *strings.Builder, rep Report) {
	docBase := r.DocBase
	if docBase == "" {
		docBase = DefaultDocBase
	}
	fmt.Fprintf(sb, "error: %s (See %s%s)\n", rep.Kind, docBase, rep.Kind)
	r.context(sb, rep.Range)

	switch rep.Kind {
	case RecursiveConstraint:
		alias, target := aliasName(rep.Alias), aliasName(rep.Target)
		guards := "a tuple or function type"
		if r.ListGuards {
			guards = "a tuple, list or function type"
		}
		if rep.Target == rep.Alias {
			fmt.Fprintf(sb, "Recursive reference to %s within its own definition is not guarded by %s.\n", target, guards)
		} else {
			fmt.Fprintf(sb, "Reference to %s within the definition of %s is not guarded by %s.\n", target, alias, guards)
		}
		if len(rep.Cycle) > 0 {
			names := make([]string, len(rep.Cycle))
			for i, name := range rep.Cycle {
				names[i] = aliasName(name)
			}
			fmt.Fprintf(sb, "Unguarded cycle: %s\n", strings.Join(names, " -> "))
		}

	default:
		a := r.Arena
		fmt.Fprintf(sb, "Expression has type:   %s\n", a.Text(rep.Actual))
		fmt.Fprintf(sb, "Context expected type: %s\n", a.Text(rep.Expected))
		if rep.Tree == nil {
			return
		}
		if rep.Tree.Depth() > 1 {
			sb.WriteString("\nBecause in the expression's type:\n")
			r.because(sb, rep.Tree, "  ")
		}
		sb.WriteString("\n" + detailedHeader + "\n\n")
		r.detailed(sb, rep.Tree)
	}
}

// context writes the source block for span: its location, the first line of the span,
// and carets under the spanned columns of that line.
func (r *Renderer) context(sb *strings.Builder, span loc.Range) {
	l := r.Files.Loc(span)
	if l == nil {
		return
	}
	text, ok := r.Files.Line(l.Path, l.Line[0])
	if !ok {
		return
	}
	n := strconv.Itoa(l.Line[0])
	pad := strings.Repeat(" ", len(n)+1)
	fmt.Fprintf(sb, "%s┌─ %s\n", pad, l)
	fmt.Fprintf(sb, "%s│\n", pad)
	fmt.Fprintf(sb, "%s │ %s\n", n, text)

	start := l.Col[0] - 1
	end := utf8.RuneCountInString(text)
	if l.Line[1] == l.Line[0] {
		end = l.Col[1] - 1
	}
	if end <= start {
		end = start + 1
	}
	sb.WriteString(pad + "│ " + strings.Repeat(" ", start) + strings.Repeat("^", end-start))
	if l.Line[1] == l.Line[0] {
		if snippet := r.Files.Text(span); snippet != "" {
			sb.WriteString(" " + snippet)
		}
	}
	sb.WriteByte('\n')
}

func (r *Renderer) because(sb *strings.Builder, n *explain.Node, indent string) {
	a := r.Arena
	if len(n.Children) == 0 {
		sb.WriteString(indent + "Here the type is:     " + a.Text(n.Actual) + "\n")
		sb.WriteString(indent + "Context expects type: " + a.Text(n.Expected) + "\n")
		if n.Reason != "" {
			sb.WriteString(indent + "(" + n.Reason + ")\n")
		}
		return
	}
	sb.WriteString(indent + a.Text(n.Actual) + "\n")
	for _, c := range n.Children {
		sb.WriteString(indent + "  " + step(n, c) + "\n")
		r.because(sb, c, indent+"    ")
	}
}

func (r *Renderer) detailed(sb *strings.Builder, root *explain.Node) {
	a := r.Arena
	var parent *explain.Node
	for _, n := range root.Chain() {
		if parent != nil {
			sb.WriteString("  because\n")
			sb.WriteString("  " + step(parent, n) + "\n")
		}
		sb.WriteString("  " + a.Text(n.Actual) + " is not compatible with " + a.Text(n.Expected) + "\n")
		if n.Reason != "" {
			sb.WriteString("  because\n  " + n.Reason + "\n")
		}
		parent = n
	}
}

// step describes the position of child within parent.
func step(parent, child *explain.Node) string {
	switch parent.Kind {
	case explain.TupleIndex:
		return "at tuple index " + strconv.Itoa(parent.Pos) + ":"
	case explain.ListElement:
		return "at list element:"
	case explain.FunPosition:
		if parent.Pos == 0 {
			return "at function return:"
		}
		return "at function parameter " + strconv.Itoa(parent.Pos) + ":"
	case explain.AliasUnfold:
		return "after unfolding " + aliasName(parent.Alias) + ":"
	case explain.UnionBranch:
		if parent.Side == explain.ExpectedSide {
			return "at expected union member " + strconv.Itoa(child.Key) + ":"
		}
		return "at union member " + strconv.Itoa(child.Key) + ":"
	}
	return ""
}

func aliasName(name string) string { return types.AtomName(name) + "()" }
