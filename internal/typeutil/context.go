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

// Package typeutil implements the subtyping judgment and the contractiveness check
// for alias declarations.
package typeutil

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/benbjohnson/immutable"

	"github.com/wdamron/compat/types"
)

var ErrInvalidHandle = errors.New("handle is not within the arena")

// Options controls the shape of explanations and tracing.
type Options struct {
	// Report every failing member of a union on the actual side, rather than the first.
	AllActualBranches bool
	// Log each step of each judgment at debug level.
	Trace  bool
	Logger *slog.Logger
}

// Checker decides subtyping judgments against a frozen arena and registry. A checker is
// read-only, so one checker may serve judgments on many goroutines.
type Checker struct {
	Arena   *types.Arena
	Aliases types.Registry
	Options
}

// Context holds the state of a single top-level judgment.
type Context struct {
	*Checker
	// Steps counts calls to the judgment, including coinductive hits.
	Steps int
}

// NewContext creates the state for one top-level judgment.
func (c *Checker) NewContext() *Context { return &Context{Checker: c} }

// pathSet is the set of (actual, expected) pairs under examination on the current path of
// the judgment. Sets are persistent: extending a set leaves the caller's set unchanged, so
// sibling branches never observe each other's assumptions.
type pathSet struct {
	m *immutable.SortedMap
}

var emptyPath = pathSet{immutable.NewSortedMap(nil)}

func pairKey(actual, expected types.Ref) string {
	b := make([]byte, 0, 24)
	b = strconv.AppendInt(b, int64(actual), 10)
	b = append(b, '<', ':')
	b = strconv.AppendInt(b, int64(expected), 10)
	return string(b)
}

func (p pathSet) has(actual, expected types.Ref) bool {
	_, ok := p.m.Get(pairKey(actual, expected))
	return ok
}

func (p pathSet) with(actual, expected types.Ref) pathSet {
	return pathSet{p.m.Set(pairKey(actual, expected), struct{}{})}
}

func (p pathSet) len() int { return p.m.Len() }

func (ctx *Context) trace(depth int, msg string, actual, expected types.Ref) {
	if !ctx.Trace || ctx.Logger == nil {
		return
	}
	ctx.Logger.LogAttrs(context.Background(), slog.LevelDebug, msg,
		slog.Int("depth", depth),
		slog.String("actual", ctx.Arena.Text(actual)),
		slog.String("expected", ctx.Arena.Text(expected)),
	)
}
