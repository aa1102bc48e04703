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
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/wdamron/compat/explain"
	"github.com/wdamron/compat/internal/typeutil"
	"github.com/wdamron/compat/loc"
	"github.com/wdamron/compat/report"
	"github.com/wdamron/compat/types"
)

// Judgment asks whether the type of the expression at Range is compatible with the type
// its context expects.
type Judgment struct {
	Actual   types.Ref
	Expected types.Ref
	Range    loc.Range
}

// Env decides judgments against a frozen session. An Env is read-only and may be shared
// across goroutines.
type Env struct {
	cfg      Config
	checker  *typeutil.Checker
	renderer *report.Renderer
	phase1   []report.Report
}

func (e *Env) Arena() *types.Arena { return e.checker.Arena }

func (e *Env) Registry() types.Registry { return e.checker.Aliases }

func (e *Env) Renderer() *report.Renderer { return e.renderer }

// Compatible reports whether actual is compatible with expected.
func (e *Env) Compatible(actual, expected types.Ref) (bool, error) {
	n, err := e.Explain(actual, expected)
	return n == nil && err == nil, err
}

// Explain returns nil if actual is compatible with expected, and otherwise the explanation
// of the first incompatibility found. The error wraps ErrMalformedTerm if either term (or an
// alias reached from either term) is malformed.
func (e *Env) Explain(actual, expected types.Ref) (*explain.Node, error) {
	n, err := e.checker.NewContext().Compatible(actual, expected)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTerm, err)
	}
	return n, nil
}

// Check decides a judgment, returning a report if the judgment fails.
func (e *Env) Check(j Judgment) (*report.Report, error) {
	n, err := e.Explain(j.Actual, j.Expected)
	if err != nil {
		e.cfg.Logger.Error("malformed term", slog.Any("error", err), slog.Any("range", j.Range))
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	return &report.Report{
		Kind:     report.IncompatibleTypes,
		Range:    j.Range,
		Actual:   j.Actual,
		Expected: j.Expected,
		Tree:     n,
	}, nil
}

// CheckAll decides judgments in parallel, bounded by Config.Workers. The reports of the
// session's declaration phase come first in the returned run, followed by the reports of
// failed judgments in the order of the judgments.
//
// A malformed term fails only its own judgment. CheckAll returns an error only if ctx is
// cancelled before every judgment has been decided.
func (e *Env) CheckAll(ctx context.Context, judgments []Judgment) (*Run, error) {
	type result struct {
		rep *report.Report
		err error
	}
	results := make([]result, len(judgments))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Workers)
	scheduled := 0
	for i := range judgments {
		if gctx.Err() != nil {
			break
		}
		scheduled++
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rep, err := e.Check(judgments[i])
			results[i] = result{rep, err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if scheduled < len(judgments) {
		return nil, ctx.Err()
	}

	run := &Run{renderer: e.renderer}
	run.Reports = append(run.Reports, e.phase1...)
	for i, res := range results {
		switch {
		case res.err != nil:
			run.Errors = append(run.Errors, &JudgmentError{Index: i, Range: judgments[i].Range, Err: res.err})
		case res.rep != nil:
			run.Reports = append(run.Reports, *res.rep)
		}
	}
	e.cfg.Logger.LogAttrs(ctx, slog.LevelDebug, "checked judgments",
		slog.Int("judgments", len(judgments)),
		slog.Int("reports", len(run.Reports)),
		slog.Int("errors", len(run.Errors)),
	)
	return run, nil
}

// Run is the outcome of checking a batch of judgments.
type Run struct {
	Reports []report.Report
	// Judgments which could not be decided because of malformed terms.
	Errors []*JudgmentError

	renderer *report.Renderer
}

// Failed reports whether any report was emitted or any judgment could not be decided.
func (r *Run) Failed() bool { return len(r.Reports) > 0 || len(r.Errors) > 0 }

// String renders every report, followed by the count of reports.
func (r *Run) String() string { return r.renderer.RenderAll(r.Reports) }
