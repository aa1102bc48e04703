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

	"github.com/wdamron/compat/internal/typeutil"
	"github.com/wdamron/compat/loc"
	"github.com/wdamron/compat/report"
	"github.com/wdamron/compat/types"
)

// Session collects the source files, types and alias declarations of a checking session.
// Freezing the session checks every alias for contractiveness and yields an Env for deciding
// judgments.
//
// A session cannot be used concurrently; the Env it yields can.
type Session struct {
	cfg     Config
	arena   *types.Arena
	files   loc.Files
	aliases *types.RegistryBuilder

	env    *Env
	phase1 []report.Report
}

// Create a new session.
func NewSession(cfg Config) *Session {
	setConfigDefaults(&cfg)
	return &Session{
		cfg:     cfg,
		arena:   types.NewArena(),
		aliases: types.NewRegistryBuilder(),
	}
}

// Arena returns the arena which terms for the session must be interned into.
func (s *Session) Arena() *types.Arena { return s.arena }

// AddFile adds the text of a source file. Ranges within the file are offset by the returned base.
func (s *Session) AddFile(path, text string) int { return s.files.Add(path, text) }

// Files returns the source files added to the session.
func (s *Session) Files() loc.Files { return s.files }

// Declare adds an alias declaration. Aliases may refer to each other in any order.
func (s *Session) Declare(a *types.Alias) error {
	if s.env != nil {
		return ErrFrozen
	}
	if err := s.aliases.Declare(a); err != nil {
		return err
	}
	s.cfg.Logger.Debug("declared alias", slog.String("alias", a.Name), slog.String("body", s.arena.Text(a.Body)))
	return nil
}

// Freeze ends the declaration phase. Every alias which is not contractive is reported as a
// recursive constraint; rejected aliases remain declared, and judgments over them still
// terminate. After Freeze, no terms may be interned into the session's arena.
//
// Calling Freeze again returns the same Env and reports.
func (s *Session) Freeze() (*Env, []report.Report) {
	if s.env != nil {
		return s.env, s.phase1
	}
	s.arena.Freeze()
	reg := s.aliases.Build()

	for _, v := range typeutil.Contractive(s.arena, reg, s.cfg.ListGuards) {
		alias, _ := reg.Lookup(v.Alias)
		s.phase1 = append(s.phase1, report.Report{
			Kind:   report.RecursiveConstraint,
			Range:  alias.FirstSite(v.Target),
			Alias:  v.Alias,
			Target: v.Target,
			Cycle:  v.Path,
		})
		s.cfg.Logger.Debug("alias is not contractive", slog.String("alias", v.Alias), slog.String("cycle", v.Message()))
	}

	s.env = &Env{
		cfg: s.cfg,
		checker: &typeutil.Checker{
			Arena:   s.arena,
			Aliases: reg,
			Options: typeutil.Options{
				AllActualBranches: s.cfg.AllActualBranches,
				Trace:             s.cfg.Trace,
				Logger:            s.cfg.Logger,
			},
		},
		renderer: &report.Renderer{
			Arena:      s.arena,
			Files:      s.files,
			DocBase:    s.cfg.DocBase,
			ListGuards: s.cfg.ListGuards,
		},
		phase1: s.phase1,
	}
	s.cfg.Logger.LogAttrs(context.Background(), slog.LevelDebug, "session frozen",
		slog.Int("aliases", reg.Len()),
		slog.Int("terms", s.arena.Len()),
		slog.Int("rejected", len(s.phase1)),
	)
	return s.env, s.phase1
}

func (s *Session) String() string {
	return fmt.Sprintf("Session{aliases: %d, terms: %d, files: %d}", s.aliases.Len(), s.arena.Len(), len(s.files))
}
