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

// compatcheck decides the judgments of YAML session files and prints their reports.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/eaburns/pretty"

	"github.com/wdamron/compat"
	"github.com/wdamron/compat/internal/fixture"
	"github.com/wdamron/compat/syntax"
	"github.com/wdamron/compat/types"
)

var errFailed = errors.New("checking failed")

type CLI struct {
	Check CheckCmd `cmd:"" help:"Check session files and print their reports."`
	Parse ParseCmd `cmd:"" help:"Print the normalized form of a type."`
}

type CheckCmd struct {
	Files       []string `arg:"" type:"existingfile" help:"Session files to check."`
	Workers     int      `help:"Number of judgments to decide in parallel (0 for one per CPU)." short:"j" default:"0"`
	ListGuards  bool     `help:"Count list types as guards of recursive aliases." name:"list-guards"`
	AllBranches bool     `help:"Report every failing member of a union in the expression's type." name:"all-branches"`
	DumpTree    bool     `help:"Print explanation trees after the reports." name:"dump-tree"`
	Verbose     bool     `help:"Log session progress." short:"v"`
	Trace       bool     `help:"Log each step of each judgment."`
}

// Validate is called by kong once the command line is parsed.
func (c *CheckCmd) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("--workers must not be negative, found %d", c.Workers)
	}
	return nil
}

func (c *CheckCmd) Run() error {
	level := slog.LevelWarn
	if c.Verbose || c.Trace {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	failed := false
	for _, path := range c.Files {
		f, err := fixture.Load(path)
		if err != nil {
			return err
		}
		s := compat.NewSession(compat.Config{
			Logger:            logger.With(slog.String("session", path)),
			Workers:           c.Workers,
			ListGuards:        c.ListGuards,
			AllActualBranches: c.AllBranches,
			Trace:             c.Trace,
		})
		judgments, err := f.Declare(s)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		env, _ := s.Freeze()
		run, err := env.CheckAll(context.Background(), judgments)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Print(run.String())
		if c.DumpTree {
			dumpTrees(os.Stdout, run)
		}
		for _, err := range run.Errors {
			logger.Error("judgment not decided", slog.String("session", path), slog.Any("error", err))
		}
		failed = failed || run.Failed()
	}
	if failed {
		return errFailed
	}
	return nil
}

func dumpTrees(w io.Writer, run *compat.Run) {
	for i, rep := range run.Reports {
		if rep.Tree == nil {
			continue
		}
		fmt.Fprintf(w, "report %d:\n%s\n", i+1, pretty.String(rep.Tree))
	}
}

type ParseCmd struct {
	Type string `arg:"" help:"Type to parse, such as \"{number(), 'foo'} | atom()\"."`
}

func (c *ParseCmd) Run() error {
	a := types.NewArena()
	r, _, err := syntax.ParseType(a, c.Type, 0)
	if err != nil {
		return err
	}
	fmt.Println(a.Text(r))
	return nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("compatcheck"),
		kong.Description("Structural type compatibility checker."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	if errors.Is(err, errFailed) {
		os.Exit(1)
	}
	ctx.FatalIfErrorf(err)
}
