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

// Package fixture loads checking sessions from YAML files.
package fixture

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/wdamron/compat"
	"github.com/wdamron/compat/loc"
	"github.com/wdamron/compat/syntax"
)

// File is a session: a source file, the alias declarations within it, and the judgments to
// decide against it.
type File struct {
	Path      string     `yaml:"file" validate:"required"`
	Source    string     `yaml:"source"`
	Aliases   []Alias    `yaml:"aliases" validate:"dive"`
	Judgments []Judgment `yaml:"judgments" validate:"dive"`
}

type Alias struct {
	Decl string `yaml:"decl" validate:"required"`
}

// Judgment locates its expression either by a byte range into the source, or by the first
// occurrence of Expr within the source.
type Judgment struct {
	Actual   string `yaml:"actual" validate:"required"`
	Expected string `yaml:"expected" validate:"required"`
	Span     []int  `yaml:"span" validate:"omitempty,len=2,dive,gte=0"`
	Expr     string `yaml:"expr"`
}

var validate = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	v.RegisterStructValidation(validateJudgment, Judgment{})
	return v
}()

func validateJudgment(sl validator.StructLevel) {
	j := sl.Current().Interface().(Judgment)
	if len(j.Span) == 2 && j.Span[0] > j.Span[1] {
		sl.ReportError(j.Span, "span", "Span", "ordered", "")
	}
	if len(j.Span) > 0 && j.Expr != "" {
		sl.ReportError(j.Expr, "expr", "Expr", "excluded_with", "span")
	}
}

// Load reads and validates a session file.
func Load(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("fixture: empty path")
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: open %s: %w", path, err)
	}
	defer file.Close()
	f, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("fixture: %s: %w", path, err)
	}
	return f, nil
}

// Decode reads and validates a session.
func Decode(r io.Reader) (*File, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var f File
	if err := decoder.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty session")
		}
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := validate.Struct(&f); err != nil {
		return nil, fmt.Errorf("invalid session: %w", err)
	}
	for i, j := range f.Judgments {
		if len(j.Span) == 2 && j.Span[1] > len(f.Source) {
			return nil, fmt.Errorf("invalid session: judgments[%d]: span %v is outside of the source", i, j.Span)
		}
		if j.Expr != "" && !strings.Contains(f.Source, j.Expr) {
			return nil, fmt.Errorf("invalid session: judgments[%d]: %q is not within the source", i, j.Expr)
		}
	}
	return &f, nil
}

// Declare adds the session's source file and aliases to s, and returns its judgments.
// Declarations are located by their first occurrence in the source; a declaration which does
// not occur in the source has no location.
func (f *File) Declare(s *compat.Session) ([]compat.Judgment, error) {
	base := s.AddFile(f.Path, f.Source)
	a := s.Arena()
	for i, alias := range f.Aliases {
		offs := strings.Index(f.Source, alias.Decl)
		declBase := base + offs
		if offs < 0 {
			declBase = 0
		}
		decl, err := syntax.ParseDecl(a, alias.Decl, declBase)
		if err != nil {
			return nil, fmt.Errorf("aliases[%d]: %w", i, err)
		}
		if offs < 0 {
			decl.Range, decl.Sites = loc.NoRange, nil
		}
		if err := s.Declare(decl); err != nil {
			return nil, fmt.Errorf("aliases[%d]: %w", i, err)
		}
	}

	judgments := make([]compat.Judgment, len(f.Judgments))
	for i, j := range f.Judgments {
		actual, _, err := syntax.ParseType(a, j.Actual, 0)
		if err != nil {
			return nil, fmt.Errorf("judgments[%d].actual: %w", i, err)
		}
		expected, _, err := syntax.ParseType(a, j.Expected, 0)
		if err != nil {
			return nil, fmt.Errorf("judgments[%d].expected: %w", i, err)
		}
		span := loc.NoRange
		switch {
		case len(j.Span) == 2:
			span = loc.Range{base + j.Span[0], base + j.Span[1]}
		case j.Expr != "":
			offs := base + strings.Index(f.Source, j.Expr)
			span = loc.Range{offs, offs + len(j.Expr)}
		}
		judgments[i] = compat.Judgment{Actual: actual, Expected: expected, Range: span}
	}
	return judgments, nil
}
