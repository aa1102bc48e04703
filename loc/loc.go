// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package loc has routines for tracking source locations of checked sub-expressions.
package loc

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// A Range is a start and end byte offset into a set of Files.
// The end offset is exclusive.
type Range [2]int

// NoRange is used where a collaborator did not supply a location.
var NoRange = Range{-1, -1}

// Valid returns whether the range is non-negative and ordered.
func (r Range) Valid() bool { return r[0] >= 0 && r[1] >= r[0] }

// Len returns the number of bytes covered by the range.
func (r Range) Len() int {
	if !r.Valid() {
		return 0
	}
	return r[1] - r[0]
}

// A Loc describes a file location. Lines and columns are 1-based; columns count runes.
type Loc struct {
	Path string
	Line [2]int
	Col  [2]int
}

func (l Loc) String() string { return fmt.Sprintf("%s:%d:%d", l.Path, l.Line[0], l.Col[0]) }

// Files tracks locations within a set of files.
type Files []File

// A File is a single file in a Files.
type File struct {
	Path  string
	Text  string
	Offs  int
	Lines []int // offsets of '\n', relative to the start of the file
}

// Len returns the total length of all files.
func (fs Files) Len() int {
	if len(fs) == 0 {
		return 0
	}
	last := fs[len(fs)-1]
	return last.Offs + len(last.Text)
}

// Add adds a new file to the set given its path and text,
// and returns the offset at which the file starts.
func (fs *Files) Add(path, text string) int {
	var lines []int
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, i)
		}
	}
	offs := fs.Len()
	*fs = append(*fs, File{Path: path, Text: text, Offs: offs, Lines: lines})
	return offs
}

// Loc returns the Loc for a range, or nil if the range is outside of the files.
func (fs Files) Loc(r Range) *Loc {
	if len(fs) == 0 || !r.Valid() || r[1] > fs.Len() {
		return nil
	}
	f := fs.file(r[0])
	if r[1] > f.Offs+len(f.Text) {
		return nil
	}
	var l Loc
	l.Path = f.Path
	l.Line[0], l.Col[0] = f.lineCol(r[0] - f.Offs)
	l.Line[1], l.Col[1] = f.lineCol(r[1] - f.Offs)
	return &l
}

// Text returns the source text covered by the range.
func (fs Files) Text(r Range) string {
	if len(fs) == 0 || !r.Valid() || r[1] > fs.Len() {
		return ""
	}
	f := fs.file(r[0])
	s, e := r[0]-f.Offs, r[1]-f.Offs
	if e > len(f.Text) {
		e = len(f.Text)
	}
	return f.Text[s:e]
}

// Line returns the text of a 1-based line of the file with the given path,
// without its trailing newline.
func (fs Files) Line(path string, line int) (string, bool) {
	for i := range fs {
		if fs[i].Path == path {
			return fs[i].line(line)
		}
	}
	return "", false
}

func (fs Files) file(p int) *File {
	i := sort.Search(len(fs), func(i int) bool { return fs[i].Offs > p })
	if i == 0 {
		return &fs[0]
	}
	return &fs[i-1]
}

func (f *File) lineCol(p int) (int, int) {
	line := sort.SearchInts(f.Lines, p)
	start := 0
	if line > 0 {
		start = f.Lines[line-1] + 1
	}
	return line + 1, utf8.RuneCountInString(f.Text[start:p]) + 1
}

func (f *File) line(n int) (string, bool) {
	if n < 1 || n > len(f.Lines)+1 {
		return "", false
	}
	start, end := 0, len(f.Text)
	if n > 1 {
		start = f.Lines[n-2] + 1
	}
	if n <= len(f.Lines) {
		end = f.Lines[n-1]
	}
	if start > end {
		return "", false
	}
	return strings.TrimSuffix(f.Text[start:end], "\r"), true
}
