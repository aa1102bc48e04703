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
	"errors"
	"fmt"

	"github.com/wdamron/compat/loc"
)

var (
	// ErrMalformedTerm is returned for a judgment over a term which violates the model's
	// invariants, such as a reference to an undeclared alias. It is never a user diagnostic.
	ErrMalformedTerm = errors.New("malformed term")
	// ErrFrozen is returned when declaring an alias after the session has been frozen.
	ErrFrozen = errors.New("session is frozen")
)

// JudgmentError records the failure of a single judgment. The error wraps ErrMalformedTerm
// and the underlying cause.
type JudgmentError struct {
	// Index of the judgment within its batch.
	Index int
	Range loc.Range
	Err   error
}

func (e *JudgmentError) Error() string {
	return fmt.Sprintf("judgment %d: %v", e.Index, e.Err)
}

func (e *JudgmentError) Unwrap() error { return e.Err }
