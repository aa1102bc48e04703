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

// compat decides structural compatibility between types and explains incompatibilities.
//
// Types are built in an arena shared by a checking session. A session proceeds in two
// phases: first, alias declarations are collected and checked for contractiveness; then the
// session is frozen, and judgments of the form "actual is compatible with expected" are
// decided against the frozen arena and alias registry, possibly in parallel.
//
//
// Supported Features:
//
//   * Atoms, booleans, numbers, strings and binaries, with the atom() kind and boolean()
//   * Fixed-arity tuples, homogeneous lists and function types
//   * Flattened, deduplicated unions in canonical order
//   * Recursive and mutually-recursive type aliases, decided coinductively
//   * Contractiveness checking of alias declarations
//   * Explanation trees rooted at the failing sub-term, rendered as diagnostics
//
//
// Links:
//
// Subtyping recursive types (Amadio and Cardelli, 1993): https://doi.org/10.1145/155183.155231
//
// eqWAlizer error codes: https://fb.me/eqwalizer_errors
package compat
