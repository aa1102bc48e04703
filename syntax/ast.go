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

package syntax

//go:generate peggy -o grammar.go -t grammar.peggy

// A location is a byte range within the parsed text.
type location struct {
	start, end int
}

func (l location) span() (int, int) { return l.start, l.end }

// A texpr is a type as written, before built-in names are resolved.
type texpr interface {
	span() (int, int)
}

// An ident is an atom name. Text holds the name without quotes or escapes.
type ident struct {
	location
	Text   string
	Quoted bool
}

type atomExpr struct {
	location
	Name ident
}

// A callExpr is name(args): a built-in type or an alias reference.
type callExpr struct {
	location
	Name ident
	Args []texpr
}

type varExpr struct {
	location
	Name string
}

type tupleExpr struct {
	location
	Elems []texpr
}

type listExpr struct {
	location
	Elems []texpr
}

type funExpr struct {
	location
	Params []texpr
	Ret    texpr
}

type unionExpr struct {
	location
	Members []texpr
}

// A declExpr is `-type name(params) :: body.`
type declExpr struct {
	location
	Kind   ident
	Name   ident
	Params []texpr
	Body   texpr
}
