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

import (
	"strings"

	"github.com/eaburns/peggy/peg"
)

func at(start, end int) location { return location{start: start, end: end} }

func unquote(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

const (
	_Decl     int = 0
	_Top      int = 1
	_Union    int = 2
	_Alt      int = 3
	_Primary  int = 4
	_Term     int = 5
	_Fun      int = 6
	_Tuple    int = 7
	_List     int = 8
	_Call     int = 9
	_Atom     int = 10
	_Var      int = 11
	_Types    int = 12
	_Seq      int = 13
	_Next     int = 14
	_AtomName int = 15
	_Name     int = 16
	_Quoted   int = 17
	_Esc      int = 18
	_VarName  int = 19
	__        int = 20
	_Comment  int = 21
	_Space    int = 22
	_EOF      int = 23

	_N int = 24
)

type _Parser struct {
	text     string
	deltaPos [][_N]int32
	deltaErr [][_N]int32
	node     map[_key]*peg.Node
	fail     map[_key]*peg.Fail
	act      map[_key]interface{}
	lastFail int
	data     interface{}
}

type _key struct {
	start int
	rule  int
}

func _NewParser(text string) *_Parser {
	return &_Parser{
		text:     text,
		deltaPos: make([][_N]int32, len(text)+1),
		deltaErr: make([][_N]int32, len(text)+1),
		node:     make(map[_key]*peg.Node),
		fail:     make(map[_key]*peg.Fail),
		act:      make(map[_key]interface{}),
	}
}

func _max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func _memoize(parser *_Parser, rule, start, pos, perr int) (int, int) {
	parser.lastFail = perr
	derr := perr - start
	parser.deltaErr[start][rule] = int32(derr + 1)
	if pos >= 0 {
		dpos := pos - start
		parser.deltaPos[start][rule] = int32(dpos + 1)
		return dpos, derr
	}
	parser.deltaPos[start][rule] = -1
	return -1, derr
}

func _memo(parser *_Parser, rule, start int) (int, int, bool) {
	dp := parser.deltaPos[start][rule]
	if dp == 0 {
		return 0, 0, false
	}
	if dp > 0 {
		dp--
	}
	de := parser.deltaErr[start][rule] - 1
	return int(dp), int(de), true
}

func _failMemo(parser *_Parser, rule, start, errPos int) (int, *peg.Fail) {
	if start > parser.lastFail {
		return -1, &peg.Fail{}
	}
	dp := parser.deltaPos[start][rule]
	de := parser.deltaErr[start][rule]
	if start+int(de-1) < errPos {
		if dp > 0 {
			return start + int(dp-1), &peg.Fail{}
		}
		return -1, &peg.Fail{}
	}
	f := parser.fail[_key{start: start, rule: rule}]
	if dp < 0 && f != nil {
		return -1, f
	}
	if dp > 0 && f != nil {
		return start + int(dp-1), f
	}
	return start, nil
}

func _accept(parser *_Parser, f func(*_Parser, int) (int, int), pos, perr *int) bool {
	dp, de := f(parser, *pos)
	*perr = _max(*perr, *pos+de)
	if dp < 0 {
		return false
	}
	*pos += dp
	return true
}

func _node(parser *_Parser, f func(*_Parser, int) (int, *peg.Node), node *peg.Node, pos *int) bool {
	p, kid := f(parser, *pos)
	if kid == nil {
		return false
	}
	node.Kids = append(node.Kids, kid)
	*pos = p
	return true
}

func _fail(parser *_Parser, f func(*_Parser, int, int) (int, *peg.Fail), errPos int, node *peg.Fail, pos *int) bool {
	p, kid := f(parser, *pos, errPos)
	if kid.Want != "" || len(kid.Kids) > 0 {
		node.Kids = append(node.Kids, kid)
	}
	if p < 0 {
		return false
	}
	*pos = p
	return true
}

func _next(parser *_Parser, pos int) (rune, int) {
	r, w := peg.DecodeRuneInString(parser.text[pos:])
	return r, w
}

func _sub(parser *_Parser, start, end int, kids []*peg.Node) *peg.Node {
	node := &peg.Node{
		Text: parser.text[start:end],
		Kids: make([]*peg.Node, len(kids)),
	}
	copy(node.Kids, kids)
	return node
}

func _leaf(parser *_Parser, start, end int) *peg.Node {
	return &peg.Node{Text: parser.text[start:end]}
}

// A no-op function to mark a variable as used.
func use(interface{}) {}

func _DeclAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [5]string
	use(labels)
	if dp, de, ok := _memo(parser, _Decl, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ d:("-" _ kind:Name _ name:AtomName _ "(" params:Types _ ")" _ "::" body:Union _ "." {…}) _ EOF
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// d:("-" _ kind:Name _ name:AtomName _ "(" params:Types _ ")" _ "::" body:Union _ "." {…})
	{
		pos1 := pos
		// ("-" _ kind:Name _ name:AtomName _ "(" params:Types _ ")" _ "::" body:Union _ "." {…})
		// action
		// "-" _ kind:Name _ name:AtomName _ "(" params:Types _ ")" _ "::" body:Union _ "."
		// "-"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "-" {
			perr = _max(perr, pos)
			goto fail
		}
		pos++
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail
		}
		// kind:Name
		{
			pos3 := pos
			// Name
			if !_accept(parser, _NameAccepts, &pos, &perr) {
				goto fail
			}
			labels[0] = parser.text[pos3:pos]
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail
		}
		// name:AtomName
		{
			pos4 := pos
			// AtomName
			if !_accept(parser, _AtomNameAccepts, &pos, &perr) {
				goto fail
			}
			labels[1] = parser.text[pos4:pos]
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail
		}
		// "("
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
			perr = _max(perr, pos)
			goto fail
		}
		pos++
		// params:Types
		{
			pos5 := pos
			// Types
			if !_accept(parser, _TypesAccepts, &pos, &perr) {
				goto fail
			}
			labels[2] = parser.text[pos5:pos]
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail
		}
		// ")"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
			perr = _max(perr, pos)
			goto fail
		}
		pos++
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail
		}
		// "::"
		if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "::" {
			perr = _max(perr, pos)
			goto fail
		}
		pos += 2
		// body:Union
		{
			pos6 := pos
			// Union
			if !_accept(parser, _UnionAccepts, &pos, &perr) {
				goto fail
			}
			labels[3] = parser.text[pos6:pos]
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail
		}
		// "."
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "." {
			perr = _max(perr, pos)
			goto fail
		}
		pos++
		labels[4] = parser.text[pos1:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// EOF
	if !_accept(parser, _EOFAccepts, &pos, &perr) {
		goto fail
	}
	return _memoize(parser, _Decl, start, pos, perr)
fail:
	return _memoize(parser, _Decl, start, -1, perr)
}

func _DeclFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [5]string
	use(labels)
	pos, failure := _failMemo(parser, _Decl, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Decl",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Decl}
	// action
	// _ d:("-" _ kind:Name _ name:AtomName _ "(" params:Types _ ")" _ "::" body:Union _ "." {…}) _ EOF
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// d:("-" _ kind:Name _ name:AtomName _ "(" params:Types _ ")" _ "::" body:Union _ "." {…})
	{
		pos1 := pos
		// ("-" _ kind:Name _ name:AtomName _ "(" params:Types _ ")" _ "::" body:Union _ "." {…})
		// action
		// "-" _ kind:Name _ name:AtomName _ "(" params:Types _ ")" _ "::" body:Union _ "."
		// "-"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "-" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"-\"",
				})
			}
			goto fail
		}
		pos++
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail
		}
		// kind:Name
		{
			pos3 := pos
			// Name
			if !_fail(parser, _NameFail, errPos, failure, &pos) {
				goto fail
			}
			labels[0] = parser.text[pos3:pos]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail
		}
		// name:AtomName
		{
			pos4 := pos
			// AtomName
			if !_fail(parser, _AtomNameFail, errPos, failure, &pos) {
				goto fail
			}
			labels[1] = parser.text[pos4:pos]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail
		}
		// "("
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"(\"",
				})
			}
			goto fail
		}
		pos++
		// params:Types
		{
			pos5 := pos
			// Types
			if !_fail(parser, _TypesFail, errPos, failure, &pos) {
				goto fail
			}
			labels[2] = parser.text[pos5:pos]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail
		}
		// ")"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\")\"",
				})
			}
			goto fail
		}
		pos++
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail
		}
		// "::"
		if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "::" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"::\"",
				})
			}
			goto fail
		}
		pos += 2
		// body:Union
		{
			pos6 := pos
			// Union
			if !_fail(parser, _UnionFail, errPos, failure, &pos) {
				goto fail
			}
			labels[3] = parser.text[pos6:pos]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail
		}
		// "."
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "." {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\".\"",
				})
			}
			goto fail
		}
		pos++
		labels[4] = parser.text[pos1:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// EOF
	if !_fail(parser, _EOFFail, errPos, failure, &pos) {
		goto fail
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _DeclAction(parser *_Parser, start int) (int, *declExpr) {
	var labels [5]string
	use(labels)
	var label0 ident
	var label1 ident
	var label2 []texpr
	var label3 texpr
	var label4 declExpr
	dp := parser.deltaPos[start][_Decl]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Decl}
	n := parser.act[key]
	if n != nil {
		n := n.(declExpr)
		return start + int(dp-1), &n
	}
	var node declExpr
	pos := start
	// action
	{
		start0 := pos
		// _ d:("-" _ kind:Name _ name:AtomName _ "(" params:Types _ ")" _ "::" body:Union _ "." {…}) _ EOF
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// d:("-" _ kind:Name _ name:AtomName _ "(" params:Types _ ")" _ "::" body:Union _ "." {…})
		{
			pos1 := pos
			// ("-" _ kind:Name _ name:AtomName _ "(" params:Types _ ")" _ "::" body:Union _ "." {…})
			// action
			{
				start2 := pos
				// "-" _ kind:Name _ name:AtomName _ "(" params:Types _ ")" _ "::" body:Union _ "."
				// "-"
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "-" {
					goto fail
				}
				pos++
				// _
				if p, n := __Action(parser, pos); n == nil {
					goto fail
				} else {
					pos = p
				}
				// kind:Name
				{
					pos3 := pos
					// Name
					if p, n := _NameAction(parser, pos); n == nil {
						goto fail
					} else {
						label0 = *n
						pos = p
					}
					labels[0] = parser.text[pos3:pos]
				}
				// _
				if p, n := __Action(parser, pos); n == nil {
					goto fail
				} else {
					pos = p
				}
				// name:AtomName
				{
					pos4 := pos
					// AtomName
					if p, n := _AtomNameAction(parser, pos); n == nil {
						goto fail
					} else {
						label1 = *n
						pos = p
					}
					labels[1] = parser.text[pos4:pos]
				}
				// _
				if p, n := __Action(parser, pos); n == nil {
					goto fail
				} else {
					pos = p
				}
				// "("
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
					goto fail
				}
				pos++
				// params:Types
				{
					pos5 := pos
					// Types
					if p, n := _TypesAction(parser, pos); n == nil {
						goto fail
					} else {
						label2 = *n
						pos = p
					}
					labels[2] = parser.text[pos5:pos]
				}
				// _
				if p, n := __Action(parser, pos); n == nil {
					goto fail
				} else {
					pos = p
				}
				// ")"
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
					goto fail
				}
				pos++
				// _
				if p, n := __Action(parser, pos); n == nil {
					goto fail
				} else {
					pos = p
				}
				// "::"
				if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "::" {
					goto fail
				}
				pos += 2
				// body:Union
				{
					pos6 := pos
					// Union
					if p, n := _UnionAction(parser, pos); n == nil {
						goto fail
					} else {
						label3 = *n
						pos = p
					}
					labels[3] = parser.text[pos6:pos]
				}
				// _
				if p, n := __Action(parser, pos); n == nil {
					goto fail
				} else {
					pos = p
				}
				// "."
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "." {
					goto fail
				}
				pos++
				label4 = func(
					start, end int, body texpr, kind ident, name ident, params []texpr) declExpr {
					return declExpr{
						location: at(start, end),
						Kind:     kind,
						Name:     name,
						Params:   params,
						Body:     body,
					}
				}(
					start2, pos, label3, label0, label1, label2)
			}
			labels[4] = parser.text[pos1:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// EOF
		if p, n := _EOFAction(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		node = func(
			start, end int, body texpr, d declExpr, kind ident, name ident, params []texpr) declExpr {
			return declExpr(d)
		}(
			start0, pos, label3, label4, label0, label1, label2)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _TopAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Top, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// t:Union _ EOF
	// t:Union
	{
		pos1 := pos
		// Union
		if !_accept(parser, _UnionAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// EOF
	if !_accept(parser, _EOFAccepts, &pos, &perr) {
		goto fail
	}
	return _memoize(parser, _Top, start, pos, perr)
fail:
	return _memoize(parser, _Top, start, -1, perr)
}

func _TopFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Top, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Top",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Top}
	// action
	// t:Union _ EOF
	// t:Union
	{
		pos1 := pos
		// Union
		if !_fail(parser, _UnionFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// EOF
	if !_fail(parser, _EOFFail, errPos, failure, &pos) {
		goto fail
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _TopAction(parser *_Parser, start int) (int, *texpr) {
	var labels [1]string
	use(labels)
	var label0 texpr
	dp := parser.deltaPos[start][_Top]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Top}
	n := parser.act[key]
	if n != nil {
		n := n.(texpr)
		return start + int(dp-1), &n
	}
	var node texpr
	pos := start
	// action
	{
		start0 := pos
		// t:Union _ EOF
		// t:Union
		{
			pos1 := pos
			// Union
			if p, n := _UnionAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos1:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// EOF
		if p, n := _EOFAction(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		node = func(
			start, end int, t texpr) texpr {
			return texpr(t)
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _UnionAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [2]string
	use(labels)
	if dp, de, ok := _memo(parser, _Union, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// first:Primary rest:Alt*
	// first:Primary
	{
		pos1 := pos
		// Primary
		if !_accept(parser, _PrimaryAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// rest:Alt*
	{
		pos2 := pos
		// Alt*
		for {
			pos3 := pos
			// Alt
			if !_accept(parser, _AltAccepts, &pos, &perr) {
				goto fail5
			}
			continue
		fail5:
			pos = pos3
			break
		}
		labels[1] = parser.text[pos2:pos]
	}
	return _memoize(parser, _Union, start, pos, perr)
fail:
	return _memoize(parser, _Union, start, -1, perr)
}

func _UnionFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [2]string
	use(labels)
	pos, failure := _failMemo(parser, _Union, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Union",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Union}
	// action
	// first:Primary rest:Alt*
	// first:Primary
	{
		pos1 := pos
		// Primary
		if !_fail(parser, _PrimaryFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// rest:Alt*
	{
		pos2 := pos
		// Alt*
		for {
			pos3 := pos
			// Alt
			if !_fail(parser, _AltFail, errPos, failure, &pos) {
				goto fail5
			}
			continue
		fail5:
			pos = pos3
			break
		}
		labels[1] = parser.text[pos2:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _UnionAction(parser *_Parser, start int) (int, *texpr) {
	var labels [2]string
	use(labels)
	var label0 texpr
	var label1 []texpr
	dp := parser.deltaPos[start][_Union]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Union}
	n := parser.act[key]
	if n != nil {
		n := n.(texpr)
		return start + int(dp-1), &n
	}
	var node texpr
	pos := start
	// action
	{
		start0 := pos
		// first:Primary rest:Alt*
		// first:Primary
		{
			pos1 := pos
			// Primary
			if p, n := _PrimaryAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos1:pos]
		}
		// rest:Alt*
		{
			pos2 := pos
			// Alt*
			for {
				pos3 := pos
				var node4 texpr
				// Alt
				if p, n := _AltAction(parser, pos); n == nil {
					goto fail5
				} else {
					node4 = *n
					pos = p
				}
				label1 = append(label1, node4)
				continue
			fail5:
				pos = pos3
				break
			}
			labels[1] = parser.text[pos2:pos]
		}
		node = func(
			start, end int, first texpr, rest []texpr) texpr {
			if len(rest) == 0 {
				return texpr(first)
			}
			s, _ := first.span()
			return texpr(&unionExpr{location: at(s, end), Members: append([]texpr{first}, rest...)})
		}(
			start0, pos, label0, label1)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _AltAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Alt, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ "|" t:Primary
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "|"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "|" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// t:Primary
	{
		pos1 := pos
		// Primary
		if !_accept(parser, _PrimaryAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	return _memoize(parser, _Alt, start, pos, perr)
fail:
	return _memoize(parser, _Alt, start, -1, perr)
}

func _AltFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Alt, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Alt",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Alt}
	// action
	// _ "|" t:Primary
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "|"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "|" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"|\"",
			})
		}
		goto fail
	}
	pos++
	// t:Primary
	{
		pos1 := pos
		// Primary
		if !_fail(parser, _PrimaryFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _AltAction(parser *_Parser, start int) (int, *texpr) {
	var labels [1]string
	use(labels)
	var label0 texpr
	dp := parser.deltaPos[start][_Alt]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Alt}
	n := parser.act[key]
	if n != nil {
		n := n.(texpr)
		return start + int(dp-1), &n
	}
	var node texpr
	pos := start
	// action
	{
		start0 := pos
		// _ "|" t:Primary
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "|"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "|" {
			goto fail
		}
		pos++
		// t:Primary
		{
			pos1 := pos
			// Primary
			if p, n := _PrimaryAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos1:pos]
		}
		node = func(
			start, end int, t texpr) texpr {
			return texpr(t)
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _PrimaryAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Primary, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ t:Term
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// t:Term
	{
		pos1 := pos
		// Term
		if !_accept(parser, _TermAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	return _memoize(parser, _Primary, start, pos, perr)
fail:
	return _memoize(parser, _Primary, start, -1, perr)
}

func _PrimaryFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Primary, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Primary",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Primary}
	// action
	// _ t:Term
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// t:Term
	{
		pos1 := pos
		// Term
		if !_fail(parser, _TermFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _PrimaryAction(parser *_Parser, start int) (int, *texpr) {
	var labels [1]string
	use(labels)
	var label0 texpr
	dp := parser.deltaPos[start][_Primary]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Primary}
	n := parser.act[key]
	if n != nil {
		n := n.(texpr)
		return start + int(dp-1), &n
	}
	var node texpr
	pos := start
	// action
	{
		start0 := pos
		// _ t:Term
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// t:Term
		{
			pos1 := pos
			// Term
			if p, n := _TermAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos1:pos]
		}
		node = func(
			start, end int, t texpr) texpr {
			return texpr(t)
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _TermAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Term, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// Fun/Tuple/List/Call/Atom/Var
	{
		pos1 := pos
		// Fun
		if !_accept(parser, _FunAccepts, &pos, &perr) {
			goto fail3
		}
		goto ok0
	fail3:
		pos = pos1
		// Tuple
		if !_accept(parser, _TupleAccepts, &pos, &perr) {
			goto fail4
		}
		goto ok0
	fail4:
		pos = pos1
		// List
		if !_accept(parser, _ListAccepts, &pos, &perr) {
			goto fail5
		}
		goto ok0
	fail5:
		pos = pos1
		// Call
		if !_accept(parser, _CallAccepts, &pos, &perr) {
			goto fail6
		}
		goto ok0
	fail6:
		pos = pos1
		// Atom
		if !_accept(parser, _AtomAccepts, &pos, &perr) {
			goto fail7
		}
		goto ok0
	fail7:
		pos = pos1
		// Var
		if !_accept(parser, _VarAccepts, &pos, &perr) {
			goto fail8
		}
		goto ok0
	fail8:
		pos = pos1
		goto fail
	ok0:
	}
	return _memoize(parser, _Term, start, pos, perr)
fail:
	return _memoize(parser, _Term, start, -1, perr)
}

func _TermFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Term, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Term",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Term}
	// Fun/Tuple/List/Call/Atom/Var
	{
		pos1 := pos
		// Fun
		if !_fail(parser, _FunFail, errPos, failure, &pos) {
			goto fail3
		}
		goto ok0
	fail3:
		pos = pos1
		// Tuple
		if !_fail(parser, _TupleFail, errPos, failure, &pos) {
			goto fail4
		}
		goto ok0
	fail4:
		pos = pos1
		// List
		if !_fail(parser, _ListFail, errPos, failure, &pos) {
			goto fail5
		}
		goto ok0
	fail5:
		pos = pos1
		// Call
		if !_fail(parser, _CallFail, errPos, failure, &pos) {
			goto fail6
		}
		goto ok0
	fail6:
		pos = pos1
		// Atom
		if !_fail(parser, _AtomFail, errPos, failure, &pos) {
			goto fail7
		}
		goto ok0
	fail7:
		pos = pos1
		// Var
		if !_fail(parser, _VarFail, errPos, failure, &pos) {
			goto fail8
		}
		goto ok0
	fail8:
		pos = pos1
		goto fail
	ok0:
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _TermAction(parser *_Parser, start int) (int, *texpr) {
	dp := parser.deltaPos[start][_Term]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Term}
	n := parser.act[key]
	if n != nil {
		n := n.(texpr)
		return start + int(dp-1), &n
	}
	var node texpr
	pos := start
	// Fun/Tuple/List/Call/Atom/Var
	{
		pos1 := pos
		var node2 texpr
		// Fun
		if p, n := _FunAction(parser, pos); n == nil {
			goto fail3
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail3:
		node = node2
		pos = pos1
		// Tuple
		if p, n := _TupleAction(parser, pos); n == nil {
			goto fail4
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail4:
		node = node2
		pos = pos1
		// List
		if p, n := _ListAction(parser, pos); n == nil {
			goto fail5
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail5:
		node = node2
		pos = pos1
		// Call
		if p, n := _CallAction(parser, pos); n == nil {
			goto fail6
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail6:
		node = node2
		pos = pos1
		// Atom
		if p, n := _AtomAction(parser, pos); n == nil {
			goto fail7
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail7:
		node = node2
		pos = pos1
		// Var
		if p, n := _VarAction(parser, pos); n == nil {
			goto fail8
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail8:
		node = node2
		pos = pos1
		goto fail
	ok0:
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _FunAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [2]string
	use(labels)
	if dp, de, ok := _memo(parser, _Fun, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// "fun" _ "(" _ "(" params:Types _ ")" _ "->" ret:Union _ ")"
	// "fun"
	if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "fun" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 3
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "("
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "("
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// params:Types
	{
		pos1 := pos
		// Types
		if !_accept(parser, _TypesAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// ")"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "->"
	if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "->" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 2
	// ret:Union
	{
		pos2 := pos
		// Union
		if !_accept(parser, _UnionAccepts, &pos, &perr) {
			goto fail
		}
		labels[1] = parser.text[pos2:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// ")"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	return _memoize(parser, _Fun, start, pos, perr)
fail:
	return _memoize(parser, _Fun, start, -1, perr)
}

func _FunFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [2]string
	use(labels)
	pos, failure := _failMemo(parser, _Fun, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Fun",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Fun}
	// action
	// "fun" _ "(" _ "(" params:Types _ ")" _ "->" ret:Union _ ")"
	// "fun"
	if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "fun" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"fun\"",
			})
		}
		goto fail
	}
	pos += 3
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "("
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"(\"",
			})
		}
		goto fail
	}
	pos++
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "("
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"(\"",
			})
		}
		goto fail
	}
	pos++
	// params:Types
	{
		pos1 := pos
		// Types
		if !_fail(parser, _TypesFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// ")"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\")\"",
			})
		}
		goto fail
	}
	pos++
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "->"
	if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "->" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"->\"",
			})
		}
		goto fail
	}
	pos += 2
	// ret:Union
	{
		pos2 := pos
		// Union
		if !_fail(parser, _UnionFail, errPos, failure, &pos) {
			goto fail
		}
		labels[1] = parser.text[pos2:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// ")"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\")\"",
			})
		}
		goto fail
	}
	pos++
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _FunAction(parser *_Parser, start int) (int, *texpr) {
	var labels [2]string
	use(labels)
	var label0 []texpr
	var label1 texpr
	dp := parser.deltaPos[start][_Fun]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Fun}
	n := parser.act[key]
	if n != nil {
		n := n.(texpr)
		return start + int(dp-1), &n
	}
	var node texpr
	pos := start
	// action
	{
		start0 := pos
		// "fun" _ "(" _ "(" params:Types _ ")" _ "->" ret:Union _ ")"
		// "fun"
		if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "fun" {
			goto fail
		}
		pos += 3
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "("
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
			goto fail
		}
		pos++
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "("
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
			goto fail
		}
		pos++
		// params:Types
		{
			pos1 := pos
			// Types
			if p, n := _TypesAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos1:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// ")"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
			goto fail
		}
		pos++
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "->"
		if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "->" {
			goto fail
		}
		pos += 2
		// ret:Union
		{
			pos2 := pos
			// Union
			if p, n := _UnionAction(parser, pos); n == nil {
				goto fail
			} else {
				label1 = *n
				pos = p
			}
			labels[1] = parser.text[pos2:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// ")"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
			goto fail
		}
		pos++
		node = func(
			start, end int, params []texpr, ret texpr) texpr {
			return texpr(&funExpr{location: at(start, end), Params: params, Ret: ret})
		}(
			start0, pos, label0, label1)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _TupleAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Tuple, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// "{" elems:Types _ "}"
	// "{"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// elems:Types
	{
		pos1 := pos
		// Types
		if !_accept(parser, _TypesAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "}"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	return _memoize(parser, _Tuple, start, pos, perr)
fail:
	return _memoize(parser, _Tuple, start, -1, perr)
}

func _TupleFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Tuple, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Tuple",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Tuple}
	// action
	// "{" elems:Types _ "}"
	// "{"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"{\"",
			})
		}
		goto fail
	}
	pos++
	// elems:Types
	{
		pos1 := pos
		// Types
		if !_fail(parser, _TypesFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "}"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"}\"",
			})
		}
		goto fail
	}
	pos++
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _TupleAction(parser *_Parser, start int) (int, *texpr) {
	var labels [1]string
	use(labels)
	var label0 []texpr
	dp := parser.deltaPos[start][_Tuple]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Tuple}
	n := parser.act[key]
	if n != nil {
		n := n.(texpr)
		return start + int(dp-1), &n
	}
	var node texpr
	pos := start
	// action
	{
		start0 := pos
		// "{" elems:Types _ "}"
		// "{"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
			goto fail
		}
		pos++
		// elems:Types
		{
			pos1 := pos
			// Types
			if p, n := _TypesAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos1:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "}"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
			goto fail
		}
		pos++
		node = func(
			start, end int, elems []texpr) texpr {
			return texpr(&tupleExpr{location: at(start, end), Elems: elems})
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _ListAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _List, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// "[" elems:Types _ "]"
	// "["
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// elems:Types
	{
		pos1 := pos
		// Types
		if !_accept(parser, _TypesAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "]"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	return _memoize(parser, _List, start, pos, perr)
fail:
	return _memoize(parser, _List, start, -1, perr)
}

func _ListFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _List, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "List",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _List}
	// action
	// "[" elems:Types _ "]"
	// "["
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"[\"",
			})
		}
		goto fail
	}
	pos++
	// elems:Types
	{
		pos1 := pos
		// Types
		if !_fail(parser, _TypesFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "]"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"]\"",
			})
		}
		goto fail
	}
	pos++
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _ListAction(parser *_Parser, start int) (int, *texpr) {
	var labels [1]string
	use(labels)
	var label0 []texpr
	dp := parser.deltaPos[start][_List]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _List}
	n := parser.act[key]
	if n != nil {
		n := n.(texpr)
		return start + int(dp-1), &n
	}
	var node texpr
	pos := start
	// action
	{
		start0 := pos
		// "[" elems:Types _ "]"
		// "["
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
			goto fail
		}
		pos++
		// elems:Types
		{
			pos1 := pos
			// Types
			if p, n := _TypesAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos1:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "]"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
			goto fail
		}
		pos++
		node = func(
			start, end int, elems []texpr) texpr {
			return texpr(&listExpr{location: at(start, end), Elems: elems})
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _CallAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [2]string
	use(labels)
	if dp, de, ok := _memo(parser, _Call, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// name:AtomName _ "(" args:Types _ ")"
	// name:AtomName
	{
		pos1 := pos
		// AtomName
		if !_accept(parser, _AtomNameAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "("
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// args:Types
	{
		pos2 := pos
		// Types
		if !_accept(parser, _TypesAccepts, &pos, &perr) {
			goto fail
		}
		labels[1] = parser.text[pos2:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// ")"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	return _memoize(parser, _Call, start, pos, perr)
fail:
	return _memoize(parser, _Call, start, -1, perr)
}

func _CallFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [2]string
	use(labels)
	pos, failure := _failMemo(parser, _Call, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Call",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Call}
	// action
	// name:AtomName _ "(" args:Types _ ")"
	// name:AtomName
	{
		pos1 := pos
		// AtomName
		if !_fail(parser, _AtomNameFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "("
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"(\"",
			})
		}
		goto fail
	}
	pos++
	// args:Types
	{
		pos2 := pos
		// Types
		if !_fail(parser, _TypesFail, errPos, failure, &pos) {
			goto fail
		}
		labels[1] = parser.text[pos2:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// ")"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\")\"",
			})
		}
		goto fail
	}
	pos++
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _CallAction(parser *_Parser, start int) (int, *texpr) {
	var labels [2]string
	use(labels)
	var label0 ident
	var label1 []texpr
	dp := parser.deltaPos[start][_Call]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Call}
	n := parser.act[key]
	if n != nil {
		n := n.(texpr)
		return start + int(dp-1), &n
	}
	var node texpr
	pos := start
	// action
	{
		start0 := pos
		// name:AtomName _ "(" args:Types _ ")"
		// name:AtomName
		{
			pos1 := pos
			// AtomName
			if p, n := _AtomNameAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos1:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "("
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
			goto fail
		}
		pos++
		// args:Types
		{
			pos2 := pos
			// Types
			if p, n := _TypesAction(parser, pos); n == nil {
				goto fail
			} else {
				label1 = *n
				pos = p
			}
			labels[1] = parser.text[pos2:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// ")"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
			goto fail
		}
		pos++
		node = func(
			start, end int, args []texpr, name ident) texpr {
			return texpr(&callExpr{location: at(start, end), Name: name, Args: args})
		}(
			start0, pos, label1, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _AtomAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Atom, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// name:AtomName
	{
		pos1 := pos
		// AtomName
		if !_accept(parser, _AtomNameAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	return _memoize(parser, _Atom, start, pos, perr)
fail:
	return _memoize(parser, _Atom, start, -1, perr)
}

func _AtomFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Atom, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Atom",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Atom}
	// action
	// name:AtomName
	{
		pos1 := pos
		// AtomName
		if !_fail(parser, _AtomNameFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _AtomAction(parser *_Parser, start int) (int, *texpr) {
	var labels [1]string
	use(labels)
	var label0 ident
	dp := parser.deltaPos[start][_Atom]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Atom}
	n := parser.act[key]
	if n != nil {
		n := n.(texpr)
		return start + int(dp-1), &n
	}
	var node texpr
	pos := start
	// action
	{
		start0 := pos
		// name:AtomName
		{
			pos1 := pos
			// AtomName
			if p, n := _AtomNameAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos1:pos]
		}
		node = func(
			start, end int, name ident) texpr {
			return texpr(&atomExpr{location: at(start, end), Name: name})
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _VarAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Var, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// name:VarName
	{
		pos1 := pos
		// VarName
		if !_accept(parser, _VarNameAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	return _memoize(parser, _Var, start, pos, perr)
fail:
	return _memoize(parser, _Var, start, -1, perr)
}

func _VarFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Var, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Var",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Var}
	// action
	// name:VarName
	{
		pos1 := pos
		// VarName
		if !_fail(parser, _VarNameFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _VarAction(parser *_Parser, start int) (int, *texpr) {
	var labels [1]string
	use(labels)
	var label0 string
	dp := parser.deltaPos[start][_Var]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Var}
	n := parser.act[key]
	if n != nil {
		n := n.(texpr)
		return start + int(dp-1), &n
	}
	var node texpr
	pos := start
	// action
	{
		start0 := pos
		// name:VarName
		{
			pos1 := pos
			// VarName
			if p, n := _VarNameAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos1:pos]
		}
		node = func(
			start, end int, name string) texpr {
			return texpr(&varExpr{location: at(start, end), Name: name})
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _TypesAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Types, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// ts:Seq?
	{
		pos1 := pos
		// Seq?
		{
			pos2 := pos
			// Seq
			if !_accept(parser, _SeqAccepts, &pos, &perr) {
				goto fail3
			}
			goto ok4
		fail3:
			pos = pos2
		ok4:
		}
		labels[0] = parser.text[pos1:pos]
	}
	return _memoize(parser, _Types, start, pos, perr)
}

func _TypesFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Types, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Types",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Types}
	// action
	// ts:Seq?
	{
		pos1 := pos
		// Seq?
		{
			pos2 := pos
			// Seq
			if !_fail(parser, _SeqFail, errPos, failure, &pos) {
				goto fail3
			}
			goto ok4
		fail3:
			pos = pos2
		ok4:
		}
		labels[0] = parser.text[pos1:pos]
	}
	parser.fail[key] = failure
	return pos, failure
}

func _TypesAction(parser *_Parser, start int) (int, *[]texpr) {
	var labels [1]string
	use(labels)
	var label0 *[]texpr
	dp := parser.deltaPos[start][_Types]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Types}
	n := parser.act[key]
	if n != nil {
		n := n.([]texpr)
		return start + int(dp-1), &n
	}
	var node []texpr
	pos := start
	// action
	{
		start0 := pos
		// ts:Seq?
		{
			pos1 := pos
			// Seq?
			{
				pos2 := pos
				label0 = new([]texpr)
				// Seq
				if p, n := _SeqAction(parser, pos); n == nil {
					goto fail3
				} else {
					*label0 = *n
					pos = p
				}
				goto ok4
			fail3:
				label0 = nil
				pos = pos2
			ok4:
			}
			labels[0] = parser.text[pos1:pos]
		}
		node = func(
			start, end int, ts *[]texpr) []texpr {
			if ts == nil {
				return []texpr(nil)
			}
			return []texpr(*ts)
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
}

func _SeqAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [2]string
	use(labels)
	if dp, de, ok := _memo(parser, _Seq, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// first:Union rest:Next*
	// first:Union
	{
		pos1 := pos
		// Union
		if !_accept(parser, _UnionAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// rest:Next*
	{
		pos2 := pos
		// Next*
		for {
			pos3 := pos
			// Next
			if !_accept(parser, _NextAccepts, &pos, &perr) {
				goto fail5
			}
			continue
		fail5:
			pos = pos3
			break
		}
		labels[1] = parser.text[pos2:pos]
	}
	return _memoize(parser, _Seq, start, pos, perr)
fail:
	return _memoize(parser, _Seq, start, -1, perr)
}

func _SeqFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [2]string
	use(labels)
	pos, failure := _failMemo(parser, _Seq, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Seq",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Seq}
	// action
	// first:Union rest:Next*
	// first:Union
	{
		pos1 := pos
		// Union
		if !_fail(parser, _UnionFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// rest:Next*
	{
		pos2 := pos
		// Next*
		for {
			pos3 := pos
			// Next
			if !_fail(parser, _NextFail, errPos, failure, &pos) {
				goto fail5
			}
			continue
		fail5:
			pos = pos3
			break
		}
		labels[1] = parser.text[pos2:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _SeqAction(parser *_Parser, start int) (int, *[]texpr) {
	var labels [2]string
	use(labels)
	var label0 texpr
	var label1 []texpr
	dp := parser.deltaPos[start][_Seq]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Seq}
	n := parser.act[key]
	if n != nil {
		n := n.([]texpr)
		return start + int(dp-1), &n
	}
	var node []texpr
	pos := start
	// action
	{
		start0 := pos
		// first:Union rest:Next*
		// first:Union
		{
			pos1 := pos
			// Union
			if p, n := _UnionAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos1:pos]
		}
		// rest:Next*
		{
			pos2 := pos
			// Next*
			for {
				pos3 := pos
				var node4 texpr
				// Next
				if p, n := _NextAction(parser, pos); n == nil {
					goto fail5
				} else {
					node4 = *n
					pos = p
				}
				label1 = append(label1, node4)
				continue
			fail5:
				pos = pos3
				break
			}
			labels[1] = parser.text[pos2:pos]
		}
		node = func(
			start, end int, first texpr, rest []texpr) []texpr {
			return []texpr(append([]texpr{first}, rest...))
		}(
			start0, pos, label0, label1)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _NextAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Next, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ "," t:Union
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// ","
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// t:Union
	{
		pos1 := pos
		// Union
		if !_accept(parser, _UnionAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	return _memoize(parser, _Next, start, pos, perr)
fail:
	return _memoize(parser, _Next, start, -1, perr)
}

func _NextFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Next, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Next",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Next}
	// action
	// _ "," t:Union
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// ","
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\",\"",
			})
		}
		goto fail
	}
	pos++
	// t:Union
	{
		pos1 := pos
		// Union
		if !_fail(parser, _UnionFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _NextAction(parser *_Parser, start int) (int, *texpr) {
	var labels [1]string
	use(labels)
	var label0 texpr
	dp := parser.deltaPos[start][_Next]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Next}
	n := parser.act[key]
	if n != nil {
		n := n.(texpr)
		return start + int(dp-1), &n
	}
	var node texpr
	pos := start
	// action
	{
		start0 := pos
		// _ "," t:Union
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// ","
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
			goto fail
		}
		pos++
		// t:Union
		{
			pos1 := pos
			// Union
			if p, n := _UnionAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos1:pos]
		}
		node = func(
			start, end int, t texpr) texpr {
			return texpr(t)
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _AtomNameAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _AtomName, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// Name/Quoted
	{
		pos1 := pos
		// Name
		if !_accept(parser, _NameAccepts, &pos, &perr) {
			goto fail3
		}
		goto ok0
	fail3:
		pos = pos1
		// Quoted
		if !_accept(parser, _QuotedAccepts, &pos, &perr) {
			goto fail4
		}
		goto ok0
	fail4:
		pos = pos1
		goto fail
	ok0:
	}
	return _memoize(parser, _AtomName, start, pos, perr)
fail:
	return _memoize(parser, _AtomName, start, -1, perr)
}

func _AtomNameFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _AtomName, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "AtomName",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _AtomName}
	// Name/Quoted
	{
		pos1 := pos
		// Name
		if !_fail(parser, _NameFail, errPos, failure, &pos) {
			goto fail3
		}
		goto ok0
	fail3:
		pos = pos1
		// Quoted
		if !_fail(parser, _QuotedFail, errPos, failure, &pos) {
			goto fail4
		}
		goto ok0
	fail4:
		pos = pos1
		goto fail
	ok0:
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _AtomNameAction(parser *_Parser, start int) (int, *ident) {
	dp := parser.deltaPos[start][_AtomName]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _AtomName}
	n := parser.act[key]
	if n != nil {
		n := n.(ident)
		return start + int(dp-1), &n
	}
	var node ident
	pos := start
	// Name/Quoted
	{
		pos1 := pos
		var node2 ident
		// Name
		if p, n := _NameAction(parser, pos); n == nil {
			goto fail3
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail3:
		node = node2
		pos = pos1
		// Quoted
		if p, n := _QuotedAction(parser, pos); n == nil {
			goto fail4
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail4:
		node = node2
		pos = pos1
		goto fail
	ok0:
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _NameAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Name, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// [a-z] [a-zA-Z0-9_@]*
	// [a-z]
	if r, w := _next(parser, pos); r < 'a' || r > 'z' {
		perr = _max(perr, pos)
		goto fail
	} else {
		pos += w
	}
	// [a-zA-Z0-9_@]*
	for {
		pos1 := pos
		// [a-zA-Z0-9_@]
		if r, w := _next(parser, pos); (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' && r != '@' {
			perr = _max(perr, pos)
			goto fail3
		} else {
			pos += w
		}
		continue
	fail3:
		pos = pos1
		break
	}
	perr = start
	return _memoize(parser, _Name, start, pos, perr)
fail:
	return _memoize(parser, _Name, start, -1, perr)
}

func _NameFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Name, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Name",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Name}
	// action
	// [a-z] [a-zA-Z0-9_@]*
	// [a-z]
	if r, w := _next(parser, pos); r < 'a' || r > 'z' {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "[a-z]",
			})
		}
		goto fail
	} else {
		pos += w
	}
	// [a-zA-Z0-9_@]*
	for {
		pos1 := pos
		// [a-zA-Z0-9_@]
		if r, w := _next(parser, pos); (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' && r != '@' {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "[a-zA-Z0-9_@]",
				})
			}
			goto fail3
		} else {
			pos += w
		}
		continue
	fail3:
		pos = pos1
		break
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
fail:
	failure.Kids = nil
	failure.Want = "atom"
	parser.fail[key] = failure
	return -1, failure
}

func _NameAction(parser *_Parser, start int) (int, *ident) {
	dp := parser.deltaPos[start][_Name]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Name}
	n := parser.act[key]
	if n != nil {
		n := n.(ident)
		return start + int(dp-1), &n
	}
	var node ident
	pos := start
	// action
	{
		start0 := pos
		// [a-z] [a-zA-Z0-9_@]*
		// [a-z]
		if r, w := _next(parser, pos); r < 'a' || r > 'z' {
			goto fail
		} else {
			pos += w
		}
		// [a-zA-Z0-9_@]*
		for {
			pos1 := pos
			// [a-zA-Z0-9_@]
			if r, w := _next(parser, pos); (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' && r != '@' {
				goto fail3
			} else {
				pos += w
			}
			continue
		fail3:
			pos = pos1
			break
		}
		node = func(
			start, end int) ident {
			return ident{location: at(start, end), Text: parser.text[start:end]}
		}(
			start0, pos)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _QuotedAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Quoted, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// "'" (Esc/[^'\\\n])* "'"
	// "'"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "'" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// (Esc/[^'\\\n])*
	for {
		pos1 := pos
		// (Esc/[^'\\\n])
		// Esc/[^'\\\n]
		{
			pos5 := pos
			// Esc
			if !_accept(parser, _EscAccepts, &pos, &perr) {
				goto fail7
			}
			goto ok4
		fail7:
			pos = pos5
			// [^'\\\n]
			if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' || r == '\'' || r == '\\' || r == '\n' {
				perr = _max(perr, pos)
				goto fail8
			} else {
				pos += w
			}
			goto ok4
		fail8:
			pos = pos5
			goto fail3
		ok4:
		}
		continue
	fail3:
		pos = pos1
		break
	}
	// "'"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "'" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	perr = start
	return _memoize(parser, _Quoted, start, pos, perr)
fail:
	return _memoize(parser, _Quoted, start, -1, perr)
}

func _QuotedFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Quoted, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Quoted",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Quoted}
	// action
	// "'" (Esc/[^'\\\n])* "'"
	// "'"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "'" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"'\"",
			})
		}
		goto fail
	}
	pos++
	// (Esc/[^'\\\n])*
	for {
		pos1 := pos
		// (Esc/[^'\\\n])
		// Esc/[^'\\\n]
		{
			pos5 := pos
			// Esc
			if !_fail(parser, _EscFail, errPos, failure, &pos) {
				goto fail7
			}
			goto ok4
		fail7:
			pos = pos5
			// [^'\\\n]
			if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' || r == '\'' || r == '\\' || r == '\n' {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "[^'\\\\\\n]",
					})
				}
				goto fail8
			} else {
				pos += w
			}
			goto ok4
		fail8:
			pos = pos5
			goto fail3
		ok4:
		}
		continue
	fail3:
		pos = pos1
		break
	}
	// "'"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "'" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"'\"",
			})
		}
		goto fail
	}
	pos++
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
fail:
	failure.Kids = nil
	failure.Want = "quoted atom"
	parser.fail[key] = failure
	return -1, failure
}

func _QuotedAction(parser *_Parser, start int) (int, *ident) {
	dp := parser.deltaPos[start][_Quoted]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Quoted}
	n := parser.act[key]
	if n != nil {
		n := n.(ident)
		return start + int(dp-1), &n
	}
	var node ident
	pos := start
	// action
	{
		start0 := pos
		// "'" (Esc/[^'\\\n])* "'"
		// "'"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "'" {
			goto fail
		}
		pos++
		// (Esc/[^'\\\n])*
		for {
			pos1 := pos
			// (Esc/[^'\\\n])
			// Esc/[^'\\\n]
			{
				pos5 := pos
				// Esc
				if p, n := _EscAction(parser, pos); n == nil {
					goto fail7
				} else {
					pos = p
				}
				goto ok4
			fail7:
				pos = pos5
				// [^'\\\n]
				if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' || r == '\'' || r == '\\' || r == '\n' {
					goto fail8
				} else {
					pos += w
				}
				goto ok4
			fail8:
				pos = pos5
				goto fail3
			ok4:
			}
			continue
		fail3:
			pos = pos1
			break
		}
		// "'"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "'" {
			goto fail
		}
		pos++
		node = func(
			start, end int) ident {
			return ident{location: at(start, end), Text: unquote(parser.text[start+1 : end-1]), Quoted: true}
		}(
			start0, pos)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _EscAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Esc, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// "\\" .
	// "\\"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\\" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// .
	if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
		perr = _max(perr, pos)
		goto fail
	} else {
		pos += w
	}
	return _memoize(parser, _Esc, start, pos, perr)
fail:
	return _memoize(parser, _Esc, start, -1, perr)
}

func _EscFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Esc, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Esc",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Esc}
	// "\\" .
	// "\\"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\\" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"\\\\\"",
			})
		}
		goto fail
	}
	pos++
	// .
	if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: ".",
			})
		}
		goto fail
	} else {
		pos += w
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _EscAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_Esc]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Esc}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// "\\" .
	{
		var node0 string
		// "\\"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\\" {
			goto fail
		}
		node0 = parser.text[pos : pos+1]
		pos++
		node, node0 = node+node0, ""
		// .
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
			goto fail
		} else {
			node0 = parser.text[pos : pos+w]
			pos += w
		}
		node, node0 = node+node0, ""
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _VarNameAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _VarName, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// [A-Z_] [a-zA-Z0-9_@]*
	// [A-Z_]
	if r, w := _next(parser, pos); (r < 'A' || r > 'Z') && r != '_' {
		perr = _max(perr, pos)
		goto fail
	} else {
		pos += w
	}
	// [a-zA-Z0-9_@]*
	for {
		pos1 := pos
		// [a-zA-Z0-9_@]
		if r, w := _next(parser, pos); (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' && r != '@' {
			perr = _max(perr, pos)
			goto fail3
		} else {
			pos += w
		}
		continue
	fail3:
		pos = pos1
		break
	}
	perr = start
	return _memoize(parser, _VarName, start, pos, perr)
fail:
	return _memoize(parser, _VarName, start, -1, perr)
}

func _VarNameFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _VarName, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "VarName",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _VarName}
	// action
	// [A-Z_] [a-zA-Z0-9_@]*
	// [A-Z_]
	if r, w := _next(parser, pos); (r < 'A' || r > 'Z') && r != '_' {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "[A-Z_]",
			})
		}
		goto fail
	} else {
		pos += w
	}
	// [a-zA-Z0-9_@]*
	for {
		pos1 := pos
		// [a-zA-Z0-9_@]
		if r, w := _next(parser, pos); (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' && r != '@' {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "[a-zA-Z0-9_@]",
				})
			}
			goto fail3
		} else {
			pos += w
		}
		continue
	fail3:
		pos = pos1
		break
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
fail:
	failure.Kids = nil
	failure.Want = "variable"
	parser.fail[key] = failure
	return -1, failure
}

func _VarNameAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_VarName]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _VarName}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// action
	{
		start0 := pos
		// [A-Z_] [a-zA-Z0-9_@]*
		// [A-Z_]
		if r, w := _next(parser, pos); (r < 'A' || r > 'Z') && r != '_' {
			goto fail
		} else {
			pos += w
		}
		// [a-zA-Z0-9_@]*
		for {
			pos1 := pos
			// [a-zA-Z0-9_@]
			if r, w := _next(parser, pos); (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' && r != '@' {
				goto fail3
			} else {
				pos += w
			}
			continue
		fail3:
			pos = pos1
			break
		}
		node = func(
			start, end int) string {
			return string(parser.text[start:end])
		}(
			start0, pos)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func __Accepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, __, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// (Space/Comment)*
	for {
		pos0 := pos
		// (Space/Comment)
		// Space/Comment
		{
			pos4 := pos
			// Space
			if !_accept(parser, _SpaceAccepts, &pos, &perr) {
				goto fail6
			}
			goto ok3
		fail6:
			pos = pos4
			// Comment
			if !_accept(parser, _CommentAccepts, &pos, &perr) {
				goto fail7
			}
			goto ok3
		fail7:
			pos = pos4
			goto fail2
		ok3:
		}
		continue
	fail2:
		pos = pos0
		break
	}
	perr = start
	return _memoize(parser, __, start, pos, perr)
}

func __Fail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, __, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "_",
		Pos:  int(start),
	}
	key := _key{start: start, rule: __}
	// (Space/Comment)*
	for {
		pos0 := pos
		// (Space/Comment)
		// Space/Comment
		{
			pos4 := pos
			// Space
			if !_fail(parser, _SpaceFail, errPos, failure, &pos) {
				goto fail6
			}
			goto ok3
		fail6:
			pos = pos4
			// Comment
			if !_fail(parser, _CommentFail, errPos, failure, &pos) {
				goto fail7
			}
			goto ok3
		fail7:
			pos = pos4
			goto fail2
		ok3:
		}
		continue
	fail2:
		pos = pos0
		break
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
}

func __Action(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][__]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: __}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// (Space/Comment)*
	for {
		pos0 := pos
		var node1 string
		// (Space/Comment)
		// Space/Comment
		{
			pos4 := pos
			var node5 string
			// Space
			if p, n := _SpaceAction(parser, pos); n == nil {
				goto fail6
			} else {
				node1 = *n
				pos = p
			}
			goto ok3
		fail6:
			node1 = node5
			pos = pos4
			// Comment
			if p, n := _CommentAction(parser, pos); n == nil {
				goto fail7
			} else {
				node1 = *n
				pos = p
			}
			goto ok3
		fail7:
			node1 = node5
			pos = pos4
			goto fail2
		ok3:
		}
		node += node1
		continue
	fail2:
		pos = pos0
		break
	}
	parser.act[key] = node
	return pos, &node
}

func _CommentAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Comment, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// "%" (!"\n" .)*
	// "%"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "%" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// (!"\n" .)*
	for {
		pos0 := pos
		// (!"\n" .)
		// !"\n" .
		// !"\n"
		{
			pos4 := pos
			perr5 := perr
			// "\n"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\n" {
				perr = _max(perr, pos)
				goto ok3
			}
			pos++
			pos = pos4
			perr = _max(perr5, pos)
			goto fail2
		ok3:
			pos = pos4
			perr = perr5
		}
		// .
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
			perr = _max(perr, pos)
			goto fail2
		} else {
			pos += w
		}
		continue
	fail2:
		pos = pos0
		break
	}
	return _memoize(parser, _Comment, start, pos, perr)
fail:
	return _memoize(parser, _Comment, start, -1, perr)
}

func _CommentFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Comment, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Comment",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Comment}
	// "%" (!"\n" .)*
	// "%"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "%" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"%\"",
			})
		}
		goto fail
	}
	pos++
	// (!"\n" .)*
	for {
		pos0 := pos
		// (!"\n" .)
		// !"\n" .
		// !"\n"
		{
			pos4 := pos
			nkids5 := len(failure.Kids)
			// "\n"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\n" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"\\n\"",
					})
				}
				goto ok3
			}
			pos++
			pos = pos4
			failure.Kids = failure.Kids[:nkids5]
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "!\"\\n\"",
				})
			}
			goto fail2
		ok3:
			pos = pos4
			failure.Kids = failure.Kids[:nkids5]
		}
		// .
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: ".",
				})
			}
			goto fail2
		} else {
			pos += w
		}
		continue
	fail2:
		pos = pos0
		break
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _CommentAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_Comment]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Comment}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// "%" (!"\n" .)*
	{
		var node0 string
		// "%"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "%" {
			goto fail
		}
		node0 = parser.text[pos : pos+1]
		pos++
		node, node0 = node+node0, ""
		// (!"\n" .)*
		for {
			pos1 := pos
			var node2 string
			// (!"\n" .)
			// !"\n" .
			{
				var node4 string
				// !"\n"
				{
					pos6 := pos
					// "\n"
					if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\n" {
						goto ok5
					}
					pos++
					pos = pos6
					goto fail3
				ok5:
					pos = pos6
					node4 = ""
				}
				node2, node4 = node2+node4, ""
				// .
				if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
					goto fail3
				} else {
					node4 = parser.text[pos : pos+w]
					pos += w
				}
				node2, node4 = node2+node4, ""
			}
			node0 += node2
			continue
		fail3:
			pos = pos1
			break
		}
		node, node0 = node+node0, ""
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _SpaceAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Space, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// " "/"\t"/"\n"/"\r"
	{
		pos1 := pos
		// " "
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != " " {
			perr = _max(perr, pos)
			goto fail3
		}
		pos++
		goto ok0
	fail3:
		pos = pos1
		// "\t"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\t" {
			perr = _max(perr, pos)
			goto fail4
		}
		pos++
		goto ok0
	fail4:
		pos = pos1
		// "\n"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\n" {
			perr = _max(perr, pos)
			goto fail5
		}
		pos++
		goto ok0
	fail5:
		pos = pos1
		// "\r"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\r" {
			perr = _max(perr, pos)
			goto fail6
		}
		pos++
		goto ok0
	fail6:
		pos = pos1
		goto fail
	ok0:
	}
	return _memoize(parser, _Space, start, pos, perr)
fail:
	return _memoize(parser, _Space, start, -1, perr)
}

func _SpaceFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Space, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Space",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Space}
	// " "/"\t"/"\n"/"\r"
	{
		pos1 := pos
		// " "
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != " " {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\" \"",
				})
			}
			goto fail3
		}
		pos++
		goto ok0
	fail3:
		pos = pos1
		// "\t"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\t" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"\\t\"",
				})
			}
			goto fail4
		}
		pos++
		goto ok0
	fail4:
		pos = pos1
		// "\n"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\n" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"\\n\"",
				})
			}
			goto fail5
		}
		pos++
		goto ok0
	fail5:
		pos = pos1
		// "\r"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\r" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"\\r\"",
				})
			}
			goto fail6
		}
		pos++
		goto ok0
	fail6:
		pos = pos1
		goto fail
	ok0:
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _SpaceAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_Space]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Space}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// " "/"\t"/"\n"/"\r"
	{
		pos1 := pos
		var node2 string
		// " "
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != " " {
			goto fail3
		}
		node = parser.text[pos : pos+1]
		pos++
		goto ok0
	fail3:
		node = node2
		pos = pos1
		// "\t"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\t" {
			goto fail4
		}
		node = parser.text[pos : pos+1]
		pos++
		goto ok0
	fail4:
		node = node2
		pos = pos1
		// "\n"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\n" {
			goto fail5
		}
		node = parser.text[pos : pos+1]
		pos++
		goto ok0
	fail5:
		node = node2
		pos = pos1
		// "\r"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\r" {
			goto fail6
		}
		node = parser.text[pos : pos+1]
		pos++
		goto ok0
	fail6:
		node = node2
		pos = pos1
		goto fail
	ok0:
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _EOFAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _EOF, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// !.
	{
		pos1 := pos
		perr2 := perr
		// .
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
			perr = _max(perr, pos)
			goto ok0
		} else {
			pos += w
		}
		pos = pos1
		perr = _max(perr2, pos)
		goto fail
	ok0:
		pos = pos1
		perr = perr2
	}
	return _memoize(parser, _EOF, start, pos, perr)
fail:
	return _memoize(parser, _EOF, start, -1, perr)
}

func _EOFFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _EOF, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "EOF",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _EOF}
	// !.
	{
		pos1 := pos
		nkids2 := len(failure.Kids)
		// .
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: ".",
				})
			}
			goto ok0
		} else {
			pos += w
		}
		pos = pos1
		failure.Kids = failure.Kids[:nkids2]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!.",
			})
		}
		goto fail
	ok0:
		pos = pos1
		failure.Kids = failure.Kids[:nkids2]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _EOFAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_EOF]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _EOF}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// !.
	{
		pos1 := pos
		// .
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
			goto ok0
		} else {
			pos += w
		}
		pos = pos1
		goto fail
	ok0:
		pos = pos1
		node = ""
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}
