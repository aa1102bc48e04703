package loc

import "testing"

func TestLoc(t *testing.T) {
	var fs Files
	fs.Add("a.erl", "-module(a).\nf() ->\n    {X, foo}.\n")
	offs := fs.Add("b.erl", "x.\ny.")
	if offs != 33 {
		t.Fatalf("b.erl offset: %d", offs)
	}

	tests := []struct {
		r    Range
		want string
		line [2]int
		col  [2]int
	}{
		{Range{0, 1}, "a.erl:1:1", [2]int{1, 1}, [2]int{1, 2}},
		{Range{23, 31}, "a.erl:3:5", [2]int{3, 3}, [2]int{5, 13}},
		{Range{12, 14}, "a.erl:2:1", [2]int{2, 2}, [2]int{1, 3}},
		{Range{36, 38}, "b.erl:2:1", [2]int{2, 2}, [2]int{1, 3}},
	}
	for _, test := range tests {
		l := fs.Loc(test.r)
		if l == nil {
			t.Fatalf("Loc(%v) = nil", test.r)
		}
		if l.String() != test.want || l.Line != test.line || l.Col != test.col {
			t.Errorf("Loc(%v) = %s %v %v, want %s %v %v", test.r, l, l.Line, l.Col, test.want, test.line, test.col)
		}
	}

	if got := fs.Text(Range{23, 31}); got != "{X, foo}" {
		t.Errorf("Text = %q", got)
	}
	if got, ok := fs.Line("a.erl", 3); !ok || got != "    {X, foo}." {
		t.Errorf("Line = %q, %v", got, ok)
	}
	if _, ok := fs.Line("a.erl", 9); ok {
		t.Errorf("Line past the end of the file")
	}
	if l := fs.Loc(NoRange); l != nil {
		t.Errorf("Loc(NoRange) = %v", l)
	}
	if l := fs.Loc(Range{0, 100}); l != nil {
		t.Errorf("Loc past end = %v", l)
	}
}

func TestLocColumnsCountRunes(t *testing.T) {
	var fs Files
	fs.Add("c.erl", "f() -> \"héllo\", {X, foo}.\n")
	l := fs.Loc(Range{17, 25})
	if l == nil {
		t.Fatal("Loc = nil")
	}
	if l.String() != "c.erl:1:17" || l.Col != [2]int{17, 25} {
		t.Errorf("Loc = %s %v, want c.erl:1:17 [17 25]", l, l.Col)
	}
	if got := fs.Text(Range{17, 25}); got != "{X, foo}" {
		t.Errorf("Text = %q", got)
	}
}
