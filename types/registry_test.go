package types

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistry(t *testing.T) {
	a := NewArena()
	tree := a.Intern(&AliasRef{Name: "tree"})
	leaf := a.Intern(&AtomLit{Name: "leaf"})
	node := a.Intern(&TupleType{Elems: NewTypeList(a.Intern(&AtomLit{Name: "node"}), tree, tree)})
	body := a.Intern(&UnionType{Members: NewTypeList(leaf, node)})

	rb := NewRegistryBuilder()
	if err := rb.Declare(&Alias{Name: "tree", Body: body}); err != nil {
		t.Fatal(err)
	}
	if err := rb.Declare(&Alias{Name: "pair", Body: node}); err != nil {
		t.Fatal(err)
	}
	if err := rb.Declare(&Alias{Name: "tree", Body: leaf}); !errors.Is(err, ErrDuplicateAlias) {
		t.Fatalf("expected a duplicate declaration to fail, found %v", err)
	}
	if err := rb.Declare(&Alias{Name: "number", Body: leaf}); !errors.Is(err, ErrReservedName) {
		t.Fatalf("expected a reserved name to fail, found %v", err)
	}
	reg := rb.Build()

	if diff := cmp.Diff([]string{"pair", "tree"}, reg.Names()); diff != "" {
		t.Fatalf("names (-want +got):\n%s", diff)
	}
	unfolded, err := reg.Unfold(a, tree)
	if err != nil {
		t.Fatal(err)
	}
	if unfolded != body {
		t.Fatalf("expected tree() to unfold to %s, found %s", a.Text(body), a.Text(unfolded))
	}
	if r, err := reg.Unfold(a, leaf); err != nil || r != leaf {
		t.Fatalf("expected a non-alias to unfold to itself")
	}
	if _, err := reg.Unfold(a, a.Intern(&AliasRef{Name: "forest"})); !errors.Is(err, ErrUnknownAlias) {
		t.Fatalf("expected an unknown alias to fail, found %v", err)
	}
}

func TestAliasFirstSite(t *testing.T) {
	d := &Alias{
		Name:  "d",
		Range: [2]int{0, 30},
		Sites: []Site{{Name: "e", Range: [2]int{12, 15}}, {Name: "d", Range: [2]int{20, 23}}, {Name: "d", Range: [2]int{25, 28}}},
	}
	if r := d.FirstSite("d"); r != [2]int{20, 23} {
		t.Fatalf("unexpected site: %v", r)
	}
	if r := d.FirstSite("f"); r != d.Range {
		t.Fatalf("expected fallback to the declaration range, found %v", r)
	}
}
