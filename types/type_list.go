package types

import (
	"github.com/benbjohnson/immutable"
)

var emptyList = immutable.NewList()

var EmptyTypeList = TypeList{emptyList}

// TypeList is an immutable sequence of term handles.
type TypeList struct {
	l *immutable.List
}

func NewTypeList(refs ...Ref) TypeList {
	if len(refs) == 0 {
		return EmptyTypeList
	}
	b := NewTypeListBuilder()
	for _, r := range refs {
		b.Append(r)
	}
	return b.Build()
}

func SingletonTypeList(r Ref) TypeList {
	return TypeList{emptyList.Append(r)}
}

func (l TypeList) Len() int {
	if l.l == nil {
		return 0
	}
	return l.l.Len()
}

func (l TypeList) Get(i int) Ref { return l.l.Get(i).(Ref) }

// If f returns false, iteration will be stopped.
func (l TypeList) Range(f func(int, Ref) bool) {
	if l.l == nil {
		return
	}
	iter := l.l.Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if !f(i, v.(Ref)) {
			return
		}
	}
}

type TypeListBuilder struct {
	b *immutable.ListBuilder
}

func NewTypeListBuilder() TypeListBuilder {
	return TypeListBuilder{immutable.NewListBuilder(emptyList)}
}

func (b TypeListBuilder) Append(r Ref)    { b.b.Append(r) }
func (b TypeListBuilder) Build() TypeList { return TypeList{b.b.List()} }
