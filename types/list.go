package types

import "github.com/benbjohnson/immutable"

// List - sequences of values
type List struct {
	Imm *immutable.List
}

// NewList builds a new list
func NewList(items ...Value) List {
	imm := immutable.NewList()
	if len(items) > 0 {
		b := immutable.NewListBuilder(imm)
		for _, v := range items {
			b.Append(v)
		}
		imm = b.List()
	}
	return List{Imm: imm}
}

// Count counts list items
func (list List) Count() int64 {
	return int64(list.Imm.Len())
}

// Seq traverses list items
func (list List) Seq() Seq {
	return ListSeq{Imm: list.Imm}
}

// Items copies the list into a slice
func (list List) Items() []Value {
	items := make([]Value, list.Imm.Len())
	itr := list.Imm.Iterator()
	for !itr.Done() {
		i, v := itr.Next()
		items[i] = v
	}
	return items
}

// ListSeq seqs over immutable Lists
type ListSeq struct {
	Imm       *immutable.List
	NextIndex int
}

// Next for a list
func (seq ListSeq) Next() (bool, Value, Seq) {
	if seq.NextIndex >= seq.Imm.Len() {
		return true, nil, nil
	}
	head := seq.Imm.Get(seq.NextIndex)
	return false, head, ListSeq{Imm: seq.Imm, NextIndex: seq.NextIndex + 1}
}
