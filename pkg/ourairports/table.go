package ourairports

import (
	"encoding/json"

	"github.com/airdata/ourairports-api/pkg/bptree"
)

// Table is an immutable collection of records keyed by id. Once built it is
// safe for concurrent use by any number of readers.
type Table[R Record] struct {
	tree *bptree.BPlusTree[ID, R]
}

// NewTable indexes records by id. When ids repeat the later record wins.
func NewTable[R Record](records ...R) *Table[R] {
	tree := bptree.NewBPlusTree[ID, R](bptree.DefaultOrder)
	for _, r := range records {
		tree.Insert(KeyOf(r), r)
	}
	return &Table[R]{tree: tree}
}

// Get returns the record with the given id.
func (t *Table[R]) Get(id ID) (R, bool) {
	if t == nil || t.tree == nil {
		var zero R
		return zero, false
	}
	return t.tree.Search(id)
}

// Len returns the number of records.
func (t *Table[R]) Len() int {
	if t == nil || t.tree == nil {
		return 0
	}
	return t.tree.Len()
}

// Each calls fn for every record in ascending id order until fn returns false.
func (t *Table[R]) Each(fn func(R) bool) {
	if t == nil || t.tree == nil {
		return
	}
	t.tree.Ascend(func(_ ID, r R) bool {
		return fn(r)
	})
}

// Values returns the records in ascending id order. The slice is a fresh
// copy owned by the caller.
func (t *Table[R]) Values() []R {
	out := make([]R, 0, t.Len())
	t.Each(func(r R) bool {
		out = append(out, r)
		return true
	})
	return out
}

// IDs returns all ids in ascending order.
func (t *Table[R]) IDs() []ID {
	if t == nil || t.tree == nil {
		return []ID{}
	}
	return t.tree.Keys()
}

// MarshalJSON encodes the table as an id-ordered array.
func (t *Table[R]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Values())
}
