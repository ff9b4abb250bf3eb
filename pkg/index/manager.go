package index

import (
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/airdata/ourairports-api/pkg/bptree"
	"github.com/airdata/ourairports-api/pkg/ourairports"
)

// Normalize folds ASCII letters to lower case. Index keys and search values
// both go through it, which makes lookups ASCII case-insensitive.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

// SecondaryIndex manages a B+Tree-based index for a specific field.
// Each key is a normalized field value and holds the ascending ids of the
// records carrying it.
type SecondaryIndex struct {
	fieldName string
	numeric   bool
	tree      *bptree.BPlusTree[string, []ourairports.ID]
	mutex     sync.RWMutex
}

// NewSecondaryIndex creates a new secondary index for a field
func NewSecondaryIndex(fieldName string, order int) *SecondaryIndex {
	return &SecondaryIndex{
		fieldName: fieldName,
		tree:      bptree.NewBPlusTree[string, []ourairports.ID](order),
	}
}

// FieldName returns the indexed field.
func (idx *SecondaryIndex) FieldName() string {
	return idx.fieldName
}

// Numeric reports whether values of the field are decimal ids.
func (idx *SecondaryIndex) Numeric() bool {
	return idx.numeric
}

// Insert adds a record id under fieldValue.
func (idx *SecondaryIndex) Insert(fieldValue string, id ourairports.ID) {
	idx.mutex.Lock()
	defer idx.mutex.Unlock()

	key := Normalize(fieldValue)
	ids, _ := idx.tree.Search(key)
	pos, found := slices.BinarySearch(ids, id)
	if found {
		return
	}
	idx.tree.Insert(key, slices.Insert(ids, pos, id))
}

// Search returns the ids of records whose field equals fieldValue, ignoring
// ASCII case. The slice is ascending and owned by the caller.
func (idx *SecondaryIndex) Search(fieldValue string) []ourairports.ID {
	idx.mutex.RLock()
	defer idx.mutex.RUnlock()

	ids, _ := idx.tree.Search(Normalize(fieldValue))
	return slices.Clone(ids)
}

// Len returns the number of distinct values in the index.
func (idx *SecondaryIndex) Len() int {
	return idx.tree.Len()
}

// Field names a filterable attribute of R and how to read it.
type Field[R any] struct {
	Name    string
	Numeric bool
	Value   func(R) string
}

// StringField indexes a text attribute.
func StringField[R any](name string, value func(R) string) Field[R] {
	return Field[R]{Name: name, Value: value}
}

// IDField indexes a numeric reference such as airport_ref.
func IDField[R any](name string, value func(R) ourairports.ID) Field[R] {
	return Field[R]{
		Name:    name,
		Numeric: true,
		Value: func(r R) string {
			return strconv.FormatUint(uint64(value(r)), 10)
		},
	}
}

// IndexManager manages the secondary indexes of one table
type IndexManager struct {
	indexes map[string]*SecondaryIndex
	mutex   sync.RWMutex
	order   int
}

// NewIndexManager creates a new index manager
func NewIndexManager(order int) *IndexManager {
	return &IndexManager{
		indexes: make(map[string]*SecondaryIndex),
		order:   order,
	}
}

// Build indexes every record of table on each of fields.
func Build[R ourairports.Record](table *ourairports.Table[R], fields []Field[R], order int) *IndexManager {
	im := NewIndexManager(order)
	for _, f := range fields {
		idx := im.GetOrCreateIndex(f.Name)
		idx.numeric = f.Numeric
		table.Each(func(r R) bool {
			idx.Insert(f.Value(r), ourairports.KeyOf(r))
			return true
		})
	}
	return im
}

// GetOrCreateIndex gets an existing index or creates a new one for a field
func (im *IndexManager) GetOrCreateIndex(fieldName string) *SecondaryIndex {
	im.mutex.Lock()
	defer im.mutex.Unlock()

	if idx, exists := im.indexes[fieldName]; exists {
		return idx
	}

	idx := NewSecondaryIndex(fieldName, im.order)
	im.indexes[fieldName] = idx
	return idx
}

// GetIndex returns the index for a field, if one was built.
func (im *IndexManager) GetIndex(fieldName string) (*SecondaryIndex, bool) {
	im.mutex.RLock()
	defer im.mutex.RUnlock()

	idx, ok := im.indexes[fieldName]
	return idx, ok
}

// Fields lists the indexed field names in sorted order.
func (im *IndexManager) Fields() []string {
	im.mutex.RLock()
	defer im.mutex.RUnlock()

	names := make([]string, 0, len(im.indexes))
	for name := range im.indexes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
