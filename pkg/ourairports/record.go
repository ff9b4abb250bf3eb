package ourairports

import (
	"cmp"
	"slices"
)

// ID is the numeric primary key OurAirports assigns to every row.
type ID uint64

// Record is implemented by every dataset row type. Identity, ordering and
// deduplication are all defined through the id alone.
type Record interface {
	ID() ID
}

// KeyOf extracts the identity key of a record.
func KeyOf[R Record](r R) ID {
	return r.ID()
}

// SameEntity reports whether a and b describe the same row, regardless of
// their other fields.
func SameEntity[R Record](a, b R) bool {
	return KeyOf(a) == KeyOf(b)
}

// CompareByID orders records by ascending id.
func CompareByID[R Record](a, b R) int {
	return cmp.Compare(KeyOf(a), KeyOf(b))
}

// SortByID sorts rs in place by ascending id.
func SortByID[R Record](rs []R) {
	slices.SortStableFunc(rs, CompareByID[R])
}

// DedupByID returns a new slice sorted by id holding one record per id. When
// ids repeat, the first occurrence in rs is kept.
func DedupByID[R Record](rs []R) []R {
	out := slices.Clone(rs)
	SortByID(out)
	return slices.CompactFunc(out, SameEntity[R])
}
