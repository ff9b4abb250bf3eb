package query

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/airdata/ourairports-api/pkg/index"
	"github.com/airdata/ourairports-api/pkg/ourairports"
)

// SimpleQueryEngine answers equality filters over one table using its
// secondary indexes.
type SimpleQueryEngine[R ourairports.Record] struct {
	indexManager *index.IndexManager
	table        *ourairports.Table[R]
}

// NewSimpleQueryEngine creates a new query engine
func NewSimpleQueryEngine[R ourairports.Record](indexManager *index.IndexManager, table *ourairports.Table[R]) *SimpleQueryEngine[R] {
	return &SimpleQueryEngine[R]{
		indexManager: indexManager,
		table:        table,
	}
}

// Execute returns the records matching any of conds, once each, in
// ascending id order. With no conditions the whole table is returned.
func (qe *SimpleQueryEngine[R]) Execute(ctx context.Context, conds ...FieldQuery) ([]R, error) {
	if len(conds) == 0 {
		return qe.table.Values(), nil
	}

	var ids []ourairports.ID
	for _, q := range conds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		matched, err := qe.ExecuteQuery(q)
		if err != nil {
			return nil, err
		}
		ids = append(ids, matched...)
	}

	slices.Sort(ids)
	ids = slices.Compact(ids)

	results := make([]R, 0, len(ids))
	for _, id := range ids {
		if r, ok := qe.table.Get(id); ok {
			results = append(results, r)
		}
	}
	return results, nil
}

// ExecuteQuery executes a single field query and returns the matching ids.
func (qe *SimpleQueryEngine[R]) ExecuteQuery(query FieldQuery) ([]ourairports.ID, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	idx, ok := qe.indexManager.GetIndex(query.Field)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, query.Field)
	}

	value := query.Value
	if idx.Numeric() {
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w for %s: %q", ErrInvalidValue, query.Field, value)
		}
		value = strconv.FormatUint(n, 10)
	}
	return idx.Search(value), nil
}
