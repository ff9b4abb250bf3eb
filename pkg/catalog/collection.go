package catalog

import (
	"context"
	"net/url"

	"github.com/airdata/ourairports-api/pkg/index"
	"github.com/airdata/ourairports-api/pkg/ourairports"
	"github.com/airdata/ourairports-api/pkg/query"
)

// Table is the dataset-independent view of a loaded collection.
type Table interface {
	Dataset() ourairports.Dataset
	Len() int
	Record(id ourairports.ID) (ourairports.Record, bool)
	Records() []ourairports.Record
}

// Collection is one loaded dataset together with its filter indexes.
type Collection[R ourairports.Record] struct {
	dataset ourairports.Dataset
	table   *ourairports.Table[R]
	indexes *index.IndexManager
	engine  *query.SimpleQueryEngine[R]
}

// NewCollection indexes table on fields.
func NewCollection[R ourairports.Record](d ourairports.Dataset, table *ourairports.Table[R], fields []index.Field[R]) *Collection[R] {
	im := index.Build(table, fields, indexOrder)
	return &Collection[R]{
		dataset: d,
		table:   table,
		indexes: im,
		engine:  query.NewSimpleQueryEngine(im, table),
	}
}

func (c *Collection[R]) Dataset() ourairports.Dataset { return c.dataset }

// Table returns the underlying id-keyed table.
func (c *Collection[R]) Table() *ourairports.Table[R] { return c.table }

func (c *Collection[R]) Len() int { return c.table.Len() }

func (c *Collection[R]) Get(id ourairports.ID) (R, bool) {
	return c.table.Get(id)
}

// Fields lists the names accepted by Query and Filter.
func (c *Collection[R]) Fields() []string {
	return c.indexes.Fields()
}

// Query returns the records matching any of conds in ascending id order.
func (c *Collection[R]) Query(ctx context.Context, conds ...query.FieldQuery) ([]R, error) {
	return c.engine.Execute(ctx, conds...)
}

// Filter applies URL query parameters. Parameters that are not filterable
// fields are ignored.
func (c *Collection[R]) Filter(ctx context.Context, values url.Values) ([]R, error) {
	return c.Query(ctx, query.FromValues(values, c.Fields())...)
}

func (c *Collection[R]) Record(id ourairports.ID) (ourairports.Record, bool) {
	r, ok := c.table.Get(id)
	if !ok {
		return nil, false
	}
	return r, true
}

func (c *Collection[R]) Records() []ourairports.Record {
	out := make([]ourairports.Record, 0, c.table.Len())
	c.table.Each(func(r R) bool {
		out = append(out, r)
		return true
	})
	return out
}
