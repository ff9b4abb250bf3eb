package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airdata/ourairports-api/pkg/index"
	"github.com/airdata/ourairports-api/pkg/ourairports"
	"github.com/airdata/ourairports-api/pkg/ourairports/ourairportstest"
)

func newAirportEngine(t *testing.T) *SimpleQueryEngine[*ourairports.Airport] {
	t.Helper()
	airports, err := ourairports.ParseAirports([]byte(ourairportstest.AirportsCSV))
	require.NoError(t, err)

	im := index.Build(airports, []index.Field[*ourairports.Airport]{
		index.StringField("ident", (*ourairports.Airport).Ident),
		index.StringField("iso_country", (*ourairports.Airport).ISOCountry),
		index.StringField("iata_code", (*ourairports.Airport).IATACode),
	}, 4)
	return NewSimpleQueryEngine(im, airports)
}

func newRunwayEngine(t *testing.T) *SimpleQueryEngine[*ourairports.Runway] {
	t.Helper()
	runways, err := ourairports.ParseRunways([]byte(ourairportstest.RunwaysCSV))
	require.NoError(t, err)

	im := index.Build(runways, []index.Field[*ourairports.Runway]{
		index.IDField("airport_ref", (*ourairports.Runway).AirportRef),
	}, 4)
	return NewSimpleQueryEngine(im, runways)
}

func ids[R ourairports.Record](rs []R) []ourairports.ID {
	out := make([]ourairports.ID, len(rs))
	for i, r := range rs {
		out[i] = r.ID()
	}
	return out
}

func TestSimpleQueryEngine_Execute(t *testing.T) {
	qe := newAirportEngine(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		conds []FieldQuery
		want  []ourairports.ID
	}{
		{"no conditions returns everything", nil, []ourairports.ID{2434, 3632, 6523, 317861}},
		{"case-insensitive match", []FieldQuery{Eq("ident", "egll")}, []ourairports.ID{2434}},
		{"no match", []FieldQuery{Eq("ident", "ZZZZ")}, []ourairports.ID{}},
		{"several values of one field", []FieldQuery{Eq("iso_country", "GB"), Eq("iso_country", "US")}, []ourairports.ID{2434, 3632, 6523, 317861}},
		{"union across fields", []FieldQuery{Eq("iata_code", "LAX"), Eq("ident", "00A")}, []ourairports.ID{3632, 6523}},
		{"overlap is deduplicated", []FieldQuery{Eq("iso_country", "gb"), Eq("ident", "EGLL")}, []ourairports.ID{2434, 317861}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := qe.Execute(ctx, tt.conds...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSimpleQueryEngine_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := newAirportEngine(t).Execute(ctx, Eq("municipality", "London"))
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = newAirportEngine(t).Execute(ctx, FieldQuery{Field: "ident", Operator: "<", Value: "A"})
	assert.Error(t, err)

	_, err = newRunwayEngine(t).Execute(ctx, Eq("airport_ref", "EGLL"))
	assert.ErrorIs(t, err, ErrInvalidValue)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = newAirportEngine(t).Execute(cancelled, Eq("ident", "EGLL"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSimpleQueryEngine_NumericField(t *testing.T) {
	qe := newRunwayEngine(t)

	got, err := qe.Execute(context.Background(), Eq("airport_ref", "2434"))
	require.NoError(t, err)
	assert.Equal(t, []ourairports.ID{232758, 232759}, ids(got))

	got, err = qe.Execute(context.Background(), Eq("airport_ref", "006523"))
	require.NoError(t, err)
	assert.Equal(t, []ourairports.ID{269408}, ids(got))
}
