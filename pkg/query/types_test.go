package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldQuery_Validate(t *testing.T) {
	tests := []struct {
		name    string
		query   FieldQuery
		wantErr bool
	}{
		{
			name:    "valid equality query",
			query:   FieldQuery{Field: "ident", Operator: "=", Value: "EGLL"},
			wantErr: false,
		},
		{
			name:    "empty value is allowed",
			query:   Eq("iata_code", ""),
			wantErr: false,
		},
		{
			name:    "range operators are not supported",
			query:   FieldQuery{Field: "elevation_ft", Operator: ">", Value: "100"},
			wantErr: true,
		},
		{
			name:    "empty field",
			query:   FieldQuery{Field: "", Operator: "=", Value: "EGLL"},
			wantErr: true,
		},
		{
			name:    "empty operator",
			query:   FieldQuery{Field: "ident", Value: "EGLL"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("FieldQuery.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFromValues(t *testing.T) {
	values := url.Values{
		"iso_country": {"GB", "us"},
		"ident":       {"KLAX"},
		"pretty":      {"true"},
		"unknown":     {"x"},
	}

	got := FromValues(values, []string{"ident", "iso_country", "iata_code"})
	assert.Equal(t, []FieldQuery{
		Eq("ident", "KLAX"),
		Eq("iso_country", "GB"),
		Eq("iso_country", "us"),
	}, got)

	assert.Empty(t, FromValues(url.Values{"pretty": {"1"}}, []string{"ident"}))
}

func TestFieldQuery_String(t *testing.T) {
	assert.Equal(t, "ident=EGLL", Eq("ident", "EGLL").String())
}
