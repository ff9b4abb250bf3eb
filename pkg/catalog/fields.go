package catalog

import (
	"github.com/airdata/ourairports-api/pkg/index"
	"github.com/airdata/ourairports-api/pkg/ourairports"
)

const indexOrder = 64

type (
	airport   = ourairports.Airport
	runway    = ourairports.Runway
	navaid    = ourairports.Navaid
	frequency = ourairports.AirportFrequency
	country   = ourairports.Country
	region    = ourairports.Region
)

var airportFields = []index.Field[*airport]{
	index.StringField("ident", (*airport).Ident),
	index.StringField("iso_country", (*airport).ISOCountry),
	index.StringField("iso_region", (*airport).ISORegion),
	index.StringField("gps_code", (*airport).GPSCode),
	index.StringField("iata_code", (*airport).IATACode),
	index.StringField("local_code", (*airport).LocalCode),
}

var runwayFields = []index.Field[*runway]{
	index.IDField("airport_ref", (*runway).AirportRef),
	index.StringField("airport_ident", (*runway).AirportIdent),
}

var navaidFields = []index.Field[*navaid]{
	index.StringField("filename", (*navaid).Filename),
	index.StringField("ident", (*navaid).Ident),
	index.StringField("iso_country", (*navaid).ISOCountry),
	index.StringField("associated_airport", (*navaid).AssociatedAirport),
}

var frequencyFields = []index.Field[*frequency]{
	index.IDField("airport_ref", (*frequency).AirportRef),
	index.StringField("airport_ident", (*frequency).AirportIdent),
}

var countryFields = []index.Field[*country]{
	index.StringField("code", (*country).Code),
	index.StringField("continent", func(c *country) string { return c.Continent().String() }),
}

var regionFields = []index.Field[*region]{
	index.StringField("code", (*region).Code),
	index.StringField("local_code", (*region).LocalCode),
	index.StringField("iso_country", (*region).ISOCountry),
	index.StringField("continent", func(r *region) string { return r.Continent().String() }),
}

// FilterFields lists the query parameters each dataset can be filtered by.
func FilterFields(d ourairports.Dataset) []string {
	switch d {
	case ourairports.DatasetAirports:
		return fieldNames(airportFields)
	case ourairports.DatasetRunways:
		return fieldNames(runwayFields)
	case ourairports.DatasetNavaids:
		return fieldNames(navaidFields)
	case ourairports.DatasetAirportFrequencies:
		return fieldNames(frequencyFields)
	case ourairports.DatasetCountries:
		return fieldNames(countryFields)
	case ourairports.DatasetRegions:
		return fieldNames(regionFields)
	}
	return nil
}

func fieldNames[R any](fields []index.Field[R]) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}
