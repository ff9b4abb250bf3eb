package ourairports

import (
	"encoding/json"
	"slices"
)

// Airport is a row of airports.csv. Coordinates are always present; the
// elevation is optional.
type Airport struct {
	id               ID
	ident            string
	airportType      AirportType
	name             string
	latitudeDeg      float64
	longitudeDeg     float64
	elevationFt      *int32
	continent        Continent
	isoCountry       string
	isoRegion        string
	municipality     string
	scheduledService bool
	gpsCode          string
	iataCode         string
	localCode        string
	homeLink         string
	wikipediaLink    string
	keywords         []string
}

func (a *Airport) ID() ID                     { return a.id }
func (a *Airport) Ident() string              { return a.ident }
func (a *Airport) Type() AirportType          { return a.airportType }
func (a *Airport) Name() string               { return a.name }
func (a *Airport) LatitudeDeg() float64       { return a.latitudeDeg }
func (a *Airport) LongitudeDeg() float64      { return a.longitudeDeg }
func (a *Airport) ElevationFt() (int32, bool) { return deref(a.elevationFt) }
func (a *Airport) Continent() Continent       { return a.continent }
func (a *Airport) ISOCountry() string         { return a.isoCountry }
func (a *Airport) ISORegion() string          { return a.isoRegion }
func (a *Airport) Municipality() string       { return a.municipality }
func (a *Airport) ScheduledService() bool     { return a.scheduledService }
func (a *Airport) GPSCode() string            { return a.gpsCode }
func (a *Airport) IATACode() string           { return a.iataCode }
func (a *Airport) LocalCode() string          { return a.localCode }
func (a *Airport) HomeLink() string           { return a.homeLink }
func (a *Airport) WikipediaLink() string      { return a.wikipediaLink }
func (a *Airport) Keywords() []string         { return slices.Clone(a.keywords) }

// Location returns the airport reference point.
func (a *Airport) Location() Location {
	return NewLocation(&a.latitudeDeg, &a.longitudeDeg, a.elevationFt)
}

type airportRow struct {
	ID               string `csv:"id"`
	Ident            string `csv:"ident"`
	Type             string `csv:"type"`
	Name             string `csv:"name"`
	LatitudeDeg      string `csv:"latitude_deg"`
	LongitudeDeg     string `csv:"longitude_deg"`
	ElevationFt      string `csv:"elevation_ft"`
	Continent        string `csv:"continent"`
	ISOCountry       string `csv:"iso_country"`
	ISORegion        string `csv:"iso_region"`
	Municipality     string `csv:"municipality"`
	ScheduledService string `csv:"scheduled_service"`
	GPSCode          string `csv:"gps_code"`
	IATACode         string `csv:"iata_code"`
	LocalCode        string `csv:"local_code"`
	HomeLink         string `csv:"home_link"`
	WikipediaLink    string `csv:"wikipedia_link"`
	Keywords         string `csv:"keywords"`
}

func decodeAirport(r *airportRow) (*Airport, error) {
	var d fieldDecoder
	a := &Airport{
		id:               d.id("id", r.ID),
		ident:            r.Ident,
		airportType:      decodeCode(&d, "type", r.Type, ParseAirportType),
		name:             r.Name,
		latitudeDeg:      d.float("latitude_deg", r.LatitudeDeg),
		longitudeDeg:     d.float("longitude_deg", r.LongitudeDeg),
		elevationFt:      d.optInt32("elevation_ft", r.ElevationFt),
		continent:        decodeCode(&d, "continent", r.Continent, ParseContinent),
		isoCountry:       r.ISOCountry,
		isoRegion:        r.ISORegion,
		municipality:     r.Municipality,
		scheduledService: d.boolean("scheduled_service", r.ScheduledService),
		gpsCode:          r.GPSCode,
		iataCode:         r.IATACode,
		localCode:        r.LocalCode,
		homeLink:         r.HomeLink,
		wikipediaLink:    r.WikipediaLink,
		keywords:         DecodeKeywords(r.Keywords),
	}
	if d.err != nil {
		return nil, d.err
	}
	return a, nil
}

type airportJSON struct {
	ID               ID          `json:"id"`
	Ident            string      `json:"ident"`
	Type             AirportType `json:"type"`
	Name             string      `json:"name"`
	LatitudeDeg      float64     `json:"latitude_deg"`
	LongitudeDeg     float64     `json:"longitude_deg"`
	ElevationFt      *int32      `json:"elevation_ft"`
	Continent        Continent   `json:"continent"`
	ISOCountry       string      `json:"iso_country"`
	ISORegion        string      `json:"iso_region"`
	Municipality     string      `json:"municipality"`
	ScheduledService bool        `json:"scheduled_service"`
	GPSCode          string      `json:"gps_code"`
	IATACode         string      `json:"iata_code"`
	LocalCode        string      `json:"local_code"`
	HomeLink         string      `json:"home_link"`
	WikipediaLink    string      `json:"wikipedia_link"`
	Keywords         []string    `json:"keywords"`
}

func (a *Airport) MarshalJSON() ([]byte, error) {
	return json.Marshal(airportJSON{
		ID:               a.id,
		Ident:            a.ident,
		Type:             a.airportType,
		Name:             a.name,
		LatitudeDeg:      a.latitudeDeg,
		LongitudeDeg:     a.longitudeDeg,
		ElevationFt:      a.elevationFt,
		Continent:        a.continent,
		ISOCountry:       a.isoCountry,
		ISORegion:        a.isoRegion,
		Municipality:     a.municipality,
		ScheduledService: a.scheduledService,
		GPSCode:          a.gpsCode,
		IATACode:         a.iataCode,
		LocalCode:        a.localCode,
		HomeLink:         a.homeLink,
		WikipediaLink:    a.wikipediaLink,
		Keywords:         nonNil(a.keywords),
	})
}

func (a *Airport) UnmarshalJSON(data []byte) error {
	var v airportJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*a = Airport{
		id:               v.ID,
		ident:            v.Ident,
		airportType:      v.Type,
		name:             v.Name,
		latitudeDeg:      v.LatitudeDeg,
		longitudeDeg:     v.LongitudeDeg,
		elevationFt:      v.ElevationFt,
		continent:        v.Continent,
		isoCountry:       v.ISOCountry,
		isoRegion:        v.ISORegion,
		municipality:     v.Municipality,
		scheduledService: v.ScheduledService,
		gpsCode:          v.GPSCode,
		iataCode:         v.IATACode,
		localCode:        v.LocalCode,
		homeLink:         v.HomeLink,
		wikipediaLink:    v.WikipediaLink,
		keywords:         nonNil(v.Keywords),
	}
	return nil
}
