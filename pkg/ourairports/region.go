package ourairports

import (
	"encoding/json"
	"slices"
)

// Region is a row of regions.csv: a first-level administrative subdivision
// of a country.
type Region struct {
	id            ID
	code          string
	localCode     string
	name          string
	continent     Continent
	isoCountry    string
	wikipediaLink string
	keywords      []string
}

func (r *Region) ID() ID                { return r.id }
func (r *Region) Code() string          { return r.code }
func (r *Region) LocalCode() string     { return r.localCode }
func (r *Region) Name() string          { return r.name }
func (r *Region) Continent() Continent  { return r.continent }
func (r *Region) ISOCountry() string    { return r.isoCountry }
func (r *Region) WikipediaLink() string { return r.wikipediaLink }
func (r *Region) Keywords() []string    { return slices.Clone(r.keywords) }

type regionRow struct {
	ID            string `csv:"id"`
	Code          string `csv:"code"`
	LocalCode     string `csv:"local_code"`
	Name          string `csv:"name"`
	Continent     string `csv:"continent"`
	ISOCountry    string `csv:"iso_country"`
	WikipediaLink string `csv:"wikipedia_link"`
	Keywords      string `csv:"keywords"`
}

func decodeRegion(row *regionRow) (*Region, error) {
	var d fieldDecoder
	r := &Region{
		id:            d.id("id", row.ID),
		code:          row.Code,
		localCode:     row.LocalCode,
		name:          row.Name,
		continent:     decodeCode(&d, "continent", row.Continent, ParseContinent),
		isoCountry:    row.ISOCountry,
		wikipediaLink: row.WikipediaLink,
		keywords:      DecodeKeywords(row.Keywords),
	}
	if d.err != nil {
		return nil, d.err
	}
	return r, nil
}

type regionJSON struct {
	ID            ID        `json:"id"`
	Code          string    `json:"code"`
	LocalCode     string    `json:"local_code"`
	Name          string    `json:"name"`
	Continent     Continent `json:"continent"`
	ISOCountry    string    `json:"iso_country"`
	WikipediaLink string    `json:"wikipedia_link"`
	Keywords      []string  `json:"keywords"`
}

func (r *Region) MarshalJSON() ([]byte, error) {
	return json.Marshal(regionJSON{
		ID:            r.id,
		Code:          r.code,
		LocalCode:     r.localCode,
		Name:          r.name,
		Continent:     r.continent,
		ISOCountry:    r.isoCountry,
		WikipediaLink: r.wikipediaLink,
		Keywords:      nonNil(r.keywords),
	})
}

func (r *Region) UnmarshalJSON(data []byte) error {
	var v regionJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = Region{
		id:            v.ID,
		code:          v.Code,
		localCode:     v.LocalCode,
		name:          v.Name,
		continent:     v.Continent,
		isoCountry:    v.ISOCountry,
		wikipediaLink: v.WikipediaLink,
		keywords:      nonNil(v.Keywords),
	}
	return nil
}
