package ourairports

import (
	"encoding/json"
	"slices"
)

// Country is a row of countries.csv.
type Country struct {
	id            ID
	code          string
	name          string
	continent     Continent
	wikipediaLink string
	keywords      []string
}

func (c *Country) ID() ID                { return c.id }
func (c *Country) Code() string          { return c.code }
func (c *Country) Name() string          { return c.name }
func (c *Country) Continent() Continent  { return c.continent }
func (c *Country) WikipediaLink() string { return c.wikipediaLink }
func (c *Country) Keywords() []string    { return slices.Clone(c.keywords) }

type countryRow struct {
	ID            string `csv:"id"`
	Code          string `csv:"code"`
	Name          string `csv:"name"`
	Continent     string `csv:"continent"`
	WikipediaLink string `csv:"wikipedia_link"`
	Keywords      string `csv:"keywords"`
}

func decodeCountry(r *countryRow) (*Country, error) {
	var d fieldDecoder
	c := &Country{
		id:            d.id("id", r.ID),
		code:          r.Code,
		name:          r.Name,
		continent:     decodeCode(&d, "continent", r.Continent, ParseContinent),
		wikipediaLink: r.WikipediaLink,
		keywords:      DecodeKeywords(r.Keywords),
	}
	if d.err != nil {
		return nil, d.err
	}
	return c, nil
}

type countryJSON struct {
	ID            ID        `json:"id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	Continent     Continent `json:"continent"`
	WikipediaLink string    `json:"wikipedia_link"`
	Keywords      []string  `json:"keywords"`
}

func (c *Country) MarshalJSON() ([]byte, error) {
	return json.Marshal(countryJSON{
		ID:            c.id,
		Code:          c.code,
		Name:          c.name,
		Continent:     c.continent,
		WikipediaLink: c.wikipediaLink,
		Keywords:      nonNil(c.keywords),
	})
}

func (c *Country) UnmarshalJSON(data []byte) error {
	var v countryJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = Country{
		id:            v.ID,
		code:          v.Code,
		name:          v.Name,
		continent:     v.Continent,
		wikipediaLink: v.WikipediaLink,
		keywords:      nonNil(v.Keywords),
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
