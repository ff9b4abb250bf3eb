package ourairports

import "encoding/json"

// AirportFrequency is a row of airport-frequencies.csv. The frequency type
// (TWR, ATIS, UNIC, ...) is free text upstream and is kept as such.
type AirportFrequency struct {
	id            ID
	airportRef    ID
	airportIdent  string
	frequencyType string
	description   string
	frequencyMHz  string
}

func (f *AirportFrequency) ID() ID               { return f.id }
func (f *AirportFrequency) AirportRef() ID       { return f.airportRef }
func (f *AirportFrequency) AirportIdent() string { return f.airportIdent }
func (f *AirportFrequency) Type() string         { return f.frequencyType }
func (f *AirportFrequency) Description() string  { return f.description }
func (f *AirportFrequency) FrequencyMHz() string { return f.frequencyMHz }

type frequencyRow struct {
	ID           string `csv:"id"`
	AirportRef   string `csv:"airport_ref"`
	AirportIdent string `csv:"airport_ident"`
	Type         string `csv:"type"`
	Description  string `csv:"description"`
	FrequencyMHz string `csv:"frequency_mhz"`
}

func decodeFrequency(r *frequencyRow) (*AirportFrequency, error) {
	var d fieldDecoder
	f := &AirportFrequency{
		id:            d.id("id", r.ID),
		airportRef:    d.id("airport_ref", r.AirportRef),
		airportIdent:  r.AirportIdent,
		frequencyType: r.Type,
		description:   r.Description,
		frequencyMHz:  r.FrequencyMHz,
	}
	if d.err != nil {
		return nil, d.err
	}
	return f, nil
}

type frequencyJSON struct {
	ID           ID     `json:"id"`
	AirportRef   ID     `json:"airport_ref"`
	AirportIdent string `json:"airport_ident"`
	Type         string `json:"type"`
	Description  string `json:"description"`
	FrequencyMHz string `json:"frequency_mhz"`
}

func (f *AirportFrequency) MarshalJSON() ([]byte, error) {
	return json.Marshal(frequencyJSON{
		ID:           f.id,
		AirportRef:   f.airportRef,
		AirportIdent: f.airportIdent,
		Type:         f.frequencyType,
		Description:  f.description,
		FrequencyMHz: f.frequencyMHz,
	})
}

func (f *AirportFrequency) UnmarshalJSON(data []byte) error {
	var v frequencyJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = AirportFrequency{
		id:            v.ID,
		airportRef:    v.AirportRef,
		airportIdent:  v.AirportIdent,
		frequencyType: v.Type,
		description:   v.Description,
		frequencyMHz:  v.FrequencyMHz,
	}
	return nil
}
