package ourairports

import "encoding/json"

// Navaid is a row of navaids.csv. Frequencies are kept as text because the
// upstream columns mix formats.
type Navaid struct {
	id                   ID
	filename             string
	ident                string
	name                 string
	navaidType           NavaidType
	frequencyKHz         string
	latitudeDeg          *float64
	longitudeDeg         *float64
	elevationFt          *int32
	isoCountry           string
	dmeFrequencyKHz      string
	dmeChannel           string
	dmeLatitudeDeg       *float64
	dmeLongitudeDeg      *float64
	dmeElevationFt       *int32
	slavedVariationDeg   *float64
	magneticVariationDeg *float64
	usageType            UsageType
	power                NavaidPower
	associatedAirport    string
}

func (n *Navaid) ID() ID                                { return n.id }
func (n *Navaid) Filename() string                      { return n.filename }
func (n *Navaid) Ident() string                         { return n.ident }
func (n *Navaid) Name() string                          { return n.name }
func (n *Navaid) Type() NavaidType                      { return n.navaidType }
func (n *Navaid) FrequencyKHz() string                  { return n.frequencyKHz }
func (n *Navaid) LatitudeDeg() (float64, bool)          { return deref(n.latitudeDeg) }
func (n *Navaid) LongitudeDeg() (float64, bool)         { return deref(n.longitudeDeg) }
func (n *Navaid) ElevationFt() (int32, bool)            { return deref(n.elevationFt) }
func (n *Navaid) ISOCountry() string                    { return n.isoCountry }
func (n *Navaid) DMEFrequencyKHz() string               { return n.dmeFrequencyKHz }
func (n *Navaid) DMEChannel() string                    { return n.dmeChannel }
func (n *Navaid) DMELatitudeDeg() (float64, bool)       { return deref(n.dmeLatitudeDeg) }
func (n *Navaid) DMELongitudeDeg() (float64, bool)      { return deref(n.dmeLongitudeDeg) }
func (n *Navaid) DMEElevationFt() (int32, bool)         { return deref(n.dmeElevationFt) }
func (n *Navaid) SlavedVariationDeg() (float64, bool)   { return deref(n.slavedVariationDeg) }
func (n *Navaid) MagneticVariationDeg() (float64, bool) { return deref(n.magneticVariationDeg) }
func (n *Navaid) AssociatedAirport() string             { return n.associatedAirport }

// UsageType returns the usage class, if published.
func (n *Navaid) UsageType() (UsageType, bool) {
	return n.usageType, n.usageType != 0
}

// Power returns the power class, if published.
func (n *Navaid) Power() (NavaidPower, bool) {
	return n.power, n.power != 0
}

// Location returns the position of the primary transmitter.
func (n *Navaid) Location() Location {
	return NewLocation(n.latitudeDeg, n.longitudeDeg, n.elevationFt)
}

// DMELocation returns the position of the DME antenna. Each component falls
// back to the primary location when the DME column is empty.
func (n *Navaid) DMELocation() Location {
	return NewLocation(
		firstSet(n.dmeLatitudeDeg, n.latitudeDeg),
		firstSet(n.dmeLongitudeDeg, n.longitudeDeg),
		firstSet(n.dmeElevationFt, n.elevationFt),
	)
}

func firstSet[T any](ps ...*T) *T {
	for _, p := range ps {
		if p != nil {
			return p
		}
	}
	return nil
}

type navaidRow struct {
	ID                   string `csv:"id"`
	Filename             string `csv:"filename"`
	Ident                string `csv:"ident"`
	Name                 string `csv:"name"`
	Type                 string `csv:"type"`
	FrequencyKHz         string `csv:"frequency_khz"`
	LatitudeDeg          string `csv:"latitude_deg"`
	LongitudeDeg         string `csv:"longitude_deg"`
	ElevationFt          string `csv:"elevation_ft"`
	ISOCountry           string `csv:"iso_country"`
	DMEFrequencyKHz      string `csv:"dme_frequency_khz"`
	DMEChannel           string `csv:"dme_channel"`
	DMELatitudeDeg       string `csv:"dme_latitude_deg"`
	DMELongitudeDeg      string `csv:"dme_longitude_deg"`
	DMEElevationFt       string `csv:"dme_elevation_ft"`
	SlavedVariationDeg   string `csv:"slaved_variation_deg"`
	MagneticVariationDeg string `csv:"magnetic_variation_deg"`
	UsageType            string `csv:"usageType"`
	Power                string `csv:"power"`
	AssociatedAirport    string `csv:"associated_airport"`
}

func decodeNavaid(r *navaidRow) (*Navaid, error) {
	var d fieldDecoder
	n := &Navaid{
		id:                   d.id("id", r.ID),
		filename:             r.Filename,
		ident:                r.Ident,
		name:                 r.Name,
		navaidType:           decodeCode(&d, "type", r.Type, ParseNavaidType),
		frequencyKHz:         r.FrequencyKHz,
		latitudeDeg:          d.optFloat("latitude_deg", r.LatitudeDeg),
		longitudeDeg:         d.optFloat("longitude_deg", r.LongitudeDeg),
		elevationFt:          d.optInt32("elevation_ft", r.ElevationFt),
		isoCountry:           r.ISOCountry,
		dmeFrequencyKHz:      r.DMEFrequencyKHz,
		dmeChannel:           r.DMEChannel,
		dmeLatitudeDeg:       d.optFloat("dme_latitude_deg", r.DMELatitudeDeg),
		dmeLongitudeDeg:      d.optFloat("dme_longitude_deg", r.DMELongitudeDeg),
		dmeElevationFt:       d.optInt32("dme_elevation_ft", r.DMEElevationFt),
		slavedVariationDeg:   d.optFloat("slaved_variation_deg", r.SlavedVariationDeg),
		magneticVariationDeg: d.optFloat("magnetic_variation_deg", r.MagneticVariationDeg),
		usageType:            decodeOptCode(&d, "usageType", r.UsageType, ParseUsageType),
		power:                decodeOptCode(&d, "power", r.Power, ParseNavaidPower),
		associatedAirport:    r.AssociatedAirport,
	}
	if d.err != nil {
		return nil, d.err
	}
	return n, nil
}

type navaidJSON struct {
	ID                   ID           `json:"id"`
	Filename             string       `json:"filename"`
	Ident                string       `json:"ident"`
	Name                 string       `json:"name"`
	Type                 NavaidType   `json:"type"`
	FrequencyKHz         string       `json:"frequency_khz"`
	LatitudeDeg          *float64     `json:"latitude_deg"`
	LongitudeDeg         *float64     `json:"longitude_deg"`
	ElevationFt          *int32       `json:"elevation_ft"`
	ISOCountry           string       `json:"iso_country"`
	DMEFrequencyKHz      string       `json:"dme_frequency_khz"`
	DMEChannel           string       `json:"dme_channel"`
	DMELatitudeDeg       *float64     `json:"dme_latitude_deg"`
	DMELongitudeDeg      *float64     `json:"dme_longitude_deg"`
	DMEElevationFt       *int32       `json:"dme_elevation_ft"`
	SlavedVariationDeg   *float64     `json:"slaved_variation_deg"`
	MagneticVariationDeg *float64     `json:"magnetic_variation_deg"`
	UsageType            *UsageType   `json:"usageType"`
	Power                *NavaidPower `json:"power"`
	AssociatedAirport    string       `json:"associated_airport"`
}

func optCode[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}

func (n *Navaid) MarshalJSON() ([]byte, error) {
	return json.Marshal(navaidJSON{
		ID:                   n.id,
		Filename:             n.filename,
		Ident:                n.ident,
		Name:                 n.name,
		Type:                 n.navaidType,
		FrequencyKHz:         n.frequencyKHz,
		LatitudeDeg:          n.latitudeDeg,
		LongitudeDeg:         n.longitudeDeg,
		ElevationFt:          n.elevationFt,
		ISOCountry:           n.isoCountry,
		DMEFrequencyKHz:      n.dmeFrequencyKHz,
		DMEChannel:           n.dmeChannel,
		DMELatitudeDeg:       n.dmeLatitudeDeg,
		DMELongitudeDeg:      n.dmeLongitudeDeg,
		DMEElevationFt:       n.dmeElevationFt,
		SlavedVariationDeg:   n.slavedVariationDeg,
		MagneticVariationDeg: n.magneticVariationDeg,
		UsageType:            optCode(n.usageType),
		Power:                optCode(n.power),
		AssociatedAirport:    n.associatedAirport,
	})
}

func (n *Navaid) UnmarshalJSON(data []byte) error {
	var v navaidJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Navaid{
		id:                   v.ID,
		filename:             v.Filename,
		ident:                v.Ident,
		name:                 v.Name,
		navaidType:           v.Type,
		frequencyKHz:         v.FrequencyKHz,
		latitudeDeg:          v.LatitudeDeg,
		longitudeDeg:         v.LongitudeDeg,
		elevationFt:          v.ElevationFt,
		isoCountry:           v.ISOCountry,
		dmeFrequencyKHz:      v.DMEFrequencyKHz,
		dmeChannel:           v.DMEChannel,
		dmeLatitudeDeg:       v.DMELatitudeDeg,
		dmeLongitudeDeg:      v.DMELongitudeDeg,
		dmeElevationFt:       v.DMEElevationFt,
		slavedVariationDeg:   v.SlavedVariationDeg,
		magneticVariationDeg: v.MagneticVariationDeg,
		associatedAirport:    v.AssociatedAirport,
	}
	if v.UsageType != nil {
		n.usageType = *v.UsageType
	}
	if v.Power != nil {
		n.power = *v.Power
	}
	return nil
}
