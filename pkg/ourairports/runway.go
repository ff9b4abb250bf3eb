package ourairports

import (
	"encoding/json"
	"fmt"
)

// runwayEndFields are the le_/he_ column groups of runways.csv.
type runwayEndFields struct {
	ident                string
	latitudeDeg          *float64
	longitudeDeg         *float64
	elevationFt          *int32
	headingDegT          *float64
	displacedThresholdFt *int32
}

// Runway is a row of runways.csv.
type Runway struct {
	id           ID
	airportRef   ID
	airportIdent string
	lengthFt     *int32
	widthFt      *int32
	surface      string
	lighted      bool
	closed       bool
	le           runwayEndFields
	he           runwayEndFields
}

func (r *Runway) ID() ID                  { return r.id }
func (r *Runway) AirportRef() ID          { return r.airportRef }
func (r *Runway) AirportIdent() string    { return r.airportIdent }
func (r *Runway) LengthFt() (int32, bool) { return deref(r.lengthFt) }
func (r *Runway) WidthFt() (int32, bool)  { return deref(r.widthFt) }
func (r *Runway) Surface() string         { return r.surface }
func (r *Runway) Lighted() bool           { return r.lighted }
func (r *Runway) Closed() bool            { return r.closed }

// LowEnd projects the le_ columns into a RunwayEnd.
func (r *Runway) LowEnd() *RunwayEnd { return r.end(EndLow, r.le) }

// HighEnd projects the he_ columns into a RunwayEnd.
func (r *Runway) HighEnd() *RunwayEnd { return r.end(EndHigh, r.he) }

// EndOf returns the end selected by kind.
func (r *Runway) EndOf(kind RunwayEndKind) (*RunwayEnd, bool) {
	switch kind {
	case EndLow:
		return r.LowEnd(), true
	case EndHigh:
		return r.HighEnd(), true
	}
	return nil, false
}

// Ends returns the low end followed by the high end.
func (r *Runway) Ends() []*RunwayEnd {
	return []*RunwayEnd{r.LowEnd(), r.HighEnd()}
}

func (r *Runway) end(kind RunwayEndKind, f runwayEndFields) *RunwayEnd {
	return &RunwayEnd{
		runwayID:     r.id,
		kind:         kind,
		airportRef:   r.airportRef,
		airportIdent: r.airportIdent,
		fields: runwayEndFields{
			ident:                f.ident,
			latitudeDeg:          clonePtr(f.latitudeDeg),
			longitudeDeg:         clonePtr(f.longitudeDeg),
			elevationFt:          clonePtr(f.elevationFt),
			headingDegT:          clonePtr(f.headingDegT),
			displacedThresholdFt: clonePtr(f.displacedThresholdFt),
		},
	}
}

// RunwayEnd is one threshold of a runway. It has no row of its own; it is
// identified by the parent runway id and which end it is.
type RunwayEnd struct {
	runwayID     ID
	kind         RunwayEndKind
	airportRef   ID
	airportIdent string
	fields       runwayEndFields
}

func (e *RunwayEnd) RunwayID() ID                  { return e.runwayID }
func (e *RunwayEnd) End() RunwayEndKind            { return e.kind }
func (e *RunwayEnd) Ident() string                 { return e.fields.ident }
func (e *RunwayEnd) AirportRef() ID                { return e.airportRef }
func (e *RunwayEnd) AirportIdent() string          { return e.airportIdent }
func (e *RunwayEnd) LatitudeDeg() (float64, bool)  { return deref(e.fields.latitudeDeg) }
func (e *RunwayEnd) LongitudeDeg() (float64, bool) { return deref(e.fields.longitudeDeg) }
func (e *RunwayEnd) ElevationFt() (int32, bool)    { return deref(e.fields.elevationFt) }
func (e *RunwayEnd) HeadingDegT() (float64, bool)  { return deref(e.fields.headingDegT) }
func (e *RunwayEnd) DisplacedThresholdFt() (int32, bool) {
	return deref(e.fields.displacedThresholdFt)
}

// Key identifies the end, for example "232758/le".
func (e *RunwayEnd) Key() string {
	return fmt.Sprintf("%d/%s", e.runwayID, e.kind)
}

// Location returns the threshold position.
func (e *RunwayEnd) Location() Location {
	return NewLocation(e.fields.latitudeDeg, e.fields.longitudeDeg, e.fields.elevationFt)
}

type runwayRow struct {
	ID                     string `csv:"id"`
	AirportRef             string `csv:"airport_ref"`
	AirportIdent           string `csv:"airport_ident"`
	LengthFt               string `csv:"length_ft"`
	WidthFt                string `csv:"width_ft"`
	Surface                string `csv:"surface"`
	Lighted                string `csv:"lighted"`
	Closed                 string `csv:"closed"`
	LeIdent                string `csv:"le_ident"`
	LeLatitudeDeg          string `csv:"le_latitude_deg"`
	LeLongitudeDeg         string `csv:"le_longitude_deg"`
	LeElevationFt          string `csv:"le_elevation_ft"`
	LeHeadingDegT          string `csv:"le_heading_degT"`
	LeDisplacedThresholdFt string `csv:"le_displaced_threshold_ft"`
	HeIdent                string `csv:"he_ident"`
	HeLatitudeDeg          string `csv:"he_latitude_deg"`
	HeLongitudeDeg         string `csv:"he_longitude_deg"`
	HeElevationFt          string `csv:"he_elevation_ft"`
	HeHeadingDegT          string `csv:"he_heading_degT"`
	HeDisplacedThresholdFt string `csv:"he_displaced_threshold_ft"`
}

func decodeRunway(r *runwayRow) (*Runway, error) {
	var d fieldDecoder
	rw := &Runway{
		id:           d.id("id", r.ID),
		airportRef:   d.id("airport_ref", r.AirportRef),
		airportIdent: r.AirportIdent,
		lengthFt:     d.optInt32("length_ft", r.LengthFt),
		widthFt:      d.optInt32("width_ft", r.WidthFt),
		surface:      r.Surface,
		lighted:      d.boolean("lighted", r.Lighted),
		closed:       d.boolean("closed", r.Closed),
		le: runwayEndFields{
			ident:                r.LeIdent,
			latitudeDeg:          d.optFloat("le_latitude_deg", r.LeLatitudeDeg),
			longitudeDeg:         d.optFloat("le_longitude_deg", r.LeLongitudeDeg),
			elevationFt:          d.optInt32("le_elevation_ft", r.LeElevationFt),
			headingDegT:          d.optFloat("le_heading_degT", r.LeHeadingDegT),
			displacedThresholdFt: d.optInt32("le_displaced_threshold_ft", r.LeDisplacedThresholdFt),
		},
		he: runwayEndFields{
			ident:                r.HeIdent,
			latitudeDeg:          d.optFloat("he_latitude_deg", r.HeLatitudeDeg),
			longitudeDeg:         d.optFloat("he_longitude_deg", r.HeLongitudeDeg),
			elevationFt:          d.optInt32("he_elevation_ft", r.HeElevationFt),
			headingDegT:          d.optFloat("he_heading_degT", r.HeHeadingDegT),
			displacedThresholdFt: d.optInt32("he_displaced_threshold_ft", r.HeDisplacedThresholdFt),
		},
	}
	if d.err != nil {
		return nil, d.err
	}
	return rw, nil
}

type runwayJSON struct {
	ID                     ID       `json:"id"`
	AirportRef             ID       `json:"airport_ref"`
	AirportIdent           string   `json:"airport_ident"`
	LengthFt               *int32   `json:"length_ft"`
	WidthFt                *int32   `json:"width_ft"`
	Surface                string   `json:"surface"`
	Lighted                bool     `json:"lighted"`
	Closed                 bool     `json:"closed"`
	LeIdent                string   `json:"le_ident"`
	LeLatitudeDeg          *float64 `json:"le_latitude_deg"`
	LeLongitudeDeg         *float64 `json:"le_longitude_deg"`
	LeElevationFt          *int32   `json:"le_elevation_ft"`
	LeHeadingDegT          *float64 `json:"le_heading_degT"`
	LeDisplacedThresholdFt *int32   `json:"le_displaced_threshold_ft"`
	HeIdent                string   `json:"he_ident"`
	HeLatitudeDeg          *float64 `json:"he_latitude_deg"`
	HeLongitudeDeg         *float64 `json:"he_longitude_deg"`
	HeElevationFt          *int32   `json:"he_elevation_ft"`
	HeHeadingDegT          *float64 `json:"he_heading_degT"`
	HeDisplacedThresholdFt *int32   `json:"he_displaced_threshold_ft"`
}

func (r *Runway) MarshalJSON() ([]byte, error) {
	return json.Marshal(runwayJSON{
		ID:                     r.id,
		AirportRef:             r.airportRef,
		AirportIdent:           r.airportIdent,
		LengthFt:               r.lengthFt,
		WidthFt:                r.widthFt,
		Surface:                r.surface,
		Lighted:                r.lighted,
		Closed:                 r.closed,
		LeIdent:                r.le.ident,
		LeLatitudeDeg:          r.le.latitudeDeg,
		LeLongitudeDeg:         r.le.longitudeDeg,
		LeElevationFt:          r.le.elevationFt,
		LeHeadingDegT:          r.le.headingDegT,
		LeDisplacedThresholdFt: r.le.displacedThresholdFt,
		HeIdent:                r.he.ident,
		HeLatitudeDeg:          r.he.latitudeDeg,
		HeLongitudeDeg:         r.he.longitudeDeg,
		HeElevationFt:          r.he.elevationFt,
		HeHeadingDegT:          r.he.headingDegT,
		HeDisplacedThresholdFt: r.he.displacedThresholdFt,
	})
}

func (r *Runway) UnmarshalJSON(data []byte) error {
	var v runwayJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = Runway{
		id:           v.ID,
		airportRef:   v.AirportRef,
		airportIdent: v.AirportIdent,
		lengthFt:     v.LengthFt,
		widthFt:      v.WidthFt,
		surface:      v.Surface,
		lighted:      v.Lighted,
		closed:       v.Closed,
		le: runwayEndFields{
			ident:                v.LeIdent,
			latitudeDeg:          v.LeLatitudeDeg,
			longitudeDeg:         v.LeLongitudeDeg,
			elevationFt:          v.LeElevationFt,
			headingDegT:          v.LeHeadingDegT,
			displacedThresholdFt: v.LeDisplacedThresholdFt,
		},
		he: runwayEndFields{
			ident:                v.HeIdent,
			latitudeDeg:          v.HeLatitudeDeg,
			longitudeDeg:         v.HeLongitudeDeg,
			elevationFt:          v.HeElevationFt,
			headingDegT:          v.HeHeadingDegT,
			displacedThresholdFt: v.HeDisplacedThresholdFt,
		},
	}
	return nil
}

type runwayEndJSON struct {
	RunwayID             ID            `json:"runway_id"`
	End                  RunwayEndKind `json:"end"`
	Ident                string        `json:"ident"`
	AirportRef           ID            `json:"airport_ref"`
	AirportIdent         string        `json:"airport_ident"`
	LatitudeDeg          *float64      `json:"latitude_deg"`
	LongitudeDeg         *float64      `json:"longitude_deg"`
	ElevationFt          *int32        `json:"elevation_ft"`
	HeadingDegT          *float64      `json:"heading_degT"`
	DisplacedThresholdFt *int32        `json:"displaced_threshold_ft"`
}

func (e *RunwayEnd) MarshalJSON() ([]byte, error) {
	return json.Marshal(runwayEndJSON{
		RunwayID:             e.runwayID,
		End:                  e.kind,
		Ident:                e.fields.ident,
		AirportRef:           e.airportRef,
		AirportIdent:         e.airportIdent,
		LatitudeDeg:          e.fields.latitudeDeg,
		LongitudeDeg:         e.fields.longitudeDeg,
		ElevationFt:          e.fields.elevationFt,
		HeadingDegT:          e.fields.headingDegT,
		DisplacedThresholdFt: e.fields.displacedThresholdFt,
	})
}

func (e *RunwayEnd) UnmarshalJSON(data []byte) error {
	var v runwayEndJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*e = RunwayEnd{
		runwayID:     v.RunwayID,
		kind:         v.End,
		airportRef:   v.AirportRef,
		airportIdent: v.AirportIdent,
		fields: runwayEndFields{
			ident:                v.Ident,
			latitudeDeg:          v.LatitudeDeg,
			longitudeDeg:         v.LongitudeDeg,
			elevationFt:          v.ElevationFt,
			headingDegT:          v.HeadingDegT,
			displacedThresholdFt: v.DisplacedThresholdFt,
		},
	}
	return nil
}
