package ourairports

import "fmt"

// vocabulary maps a closed set of CSV codes onto a uint8 enum. Index 0 of
// codes is left empty and stands for "absent" in optional columns.
type vocabulary[T ~uint8] struct {
	name    string
	codes   []string
	aliases map[string]T
}

func (v *vocabulary[T]) parse(s string) (T, error) {
	for i := 1; i < len(v.codes); i++ {
		if v.codes[i] == s {
			return T(i), nil
		}
	}
	if t, ok := v.aliases[s]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("%w %q for %s", ErrUnknownCode, s, v.name)
}

func (v *vocabulary[T]) code(t T) string {
	if int(t) < len(v.codes) {
		return v.codes[t]
	}
	return ""
}

func (v *vocabulary[T]) marshal(t T) ([]byte, error) {
	if t == 0 || int(t) >= len(v.codes) {
		return nil, fmt.Errorf("%w: %s value %d", ErrUnknownCode, v.name, uint8(t))
	}
	return []byte(v.codes[t]), nil
}

func (v *vocabulary[T]) unmarshal(dst *T, b []byte) error {
	t, err := v.parse(string(b))
	if err != nil {
		return err
	}
	*dst = t
	return nil
}

// Continent is one of the seven continent codes used by OurAirports.
type Continent uint8

const (
	Africa Continent = iota + 1
	Antarctica
	Asia
	Europe
	NorthAmerica
	Oceania
	SouthAmerica
)

var continents = &vocabulary[Continent]{
	name:  "continent",
	codes: []string{"", "AF", "AN", "AS", "EU", "NA", "OC", "SA"},
}

// ParseContinent decodes a two-letter continent code.
func ParseContinent(s string) (Continent, error) { return continents.parse(s) }

func (c Continent) String() string                { return continents.code(c) }
func (c Continent) MarshalText() ([]byte, error)  { return continents.marshal(c) }
func (c *Continent) UnmarshalText(b []byte) error { return continents.unmarshal(c, b) }

// AirportType classifies an airport.
type AirportType uint8

const (
	SmallAirport AirportType = iota + 1
	MediumAirport
	LargeAirport
	Heliport
	SeaplaneBase
	ClosedAirport
	BalloonPort
)

var airportTypes = &vocabulary[AirportType]{
	name: "airport type",
	codes: []string{
		"",
		"small_airport",
		"medium_airport",
		"large_airport",
		"heliport",
		"seaplane_base",
		"closed_airport",
		"balloonport",
	},
	aliases: map[string]AirportType{"closed": ClosedAirport},
}

// ParseAirportType decodes an airport type. The upstream data uses both
// "closed" and "closed_airport"; both decode to ClosedAirport.
func ParseAirportType(s string) (AirportType, error) { return airportTypes.parse(s) }

func (t AirportType) String() string                { return airportTypes.code(t) }
func (t AirportType) MarshalText() ([]byte, error)  { return airportTypes.marshal(t) }
func (t *AirportType) UnmarshalText(b []byte) error { return airportTypes.unmarshal(t, b) }

// NavaidType is the kind of radio navigation aid.
type NavaidType uint8

const (
	DME NavaidType = iota + 1
	NDB
	NDBDME
	TACAN
	VOR
	VORDME
	VORTAC
)

var navaidTypes = &vocabulary[NavaidType]{
	name:  "navaid type",
	codes: []string{"", "DME", "NDB", "NDB-DME", "TACAN", "VOR", "VOR-DME", "VORTAC"},
}

// ParseNavaidType decodes a navaid type such as VOR-DME.
func ParseNavaidType(s string) (NavaidType, error) { return navaidTypes.parse(s) }

func (t NavaidType) String() string                { return navaidTypes.code(t) }
func (t NavaidType) MarshalText() ([]byte, error)  { return navaidTypes.marshal(t) }
func (t *NavaidType) UnmarshalText(b []byte) error { return navaidTypes.unmarshal(t, b) }

// UsageType tells which airspace structure a navaid serves.
type UsageType uint8

const (
	UsageHigh UsageType = iota + 1
	UsageLow
	UsageBoth
	UsageTerminal
	UsageRNAV
)

var usageTypes = &vocabulary[UsageType]{
	name:    "usage type",
	codes:   []string{"", "HI", "LO", "BOTH", "TERM", "RNAV"},
	aliases: map[string]UsageType{"TERMINAL": UsageTerminal},
}

// ParseUsageType decodes an airspace usage code. TERMINAL is read as TERM.
func ParseUsageType(s string) (UsageType, error) { return usageTypes.parse(s) }

func (u UsageType) String() string                { return usageTypes.code(u) }
func (u UsageType) MarshalText() ([]byte, error)  { return usageTypes.marshal(u) }
func (u *UsageType) UnmarshalText(b []byte) error { return usageTypes.unmarshal(u, b) }

// NavaidPower is the published transmitter power class.
type NavaidPower uint8

const (
	PowerLow NavaidPower = iota + 1
	PowerMedium
	PowerHigh
	PowerUnknown
)

var navaidPowers = &vocabulary[NavaidPower]{
	name:  "navaid power",
	codes: []string{"", "LOW", "MEDIUM", "HIGH", "UNKNOWN"},
}

// ParseNavaidPower decodes a navaid power class.
func ParseNavaidPower(s string) (NavaidPower, error) { return navaidPowers.parse(s) }

func (p NavaidPower) String() string                { return navaidPowers.code(p) }
func (p NavaidPower) MarshalText() ([]byte, error)  { return navaidPowers.marshal(p) }
func (p *NavaidPower) UnmarshalText(b []byte) error { return navaidPowers.unmarshal(p, b) }

// RunwayEndKind selects one of the two ends of a runway.
type RunwayEndKind uint8

const (
	EndLow RunwayEndKind = iota + 1
	EndHigh
)

var runwayEnds = &vocabulary[RunwayEndKind]{
	name:  "runway end",
	codes: []string{"", "le", "he"},
}

// ParseRunwayEndKind decodes le or he.
func ParseRunwayEndKind(s string) (RunwayEndKind, error) { return runwayEnds.parse(s) }

func (k RunwayEndKind) String() string                { return runwayEnds.code(k) }
func (k RunwayEndKind) MarshalText() ([]byte, error)  { return runwayEnds.marshal(k) }
func (k *RunwayEndKind) UnmarshalText(b []byte) error { return runwayEnds.unmarshal(k, b) }
