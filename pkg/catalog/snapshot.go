package catalog

import (
	"context"
	"strconv"
	"time"

	"github.com/segmentio/ksuid"

	"github.com/airdata/ourairports-api/pkg/ourairports"
	"github.com/airdata/ourairports-api/pkg/query"
)

// Snapshot is one complete, consistent load of all six datasets. It is never
// modified after LoadAll returns it.
type Snapshot struct {
	ID       ksuid.KSUID
	LoadedAt time.Time

	Airports           *Collection[*ourairports.Airport]
	Runways            *Collection[*ourairports.Runway]
	Navaids            *Collection[*ourairports.Navaid]
	AirportFrequencies *Collection[*ourairports.AirportFrequency]
	Countries          *Collection[*ourairports.Country]
	Regions            *Collection[*ourairports.Region]
}

// Table returns the collection holding dataset d.
func (s *Snapshot) Table(d ourairports.Dataset) (Table, bool) {
	switch d {
	case ourairports.DatasetAirports:
		return s.Airports, true
	case ourairports.DatasetRunways:
		return s.Runways, true
	case ourairports.DatasetNavaids:
		return s.Navaids, true
	case ourairports.DatasetAirportFrequencies:
		return s.AirportFrequencies, true
	case ourairports.DatasetCountries:
		return s.Countries, true
	case ourairports.DatasetRegions:
		return s.Regions, true
	}
	return nil, false
}

// Counts reports the number of records per dataset.
func (s *Snapshot) Counts() map[ourairports.Dataset]int {
	counts := make(map[ourairports.Dataset]int, 6)
	for _, d := range ourairports.Datasets() {
		if t, ok := s.Table(d); ok {
			counts[d] = t.Len()
		}
	}
	return counts
}

// RunwaysOf returns the runways whose airport_ref is the given airport.
func (s *Snapshot) RunwaysOf(ctx context.Context, airportID ourairports.ID) ([]*ourairports.Runway, error) {
	return s.Runways.Query(ctx, query.Eq("airport_ref", strconv.FormatUint(uint64(airportID), 10)))
}

// FrequenciesOf returns the frequencies whose airport_ref is the given airport.
func (s *Snapshot) FrequenciesOf(ctx context.Context, airportID ourairports.ID) ([]*ourairports.AirportFrequency, error) {
	return s.AirportFrequencies.Query(ctx, query.Eq("airport_ref", strconv.FormatUint(uint64(airportID), 10)))
}
