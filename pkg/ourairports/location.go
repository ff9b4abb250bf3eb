package ourairports

// Location is the position part of a record. Any component may be absent.
type Location struct {
	LatitudeDeg  *float64 `json:"latitude_deg"`
	LongitudeDeg *float64 `json:"longitude_deg"`
	ElevationFt  *int32   `json:"elevation_ft"`
}

// Locatable is implemented by records that carry a position.
type Locatable interface {
	Location() Location
}

// NewLocation builds a Location from copies of the given components.
func NewLocation(lat, lon *float64, elev *int32) Location {
	return Location{
		LatitudeDeg:  clonePtr(lat),
		LongitudeDeg: clonePtr(lon),
		ElevationFt:  clonePtr(elev),
	}
}

// LocationOf is the free-function form of Locatable.Location.
func LocationOf(l Locatable) Location {
	return l.Location()
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// deref returns *p and whether p was set.
func deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}
