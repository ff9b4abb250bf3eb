package ourairports

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jszwec/csvutil"
)

// Load fetches url and decodes it as dataset d. The first bad row aborts the
// load; no partial table is ever returned.
func Load[Row any, R Record](ctx context.Context, f Fetcher, d Dataset, url string, decode func(*Row) (R, error)) (*Table[R], error) {
	start := time.Now()
	body, err := f.Fetch(ctx, url)
	if err != nil {
		var fe *FetchError
		if !errors.As(err, &fe) {
			err = &FetchError{URL: url, Err: err}
		}
		return nil, err
	}
	slog.Debug("fetched dataset", "dataset", d, "url", url, "bytes", len(body), "took", time.Since(start))

	table, err := Parse(d, body, decode)
	if err != nil {
		return nil, err
	}
	slog.Debug("decoded dataset", "dataset", d, "records", table.Len())
	return table, nil
}

// Parse decodes an in-memory CSV export. Columns are matched by header name;
// unknown columns are ignored. A body without a header row is a structural
// failure, so a truncated response never yields an empty table.
func Parse[Row any, R Record](d Dataset, data []byte, decode func(*Row) (R, error)) (*Table[R], error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, newDecodeError(d, 0, ErrMissingHeader)
	}

	var rows []Row
	if err := csvutil.Unmarshal(data, &rows); err != nil {
		return nil, newDecodeError(d, 0, err)
	}

	records := make([]R, 0, len(rows))
	for i := range rows {
		r, err := decode(&rows[i])
		if err != nil {
			return nil, newDecodeError(d, i+1, err)
		}
		records = append(records, r)
	}
	return NewTable(records...), nil
}

// LoadAirports loads airports.csv from url.
func LoadAirports(ctx context.Context, f Fetcher, url string) (*Table[*Airport], error) {
	return Load(ctx, f, DatasetAirports, url, decodeAirport)
}

// LoadRunways loads runways.csv from url.
func LoadRunways(ctx context.Context, f Fetcher, url string) (*Table[*Runway], error) {
	return Load(ctx, f, DatasetRunways, url, decodeRunway)
}

// LoadNavaids loads navaids.csv from url.
func LoadNavaids(ctx context.Context, f Fetcher, url string) (*Table[*Navaid], error) {
	return Load(ctx, f, DatasetNavaids, url, decodeNavaid)
}

// LoadAirportFrequencies loads airport-frequencies.csv from url.
func LoadAirportFrequencies(ctx context.Context, f Fetcher, url string) (*Table[*AirportFrequency], error) {
	return Load(ctx, f, DatasetAirportFrequencies, url, decodeFrequency)
}

// LoadCountries loads countries.csv from url.
func LoadCountries(ctx context.Context, f Fetcher, url string) (*Table[*Country], error) {
	return Load(ctx, f, DatasetCountries, url, decodeCountry)
}

// LoadRegions loads regions.csv from url.
func LoadRegions(ctx context.Context, f Fetcher, url string) (*Table[*Region], error) {
	return Load(ctx, f, DatasetRegions, url, decodeRegion)
}

// ParseAirports decodes an in-memory airports.csv.
func ParseAirports(data []byte) (*Table[*Airport], error) {
	return Parse(DatasetAirports, data, decodeAirport)
}

// ParseRunways decodes an in-memory runways.csv.
func ParseRunways(data []byte) (*Table[*Runway], error) {
	return Parse(DatasetRunways, data, decodeRunway)
}

// ParseNavaids decodes an in-memory navaids.csv.
func ParseNavaids(data []byte) (*Table[*Navaid], error) {
	return Parse(DatasetNavaids, data, decodeNavaid)
}

// ParseAirportFrequencies decodes an in-memory airport-frequencies.csv.
func ParseAirportFrequencies(data []byte) (*Table[*AirportFrequency], error) {
	return Parse(DatasetAirportFrequencies, data, decodeFrequency)
}

// ParseCountries decodes an in-memory countries.csv.
func ParseCountries(data []byte) (*Table[*Country], error) {
	return Parse(DatasetCountries, data, decodeCountry)
}

// ParseRegions decodes an in-memory regions.csv.
func ParseRegions(data []byte) (*Table[*Region], error) {
	return Parse(DatasetRegions, data, decodeRegion)
}
