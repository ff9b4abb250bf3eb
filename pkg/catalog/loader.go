package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/ksuid"
	"golang.org/x/sync/errgroup"

	"github.com/airdata/ourairports-api/pkg/index"
	"github.com/airdata/ourairports-api/pkg/ourairports"
)

// Observer is told about every dataset and snapshot load.
type Observer interface {
	DatasetLoaded(d ourairports.Dataset, records int, took time.Duration, err error)
	SnapshotLoaded(s *Snapshot, took time.Duration, err error)
}

// SourceFunc resolves the URL a dataset is fetched from.
type SourceFunc func(ourairports.Dataset) string

// Loader fetches and indexes datasets.
type Loader struct {
	fetcher  ourairports.Fetcher
	source   SourceFunc
	observer Observer
}

// NewLoader returns a loader. A nil source uses the upstream URLs and a nil
// observer is ignored.
func NewLoader(fetcher ourairports.Fetcher, source SourceFunc, observer Observer) *Loader {
	if source == nil {
		source = ourairports.DefaultSourceURL
	}
	return &Loader{fetcher: fetcher, source: source, observer: observer}
}

// LoadAll fetches the six datasets in parallel. Either every dataset loads
// and a new snapshot is returned, or the first error is.
func (l *Loader) LoadAll(ctx context.Context) (*Snapshot, error) {
	start := time.Now()
	snap := &Snapshot{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snap.Airports, err = load(gctx, l, ourairports.DatasetAirports, ourairports.LoadAirports, airportFields)
		return err
	})
	g.Go(func() (err error) {
		snap.Runways, err = load(gctx, l, ourairports.DatasetRunways, ourairports.LoadRunways, runwayFields)
		return err
	})
	g.Go(func() (err error) {
		snap.Navaids, err = load(gctx, l, ourairports.DatasetNavaids, ourairports.LoadNavaids, navaidFields)
		return err
	})
	g.Go(func() (err error) {
		snap.AirportFrequencies, err = load(gctx, l, ourairports.DatasetAirportFrequencies, ourairports.LoadAirportFrequencies, frequencyFields)
		return err
	})
	g.Go(func() (err error) {
		snap.Countries, err = load(gctx, l, ourairports.DatasetCountries, ourairports.LoadCountries, countryFields)
		return err
	})
	g.Go(func() (err error) {
		snap.Regions, err = load(gctx, l, ourairports.DatasetRegions, ourairports.LoadRegions, regionFields)
		return err
	})

	if err := g.Wait(); err != nil {
		l.snapshotLoaded(nil, time.Since(start), err)
		return nil, err
	}

	snap.ID = ksuid.New()
	snap.LoadedAt = time.Now().UTC()
	l.snapshotLoaded(snap, time.Since(start), nil)
	return snap, nil
}

// LoadDataset fetches a single dataset.
func (l *Loader) LoadDataset(ctx context.Context, d ourairports.Dataset) (Table, error) {
	switch d {
	case ourairports.DatasetAirports:
		return asTable[*airport](load(ctx, l, d, ourairports.LoadAirports, airportFields))
	case ourairports.DatasetRunways:
		return asTable[*runway](load(ctx, l, d, ourairports.LoadRunways, runwayFields))
	case ourairports.DatasetNavaids:
		return asTable[*navaid](load(ctx, l, d, ourairports.LoadNavaids, navaidFields))
	case ourairports.DatasetAirportFrequencies:
		return asTable[*frequency](load(ctx, l, d, ourairports.LoadAirportFrequencies, frequencyFields))
	case ourairports.DatasetCountries:
		return asTable[*country](load(ctx, l, d, ourairports.LoadCountries, countryFields))
	case ourairports.DatasetRegions:
		return asTable[*region](load(ctx, l, d, ourairports.LoadRegions, regionFields))
	}
	return nil, fmt.Errorf("%w: %q", ourairports.ErrUnknownDataset, string(d))
}

func load[R ourairports.Record](
	ctx context.Context,
	l *Loader,
	d ourairports.Dataset,
	fn func(context.Context, ourairports.Fetcher, string) (*ourairports.Table[R], error),
	fields []index.Field[R],
) (*Collection[R], error) {
	start := time.Now()
	table, err := fn(ctx, l.fetcher, l.source(d))
	if l.observer != nil {
		l.observer.DatasetLoaded(d, table.Len(), time.Since(start), err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", d, err)
	}
	return NewCollection(d, table, fields), nil
}

func asTable[R ourairports.Record](c *Collection[R], err error) (Table, error) {
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (l *Loader) snapshotLoaded(s *Snapshot, took time.Duration, err error) {
	if l.observer != nil {
		l.observer.SnapshotLoaded(s, took, err)
	}
}
