package catalog

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airdata/ourairports-api/pkg/logging"
	"github.com/airdata/ourairports-api/pkg/ourairports"
	"github.com/airdata/ourairports-api/pkg/ourairports/ourairportstest"
)

type loadEvent struct {
	dataset ourairports.Dataset
	records int
	err     error
}

type recordingObserver struct {
	mu        sync.Mutex
	datasets  []loadEvent
	snapshots []error
}

func (o *recordingObserver) DatasetLoaded(d ourairports.Dataset, records int, _ time.Duration, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.datasets = append(o.datasets, loadEvent{d, records, err})
}

func (o *recordingObserver) SnapshotLoaded(_ *Snapshot, _ time.Duration, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.snapshots = append(o.snapshots, err)
}

func newTestLoader(srv *ourairportstest.Server, obs Observer) *Loader {
	fetcher := ourairports.NewHTTPFetcher(5*time.Second, "")
	return NewLoader(fetcher, func(d ourairports.Dataset) string {
		return d.SourceURL(srv.BaseURL())
	}, obs)
}

func TestLoader_LoadAll(t *testing.T) {
	srv := ourairportstest.NewServer(nil)
	defer srv.Close()

	obs := &recordingObserver{}
	snap, err := newTestLoader(srv, obs).LoadAll(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, ksuid.Nil, snap.ID)
	assert.False(t, snap.LoadedAt.IsZero())
	assert.Equal(t, map[ourairports.Dataset]int{
		ourairports.DatasetAirports:           4,
		ourairports.DatasetRunways:            3,
		ourairports.DatasetNavaids:            3,
		ourairports.DatasetAirportFrequencies: 3,
		ourairports.DatasetCountries:          2,
		ourairports.DatasetRegions:            3,
	}, snap.Counts())

	assert.Len(t, obs.datasets, 6)
	for _, ev := range obs.datasets {
		assert.NoError(t, ev.err, ev.dataset)
	}
	assert.Equal(t, []error{nil}, obs.snapshots)

	for _, name := range []string{"airports.csv", "runways.csv", "navaids.csv", "airport-frequencies.csv", "countries.csv", "regions.csv"} {
		assert.Equal(t, 1, srv.Hits(name), name)
	}
}

func TestLoader_LoadAllFailure(t *testing.T) {
	srv := ourairportstest.NewServer(nil)
	defer srv.Close()
	srv.Remove("runways.csv")

	obs := &recordingObserver{}
	snap, err := newTestLoader(srv, obs).LoadAll(context.Background())
	require.Error(t, err)
	assert.Nil(t, snap)

	var fe *ourairports.FetchError
	assert.True(t, errors.As(err, &fe))
	assert.Contains(t, err.Error(), "runways")

	require.Len(t, obs.snapshots, 1)
	assert.Error(t, obs.snapshots[0])
}

func TestLoader_LoadAllDecodeFailure(t *testing.T) {
	srv := ourairportstest.NewServer(nil)
	defer srv.Close()
	srv.Set("countries.csv", "id,code,name,continent\n1,XX,Atlantis,AT\n")

	_, err := newTestLoader(srv, nil).LoadAll(context.Background())
	var de *ourairports.DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, ourairports.DatasetCountries, de.Dataset)
	assert.Equal(t, "continent", de.Field)
	assert.Equal(t, "AT", de.Value)
}

func TestLoader_LoadDataset(t *testing.T) {
	srv := ourairportstest.NewServer(nil)
	defer srv.Close()
	loader := newTestLoader(srv, nil)

	for _, d := range ourairports.Datasets() {
		t.Run(string(d), func(t *testing.T) {
			table, err := loader.LoadDataset(context.Background(), d)
			require.NoError(t, err)
			assert.Equal(t, d, table.Dataset())
			assert.Equal(t, table.Len(), len(table.Records()))
		})
	}

	table, err := loader.LoadDataset(context.Background(), ourairports.DatasetCountries)
	require.NoError(t, err)
	records := table.Records()
	assert.Equal(t, ourairports.ID(302672), records[0].ID())
	r, ok := table.Record(302755)
	require.True(t, ok)
	assert.Equal(t, "US", r.(*ourairports.Country).Code())
	_, ok = table.Record(1)
	assert.False(t, ok)

	_, err = loader.LoadDataset(context.Background(), "heliports")
	assert.ErrorIs(t, err, ourairports.ErrUnknownDataset)
}

func TestSnapshotQueries(t *testing.T) {
	srv := ourairportstest.NewServer(nil)
	defer srv.Close()

	snap, err := newTestLoader(srv, nil).LoadAll(context.Background())
	require.NoError(t, err)
	ctx := context.Background()

	gb, err := snap.Airports.Filter(ctx, url.Values{"iso_country": {"gb"}, "pretty": {"true"}})
	require.NoError(t, err)
	require.Len(t, gb, 2)
	assert.Equal(t, "EGLL", gb[0].Ident())

	runways, err := snap.RunwaysOf(ctx, 2434)
	require.NoError(t, err)
	assert.Len(t, runways, 2)

	freqs, err := snap.FrequenciesOf(ctx, 2434)
	require.NoError(t, err)
	assert.Len(t, freqs, 2)

	eu, err := snap.Countries.Filter(ctx, url.Values{"continent": {"eu"}})
	require.NoError(t, err)
	require.Len(t, eu, 1)
	assert.Equal(t, "GB", eu[0].Code())

	regions, err := snap.Regions.Filter(ctx, url.Values{"iso_country": {"US"}})
	require.NoError(t, err)
	assert.Len(t, regions, 2)

	navaids, err := snap.Navaids.Filter(ctx, url.Values{"associated_airport": {"egll"}})
	require.NoError(t, err)
	require.Len(t, navaids, 1)
	assert.Equal(t, "LON", navaids[0].Ident())

	_, ok := snap.Table("heliports")
	assert.False(t, ok)
}

func TestFilterFields(t *testing.T) {
	assert.Equal(t, []string{"ident", "iso_country", "iso_region", "gps_code", "iata_code", "local_code"},
		FilterFields(ourairports.DatasetAirports))
	assert.Equal(t, []string{"airport_ref", "airport_ident"}, FilterFields(ourairports.DatasetRunways))
	assert.Nil(t, FilterFields("heliports"))
}

func TestCatalog_Refresh(t *testing.T) {
	srv := ourairportstest.NewServer(nil)
	defer srv.Close()

	c := New(newTestLoader(srv, nil), logging.Discard())

	_, err := c.Current()
	assert.ErrorIs(t, err, ErrNotLoaded)

	first, err := c.Refresh(context.Background())
	require.NoError(t, err)
	cur, err := c.Current()
	require.NoError(t, err)
	assert.Equal(t, first.ID, cur.ID)

	// a broken upstream must not replace the served data
	srv.Remove("airports.csv")
	_, err = c.Refresh(context.Background())
	require.Error(t, err)
	cur, err = c.Current()
	require.NoError(t, err)
	assert.Equal(t, first.ID, cur.ID)
	assert.Equal(t, 4, cur.Airports.Len())

	srv.Set("airports.csv", ourairportstest.AirportsCSV)
	second, err := c.Refresh(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	cur, _ = c.Current()
	assert.Equal(t, second.ID, cur.ID)
}

func TestCatalog_InitialFailure(t *testing.T) {
	srv := ourairportstest.NewServer(map[string]string{})
	defer srv.Close()

	c := New(newTestLoader(srv, nil), logging.Discard())
	_, err := c.Refresh(context.Background())
	require.Error(t, err)
	_, err = c.Current()
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestCatalog_Run(t *testing.T) {
	srv := ourairportstest.NewServer(nil)
	defer srv.Close()

	c := New(newTestLoader(srv, nil), logging.Discard())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		c.Run(ctx, 10*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return srv.Hits("regions.csv") >= 2
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}

	_, err := c.Current()
	assert.NoError(t, err)
}

func TestCatalog_RunDisabled(t *testing.T) {
	c := New(NewLoader(nil, nil, nil), logging.Discard())
	c.Run(context.Background(), 0)
}
