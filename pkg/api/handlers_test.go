package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airdata/ourairports-api/pkg/catalog"
	"github.com/airdata/ourairports-api/pkg/logging"
	"github.com/airdata/ourairports-api/pkg/ourairports"
	"github.com/airdata/ourairports-api/pkg/ourairports/ourairportstest"
)

type listResponse struct {
	Success bool                     `json:"success"`
	Data    []map[string]interface{} `json:"data"`
	Error   string                   `json:"error"`
}

type objectResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data"`
	Error   string                 `json:"error"`
}

// setupTestServer loads the fixture datasets into a catalog and returns a
// router serving it.
func setupTestServer(t *testing.T) (http.Handler, *catalog.Snapshot, *Metrics) {
	t.Helper()

	files := ourairportstest.NewServer(nil)
	t.Cleanup(files.Close)

	metrics := NewMetrics(prometheus.NewRegistry())
	loader := catalog.NewLoader(
		ourairports.NewHTTPFetcher(5*time.Second, ""),
		func(d ourairports.Dataset) string { return d.SourceURL(files.BaseURL()) },
		metrics,
	)
	c := catalog.New(loader, logging.Discard())
	snap, err := c.Refresh(context.Background())
	require.NoError(t, err)

	server := NewServer(c, ServerConfig{}, metrics)
	return NewRouter(server), snap, metrics
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) listResponse {
	t.Helper()
	var resp listResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) objectResponse {
	t.Helper()
	var resp objectResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func ids(items []map[string]interface{}) []float64 {
	out := make([]float64, 0, len(items))
	for _, item := range items {
		out = append(out, item["id"].(float64))
	}
	return out
}

type notLoaded struct{}

func (notLoaded) Current() (*catalog.Snapshot, error) { return nil, catalog.ErrNotLoaded }

func TestServer_handleHealth(t *testing.T) {
	t.Run("before first load", func(t *testing.T) {
		server := NewServer(notLoaded{}, ServerConfig{}, NewMetrics(prometheus.NewRegistry()))

		req := httptest.NewRequest("GET", "/health", nil)
		w := httptest.NewRecorder()
		server.handleHealth(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeObject(t, w)
		assert.True(t, resp.Success)
		assert.Equal(t, "loading", resp.Data["status"])
	})

	t.Run("loaded", func(t *testing.T) {
		router, snap, _ := setupTestServer(t)

		w := get(t, router, "/api/v1/health")
		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeObject(t, w)
		assert.Equal(t, "healthy", resp.Data["status"])
		assert.Equal(t, snap.ID.String(), resp.Data["snapshot"])
	})
}

func TestServer_NotLoaded(t *testing.T) {
	router := NewRouter(NewServer(notLoaded{}, ServerConfig{}, nil))

	for _, path := range []string{"/api/v1/status", "/api/v1/airports", "/api/v1/countries/302755"} {
		w := get(t, router, path)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, path)
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
		assert.Empty(t, w.Header().Get(SnapshotHeader))

		resp := decodeObject(t, w)
		assert.False(t, resp.Success)
		assert.NotEmpty(t, resp.Error)
	}
}

type brokenSource struct{}

func (brokenSource) Current() (*catalog.Snapshot, error) { return nil, errors.New("boom") }

func TestServer_SourceFailure(t *testing.T) {
	router := NewRouter(NewServer(brokenSource{}, ServerConfig{}, nil))
	w := get(t, router, "/api/v1/airports")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServer_handleStatus(t *testing.T) {
	router, snap, _ := setupTestServer(t)

	w := get(t, router, "/api/v1/status")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, snap.ID.String(), w.Header().Get(SnapshotHeader))

	var resp struct {
		Success bool           `json:"success"`
		Data    StatusResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, snap.ID.String(), resp.Data.Snapshot)
	assert.True(t, resp.Data.LoadedAt.Equal(snap.LoadedAt))
	assert.Equal(t, map[string]int{
		"airports":            4,
		"runways":             3,
		"navaids":             3,
		"airport-frequencies": 3,
		"countries":           2,
		"regions":             3,
	}, resp.Data.Counts)
}

func TestServer_List(t *testing.T) {
	router, _, _ := setupTestServer(t)

	tests := []struct {
		name string
		path string
		ids  []float64
	}{
		{"all airports", "/api/v1/airports", []float64{2434, 3632, 6523, 317861}},
		{"airports by country", "/api/v1/airports?iso_country=gb", []float64{2434, 317861}},
		{"airports union", "/api/v1/airports?ident=KLAX&ident=00a", []float64{3632, 6523}},
		{"airports across fields", "/api/v1/airports?iata_code=LHR&local_code=LAX", []float64{2434, 3632}},
		{"unknown parameter ignored", "/api/v1/airports?colour=red", []float64{2434, 3632, 6523, 317861}},
		{"no match", "/api/v1/airports?ident=ZZZZ", []float64{}},
		{"runways by airport", "/api/v1/runways?airport_ref=2434", []float64{232758, 232759}},
		{"runways zero padded ref", "/api/v1/runways?airport_ref=006523", []float64{269408}},
		{"navaids", "/api/v1/navaids?iso_country=US", []float64{90000}},
		{"frequencies", "/api/v1/airport-frequencies?airport_ident=egll", []float64{60906, 60907}},
		{"countries", "/api/v1/countries?continent=NA", []float64{302755}},
		{"regions", "/api/v1/regions?iso_country=us", []float64{306077, 306084}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, router, tt.path)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			resp := decodeList(t, w)
			assert.True(t, resp.Success)
			assert.Equal(t, tt.ids, ids(resp.Data))
		})
	}
}

func TestServer_ListInvalidFilter(t *testing.T) {
	router, _, _ := setupTestServer(t)

	for _, path := range []string{"/api/v1/runways?airport_ref=EGLL", "/api/v1/airport-frequencies?airport_ref=-1"} {
		w := get(t, router, path)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		resp := decodeObject(t, w)
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Error, "airport_ref")
	}
}

func TestServer_Get(t *testing.T) {
	router, _, _ := setupTestServer(t)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedError  string
	}{
		{"airport", "/api/v1/airports/2434", http.StatusOK, ""},
		{"runway", "/api/v1/runways/232758", http.StatusOK, ""},
		{"navaid", "/api/v1/navaids/85224", http.StatusOK, ""},
		{"frequency", "/api/v1/airport-frequencies/60907", http.StatusOK, ""},
		{"country", "/api/v1/countries/302672", http.StatusOK, ""},
		{"region", "/api/v1/regions/303859", http.StatusOK, ""},
		{"missing airport", "/api/v1/airports/1", http.StatusNotFound, "No airport with the specified ID."},
		{"missing runway", "/api/v1/runways/1", http.StatusNotFound, "No runway with the specified ID."},
		{"missing navaid", "/api/v1/navaids/1", http.StatusNotFound, "No navaid with the specified ID."},
		{"missing frequency", "/api/v1/airport-frequencies/1", http.StatusNotFound, "No airport frequency with the specified ID."},
		{"missing country", "/api/v1/countries/1", http.StatusNotFound, "No country with the specified ID."},
		{"missing region", "/api/v1/regions/1", http.StatusNotFound, "No region with the specified ID."},
		{"non-numeric id", "/api/v1/airports/EGLL", http.StatusBadRequest, `Invalid ID: "EGLL"`},
		{"negative id", "/api/v1/countries/-5", http.StatusBadRequest, `Invalid ID: "-5"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, router, tt.path)
			assert.Equal(t, tt.expectedStatus, w.Code)

			resp := decodeObject(t, w)
			assert.Equal(t, tt.expectedStatus == http.StatusOK, resp.Success)
			assert.Equal(t, tt.expectedError, resp.Error)
		})
	}
}

func TestServer_GetAirport(t *testing.T) {
	router, _, _ := setupTestServer(t)

	w := get(t, router, "/api/v1/airports/2434")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeObject(t, w)

	assert.Equal(t, "EGLL", resp.Data["ident"])
	assert.Equal(t, "large_airport", resp.Data["type"])
	assert.Equal(t, "LHR", resp.Data["iata_code"])
	assert.Equal(t, true, resp.Data["scheduled_service"])
	assert.Equal(t, []interface{}{"LON", "Londres"}, resp.Data["keywords"])
}

func TestServer_handleGetAirportDirect(t *testing.T) {
	_, snap, _ := setupTestServer(t)
	server := NewServer(notLoaded{}, ServerConfig{}, nil)

	req := httptest.NewRequest("GET", "/airports/3632", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "3632")
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	req = req.WithContext(withSnapshot(ctx, snap))

	w := httptest.NewRecorder()
	server.handleGetAirport(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "KLAX", decodeObject(t, w).Data["ident"])
}

func TestServer_Locations(t *testing.T) {
	router, _, _ := setupTestServer(t)

	w := get(t, router, "/api/v1/airports/2434/location")
	require.Equal(t, http.StatusOK, w.Code)
	loc := decodeObject(t, w).Data
	assert.Equal(t, 51.4706, loc["latitude_deg"])
	assert.Equal(t, -0.461941, loc["longitude_deg"])
	assert.Equal(t, float64(83), loc["elevation_ft"])

	w = get(t, router, "/api/v1/airports/317861/location")
	require.Equal(t, http.StatusOK, w.Code)
	loc = decodeObject(t, w).Data
	assert.Nil(t, loc["elevation_ft"])

	w = get(t, router, "/api/v1/navaids/85225/location")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(600), decodeObject(t, w).Data["elevation_ft"])

	w = get(t, router, "/api/v1/navaids/85225/location?dme=true")
	require.Equal(t, http.StatusOK, w.Code)
	dme := decodeObject(t, w).Data
	assert.Equal(t, 51.33, dme["latitude_deg"])
	assert.Equal(t, float64(620), dme["elevation_ft"])

	// no DME coordinates: falls back to the navaid position
	w = get(t, router, "/api/v1/navaids/85224/location?dme=true")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(80), decodeObject(t, w).Data["elevation_ft"])

	w = get(t, router, "/api/v1/navaids/1/location")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_AirportRelations(t *testing.T) {
	router, _, _ := setupTestServer(t)

	w := get(t, router, "/api/v1/airports/2434/runways")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []float64{232758, 232759}, ids(decodeList(t, w).Data))

	w = get(t, router, "/api/v1/airports/2434/frequencies")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []float64{60906, 60907}, ids(decodeList(t, w).Data))

	w = get(t, router, "/api/v1/airports/3632/runways")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeList(t, w).Data)

	w = get(t, router, "/api/v1/airports/999/frequencies")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_RunwayEnds(t *testing.T) {
	router, _, _ := setupTestServer(t)

	w := get(t, router, "/api/v1/runways/232758/ends")
	require.Equal(t, http.StatusOK, w.Code)

	ends := decodeList(t, w).Data
	require.Len(t, ends, 2)
	assert.Equal(t, "le", ends[0]["end"])
	assert.Equal(t, "09L", ends[0]["ident"])
	assert.Equal(t, float64(2434), ends[0]["airport_ref"])
	assert.Equal(t, "he", ends[1]["end"])
	assert.Equal(t, "27R", ends[1]["ident"])
	assert.Equal(t, 269.6, ends[1]["heading_degT"])

	w = get(t, router, "/api/v1/runways/232758/ends/he")
	require.Equal(t, http.StatusOK, w.Code)
	end := decodeObject(t, w).Data
	assert.Equal(t, "he", end["end"])
	assert.Equal(t, "27R", end["ident"])
	assert.Equal(t, float64(232758), end["runway_id"])

	tests := []struct {
		name    string
		path    string
		code    int
		message string
	}{
		{"unknown end", "/api/v1/runways/232758/ends/xx", http.StatusBadRequest, `Invalid runway end: "xx"`},
		{"missing runway", "/api/v1/runways/1/ends/le", http.StatusNotFound, "No runway with the specified ID."},
		{"bad runway id", "/api/v1/runways/abc/ends/le", http.StatusBadRequest, `Invalid ID: "abc"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, router, tt.path)
			assert.Equal(t, tt.code, w.Code)
			resp := decodeObject(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.message, resp.Error)
		})
	}
}

func TestServer_Pretty(t *testing.T) {
	router, _, _ := setupTestServer(t)

	compact := get(t, router, "/api/v1/countries/302755").Body.String()
	pretty := get(t, router, "/api/v1/countries/302755?pretty=true").Body.String()

	assert.NotContains(t, compact, "\n  ")
	assert.Contains(t, pretty, "\n  \"success\": true")
	assert.True(t, json.Valid([]byte(pretty)))

	var a, b interface{}
	require.NoError(t, json.Unmarshal([]byte(compact), &a))
	require.NoError(t, json.Unmarshal([]byte(pretty), &b))
	assert.Equal(t, a, b)
}
