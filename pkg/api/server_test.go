package api

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airdata/ourairports-api/pkg/ourairports"
)

func TestMetricsEndpoint(t *testing.T) {
	router, _, metrics := setupTestServer(t)

	get(t, router, "/api/v1/airports")
	get(t, router, "/api/v1/airports/1")

	assert.Equal(t, float64(1), testutil.ToFloat64(
		metrics.httpRequestsTotal.WithLabelValues("GET", "/api/v1/airports", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		metrics.httpRequestsTotal.WithLabelValues("GET", "/api/v1/airports/{id}", "404")))

	// the loader reported into the same metrics
	assert.Equal(t, float64(1), testutil.ToFloat64(
		metrics.datasetLoadsTotal.WithLabelValues("airports", statusSuccess)))
	assert.Equal(t, float64(4), testutil.ToFloat64(metrics.datasetRecords.WithLabelValues("airports")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.snapshotLoadsTotal.WithLabelValues(statusSuccess)))

	w := get(t, router, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "ourairports_http_requests_total")
	assert.Contains(t, body, "ourairports_dataset_records")
}

func TestMetrics_LoadFailure(t *testing.T) {
	metrics := NewMetrics(prometheus.NewRegistry())
	metrics.DatasetLoaded(ourairports.DatasetRunways, 0, time.Second, assert.AnError)
	metrics.SnapshotLoaded(nil, time.Second, assert.AnError)

	assert.Equal(t, float64(1), testutil.ToFloat64(
		metrics.datasetLoadsTotal.WithLabelValues("runways", statusError)))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.snapshotLoadsTotal.WithLabelValues(statusError)))
	assert.Equal(t, 0, testutil.CollectAndCount(metrics.datasetRecords))
}

func TestNewMetrics_DefaultRegistry(t *testing.T) {
	metrics := NewMetrics(nil)
	require.NotNil(t, metrics.Registry())

	families, err := metrics.Registry().Gather()
	require.NoError(t, err)
	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "go_goroutines")
}

func TestSwaggerEndpoints(t *testing.T) {
	router, _, _ := setupTestServer(t)

	w := get(t, router, "/swagger/swagger.json")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "2.0", doc["swagger"])
	paths := doc["paths"].(map[string]interface{})
	assert.Contains(t, paths, "/airports/{id}")
	assert.Contains(t, paths, "/runways/{id}/ends")
	assert.Contains(t, paths, "/runways/{id}/ends/{end}")

	w = get(t, router, "/swagger/index.html")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "swagger-ui")

	w = get(t, router, "/swagger/other")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORS(t *testing.T) {
	router, snap, _ := setupTestServer(t)

	req := httptest.NewRequest("GET", "/api/v1/countries", nil)
	req.Header.Set("Origin", "https://maps.example.org")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, snap.ID.String(), w.Header().Get(SnapshotHeader))
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>map</h1>"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0600))

	router := NewRouter(NewServer(notLoaded{}, ServerConfig{StaticDir: dir}, nil))

	w := get(t, router, "/")
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/index.html", w.Header().Get("Location"))

	w = get(t, router, "/index.html")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<h1>map</h1>", w.Body.String())

	w = get(t, router, "/app.js")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "console.log(1)", w.Body.String())

	w = get(t, router, "/missing.css")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNoStaticFiles(t *testing.T) {
	router := NewRouter(NewServer(notLoaded{}, ServerConfig{}, nil))
	w := get(t, router, "/")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServe(t *testing.T) {
	_, snap, metrics := setupTestServer(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, ln, fixedSource{snap}, ServerConfig{ShutdownTimeout: time.Second}, metrics)
	}()

	url := "http://" + ln.Addr().String() + "/api/v1/health"
	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get(url)
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "healthy")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestStartServer_InvalidStaticDir(t *testing.T) {
	err := StartServer(context.Background(), notLoaded{}, ServerConfig{
		Addr:      "127.0.0.1:0",
		StaticDir: filepath.Join(t.TempDir(), "missing"),
	}, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "static dir")
}

func TestStartServer_InvalidAddr(t *testing.T) {
	err := StartServer(context.Background(), notLoaded{}, ServerConfig{Addr: "127.0.0.1:-1"}, nil)
	assert.Error(t, err)
}

func TestFactories(t *testing.T) {
	fetcher := NewFetcherFactory().CreateFetcher(time.Second, "test-agent")
	httpFetcher, ok := fetcher.(*ourairports.HTTPFetcher)
	require.True(t, ok)
	assert.NotNil(t, httpFetcher)

	starter := NewServerFactory().CreateServerStarter()
	assert.IsType(t, &DefaultServerStarter{}, starter)
}
