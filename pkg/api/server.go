// Package api OurAirports REST API
//
// @title           OurAirports REST API
// @version         1.0.0
// @description     Read-only JSON API over the OurAirports datasets.
// @host            localhost:8080
// @BasePath        /api/v1
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/swaggo/swag"
)

// NewRouter builds the HTTP handler serving s.
func NewRouter(s *Server) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if s.config.RequestTimeout > 0 {
		r.Use(middleware.Timeout(s.config.RequestTimeout))
	}
	origins := s.config.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{SnapshotHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics.Handler())
	}

	instrument := func(endpoint string, h http.HandlerFunc) http.HandlerFunc {
		if s.metrics == nil {
			return h
		}
		return s.metrics.InstrumentHandler("GET", "/api/v1"+endpoint, h)
	}

	r.Route("/api/v1", func(r chi.Router) {
		// Health check answers before the first load
		r.Get("/health", instrument("/health", s.handleHealth))

		r.Group(func(r chi.Router) {
			r.Use(snapshotMiddleware(s.source))

			r.Get("/status", instrument("/status", s.handleStatus))

			r.Get("/airports", instrument("/airports", s.handleListAirports))
			r.Get("/airports/{id}", instrument("/airports/{id}", s.handleGetAirport))
			r.Get("/airports/{id}/location", instrument("/airports/{id}/location", s.handleAirportLocation))
			r.Get("/airports/{id}/runways", instrument("/airports/{id}/runways", s.handleAirportRunways))
			r.Get("/airports/{id}/frequencies", instrument("/airports/{id}/frequencies", s.handleAirportFrequencies))

			r.Get("/runways", instrument("/runways", s.handleListRunways))
			r.Get("/runways/{id}", instrument("/runways/{id}", s.handleGetRunway))
			r.Get("/runways/{id}/ends", instrument("/runways/{id}/ends", s.handleRunwayEnds))
			r.Get("/runways/{id}/ends/{end}", instrument("/runways/{id}/ends/{end}", s.handleRunwayEnd))

			r.Get("/navaids", instrument("/navaids", s.handleListNavaids))
			r.Get("/navaids/{id}", instrument("/navaids/{id}", s.handleGetNavaid))
			r.Get("/navaids/{id}/location", instrument("/navaids/{id}/location", s.handleNavaidLocation))

			r.Get("/airport-frequencies", instrument("/airport-frequencies", s.handleListFrequencies))
			r.Get("/airport-frequencies/{id}", instrument("/airport-frequencies/{id}", s.handleGetFrequency))

			r.Get("/countries", instrument("/countries", s.handleListCountries))
			r.Get("/countries/{id}", instrument("/countries/{id}", s.handleGetCountry))

			r.Get("/regions", instrument("/regions", s.handleListRegions))
			r.Get("/regions/{id}", instrument("/regions/{id}", s.handleGetRegion))
		})
	})

	r.Get("/swagger/*", s.handleSwagger)

	if s.config.StaticDir != "" {
		dir := filepath.Clean(s.config.StaticDir)
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/index.html", http.StatusMovedPermanently)
		})
		// http.FileServer would redirect /index.html back to /
		r.Get("/index.html", func(w http.ResponseWriter, r *http.Request) {
			serveFile(w, r, filepath.Join(dir, "index.html"))
		})
		r.Handle("/*", http.FileServer(http.Dir(dir)))
	}

	return r
}

func serveFile(w http.ResponseWriter, r *http.Request, path string) {
	f, err := os.Open(path)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

const swaggerUI = `<!DOCTYPE html>
<html>
<head>
	 <title>OurAirports API Documentation</title>
	 <link rel="stylesheet" type="text/css" href="https://unpkg.com/swagger-ui-dist@3.25.0/swagger-ui.css" />
</head>
<body>
	 <div id="swagger-ui"></div>
	 <script src="https://unpkg.com/swagger-ui-dist@3.25.0/swagger-ui-bundle.js"></script>
	 <script>
	   window.onload = function() {
	     SwaggerUIBundle({
	       url: '/swagger/swagger.json',
	       dom_id: '#swagger-ui',
	       presets: [
	         SwaggerUIBundle.presets.apis,
	         SwaggerUIBundle.presets.standalone
	       ]
	     });
	   };
	 </script>
</body>
</html>`

func (s *Server) handleSwagger(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/swagger/", "/swagger/index.html":
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(swaggerUI))
	case "/swagger/swagger.json":
		doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
		if err != nil {
			s.logger.Error("failed to generate swagger doc", "error", err)
			http.Error(w, "Failed to generate Swagger documentation", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(doc))
	default:
		http.NotFound(w, r)
	}
}

// StartServer serves the API until ctx is cancelled, then shuts down
// gracefully.
func StartServer(ctx context.Context, source SnapshotSource, config ServerConfig, metrics *Metrics) error {
	if config.StaticDir != "" {
		if info, err := os.Stat(config.StaticDir); err != nil || !info.IsDir() {
			return fmt.Errorf("static dir %q is not a directory", config.StaticDir)
		}
	}

	ln, err := net.Listen("tcp", config.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", config.Addr, err)
	}
	return Serve(ctx, ln, source, config, metrics)
}

// Serve is StartServer on an existing listener.
func Serve(ctx context.Context, ln net.Listener, source SnapshotSource, config ServerConfig, metrics *Metrics) error {
	server := NewServer(source, config, metrics)
	SwaggerInfo.Host = ln.Addr().String()

	httpServer := &http.Server{
		Handler:           NewRouter(server),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		server.logger.Info("starting HTTP server", "addr", ln.Addr().String())
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	server.logger.Info("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
