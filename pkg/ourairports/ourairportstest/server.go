package ourairportstest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// Server publishes CSV files the way the upstream site does. Files can be
// swapped or removed while it runs; a missing file answers 404.
type Server struct {
	*httptest.Server

	mu    sync.Mutex
	files map[string]string
	hits  map[string]int
}

// NewServer starts a server for files. A nil map publishes Files().
func NewServer(files map[string]string) *Server {
	if files == nil {
		files = Files()
	}
	s := &Server{files: files, hits: make(map[string]int)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	return s
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/")

	s.mu.Lock()
	s.hits[name]++
	body, ok := s.files[name]
	s.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	_, _ = w.Write([]byte(body))
}

// BaseURL is the server URL with a trailing slash.
func (s *Server) BaseURL() string {
	return s.URL + "/"
}

// Set publishes body under name.
func (s *Server) Set(name, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[name] = body
}

// Remove unpublishes name.
func (s *Server) Remove(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, name)
}

// Hits reports how many requests were made for name.
func (s *Server) Hits(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[name]
}
