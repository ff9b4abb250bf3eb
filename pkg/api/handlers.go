package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/airdata/ourairports-api/pkg/catalog"
	"github.com/airdata/ourairports-api/pkg/logging"
	"github.com/airdata/ourairports-api/pkg/ourairports"
	"github.com/airdata/ourairports-api/pkg/query"
)

// Server holds the API server state
type Server struct {
	source  SnapshotSource
	config  ServerConfig
	metrics *Metrics
	logger  *slog.Logger
}

// NewServer creates a new API server
func NewServer(source SnapshotSource, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		source:  source,
		config:  config,
		metrics: metrics,
		logger:  logging.Component(nil, "api"),
	}
}

// handleHealth godoc
//
//	@Summary		Health check
//	@Description	Report whether the service is up and whether data has been loaded
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	body := map[string]string{"status": "healthy"}
	snap, err := s.source.Current()
	if err != nil {
		body["status"] = "loading"
	} else {
		body["snapshot"] = snap.ID.String()
	}
	if s.metrics != nil {
		s.metrics.RecordHealthCheck(err == nil)
	}
	sendSuccess(w, r, body)
}

// handleStatus godoc
//
//	@Summary		Snapshot status
//	@Description	Get the id, load time and record counts of the snapshot being served
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	StatusResponse
//	@Failure		503	{object}	APIResponse
//	@Router			/status [get]
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	snap := snapshotFrom(r)
	counts := make(map[string]int)
	for d, n := range snap.Counts() {
		counts[string(d)] = n
	}
	sendSuccess(w, r, StatusResponse{
		Snapshot: snap.ID.String(),
		LoadedAt: snap.LoadedAt,
		Counts:   counts,
	})
}

// handleListAirports godoc
//
//	@Summary		List airports
//	@Description	List airports in ascending id order. Several filters return records matching any of them.
//	@Tags			airports
//	@Produce		json
//	@Param			ident		query		string	false	"Ident"
//	@Param			iso_country	query		string	false	"ISO country code"
//	@Param			iso_region	query		string	false	"ISO region code"
//	@Param			gps_code	query		string	false	"GPS code"
//	@Param			iata_code	query		string	false	"IATA code"
//	@Param			local_code	query		string	false	"Local code"
//	@Param			pretty		query		bool	false	"Indent the response"
//	@Success		200			{object}	APIResponse
//	@Router			/airports [get]
func (s *Server) handleListAirports(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, snapshotFrom(r).Airports)
}

// handleGetAirport godoc
//
//	@Summary		Get an airport
//	@Tags			airports
//	@Produce		json
//	@Param			id	path		int	true	"Airport id"
//	@Success		200	{object}	APIResponse
//	@Failure		400	{object}	APIResponse
//	@Failure		404	{object}	APIResponse
//	@Router			/airports/{id} [get]
func (s *Server) handleGetAirport(w http.ResponseWriter, r *http.Request) {
	serveRecord(w, r, snapshotFrom(r).Airports, "airport")
}

// handleAirportLocation godoc
//
//	@Summary		Get an airport location
//	@Tags			airports
//	@Produce		json
//	@Param			id	path		int	true	"Airport id"
//	@Success		200	{object}	ourairports.Location
//	@Failure		404	{object}	APIResponse
//	@Router			/airports/{id}/location [get]
func (s *Server) handleAirportLocation(w http.ResponseWriter, r *http.Request) {
	airport, ok := lookup(w, r, snapshotFrom(r).Airports, "airport")
	if !ok {
		return
	}
	sendSuccess(w, r, airport.Location())
}

// handleAirportRunways godoc
//
//	@Summary		List the runways of an airport
//	@Tags			airports
//	@Produce		json
//	@Param			id	path		int	true	"Airport id"
//	@Success		200	{object}	APIResponse
//	@Failure		404	{object}	APIResponse
//	@Router			/airports/{id}/runways [get]
func (s *Server) handleAirportRunways(w http.ResponseWriter, r *http.Request) {
	snap := snapshotFrom(r)
	airport, ok := lookup(w, r, snap.Airports, "airport")
	if !ok {
		return
	}
	runways, err := snap.RunwaysOf(r.Context(), airport.ID())
	if err != nil {
		sendQueryError(w, r, err)
		return
	}
	sendSuccess(w, r, runways)
}

// handleAirportFrequencies godoc
//
//	@Summary		List the frequencies of an airport
//	@Tags			airports
//	@Produce		json
//	@Param			id	path		int	true	"Airport id"
//	@Success		200	{object}	APIResponse
//	@Failure		404	{object}	APIResponse
//	@Router			/airports/{id}/frequencies [get]
func (s *Server) handleAirportFrequencies(w http.ResponseWriter, r *http.Request) {
	snap := snapshotFrom(r)
	airport, ok := lookup(w, r, snap.Airports, "airport")
	if !ok {
		return
	}
	freqs, err := snap.FrequenciesOf(r.Context(), airport.ID())
	if err != nil {
		sendQueryError(w, r, err)
		return
	}
	sendSuccess(w, r, freqs)
}

// handleListRunways godoc
//
//	@Summary		List runways
//	@Tags			runways
//	@Produce		json
//	@Param			airport_ref		query		int		false	"Airport id"
//	@Param			airport_ident	query		string	false	"Airport ident"
//	@Success		200				{object}	APIResponse
//	@Failure		400				{object}	APIResponse
//	@Router			/runways [get]
func (s *Server) handleListRunways(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, snapshotFrom(r).Runways)
}

// handleGetRunway godoc
//
//	@Summary		Get a runway
//	@Tags			runways
//	@Produce		json
//	@Param			id	path		int	true	"Runway id"
//	@Success		200	{object}	APIResponse
//	@Failure		404	{object}	APIResponse
//	@Router			/runways/{id} [get]
func (s *Server) handleGetRunway(w http.ResponseWriter, r *http.Request) {
	serveRecord(w, r, snapshotFrom(r).Runways, "runway")
}

// handleRunwayEnds godoc
//
//	@Summary		Get both ends of a runway
//	@Description	Returns the low end followed by the high end
//	@Tags			runways
//	@Produce		json
//	@Param			id	path		int	true	"Runway id"
//	@Success		200	{object}	APIResponse
//	@Failure		404	{object}	APIResponse
//	@Router			/runways/{id}/ends [get]
func (s *Server) handleRunwayEnds(w http.ResponseWriter, r *http.Request) {
	runway, ok := lookup(w, r, snapshotFrom(r).Runways, "runway")
	if !ok {
		return
	}
	sendSuccess(w, r, runway.Ends())
}

// handleRunwayEnd godoc
//
//	@Summary		Get one runway end
//	@Tags			runways
//	@Produce		json
//	@Param			id	path		int		true	"Runway id"
//	@Param			end	path		string	true	"le or he"
//	@Success		200	{object}	APIResponse
//	@Failure		400	{object}	APIResponse
//	@Failure		404	{object}	APIResponse
//	@Router			/runways/{id}/ends/{end} [get]
func (s *Server) handleRunwayEnd(w http.ResponseWriter, r *http.Request) {
	runway, ok := lookup(w, r, snapshotFrom(r).Runways, "runway")
	if !ok {
		return
	}
	raw := chi.URLParam(r, "end")
	kind, err := ourairports.ParseRunwayEndKind(raw)
	if err != nil {
		sendError(w, r, "Invalid runway end: "+strconv.Quote(raw), http.StatusBadRequest)
		return
	}
	end, _ := runway.EndOf(kind)
	sendSuccess(w, r, end)
}

// handleListNavaids godoc
//
//	@Summary		List navaids
//	@Tags			navaids
//	@Produce		json
//	@Param			filename			query		string	false	"File name"
//	@Param			ident				query		string	false	"Ident"
//	@Param			iso_country			query		string	false	"ISO country code"
//	@Param			associated_airport	query		string	false	"Associated airport ident"
//	@Success		200					{object}	APIResponse
//	@Router			/navaids [get]
func (s *Server) handleListNavaids(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, snapshotFrom(r).Navaids)
}

// handleGetNavaid godoc
//
//	@Summary		Get a navaid
//	@Tags			navaids
//	@Produce		json
//	@Param			id	path		int	true	"Navaid id"
//	@Success		200	{object}	APIResponse
//	@Failure		404	{object}	APIResponse
//	@Router			/navaids/{id} [get]
func (s *Server) handleGetNavaid(w http.ResponseWriter, r *http.Request) {
	serveRecord(w, r, snapshotFrom(r).Navaids, "navaid")
}

// handleNavaidLocation godoc
//
//	@Summary		Get a navaid location
//	@Description	Use ?dme=true for the DME antenna position
//	@Tags			navaids
//	@Produce		json
//	@Param			id	path		int		true	"Navaid id"
//	@Param			dme	query		bool	false	"DME location"
//	@Success		200	{object}	ourairports.Location
//	@Failure		404	{object}	APIResponse
//	@Router			/navaids/{id}/location [get]
func (s *Server) handleNavaidLocation(w http.ResponseWriter, r *http.Request) {
	navaid, ok := lookup(w, r, snapshotFrom(r).Navaids, "navaid")
	if !ok {
		return
	}
	if dme, _ := strconv.ParseBool(r.URL.Query().Get("dme")); dme {
		sendSuccess(w, r, navaid.DMELocation())
		return
	}
	sendSuccess(w, r, navaid.Location())
}

// handleListFrequencies godoc
//
//	@Summary		List airport frequencies
//	@Tags			airport-frequencies
//	@Produce		json
//	@Param			airport_ref		query		int		false	"Airport id"
//	@Param			airport_ident	query		string	false	"Airport ident"
//	@Success		200				{object}	APIResponse
//	@Failure		400				{object}	APIResponse
//	@Router			/airport-frequencies [get]
func (s *Server) handleListFrequencies(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, snapshotFrom(r).AirportFrequencies)
}

// handleGetFrequency godoc
//
//	@Summary		Get an airport frequency
//	@Tags			airport-frequencies
//	@Produce		json
//	@Param			id	path		int	true	"Frequency id"
//	@Success		200	{object}	APIResponse
//	@Failure		404	{object}	APIResponse
//	@Router			/airport-frequencies/{id} [get]
func (s *Server) handleGetFrequency(w http.ResponseWriter, r *http.Request) {
	serveRecord(w, r, snapshotFrom(r).AirportFrequencies, "airport frequency")
}

// handleListCountries godoc
//
//	@Summary		List countries
//	@Tags			countries
//	@Produce		json
//	@Param			code		query		string	false	"Country code"
//	@Param			continent	query		string	false	"Continent code"
//	@Success		200			{object}	APIResponse
//	@Router			/countries [get]
func (s *Server) handleListCountries(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, snapshotFrom(r).Countries)
}

// handleGetCountry godoc
//
//	@Summary		Get a country
//	@Tags			countries
//	@Produce		json
//	@Param			id	path		int	true	"Country id"
//	@Success		200	{object}	APIResponse
//	@Failure		404	{object}	APIResponse
//	@Router			/countries/{id} [get]
func (s *Server) handleGetCountry(w http.ResponseWriter, r *http.Request) {
	serveRecord(w, r, snapshotFrom(r).Countries, "country")
}

// handleListRegions godoc
//
//	@Summary		List regions
//	@Tags			regions
//	@Produce		json
//	@Param			code		query		string	false	"Region code"
//	@Param			local_code	query		string	false	"Local code"
//	@Param			iso_country	query		string	false	"ISO country code"
//	@Param			continent	query		string	false	"Continent code"
//	@Success		200			{object}	APIResponse
//	@Router			/regions [get]
func (s *Server) handleListRegions(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, snapshotFrom(r).Regions)
}

// handleGetRegion godoc
//
//	@Summary		Get a region
//	@Tags			regions
//	@Produce		json
//	@Param			id	path		int	true	"Region id"
//	@Success		200	{object}	APIResponse
//	@Failure		404	{object}	APIResponse
//	@Router			/regions/{id} [get]
func (s *Server) handleGetRegion(w http.ResponseWriter, r *http.Request) {
	serveRecord(w, r, snapshotFrom(r).Regions, "region")
}

func serveList[R ourairports.Record](w http.ResponseWriter, r *http.Request, c *catalog.Collection[R]) {
	records, err := c.Filter(r.Context(), r.URL.Query())
	if err != nil {
		sendQueryError(w, r, err)
		return
	}
	sendSuccess(w, r, records)
}

func serveRecord[R ourairports.Record](w http.ResponseWriter, r *http.Request, c *catalog.Collection[R], thing string) {
	record, ok := lookup(w, r, c, thing)
	if !ok {
		return
	}
	sendSuccess(w, r, record)
}

// lookup resolves the {id} URL parameter in c, writing the error response
// itself when it cannot.
func lookup[R ourairports.Record](w http.ResponseWriter, r *http.Request, c *catalog.Collection[R], thing string) (R, bool) {
	var zero R
	raw := chi.URLParam(r, "id")
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		sendError(w, r, "Invalid ID: "+strconv.Quote(raw), http.StatusBadRequest)
		return zero, false
	}
	record, ok := c.Get(ourairports.ID(n))
	if !ok {
		sendError(w, r, "No "+thing+" with the specified ID.", http.StatusNotFound)
		return zero, false
	}
	return record, true
}

func sendQueryError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, query.ErrInvalidValue), errors.Is(err, query.ErrUnknownField):
		sendError(w, r, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("query failed", "component", "api", "path", r.URL.Path, "error", err)
		sendError(w, r, "Failed to run query", http.StatusInternalServerError)
	}
}
