package api

import (
	stderrors "errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/marthasimmons/airports-endpoint/src/internal/airports"
	"github.com/marthasimmons/airports-endpoint/src/internal/errors"
	"github.com/marthasimmons/airports-endpoint/src/internal/log"
)

var apiLog = log.Module("api")

// ListAirports returns one page of the directory.
// GET /airports?page=1&pageSize=10
func (h *Handler) ListAirports(w http.ResponseWriter, r *http.Request) {
	page, err := intQuery(r, "page", 1)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	pageSize, err := intQuery(r, "pageSize", h.defaultPageSize)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}

	list, err := h.dir.List(page, pageSize)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// CreateAirport appends a new record.
// POST /airports
func (h *Handler) CreateAirport(w http.ResponseWriter, r *http.Request) {
	var req airports.Airport
	// An empty body is an empty record, which fails on required fields.
	if err := decodeJSON(r, &req); err != nil && !stderrors.Is(err, io.EOF) {
		WriteInvalidRequest(w, r, airports.MsgInvalidPayload)
		return
	}

	created, err := h.dir.Create(req)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}

	apiLog.WithField("icao", created.ICAO).Debug("airport created")
	writeJSON(w, http.StatusCreated, created)
}

// GetAirport returns a single record.
// GET /airports/{icao}
func (h *Handler) GetAirport(w http.ResponseWriter, r *http.Request) {
	airport, err := h.dir.Get(chi.URLParam(r, "icao"))
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, airport)
}

// UpdateAirport merges the request body into a record.
// PATCH /airports/{icao}
func (h *Handler) UpdateAirport(w http.ResponseWriter, r *http.Request) {
	icao := chi.URLParam(r, "icao")

	var changes airports.Changes
	if err := decodeJSON(r, &changes); err != nil && !stderrors.Is(err, io.EOF) {
		WriteInvalidRequest(w, r, airports.MsgInvalidPayload)
		return
	}

	updated, err := h.dir.Update(icao, changes)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}

	apiLog.WithField("icao", icao).Debug("airport updated")
	writeJSON(w, http.StatusAccepted, updated)
}

// DeleteAirport removes a record.
// DELETE /airports/{icao}
func (h *Handler) DeleteAirport(w http.ResponseWriter, r *http.Request) {
	icao := chi.URLParam(r, "icao")

	if err := h.dir.Delete(icao); err != nil {
		WriteDomainError(w, r, err)
		return
	}

	apiLog.WithField("icao", icao).Debug("airport deleted")
	writeText(w, http.StatusAccepted, DeletedMessage)
}

// GetDistance returns the great-circle distance between two records.
// GET /airports/{icao}/distance/{other}
func (h *Handler) GetDistance(w http.ResponseWriter, r *http.Request) {
	from, to := chi.URLParam(r, "icao"), chi.URLParam(r, "other")

	km, err := h.dir.Distance(from, to)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, DistanceResponse{From: from, To: to, KM: km})
}

// intQuery reads an integer query parameter, falling back to def when the
// key is absent. A present but empty value is not an integer.
func intQuery(r *http.Request, key string, def int) (int, error) {
	values, ok := r.URL.Query()[key]
	if !ok {
		return def, nil
	}
	v, err := strconv.Atoi(values[0])
	if err != nil {
		return 0, errors.NewInvalidRangeError(airports.MsgInvalidSearchParams)
	}
	return v, nil
}
