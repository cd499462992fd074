package server

/**
 * nepalify - Roman to Devanagari (Nepali) transliteration library
 * Licensed under AGPL-3.0-only
 */

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/khojproject/nepalify/nepalify"
	"github.com/khojproject/nepalify/search"
)

// Server exposes the converter and an in-memory voter roll over a
// JSON API. This is the surface the presentation layer consumes;
// no rendering, auth or printing lives here.
type Server struct {
	converter *nepalify.Converter
	searcher  *search.Searcher
	records   []search.Record
	logger    *slog.Logger
}

// New builds the API server over an already loaded record set.
func New(converter *nepalify.Converter, records []search.Record, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		converter: converter,
		searcher:  search.NewSearcher(converter),
		records:   records,
		logger:    logger,
	}
}

// Handler builds the chi router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/api/convert", s.handleConvert)
	r.Get("/api/search", s.handleSearch)
	r.Get("/api/search/advanced", s.handleAdvancedSearch)
	r.Get("/api/stats", s.handleStats)

	return r
}

type searchResponse struct {
	Count   int             `json:"count"`
	Results []search.Record `json:"results"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	body, err := sonic.Marshal(payload)
	if err != nil {
		s.logger.Error("encoding response", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}

func (s *Server) writeResults(w http.ResponseWriter, results []search.Record) {
	if results == nil {
		results = []search.Record{}
	}
	s.writeJSON(w, http.StatusOK, searchResponse{Count: len(results), Results: results})
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	s.writeJSON(w, http.StatusOK, s.converter.ConvertResult(r.Context(), query))
}

func fieldFromParam(param string) (search.Field, bool) {
	switch strings.ToLower(param) {
	case "", "name":
		return search.FieldName, true
	case "parent":
		return search.FieldParentName, true
	case "spouse":
		return search.FieldSpouseName, true
	}
	return search.FieldName, false
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	if number := params.Get("voter_number"); number != "" {
		n, err := strconv.Atoi(number)
		if err != nil {
			http.Error(w, "invalid voter_number", http.StatusBadRequest)
			return
		}
		s.writeResults(w, search.ByVoterNumber(s.records, n))
		return
	}

	field, ok := fieldFromParam(params.Get("field"))
	if !ok {
		http.Error(w, "unknown field", http.StatusBadRequest)
		return
	}

	query := params.Get("q")
	switch params.Get("mode") {
	case "", "prefix":
		s.writeResults(w, s.searcher.ByPrefix(r.Context(), s.records, field, query))
	case "ordered":
		s.writeResults(w, s.searcher.Ordered(r.Context(), s.records, field, query))
	default:
		http.Error(w, "unknown mode", http.StatusBadRequest)
	}
}

func (s *Server) handleAdvancedSearch(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	filters := search.Filters{
		Name:       params.Get("name"),
		ParentName: params.Get("parent"),
		SpouseName: params.Get("spouse"),
		Gender:     params.Get("gender"),
	}

	minAge := params.Get("min_age")
	maxAge := params.Get("max_age")
	if minAge != "" || maxAge != "" {
		filters.FilterAge = true
		filters.MaxAge = 1<<31 - 1

		var err error
		if minAge != "" {
			if filters.MinAge, err = strconv.Atoi(minAge); err != nil {
				http.Error(w, "invalid min_age", http.StatusBadRequest)
				return
			}
		}
		if maxAge != "" {
			if filters.MaxAge, err = strconv.Atoi(maxAge); err != nil {
				http.Error(w, "invalid max_age", http.StatusBadRequest)
				return
			}
		}
	}

	s.writeResults(w, s.searcher.Advanced(r.Context(), s.records, filters))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, search.Stats(s.records))
}
