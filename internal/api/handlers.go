package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/speedwagon-io/condmon/internal/lib/logger/sl"
	"github.com/speedwagon-io/condmon/internal/metrics"
	"github.com/speedwagon-io/condmon/internal/model"
	"github.com/speedwagon-io/condmon/internal/store"
)

const maxBodyBytes = 64 * 1024

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("failed to encode response", sl.Err(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

// handleCreateInspection evaluates a submitted inspection and stores the
// resulting report.
func (s *Server) handleCreateInspection(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var insp model.Inspection
	if err := json.NewDecoder(r.Body).Decode(&insp); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		s.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := insp.Validate(); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	profile := s.assets.Lookup(insp.AssetTag)
	if profile == nil {
		s.writeError(w, http.StatusNotFound, "unknown asset tag: "+insp.AssetTag)
		return
	}

	report, err := s.engine.Evaluate(profile, &insp)
	if err != nil {
		s.log.Error("evaluation failed", sl.Err(err))
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := s.store.Save(r.Context(), report); err != nil {
		s.log.Error("failed to store report", sl.Err(err))
		s.writeError(w, http.StatusInternalServerError, "failed to store report")
		return
	}

	metrics.ObserveInspection(string(report.Overall.Status), time.Since(start))
	s.writeJSON(w, http.StatusCreated, report)
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	report, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "report not found")
		return
	}
	if err != nil {
		s.log.Error("failed to load report", sl.Err(err))
		s.writeError(w, http.StatusInternalServerError, "failed to load report")
		return
	}

	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	assetTag := r.URL.Query().Get("asset")
	if assetTag == "" {
		s.writeError(w, http.StatusBadRequest, "asset query parameter is required")
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 500 {
			s.writeError(w, http.StatusBadRequest, "limit must be between 1 and 500")
			return
		}
		limit = n
	}

	reports, err := s.store.ListByAsset(r.Context(), assetTag, limit)
	if err != nil {
		s.log.Error("failed to list reports", sl.Err(err))
		s.writeError(w, http.StatusInternalServerError, "failed to list reports")
		return
	}

	if reports == nil {
		reports = []*model.Report{}
	}
	s.writeJSON(w, http.StatusOK, reports)
}

func (s *Server) handleListAssets(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.assets.Assets)
}

func (s *Server) handleGetAsset(w http.ResponseWriter, r *http.Request) {
	tag := chi.URLParam(r, "tag")

	profile := s.assets.Lookup(tag)
	if profile == nil {
		s.writeError(w, http.StatusNotFound, "unknown asset tag: "+tag)
		return
	}

	s.writeJSON(w, http.StatusOK, profile)
}
