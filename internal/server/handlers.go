package server

import (
	"encoding/json"
	"net/http"

	"github.com/hyperjump/kotae/internal/models"
	"go.uber.org/zap"
)

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req models.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.logger.Debug("ask request", zap.String("question", req.Question))
	result := s.engine.Ask(r.Context(), req.Question)
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	snap, err := s.engine.Reload(r.Context())
	if err != nil {
		s.logger.Error("reload failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, models.ReloadResponse{
		SnapshotID: snap.ID,
		Entries:    snap.Size(),
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	snap := s.engine.Snapshot()
	resp := models.StatusResponse{
		Entries: snap.Size(),
	}
	if snap != nil {
		resp.SnapshotID = snap.ID
	}
	resp.Config = map[string]interface{}{
		"corpus_source":    s.config.Corpus.Source,
		"strong_threshold": s.config.Match.Strong,
		"weak_threshold":   s.config.Match.Weak,
		"gap":              s.config.Match.Gap,
		"fuzzy_accept":     s.config.Match.FuzzyAccept,
		"fail_limit":       s.config.Match.FailLimit,
		"top_k":            s.config.Match.TopK,
		"synonym_provider": s.config.Synonym.Provider,
		"watch_enabled":    s.config.Watch.Enabled,
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
