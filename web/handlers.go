package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"AmHughesAbsalom/SPORTSHUB_TRACKER.git/models"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type resultRequest struct {
	Status    models.MatchStatus `json:"status"`
	HomeScore *int               `json:"homeScore"`
	AwayScore *int               `json:"awayScore"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Unix(),
	})
}

func (s *Server) handleSportOverview(w http.ResponseWriter, r *http.Request) {
	sport, err := models.ParseSport(mux.Vars(r)["sport"])
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	overview, err := s.tracker.SportOverview(r.Context(), sport)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

func (s *Server) handleStandings(w http.ResponseWriter, r *http.Request) {
	sport, err := models.ParseSport(mux.Vars(r)["sport"])
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	table, err := s.tracker.Standings(r.Context(), sport)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sport":     sport,
		"standings": table,
	})
}

func (s *Server) handleMatchAnalysis(w http.ResponseWriter, r *http.Request) {
	matchId, ok := parseMatchId(w, r)
	if !ok {
		return
	}
	analysis, err := s.tracker.MatchAnalysis(r.Context(), matchId)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (s *Server) handleMatchStats(w http.ResponseWriter, r *http.Request) {
	matchId, ok := parseMatchId(w, r)
	if !ok {
		return
	}
	chart, err := s.tracker.MatchChart(r.Context(), matchId)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, chart)
}

func (s *Server) handleRecordResult(w http.ResponseWriter, r *http.Request) {
	matchId, ok := parseMatchId(w, r)
	if !ok {
		return
	}
	var req resultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	match, err := s.tracker.RecordResult(r.Context(), matchId, req.Status, req.HomeScore, req.AwayScore)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, match)
}

func parseMatchId(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	matchId, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid match id")
		return uuid.Nil, false
	}
	return matchId, true
}

// writeServiceError maps domain errors to status codes. Anything unexpected
// is logged and hidden behind a generic 500.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNoStats):
		writeError(w, http.StatusNotFound, "No stats available")
	case errors.Is(err, models.ErrNotFound):
		writeError(w, http.StatusNotFound, "Match not found")
	case errors.Is(err, models.ErrUnknownSport):
		writeError(w, http.StatusBadRequest, "unknown sport")
	case errors.Is(err, models.ErrInvalidMatch):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.log.WithError(err).Error("request failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
