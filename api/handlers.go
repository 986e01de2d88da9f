package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/DanaramPradeep/crypto-tracker/prefs"
	"github.com/DanaramPradeep/crypto-tracker/refresh"
	"github.com/DanaramPradeep/crypto-tracker/store"
	"github.com/DanaramPradeep/crypto-tracker/view"
)

// DashboardResponse is the full payload the rendering collaborator draws
type DashboardResponse struct {
	Cards  []view.Card    `json:"cards"`
	Header view.Header    `json:"header"`
	Status refresh.Status `json:"status"`
	Theme  prefs.Theme    `json:"theme"`
}

func (s *Server) dashboardPayload() DashboardResponse {
	return DashboardResponse{
		Cards:  view.Cards(s.store.Projection(), s.store.Favorites()),
		Header: view.BuildHeader(s.controller.Header()),
		Status: s.controller.Status(),
		Theme:  s.prefs.Theme(),
	}
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.dashboardPayload())
}

func (s *Server) handleCoinDetail(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	asset, found := s.store.Coin(id)
	if !found {
		writeError(w, http.StatusNotFound, "unknown coin id")
		return
	}

	series := s.chartService.History(r.Context(), id)
	detail := view.BuildDetail(asset, s.store.IsFavorite(id), series)
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Term string `json:"term"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.store.SetSearchTerm(body.Term)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSort(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	key, err := store.ParseSortKey(body.Key)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.store.SetSortKey(key)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleFavoritesOnly(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Enabled bool `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.store.SetFavoritesOnly(body.Enabled)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	favorite, err := s.store.ToggleFavorite(id)
	if err != nil {
		log.Printf("API: failed to persist favorites: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to persist favorites")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":       id,
		"favorite": favorite,
	})
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Theme string `json:"theme"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.prefs.SetTheme(prefs.Theme(body.Theme)); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRetry(w http.ResponseWriter, r *http.Request) {
	s.controller.Retry()
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":       "ok",
		"has_snapshot": s.controller.Healthy(),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("API: failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
