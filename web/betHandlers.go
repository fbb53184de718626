package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"propsTracker/models"
	"propsTracker/services/betService"
)

func (s *Server) handleGetBets(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	bets, err := betService.GetBets(s.db, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, map[string]interface{}{"bets": bets})
}

func (s *Server) handleGetBet(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	betID := mux.Vars(r)["bet_id"]

	bet, err := betService.GetBet(s.db, userID, betID)
	if err != nil {
		if errors.Is(err, betService.ErrBetNotFound) {
			writeError(w, http.StatusNotFound, "bet not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, bet)
}

func (s *Server) handleCreateBet(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var bet models.Bet
	if err := json.NewDecoder(r.Body).Decode(&bet); err != nil {
		writeError(w, http.StatusBadRequest, "invalid bet payload")
		return
	}

	if err := betService.CreateBet(s.db, userID, &bet); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(bet)
}

func (s *Server) handleUpdateBet(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	betID := mux.Vars(r)["bet_id"]

	var updates map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		writeError(w, http.StatusBadRequest, "invalid update payload")
		return
	}

	bet, err := betService.UpdateBet(s.db, userID, betID, updates)
	if err != nil {
		if errors.Is(err, betService.ErrBetNotFound) {
			writeError(w, http.StatusNotFound, "bet not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, bet)
}

func (s *Server) handleDeleteBet(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	betID := mux.Vars(r)["bet_id"]

	if err := betService.DeleteBet(s.db, userID, betID); err != nil {
		if errors.Is(err, betService.ErrBetNotFound) {
			writeError(w, http.StatusNotFound, "bet not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, map[string]string{"status": "deleted"})
}

func (s *Server) handleGetStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	stats, err := betService.GetUserStats(s.db, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, stats)
}

type refreshRequest struct {
	BetIDs []string `json:"bet_ids"`
}

func (s *Server) handleRefreshProps(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.BetIDs) == 0 {
		writeError(w, http.StatusBadRequest, "bet_ids required")
		return
	}

	bets, err := betService.RefreshBets(s.db, s.refresher, userID, req.BetIDs)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if s.wsHub != nil {
		s.wsHub.BroadcastRefresh(bets)
	}
	writeJSON(w, map[string]interface{}{"bets": bets})
}

func (s *Server) handleRefreshParlayLegs(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.BetIDs) == 0 {
		writeError(w, http.StatusBadRequest, "bet_ids required")
		return
	}

	parlays, err := betService.RefreshParlayLegs(s.db, s.refresher, userID, req.BetIDs)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if s.wsHub != nil {
		s.wsHub.BroadcastRefresh(parlays)
	}
	writeJSON(w, map[string]interface{}{"bets": parlays})
}
