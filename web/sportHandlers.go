package web

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"propsTracker/services/extService"
)

func limitParam(r *http.Request, fallback int, max int) int {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > max {
		return fallback
	}
	return limit
}

func seasonParam(r *http.Request) int {
	season, _ := strconv.Atoi(r.URL.Query().Get("season"))
	if season <= 0 {
		return time.Now().Year()
	}
	return season
}

func (s *Server) handleGetScores(w http.ResponseWriter, r *http.Request) {
	sport := mux.Vars(r)["sport"]

	games, err := extService.GetScores(s.db, sport, limitParam(r, 20, 50))
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, map[string]interface{}{"sport": sport, "games": games})
}

func (s *Server) handleGetLiveGames(w http.ResponseWriter, r *http.Request) {
	sport := mux.Vars(r)["sport"]

	games, err := extService.GetLiveGames(s.db, sport, limitParam(r, 20, 50))
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, map[string]interface{}{"sport": sport, "games": games})
}

func (s *Server) handleGetSchedule(w http.ResponseWriter, r *http.Request) {
	sport := mux.Vars(r)["sport"]

	games, err := extService.GetSchedule(s.db, sport, limitParam(r, 10, 50))
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, map[string]interface{}{"sport": sport, "games": games})
}

func (s *Server) handleGetSportNews(w http.ResponseWriter, r *http.Request) {
	sport := mux.Vars(r)["sport"]

	items, err := extService.GetSportNews(s.db, sport, limitParam(r, 10, 30))
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, map[string]interface{}{"sport": sport, "news": items})
}

func (s *Server) handleGetStandings(w http.ResponseWriter, r *http.Request) {
	sport := strings.ToLower(mux.Vars(r)["sport"])
	season := seasonParam(r)

	switch sport {
	case "nba":
		standings, err := extService.GetNBAStandings(s.db, season)
		if err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writeJSON(w, map[string]interface{}{"sport": sport, "standings": standings})

	case "mlb":
		standings, err := extService.GetMLBStandings(s.db, season)
		if err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writeJSON(w, map[string]interface{}{"sport": sport, "standings": standings})

	case "soccer", "epl", "laliga", "ucl", "europa":
		rows, err := extService.GetSoccerStandings(s.db, sport, season)
		if err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writeJSON(w, map[string]interface{}{"sport": sport, "standings": rows})

	default:
		writeError(w, http.StatusBadRequest, "standings not available for "+sport)
	}
}

func (s *Server) handleFindPlayer(w http.ResponseWriter, r *http.Request) {
	sport := mux.Vars(r)["sport"]
	eventID := r.URL.Query().Get("event_id")
	name := r.URL.Query().Get("name")
	if eventID == "" || name == "" {
		writeError(w, http.StatusBadRequest, "event_id and name required")
		return
	}

	match, err := extService.FindPlayer(s.db, sport, eventID, name)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	if match == nil {
		writeError(w, http.StatusNotFound, "player not found")
		return
	}
	writeJSON(w, match)
}

func (s *Server) handleSearchPlayers(w http.ResponseWriter, r *http.Request) {
	sport := mux.Vars(r)["sport"]
	eventID := r.URL.Query().Get("event_id")
	query := r.URL.Query().Get("q")
	if eventID == "" || query == "" {
		writeError(w, http.StatusBadRequest, "event_id and q required")
		return
	}

	matches, err := extService.SearchPlayers(s.db, sport, eventID, query, limitParam(r, 10, 25))
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, map[string]interface{}{"players": matches})
}

func (s *Server) handleGetF1Standings(w http.ResponseWriter, r *http.Request) {
	standings, err := extService.GetDriverStandings(s.db)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, map[string]interface{}{"standings": standings})
}

func (s *Server) handleGetF1Races(w http.ResponseWriter, r *http.Request) {
	races, err := extService.GetRaces(s.db, limitParam(r, 25, 30))
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, map[string]interface{}{"races": races})
}

func (s *Server) handleGetFeedNews(w http.ResponseWriter, r *http.Request) {
	feed := mux.Vars(r)["feed"]

	items, err := extService.GetFeedNews(s.db, feed, limitParam(r, 10, 30))
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, map[string]interface{}{"feed": feed, "news": items})
}
