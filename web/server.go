package web

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"
	"gorm.io/gorm"

	"propsTracker/config"
	"propsTracker/services/propService"
)

type Server struct {
	config     *config.Config
	db         *gorm.DB
	refresher  *propService.Refresher
	wsHub      *Hub
	httpServer *http.Server
	upgrader   websocket.Upgrader
}

func NewServer(cfg *config.Config, db *gorm.DB, refresher *propService.Refresher, hub *Hub) *Server {
	return &Server{
		config:    cfg,
		db:        db,
		refresher: refresher,
		wsHub:     hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (s *Server) Start() error {
	router := mux.NewRouter()

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	api.HandleFunc("/bets", s.handleGetBets).Methods("GET")
	api.HandleFunc("/bets", s.handleCreateBet).Methods("POST")
	api.HandleFunc("/bets/stats", s.handleGetStats).Methods("GET")
	api.HandleFunc("/bets/refresh-props", s.handleRefreshProps).Methods("POST")
	api.HandleFunc("/bets/refresh-parlay-legs", s.handleRefreshParlayLegs).Methods("POST")
	api.HandleFunc("/bets/{bet_id}", s.handleGetBet).Methods("GET")
	api.HandleFunc("/bets/{bet_id}", s.handleUpdateBet).Methods("PUT")
	api.HandleFunc("/bets/{bet_id}", s.handleDeleteBet).Methods("DELETE")

	api.HandleFunc("/sports/{sport}/scores", s.handleGetScores).Methods("GET")
	api.HandleFunc("/sports/{sport}/live", s.handleGetLiveGames).Methods("GET")
	api.HandleFunc("/sports/{sport}/schedule", s.handleGetSchedule).Methods("GET")
	api.HandleFunc("/sports/{sport}/news", s.handleGetSportNews).Methods("GET")
	api.HandleFunc("/sports/{sport}/standings", s.handleGetStandings).Methods("GET")
	api.HandleFunc("/sports/{sport}/players/find", s.handleFindPlayer).Methods("GET")
	api.HandleFunc("/sports/{sport}/players/search", s.handleSearchPlayers).Methods("GET")

	api.HandleFunc("/f1/standings", s.handleGetF1Standings).Methods("GET")
	api.HandleFunc("/f1/races", s.handleGetF1Races).Methods("GET")

	api.HandleFunc("/news/{feed}", s.handleGetFeedNews).Methods("GET")

	router.HandleFunc("/ws", s.handleWebSocket)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := c.Handler(router)

	s.httpServer = &http.Server{
		Addr:         ":" + s.config.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop() {
	if s.httpServer == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Unix(),
	})
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	client := &Client{
		hub:     s.wsHub,
		conn:    conn,
		send:    make(chan []byte, 256),
		userIDs: make(map[string]bool),
	}

	client.hub.register <- client

	welcome := &WSMessage{
		Type: "connected",
		Data: map[string]interface{}{
			"message": "Connected to props tracker",
			"time":    time.Now().Unix(),
		},
	}
	client.send <- marshalMessage(welcome)

	go client.writePump()
	go client.readPump()
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// requireUser reads the caller identity from the X-User-ID header. Every bet
// route is scoped to one user.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := r.Header.Get("X-User-ID")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing X-User-ID header")
		return "", false
	}
	return userID, true
}
