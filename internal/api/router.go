package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/geofinder-go/internal/api/handler"
	"github.com/mcoot/geofinder-go/internal/game"
	"github.com/mcoot/geofinder-go/internal/middleware"
	"github.com/mcoot/geofinder-go/internal/services/history"
	"github.com/mcoot/geofinder-go/internal/transport/ws"
)

// RouterConfig holds the dependencies the router wires together
type RouterConfig struct {
	Logger   *slog.Logger
	Registry *game.Registry
	History  *history.Service
}

// NewRouter builds the full HTTP surface: the websocket endpoint that
// carries all gameplay, and a small REST surface for health and
// completed-game history
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger, middleware.DefaultPanicHandler)
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Handle("/ws", ws.NewHandler(cfg.Registry, cfg.Logger)).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	historyHandler := handler.NewHistoryHandler(cfg.History, cfg.Logger)
	api.HandleFunc("/games/recent", historyHandler.Recent).Methods(http.MethodGet)

	healthHandler := handler.NewHealthHandler(cfg.Registry)
	api.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)

	return r
}
