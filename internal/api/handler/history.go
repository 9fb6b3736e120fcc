package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mcoot/geofinder-go/internal/api/response"
	"github.com/mcoot/geofinder-go/internal/model"
	"github.com/mcoot/geofinder-go/internal/services/history"
)

const defaultHistoryLimit = 20

// HistoryHandler serves completed-game summaries
type HistoryHandler struct {
	history *history.Service
	logger  *slog.Logger
}

// NewHistoryHandler creates a history handler
func NewHistoryHandler(svc *history.Service, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{
		history: svc,
		logger:  logger.With(slog.String("component", "history_handler")),
	}
}

// RecentGamesResponse is the recent games endpoint body
type RecentGamesResponse struct {
	Games []*model.GameSummary `json:"games"`
}

// Recent handles GET /api/v1/games/recent
func (h *HistoryHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.Error(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	games, err := h.history.RecentGames(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to fetch recent games", slog.Any("error", err))
		response.Error(w, http.StatusInternalServerError, "could not fetch recent games")
		return
	}
	if games == nil {
		games = []*model.GameSummary{}
	}

	response.JSON(w, http.StatusOK, RecentGamesResponse{Games: games})
}
