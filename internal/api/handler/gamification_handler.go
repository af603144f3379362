package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/savantarmorer/wellness-sub001/internal/domain"
	"github.com/savantarmorer/wellness-sub001/internal/service"
	"github.com/savantarmorer/wellness-sub001/pkg/problem"
)

// GamificationHandler handles stats, achievements and notifications.
type GamificationHandler struct {
	service service.GamificationService
}

func NewGamificationHandler(service service.GamificationService) *GamificationHandler {
	return &GamificationHandler{service: service}
}

// GetStats handles GET /v1/users/{userId}/stats
// @Summary Get user stats
// @Description Derive streak, totals, completion rates, level and improving categories from assessment history.
// @Tags gamification
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.UserStats
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/stats [get]
func (h *GamificationHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	stats, err := h.service.GetUserStats(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute user stats").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

// ListAchievements handles GET /v1/users/{userId}/achievements
// @Summary List achievements
// @Description Return the achievement catalog with the user's unlock state.
// @Tags gamification
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {array} domain.AchievementStatus
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/achievements [get]
func (h *GamificationHandler) ListAchievements(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	achievements, err := h.service.ListAchievements(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list achievements").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(achievements)
}

// CheckAchievements handles POST /v1/users/{userId}/achievements/check
// @Summary Check for new achievements
// @Description Evaluate unlock conditions against current stats. Returns only newly unlocked achievements; each unlocks at most once.
// @Tags gamification
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {array} domain.AchievementStatus
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/achievements/check [post]
func (h *GamificationHandler) CheckAchievements(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	unlocked, err := h.service.CheckAchievements(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to check achievements").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(unlocked)
}

// ListNotifications handles GET /v1/users/{userId}/notifications
// @Summary List notifications
// @Description Return the user's stored notifications, newest first.
// @Tags gamification
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param limit query integer false "Maximum results" default(20) minimum(1) maximum(100)
// @Success 200 {array} domain.Notification
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/notifications [get]
func (h *GamificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	limit := parseIntParam(r, "limit", 20)
	if limit < 1 || limit > 100 {
		problem.BadRequest("limit must be between 1 and 100").Write(w)
		return
	}

	notifications, err := h.service.ListNotifications(r.Context(), userID, limit)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list notifications").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(notifications)
}
