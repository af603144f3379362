package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/savantarmorer/wellness-sub001/internal/api/validation"
	"github.com/savantarmorer/wellness-sub001/internal/domain"
	"github.com/savantarmorer/wellness-sub001/internal/service"
	"github.com/savantarmorer/wellness-sub001/pkg/problem"
)

type MoodHandler struct {
	moodService     service.MoodService
	analysisService service.MoodAnalysisService
}

func NewMoodHandler(moodService service.MoodService, analysisService service.MoodAnalysisService) *MoodHandler {
	return &MoodHandler{
		moodService:     moodService,
		analysisService: analysisService,
	}
}

// Create handles POST /v1/users/{userId}/mood-entries
// @Summary Record a mood entry
// @Description Log a mood with intensity and optional secondary moods, activities, triggers and social contexts.
// @Tags moods
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CreateMoodEntryRequest true "Mood entry data"
// @Success 201 {object} domain.MoodEntry
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/mood-entries [post]
func (h *MoodHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateMoodEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	entry, err := h.moodService.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to create mood entry").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(entry)
}

// List handles GET /v1/users/{userId}/mood-entries
// @Summary List mood entries
// @Description Fetch paginated mood history, newest first. Filter by timestamp range.
// @Tags moods
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param from query string false "Start of range (RFC3339)" format(date-time)
// @Param to query string false "End of range (RFC3339)" format(date-time)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.MoodEntryListResponse
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/mood-entries [get]
func (h *MoodHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	filter, fieldErrors := parseMoodFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.moodService.List(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list mood entries").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetAnalysis handles GET /v1/users/{userId}/mood-analysis
// @Summary Analyze mood patterns
// @Description Compute mood metrics, activity correlations and insights over the given timeframe. Returns an empty body structure when no entries exist.
// @Tags moods
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param timeframe query string false "Analysis window" Enums(daily, weekly, monthly) default(weekly)
// @Success 200 {object} domain.MoodAnalysis
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/mood-analysis [get]
func (h *MoodHandler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	timeframe := domain.TimeframeWeekly
	if tf := r.URL.Query().Get("timeframe"); tf != "" {
		switch domain.Timeframe(tf) {
		case domain.TimeframeDaily, domain.TimeframeWeekly, domain.TimeframeMonthly:
			timeframe = domain.Timeframe(tf)
		default:
			problem.BadRequest("timeframe must be one of: daily, weekly, monthly").Write(w)
			return
		}
	}

	analysis, err := h.analysisService.Analyze(r.Context(), userID, timeframe)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to analyze mood patterns").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(analysis)
}

func parseMoodFilter(r *http.Request) (domain.MoodEntryFilter, []problem.FieldError) {
	var filter domain.MoodEntryFilter
	var fieldErrors []problem.FieldError

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.From = &from
		}
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.To = &to
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
