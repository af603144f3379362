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

type AssessmentHandler struct {
	assessmentService service.AssessmentService
	trendsService     service.TrendsService
}

func NewAssessmentHandler(assessmentService service.AssessmentService, trendsService service.TrendsService) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentService: assessmentService,
		trendsService:     trendsService,
	}
}

// Create handles POST /v1/users/{userId}/assessments
// @Summary Submit a daily assessment
// @Description Submit the day's category ratings. Only one assessment per user per UTC day is accepted.
// @Tags assessments
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CreateAssessmentRequest true "Daily category ratings"
// @Success 201 {object} domain.DailyAssessment
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 409 {object} problem.Problem "Assessment already submitted today"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/assessments [post]
func (h *AssessmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	assessment, err := h.assessmentService.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrAlreadySubmittedToday) {
			problem.Conflict("An assessment was already submitted today").Write(w)
			return
		}
		problem.InternalError("Failed to create assessment").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(assessment)
}

// List handles GET /v1/users/{userId}/assessments
// @Summary List daily assessments
// @Description Fetch paginated assessment history, newest first. Filter by date range.
// @Tags assessments
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param from query string false "Start of range (RFC3339)" format(date-time)
// @Param to query string false "End of range (RFC3339)" format(date-time)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.AssessmentListResponse
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/assessments [get]
func (h *AssessmentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	filter, fieldErrors := parseAssessmentFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.assessmentService.List(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list assessments").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetTimeSeries handles GET /v1/users/{userId}/assessments/time-series
// @Summary Get couple time series
// @Description Merge the user's and their partner's daily assessments into per-date points keyed by category. Days a side did not submit carry no keys for that side.
// @Tags assessments
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param window_days query integer false "Number of days to aggregate" default(30) minimum(1) maximum(365)
// @Success 200 {array} domain.TimeSeriesPoint
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/assessments/time-series [get]
func (h *AssessmentHandler) GetTimeSeries(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	windowDays := parseIntParam(r, "window_days", service.DefaultTrendsWindowDays)
	if windowDays < 1 || windowDays > 365 {
		problem.BadRequest("window_days must be between 1 and 365").Write(w)
		return
	}

	points, err := h.trendsService.TimeSeries(r.Context(), userID, windowDays)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to build time series").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(points)
}

// GetRadar handles GET /v1/users/{userId}/assessments/radar
// @Summary Get couple radar data
// @Description Per-category averages for the user and their partner over the window, for radar chart rendering. A side without data is null.
// @Tags assessments
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param window_days query integer false "Number of days to aggregate" default(30) minimum(1) maximum(365)
// @Success 200 {array} domain.RadarPoint
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/assessments/radar [get]
func (h *AssessmentHandler) GetRadar(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	windowDays := parseIntParam(r, "window_days", service.DefaultTrendsWindowDays)
	if windowDays < 1 || windowDays > 365 {
		problem.BadRequest("window_days must be between 1 and 365").Write(w)
		return
	}

	points, err := h.trendsService.Radar(r.Context(), userID, windowDays)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to build radar data").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(points)
}

func parseAssessmentFilter(r *http.Request) (domain.AssessmentFilter, []problem.FieldError) {
	var filter domain.AssessmentFilter
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

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultValue int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}
