package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/savantarmorer/wellness-sub001/internal/domain"
	"github.com/savantarmorer/wellness-sub001/internal/langfuse"
	"github.com/savantarmorer/wellness-sub001/internal/llm"
	"github.com/savantarmorer/wellness-sub001/internal/service"
	"github.com/savantarmorer/wellness-sub001/pkg/problem"
	"go.opentelemetry.io/otel/trace"
)

// AnalysisHandler handles relationship sync and analysis endpoints.
type AnalysisHandler struct {
	syncService     service.SyncService
	analysisService service.AnalysisService
	langfuseClient  langfuse.Client
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(
	syncService service.SyncService,
	analysisService service.AnalysisService,
	langfuseClient langfuse.Client,
) *AnalysisHandler {
	return &AnalysisHandler{
		syncService:     syncService,
		analysisService: analysisService,
		langfuseClient:  langfuseClient,
	}
}

// GetSync handles GET /v1/users/{userId}/relationship/sync
// @Summary Get emotional sync analysis
// @Description Correlate both partners' recent mood streams: pairing, similarity, discrepancies, risk factors and recommendations.
// @Tags relationship
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.RelationshipAnalysis
// @Failure 400 {object} problem.Problem "User has no linked partner"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/relationship/sync [get]
func (h *AnalysisHandler) GetSync(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	analysis, err := h.syncService.AnalyzeSync(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrNoPartner) {
			problem.BadRequest("User has no linked partner").Write(w)
			return
		}
		problem.InternalError("Failed to analyze emotional sync").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(analysis)
}

// Generate handles POST /v1/users/{userId}/relationship/analysis
// @Summary Generate a relationship analysis
// @Description Run the full analysis pipeline and persist the result. With source=llm the heuristic context is sent to the LLM and its narrative is normalized into the same shape.
// @Tags relationship
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param source query string false "Analysis source" Enums(heuristic, llm) default(heuristic)
// @Success 201 {object} domain.AnalysisResponse
// @Failure 400 {object} problem.Problem "Invalid parameters or no linked partner"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 502 {object} problem.Problem "LLM error"
// @Failure 503 {object} problem.Problem "LLM service unavailable"
// @Router /users/{userId}/relationship/analysis [post]
func (h *AnalysisHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	source := domain.SourceHeuristic
	if s := r.URL.Query().Get("source"); s != "" {
		switch domain.AnalysisSource(s) {
		case domain.SourceHeuristic, domain.SourceLLM:
			source = domain.AnalysisSource(s)
		default:
			problem.BadRequest("source must be one of: heuristic, llm").Write(w)
			return
		}
	}

	analysis, err := h.analysisService.Generate(r.Context(), userID, source)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrNoPartner) {
			problem.BadRequest("User has no linked partner").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			problem.New(http.StatusServiceUnavailable, "service-unavailable", "Service Unavailable", "OpenAI service is not configured").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIRequest) || errors.Is(err, llm.ErrOpenAIResponse) {
			problem.New(http.StatusBadGateway, "llm-error", "LLM Error", "Failed to generate analysis from LLM").Write(w)
			return
		}
		problem.InternalError("Failed to generate analysis").Write(w)
		return
	}

	response := domain.AnalysisResponse{Analysis: *analysis}

	// Attach OTEL trace ID (if present) to response for feedback linking
	span := trace.SpanFromContext(r.Context())
	if span.SpanContext().IsValid() {
		response.TraceID = span.SpanContext().TraceID().String()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(response)
}

// GetLatest handles GET /v1/users/{userId}/relationship/analysis
// @Summary Get the latest analysis
// @Description Return the most recently generated analysis for the user.
// @Tags relationship
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.AnalysisRecord
// @Failure 404 {object} problem.Problem "No analysis found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/relationship/analysis [get]
func (h *AnalysisHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	record, err := h.analysisService.Latest(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("No analysis found").Write(w)
			return
		}
		problem.InternalError("Failed to get analysis").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}

// History handles GET /v1/users/{userId}/relationship/analysis/history
// @Summary List analysis history
// @Description List persisted analyses for the user, newest first.
// @Tags relationship
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param limit query integer false "Maximum results" default(20) minimum(1) maximum(100)
// @Success 200 {array} domain.AnalysisRecord
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/relationship/analysis/history [get]
func (h *AnalysisHandler) History(w http.ResponseWriter, r *http.Request) {
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

	records, err := h.analysisService.History(r.Context(), userID, limit)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list analysis history").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

// FeedbackRequest is the request body for analysis feedback.
// @Description Request body for submitting feedback on a generated analysis.
type FeedbackRequest struct {
	// Trace ID from the analysis response
	TraceID string `json:"trace_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Rating score (1-5)
	Score int `json:"score" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" example:"A análise fez sentido para nós."`
}

// PostFeedback handles POST /v1/users/{userId}/relationship/analysis/feedback
// @Summary Submit feedback on an analysis
// @Description Submit a user rating and optional comment for a previous analysis response.
// @Tags relationship
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param body body FeedbackRequest true "Feedback request"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/relationship/analysis/feedback [post]
func (h *AnalysisHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	if _, err := uuid.Parse(chi.URLParam(r, "userId")); err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}

	if req.TraceID == "" {
		problem.BadRequest("trace_id is required").Write(w)
		return
	}
	if req.Score < 1 || req.Score > 5 {
		problem.BadRequest("score must be between 1 and 5").Write(w)
		return
	}

	// Create score in Langfuse (errors are logged but don't fail the request)
	_ = h.langfuseClient.CreateScore(r.Context(), langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "analysis_feedback",
		Value:   float64(req.Score),
		Comment: req.Comment,
	})

	w.WriteHeader(http.StatusNoContent)
}
