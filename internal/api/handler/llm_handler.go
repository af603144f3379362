package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/savantarmorer/wellness-sub001/internal/llm"
	"github.com/savantarmorer/wellness-sub001/pkg/problem"
)

// LLMHandler exposes a thin completion proxy for clients that assemble
// their own prompts.
type LLMHandler struct {
	client llm.AnalysisLLM
}

func NewLLMHandler(client llm.AnalysisLLM) *LLMHandler {
	return &LLMHandler{client: client}
}

// AnalyzeRequest is the request body for the completion proxy.
// @Description Raw prompt pair for the completion proxy.
type AnalyzeRequest struct {
	SystemPrompt string  `json:"systemPrompt"`
	UserPrompt   string  `json:"userPrompt"`
	Temperature  float64 `json:"temperature,omitempty"`
}

// AnalyzeResponse carries the raw model output, which is always valid JSON.
type AnalyzeResponse struct {
	Result string `json:"result"`
}

// AnalyzeError is the error body returned on completion failures.
type AnalyzeError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Analyze handles POST /v1/llm/analyze
// @Summary Run a raw LLM completion
// @Description Send system and user prompts to the model and return its output. The model is instructed to answer in JSON and the output is verified to parse.
// @Tags llm
// @Accept json
// @Produce json
// @Param request body AnalyzeRequest true "Prompt pair"
// @Success 200 {object} AnalyzeResponse
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 500 {object} AnalyzeError "Completion failed"
// @Failure 503 {object} problem.Problem "LLM service unavailable"
// @Router /llm/analyze [post]
func (h *LLMHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	if h.client == nil {
		problem.New(http.StatusServiceUnavailable, "service-unavailable", "Service Unavailable", "OpenAI service is not configured").Write(w)
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}
	if req.UserPrompt == "" {
		problem.BadRequest("userPrompt is required").Write(w)
		return
	}

	result, err := h.client.Complete(r.Context(), req.SystemPrompt, req.UserPrompt, req.Temperature)
	if err != nil {
		status := http.StatusInternalServerError
		body := AnalyzeError{Error: "Erro ao processar análise", Details: err.Error()}
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			problem.New(http.StatusServiceUnavailable, "service-unavailable", "Service Unavailable", "OpenAI service is not configured").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIResponse) {
			body.Error = "Resposta inválida do modelo"
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AnalyzeResponse{Result: result})
}
