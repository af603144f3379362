package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/savantarmorer/wellness-sub001/internal/domain"
	"github.com/savantarmorer/wellness-sub001/internal/llm"
)

// mockLLM is a canned-response AnalysisLLM for handler tests.
type mockLLM struct {
	result string
	err    error
}

func (m *mockLLM) GenerateAnalysis(ctx context.Context, analysisCtx *domain.AnalysisContext) (*domain.LLMAnalysisOutput, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.LLMAnalysisOutput{}, nil
}

func (m *mockLLM) Complete(ctx context.Context, system, user string, temperature float64) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.result, nil
}

func TestLLMHandler_Analyze(t *testing.T) {
	t.Run("nil client", func(t *testing.T) {
		handler := NewLLMHandler(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/llm/analyze", strings.NewReader(`{"userPrompt": "olá"}`))
		rec := httptest.NewRecorder()
		handler.Analyze(rec, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("expected status 503, got %d", rec.Code)
		}
	})

	t.Run("successful completion", func(t *testing.T) {
		handler := NewLLMHandler(&mockLLM{result: `{"resumo": "tudo bem"}`})

		body := `{"systemPrompt": "Você é um assistente.", "userPrompt": "Como estamos?", "temperature": 0.5}`
		req := httptest.NewRequest(http.MethodPost, "/v1/llm/analyze", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		handler.Analyze(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var response AnalyzeResponse
		if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if response.Result != `{"resumo": "tudo bem"}` {
			t.Errorf("unexpected result: %s", response.Result)
		}
	})

	t.Run("missing user prompt", func(t *testing.T) {
		handler := NewLLMHandler(&mockLLM{})

		req := httptest.NewRequest(http.MethodPost, "/v1/llm/analyze", strings.NewReader(`{"systemPrompt": "oi"}`))
		rec := httptest.NewRecorder()
		handler.Analyze(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
	})

	t.Run("invalid JSON body", func(t *testing.T) {
		handler := NewLLMHandler(&mockLLM{})

		req := httptest.NewRequest(http.MethodPost, "/v1/llm/analyze", strings.NewReader(`{invalid}`))
		rec := httptest.NewRecorder()
		handler.Analyze(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
	})

	t.Run("non-JSON model output", func(t *testing.T) {
		handler := NewLLMHandler(&mockLLM{err: llm.ErrOpenAIResponse})

		req := httptest.NewRequest(http.MethodPost, "/v1/llm/analyze", strings.NewReader(`{"userPrompt": "olá"}`))
		rec := httptest.NewRecorder()
		handler.Analyze(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected status 500, got %d", rec.Code)
		}

		var response AnalyzeError
		if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if response.Error != "Resposta inválida do modelo" {
			t.Errorf("unexpected error message: %s", response.Error)
		}
		if response.Details == "" {
			t.Error("expected error details")
		}
	})

	t.Run("request failure", func(t *testing.T) {
		handler := NewLLMHandler(&mockLLM{err: llm.ErrOpenAIRequest})

		req := httptest.NewRequest(http.MethodPost, "/v1/llm/analyze", strings.NewReader(`{"userPrompt": "olá"}`))
		rec := httptest.NewRecorder()
		handler.Analyze(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected status 500, got %d", rec.Code)
		}

		var response AnalyzeError
		if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if response.Error != "Erro ao processar análise" {
			t.Errorf("unexpected error message: %s", response.Error)
		}
	})
}
