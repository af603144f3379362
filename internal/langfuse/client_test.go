package langfuse

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClient_Disabled(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{
			name:   "empty base URL",
			config: Config{BaseURL: "", PublicKey: "pk", SecretKey: "sk"},
		},
		{
			name:   "empty public key",
			config: Config{BaseURL: "http://localhost", PublicKey: "", SecretKey: "sk"},
		},
		{
			name:   "empty secret key",
			config: Config{BaseURL: "http://localhost", PublicKey: "pk", SecretKey: ""},
		},
		{
			name:   "all empty",
			config: Config{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.config)
			if c.IsEnabled() {
				t.Error("expected client to be disabled")
			}
		})
	}
}

func TestNewClient_Enabled(t *testing.T) {
	c := NewClient(Config{
		BaseURL:     "http://localhost:3000",
		PublicKey:   "pk-test",
		SecretKey:   "sk-test",
		Environment: "test",
	})

	if !c.IsEnabled() {
		t.Error("expected client to be enabled")
	}
}

func TestCreateTrace_DisabledClient(t *testing.T) {
	c := NewClient(Config{}) // disabled

	traceID, err := c.CreateTrace(context.Background(), TraceInput{
		UserID: "user-123",
		Name:   "test-trace",
		Input:  map[string]any{"key": "value"},
		Output: map[string]any{"result": "ok"},
	})

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if traceID != "" {
		t.Errorf("expected empty trace ID, got %s", traceID)
	}
}

func TestCreateScore_DisabledClient(t *testing.T) {
	c := NewClient(Config{}) // disabled

	err := c.CreateScore(context.Background(), ScoreInput{
		TraceID: "trace-123",
		Name:    "analysis_feedback",
		Value:   4.0,
		Comment: "Great!",
	})

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

// waitForRequest blocks until the handler signals receipt or the test times out.
func waitForRequest(t *testing.T, received chan struct{}) {
	t.Helper()
	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for ingestion request")
	}
}

func TestCreateTrace_EnabledClient(t *testing.T) {
	var receivedBody map[string]any
	var receivedAuth string
	received := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Check auth header
		user, pass, ok := r.BasicAuth()
		if ok {
			receivedAuth = user + ":" + pass
		}

		// Read body
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &receivedBody)

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"successes":[],"errors":[]}`))
		close(received)
	}))
	defer server.Close()

	c := NewClient(Config{
		BaseURL:     server.URL,
		PublicKey:   "pk-test",
		SecretKey:   "sk-test",
		Environment: "testing",
	})

	traceID, err := c.CreateTrace(context.Background(), TraceInput{
		UserID: "user-123",
		Name:   "relationship-analysis",
		Input:  map[string]any{"window_days": 30},
		Output: map[string]any{"overall_health": 75},
		Tags:   []string{"wellness"},
	})

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if traceID == "" {
		t.Error("expected non-empty trace ID")
	}

	// Sends are fire-and-forget, wait until the server sees the event
	waitForRequest(t, received)

	// Verify auth
	if receivedAuth != "pk-test:sk-test" {
		t.Errorf("expected auth pk-test:sk-test, got %s", receivedAuth)
	}

	// Verify payload structure
	batch, ok := receivedBody["batch"].([]any)
	if !ok || len(batch) != 1 {
		t.Fatal("expected batch with 1 event")
	}

	event := batch[0].(map[string]any)
	if event["type"] != "trace-create" {
		t.Errorf("expected type trace-create, got %v", event["type"])
	}

	body := event["body"].(map[string]any)
	if body["name"] != "relationship-analysis" {
		t.Errorf("expected name relationship-analysis, got %v", body["name"])
	}
	if body["userId"] != "user-123" {
		t.Errorf("expected userId user-123, got %v", body["userId"])
	}
	if body["id"] != traceID {
		t.Errorf("expected trace id %s, got %v", traceID, body["id"])
	}

	// Check environment is in metadata
	metadata := body["metadata"].(map[string]any)
	if metadata["environment"] != "testing" {
		t.Errorf("expected environment testing, got %v", metadata["environment"])
	}
}

func TestCreateScore_EnabledClient(t *testing.T) {
	var receivedBody map[string]any
	received := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &receivedBody)
		w.WriteHeader(http.StatusOK)
		close(received)
	}))
	defer server.Close()

	c := NewClient(Config{
		BaseURL:   server.URL,
		PublicKey: "pk-test",
		SecretKey: "sk-test",
	})

	err := c.CreateScore(context.Background(), ScoreInput{
		TraceID: "trace-abc123",
		Name:    "analysis_feedback",
		Value:   4.5,
		Comment: "Muito útil!",
	})

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	waitForRequest(t, received)

	// Verify payload structure
	batch := receivedBody["batch"].([]any)
	event := batch[0].(map[string]any)

	if event["type"] != "score-create" {
		t.Errorf("expected type score-create, got %v", event["type"])
	}

	body := event["body"].(map[string]any)
	if body["traceId"] != "trace-abc123" {
		t.Errorf("expected traceId trace-abc123, got %v", body["traceId"])
	}
	if body["name"] != "analysis_feedback" {
		t.Errorf("expected name analysis_feedback, got %v", body["name"])
	}
	if body["value"] != 4.5 {
		t.Errorf("expected value 4.5, got %v", body["value"])
	}
	if body["comment"] != "Muito útil!" {
		t.Errorf("expected comment, got %v", body["comment"])
	}
}

func TestCreateTrace_ServerError(t *testing.T) {
	received := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		close(received)
	}))
	defer server.Close()

	c := NewClient(Config{
		BaseURL:   server.URL,
		PublicKey: "pk-test",
		SecretKey: "sk-test",
	})

	traceID, err := c.CreateTrace(context.Background(), TraceInput{
		Name: "test",
	})

	// Trace ID is generated locally and returned regardless of delivery
	if traceID == "" {
		t.Error("expected trace ID even on server failure")
	}

	// Delivery is async, so the call itself never surfaces the failure
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	waitForRequest(t, received)
}

func TestCreateTrace_PreservesExplicitID(t *testing.T) {
	c := NewClient(Config{
		BaseURL:   "http://localhost:3000",
		PublicKey: "pk-test",
		SecretKey: "sk-test",
	})

	traceID, err := c.CreateTrace(context.Background(), TraceInput{
		ID:   "otel-trace-id-123",
		Name: "test",
	})

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if traceID != "otel-trace-id-123" {
		t.Errorf("expected explicit trace ID to be kept, got %s", traceID)
	}
}
