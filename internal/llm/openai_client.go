package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/savantarmorer/wellness-sub001/internal/domain"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a non-clinical relationship wellness assistant.

You receive derived data about a couple: a heuristic analysis (emotional sync score, mood
discrepancies, risk factors), each partner's mood pattern metrics, and per-category
self-assessment averages. Base your conclusions only on the provided data.

Your goals:
- Describe the couple's relational health in clear, warm, neutral language.
- Score each assessment category 0-100 with a trend ("improving", "stable" or "declining").
- Name concrete strengths and challenges visible in the numbers.
- Suggest practical communication exercises and actionable next steps.

Rules:
- Do NOT provide medical or psychological diagnoses.
- Do NOT mention disorders, therapists' clinical techniques by name, or medication.
- Focus on behavior and routines. If data is limited, say so explicitly.
- Write user-facing strings in Brazilian Portuguese.

You must respond as strict JSON with exactly this shape:

{
  "overallHealth": { "score": 0, "trend": "stable" },
  "categories": { "<categoryKey>": { "score": 0, "trend": "stable", "insights": ["..."] } },
  "strengths": ["..."],
  "challenges": ["..."],
  "communicationSuggestions": ["..."],
  "actionItems": ["..."],
  "relationshipDynamics": {
    "positivePatterns": ["..."],
    "concerningPatterns": ["..."],
    "growthAreas": ["..."]
  }
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this couple's derived data.

- "heuristic" contains the rule-based analysis: emotionalSync (mean mood similarity of
  temporally paired entries), moodDiscrepancies, riskFactors and recommendations.
- "user_moods" and "partner_moods" contain each partner's mood pattern metrics
  (variability, stability, resilience) and activity-mood correlations.
- "radar" contains per-category self-assessment averages for both partners (1-10 scale).

JSON:

%s

Based on this data, respond in the required JSON format.`

// AnalysisLLM is the interface for generating relationship analyses with an LLM.
type AnalysisLLM interface {
	// GenerateAnalysis takes a context object and returns the LLM payload,
	// already validated as JSON matching the expected shape.
	GenerateAnalysis(ctx context.Context, analysisCtx *domain.AnalysisContext) (*domain.LLMAnalysisOutput, error)
	// Complete sends raw system/user prompts and returns the model text
	// after verifying it parses as JSON.
	Complete(ctx context.Context, system, user string, temperature float64) (string, error)
}

// OpenAIClient implements AnalysisLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient creates a new OpenAI client for generating analyses.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client:       client,
		model:        model,
		systemPrompt: systemPrompt,
	}
}

// WithSystemPrompt overrides the built-in analysis system prompt, e.g. with
// one managed in Langfuse. Empty prompts are ignored.
func (c *OpenAIClient) WithSystemPrompt(prompt string) *OpenAIClient {
	if c == nil || prompt == "" {
		return c
	}
	c.systemPrompt = prompt
	return c
}

// GenerateAnalysis calls OpenAI to produce the structured analysis payload.
func (c *OpenAIClient) GenerateAnalysis(ctx context.Context, analysisCtx *domain.AnalysisContext) (*domain.LLMAnalysisOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	contextJSON, err := json.MarshalIndent(analysisCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	var output domain.LLMAnalysisOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &output, nil
}

// Complete proxies arbitrary prompts to the model. The result must be valid
// JSON; a non-JSON reply is an ErrOpenAIResponse, distinct from the upstream
// call failing.
func (c *OpenAIClient) Complete(ctx context.Context, system, user string, temperature float64) (string, error) {
	if c == nil {
		return "", ErrOpenAIUnavailable
	}

	params := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system + "\n\nYou must respond with valid JSON only."),
			openai.UserMessage(user),
		},
	}
	if temperature > 0 {
		params.Temperature = openai.Float(temperature)
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("%w: model output is not valid JSON", ErrOpenAIResponse)
	}

	return content, nil
}
