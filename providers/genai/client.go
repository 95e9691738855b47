package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/reality-check/api-go/types"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.0-flash"
)

// Client talks to the generative-AI API that owns all nutritional
// computation. Nothing it returns is recomputed locally.
type Client struct {
	BaseURL    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
}

type generatePart struct {
	Text       string          `json:"text,omitempty"`
	InlineData *inlineDataPart `json:"inline_data,omitempty"`
}

type inlineDataPart struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents         []generateContent `json:"contents"`
	GenerationConfig struct {
		ResponseMimeType string `json:"response_mime_type"`
	} `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

const scenarioPrompt = `You are a fitness reality-check engine. Given the scenario JSON below
(user profile, preferences, options, food list), compute for each food the
minutes of the selected activity needed to burn it, shock-factor annual
projections when requested, short education notes, totals, and a markdown
report. Respond with a single JSON object with fields: items (name,
activity, burnMinutes, eatMinutes, ratio), totalCalories, totalBurnMinutes,
shockFactor (timesPerYear, annualCalories, annualBurnHours,
equivalentWeightKg) or null, educationNotes, reportMarkdown.

Scenario:
`

const imagePrompt = `Identify every distinct food in this photo. Respond with a JSON array of
objects with fields: name, serving (label like "1 slice"), caloriesKcal
(integer, for the visible portion), eatMinutes (integer minutes to eat it),
servings (number), baseCaloriesKcal, baseEatMinutes.`

// AnalyzeScenario sends the whole scenario out and returns the computation
// verbatim.
func (c *Client) AnalyzeScenario(ctx context.Context, scenario types.Scenario) (types.Computation, error) {
	payload, err := json.Marshal(scenario)
	if err != nil {
		return types.Computation{}, fmt.Errorf("serialize scenario: %w", err)
	}

	parts := []generatePart{{Text: scenarioPrompt + string(payload)}}
	text, err := c.generate(ctx, parts)
	if err != nil {
		return types.Computation{}, err
	}

	var computation types.Computation
	if err := json.Unmarshal([]byte(text), &computation); err != nil {
		return types.Computation{}, fmt.Errorf("decode computation: %w", err)
	}
	return computation, nil
}

// AnalyzeImage asks the model to enumerate foods in a photo. imageData is
// base64-encoded.
func (c *Client) AnalyzeImage(ctx context.Context, imageData, mimeType string) ([]types.FoodItem, error) {
	parts := []generatePart{
		{Text: imagePrompt},
		{InlineData: &inlineDataPart{MimeType: mimeType, Data: imageData}},
	}
	text, err := c.generate(ctx, parts)
	if err != nil {
		return nil, err
	}

	var foods []types.FoodItem
	if err := json.Unmarshal([]byte(text), &foods); err != nil {
		return nil, fmt.Errorf("decode food list: %w", err)
	}
	return foods, nil
}

func (c *Client) generate(ctx context.Context, parts []generatePart) (string, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	model := c.Model
	if model == "" {
		model = defaultModel
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}

	var reqBody generateRequest
	reqBody.Contents = []generateContent{{Parts: parts}}
	reqBody.GenerationConfig.ResponseMimeType = "application/json"

	raw, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("serialize analysis request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", base, model, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("create analysis request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute analysis request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read analysis response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("analysis request failed with status %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode analysis response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("analysis response contained no candidates")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
