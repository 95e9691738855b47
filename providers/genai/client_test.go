package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/reality-check/api-go/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidateResponse(text string) string {
	payload := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	}
	raw, _ := json.Marshal(payload)
	return string(raw)
}

func TestAnalyzeScenarioReturnsComputationVerbatim(t *testing.T) {
	computation := `{
		"items": [{"name": "pizza slice", "activity": "running", "burnMinutes": 28, "eatMinutes": 4, "ratio": 7}],
		"totalCalories": 285,
		"totalBurnMinutes": 28,
		"reportMarkdown": "# Reality Check"
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, ":generateContent")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Write([]byte(candidateResponse(computation)))
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL, APIKey: "test-key"}
	scenario := types.Scenario{Foods: []types.FoodItem{{Name: "pizza slice", CaloriesKcal: 285, EatMinutes: 4}}}

	result, err := client.AnalyzeScenario(context.Background(), scenario)
	require.NoError(t, err)
	assert.Equal(t, 285.0, result.TotalCalories)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "running", result.Items[0].Activity)
	assert.Equal(t, "# Reality Check", result.ReportMarkdown)
}

func TestAnalyzeImageReturnsFoodList(t *testing.T) {
	foods := `[{"name": "banana", "serving": "1 medium", "caloriesKcal": 105, "eatMinutes": 3, "servings": 1, "baseCaloriesKcal": 105, "baseEatMinutes": 3}]`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(candidateResponse(foods)))
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL, APIKey: "test-key"}
	result, err := client.AnalyzeImage(context.Background(), "aW1hZ2U=", "image/jpeg")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "banana", result[0].Name)
	assert.Equal(t, 105, result[0].CaloriesKcal)
}

func TestAnalyzeScenarioProviderFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL, APIKey: "test-key"}
	_, err := client.AnalyzeScenario(context.Background(), types.Scenario{})
	assert.Error(t, err)
}

func TestAnalyzeScenarioEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL, APIKey: "test-key"}
	_, err := client.AnalyzeScenario(context.Background(), types.Scenario{})
	assert.Error(t, err)
}
