package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"pitchside/assessment"
	"pitchside/config"
	"pitchside/metrics"
	"pitchside/repository"
)

// ErrInvalidAssessmentResponse marks a remote reply that parsed as JSON but
// did not match the four-corner result shape.
var ErrInvalidAssessmentResponse = errors.New("remote assessment response does not match the four-corner shape")

type AnthropicClient struct {
	httpClient *http.Client
	url        string
	model      string
	apiKey     string
}

func NewAnthropicClient(apiKey string) *AnthropicClient {
	return &AnthropicClient{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		url:        config.Env().AnthropicURL,
		model:      config.Env().AnthropicModel,
		apiKey:     apiKey,
	}
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

// GenerateAssessment sends one request per call: no retry, and a failed call
// with a configured key is a hard error rather than a silent fallback to the
// deterministic scorer.
func (c *AnthropicClient) GenerateAssessment(ctx context.Context, data assessment.GuidedAssessment, playerName, position, ageGroup string) (*repository.AssessmentResult, error) {
	body, err := json.Marshal(anthropicRequest{
		Model:     c.model,
		MaxTokens: 1200,
		System:    assessment.SystemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: assessment.BuildPrompt(data, playerName, position, ageGroup)},
		},
	})
	if err != nil {
		return nil, err
	}
	request, err := http.NewRequestWithContext(ctx, "POST", c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("x-api-key", c.apiKey)
	request.Header.Set("anthropic-version", "2023-06-01")

	t := time.Now()
	response, err := c.httpClient.Do(request)
	metrics.AnthropicRequestDuration.Observe(time.Since(t).Seconds())
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	metrics.AnthropicResponseCounter.WithLabelValues(strconv.Itoa(response.StatusCode)).Inc()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, fmt.Errorf("API error %d: %s", response.StatusCode, string(responseBody))
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(responseBody, &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Content) == 0 {
		return nil, fmt.Errorf("%w: empty content", ErrInvalidAssessmentResponse)
	}
	var result repository.AssessmentResult
	if err := json.Unmarshal([]byte(parsed.Content[0].Text), &result); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAssessmentResponse, err)
	}
	if err := validateResult(&result); err != nil {
		return nil, err
	}
	result.IsDemo = false
	return &result, nil
}

func validateResult(result *repository.AssessmentResult) error {
	corners := map[string]repository.CornerRating{
		"technical":     result.Technical,
		"tactical":      result.Tactical,
		"physical":      result.Physical,
		"psychological": result.Psychological,
	}
	for name, corner := range corners {
		if corner.Score < 1 || corner.Score > 5 {
			return fmt.Errorf("%w: %s score %d out of range", ErrInvalidAssessmentResponse, name, corner.Score)
		}
		if corner.Label == "" || corner.Observation == "" {
			return fmt.Errorf("%w: %s is missing label or observation", ErrInvalidAssessmentResponse, name)
		}
	}
	if len(result.Strengths) == 0 || len(result.AreasToImprove) == 0 || result.Summary == "" {
		return fmt.Errorf("%w: missing strengths, areas to improve or summary", ErrInvalidAssessmentResponse)
	}
	return nil
}
