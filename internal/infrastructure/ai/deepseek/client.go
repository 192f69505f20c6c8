// Package deepseek provides recipe generation through the DeepSeek
// chat completions API.
package deepseek

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Totao923/pantry-buddy-pro-sub001/internal/domain/recipe"
	aicodec "github.com/Totao923/pantry-buddy-pro-sub001/internal/infrastructure/ai"
	"github.com/Totao923/pantry-buddy-pro-sub001/internal/ports/outbound"
	"go.uber.org/zap"
)

const defaultAPIURL = "https://api.deepseek.com/v1/chat/completions"

// Config holds DeepSeek API settings.
type Config struct {
	APIKey  string
	APIURL  string
	Model   string
	Timeout time.Duration
}

// Client talks to the DeepSeek chat completions API.
type Client struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
	logger *zap.Logger
}

var _ outbound.AIProvider = (*Client)(nil)

// NewClient creates a DeepSeek client. An error is returned when the
// API key is missing, so misconfiguration surfaces at startup rather
// than on the first request.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("deepseek: API key must be set")
	}
	if cfg.APIURL == "" {
		cfg.APIURL = defaultAPIURL
	}
	if cfg.Model == "" {
		cfg.Model = "deepseek-chat"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}

	return &Client{
		apiKey: cfg.APIKey,
		apiURL: cfg.APIURL,
		model:  cfg.Model,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger.Named("deepseek-client"),
	}, nil
}

// Name identifies the provider in logs.
func (c *Client) Name() string { return "deepseek" }

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type request struct {
	Model            string            `json:"model"`
	Messages         []message         `json:"messages"`
	ResponseFormat   map[string]string `json:"response_format"`
	Temperature      float64           `json:"temperature"`
	TopP             float64           `json:"top_p"`
	FrequencyPenalty float64           `json:"frequency_penalty"`
	PresencePenalty  float64           `json:"presence_penalty"`
}

const systemPrompt = `You are a professional chef and nutritionist. Respond in the JSON format described by the user's output format. All numeric fields must be numbers, not strings.`

// GenerateRecipe sends the encoded prompt to the API and parses the
// structured reply.
func (c *Client) GenerateRecipe(ctx context.Context, prompt string) (*recipe.Recipe, error) {
	reqBody := request{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		ResponseFormat: map[string]string{
			"type": "json_object",
		},
		Temperature:      0.9,
		TopP:             0.9,
		FrequencyPenalty: 0.5,
		PresencePenalty:  0.5,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("no response from API")
	}

	c.logger.Debug("deepseek completion successful", zap.Int("choices", len(result.Choices)))

	return aicodec.ParseRecipeJSON(result.Choices[0].Message.Content)
}

// HealthCheck verifies the API key works by listing models.
func (c *Client) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://api.deepseek.com/v1/models", nil)
	if err != nil {
		return fmt.Errorf("failed to create health check request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("deepseek health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("deepseek health check failed with status %d", resp.StatusCode)
	}
	return nil
}
