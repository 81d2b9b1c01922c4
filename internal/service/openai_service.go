package service

import (
	"context"
	"fmt"
	"log"

	"interview-forecaster/internal/config"
	"interview-forecaster/internal/forecast"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

type OpenAIService struct {
	cfg    *config.OpenAIConfig
	client *resty.Client
}

// NewOpenAIService fails fast when the API key is missing so a broken
// credential is caught at startup, not on the first user action.
func NewOpenAIService(cfg *config.OpenAIConfig) (*OpenAIService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY not set")
	}
	return &OpenAIService{
		cfg:    cfg,
		client: resty.New().SetBaseURL(cfg.BaseURL),
	}, nil
}

// Complete sends one chat completion request and returns the first
// choice's text. Single round trip under the transport default timeout.
func (s *OpenAIService) Complete(ctx context.Context, model string, prompt string) (string, error) {
	if model == "" {
		model = s.cfg.Model
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"model":       model,
			"temperature": s.cfg.Temperature,
			"messages": []map[string]string{
				{"role": "system", "content": forecast.SystemInstruction},
				{"role": "user", "content": prompt},
			},
		}).
		Post("/chat/completions")
	if err != nil {
		return "", &ModelRequestError{Provider: "openai", Reason: "transport error", Err: err}
	}

	body := resp.String()
	if resp.IsError() {
		apiMessage := gjson.Get(body, "error.message").String()
		if apiMessage == "" {
			apiMessage = body
		}
		log.Printf("OpenAI API error: status %d: %s", resp.StatusCode(), apiMessage)
		return "", &ModelRequestError{
			Provider: "openai",
			Reason:   fmt.Sprintf("status %d: %s", resp.StatusCode(), apiMessage),
		}
	}

	text := gjson.Get(body, "choices.0.message.content").String()
	if text == "" {
		return "", &ModelRequestError{Provider: "openai", Reason: "no completion choices in response"}
	}
	return text, nil
}
