package service

import (
	"context"
	"fmt"

	"interview-forecaster/internal/config"
	"interview-forecaster/internal/forecast"

	"google.golang.org/genai"
)

type GeminiService struct {
	cfg    *config.GeminiConfig
	client *genai.Client
}

func NewGeminiService(ctx context.Context, cfg *config.GeminiConfig) (*GeminiService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiService{cfg: cfg, client: client}, nil
}

func (s *GeminiService) Complete(ctx context.Context, model string, prompt string) (string, error) {
	if model == "" {
		model = s.cfg.Model
	}

	genConfig := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(forecast.SystemInstruction, genai.RoleUser),
	}

	result, err := s.client.Models.GenerateContent(ctx, model, genai.Text(prompt), genConfig)
	if err != nil {
		return "", &ModelRequestError{Provider: "gemini", Reason: "generate content failed", Err: err}
	}
	if err := validateGenerateResponse(result); err != nil {
		return "", &ModelRequestError{Provider: "gemini", Reason: "invalid response", Err: err}
	}
	return result.Text(), nil
}

func validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}
	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}
	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}
	return nil
}
