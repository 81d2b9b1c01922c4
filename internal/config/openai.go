package config

import (
	"os"
	"strconv"
	"sync"
)

type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Models      []string
	Temperature float64
}

var (
	openAIConfig *OpenAIConfig
	openAIOnce   sync.Once
)

// LoadOpenAIConfig reads the OpenAI settings from the environment once.
// Models is the set of identifiers the API lets callers pick from.
func LoadOpenAIConfig() *OpenAIConfig {
	openAIOnce.Do(func() {
		openAIConfig = &OpenAIConfig{
			APIKey:      os.Getenv("OPENAI_API_KEY"),
			BaseURL:     getEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:       getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
			Models:      []string{"gpt-4o-mini", "gpt-4o"},
			Temperature: getEnvAsFloatOrDefault("OPENAI_TEMPERATURE", 0.7),
		}
	})
	return openAIConfig
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
