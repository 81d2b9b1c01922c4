package config

import (
	"sync"
)

type ForecastConfig struct {
	Provider       string // "openai" or "gemini"
	ShortQuestions int
	FullQuestions  int
}

var (
	forecastConfig *ForecastConfig
	forecastOnce   sync.Once
)

// LoadForecastConfig reads the forecaster knobs from the environment once.
// Short mode is a quick pass, full mode is the default interview prep set.
func LoadForecastConfig() *ForecastConfig {
	forecastOnce.Do(func() {
		forecastConfig = &ForecastConfig{
			Provider:       getEnvOrDefault("FORECAST_PROVIDER", "openai"),
			ShortQuestions: getEnvAsIntOrDefault("FORECAST_SHORT_QUESTIONS", 3),
			FullQuestions:  getEnvAsIntOrDefault("FORECAST_FULL_QUESTIONS", 10),
		}
	})
	return forecastConfig
}
