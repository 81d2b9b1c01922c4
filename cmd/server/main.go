package main

import (
	"context"
	"errors"
	"log"
	"time"

	"interview-forecaster/internal/config"
	"interview-forecaster/internal/domain/fiber/handler"
	"interview-forecaster/internal/middleware"
	"interview-forecaster/internal/repository"
	"interview-forecaster/internal/service"
	"interview-forecaster/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()
	err := godotenv.Load()
	if err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	openAIConfig := config.LoadOpenAIConfig()
	forecastConfig := config.LoadForecastConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	// The active provider's API key is a startup precondition: a missing
	// credential halts here, before any user action can reach a model
	// call. The model list exposed to clients follows the same provider.
	completions := map[string]service.CompletionServiceInterface{}
	var models []string
	var defaultModel string
	switch forecastConfig.Provider {
	case "gemini":
		geminiConfig := config.LoadGeminiConfig()
		gemini, err := service.NewGeminiService(ctx, geminiConfig)
		if err != nil {
			log.Fatal(err)
		}
		completions["gemini"] = gemini
		models, defaultModel = geminiConfig.Models, geminiConfig.Model
	default:
		openAI, err := service.NewOpenAIService(openAIConfig)
		if err != nil {
			log.Fatal(err)
		}
		completions["openai"] = openAI
		models, defaultModel = openAIConfig.Models, openAIConfig.Model
	}

	analysisRepo := repository.NewAnalysisRepository()
	uc := usecase.NewForecastUsecase(analysisRepo, completions, forecastConfig)
	forecastHandler := handler.NewForecastHandler(uc, models, defaultModel)
	forecastHandler.RegisterRoutes(app)

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}
