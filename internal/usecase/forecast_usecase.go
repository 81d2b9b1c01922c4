package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"interview-forecaster/internal/config"
	"interview-forecaster/internal/export"
	"interview-forecaster/internal/forecast"
	"interview-forecaster/internal/model"
	"interview-forecaster/internal/repository"
	"interview-forecaster/internal/service"

	"github.com/google/uuid"
)

type ForecastRequest struct {
	Resume         string
	JobDescription string
	Model          string
	QuestionCount  int
}

type ForecastUsecase struct {
	analysisRepo *repository.AnalysisRepository
	completions  map[string]service.CompletionServiceInterface
	cfg          *config.ForecastConfig
}

func NewForecastUsecase(analysisRepo *repository.AnalysisRepository, completions map[string]service.CompletionServiceInterface, cfg *config.ForecastConfig) *ForecastUsecase {
	return &ForecastUsecase{analysisRepo: analysisRepo, completions: completions, cfg: cfg}
}

// QuestionCount maps the interaction mode to a concrete count.
func (uc *ForecastUsecase) QuestionCount(mode string) int {
	if mode == "short" {
		return uc.cfg.ShortQuestions
	}
	return uc.cfg.FullQuestions
}

// Forecast runs one analysis end to end: build prompt, one model round
// trip, parse, store. Strictly linear and single-shot; a failure at any
// step surfaces to the caller with nothing stored.
func (uc *ForecastUsecase) Forecast(ctx context.Context, req ForecastRequest) (*model.Analysis, error) {
	completion, err := uc.completionFor(uc.cfg.Provider)
	if err != nil {
		return nil, err
	}

	prompt := forecast.BuildPrompt(req.Resume, req.JobDescription, req.QuestionCount)

	log.Printf("Requesting %d questions from model %q", req.QuestionCount, req.Model)
	reply, err := completion.Complete(ctx, req.Model, prompt)
	if err != nil {
		return nil, err
	}

	result, err := forecast.ParseReply(reply)
	if err != nil {
		return nil, err
	}
	if len(result.Questions) != req.QuestionCount {
		// The count is a request to the model, not a post-condition.
		log.Printf("Model returned %d questions, requested %d", len(result.Questions), req.QuestionCount)
	}

	analysis := &model.Analysis{
		ID:        uuid.New(),
		Model:     req.Model,
		Requested: req.QuestionCount,
		Result:    result,
		CreatedAt: time.Now(),
	}
	if err := uc.analysisRepo.Save(analysis); err != nil {
		return nil, err
	}
	return analysis, nil
}

// CribSheet renders the stored analysis as a PDF.
func (uc *ForecastUsecase) CribSheet(id string) ([]byte, error) {
	analysis, err := uc.analysisRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return export.CribSheet(analysis.Result)
}

func (uc *ForecastUsecase) GetAnalysis(id string) (*model.Analysis, error) {
	return uc.analysisRepo.FindByID(id)
}

// Discard drops a stored analysis. Results are ephemeral session state,
// so the UI discards them once the user moves on.
func (uc *ForecastUsecase) Discard(id string) error {
	if _, err := uc.analysisRepo.FindByID(id); err != nil {
		return err
	}
	uc.analysisRepo.Delete(id)
	return nil
}

func (uc *ForecastUsecase) completionFor(provider string) (service.CompletionServiceInterface, error) {
	completion, ok := uc.completions[provider]
	if !ok {
		return nil, fmt.Errorf("no completion service configured for provider %q", provider)
	}
	return completion, nil
}
