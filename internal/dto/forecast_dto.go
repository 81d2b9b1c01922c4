package dto

import (
	"time"

	"interview-forecaster/internal/model"

	"github.com/google/uuid"
)

type ForecastDTO struct {
	ID              uuid.UUID             `json:"id"`
	Model           string                `json:"model"`
	Requested       int                   `json:"requested_questions"`
	TotalQuestions  int                   `json:"total_questions"`
	TechnicalCount  int                   `json:"technical_count"`
	BehavioralCount int                   `json:"behavioral_count"`
	OtherCount      int                   `json:"other_count"`
	Result          *model.AnalysisResult `json:"result"`
	CreatedAt       time.Time             `json:"created_at"`
}

// NewForecastDTO tallies categories alongside the raw result. Labels
// other than the two canonical ones land in OtherCount instead of
// disappearing from the totals.
func NewForecastDTO(a *model.Analysis) ForecastDTO {
	d := ForecastDTO{
		ID:        a.ID,
		Model:     a.Model,
		Requested: a.Requested,
		Result:    a.Result,
		CreatedAt: a.CreatedAt,
	}
	if a.Result == nil {
		return d
	}
	d.TotalQuestions = len(a.Result.Questions)
	for _, q := range a.Result.Questions {
		switch q.Category {
		case model.CategoryTechnical:
			d.TechnicalCount++
		case model.CategoryBehavioral:
			d.BehavioralCount++
		default:
			d.OtherCount++
		}
	}
	return d
}
