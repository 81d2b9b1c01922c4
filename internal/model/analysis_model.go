package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	CategoryBehavioral = "behavioral"
	CategoryTechnical  = "technical"
)

// InterviewQuestion is one predicted question with its drafted STAR answer.
// Category and Confidence are taken from the model verbatim: the category
// is an open string and the confidence is not clamped to [0,1].
type InterviewQuestion struct {
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// AnalysisResult is the parsed reply for one resume/job-description pair.
// Question order is the model's emission order and is preserved through
// display and export. Fields are write-once after parsing.
type AnalysisResult struct {
	Questions      []InterviewQuestion `json:"questions"`
	Summary        string              `json:"summary"`
	KeySkills      []string            `json:"key_skills"`
	ExperienceGaps []string            `json:"experience_gaps"`
}

// Analysis is one stored forecast, held in memory for the lifetime of a
// user interaction only.
type Analysis struct {
	ID        uuid.UUID       `json:"id"`
	Model     string          `json:"model"`
	Requested int             `json:"requested_questions"`
	Result    *AnalysisResult `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}
