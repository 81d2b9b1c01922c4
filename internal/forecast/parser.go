package forecast

import (
	"encoding/json"
	"fmt"
	"strings"

	"interview-forecaster/internal/model"
)

// MalformedReplyError means the model's reply carried no usable JSON
// payload or the payload broke the promised schema.
type MalformedReplyError struct {
	Reason string
	Err    error
}

func (e *MalformedReplyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed model reply: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed model reply: %s", e.Reason)
}

func (e *MalformedReplyError) Unwrap() error {
	return e.Err
}

type rawResult struct {
	Summary        string            `json:"summary"`
	KeySkills      []string          `json:"key_skills"`
	ExperienceGaps []string          `json:"experience_gaps"`
	Questions      []json.RawMessage `json:"questions"`
}

// ParseReply extracts the JSON payload from a raw model reply and
// materializes it into an AnalysisResult. Models routinely wrap the
// payload in prose or code fences, so the payload is taken as the
// slice from the first '{' to the last '}'. Parsing is all-or-nothing:
// any missing question field fails the whole reply.
func ParseReply(raw string) (*model.AnalysisResult, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return nil, &MalformedReplyError{Reason: "no JSON payload found"}
	}
	payload := raw[start : end+1]

	var parsed rawResult
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil, &MalformedReplyError{Reason: "invalid JSON payload", Err: err}
	}

	result := &model.AnalysisResult{
		Summary:        parsed.Summary,
		KeySkills:      parsed.KeySkills,
		ExperienceGaps: parsed.ExperienceGaps,
		Questions:      make([]model.InterviewQuestion, 0, len(parsed.Questions)),
	}
	if result.KeySkills == nil {
		result.KeySkills = []string{}
	}
	if result.ExperienceGaps == nil {
		result.ExperienceGaps = []string{}
	}

	for i, rawQuestion := range parsed.Questions {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(rawQuestion, &fields); err != nil {
			return nil, &MalformedReplyError{Reason: fmt.Sprintf("questions[%d] is not an object", i), Err: err}
		}
		for _, field := range QuestionFields {
			if _, ok := fields[field]; !ok {
				return nil, &MalformedReplyError{Reason: fmt.Sprintf("questions[%d] missing required field %q", i, field)}
			}
		}
		var q model.InterviewQuestion
		if err := json.Unmarshal(rawQuestion, &q); err != nil {
			return nil, &MalformedReplyError{Reason: fmt.Sprintf("questions[%d] has mistyped fields", i), Err: err}
		}
		result.Questions = append(result.Questions, q)
	}

	return result, nil
}
