package forecast

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptEmbedsInputsVerbatim(t *testing.T) {
	resume := "10 years of Go, Postgres, and Kafka.\nLed a team of four."
	jd := "Senior Backend Engineer. Kubernetes required."

	prompt := BuildPrompt(resume, jd, 10)

	assert.Contains(t, prompt, resume)
	assert.Contains(t, prompt, jd)
	assert.Contains(t, prompt, "Generate exactly 10 questions.")
}

func TestBuildPromptStatesSchema(t *testing.T) {
	prompt := BuildPrompt("r", "j", 3)

	// The promised shape must match what the parser later requires.
	assert.Contains(t, prompt, SchemaExample)
	for _, field := range QuestionFields {
		assert.Contains(t, prompt, fmt.Sprintf("%q", field))
	}
	assert.Contains(t, prompt, FieldSummary)
	assert.Contains(t, prompt, FieldKeySkills)
	assert.Contains(t, prompt, FieldExperienceGaps)
	assert.Contains(t, prompt, "STAR")
	assert.Contains(t, prompt, "60-90 seconds")
}
