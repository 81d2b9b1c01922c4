package forecast

// The prompt promises the model a reply shape and the parser enforces
// it. Both sides read the shape from here so they cannot drift apart.

const (
	FieldSummary        = "summary"
	FieldKeySkills      = "key_skills"
	FieldExperienceGaps = "experience_gaps"
	FieldQuestions      = "questions"

	FieldQuestion   = "question"
	FieldAnswer     = "answer"
	FieldCategory   = "category"
	FieldConfidence = "confidence"
)

// QuestionFields are required on every element of the questions array.
var QuestionFields = []string{FieldQuestion, FieldAnswer, FieldCategory, FieldConfidence}

// SchemaExample is the literal reply shape quoted in the prompt.
var SchemaExample = `{
  "` + FieldSummary + `": "<2-3 sentence overview of candidate fit>",
  "` + FieldKeySkills + `": ["<skill the candidate should highlight>", "..."],
  "` + FieldExperienceGaps + `": ["<gap between resume and role>", "..."],
  "` + FieldQuestions + `": [
    {
      "` + FieldQuestion + `": "<the interview question>",
      "` + FieldAnswer + `": "<drafted STAR answer in the candidate's voice>",
      "` + FieldCategory + `": "behavioral" or "technical",
      "` + FieldConfidence + `": <number between 0.0 and 1.0>
    }
  ]
}`
