package forecast

import "fmt"

// SystemInstruction is sent as the system role on every completion.
const SystemInstruction = "You are an expert interview coach who predicts likely interview questions and drafts strong answers in the candidate's voice."

// BuildPrompt embeds both input texts verbatim and states the reply
// schema literally. Pure templating, no branching beyond the three
// parameters.
func BuildPrompt(resume, jobDescription string, questionCount int) string {
	return fmt.Sprintf(`Analyze the resume and job description below and predict the interview questions this candidate is most likely to face.

Return your answer STRICTLY in JSON format with this schema:
%s

Requirements:
- Generate exactly %d questions.
- Mix "behavioral" and "technical" categories.
- Every answer must follow the STAR structure (Situation, Task, Action, Result) and take 60-90 seconds to say out loud.
- Ground technical questions in the technologies named by the job description.
- Ground behavioral questions in the role's stated requirements.

Resume:
%s

Job Description:
%s
`, SchemaExample, questionCount, resume, jobDescription)
}
