package quiz

import (
	"fmt"
	"strings"
)

const (
	// MaxQuestions caps how many questions one request may ask for.
	MaxQuestions = 20

	DefaultQuestionCount = 2
	DefaultSubject       = "General Knowledge"
	DefaultDifficulty    = "Medium"
)

// jsonShapeInstruction shows the model the exact shape of one question object
// and forbids any text outside the wrapping array.
const jsonShapeInstruction = `Each question must be in strict JSON format like:
{
  "question": "...",
  "options": ["A. ...", "B. ...", "C. ...", "D. ..."],
  "answer": "A",
  "explanation": "..."
}

Wrap all questions in a single JSON array like this:
[ {...}, {...} ]
Important: Do NOT add any text outside the JSON array - only return the raw JSON array.`

// ClampCount bounds a requested question count to MaxQuestions.
func ClampCount(n int) int {
	if n > MaxQuestions {
		return MaxQuestions
	}
	return n
}

// BuildPrompt renders the generation instruction. Pure function of its
// inputs; the orchestrator reuses the same prompt across retries. The count
// is clamped before rendering.
func BuildPrompt(content string, count int, subject, difficulty string) string {
	count = ClampCount(count)

	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d %s-difficulty multiple-choice questions on %s from the following content.\n",
		count, difficulty, subject)
	b.WriteString(jsonShapeInstruction)
	b.WriteString("\n\nContent:\n")
	b.WriteString(content)
	b.WriteByte('\n')
	return b.String()
}
