package model

// Question is one validated multiple-choice question. Options keep whatever
// letter-prefixed form the model produced ("A. ..."); only the count of four
// is enforced. Answer is a single uppercase letter in A..D.
type Question struct {
	Text        string   `json:"question" validate:"notblank"`
	Options     []string `json:"options" validate:"len=4"`
	Answer      string   `json:"answer" validate:"oneof=A B C D"`
	Explanation string   `json:"explanation"`
}

// PublicQuestion is the view handed to a quiz taker before scoring: the
// answer letter is stripped.
type PublicQuestion struct {
	Text        string   `json:"question"`
	Options     []string `json:"options"`
	Explanation string   `json:"explanation,omitempty"`
}

// Public strips the answer from a question.
func (q Question) Public() PublicQuestion {
	return PublicQuestion{Text: q.Text, Options: q.Options, Explanation: q.Explanation}
}

// CheckResult is one graded question in a check-answers response.
type CheckResult struct {
	Question      string `json:"question"`
	YourAnswer    string `json:"your_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	Explanation   string `json:"explanation"`
}
