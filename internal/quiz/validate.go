package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"quizforge/internal/model"
)

var (
	schemaOnce sync.Once
	schema     *validator.Validate
)

func schemaValidator() *validator.Validate {
	schemaOnce.Do(func() {
		schema = validator.New()
		// required passes on whitespace-only strings, so blank stems get
		// their own rule
		_ = schema.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
	return schema
}

// ValidateCandidate normalizes one recovered candidate into a Question or
// reports which rule it broke. Normalization: options truncated to the first
// four (models over-generate), answer trimmed and uppercased, missing
// explanation becomes the empty string. A failure discards only this
// candidate.
func ValidateCandidate(c Candidate) (model.Question, error) {
	q := model.Question{
		Text:        asString(c["question"]),
		Options:     asStringSlice(c["options"], 4),
		Answer:      strings.ToUpper(strings.TrimSpace(asString(c["answer"]))),
		Explanation: asString(c["explanation"]),
	}

	if err := schemaValidator().Struct(q); err != nil {
		var ferrs validator.ValidationErrors
		if errors.As(err, &ferrs) && len(ferrs) > 0 {
			// field errors come back in struct declaration order, which is
			// the rule order: stem, then option count, then answer letter
			switch ferrs[0].StructField() {
			case "Text":
				return model.Question{}, ErrEmptyQuestionText
			case "Options":
				return model.Question{}, fmt.Errorf("%w (got %d)", ErrInvalidOptionCount, len(q.Options))
			case "Answer":
				return model.Question{}, fmt.Errorf("%w (got %q)", ErrInvalidAnswerLetter, q.Answer)
			}
		}
		return model.Question{}, err
	}
	return q, nil
}

// asString renders a candidate value the way the model most likely meant it.
func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", t), "0"), ".")
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		b, _ := json.Marshal(v)
		return string(b)
	}
}

// asStringSlice converts a candidate options value, keeping at most max
// entries. Non-sequence values yield nil so the count rule fails downstream.
func asStringSlice(v any, max int) []string {
	var out []string
	switch t := v.(type) {
	case []any:
		if len(t) > max {
			t = t[:max]
		}
		for _, el := range t {
			out = append(out, asString(el))
		}
	case []string:
		if len(t) > max {
			t = t[:max]
		}
		out = append(out, t...)
	}
	return out
}
