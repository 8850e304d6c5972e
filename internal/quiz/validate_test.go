package quiz

import (
	"errors"
	"testing"
)

func fourOptions() []any {
	return []any{"A. one", "B. two", "C. three", "D. four"}
}

func TestValidateCandidateNormalizes(t *testing.T) {
	q, err := ValidateCandidate(Candidate{
		"question": "What does photosynthesis convert?",
		"options":  fourOptions(),
		"answer":   " a ",
	})
	if err != nil {
		t.Fatalf("expected candidate to validate, got %v", err)
	}
	if q.Answer != "A" {
		t.Errorf("answer not normalized to uppercase: got %q", q.Answer)
	}
	if q.Explanation != "" {
		t.Errorf("missing explanation should normalize to empty, got %q", q.Explanation)
	}
	if len(q.Options) != 4 {
		t.Errorf("expected 4 options, got %d", len(q.Options))
	}
}

func TestValidateCandidateTruncatesExtraOptions(t *testing.T) {
	q, err := ValidateCandidate(Candidate{
		"question": "Q",
		"options":  []any{"A. 1", "B. 2", "C. 3", "D. 4", "E. 5", "F. 6"},
		"answer":   "C",
	})
	if err != nil {
		t.Fatalf("expected over-generated options to be truncated, got %v", err)
	}
	if len(q.Options) != 4 {
		t.Fatalf("expected options truncated to 4, got %d", len(q.Options))
	}
	if q.Options[3] != "D. 4" {
		t.Errorf("truncation must keep the first four options, got %v", q.Options)
	}
}

func TestValidateCandidateRejects(t *testing.T) {
	testCases := []struct {
		name      string
		candidate Candidate
		want      error
	}{
		{
			name:      "missing question text",
			candidate: Candidate{"options": fourOptions(), "answer": "A"},
			want:      ErrEmptyQuestionText,
		},
		{
			name:      "whitespace-only question text",
			candidate: Candidate{"question": "  \t", "options": fourOptions(), "answer": "A"},
			want:      ErrEmptyQuestionText,
		},
		{
			name:      "three options",
			candidate: Candidate{"question": "Q", "options": []any{"A. 1", "B. 2", "C. 3"}, "answer": "A"},
			want:      ErrInvalidOptionCount,
		},
		{
			name:      "options not a sequence",
			candidate: Candidate{"question": "Q", "options": "A. 1", "answer": "A"},
			want:      ErrInvalidOptionCount,
		},
		{
			name:      "answer outside A-D",
			candidate: Candidate{"question": "Q", "options": fourOptions(), "answer": "E"},
			want:      ErrInvalidAnswerLetter,
		},
		{
			name:      "answer is a full option string",
			candidate: Candidate{"question": "Q", "options": fourOptions(), "answer": "A. one"},
			want:      ErrInvalidAnswerLetter,
		},
		{
			name:      "missing answer",
			candidate: Candidate{"question": "Q", "options": fourOptions()},
			want:      ErrInvalidAnswerLetter,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateCandidate(tc.candidate)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestValidateCandidateAcceptsAnyAnswerCase(t *testing.T) {
	for _, letter := range []string{"a", "B", "c", "D"} {
		q, err := ValidateCandidate(Candidate{
			"question": "Q",
			"options":  fourOptions(),
			"answer":   letter,
		})
		if err != nil {
			t.Fatalf("letter %q: expected valid, got %v", letter, err)
		}
		if q.Answer < "A" || q.Answer > "D" || len(q.Answer) != 1 {
			t.Errorf("letter %q: answer not normalized, got %q", letter, q.Answer)
		}
	}
}

func TestValidateCandidateStringSliceOptions(t *testing.T) {
	q, err := ValidateCandidate(Candidate{
		"question": "Q",
		"options":  []string{"A. 1", "B. 2", "C. 3", "D. 4"},
		"answer":   "d",
	})
	if err != nil {
		t.Fatalf("expected []string options to validate, got %v", err)
	}
	if q.Answer != "D" {
		t.Errorf("answer not normalized: got %q", q.Answer)
	}
}
