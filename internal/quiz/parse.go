package quiz

import (
	"encoding/json"
	"regexp"
	"strings"

	"quizforge/internal/telemetry"
)

// Candidate is an unvalidated question-shaped object recovered from raw model
// output. Keys and value types are whatever the model happened to emit.
type Candidate map[string]any

// rxFlatObject matches a flat object literal: an opening brace, no nested
// braces inside, and an optional closing brace so that output truncated
// mid-object is still captured for repair.
var rxFlatObject = regexp.MustCompile(`\{[^{}]*\}?`)

// RecoverCandidates turns raw model text into a sequence of candidate
// objects. Strict tier first: the whole trimmed text as one JSON array.
// Fallback tier: scan for flat {...} fragments, repair a missing closing
// brace, and decode each fragment on its own. Individual bad fragments are
// skipped so one broken question never invalidates the batch. Never returns
// an error; unrecoverable input yields an empty sequence.
func RecoverCandidates(raw string) []Candidate {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var arr []any
	if err := json.Unmarshal([]byte(raw), &arr); err == nil {
		out := make([]Candidate, 0, len(arr))
		for _, el := range arr {
			if m, ok := el.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	}

	log := telemetry.L()
	log.Debug().Int("raw_len", len(raw)).Msg("strict_parse_failed_recovering_fragments")

	var out []Candidate
	for _, frag := range rxFlatObject.FindAllString(raw, -1) {
		frag = strings.TrimSpace(frag)
		if !strings.HasSuffix(frag, "}") {
			frag += "}"
		}
		var obj Candidate
		if err := json.Unmarshal([]byte(frag), &obj); err != nil {
			log.Debug().Err(err).Int("frag_len", len(frag)).Msg("fragment_skipped")
			continue
		}
		out = append(out, obj)
	}
	return out
}
