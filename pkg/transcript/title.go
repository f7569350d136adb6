package transcript

import (
	"regexp"
	"strings"

	"debate-corpus/pkg/domain"
)

// maxSpeakerLineLen bounds how long a title-format speaker line can be.
// Real speaker lines ("Mr. Smith.", "The President.") are short; anything
// longer is utterance text that happens to end with a period.
const maxSpeakerLineLen = 30

// A title-format speaker line is an honorific (optionally followed by a
// single capitalized name token) terminated by a period, standing alone on
// its own line.
var titleSpeakerPattern = regexp.MustCompile(
	`^(Mr\.|Ms\.|Mrs\.|President|The President|Governor|Gov\.|Senator|Sen\.|Question|Q|Moderator)(?:\s+[A-Z][a-z]+)?\.$`)

// TitleSegmenter segments transcripts where speakers are announced by short
// honorific lines rather than all-caps labels. All lines between two speaker
// lines accumulate as the current speaker's utterance.
type TitleSegmenter struct{}

// NewTitleSegmenter creates a segmenter for the title-newline format.
func NewTitleSegmenter() *TitleSegmenter {
	return &TitleSegmenter{}
}

// Segment scans line by line. Text before the first recognized speaker line
// is discarded; no preamble utterance is ever emitted. The trailing period on
// the speaker line is stripped before storage.
func (s *TitleSegmenter) Segment(debateID, text string) ([]domain.Utterance, error) {
	lines := strings.Split(normalizeNewlines(text), "\n")

	var utterances []domain.Utterance
	var speaker string
	var current []string

	flush := func() {
		if speaker == "" || len(current) == 0 {
			return
		}
		body := NormalizeBody(strings.Join(current, " "))
		if body == "" {
			return
		}
		utterances = append(utterances, domain.Utterance{
			Sequence: len(utterances) + 1,
			DebateID: debateID,
			Speaker:  strings.TrimRight(speaker, "."),
			Text:     body,
		})
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if isSpeakerLine(trimmed) {
			flush()
			current = current[:0]
			speaker = trimmed
			continue
		}
		if speaker != "" {
			current = append(current, trimmed)
		}
	}
	flush()

	return utterances, nil
}

func isSpeakerLine(line string) bool {
	return len(line) <= maxSpeakerLineLen &&
		strings.HasSuffix(line, ".") &&
		titleSpeakerPattern.MatchString(line)
}
