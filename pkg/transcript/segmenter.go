package transcript

import (
	"fmt"
	"regexp"
	"strings"

	"debate-corpus/pkg/domain"
)

// Segmenter converts one raw transcript into an ordered sequence of
// speaker-attributed utterances. Implementations are format-specific; the
// format is declared by configuration, never sniffed from content.
type Segmenter interface {
	Segment(debateID, text string) ([]domain.Utterance, error)
}

// ForFormat returns the segmenter for a declared transcript format.
func ForFormat(tag domain.FormatTag) (Segmenter, error) {
	switch tag {
	case domain.FormatAllCapsInline:
		return NewInlineCapsSegmenter(), nil
	case domain.FormatAllCapsNewline:
		return NewNewlineCapsSegmenter(), nil
	case domain.FormatTitleNewline:
		return NewTitleSegmenter(), nil
	default:
		return nil, fmt.Errorf("unknown transcript format %q", tag)
	}
}

var (
	// A speaker label is a run of two or more uppercase letters/spaces at the
	// start of a line, ending in a colon. The inline variant allows utterance
	// text on the same line; the newline variant requires the label to be the
	// whole line.
	inlineLabelPattern  = regexp.MustCompile(`(?m)^([A-Z][A-Z ]+):[ \t]?`)
	newlineLabelPattern = regexp.MustCompile(`(?m)^([A-Z][A-Z ]+):[ \t]*$`)

	whitespaceRun = regexp.MustCompile(`\s+`)
)

// CapsSegmenter handles the two all-caps label formats. The only difference
// between them is whether the utterance text starts on the label line or on
// the next line, so they share one label-position scan.
type CapsSegmenter struct {
	label *regexp.Regexp
}

// NewInlineCapsSegmenter segments "SPEAKER: text..." transcripts.
func NewInlineCapsSegmenter() *CapsSegmenter {
	return &CapsSegmenter{label: inlineLabelPattern}
}

// NewNewlineCapsSegmenter segments transcripts where "SPEAKER:" stands alone
// and the utterance begins on the following line.
func NewNewlineCapsSegmenter() *CapsSegmenter {
	return &CapsSegmenter{label: newlineLabelPattern}
}

// Segment finds every label occurrence and takes the span up to the next
// label (or end of file) as that speaker's utterance. A transcript with no
// recognized labels yields zero utterances, which is not an error.
func (s *CapsSegmenter) Segment(debateID, text string) ([]domain.Utterance, error) {
	text = normalizeNewlines(text)

	matches := s.label.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil, nil
	}

	utterances := make([]domain.Utterance, 0, len(matches))
	for i, m := range matches {
		speaker := strings.TrimSpace(text[m[2]:m[3]])

		start := m[1] // end of the full label match (colon and optional space consumed)
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		body := NormalizeBody(text[start:end])
		if body == "" {
			continue
		}

		utterances = append(utterances, domain.Utterance{
			Sequence: len(utterances) + 1,
			DebateID: debateID,
			Speaker:  speaker,
			Text:     body,
		})
	}

	return utterances, nil
}

// NormalizeBody collapses all whitespace (including newlines) to single
// spaces and trims the result.
func NormalizeBody(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
