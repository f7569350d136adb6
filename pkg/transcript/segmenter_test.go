package transcript

import (
	"testing"

	"debate-corpus/pkg/domain"
)

// TestInlineCaps_TwoSpeakers verifies the basic inline-caps case: two labels,
// two utterances, text on the label line.
func TestInlineCaps_TwoSpeakers(t *testing.T) {
	input := "JOHN SMITH: Hello there.\nJANE DOE: Hi back.\n"

	got, err := NewInlineCapsSegmenter().Segment("1960_1", input)
	if err != nil {
		t.Fatalf("Segment returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Segment returned %d utterances, want 2", len(got))
	}

	want := []struct {
		speaker, text string
	}{
		{"JOHN SMITH", "Hello there."},
		{"JANE DOE", "Hi back."},
	}
	for i, w := range want {
		if got[i].Speaker != w.speaker || got[i].Text != w.text {
			t.Errorf("utterance %d = (%q, %q), want (%q, %q)",
				i, got[i].Speaker, got[i].Text, w.speaker, w.text)
		}
		if got[i].Sequence != i+1 {
			t.Errorf("utterance %d has sequence %d, want %d", i, got[i].Sequence, i+1)
		}
	}
}

// TestInlineCaps_MultilineSpan verifies that an utterance spans lines until
// the next label and that internal newlines collapse to spaces.
func TestInlineCaps_MultilineSpan(t *testing.T) {
	input := "MODERATOR: Good evening\nand welcome.\n\nMR SMITH: Thank you.\n"

	got, err := NewInlineCapsSegmenter().Segment("d", input)
	if err != nil {
		t.Fatalf("Segment returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Segment returned %d utterances, want 2", len(got))
	}
	if got[0].Text != "Good evening and welcome." {
		t.Errorf("first utterance text = %q, want %q", got[0].Text, "Good evening and welcome.")
	}
}

// TestCapsFormats_Equivalent verifies that inline and newline segmentation
// produce identical (speaker, text) pairs for input that differs only in the
// placement of the first newline after the label.
func TestCapsFormats_Equivalent(t *testing.T) {
	inline := "SMITH: We must act now.\nJONES: I disagree\nstrongly.\n"
	newline := "SMITH:\nWe must act now.\nJONES:\nI disagree\nstrongly.\n"

	a, err := NewInlineCapsSegmenter().Segment("d", inline)
	if err != nil {
		t.Fatalf("inline Segment returned error: %v", err)
	}
	b, err := NewNewlineCapsSegmenter().Segment("d", newline)
	if err != nil {
		t.Fatalf("newline Segment returned error: %v", err)
	}

	if len(a) != len(b) {
		t.Fatalf("got %d inline vs %d newline utterances", len(a), len(b))
	}
	for i := range a {
		if a[i].Speaker != b[i].Speaker || a[i].Text != b[i].Text {
			t.Errorf("utterance %d differs: inline (%q, %q) vs newline (%q, %q)",
				i, a[i].Speaker, a[i].Text, b[i].Speaker, b[i].Text)
		}
	}
}

// TestNewlineCaps_IgnoresInlineText verifies the newline variant only treats
// bare "LABEL:" lines as speaker transitions.
func TestNewlineCaps_IgnoresInlineText(t *testing.T) {
	input := "SMITH:\nFirst point.\nNOTE: this is not a label line here\nJONES:\nSecond point.\n"

	got, err := NewNewlineCapsSegmenter().Segment("d", input)
	if err != nil {
		t.Fatalf("Segment returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Segment returned %d utterances, want 2", len(got))
	}
	if got[0].Text != "First point. NOTE: this is not a label line here" {
		t.Errorf("first utterance text = %q", got[0].Text)
	}
}

// TestCapsSegmenter_NoLabels verifies a transcript with zero recognized
// transitions yields zero utterances rather than an error.
func TestCapsSegmenter_NoLabels(t *testing.T) {
	for _, s := range []Segmenter{NewInlineCapsSegmenter(), NewNewlineCapsSegmenter()} {
		got, err := s.Segment("d", "just prose with no speaker labels at all\nmore prose\n")
		if err != nil {
			t.Fatalf("Segment returned error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("Segment returned %d utterances, want 0", len(got))
		}
	}
}

// TestCapsSegmenter_DropsEmptySpans verifies back-to-back labels do not emit
// blank utterances and that sequence numbering stays contiguous.
func TestCapsSegmenter_DropsEmptySpans(t *testing.T) {
	input := "SMITH: First.\nJONES:\nBROWN: Last.\n"

	got, err := NewInlineCapsSegmenter().Segment("d", input)
	if err != nil {
		t.Fatalf("Segment returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Segment returned %d utterances, want 2", len(got))
	}
	for i, u := range got {
		if u.Text == "" {
			t.Errorf("utterance %d has empty text", i)
		}
		if u.Sequence != i+1 {
			t.Errorf("utterance %d has sequence %d, want %d", i, u.Sequence, i+1)
		}
	}
}

// TestTitleSegmenter_Basic covers the honorific-line format scenario from the
// 1984/1992-era transcripts.
func TestTitleSegmenter_Basic(t *testing.T) {
	input := "Mr. Smith.\nI agree with that.\nModerator.\nNext question.\n"

	got, err := NewTitleSegmenter().Segment("1984_1", input)
	if err != nil {
		t.Fatalf("Segment returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Segment returned %d utterances, want 2", len(got))
	}
	if got[0].Speaker != "Mr. Smith" || got[0].Text != "I agree with that." {
		t.Errorf("first utterance = (%q, %q)", got[0].Speaker, got[0].Text)
	}
	if got[1].Speaker != "Moderator" || got[1].Text != "Next question." {
		t.Errorf("second utterance = (%q, %q)", got[1].Speaker, got[1].Text)
	}
}

// TestTitleSegmenter_DiscardsPreamble verifies text before the first speaker
// line never becomes an utterance.
func TestTitleSegmenter_DiscardsPreamble(t *testing.T) {
	input := "October 7, 1984 debate transcript.\nBroadcast from Louisville.\nThe President.\nThank you all.\n"

	got, err := NewTitleSegmenter().Segment("d", input)
	if err != nil {
		t.Fatalf("Segment returned error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Segment returned %d utterances, want 1", len(got))
	}
	if got[0].Speaker != "The President" {
		t.Errorf("speaker = %q, want %q", got[0].Speaker, "The President")
	}
}

func TestIsSpeakerLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"Mr. Smith.", true},
		{"Mrs. Ferraro.", true},
		{"The President.", true},
		{"Senator Dole.", true},
		{"Gov. Clinton.", true},
		{"Q.", true},
		{"Moderator.", true},
		{"Mr. Smith", false},    // no trailing period
		{"Meet Senator Dole.", false}, // honorific must start the line
		{"I think Mr. Smith was right about the economy that year.", false}, // too long
		{"mr. smith.", false}, // honorific must be capitalized
	}
	for _, tt := range tests {
		if got := isSpeakerLine(tt.line); got != tt.want {
			t.Errorf("isSpeakerLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestForFormat(t *testing.T) {
	for _, tag := range []domain.FormatTag{
		domain.FormatAllCapsInline, domain.FormatAllCapsNewline, domain.FormatTitleNewline,
	} {
		if _, err := ForFormat(tag); err != nil {
			t.Errorf("ForFormat(%q) returned error: %v", tag, err)
		}
	}
	if _, err := ForFormat("markdown"); err == nil {
		t.Error("ForFormat accepted an unknown format")
	}
}
