package domain

import "strconv"

// FormatTag identifies which segmentation strategy a transcript file needs.
// Format is assigned by external configuration, never inferred from content.
type FormatTag string

const (
	// FormatAllCapsInline: "SPEAKER NAME: text on the same line".
	FormatAllCapsInline FormatTag = "all_caps_inline"
	// FormatAllCapsNewline: "SPEAKER NAME:" with the text starting on the next line.
	FormatAllCapsNewline FormatTag = "all_caps_newline"
	// FormatTitleNewline: short honorific lines ("Mr. Smith.") followed by text lines.
	FormatTitleNewline FormatTag = "title_newline"
)

// Valid reports whether t is one of the three known transcript formats.
func (t FormatTag) Valid() bool {
	switch t {
	case FormatAllCapsInline, FormatAllCapsNewline, FormatTitleNewline:
		return true
	}
	return false
}

// TranscriptFile is one raw debate transcript, read once and never mutated.
type TranscriptFile struct {
	DebateID string    // stable identifier, the file stem (e.g. "1960_1_Presidential_Nixon_Kennedy")
	Format   FormatTag // declared by configuration
	Text     string    // full raw text
}

// CanonicalRole is one of the four fixed speaker categories that anchor all
// name variants appearing in transcripts.
type CanonicalRole string

const (
	RoleCandidateR CanonicalRole = "Candidate_R"
	RoleCandidateD CanonicalRole = "Candidate_D"
	RoleCandidateI CanonicalRole = "Candidate_I"
	RoleModerator  CanonicalRole = "Moderator"

	// RoleNeedsDecision is the sentinel outcome for labels (like a bare
	// "President") that the roster and generic rules cannot settle. It must be
	// replaced by an explicit per-debate decision before assembly.
	RoleNeedsDecision CanonicalRole = "needs_decision"
)

// Utterance is one contiguous span of speech attributed to a single speaker
// within a transcript. Sequence is 1-based and contiguous in source order.
type Utterance struct {
	Sequence int           `bson:"sequence" json:"sequence"`
	DebateID string        `bson:"debate_id" json:"debate_id"`
	Speaker  string        `bson:"speaker" json:"speaker"` // verbatim speaker label
	Role     CanonicalRole `bson:"role,omitempty" json:"role,omitempty"`
	Text     string        `bson:"text" json:"text"` // whitespace-normalized, never empty
}

// ID returns the conventional utterance identifier "<debate_id>_<sequence>".
func (u Utterance) ID() string {
	return u.DebateID + "_" + strconv.Itoa(u.Sequence)
}

// DebateMetadata is one row of the authoritative debate reference table.
// Read-only input to role resolution and assembly.
type DebateMetadata struct {
	DebateID   string // matches the transcript file stem
	Year       int
	DebateType string // "Presidential" or "Vice presidential"
	CandidateR string
	CandidateD string
	CandidateI string
	Moderator  string
	Winner     string
}

// Roster returns the candidate/moderator names in roster order. Resolution is
// first-match over this order, so the order itself is part of the contract.
func (m DebateMetadata) Roster() []RosterEntry {
	return []RosterEntry{
		{Name: m.CandidateR, Role: RoleCandidateR},
		{Name: m.CandidateD, Role: RoleCandidateD},
		{Name: m.CandidateI, Role: RoleCandidateI},
		{Name: m.Moderator, Role: RoleModerator},
	}
}

// RosterEntry pairs a known name with its canonical role for one debate.
type RosterEntry struct {
	Name string
	Role CanonicalRole
}

// DebateRow is a fully assembled utterance record: the utterance joined with
// debate-level metadata. Immutable once produced.
type DebateRow struct {
	UtteranceID string        `bson:"utterance_id" json:"utterance_id"`
	DebateID    string        `bson:"debate_id" json:"debate_id"`
	Text        string        `bson:"text" json:"text"`
	Role        CanonicalRole `bson:"role" json:"role"`
	Speaker     string        `bson:"speaker" json:"speaker"` // canonical name from the roster
	Party       string        `bson:"party,omitempty" json:"party,omitempty"`
	Winner      string        `bson:"winner" json:"winner"`
	WinnerParty string        `bson:"winner_party,omitempty" json:"winner_party,omitempty"`
	Year        int           `bson:"year" json:"year"`
	DebateType  string        `bson:"debate_type" json:"debate_type"`
}
