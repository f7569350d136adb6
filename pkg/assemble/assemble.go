// Package assemble joins resolved utterances with debate-level metadata to
// produce the final dataset rows.
package assemble

import (
	"fmt"
	"strings"

	"debate-corpus/pkg/domain"
)

// Party labels aligned with the canonical candidate roles.
const (
	PartyRepublican  = "Republican"
	PartyDemocrat    = "Democrat"
	PartyIndependent = "Independent"
)

// outletLeaning maps news outlets onto the same party coding used for the
// debates dataset. WSJ is deliberately left uncoded.
var outletLeaning = map[string]string{
	"nyp": "R",
	"nyt": "D",
	"wsj": "",
}

// Debate merges a debate's resolved utterances with its metadata row. Every
// utterance must already carry one of the four canonical roles; an utterance
// still marked RoleNeedsDecision means the resolution pass was skipped and
// the whole debate is rejected.
func Debate(utterances []domain.Utterance, meta domain.DebateMetadata) ([]domain.DebateRow, error) {
	winnerParty := WinnerParty(meta)

	rows := make([]domain.DebateRow, 0, len(utterances))
	for _, u := range utterances {
		if u.Role == domain.RoleNeedsDecision || u.Role == "" {
			return nil, fmt.Errorf("debate %s: utterance %d has unresolved speaker %q",
				meta.DebateID, u.Sequence, u.Speaker)
		}

		name, party := speakerForRole(u.Role, meta)
		rows = append(rows, domain.DebateRow{
			UtteranceID: u.ID(),
			DebateID:    meta.DebateID,
			Text:        u.Text,
			Role:        u.Role,
			Speaker:     name,
			Party:       party,
			Winner:      meta.Winner,
			WinnerParty: winnerParty,
			Year:        meta.Year,
			DebateType:  meta.DebateType,
		})
	}
	return rows, nil
}

// WinnerParty infers the winning party by matching the declared winner name
// against each roster candidate (case-insensitive containment). Empty when
// the winner is unset or matches nobody.
func WinnerParty(meta domain.DebateMetadata) string {
	winner := strings.ToLower(strings.TrimSpace(meta.Winner))
	if winner == "" {
		return ""
	}
	candidates := []struct {
		name, party string
	}{
		{meta.CandidateR, PartyRepublican},
		{meta.CandidateD, PartyDemocrat},
		{meta.CandidateI, PartyIndependent},
	}
	for _, c := range candidates {
		name := strings.ToLower(strings.TrimSpace(c.name))
		if name != "" && strings.Contains(name, winner) {
			return c.party
		}
	}
	return ""
}

// OutletLeaning returns the party coding for a news outlet, empty when the
// outlet is unknown or intentionally uncoded.
func OutletLeaning(outlet string) string {
	return outletLeaning[strings.ToLower(strings.TrimSpace(outlet))]
}

func speakerForRole(role domain.CanonicalRole, meta domain.DebateMetadata) (string, string) {
	switch role {
	case domain.RoleCandidateR:
		return meta.CandidateR, PartyRepublican
	case domain.RoleCandidateD:
		return meta.CandidateD, PartyDemocrat
	case domain.RoleCandidateI:
		return meta.CandidateI, PartyIndependent
	default:
		return "Moderator", ""
	}
}
