package speaker

import (
	"regexp"
	"strings"

	"debate-corpus/pkg/domain"
)

// Generic labels that mean "not a candidate" regardless of roster contents.
var genericModeratorTerms = []string{"moderator", "question", "q", "audience"}

var (
	trailingPeriods = regexp.MustCompile(`\.+$`)
	spaceRun        = regexp.MustCompile(`\s+`)
	parenthetical   = regexp.MustCompile(`\(.*?\)`)
	nonLetter       = regexp.MustCompile(`[^a-z\s]`)
)

// NormalizeLabel cleans a raw speaker label for display: trims, collapses
// internal whitespace, strips trailing periods, title-cases.
func NormalizeLabel(name string) string {
	name = strings.TrimSpace(name)
	name = trailingPeriods.ReplaceAllString(name, "")
	name = spaceRun.ReplaceAllString(name, " ")
	return titleCase(name)
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// matchingKey reduces a name to its comparable form: lowercase, parenthetical
// suffixes like "(Jr)" removed, non-letters stripped, whitespace collapsed.
func matchingKey(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = parenthetical.ReplaceAllString(name, "")
	name = nonLetter.ReplaceAllString(name, "")
	return strings.TrimSpace(spaceRun.ReplaceAllString(name, " "))
}

// Resolver maps raw speaker labels onto canonical debate roles using the
// debate's roster and an ordered rule chain. It never blocks: labels it
// cannot settle come back as RoleNeedsDecision and are filled in by an
// explicit resolution pass over the Decisions cache before assembly.
type Resolver struct {
	decisions *Decisions
}

// NewResolver creates a resolver sharing the given per-run decisions cache.
func NewResolver(decisions *Decisions) *Resolver {
	return &Resolver{decisions: decisions}
}

// Resolve returns exactly one canonical role for a raw label.
//
// Rule order matters and is part of the contract:
//  1. first roster entry (R, D, I, Moderator order) whose name shares any
//     token with the label wins — roster order breaks ties, not overlap size.
//     This is tolerant of honorifics and nicknames but can mismatch rosters
//     that share a surname; kept as-is for parity with the historical data.
//  2. generic moderator vocabulary by substring.
//  3. a bare "president" reference is genuinely ambiguous: consult the
//     per-debate decision cache, else report RoleNeedsDecision.
//  4. default to Moderator.
func (r *Resolver) Resolve(rawLabel string, meta domain.DebateMetadata) domain.CanonicalRole {
	key := matchingKey(NormalizeLabel(rawLabel))
	labelTokens := tokenSet(key)

	for _, entry := range meta.Roster() {
		if entry.Name == "" {
			continue
		}
		if overlaps(labelTokens, tokenSet(matchingKey(entry.Name))) {
			return entry.Role
		}
	}

	for _, term := range genericModeratorTerms {
		if strings.Contains(key, term) {
			return domain.RoleModerator
		}
	}

	if strings.Contains(key, "president") {
		if role, ok := r.decisions.Get(meta.DebateID); ok {
			return role
		}
		return domain.RoleNeedsDecision
	}

	return domain.RoleModerator
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(s) {
		set[tok] = struct{}{}
	}
	return set
}

func overlaps(a, b map[string]struct{}) bool {
	for tok := range a {
		if _, ok := b[tok]; ok {
			return true
		}
	}
	return false
}
