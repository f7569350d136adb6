package speaker

import (
	"fmt"

	"debate-corpus/pkg/domain"
)

// Decisions is the per-run cache of ambiguity resolutions. One resolution is
// recorded per debate id at most once; later writes for the same debate are
// rejected so a decision can never silently change mid-run. The cache is
// created empty at batch start and discarded with the run.
type Decisions struct {
	byDebate map[string]domain.CanonicalRole
}

// NewDecisions creates an empty decisions cache.
func NewDecisions() *Decisions {
	return &Decisions{byDebate: make(map[string]domain.CanonicalRole)}
}

// Get returns the recorded decision for a debate, if any.
func (d *Decisions) Get(debateID string) (domain.CanonicalRole, bool) {
	role, ok := d.byDebate[debateID]
	return role, ok
}

// Put records the decision for a debate. The role must be one of the four
// canonical roles; RoleNeedsDecision is not a decision.
func (d *Decisions) Put(debateID string, role domain.CanonicalRole) error {
	switch role {
	case domain.RoleCandidateR, domain.RoleCandidateD, domain.RoleCandidateI, domain.RoleModerator:
	default:
		return fmt.Errorf("invalid ambiguity decision %q for debate %s", role, debateID)
	}
	if existing, ok := d.byDebate[debateID]; ok {
		if existing == role {
			return nil
		}
		return fmt.Errorf("debate %s already resolved to %s, refusing to overwrite with %s",
			debateID, existing, role)
	}
	d.byDebate[debateID] = role
	return nil
}

// Len returns how many debates have a recorded decision.
func (d *Decisions) Len() int {
	return len(d.byDebate)
}
