// Package metadata loads the authoritative debate reference table: one row
// per debate with year, type, the candidate roster, the moderator and the
// declared winner. The table is read once per run and is read-only afterward.
package metadata

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"debate-corpus/pkg/domain"
)

// Table is the loaded reference table, keyed by debate id.
type Table struct {
	byID  map[string]domain.DebateMetadata
	order []string
}

// Load reads the reference CSV. Expected columns (header names, any order):
// filename, year, debate_type, candidate_R, candidate_D, candidate_I,
// moderator, winner. A lone "-" marks a missing value (no third candidate in
// most debates). The debate id is the filename stem.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open metadata table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // trailing bookkeeping columns vary

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read metadata table: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("metadata table %s has no data rows", path)
	}

	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"filename", "year", "debate_type"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("metadata table missing column %q", required)
		}
	}

	t := &Table{byID: make(map[string]domain.DebateMetadata, len(rows)-1)}
	for n, row := range rows[1:] {
		get := func(name string) string {
			i, ok := col[name]
			if !ok || i >= len(row) {
				return ""
			}
			v := strings.TrimSpace(row[i])
			if v == "-" {
				return ""
			}
			return v
		}

		filename := get("filename")
		if filename == "" {
			continue
		}
		debateID := strings.TrimSuffix(filename, ".txt")

		year, err := strconv.Atoi(get("year"))
		if err != nil {
			return nil, fmt.Errorf("metadata row %d: bad year %q", n+2, get("year"))
		}

		meta := domain.DebateMetadata{
			DebateID:   debateID,
			Year:       year,
			DebateType: get("debate_type"),
			CandidateR: get("candidate_R"),
			CandidateD: get("candidate_D"),
			CandidateI: get("candidate_I"),
			Moderator:  get("moderator"),
			Winner:     get("winner"),
		}
		if _, dup := t.byID[debateID]; dup {
			return nil, fmt.Errorf("metadata table has duplicate debate id %s", debateID)
		}
		t.byID[debateID] = meta
		t.order = append(t.order, debateID)
	}

	return t, nil
}

// Get returns the metadata row for a debate id.
func (t *Table) Get(debateID string) (domain.DebateMetadata, bool) {
	m, ok := t.byID[debateID]
	return m, ok
}

// DebateIDs returns all debate ids in table order.
func (t *Table) DebateIDs() []string {
	return append([]string(nil), t.order...)
}

// Len returns the number of debates in the table.
func (t *Table) Len() int {
	return len(t.byID)
}
