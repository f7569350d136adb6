package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"debate-corpus/pkg/domain"
)

// Label carries the classifier outputs attached to one utterance.
type Label struct {
	Rhetoric string
	Econ     float64
	Soc      float64
	EconStd  float64
	SocStd   float64
	Notes    string
}

var labeledHeader = append(append([]string{}, debateHeader...),
	"rhetoric", "econ", "soc", "econ_std", "soc_std", "notes")

// WriteLabeled writes the assembled dataset with classifier columns appended.
// rows and labels are parallel slices.
func WriteLabeled(path string, rows []domain.DebateRow, labels []Label) error {
	if len(rows) != len(labels) {
		return fmt.Errorf("rows (%d) and labels (%d) length mismatch", len(rows), len(labels))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(labeledHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range rows {
		l := labels[i]
		record := []string{
			r.UtteranceID, r.DebateID, r.Text, string(r.Role), r.Speaker,
			r.Party, r.Winner, r.WinnerParty, strconv.Itoa(r.Year), r.DebateType,
			l.Rhetoric,
			formatScore(l.Econ), formatScore(l.Soc),
			formatScore(l.EconStd), formatScore(l.SocStd),
			l.Notes,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row %s: %w", r.UtteranceID, err)
		}
	}
	w.Flush()
	return w.Error()
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
