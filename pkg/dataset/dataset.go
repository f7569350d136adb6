// Package dataset reads and writes the CSV artifacts the pipelines produce:
// the assembled debate dataset, the article table, and the labeled dataset.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"debate-corpus/pkg/domain"
)

var debateHeader = []string{
	"utterance_id", "debate_id", "text", "role", "speaker", "party",
	"winner", "winner_party", "year", "debate_type",
}

var articleHeader = []string{
	"year", "theme", "outlet", "outlet_leaning", "article_number",
	"headline", "body", "fingerprint", "word_count", "source_file",
}

// WriteDebateRows writes the assembled dataset to path, header first.
func WriteDebateRows(path string, rows []domain.DebateRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(debateHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.UtteranceID, r.DebateID, r.Text, string(r.Role), r.Speaker,
			r.Party, r.Winner, r.WinnerParty, strconv.Itoa(r.Year), r.DebateType,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row %s: %w", r.UtteranceID, err)
		}
	}
	w.Flush()
	return w.Error()
}

// ReadDebateRows loads an assembled dataset written by WriteDebateRows.
func ReadDebateRows(path string) ([]domain.DebateRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty file", path)
	}

	idx, err := headerIndex(records[0], debateHeader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	rows := make([]domain.DebateRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		year, err := strconv.Atoi(rec[idx["year"]])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: bad year %q", path, i+2, rec[idx["year"]])
		}
		rows = append(rows, domain.DebateRow{
			UtteranceID: rec[idx["utterance_id"]],
			DebateID:    rec[idx["debate_id"]],
			Text:        rec[idx["text"]],
			Role:        domain.CanonicalRole(rec[idx["role"]]),
			Speaker:     rec[idx["speaker"]],
			Party:       rec[idx["party"]],
			Winner:      rec[idx["winner"]],
			WinnerParty: rec[idx["winner_party"]],
			Year:        year,
			DebateType:  rec[idx["debate_type"]],
		})
	}
	return rows, nil
}

// WriteArticles writes the cleaned article table to path.
func WriteArticles(path string, articles []domain.ArticleRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(articleHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, a := range articles {
		record := []string{
			strconv.Itoa(a.Year), a.Theme, a.Outlet, a.OutletLeaning,
			strconv.Itoa(a.ArticleNumber), a.Headline, a.Body,
			a.Fingerprint, strconv.Itoa(a.WordCount), a.SourceFile,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write article %s#%d: %w", a.SourceFile, a.ArticleNumber, err)
		}
	}
	w.Flush()
	return w.Error()
}

// ReadArticles loads an article table written by WriteArticles.
func ReadArticles(path string) ([]domain.ArticleRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty file", path)
	}

	idx, err := headerIndex(records[0], articleHeader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	articles := make([]domain.ArticleRecord, 0, len(records)-1)
	for i, rec := range records[1:] {
		year, err := strconv.Atoi(rec[idx["year"]])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: bad year %q", path, i+2, rec[idx["year"]])
		}
		number, err := strconv.Atoi(rec[idx["article_number"]])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: bad article_number %q", path, i+2, rec[idx["article_number"]])
		}
		wordCount, err := strconv.Atoi(rec[idx["word_count"]])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: bad word_count %q", path, i+2, rec[idx["word_count"]])
		}
		articles = append(articles, domain.ArticleRecord{
			Year:          year,
			Theme:         rec[idx["theme"]],
			Outlet:        rec[idx["outlet"]],
			OutletLeaning: rec[idx["outlet_leaning"]],
			ArticleNumber: number,
			Headline:      rec[idx["headline"]],
			Body:          rec[idx["body"]],
			Fingerprint:   rec[idx["fingerprint"]],
			WordCount:     wordCount,
			SourceFile:    rec[idx["source_file"]],
		})
	}
	return articles, nil
}

// headerIndex maps expected column names to their positions in the first
// record, so column order in the file does not matter.
func headerIndex(header, expected []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, name := range expected {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}
	return idx, nil
}
