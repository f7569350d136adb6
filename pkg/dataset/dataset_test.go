package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"debate-corpus/pkg/domain"
)

func TestDebateRowsRoundTrip(t *testing.T) {
	rows := []domain.DebateRow{
		{
			UtteranceID: "1960_1_Presidential_Nixon_Kennedy_1",
			DebateID:    "1960_1_Presidential_Nixon_Kennedy",
			Text:        "Good evening. The candidates, need no introduction.",
			Role:        domain.RoleModerator,
			Speaker:     "Moderator",
			Winner:      "Kennedy",
			WinnerParty: "Democrat",
			Year:        1960,
			DebateType:  "Presidential",
		},
		{
			UtteranceID: "1960_1_Presidential_Nixon_Kennedy_2",
			DebateID:    "1960_1_Presidential_Nixon_Kennedy",
			Text:        "Mr. Smith, Mr. Nixon.",
			Role:        domain.RoleCandidateD,
			Speaker:     "John F. Kennedy",
			Party:       "Democrat",
			Winner:      "Kennedy",
			WinnerParty: "Democrat",
			Year:        1960,
			DebateType:  "Presidential",
		},
	}

	path := filepath.Join(t.TempDir(), "debates.csv")
	if err := WriteDebateRows(path, rows); err != nil {
		t.Fatalf("WriteDebateRows: %v", err)
	}

	got, err := ReadDebateRows(path)
	if err != nil {
		t.Fatalf("ReadDebateRows: %v", err)
	}
	if len(got) != len(rows) {
		t.Fatalf("got %d rows, want %d", len(got), len(rows))
	}
	for i := range rows {
		if got[i] != rows[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], rows[i])
		}
	}
}

func TestArticlesRoundTrip(t *testing.T) {
	articles := []domain.ArticleRecord{
		{
			Year:          2016,
			Theme:         "immigration_policy",
			Outlet:        "wsj",
			ArticleNumber: 3,
			Headline:      "Border Plan Draws Fire",
			Body:          "The proposal, announced Tuesday,\ndrew immediate criticism.",
			Fingerprint:   "d41d8cd98f00b204e9800998ecf8427e",
			WordCount:     120,
			SourceFile:    "factiva_immigration_policy_2016_wsj.txt",
		},
	}

	path := filepath.Join(t.TempDir(), "articles.csv")
	if err := WriteArticles(path, articles); err != nil {
		t.Fatalf("WriteArticles: %v", err)
	}

	got, err := ReadArticles(path)
	if err != nil {
		t.Fatalf("ReadArticles: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d articles, want 1", len(got))
	}
	if got[0] != articles[0] {
		t.Errorf("article = %+v, want %+v", got[0], articles[0])
	}
}

func TestReadDebateRowsMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(path, []byte("utterance_id,text\nx_1,hello\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadDebateRows(path); err == nil {
		t.Fatal("expected error for missing columns")
	}
}

func TestWriteLabeled(t *testing.T) {
	rows := []domain.DebateRow{
		{
			UtteranceID: "1992_1_Presidential_1",
			DebateID:    "1992_1_Presidential",
			Text:        "My opponent has no plan for the economy.",
			Role:        domain.RoleCandidateR,
			Speaker:     "George Bush",
			Party:       "Republican",
			Year:        1992,
			DebateType:  "Presidential",
		},
	}
	labels := []Label{
		{Rhetoric: "attack", Econ: 0.5, Soc: -0.25, EconStd: 0.1, SocStd: 0.0},
	}

	path := filepath.Join(t.TempDir(), "labeled.csv")
	if err := WriteLabeled(path, rows, labels); err != nil {
		t.Fatalf("WriteLabeled: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.Contains(content, "rhetoric,econ,soc,econ_std,soc_std,notes") {
		t.Errorf("header missing label columns:\n%s", content)
	}
	if !strings.Contains(content, "attack,0.5000,-0.2500,0.1000,0.0000") {
		t.Errorf("label values not written:\n%s", content)
	}
}

func TestWriteLabeledLengthMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labeled.csv")
	err := WriteLabeled(path, []domain.DebateRow{{UtteranceID: "x_1"}}, nil)
	if err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
}
