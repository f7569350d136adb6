package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"debate-corpus/pkg/config"
	"debate-corpus/pkg/domain"
	"debate-corpus/pkg/metadata"
)

const metadataCSV = `filename,year,debate_type,candidate_R,candidate_D,candidate_I,moderator,winner
1960_1_Presidential.txt,1960,Presidential,Richard Nixon,John F. Kennedy,-,Howard K. Smith,Kennedy
1980_1_Presidential.txt,1980,Presidential,Ronald Reagan,Jimmy Carter,-,Howard K. Smith,Reagan
`

const transcript1960 = `SMITH: Good evening. The candidates need no introduction.
NIXON: Thank you. I want to talk about America's future tonight.
KENNEDY: The question before us is whether this country can move forward.
`

const transcript1980 = `MODERATOR: Welcome to the first debate of 1980.
GOVERNOR REAGAN: There you go again.
PRESIDENT: I have spent four years in this office.
`

func writeFixtures(t *testing.T, transcripts map[string]string) (dir, metaPath string) {
	t.Helper()
	dir = t.TempDir()
	for name, text := range transcripts {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(text), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	metaPath = filepath.Join(dir, "debates_metadata.csv")
	if err := os.WriteFile(metaPath, []byte(metadataCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir, metaPath
}

func TestDebatePipelineAssemblesRows(t *testing.T) {
	dir, metaPath := writeFixtures(t, map[string]string{
		"1960_1_Presidential.txt": transcript1960,
	})
	meta, err := metadata.Load(metaPath)
	if err != nil {
		t.Fatal(err)
	}

	cfg := &config.Root{
		Paths:   config.Paths{RawTranscripts: dir},
		Formats: map[string][]string{"all_caps_inline": {"1960_1_Presidential.txt"}},
	}

	p, err := NewDebatePipeline(cfg, meta)
	if err != nil {
		t.Fatal(err)
	}
	rows, err := p.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	if rows[0].Role != domain.RoleModerator || rows[0].Speaker != "Moderator" {
		t.Errorf("row 0 = %+v, want moderator", rows[0])
	}
	if rows[1].Role != domain.RoleCandidateR || rows[1].Speaker != "Richard Nixon" {
		t.Errorf("row 1 = %+v, want Nixon", rows[1])
	}
	if rows[2].Role != domain.RoleCandidateD || rows[2].Party != "Democrat" {
		t.Errorf("row 2 = %+v, want Kennedy", rows[2])
	}
	if rows[0].UtteranceID != "1960_1_Presidential_1" {
		t.Errorf("utterance id = %q", rows[0].UtteranceID)
	}
	if rows[0].WinnerParty != "Democrat" {
		t.Errorf("winner party = %q, want Democrat", rows[0].WinnerParty)
	}
}

func TestDebatePipelineExtractsHTMLTranscripts(t *testing.T) {
	page := `<html><body><div class="field-docs-content">
<p>SMITH: Good evening from Chicago.</p>
<p>NIXON: Thank you very much for having me here tonight.</p>
</div></body></html>`

	dir, metaPath := writeFixtures(t, map[string]string{
		"1960_1_Presidential.html": page,
	})
	meta, err := metadata.Load(metaPath)
	if err != nil {
		t.Fatal(err)
	}

	cfg := &config.Root{
		Paths:   config.Paths{RawTranscripts: dir},
		Formats: map[string][]string{"all_caps_inline": {"1960_1_Presidential.html"}},
	}

	p, err := NewDebatePipeline(cfg, meta)
	if err != nil {
		t.Fatal(err)
	}
	rows, err := p.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].DebateID != "1960_1_Presidential" {
		t.Errorf("debate id = %q", rows[0].DebateID)
	}
	if rows[1].Role != domain.RoleCandidateR || rows[1].Text != "Thank you very much for having me here tonight." {
		t.Errorf("row 1 = %+v", rows[1])
	}
}

func TestDebatePipelineSkipsTranscriptWithoutMetadata(t *testing.T) {
	dir, metaPath := writeFixtures(t, map[string]string{
		"1960_1_Presidential.txt": transcript1960,
		"2024_1_Presidential.txt": transcript1960,
	})
	meta, err := metadata.Load(metaPath)
	if err != nil {
		t.Fatal(err)
	}

	cfg := &config.Root{
		Paths: config.Paths{RawTranscripts: dir},
		Formats: map[string][]string{
			"all_caps_inline": {"1960_1_Presidential.txt", "2024_1_Presidential.txt"},
		},
	}

	p, err := NewDebatePipeline(cfg, meta)
	if err != nil {
		t.Fatal(err)
	}
	rows, err := p.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, r := range rows {
		if r.DebateID == "2024_1_Presidential" {
			t.Fatal("transcript without metadata produced rows")
		}
	}
	if len(rows) != 3 {
		t.Errorf("got %d rows, want 3 from the covered debate", len(rows))
	}
}

func TestDebatePipelineRejectsUndecidedAmbiguity(t *testing.T) {
	dir, metaPath := writeFixtures(t, map[string]string{
		"1980_1_Presidential.txt": transcript1980,
	})
	meta, err := metadata.Load(metaPath)
	if err != nil {
		t.Fatal(err)
	}

	cfg := &config.Root{
		Paths:   config.Paths{RawTranscripts: dir},
		Formats: map[string][]string{"all_caps_inline": {"1980_1_Presidential.txt"}},
	}

	p, err := NewDebatePipeline(cfg, meta)
	if err != nil {
		t.Fatal(err)
	}
	rows, err := p.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// The bare PRESIDENT label has no decision, so the whole debate is skipped.
	if len(rows) != 0 {
		t.Fatalf("got %d rows, want 0", len(rows))
	}
}

func TestDebatePipelineAppliesConfiguredDecision(t *testing.T) {
	dir, metaPath := writeFixtures(t, map[string]string{
		"1980_1_Presidential.txt": transcript1980,
	})
	meta, err := metadata.Load(metaPath)
	if err != nil {
		t.Fatal(err)
	}

	cfg := &config.Root{
		Paths:     config.Paths{RawTranscripts: dir},
		Formats:   map[string][]string{"all_caps_inline": {"1980_1_Presidential.txt"}},
		Decisions: map[string]string{"1980_1_Presidential": "D"},
	}

	p, err := NewDebatePipeline(cfg, meta)
	if err != nil {
		t.Fatal(err)
	}
	rows, err := p.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[2].Role != domain.RoleCandidateD || rows[2].Speaker != "Jimmy Carter" {
		t.Errorf("decided row = %+v, want Carter", rows[2])
	}
}
