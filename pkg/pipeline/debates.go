// Package pipeline runs the batch jobs that turn raw inputs into CSV
// datasets. One bad input file is logged and skipped; it never stops the run.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"debate-corpus/pkg/assemble"
	"debate-corpus/pkg/config"
	"debate-corpus/pkg/content"
	"debate-corpus/pkg/domain"
	"debate-corpus/pkg/metadata"
	"debate-corpus/pkg/speaker"
	"debate-corpus/pkg/transcript"
)

// DebatePipeline segments every configured transcript, resolves speaker
// roles and joins the result with the debate metadata table.
type DebatePipeline struct {
	cfg       *config.Root
	meta      *metadata.Table
	resolver  *speaker.Resolver
	decisions *speaker.Decisions
	extractor content.Extractor
}

// NewDebatePipeline wires a pipeline from loaded configuration and metadata.
// Ambiguity decisions supplied in the config are recorded up front so the
// resolver never reports RoleNeedsDecision for a pre-decided debate.
func NewDebatePipeline(cfg *config.Root, meta *metadata.Table) (*DebatePipeline, error) {
	decisions := speaker.NewDecisions()
	for debateID, role := range cfg.DecisionRoles() {
		if err := decisions.Put(debateID, role); err != nil {
			return nil, fmt.Errorf("seed decision for %s: %w", debateID, err)
		}
	}
	return &DebatePipeline{
		cfg:       cfg,
		meta:      meta,
		resolver:  speaker.NewResolver(decisions),
		decisions: decisions,
		extractor: content.NewArchiveExtractor(),
	}, nil
}

// Run processes every transcript named in the config's format assignments,
// in assignment order, and returns the assembled rows.
func (p *DebatePipeline) Run() ([]domain.DebateRow, error) {
	assignments := p.cfg.Assignments()
	if len(assignments) == 0 {
		return nil, fmt.Errorf("no transcripts assigned to any format")
	}

	var rows []domain.DebateRow
	var processed, skipped int

	for _, a := range assignments {
		debateRows, err := p.processTranscript(a)
		if err != nil {
			log.Warnf("skipping %s: %v", a.Filename, err)
			skipped++
			continue
		}
		rows = append(rows, debateRows...)
		processed++
	}

	log.Infof("debate pipeline: %d transcripts processed, %d skipped, %d rows",
		processed, skipped, len(rows))
	return rows, nil
}

// processTranscript handles one transcript end to end. Any error rejects the
// whole transcript; partial debates never reach the dataset.
func (p *DebatePipeline) processTranscript(a config.Assignment) ([]domain.DebateRow, error) {
	debateID := strings.TrimSuffix(a.Filename, filepath.Ext(a.Filename))

	meta, ok := p.meta.Get(debateID)
	if !ok {
		return nil, fmt.Errorf("no metadata row for debate %s", debateID)
	}

	raw, err := os.ReadFile(filepath.Join(p.cfg.Paths.RawTranscripts, a.Filename))
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}

	// Saved archive pages come in as HTML and get their transcript text
	// pulled out before segmentation. Plain .txt files are used as-is.
	text := string(raw)
	if strings.EqualFold(filepath.Ext(a.Filename), ".html") {
		text, err = p.extractor.ExtractText(text)
		if err != nil {
			return nil, fmt.Errorf("extract transcript text: %w", err)
		}
	}

	segmenter, err := transcript.ForFormat(a.Format)
	if err != nil {
		return nil, err
	}

	utterances, err := segmenter.Segment(debateID, text)
	if err != nil {
		return nil, fmt.Errorf("segment: %w", err)
	}
	if len(utterances) == 0 {
		log.Infof("%s: no speaker transitions found", a.Filename)
		return nil, nil
	}

	for i := range utterances {
		utterances[i].Role = p.resolver.Resolve(utterances[i].Speaker, meta)
	}
	for _, u := range utterances {
		if u.Role == domain.RoleNeedsDecision {
			return nil, fmt.Errorf("speaker %q needs an explicit decision (add one to the config decisions section)", u.Speaker)
		}
	}

	return assemble.Debate(utterances, meta)
}
