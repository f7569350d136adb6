package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"debate-corpus/pkg/assemble"
	"debate-corpus/pkg/domain"
	"debate-corpus/pkg/factiva"
	"debate-corpus/pkg/mediaclean"
)

// MediaPipeline extracts articles from every Factiva dump in a directory and
// normalizes them into the article table.
type MediaPipeline struct {
	dumpDir  string
	minWords int
}

// NewMediaPipeline creates a media pipeline. minWords <= 0 selects the
// cleaning default.
func NewMediaPipeline(dumpDir string, minWords int) *MediaPipeline {
	if minWords <= 0 {
		minWords = mediaclean.DefaultMinWords
	}
	return &MediaPipeline{dumpDir: dumpDir, minWords: minWords}
}

// Run scans the dump directory, extracts every real article, and returns the
// cleaned, deduplicated records in scan order.
func (p *MediaPipeline) Run() ([]domain.ArticleRecord, error) {
	entries, err := os.ReadDir(p.dumpDir)
	if err != nil {
		return nil, fmt.Errorf("read dump dir: %w", err)
	}

	var records []domain.ArticleRecord
	var files, skipped int

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".txt") {
			continue
		}

		fileRecords, err := p.processDump(name)
		if err != nil {
			log.Warnf("skipping %s: %v", name, err)
			skipped++
			continue
		}
		records = append(records, fileRecords...)
		files++
	}

	log.Infof("media pipeline: %d dumps processed, %d skipped, %d raw articles",
		files, skipped, len(records))

	cleaned := mediaclean.Normalize(records, p.minWords)
	log.Infof("media pipeline: %d articles after cleaning", len(cleaned))
	return cleaned, nil
}

func (p *MediaPipeline) processDump(name string) ([]domain.ArticleRecord, error) {
	info, err := factiva.ParseFileInfo(name)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(filepath.Join(p.dumpDir, name))
	if err != nil {
		return nil, fmt.Errorf("read dump: %w", err)
	}

	chunks := factiva.Split(string(raw))
	records := make([]domain.ArticleRecord, 0, len(chunks))
	for i, chunk := range chunks {
		body := factiva.ExtractBody(chunk)
		records = append(records, domain.ArticleRecord{
			Year:          info.Year,
			Theme:         info.Theme,
			Outlet:        info.Outlet,
			OutletLeaning: assemble.OutletLeaning(info.Outlet),
			ArticleNumber: i + 1,
			Headline:      factiva.ExtractHeadline(chunk),
			Body:          body,
			Fingerprint:   mediaclean.Fingerprint(body),
			WordCount:     mediaclean.WordCount(body),
			SourceFile:    name,
		})
	}

	log.Infof("%s: %d articles extracted", name, len(records))
	return records, nil
}
