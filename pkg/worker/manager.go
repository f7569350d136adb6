package worker

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"debate-corpus/pkg/dataset"
	"debate-corpus/pkg/domain"
	"debate-corpus/pkg/labeling"
)

// Manager distributes assembled rows to labeling workers.
type Manager struct {
	workerCount int
	classifier  *labeling.Classifier
}

// NewManager creates a new manager. workerCount <= 0 falls back to 1.
func NewManager(workerCount int, classifier *labeling.Classifier) *Manager {
	if workerCount <= 0 {
		workerCount = 1
	}
	return &Manager{
		workerCount: workerCount,
		classifier:  classifier,
	}
}

// ProcessRows labels every row concurrently and returns labels in row order.
func (m *Manager) ProcessRows(ctx context.Context, rows []domain.DebateRow) []dataset.Label {
	type job struct {
		index int
		row   domain.DebateRow
	}
	type result struct {
		index int
		label dataset.Label
	}

	jobChan := make(chan job, len(rows))
	for i, row := range rows {
		jobChan <- job{index: i, row: row}
	}
	close(jobChan)

	resultsChan := make(chan result, len(rows))
	var wg sync.WaitGroup

	for i := 0; i < m.workerCount; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			w := NewWorker(m.classifier)
			for j := range jobChan {
				select {
				case <-ctx.Done():
					return
				default:
				}
				resultsChan <- result{index: j.index, label: w.ProcessRow(ctx, j.row)}
			}
		}(i)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	labels := make([]dataset.Label, len(rows))
	var done, skipped int
	for res := range resultsChan {
		labels[res.index] = res.label
		done++
		if res.label.Notes != "" {
			skipped++
		}
		if done%100 == 0 {
			log.Infof("labeled %d/%d rows (%d skipped)", done, len(rows), skipped)
		}
	}

	log.Infof("labeling complete: %d rows, %d skipped", done, skipped)
	return labels
}
