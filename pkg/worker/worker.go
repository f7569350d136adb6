// Package worker runs the labeling classifier over assembled rows with a
// fixed-size worker pool.
package worker

import (
	"context"

	"debate-corpus/pkg/dataset"
	"debate-corpus/pkg/domain"
	"debate-corpus/pkg/labeling"
)

// Worker labels a single utterance at a time.
type Worker struct {
	classifier *labeling.Classifier
}

// NewWorker creates a new worker around a shared classifier.
func NewWorker(classifier *labeling.Classifier) *Worker {
	return &Worker{classifier: classifier}
}

// ProcessRow labels one assembled row. Classifier failures already degrade to
// neutral defaults, so this never fails a batch.
func (w *Worker) ProcessRow(ctx context.Context, row domain.DebateRow) dataset.Label {
	result := w.classifier.LabelUtterance(ctx, row)
	return dataset.Label{
		Rhetoric: result.Rhetoric,
		Econ:     result.Econ,
		Soc:      result.Soc,
		EconStd:  result.EconStd,
		SocStd:   result.SocStd,
		Notes:    result.Notes,
	}
}
