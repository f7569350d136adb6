package main

import (
	"context"
	"flag"
	"os"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"debate-corpus/pkg/config"
	"debate-corpus/pkg/dataset"
	"debate-corpus/pkg/labeling"
	"debate-corpus/pkg/worker"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "Path to the run configuration file")
		inPath     = flag.String("in", "", "Assembled dataset CSV to label (required)")
		outPath    = flag.String("out", "", "Output CSV path (default: <in> with a _labeled suffix)")
		workers    = flag.Int("workers", 4, "Number of parallel labeling workers")
	)
	flag.Parse()

	_ = godotenv.Load()
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if *inPath == "" {
		log.Fatal("-in is required")
	}
	if os.Getenv("ANTHROPIC_API_KEY") == "" {
		log.Fatal("ANTHROPIC_API_KEY is not set")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	rows, err := dataset.ReadDebateRows(*inPath)
	if err != nil {
		log.Fatalf("Failed to read dataset: %v", err)
	}
	log.Infof("Labeling %d rows with model %s", len(rows), cfg.Labeling.Model)

	client := anthropic.NewClient()
	call := labeling.NewAnthropicCaller(client, cfg.Labeling.Model)
	classifier := labeling.NewClassifier(call, cfg.Labeling.EnsembleN)
	classifier.SetMinWords(cfg.Labeling.MinWords)

	start := time.Now()
	labels := worker.NewManager(*workers, classifier).ProcessRows(context.Background(), rows)

	out := *outPath
	if out == "" {
		out = labeledPath(*inPath)
	}
	if err := dataset.WriteLabeled(out, rows, labels); err != nil {
		log.Fatalf("Failed to write labeled dataset: %v", err)
	}
	log.Infof("Wrote %s. Duration: %s", out, time.Since(start))
}

// labeledPath turns "debates_dataset.csv" into "debates_dataset_labeled.csv".
func labeledPath(in string) string {
	const ext = ".csv"
	if len(in) > len(ext) && in[len(in)-len(ext):] == ext {
		return in[:len(in)-len(ext)] + "_labeled" + ext
	}
	return in + "_labeled"
}
