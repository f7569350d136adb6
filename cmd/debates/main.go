package main

import (
	"context"
	"flag"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"debate-corpus/pkg/config"
	"debate-corpus/pkg/dataset"
	"debate-corpus/pkg/db"
	"debate-corpus/pkg/metadata"
	"debate-corpus/pkg/pipeline"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "Path to the run configuration file")
		outPath    = flag.String("out", "", "Output CSV path (default: <output dir>/debates_dataset.csv)")

		mongoURI = flag.String("mongo-uri", "", "MongoDB connection string (empty disables persistence)")
		dbName   = flag.String("db", "debatecorpus", "MongoDB database name")
	)
	flag.Parse()

	_ = godotenv.Load()
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	meta, err := metadata.Load(cfg.Paths.Metadata)
	if err != nil {
		log.Fatalf("Failed to load metadata table: %v", err)
	}
	log.Infof("Loaded metadata for %d debates", meta.Len())

	p, err := pipeline.NewDebatePipeline(cfg, meta)
	if err != nil {
		log.Fatalf("Failed to build pipeline: %v", err)
	}

	start := time.Now()
	rows, err := p.Run()
	if err != nil {
		log.Fatalf("Debate pipeline failed: %v", err)
	}

	out := *outPath
	if out == "" {
		out = filepath.Join(cfg.Paths.Output, "debates_dataset.csv")
	}
	if err := dataset.WriteDebateRows(out, rows); err != nil {
		log.Fatalf("Failed to write dataset: %v", err)
	}
	log.Infof("Wrote %d rows to %s. Duration: %s", len(rows), out, time.Since(start))

	if *mongoURI == "" {
		return
	}

	ctx := context.Background()
	dbClient, err := db.NewClient(*mongoURI, *dbName)
	if err != nil {
		log.Fatalf("Failed to create database client: %v", err)
	}
	if err := dbClient.Connect(ctx); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbClient.Close(ctx)

	saved := 0
	for i := range rows {
		if err := dbClient.SaveDebateRow(ctx, &rows[i]); err != nil {
			log.Warnf("Failed to save %s: %v", rows[i].UtteranceID, err)
			continue
		}
		saved++
	}
	log.Infof("Saved %d/%d rows to MongoDB", saved, len(rows))
}
