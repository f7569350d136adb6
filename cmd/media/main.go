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
	"debate-corpus/pkg/pipeline"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "Path to the run configuration file")
		outPath    = flag.String("out", "", "Output CSV path (default: <output dir>/articles.csv)")

		postgresDSN = flag.String("postgres-dsn", "", "Postgres connection string (empty disables persistence)")
	)
	flag.Parse()

	_ = godotenv.Load()
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	start := time.Now()
	articles, err := pipeline.NewMediaPipeline(cfg.Paths.MediaDumps, cfg.Media.MinWords).Run()
	if err != nil {
		log.Fatalf("Media pipeline failed: %v", err)
	}

	out := *outPath
	if out == "" {
		out = filepath.Join(cfg.Paths.Output, "articles.csv")
	}
	if err := dataset.WriteArticles(out, articles); err != nil {
		log.Fatalf("Failed to write article table: %v", err)
	}
	log.Infof("Wrote %d articles to %s. Duration: %s", len(articles), out, time.Since(start))

	if *postgresDSN == "" {
		return
	}

	ctx := context.Background()
	pg := db.NewPostgresClient(db.PostgresConfig{DSN: *postgresDSN})
	if err := pg.Connect(ctx); err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}
	defer pg.Close()

	if err := pg.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	saved := 0
	for i := range articles {
		if err := pg.SaveArticle(ctx, &articles[i]); err != nil {
			log.Warnf("Failed to save article %s#%d: %v",
				articles[i].SourceFile, articles[i].ArticleNumber, err)
			continue
		}
		saved++
	}
	log.Infof("Saved %d/%d articles to Postgres", saved, len(articles))
}
