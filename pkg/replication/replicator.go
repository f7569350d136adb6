// Package replication copies datasets from MongoDB into Postgres, so ad-hoc
// SQL analysis can run against the same records the pipelines upserted.
package replication

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"debate-corpus/pkg/db"
)

// Config wires the replication dependencies.
type Config struct {
	Mongo    *db.Client
	Postgres *db.PostgresClient
}

// Replicator replicates pipeline output from MongoDB to Postgres.
//
// This is a one-shot, copy-everything flow: upserts are keyed the same way
// on both sides, so re-running it is safe.
type Replicator struct {
	mongo *db.Client
	pg    *db.PostgresClient
}

func NewReplicator(cfg Config) (*Replicator, error) {
	if cfg.Mongo == nil {
		return nil, fmt.Errorf("mongo client is required")
	}
	if cfg.Postgres == nil {
		return nil, fmt.Errorf("postgres client is required")
	}
	return &Replicator{
		mongo: cfg.Mongo,
		pg:    cfg.Postgres,
	}, nil
}

// ReplicateArticles copies every article from Mongo into the Postgres
// articles table.
func (r *Replicator) ReplicateArticles(ctx context.Context) error {
	if err := r.pg.EnsureSchema(ctx); err != nil {
		return err
	}

	articles, err := r.mongo.GetAllArticles(ctx)
	if err != nil {
		return fmt.Errorf("read articles from mongo: %w", err)
	}
	log.Infof("Replicating %d articles to Postgres", len(articles))

	var failed int
	for i := range articles {
		if err := r.pg.SaveArticle(ctx, &articles[i]); err != nil {
			log.Warnf("replicate article %s: %v", articles[i].Fingerprint, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d articles failed to replicate", failed, len(articles))
	}
	return nil
}

// ReplicateDebateRows copies every assembled utterance from Mongo into the
// Postgres utterances table.
func (r *Replicator) ReplicateDebateRows(ctx context.Context) error {
	if err := r.pg.EnsureSchema(ctx); err != nil {
		return err
	}

	rows, err := r.mongo.GetAllDebateRows(ctx)
	if err != nil {
		return fmt.Errorf("read utterances from mongo: %w", err)
	}
	log.Infof("Replicating %d utterances to Postgres", len(rows))

	var failed int
	for i := range rows {
		if err := r.pg.SaveDebateRow(ctx, &rows[i]); err != nil {
			log.Warnf("replicate utterance %s: %v", rows[i].UtteranceID, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d utterances failed to replicate", failed, len(rows))
	}
	return nil
}
