package main

import (
	"context"
	"flag"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"debate-corpus/pkg/db"
	"debate-corpus/pkg/replication"
)

func main() {
	var (
		mongoURI    = flag.String("mongo-uri", "mongodb://localhost:27017", "MongoDB connection string")
		dbName      = flag.String("db", "debatecorpus", "MongoDB database name")
		postgresDSN = flag.String("postgres-dsn", "", "Postgres connection string (required)")
	)
	flag.Parse()

	_ = godotenv.Load()
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if *postgresDSN == "" {
		log.Fatal("-postgres-dsn is required")
	}

	ctx := context.Background()

	mongoClient, err := db.NewClient(*mongoURI, *dbName)
	if err != nil {
		log.Fatalf("Failed to create Mongo client: %v", err)
	}
	if err := mongoClient.Connect(ctx); err != nil {
		log.Fatalf("Failed to connect to Mongo: %v", err)
	}
	defer mongoClient.Close(ctx)

	pg := db.NewPostgresClient(db.PostgresConfig{DSN: *postgresDSN})
	if err := pg.Connect(ctx); err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}
	defer pg.Close()

	replicator, err := replication.NewReplicator(replication.Config{
		Mongo:    mongoClient,
		Postgres: pg,
	})
	if err != nil {
		log.Fatalf("Failed to build replicator: %v", err)
	}

	start := time.Now()
	if err := replicator.ReplicateDebateRows(ctx); err != nil {
		log.Fatalf("Utterance replication failed: %v", err)
	}
	if err := replicator.ReplicateArticles(ctx); err != nil {
		log.Fatalf("Article replication failed: %v", err)
	}
	log.Infof("Replication complete. Duration: %s", time.Since(start))
}
