// Package db provides optional persistence for assembled records. The CSV
// files under the output directory remain the canonical artifact; these
// clients mirror them into Mongo or Postgres for downstream querying.
package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"debate-corpus/pkg/domain"
)

// Client wraps a MongoDB connection with one collection per output table.
type Client struct {
	mongoClient *mongo.Client
	utterances  *mongo.Collection
	articles    *mongo.Collection
}

// NewClient creates a database client for the given connection string.
func NewClient(connectionString, databaseName string) (*Client, error) {
	clientOptions := options.Client().ApplyURI(connectionString)
	mongoClient, err := mongo.Connect(context.Background(), clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	database := mongoClient.Database(databaseName)
	return &Client{
		mongoClient: mongoClient,
		utterances:  database.Collection("utterances"),
		articles:    database.Collection("articles"),
	}, nil
}

// Connect verifies the connection.
func (c *Client) Connect(ctx context.Context) error {
	if c.mongoClient == nil {
		return fmt.Errorf("mongo client not initialized")
	}
	return c.mongoClient.Ping(ctx, nil)
}

// Close closes the MongoDB connection.
func (c *Client) Close(ctx context.Context) error {
	if c.mongoClient == nil {
		return nil
	}
	return c.mongoClient.Disconnect(ctx)
}

// SaveDebateRow upserts one assembled utterance, keyed by its utterance id
// so re-runs overwrite rather than duplicate.
func (c *Client) SaveDebateRow(ctx context.Context, row *domain.DebateRow) error {
	if c.utterances == nil {
		return fmt.Errorf("utterance collection not initialized")
	}
	filter := bson.M{"utterance_id": row.UtteranceID}
	update := bson.M{"$set": row}
	opts := options.Update().SetUpsert(true)

	_, err := c.utterances.UpdateOne(ctx, filter, update, opts)
	return err
}

// SaveArticle upserts one cleaned article, keyed by content fingerprint.
func (c *Client) SaveArticle(ctx context.Context, article *domain.ArticleRecord) error {
	if c.articles == nil {
		return fmt.Errorf("article collection not initialized")
	}
	filter := bson.M{"fingerprint": article.Fingerprint}
	update := bson.M{"$set": article}
	opts := options.Update().SetUpsert(true)

	_, err := c.articles.UpdateOne(ctx, filter, update, opts)
	return err
}

// GetAllArticles reads every stored article, for replication to Postgres.
func (c *Client) GetAllArticles(ctx context.Context) ([]domain.ArticleRecord, error) {
	if c.articles == nil {
		return nil, fmt.Errorf("article collection not initialized")
	}

	cursor, err := c.articles.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer cursor.Close(ctx)

	var articles []domain.ArticleRecord
	if err := cursor.All(ctx, &articles); err != nil {
		return nil, fmt.Errorf("decode articles: %w", err)
	}
	return articles, nil
}

// GetAllDebateRows reads every stored utterance, for replication to Postgres.
func (c *Client) GetAllDebateRows(ctx context.Context) ([]domain.DebateRow, error) {
	if c.utterances == nil {
		return nil, fmt.Errorf("utterance collection not initialized")
	}

	cursor, err := c.utterances.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("query utterances: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []domain.DebateRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode utterances: %w", err)
	}
	return rows, nil
}

// GetAllFingerprints returns the fingerprints of every stored article as a
// set, for cross-run duplicate checks.
func (c *Client) GetAllFingerprints(ctx context.Context) (map[string]bool, error) {
	if c.articles == nil {
		return nil, fmt.Errorf("article collection not initialized")
	}

	cursor, err := c.articles.Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"fingerprint": 1, "_id": 0}))
	if err != nil {
		return nil, fmt.Errorf("query fingerprints: %w", err)
	}
	defer cursor.Close(ctx)

	set := make(map[string]bool)
	for cursor.Next(ctx) {
		var result struct {
			Fingerprint string `bson:"fingerprint"`
		}
		if err := cursor.Decode(&result); err != nil {
			continue // skip invalid documents
		}
		if result.Fingerprint != "" {
			set[result.Fingerprint] = true
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return set, nil
}
