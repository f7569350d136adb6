package domain

// ArticleRecord is one wire-service article extracted from a Factiva dump file.
//
// Created by the tag-grammar extractor, cleaned by the normalizer (body may
// shrink, fingerprint and word count are recomputed after cleaning), and
// dropped entirely if the cleaned word count falls below the configured
// minimum or if the fingerprint duplicates an earlier-retained record.
type ArticleRecord struct {
	Year          int    `bson:"year" json:"year"`
	Theme         string `bson:"theme" json:"theme"`
	Outlet        string `bson:"outlet" json:"outlet"`
	OutletLeaning string `bson:"outlet_leaning,omitempty" json:"outlet_leaning,omitempty"`

	// ArticleNumber is the 1-based position within the source dump file.
	ArticleNumber int `bson:"article_number" json:"article_number"`

	Headline string `bson:"headline" json:"headline"`
	Body     string `bson:"body" json:"body"`

	// Fingerprint is the md5 hex digest of the lowercased,
	// whitespace-collapsed body. Used for duplicate detection.
	Fingerprint string `bson:"fingerprint" json:"fingerprint"`
	WordCount   int    `bson:"word_count" json:"word_count"`

	SourceFile string `bson:"source_file" json:"source_file"`
}
