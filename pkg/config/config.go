// Package config holds the run configuration: data paths, the external
// format classification of every transcript file, cleaning thresholds and
// pre-supplied ambiguity decisions.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"debate-corpus/pkg/domain"
)

type Paths struct {
	RawTranscripts string `yaml:"raw_transcripts"`
	MediaDumps     string `yaml:"media_dumps"`
	Output         string `yaml:"output"`
	Metadata       string `yaml:"metadata"`
}

type Media struct {
	MinWords int `yaml:"min_words"`
}

type Labeling struct {
	Model     string `yaml:"model"`
	EnsembleN int    `yaml:"ensemble_n"`
	MinWords  int    `yaml:"min_words"`
}

// Root is the full YAML configuration.
//
// formats assigns every transcript file to one of the three segmentation
// strategies; the assignment is authoritative, format is never inferred from
// file content. decisions pre-resolves ambiguous "President" labels per
// debate id using the single-letter coding R/D/I/M.
type Root struct {
	Paths     Paths               `yaml:"paths"`
	Formats   map[string][]string `yaml:"formats"`
	Decisions map[string]string   `yaml:"decisions"`
	Media     Media               `yaml:"media"`
	Labeling  Labeling            `yaml:"labeling"`
}

var decisionCoding = map[string]domain.CanonicalRole{
	"R": domain.RoleCandidateR,
	"D": domain.RoleCandidateD,
	"I": domain.RoleCandidateI,
	"M": domain.RoleModerator,
}

// Load reads and validates a config file. When path is empty, a small set of
// conventional locations is tried.
func Load(path string) (*Root, error) {
	candidates := []string{path}
	if path == "" {
		candidates = []string{
			"config.yaml",
			filepath.Join("config", "config.yaml"),
		}
	}

	var lastErr error
	for _, p := range candidates {
		f, err := os.Open(p)
		if err != nil {
			lastErr = err
			continue
		}
		defer f.Close()

		var cfg Root
		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", p, err)
		}
		if err := cfg.validate(); err != nil {
			return nil, fmt.Errorf("config %s: %w", p, err)
		}
		return &cfg, nil
	}
	return nil, fmt.Errorf("no config file found: %w", lastErr)
}

func (c *Root) validate() error {
	seen := make(map[string]string)
	for tag, files := range c.Formats {
		if !domain.FormatTag(tag).Valid() {
			return fmt.Errorf("unknown transcript format %q", tag)
		}
		for _, f := range files {
			if prev, dup := seen[f]; dup {
				return fmt.Errorf("transcript %s assigned to both %s and %s", f, prev, tag)
			}
			seen[f] = tag
		}
	}
	for debateID, code := range c.Decisions {
		if _, ok := decisionCoding[strings.ToUpper(strings.TrimSpace(code))]; !ok {
			return fmt.Errorf("decision for %s uses unknown coding %q (want R/D/I/M)", debateID, code)
		}
	}
	return nil
}

// Assignments flattens the formats section into (filename, format) pairs.
// Formats are visited in a fixed order and file lists keep their YAML order,
// so batch processing order is stable across runs.
func (c *Root) Assignments() []Assignment {
	var out []Assignment
	for _, tag := range []domain.FormatTag{
		domain.FormatAllCapsInline, domain.FormatAllCapsNewline, domain.FormatTitleNewline,
	} {
		for _, f := range c.Formats[string(tag)] {
			out = append(out, Assignment{Filename: f, Format: tag})
		}
	}
	return out
}

// Assignment binds one transcript filename to its declared format.
type Assignment struct {
	Filename string
	Format   domain.FormatTag
}

// DecisionRoles converts the decisions section to canonical roles.
func (c *Root) DecisionRoles() map[string]domain.CanonicalRole {
	out := make(map[string]domain.CanonicalRole, len(c.Decisions))
	for debateID, code := range c.Decisions {
		out[debateID] = decisionCoding[strings.ToUpper(strings.TrimSpace(code))]
	}
	return out
}
