// Package mediaclean is the final cleanup pass over extracted article bodies:
// expanded boilerplate stripping, outlet-specific fixes, word-count and
// fingerprint recomputation, short-article filtering and duplicate collapse.
// The pass is idempotent — running it over already-clean records is a no-op.
package mediaclean

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"strings"

	"debate-corpus/pkg/domain"
)

// DefaultMinWords is the word-count floor below which a cleaned article is
// dropped entirely.
const DefaultMinWords = 100

// Expanded boilerplate set: everything the extractor's pass knows about plus
// outlet-specific email and footer patterns that only show up after the body
// has been assembled.
var boilerplateLinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^Appeared in the .*$`),
	regexp.MustCompile(`^Write to .+@.+\..+$`),
	regexp.MustCompile(`^Copyright \d{4}.+All Rights Reserved\.?$`),
	regexp.MustCompile(`^All Rights Reserved\.?$`),
	regexp.MustCompile(`^Dow Jones & Company, Inc\.$`),
	regexp.MustCompile(`^N\.Y\.P\. Holdings, Inc\.$`),
	regexp.MustCompile(`^The New York Times Company$`),
	regexp.MustCompile(`^Document [A-Z0-9]+$`),
	regexp.MustCompile(`^SC$|^ED$|^PG$|^LA$|^CY$|^NS$|^RE$|^PUB$|^AN$|^IPD$|^SE$|^IN$`),
	regexp.MustCompile(`^English$`), // lone language line
	regexp.MustCompile(`.*@nypost\.com$`),
	regexp.MustCompile(`@nypost\.com`),
	regexp.MustCompile(`^\s*---+\s*$`),
	regexp.MustCompile(`^Subscribe to WSJ.*$`),
}

// Conservative tail trims: only fire when the boilerplate is the very end of
// the body.
var tailTrimPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?s)^(.*?)\n+Copyright \d{4}.+All Rights Reserved\.\s*$`),
	regexp.MustCompile(`(?s)^(.*?)\n+Write to .+@.+\..+\s*$`),
	regexp.MustCompile(`(?s)^(.*?)\n+Subscribe to WSJ.*\s*$`),
}

// NYP list items arrive with a stray "ns" marker fused to the line start.
// The marker is only stripped when followed by actual content on the line.
var nypBullet = regexp.MustCompile(`(?m)^[ \t]*ns[ \t]*(\S)`)

var (
	wordPattern   = regexp.MustCompile(`\b\w+\b`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// StripBoilerplate removes boilerplate lines and trims boilerplate tails from
// a body. Blank lines inside the body are preserved.
func StripBoilerplate(text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	var cleaned []string
	for _, ln := range strings.Split(text, "\n") {
		s := strings.TrimSpace(ln)
		if s == "" {
			cleaned = append(cleaned, ln)
			continue
		}
		if matchesAny(s, boilerplateLinePatterns) {
			continue
		}
		cleaned = append(cleaned, ln)
	}
	out := strings.Join(cleaned, "\n")

	for _, p := range tailTrimPatterns {
		if m := p.FindStringSubmatch(out); m != nil {
			out = strings.TrimRight(m[1], " \t\n")
		}
	}
	return out
}

// StripNYPBullets removes the leading "ns" list markers the New York Post
// feed leaves at line starts. Only called for that outlet.
func StripNYPBullets(text string) string {
	return nypBullet.ReplaceAllString(text, "$1")
}

// WordCount counts word tokens in text.
func WordCount(text string) int {
	return len(wordPattern.FindAllString(text, -1))
}

// Fingerprint returns the stable content hash used for duplicate detection:
// md5 over the lowercased, whitespace-collapsed body.
func Fingerprint(text string) string {
	norm := strings.ToLower(strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " ")))
	sum := md5.Sum([]byte(norm))
	return hex.EncodeToString(sum[:])
}

// Normalize applies the full cleanup pass to records in order: boilerplate
// strip, outlet fixes, recount/refingerprint, minimum-word drop, then
// first-occurrence-wins dedupe. Input order is preserved for retained
// records; the input slice is not modified.
func Normalize(records []domain.ArticleRecord, minWords int) []domain.ArticleRecord {
	if minWords <= 0 {
		minWords = DefaultMinWords
	}

	seen := make(map[string]struct{}, len(records))
	out := make([]domain.ArticleRecord, 0, len(records))

	for _, rec := range records {
		body := StripBoilerplate(rec.Body)
		if strings.EqualFold(rec.Outlet, "nyp") {
			body = StripNYPBullets(body)
		}
		body = strings.TrimSpace(body)

		rec.Body = body
		rec.WordCount = WordCount(body)
		rec.Fingerprint = Fingerprint(body)

		if rec.WordCount < minWords {
			continue
		}
		if _, dup := seen[rec.Fingerprint]; dup {
			continue
		}
		seen[rec.Fingerprint] = struct{}{}
		out = append(out, rec)
	}
	return out
}

func matchesAny(s string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}
