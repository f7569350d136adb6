// Package factiva parses Factiva wire-service export files. An export is a
// single text file holding many concatenated articles, each introduced by an
// "HD" line and described by short uppercase tag lines (PD, SN, LP, TD, ...).
package factiva

import (
	"regexp"
	"strings"
)

// TagTokens is the full set of known Factiva field tags. A line whose trimmed
// content equals one of these is field markup, never article text.
var TagTokens = map[string]struct{}{
	"HD": {}, "BY": {}, "WC": {}, "PD": {}, "SN": {}, "SC": {}, "PG": {},
	"LA": {}, "CY": {}, "LP": {}, "TD": {}, "NS": {}, "RE": {}, "IPC": {},
	"IPD": {}, "PUB": {}, "AN": {}, "ART": {}, "SE": {}, "ED": {}, "CO": {},
	"NOTE": {},
}

// TailTags mark the end of an article's body span.
var TailTags = map[string]struct{}{
	"NS": {}, "RE": {}, "IPC": {}, "IPD": {}, "PUB": {}, "AN": {}, "ART": {}, "SE": {},
}

var (
	hdLine         = regexp.MustCompile(`(?m)^\s*HD\s*$`)
	excessBlanks   = regexp.MustCompile(`\n{3,}`)
	requiredTriple = []string{"PD", "SN", "LP"}
)

// Split cuts a raw export into per-article chunks and keeps only the ones
// that look like real articles. The leading preamble before the first HD line
// is discarded; chunks missing any of the required PD/SN/LP tags are dropped
// silently — bulk exports always contain some noise.
func Split(raw string) []string {
	raw = CleanBlock(raw)

	var chunks []string
	locs := hdLine.FindAllStringIndex(raw, -1)
	for i, loc := range locs {
		end := len(raw)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		chunks = append(chunks, raw[loc[0]:end])
	}

	var real []string
	for _, c := range chunks {
		c = CleanBlock(c)
		if c == "" {
			continue
		}
		if IsRealArticle(c) {
			real = append(real, c)
		}
	}
	return real
}

// IsRealArticle reports whether a chunk carries all three required tags (PD,
// SN, LP) as standalone lines, in any relative order.
func IsRealArticle(chunk string) bool {
	for _, tag := range requiredTriple {
		if !HasTagLine(chunk, tag) {
			return false
		}
	}
	return true
}

// HasTagLine reports whether a line that is exactly the tag (ignoring
// surrounding whitespace) exists anywhere in the chunk.
func HasTagLine(chunk, tag string) bool {
	for _, line := range strings.Split(chunk, "\n") {
		if strings.TrimSpace(line) == tag {
			return true
		}
	}
	return false
}

// CleanBlock normalizes line endings and form feeds, collapses runs of three
// or more newlines to a single blank line, and trims the block.
func CleanBlock(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\x0c", "\n")
	text = excessBlanks.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

func isTagLine(line string) bool {
	_, ok := TagTokens[strings.TrimSpace(line)]
	return ok
}
