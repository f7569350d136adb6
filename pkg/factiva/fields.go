package factiva

import (
	"regexp"
	"strings"
)

// TailPhrases mark publisher boilerplate; the body is hard-cut at the first
// occurrence found strictly inside the body span.
var TailPhrases = []string{
	"Dow Jones & Company, Inc.",
	"The New York Times Company",
	"Document ", // e.g. "Document J0000..."
}

// Per-line boilerplate inside the body span: print-edition footers, contact
// lines, copyright notices, wire distribution notices.
var bodyDropPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^Appeared in the .* print edition.*`),
	regexp.MustCompile(`^Write to .+@wsj\.com$`),
	regexp.MustCompile(`^Copyright \d{4} .* All Rights Reserved\.$`),
	regexp.MustCompile(`^\(c\)\s*\d{4}.*All rights reserved\.$`),
	regexp.MustCompile(`^All Rights Reserved\.$`),
	regexp.MustCompile(`^.*This material may not be published.*$`),
	regexp.MustCompile(`^.*Distributed by.*$`),
}

// Short colon-delimited index codes like "gdip : ..." or "usa : ...".
var indexCodeLine = regexp.MustCompile(`(?i)^[a-z]{2,5}\s*:\s*`)

var horizontalSpaceRun = regexp.MustCompile(`[ \t]+`)

// ExtractHeadline returns the text strictly between the HD tag line and the
// BY tag line (or the next recognized tag line), whitespace-joined.
func ExtractHeadline(chunk string) string {
	var collected []string
	seenHD := false
	for _, line := range strings.Split(chunk, "\n") {
		s := strings.TrimSpace(line)
		if !seenHD {
			if s == "HD" {
				seenHD = true
			}
			continue
		}
		if s == "BY" || isTagLine(s) {
			break
		}
		if s != "" {
			collected = append(collected, s)
		}
	}
	return strings.Join(collected, " ")
}

// ExtractBody returns the cleaned article body. The TD block is preferred;
// if no TD tag exists the LP block is used instead. With neither tag present
// the body is empty and the record still passes through — empty-body
// filtering happens downstream. This probe is deliberately independent of
// the PD/SN/LP validity gate in IsRealArticle.
func ExtractBody(chunk string) string {
	var body string
	switch {
	case HasTagLine(chunk, "TD"):
		body = extractBlock(chunk, "TD")
	case HasTagLine(chunk, "LP"):
		body = extractBlock(chunk, "LP")
	default:
		return ""
	}

	var cleaned []string
	for _, line := range strings.Split(body, "\n") {
		s := strings.TrimSpace(line)
		if _, ok := TagTokens[s]; ok {
			continue
		}
		if matchesAny(s, bodyDropPatterns) {
			continue
		}
		if len(s) < 120 && strings.Contains(s, ":") && indexCodeLine.MatchString(s) {
			continue
		}
		cleaned = append(cleaned, line)
	}

	body = strings.Join(cleaned, "\n")
	body = horizontalSpaceRun.ReplaceAllString(body, " ")
	return CleanBlock(body)
}

// extractBlock returns the text between the start tag line and the first
// subsequent tail-tag line, hard-cut at any known tail phrase appearing
// strictly after the start of the block.
func extractBlock(chunk, startTag string) string {
	var out []string
	started := false
	for _, line := range strings.Split(chunk, "\n") {
		s := strings.TrimSpace(line)
		if !started {
			if s == startTag {
				started = true
			}
			continue
		}
		if _, tail := TailTags[s]; tail {
			break
		}
		out = append(out, line)
	}

	text := strings.TrimSpace(strings.Join(out, "\n"))

	cut := -1
	for _, phrase := range TailPhrases {
		if pos := strings.Index(text, phrase); pos > 0 {
			if cut < 0 || pos < cut {
				cut = pos
			}
		}
	}
	if cut > 0 {
		text = strings.TrimRight(text[:cut], " \t\n")
	}

	return text
}

func matchesAny(s string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}
