package content

import (
	"strings"
	"testing"
)

// TestExtractText_ArchiveDiv verifies the transcript div is preferred and
// paragraphs come out one per line.
func TestExtractText_ArchiveDiv(t *testing.T) {
	html := `
<html><body>
<div class="header">Presidential Debates</div>
<div class="field-docs-content">
<p>MODERATOR: Good evening.</p>
<p>MR. SMITH: Thank you.</p>
</div>
<div class="footer">Related documents</div>
</body></html>`

	got, err := NewArchiveExtractor().ExtractText(html)
	if err != nil {
		t.Fatalf("ExtractText returned error: %v", err)
	}

	want := "MODERATOR: Good evening.\nMR. SMITH: Thank you."
	if got != want {
		t.Fatalf("ExtractText = %q, want %q", got, want)
	}
	if strings.Contains(got, "Related documents") {
		t.Error("extracted text includes page chrome")
	}
}

// TestExtractText_EmptyInput verifies empty pages are an error, not empty
// output.
func TestExtractText_EmptyInput(t *testing.T) {
	if _, err := NewArchiveExtractor().ExtractText("   "); err == nil {
		t.Fatal("ExtractText accepted empty input")
	}
}

// TestExtractText_DivWithoutBlocks verifies a transcript div holding bare
// text still extracts.
func TestExtractText_DivWithoutBlocks(t *testing.T) {
	html := `<html><body><div class="field-docs-content">SMITH: Just text, no paragraphs.</div></body></html>`
	got, err := NewArchiveExtractor().ExtractText(html)
	if err != nil {
		t.Fatalf("ExtractText returned error: %v", err)
	}
	if got != "SMITH: Just text, no paragraphs." {
		t.Fatalf("ExtractText = %q", got)
	}
}
