package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExtractPlainText(t *testing.T) {
	path := writeTempFile(t, "resume.txt", "\n  Jane Doe\nBackend Engineer  \n\n")

	text, err := Extract(path, ".txt")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nBackend Engineer", text)
}

func TestExtractMarkdown(t *testing.T) {
	path := writeTempFile(t, "jd.md", "# Role\n\n- Go\n- Postgres\n")

	text, err := Extract(path, ".md")
	require.NoError(t, err)
	assert.Equal(t, "# Role\n\n- Go\n- Postgres", text)
}

func TestExtractDoesNotModifySource(t *testing.T) {
	path := writeTempFile(t, "resume.txt", "original content")

	_, err := Extract(path, ".txt")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original content", string(data))
}

func TestExtractUnsupportedExtension(t *testing.T) {
	path := writeTempFile(t, "resume.docx", "whatever")

	var unsupported *UnsupportedFormatError
	_, err := Extract(path, ".docx")
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, ".docx", unsupported.Extension)
	assert.Contains(t, err.Error(), ".docx")
}

func TestExtractMissingTextFile(t *testing.T) {
	var extraction *ExtractionError
	_, err := Extract(filepath.Join(t.TempDir(), "missing.txt"), ".txt")
	require.ErrorAs(t, err, &extraction)
}

func writePDFFixture(t *testing.T, pages ...string) string {
	t.Helper()
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 12)
	for _, content := range pages {
		pdf.AddPage()
		pdf.MultiCell(0, 8, content, "", "L", false)
	}
	path := filepath.Join(t.TempDir(), "fixture.pdf")
	require.NoError(t, pdf.OutputFileAndClose(path))
	return path
}

func TestExtractPDFConcatenatesPagesInOrder(t *testing.T) {
	path := writePDFFixture(t, "Alpha resume page", "Beta closing page")

	text, err := Extract(path, ".pdf")
	require.NoError(t, err)

	first := strings.Index(text, "Alpha resume page")
	second := strings.Index(text, "Beta closing page")
	require.GreaterOrEqual(t, first, 0)
	assert.Greater(t, second, first)
	assert.Equal(t, strings.TrimSpace(text), text)
}

func TestExtractCorruptPDF(t *testing.T) {
	path := writeTempFile(t, "broken.pdf", "this is not a pdf")

	var extraction *ExtractionError
	_, err := Extract(path, ".pdf")
	require.ErrorAs(t, err, &extraction)
	assert.Error(t, extraction.Unwrap())
}
