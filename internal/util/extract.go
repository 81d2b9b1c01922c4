package util

import (
	"fmt"
	"os"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// UnsupportedFormatError names a file extension the extractor does not handle.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %q", e.Extension)
}

// ExtractionError means a supported document could not be read or decoded.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Extract returns the plain text of the file at path. The extension is
// declared by the caller rather than sniffed, matching the upload flow
// where the original filename carries the type. Supported: .pdf (text
// layer, page order), .txt and .md (raw UTF-8). The source file is
// never modified.
func Extract(path, ext string) (string, error) {
	switch strings.ToLower(ext) {
	case ".pdf":
		return extractPDF(path)
	case ".txt", ".md":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", &ExtractionError{Path: path, Err: err}
		}
		return strings.TrimSpace(string(data)), nil
	default:
		return "", &UnsupportedFormatError{Extension: ext}
	}
}

func extractPDF(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Err: fmt.Errorf("failed to open PDF: %w", err)}
	}
	defer doc.Close()

	var fullText strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		text, err := doc.Text(n)
		if err != nil {
			return "", &ExtractionError{Path: path, Err: fmt.Errorf("page %d: %w", n+1, err)}
		}
		fullText.WriteString(text)
	}

	return strings.TrimSpace(fullText.String()), nil
}
