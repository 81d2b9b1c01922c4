package export

import (
	"bytes"
	"fmt"
	"strings"

	"interview-forecaster/internal/model"

	"github.com/jung-kurt/gofpdf"
)

// pageBreakAfter is the fixed pagination rule: a hard break follows the
// 5th question regardless of content length. Users rely on the first
// page holding exactly five questions, so keep this as-is.
const pageBreakAfter = 5

// CribSheet renders the analysis as an A4 PDF: title, summary, skills,
// gaps, then every question in order with category, confidence and the
// drafted answer.
func CribSheet(result *model.AnalysisResult) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Interview Crib Sheet", false)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, tr("Interview Crib Sheet"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	if result.Summary != "" {
		writeSectionHeading(pdf, tr, "Summary")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(result.Summary), "", "L", false)
		pdf.Ln(2)
	}

	if len(result.KeySkills) > 0 {
		writeSectionHeading(pdf, tr, "Key Skills to Highlight")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(strings.Join(result.KeySkills, " • ")), "", "L", false)
		pdf.Ln(2)
	}

	if len(result.ExperienceGaps) > 0 {
		writeSectionHeading(pdf, tr, "Potential Experience Gaps")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(strings.Join(result.ExperienceGaps, " • ")), "", "L", false)
		pdf.Ln(2)
	}

	for i, q := range result.Questions {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("Q%d: %s", i+1, q.Question)), "", "L", false)

		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 5, tr(fmt.Sprintf("%s • %.1f%% confidence", q.Category, q.Confidence*100)), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(q.Answer), "", "L", false)
		pdf.Ln(3)

		if i+1 == pageBreakAfter {
			pdf.AddPage()
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render crib sheet: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSectionHeading(pdf *gofpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")
}
