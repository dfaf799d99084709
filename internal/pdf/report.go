package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"leadflow/internal/services"
)

// Generator renders report summaries to PDF for the marketing team.
type Generator struct {
	RootDir string
}

func NewGenerator(rootDir string) *Generator {
	return &Generator{RootDir: filepath.Clean(rootDir)}
}

// GenerateSummary writes a one-page summary report and returns the file path.
func (g *Generator) GenerateSummary(summary *services.ReportSummary, from, to time.Time) (string, error) {
	if err := os.MkdirAll(g.RootDir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Lead Performance Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	window := "all time"
	if !from.IsZero() || !to.IsZero() {
		window = fmt.Sprintf("%s - %s", from.Format("2006-01-02"), to.Format("2006-01-02"))
	}
	pdf.Cell(0, 6, fmt.Sprintf("Window: %s    Generated: %s", window, time.Now().Format("2006-01-02 15:04")))
	pdf.Ln(10)

	rows := []struct {
		label string
		value string
	}{
		{"Total customers", fmt.Sprintf("%d", summary.TotalCustomers)},
		{"Quality customers", fmt.Sprintf("%d", summary.QualityCustomers)},
		{"Disbursed loans", fmt.Sprintf("%d", summary.DisbursedCount)},
		{"Loan amount total", fmt.Sprintf("%.2f", summary.LoanAmountTotal)},
		{"Conversion rate", fmt.Sprintf("%.2f%%", summary.ConversionRate*100)},
		{"Total leads", fmt.Sprintf("%d", summary.TotalLeads)},
		{"Matched leads", fmt.Sprintf("%d", summary.MatchedLeads)},
		{"Duplicate leads", fmt.Sprintf("%d", summary.DuplicateLeads)},
		{"Quality leads", fmt.Sprintf("%d", summary.QualityLeads)},
	}
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range rows {
		pdf.CellFormat(70, 8, row.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 8, row.value, "1", 1, "R", false, 0, "")
	}

	name := fmt.Sprintf("report_%s.pdf", time.Now().Format("20060102_150405"))
	path := filepath.Join(g.RootDir, name)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write report pdf: %w", err)
	}
	return path, nil
}
