package reports

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// ExportPDF renders the combined report as a PDF document. KPI rows are
// emitted in metric-name order so two exports of the same data are identical.
func ExportPDF(overview Overview, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(generatedAt)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Performance Report")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", generatedAt.UTC().Format("2006-01-02 15:04 MST")))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Key Performance Indicators")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 12)

	metrics := make([]string, 0, len(overview.KPIs))
	for metric := range overview.KPIs {
		metrics = append(metrics, metric)
	}
	sort.Strings(metrics)
	for _, metric := range metrics {
		pdf.Cell(0, 7, fmt.Sprintf("%s: %d", metric, overview.KPIs[metric]))
		pdf.Ln(6)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Leaderboard")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 12)
	for _, entry := range overview.Leaderboard {
		pdf.Cell(0, 7, fmt.Sprintf("%d. %s (%s)", entry.RankPosition, entry.Name, entry.RankLabel))
		pdf.Ln(6)
	}

	var buff bytes.Buffer
	if err := pdf.Output(&buff); err != nil {
		return nil, err
	}
	return buff.Bytes(), nil
}
