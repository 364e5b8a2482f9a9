package visuals

import (
	"fmt"
	"math"
	"strings"

	"github.com/bigtednz/waterways-sub000/internal/stats"
)

// GenerateTrendChart creates a Mermaid xychart-beta of median clean time per
// competition across a season.
func GenerateTrendChart(trends []stats.CompetitionTrend) string {
	if len(trends) == 0 {
		return ""
	}

	var labels []string
	var medians []string

	maxY := 0.0
	for _, tr := range trends {
		label := tr.Date
		if label == "" {
			label = tr.Name
		}
		labels = append(labels, fmt.Sprintf("\"%s\"", label))
		medians = append(medians, fmt.Sprintf("%.1f", tr.MedianCleanTime))
		if tr.MedianCleanTime > maxY {
			maxY = tr.MedianCleanTime
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Median Clean Time per Competition\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Clean Time (Seconds)\" 0 --> %d\n", int(math.Ceil(maxY*1.2))+1))
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(medians, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateDriverChart creates a Mermaid bar chart of penalty seconds per run
// type, worst offenders first. Limited to 20 bars to keep the text chart
// readable.
func GenerateDriverChart(drivers []stats.PenaltyDriver) string {
	if len(drivers) == 0 {
		return ""
	}

	limit := len(drivers)
	if limit > 20 {
		limit = 20
	}

	var labels []string
	var values []string
	maxVal := 0.0

	for i := 0; i < limit; i++ {
		d := drivers[i]
		labels = append(labels, fmt.Sprintf("\"%s\"", d.RunTypeCode))
		values = append(values, fmt.Sprintf("%.1f", d.TotalPenaltySeconds))
		if d.TotalPenaltySeconds > maxVal {
			maxVal = d.TotalPenaltySeconds
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Penalty Time by Run Type\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Penalty Seconds\" 0 --> %d\n", int(math.Ceil(maxVal*1.2))+1))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}
