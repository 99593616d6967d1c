package bench

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	labelStyle = lipgloss.NewStyle().
			Width(18).
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

// Report renders the result as a bordered key/value block.
func Report(title string, r Result) string {
	rows := [][2]string{
		{"steps", fmt.Sprint(r.Steps)},
		{"step avg", fmtDur(r.AvgStep())},
		{"step min/max", fmtDur(r.MinStep) + " / " + fmtDur(r.MaxStep)},
		{"chunks loaded", fmt.Sprint(r.Stream.Loaded)},
		{"chunks generated", fmt.Sprint(r.Stream.Generated)},
		{"chunks evicted", fmt.Sprint(r.Stream.Evicted)},
		{"batches", fmt.Sprint(r.Stream.Batches)},
		{"last batch", fmtDur(r.Stream.LastBatch)},
		{"buffers uploaded", fmt.Sprint(r.Memory.Uploads)},
		{"buffers released", fmt.Sprint(r.Memory.Releases)},
		{"vertices drawn", fmt.Sprint(r.Vertices)},
	}

	lines := make([]string, 0, len(rows)+3)
	lines = append(lines, titleStyle.Render(title), "")
	for _, row := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(row[0]), valueStyle.Render(row[1])))
	}
	if r.Profile != "" {
		lines = append(lines, "", labelStyle.Render("top"), r.Profile)
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func fmtDur(d time.Duration) string {
	return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000.0)
}
