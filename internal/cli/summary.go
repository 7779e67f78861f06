package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"hwscan/internal/record"
)

var (
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00d7ff"))
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#87d7af"))
)

// printSummary prints the success banner, both report paths, and every
// record field as "key: value" lines in record order.
func printSummary(out io.Writer, rec *record.Record, csvPath, jsonPath string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, bannerStyle.Render("System information collected successfully!"))
	fmt.Fprintf(out, "CSV saved to: %s\n", csvPath)
	fmt.Fprintf(out, "JSON saved to: %s\n", jsonPath)
	fmt.Fprintln(out)
	fmt.Fprintln(out, bannerStyle.Render("Collected Information:"))
	for _, field := range rec.Fields() {
		fmt.Fprintf(out, "%s: %s\n", keyStyle.Render(field.Key), record.FormatValue(field.Value))
	}
}
