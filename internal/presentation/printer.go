package presentation

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"organizer/internal/domain"
)

type Printer struct {
	Writer  io.Writer
	Verbose bool
}

// PrintPlan renders the planned moves, truncated to the first and last two
// entries for long plans.
func (p Printer) PrintPlan(plan domain.MovePlan) {
	fmt.Fprintln(p.Writer, "Planned moves:")
	fmt.Fprintln(p.Writer)

	if len(plan.Items) == 0 {
		fmt.Fprintln(p.Writer, "  nothing to do")
		return
	}
	for _, line := range formatMoveLines(plan) {
		fmt.Fprintln(p.Writer, "  "+line)
	}
}

// PrintSummary renders the per-category table and the run totals.
func (p Printer) PrintSummary(plan domain.MovePlan, stats domain.RunStats, dryRun bool) {
	fmt.Fprintln(p.Writer)
	if table := categoryTable(plan); table != "" {
		fmt.Fprintln(p.Writer, table)
	}

	if dryRun {
		fmt.Fprintf(p.Writer, "Dry run complete. %d moves simulated, nothing touched.\n", stats.Simulated)
	} else {
		fmt.Fprintf(p.Writer, "Organization complete. %d files moved, %d skipped.\n", stats.Moved, stats.Skipped)
	}

	if p.Verbose && (plan.SkippedDirs > 0 || plan.Excluded > 0) {
		fmt.Fprintf(p.Writer, "Ignored %d directories and %d protected files.\n", plan.SkippedDirs, plan.Excluded)
	}
}

func formatMoveLines(plan domain.MovePlan) []string {
	lines := make([]string, 0, len(plan.Items))
	for _, item := range plan.Items {
		lines = append(lines, formatMoveLine(plan.TargetDir, item))
	}

	if len(lines) <= 4 {
		return lines
	}
	head := lines[:2]
	tail := lines[len(lines)-2:]
	return append(append(head, fmt.Sprintf("... %d more ...", len(lines)-4)), tail...)
}

func formatMoveLine(targetDir string, item domain.MoveItem) string {
	dest, err := filepath.Rel(targetDir, item.DestinationPath)
	if err != nil {
		dest = item.DestinationPath
	}
	line := fmt.Sprintf("%s -> %s", item.Name, dest)
	if item.Renamed {
		line += " (renamed)"
	}
	return line
}

func categoryTable(plan domain.MovePlan) string {
	if len(plan.CategoryCounts) == 0 {
		return ""
	}

	categories := make([]string, 0, len(plan.CategoryCounts))
	for name := range plan.CategoryCounts {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Category", "Files"})
	total := 0
	for _, name := range categories {
		tw.AppendRow(table.Row{name, plan.CategoryCounts[name]})
		total += plan.CategoryCounts[name]
	}
	tw.AppendFooter(table.Row{"Total", total})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft, AlignFooter: text.AlignRight},
	})

	return tw.Render()
}
