package presentation

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"organizer/internal/domain"
)

func samplePlan(names ...string) domain.MovePlan {
	plan := domain.MovePlan{
		TargetDir:      "/dir",
		CategoryCounts: map[string]int{},
	}
	for _, name := range names {
		plan.Items = append(plan.Items, domain.MoveItem{
			FileEntry: domain.FileEntry{
				Name:       name,
				SourcePath: filepath.Join("/dir", name),
			},
			Category:        "Documents",
			DestinationPath: filepath.Join("/dir", "Documents", name),
		})
		plan.CategoryCounts["Documents"]++
	}
	return plan
}

func TestPrintPlanShowsRelativeDestinations(t *testing.T) {
	var buf bytes.Buffer
	printer := Printer{Writer: &buf}

	printer.PrintPlan(samplePlan("notes.txt"))

	out := buf.String()
	if !strings.Contains(out, "notes.txt -> Documents/notes.txt") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestFormatMoveLinesTruncates(t *testing.T) {
	names := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		names = append(names, fmt.Sprintf("file%d.txt", i))
	}
	lines := formatMoveLines(samplePlan(names...))

	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[2], "3 more") {
		t.Fatalf("expected ellipsis line, got %q", lines[2])
	}
}

func TestFormatMoveLineMarksRenames(t *testing.T) {
	item := domain.MoveItem{
		FileEntry:       domain.FileEntry{Name: "report.txt"},
		Category:        "Documents",
		DestinationPath: "/dir/Documents/report_1.txt",
		Renamed:         true,
	}
	line := formatMoveLine("/dir", item)
	if !strings.HasSuffix(line, "(renamed)") {
		t.Fatalf("expected rename marker, got %q", line)
	}
}

func TestPrintSummaryLiveAndDryRun(t *testing.T) {
	plan := samplePlan("a.txt", "b.txt")

	var live bytes.Buffer
	Printer{Writer: &live}.PrintSummary(plan, domain.RunStats{Moved: 1, Skipped: 1}, false)
	if !strings.Contains(live.String(), "1 files moved, 1 skipped") {
		t.Fatalf("unexpected live summary: %q", live.String())
	}
	if !strings.Contains(live.String(), "Documents") {
		t.Fatalf("expected category table, got %q", live.String())
	}

	var dry bytes.Buffer
	Printer{Writer: &dry}.PrintSummary(plan, domain.RunStats{Simulated: 2}, true)
	if !strings.Contains(dry.String(), "2 moves simulated") {
		t.Fatalf("unexpected dry-run summary: %q", dry.String())
	}
}

func TestPrintSummaryVerboseMentionsIgnored(t *testing.T) {
	plan := samplePlan("a.txt")
	plan.SkippedDirs = 2
	plan.Excluded = 3

	var buf bytes.Buffer
	Printer{Writer: &buf, Verbose: true}.PrintSummary(plan, domain.RunStats{Moved: 1}, false)
	if !strings.Contains(buf.String(), "2 directories and 3 protected files") {
		t.Fatalf("expected ignored counts, got %q", buf.String())
	}
}
