package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"organizer/internal/domain"
)

func planFor(target string, names ...string) domain.MovePlan {
	plan := domain.MovePlan{
		TargetDir:      target,
		CategoryCounts: map[string]int{},
	}
	mapping := scenarioMapping()
	for _, name := range names {
		ext := filepath.Ext(name)
		category := mapping.Classify(ext)
		plan.Items = append(plan.Items, domain.MoveItem{
			FileEntry: domain.FileEntry{
				Name:       name,
				Ext:        ext,
				SourcePath: filepath.Join(target, name),
			},
			Category:        category,
			DestinationPath: filepath.Join(target, category, name),
		})
		plan.CategoryCounts[category]++
	}
	return plan
}

func TestExecutorMovesPlannedItems(t *testing.T) {
	mock := &mockFS{}
	plan := planFor("/dir", "photo.jpg", "notes.txt")

	executor := Executor{FS: mock}
	stats, err := executor.Execute(context.Background(), plan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.Moved != 2 || stats.Skipped != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if len(mock.moves) != 2 {
		t.Fatalf("expected 2 moves, got %d", len(mock.moves))
	}
	if mock.moves[0][1] != filepath.Join("/dir", "Images", "photo.jpg") {
		t.Fatalf("unexpected destination: %q", mock.moves[0][1])
	}
	if len(mock.mkdirs) != 2 {
		t.Fatalf("expected 2 mkdir calls, got %d", len(mock.mkdirs))
	}
}

func TestExecutorDryRunTouchesNothing(t *testing.T) {
	mock := &mockFS{}
	plan := planFor("/dir", "photo.jpg", "notes.txt")

	executor := Executor{FS: mock, DryRun: true}
	stats, err := executor.Execute(context.Background(), plan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.Simulated != 2 || stats.Moved != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if len(mock.moves) != 0 || len(mock.mkdirs) != 0 {
		t.Fatal("dry run must not touch the filesystem")
	}
}

func TestExecutorRecoversFromMoveFailure(t *testing.T) {
	target := "/dir"
	mock := &mockFS{
		moveErr: map[string]error{
			filepath.Join(target, "notes.txt"): errors.New("permission denied"),
		},
	}
	plan := planFor(target, "notes.txt", "photo.jpg")

	executor := Executor{FS: mock}
	stats, err := executor.Execute(context.Background(), plan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.Skipped != 1 || stats.Moved != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	// The failure must not prevent the second item from moving.
	if len(mock.moves) != 1 || mock.moves[0][0] != filepath.Join(target, "photo.jpg") {
		t.Fatalf("expected photo.jpg to move, got %v", mock.moves)
	}
}

func TestExecutorReresolvesLateCollision(t *testing.T) {
	target := "/dir"
	mock := &mockFS{
		exists: map[string]bool{
			// Appeared after planning.
			filepath.Join(target, "Documents", "report.txt"): true,
		},
	}
	plan := planFor(target, "report.txt")

	executor := Executor{FS: mock}
	stats, err := executor.Execute(context.Background(), plan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Moved != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	want := filepath.Join(target, "Documents", "report_1.txt")
	if mock.moves[0][1] != want {
		t.Fatalf("destination = %q, want %q", mock.moves[0][1], want)
	}
}

func TestExecutorReportsProgress(t *testing.T) {
	mock := &mockFS{}
	plan := planFor("/dir", "photo.jpg", "notes.txt", "video.mp4")

	var calls int
	var lastDone, lastTotal int
	executor := Executor{
		FS: mock,
		OnProgress: func(done, total int, name string) {
			calls++
			lastDone, lastTotal = done, total
		},
	}
	if _, err := executor.Execute(context.Background(), plan); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls != 3 || lastDone != 3 || lastTotal != 3 {
		t.Fatalf("unexpected progress: calls=%d done=%d total=%d", calls, lastDone, lastTotal)
	}
}

func TestExecutorStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	executor := Executor{FS: &mockFS{}}
	if _, err := executor.Execute(ctx, planFor("/dir", "a.txt")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
