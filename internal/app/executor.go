package app

import (
	"context"
	"errors"
	"path/filepath"

	"organizer/internal/domain"
	"organizer/internal/logging"
)

// ProgressFunc is called after each processed item.
type ProgressFunc func(done, total int, name string)

// Executor applies a move plan, emitting one record per item. A failed move
// becomes a skipped record; it never aborts the remaining items. In dry-run
// mode it emits simulated records and touches nothing.
type Executor struct {
	FS         FileSystem
	Logger     *logging.Logger
	DryRun     bool
	OnProgress ProgressFunc
}

func (e *Executor) Execute(ctx context.Context, plan domain.MovePlan) (domain.RunStats, error) {
	if e.FS == nil {
		return domain.RunStats{}, errors.New("executor requires FS")
	}

	var stats domain.RunStats
	total := len(plan.Items)
	for i, item := range plan.Items {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		rec := e.apply(item)
		e.Logger.Record(rec)
		stats.Add(rec)

		if e.OnProgress != nil {
			e.OnProgress(i+1, total, item.Name)
		}
	}
	return stats, nil
}

func (e *Executor) apply(item domain.MoveItem) domain.MoveRecord {
	if e.DryRun {
		return domain.MoveRecord{
			Source:      item.SourcePath,
			Destination: item.DestinationPath,
			Outcome:     domain.OutcomeSimulated,
		}
	}

	if err := e.FS.MkdirAll(filepath.Dir(item.DestinationPath), 0o755); err != nil {
		return skippedRecord(item, "create category folder: "+err.Error())
	}

	// The destination may have appeared since planning; re-resolve rather
	// than overwrite.
	destination, err := resolveDestination(e.FS, item.DestinationPath, nil)
	if err != nil {
		return skippedRecord(item, "resolve destination: "+err.Error())
	}

	if err := e.FS.Move(item.SourcePath, destination); err != nil {
		return skippedRecord(item, err.Error())
	}

	return domain.MoveRecord{
		Source:      item.SourcePath,
		Destination: destination,
		Outcome:     domain.OutcomeMoved,
	}
}

func skippedRecord(item domain.MoveItem, reason string) domain.MoveRecord {
	return domain.MoveRecord{
		Source:      item.SourcePath,
		Destination: item.DestinationPath,
		Outcome:     domain.OutcomeSkipped,
		Reason:      reason,
	}
}
