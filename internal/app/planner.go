package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"organizer/internal/domain"
	"organizer/internal/logging"
)

// Planner enumerates the top-level entries of the target directory,
// classifies them, and resolves a collision-free destination for each.
type Planner struct {
	FS      FileSystem
	Mapping domain.Mapping
	Exclude map[string]bool
	Logger  *logging.Logger
}

func (p *Planner) Plan(ctx context.Context, targetDir string) (domain.MovePlan, error) {
	if p.FS == nil {
		return domain.MovePlan{}, errors.New("planner requires FS")
	}

	stop := p.Logger.Measure("planning moves")
	defer stop()

	entries, err := p.FS.ReadDir(targetDir)
	if err != nil {
		return domain.MovePlan{}, err
	}

	// Directory-listing order is not guaranteed; sort for determinism.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	plan := domain.MovePlan{
		TargetDir:      targetDir,
		CategoryCounts: make(map[string]int),
	}
	reserved := make(map[string]bool)

	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return domain.MovePlan{}, ctx.Err()
		default:
		}

		name := entry.Name()
		if entry.IsDir() {
			plan.SkippedDirs++
			p.Logger.Verbosef("skipping directory %s", name)
			continue
		}
		if p.Exclude[name] {
			plan.Excluded++
			p.Logger.Verbosef("skipping %s (protected file)", name)
			continue
		}

		ext := strings.ToLower(filepath.Ext(name))
		category := p.Mapping.Classify(ext)
		destination := filepath.Join(targetDir, category, name)

		resolved, err := resolveDestination(p.FS, destination, reserved)
		if err != nil {
			return domain.MovePlan{}, err
		}
		reserved[resolved] = true

		plan.Items = append(plan.Items, domain.MoveItem{
			FileEntry: domain.FileEntry{
				Name:       name,
				Ext:        ext,
				SourcePath: filepath.Join(targetDir, name),
			},
			Category:        category,
			DestinationPath: resolved,
			Renamed:         resolved != destination,
		})
		plan.CategoryCounts[category]++
	}

	p.Logger.Verbosef("planned %d moves across %d categories (%d directories and %d protected files skipped)",
		len(plan.Items), len(plan.CategoryCounts), plan.SkippedDirs, plan.Excluded)

	return plan, nil
}

// resolveDestination returns path if it is free, otherwise the first
// name_1.ext, name_2.ext, ... variant that neither exists on disk nor is
// reserved by an earlier item of the same run. It never returns a path that
// would overwrite an existing file.
func resolveDestination(fsys FileSystem, path string, reserved map[string]bool) (string, error) {
	taken, err := destinationTaken(fsys, path, reserved)
	if err != nil {
		return "", err
	}
	if !taken {
		return path, nil
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for counter := 1; ; counter++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, counter, ext)
		taken, err := destinationTaken(fsys, candidate, reserved)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
}

func destinationTaken(fsys FileSystem, path string, reserved map[string]bool) (bool, error) {
	if reserved[path] {
		return true, nil
	}
	return fsys.Exists(path)
}
