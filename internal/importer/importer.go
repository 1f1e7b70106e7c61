// Package importer loads exercise catalog files into an ExerciseRepository and
// reports which template exercises the catalog still cannot resolve.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"alcyxob/fitness-planner/internal/catalog"
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// Record is one entry of a catalog file.
type Record struct {
	Name      string `json:"name"`
	BodyPart  string `json:"bodyPart"`
	Target    string `json:"target"`
	Equipment string `json:"equipment"`
	MediaKey  string `json:"mediaKey"`
}

// Report summarizes an import.
type Report struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	// Template exercise names with no catalog entry after the import.
	Unresolved []string `json:"unresolved"`
	// Catalog targets that do not map onto a silhouette muscle.
	UnmappedTargets []string `json:"unmappedTargets"`
}

// Decode parses a JSON array of records. Every invalid record is reported.
func Decode(r io.Reader) ([]Record, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	var errs error
	seen := make(map[string]int, len(records))
	for i, rec := range records {
		key := domain.NormalizeExerciseName(rec.Name)
		if key == "" {
			errs = multierr.Append(errs, fmt.Errorf("record %d: name is required", i))
			continue
		}
		if prev, dup := seen[key]; dup {
			errs = multierr.Append(errs, fmt.Errorf("record %d: %q duplicates record %d", i, rec.Name, prev))
			continue
		}
		seen[key] = i
	}
	if errs != nil {
		return nil, errs
	}
	return records, nil
}

// Import upserts every record by normalized name, then checks the registry's
// template exercises against the catalog.
func Import(ctx context.Context, repo repository.ExerciseRepository, registry *catalog.Registry, records []Record) (*Report, error) {
	report := &Report{}
	unmapped := make(map[string]struct{})

	for _, rec := range records {
		exercise := &domain.Exercise{
			Name:      rec.Name,
			BodyPart:  rec.BodyPart,
			Target:    rec.Target,
			Equipment: rec.Equipment,
			MediaKey:  rec.MediaKey,
		}
		inserted, err := repo.Upsert(ctx, exercise)
		if err != nil {
			return report, fmt.Errorf("upsert %q: %w", rec.Name, err)
		}
		if inserted {
			report.Inserted++
		} else {
			report.Updated++
		}
		if _, ok := registry.MuscleForTarget(rec.Target); !ok && rec.Target != "" {
			unmapped[rec.Target] = struct{}{}
		}
	}

	names := registry.ExerciseNames()
	found, err := repo.FindByNames(ctx, names)
	if err != nil {
		return report, fmt.Errorf("resolve template exercises: %w", err)
	}
	for _, n := range names {
		if _, ok := found[domain.NormalizeExerciseName(n)]; !ok {
			report.Unresolved = append(report.Unresolved, n)
		}
	}
	for t := range unmapped {
		report.UnmappedTargets = append(report.UnmappedTargets, t)
	}
	sort.Strings(report.UnmappedTargets)

	log.WithFields(log.Fields{
		"inserted":   report.Inserted,
		"updated":    report.Updated,
		"unresolved": len(report.Unresolved),
	}).Info("exercise catalog imported")
	return report, nil
}
