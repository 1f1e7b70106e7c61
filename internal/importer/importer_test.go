package importer_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"alcyxob/fitness-planner/internal/catalog"
	"alcyxob/fitness-planner/internal/importer"
	"alcyxob/fitness-planner/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestDecode_ReportsEveryBadRecord(t *testing.T) {
	in := `[
		{"name": "Push-up", "target": "pectorals"},
		{"name": ""},
		{"name": "push up", "target": "chest"},
		{"name": "Plank", "target": "abs"}
	]`
	_, err := importer.Decode(strings.NewReader(in))
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := importer.Decode(strings.NewReader(`{"name": "not an array"}`))
	assert.Error(t, err)
}

func TestImport_BundledCatalogResolvesEveryTemplate(t *testing.T) {
	f, err := os.Open("../../data/exercises.json")
	require.NoError(t, err)
	defer f.Close()

	records, err := importer.Decode(f)
	require.NoError(t, err)

	registry := catalog.MustLoad()
	repo := memory.NewStore().Repositories().Exercises

	report, err := importer.Import(context.Background(), repo, registry, records)
	require.NoError(t, err)
	assert.Equal(t, len(records), report.Inserted)
	assert.Zero(t, report.Updated)
	assert.Empty(t, report.Unresolved)
	assert.Empty(t, report.UnmappedTargets)

	// A second run updates in place.
	report, err = importer.Import(context.Background(), repo, registry, records)
	require.NoError(t, err)
	assert.Zero(t, report.Inserted)
	assert.Equal(t, len(records), report.Updated)
}

func TestImport_ReportsGaps(t *testing.T) {
	registry := catalog.MustLoad()
	repo := memory.NewStore().Repositories().Exercises

	report, err := importer.Import(context.Background(), repo, registry, []importer.Record{
		{Name: "Barbell Bench Press", Target: "pectorals"},
		{Name: "Treadmill run", Target: "cardiovascular system"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Inserted)
	assert.NotContains(t, report.Unresolved, "Barbell bench press")
	assert.Contains(t, report.Unresolved, "Deadlift")
	assert.Equal(t, []string{"cardiovascular system"}, report.UnmappedTargets)
}
