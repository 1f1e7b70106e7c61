package instrumentation

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentation_Counters(t *testing.T) {
	instr := NewTestInstrumentation()

	instr.PlanGenerated("2x Upper/Lower", 40)
	instr.PlanGenerated("2x Upper/Lower", 2)
	instr.PlanFailed()
	instr.ExercisesUnresolved(3)
	instr.ExercisesUnresolved(0)
	instr.WorkoutsCleanedUp(4)

	assert.Equal(t, 2.0, testutil.ToFloat64(instr.CounterPlansGenerated.WithLabelValues("2x Upper/Lower")))
	assert.Equal(t, 42.0, testutil.ToFloat64(instr.CounterSetsPlanned))
	assert.Equal(t, 1.0, testutil.ToFloat64(instr.CounterPlanFailures))
	assert.Equal(t, 3.0, testutil.ToFloat64(instr.CounterUnresolvedExercises))
	assert.Equal(t, 4.0, testutil.ToFloat64(instr.CounterWorkoutsCleanedUp))
}

func TestInstrumentation_NilIsNoop(t *testing.T) {
	var instr *Instrumentation
	assert.NotPanics(t, func() {
		instr.PlanGenerated("Full Body", 10)
		instr.PlanFailed()
		instr.ExercisesUnresolved(1)
		instr.WorkoutsCleanedUp(1)
	})
}

func TestSetupPrometheus(t *testing.T) {
	reg := SetupPrometheus()
	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
