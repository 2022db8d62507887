package results

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridsim/internal/engine"
	"gridsim/internal/scenario"
	"gridsim/internal/series"
)

func referenceRun(t *testing.T) *engine.Result {
	t.Helper()
	run, err := engine.New().Run(scenario.Defaults())
	require.NoError(t, err)
	return run
}

func TestAggregate_PercentileOrdering(t *testing.T) {
	r := Aggregate(referenceRun(t))
	assert.LessOrEqual(t, r.PriceMin, r.PriceP10)
	assert.LessOrEqual(t, r.PriceP10, r.PriceP50)
	assert.LessOrEqual(t, r.PriceP50, r.PriceP90)
	assert.LessOrEqual(t, r.PriceP90, r.PriceMax)
}

func TestAggregate_SharesSumSensibly(t *testing.T) {
	r := Aggregate(referenceRun(t))
	assert.Greater(t, r.RenewableSharePct, 0.0)
	assert.LessOrEqual(t, r.RenewableSharePct, 100.0)
	assert.GreaterOrEqual(t, r.GasSharePct, 0.0)
	assert.LessOrEqual(t, r.RenewableSharePct+r.GasSharePct, 100.0+1e-9)
}

func TestAggregate_MonthlyRollupMatchesTotals(t *testing.T) {
	run := referenceRun(t)
	r := Aggregate(run)

	var demand, gas float64
	for _, m := range r.Monthly {
		demand += m.DemandTWh
		gas += m.GasTWh
	}
	assert.InDelta(t, r.DemandTWh, demand, 1e-6)
	assert.InDelta(t, r.GasEnergyTWh, gas, 1e-6)
}

func TestAggregate_WeightedVsSimpleAverage(t *testing.T) {
	run := referenceRun(t)
	r := Aggregate(run)
	assert.InDelta(t, run.WeightedPriceSum/run.DemandSum, r.WeightedAvgPriceEURMWh, 1e-9)
	assert.NotZero(t, r.AvgPriceEURMWh)
}

func TestAggregate_PanicsOnShortArrays(t *testing.T) {
	run := referenceRun(t)
	run.Hours = run.Hours[:100]
	assert.Panics(t, func() { Aggregate(run) })
}

func TestPercentileSorted_LinearInterpolation(t *testing.T) {
	vals := []float64{10, 20, 30, 40, 50}
	assert.InDelta(t, 10, percentileSorted(vals, 0), 1e-9)
	assert.InDelta(t, 30, percentileSorted(vals, 0.5), 1e-9)
	assert.InDelta(t, 50, percentileSorted(vals, 1), 1e-9)
	assert.InDelta(t, 14, percentileSorted(vals, 0.10), 1e-9)
	assert.InDelta(t, 46, percentileSorted(vals, 0.90), 1e-9)
}

func TestPercentileSorted_Degenerate(t *testing.T) {
	assert.Zero(t, percentileSorted(nil, 0.5))
	assert.Equal(t, 7.0, percentileSorted([]float64{7}, 0.9))
}

func TestWriteHourlyCSV(t *testing.T) {
	run := referenceRun(t)
	path := filepath.Join(t.TempDir(), "hourly.csv")
	require.NoError(t, WriteHourlyCSV(path, run))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	assert.Len(t, lines, series.HoursPerYear+1)
	assert.True(t, strings.HasPrefix(lines[0], "hour,demand_gw,"))
}
