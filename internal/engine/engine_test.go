package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridsim/internal/scenario"
	"gridsim/internal/series"
)

func mustRun(t *testing.T, p scenario.Parameters) *Result {
	t.Helper()
	res, err := New().Run(p)
	require.NoError(t, err)
	require.Len(t, res.Hours, series.HoursPerYear)
	require.Len(t, res.Prices, series.HoursPerYear)
	return res
}

// excessParams is a grid drowning in renewables.
func excessParams() scenario.Parameters {
	p := scenario.Defaults()
	p.SolarGW = 200
	p.WindGW = 150
	p.BaseDemandTWh = 180
	return p
}

// deficitParams is a grid that cannot serve its load.
func deficitParams() scenario.Parameters {
	p := scenario.Defaults()
	p.NuclearGW = 0
	p.GasGW = 5
	p.SolarGW = 5
	p.WindGW = 5
	p.BatteryPowerGW = 0
	p.BatteryEnergyGWh = 0
	p.PumpedPowerGW = 0
	p.PumpedEnergyGWh = 0
	p.InterconnectGW = 0
	p.BaseDemandTWh = 300
	return p
}

func TestRun_Deterministic(t *testing.T) {
	a := mustRun(t, scenario.Defaults())
	b := mustRun(t, scenario.Defaults())
	assert.Equal(t, a, b)
}

func TestRun_DoesNotMutateInput(t *testing.T) {
	p := scenario.Defaults()
	_ = mustRun(t, p)
	assert.Equal(t, scenario.Defaults(), p)
}

func TestRun_RejectsInvalidParameters(t *testing.T) {
	p := scenario.Defaults()
	p.GasGW = -3
	_, err := New().Run(p)
	require.Error(t, err)
}

func TestRun_PriceBounds(t *testing.T) {
	for _, p := range []scenario.Parameters{scenario.Defaults(), excessParams(), deficitParams()} {
		res := mustRun(t, p)
		for h, price := range res.Prices {
			assert.GreaterOrEqual(t, price, PriceFloor, "hour %d", h)
			assert.LessOrEqual(t, price, PriceCeiling, "hour %d", h)
		}
	}
}

func TestRun_OutputAndStorageBounds(t *testing.T) {
	p := scenario.Defaults()
	res := mustRun(t, p)
	for _, rec := range res.Hours {
		for _, v := range []float64{
			rec.NuclearGW, rec.SolarGW, rec.WindGW, rec.HydroGW, rec.GasGW,
			rec.BatteryChargeGW, rec.BatteryDischargeGW,
			rec.PumpedChargeGW, rec.PumpedDischargeGW,
			rec.FlexUpGW, rec.FlexDownGW,
			rec.ImportGW, rec.ExportGW, rec.CurtailmentGW, rec.UnservedGW,
		} {
			assert.GreaterOrEqual(t, v, 0.0, "hour %d", rec.Hour)
		}
		assert.GreaterOrEqual(t, rec.BatteryLevelGWh, 0.0)
		assert.LessOrEqual(t, rec.BatteryLevelGWh, p.BatteryEnergyGWh)
		assert.GreaterOrEqual(t, rec.PumpedLevelGWh, 0.0)
		assert.LessOrEqual(t, rec.PumpedLevelGWh, p.PumpedEnergyGWh)
	}
}

func TestRun_HourlyEnergyBalance(t *testing.T) {
	for _, p := range []scenario.Parameters{scenario.Defaults(), excessParams(), deficitParams()} {
		res := mustRun(t, p)
		for _, rec := range res.Hours {
			supply := rec.NuclearGW + rec.SolarGW + rec.WindGW + rec.HydroGW + rec.GasGW +
				rec.BatteryDischargeGW + rec.PumpedDischargeGW +
				rec.FlexDownGW + rec.ImportGW + rec.UnservedGW
			use := rec.DemandGW + rec.BatteryChargeGW + rec.PumpedChargeGW +
				rec.FlexUpGW + rec.ExportGW + rec.CurtailmentGW
			assert.InDelta(t, use, supply, 1e-6, "hour %d", rec.Hour)
		}
	}
}

func TestRun_GasRampConstraint(t *testing.T) {
	p := scenario.Defaults()
	res := mustRun(t, p)
	for h := 1; h < len(res.Hours); h++ {
		limit := res.Hours[h-1].GasGW + p.GasGW*gasRampFraction + 1e-9
		assert.LessOrEqual(t, res.Hours[h].GasGW, limit, "hour %d", h)
	}
}

func TestRun_ReferenceScenario(t *testing.T) {
	res := mustRun(t, scenario.Defaults())

	weighted := res.WeightedPriceSum / res.DemandSum
	assert.Greater(t, weighted, 60.0)
	assert.Less(t, weighted, 75.0)

	assert.Greater(t, res.GasEnergyTWh, 45.0)
	assert.Less(t, res.GasEnergyTWh, 60.0)

	// A balanced default grid should rarely, if ever, shed load, and never
	// by more than a few GW in a single hour.
	assert.Less(t, res.DeficitHours, 50)
	assert.Less(t, res.MaxDeficitGW, 6.0)
}

func TestRun_FirstHourGasNotRampLimited(t *testing.T) {
	// A grid far short of capacity must commit its whole gas fleet from the
	// first hour. Only hours after the first carry a ramp reference.
	p := deficitParams()
	res := mustRun(t, p)
	assert.InDelta(t, p.GasGW, res.Hours[0].GasGW, 1e-9)
}

func TestRun_ExcessScenario(t *testing.T) {
	res := mustRun(t, excessParams())

	var curtailed float64
	negative := 0
	for i, rec := range res.Hours {
		curtailed += rec.CurtailmentGW
		if res.Prices[i] < 0 {
			negative++
		}
	}
	assert.Greater(t, curtailed, 0.0)
	assert.Greater(t, negative, 1)
}

func TestRun_DeficitScenario(t *testing.T) {
	res := mustRun(t, deficitParams())
	assert.Greater(t, res.DeficitHours, 0)
	assert.Greater(t, res.MaxDeficitGW, 0.0)
}

func TestRun_ScarcityPriceMonotonic(t *testing.T) {
	low := deficitParams()
	low.ScarcityPriceEURMWh = 100
	high := deficitParams()
	high.ScarcityPriceEURMWh = 280

	resLow := mustRun(t, low)
	resHigh := mustRun(t, high)

	countAbove := func(prices []float64, threshold float64) int {
		n := 0
		for _, v := range prices {
			if v > threshold {
				n++
			}
		}
		return n
	}
	for _, threshold := range []float64{100, 200, 350} {
		assert.GreaterOrEqual(t,
			countAbove(resHigh.Prices, threshold),
			countAbove(resLow.Prices, threshold),
			"threshold %g", threshold)
	}
}

func TestRun_DegenerateEfficiencyStaysFinite(t *testing.T) {
	p := deficitParams()
	p.CCGTEfficiency = 0.0001
	res := mustRun(t, p)
	for h, price := range res.Prices {
		require.False(t, math.IsNaN(price), "hour %d", h)
		require.False(t, math.IsInf(price, 0), "hour %d", h)
		assert.GreaterOrEqual(t, price, PriceFloor)
		assert.LessOrEqual(t, price, PriceCeiling)
	}
	assert.False(t, math.IsNaN(res.EmissionsMtCO2))
	assert.False(t, math.IsInf(res.EmissionsMtCO2, 0))
}

func TestRun_SeedChangesOutcome(t *testing.T) {
	a := scenario.Defaults()
	b := scenario.Defaults()
	b.Seed = 43
	resA := mustRun(t, a)
	resB := mustRun(t, b)
	assert.NotEqual(t, resA.Prices, resB.Prices)
}

func TestRun_NuclearRunsAtFixedFactor(t *testing.T) {
	p := scenario.Defaults()
	res := mustRun(t, p)
	expected := nuclearAvailability * p.EffectiveNuclearGW()
	for _, rec := range res.Hours {
		assert.InDelta(t, expected, rec.NuclearGW, 1e-9)
	}
}

func TestRun_SurplusHoursBurnNoGas(t *testing.T) {
	res := mustRun(t, excessParams())
	for _, rec := range res.Hours {
		if rec.CurtailmentGW > 0 || rec.ExportGW > 0 {
			assert.Zero(t, rec.GasGW, "hour %d", rec.Hour)
			assert.Zero(t, rec.HydroGW, "hour %d", rec.Hour)
		}
	}
}
