package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gridsim/internal/scenario"
)

// flat strips the regulated pass-through so rule outputs can be checked
// directly.
func flat() scenario.Parameters {
	p := scenario.Defaults()
	p.NetworkLossRate = 0
	p.SystemChargeEURMWh = 0
	return p
}

func TestMarginalPrice_DeepSurplusGoesNegative(t *testing.T) {
	rec := HourRecord{DemandGW: 20, SolarGW: 30, WindGW: 10}
	// ratio 2.0: 5 - 45 = -40, floored at -20 by the rule itself.
	price := marginalPrice(flat(), rec, 0, 0)
	assert.InDelta(t, -20, price, 1e-9)
}

func TestMarginalPrice_MildSurplusBand(t *testing.T) {
	rec := HourRecord{DemandGW: 100, SolarGW: 70, WindGW: 40}
	// ratio 1.10: 5 + 0.10*100 = 15.
	price := marginalPrice(flat(), rec, 0, 0)
	assert.InDelta(t, 15, price, 1e-9)
}

func TestMarginalPrice_GasSetsTheMarginal(t *testing.T) {
	p := flat()
	rec := HourRecord{DemandGW: 30, WindGW: 5, GasGW: 12}
	price := marginalPrice(p, rec, 0, 0)

	base := ccgtMarginalCost(p)
	assert.Greater(t, price, base)
	// Stress premium is at most 12 and the ramp premium applies beyond
	// 1 GW/h of increase.
	assert.LessOrEqual(t, price, base+12+6*11)
}

func TestMarginalPrice_RampPremium(t *testing.T) {
	p := flat()
	rec := HourRecord{DemandGW: 30, GasGW: 6}
	calm := marginalPrice(p, rec, 0, 6)
	ramping := marginalPrice(p, rec, 0, 1)
	assert.Greater(t, ramping, calm)
}

func TestMarginalPrice_HydroMarginalBand(t *testing.T) {
	rec := HourRecord{DemandGW: 20, HydroGW: 4, SolarGW: 2}
	price := marginalPrice(flat(), rec, 8, 0)
	// 25 + 25*util with util = 4/8.
	assert.InDelta(t, 37.5, price, 1e-9)
}

func TestMarginalPrice_ImportFloors(t *testing.T) {
	p := flat()
	rec := HourRecord{DemandGW: 30, HydroGW: 4, ImportGW: 9}
	price := marginalPrice(p, rec, 8, 0)
	assert.GreaterOrEqual(t, price, p.ImportPriceEURMWh*0.85)
}

func TestMarginalPrice_ExportCaps(t *testing.T) {
	p := flat()
	// Gas marginal would be ~70 but the hour is exporting.
	rec := HourRecord{DemandGW: 30, GasGW: 10, ExportGW: 5}
	price := marginalPrice(p, rec, 0, 10)
	assert.LessOrEqual(t, price, p.ExportPriceEURMWh*1.05+1e-9)
}

func TestMarginalPrice_ScarcityOverridesBase(t *testing.T) {
	p := flat()
	rec := HourRecord{DemandGW: 30, GasGW: 5, UnservedGW: 5}
	price := marginalPrice(p, rec, 0, 5)
	assert.GreaterOrEqual(t, price, p.ScarcityPriceEURMWh)
}

func TestMarginalPrice_ScarcityCappedAtClamp(t *testing.T) {
	p := flat()
	p.ScarcityPriceEURMWh = 400
	rec := HourRecord{DemandGW: 10, UnservedGW: 9}
	price := marginalPrice(p, rec, 0, 0)
	assert.Equal(t, PriceCeiling, price)
}

func TestMarginalPrice_PassThroughApplies(t *testing.T) {
	p := flat()
	p.NetworkLossRate = 0.10
	p.SystemChargeEURMWh = 7
	rec := HourRecord{DemandGW: 100, SolarGW: 70, WindGW: 40} // base 15
	price := marginalPrice(p, rec, 0, 0)
	assert.InDelta(t, 15*1.10+7, price, 1e-9)
}

func TestMarginalPrice_AlwaysClamped(t *testing.T) {
	p := scenario.Defaults()
	p.ScarcityPriceEURMWh = 10000
	rec := HourRecord{DemandGW: 10, UnservedGW: 8}
	assert.Equal(t, PriceCeiling, marginalPrice(p, rec, 0, 0))

	p.SystemChargeEURMWh = -10000
	rec = HourRecord{DemandGW: 20, SolarGW: 30, WindGW: 10}
	assert.Equal(t, PriceFloor, marginalPrice(p, rec, 0, 0))
}
