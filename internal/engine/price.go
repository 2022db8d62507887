package engine

import (
	"math"

	"gridsim/internal/scenario"
)

const (
	// PriceFloor and PriceCeiling clamp every hourly price.
	PriceFloor   = -25.0
	PriceCeiling = 500.0

	// Thermal emission factor in tCO2 per MWh of gas burned (thermal).
	gasEmissionFactor = 0.202

	// Minimum CCGT efficiency used in any division; degenerate configs
	// saturate instead of faulting.
	minCCGTEfficiency = 0.45
)

// ccgtEfficiency floor-clamps the configured efficiency.
func ccgtEfficiency(p scenario.Parameters) float64 {
	return math.Max(minCCGTEfficiency, p.CCGTEfficiency)
}

// ccgtMarginalCost is fuel plus carbon plus O&M per MWh electric.
func ccgtMarginalCost(p scenario.Parameters) float64 {
	eff := ccgtEfficiency(p)
	return p.GasPriceEURMWh/eff + p.CO2PriceEURTon*gasEmissionFactor/eff + p.CCGTOMEURMWh
}

// marginalPrice forms the hourly price from the dispatch outcome. The rule
// order matters: the renewable-saturation rules come first, then the
// technology marginal, and the import/export/scarcity bounds override
// whatever the base rule produced before the regulated pass-through and the
// final clamp.
func marginalPrice(p scenario.Parameters, rec HourRecord, hydroEnvelopeGW, prevGasGW float64) float64 {
	demand := math.Max(0.1, rec.DemandGW)
	renewable := rec.SolarGW + rec.WindGW + rec.HydroGW
	ratio := renewable / demand

	var price float64
	switch {
	case ratio > 1.20:
		price = math.Max(-20, 5-(ratio-1)*45)
	case ratio > 1.05:
		price = 5 + (1.2-ratio)*100
	case rec.GasGW > 0.3:
		util := math.Min(1, rec.GasGW/math.Max(0.1, p.GasGW))
		stress := 12 * math.Pow(util, 1.5)
		ramp := 0.0
		if d := rec.GasGW - prevGasGW; d > 1 {
			ramp = 6 * (d - 1)
		}
		price = ccgtMarginalCost(p) + stress + ramp
	case rec.HydroGW > 0.5:
		util := math.Min(1, rec.HydroGW/math.Max(0.1, hydroEnvelopeGW))
		price = 25 + 25*util
	default:
		price = 6 + (1-ratio)*30
	}

	// Import sets a utilization-scaled floor: the marginal unit is abroad.
	if rec.ImportGW > activeFlowThresholdGW {
		util := math.Min(1, rec.ImportGW/math.Max(0.1, p.InterconnectGW))
		if floor := p.ImportPriceEURMWh * (0.85 + 0.30*util); price < floor {
			price = floor
		}
	}

	// Export caps the price near the export reference.
	if rec.ExportGW > activeFlowThresholdGW {
		if lid := p.ExportPriceEURMWh * 1.05; price > lid {
			price = lid
		}
	}

	// Unmet demand floors the price at a scarcity value scaled by the
	// deficit fraction, capped at 4x.
	if rec.UnservedGW > deficitThresholdGW {
		frac := rec.UnservedGW / demand
		if floor := p.ScarcityPriceEURMWh * math.Min(4, 1+3*frac); price < floor {
			price = floor
		}
	}

	// Regulated pass-through, then the final clamp.
	price = price*(1+p.NetworkLossRate) + p.SystemChargeEURMWh
	return math.Min(PriceCeiling, math.Max(PriceFloor, price))
}
