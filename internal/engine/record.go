package engine

// HourRecord is the per-hour dispatch outcome. One record per hour of the
// year; immutable once appended.
type HourRecord struct {
	Hour int

	DemandGW  float64
	NuclearGW float64
	SolarGW   float64
	WindGW    float64
	HydroGW   float64
	GasGW     float64

	BatteryChargeGW    float64
	BatteryDischargeGW float64
	PumpedChargeGW     float64
	PumpedDischargeGW  float64

	FlexUpGW   float64
	FlexDownGW float64

	ImportGW      float64
	ExportGW      float64
	CurtailmentGW float64
	UnservedGW    float64

	BatteryLevelGWh float64
	PumpedLevelGWh  float64
}

// Result holds the completed hourly arrays plus the running totals the loop
// accumulates. Read-only after Run returns.
type Result struct {
	Hours  []HourRecord
	Prices []float64

	GasEnergyTWh   float64
	EmissionsMtCO2 float64
	DeficitHours   int
	MaxDeficitGW   float64

	// Demand-weighted price accumulators.
	WeightedPriceSum float64
	DemandSum        float64
}
