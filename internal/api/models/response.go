package models

import (
	"gridsim/internal/engine"
	"gridsim/internal/results"
)

// SimulateResponse is the response for one scenario run.
type SimulateResponse struct {
	Status  string          `json:"status"`
	Summary results.Results `json:"summary"`
	Hourly  []HourRow       `json:"hourly,omitempty"`
}

// CompareResponse carries the KPI summary of every variation.
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains the results for one variation.
type ComparisonResult struct {
	Name    string          `json:"name"`
	Summary results.Results `json:"summary"`
}

// HourRow is one hour of the dispatch ledger.
type HourRow struct {
	Hour int `json:"hour"`

	DemandGW  float64 `json:"demand_gw"`
	NuclearGW float64 `json:"nuclear_gw"`
	SolarGW   float64 `json:"solar_gw"`
	WindGW    float64 `json:"wind_gw"`
	HydroGW   float64 `json:"hydro_gw"`
	GasGW     float64 `json:"gas_gw"`

	BatteryChargeGW    float64 `json:"battery_charge_gw"`
	BatteryDischargeGW float64 `json:"battery_discharge_gw"`
	PumpedChargeGW     float64 `json:"pumped_charge_gw"`
	PumpedDischargeGW  float64 `json:"pumped_discharge_gw"`

	FlexUpGW   float64 `json:"flex_up_gw"`
	FlexDownGW float64 `json:"flex_down_gw"`

	ImportGW      float64 `json:"import_gw"`
	ExportGW      float64 `json:"export_gw"`
	CurtailmentGW float64 `json:"curtailment_gw"`
	UnservedGW    float64 `json:"unserved_gw"`

	BatteryLevelGWh float64 `json:"battery_level_gwh"`
	PumpedLevelGWh  float64 `json:"pumped_level_gwh"`

	PriceEURMWh float64 `json:"price_eur_mwh"`
}

// HourRowsFromRun converts the engine ledger into the wire shape.
func HourRowsFromRun(run *engine.Result) []HourRow {
	rows := make([]HourRow, len(run.Hours))
	for i, r := range run.Hours {
		rows[i] = HourRow{
			Hour:               r.Hour,
			DemandGW:           r.DemandGW,
			NuclearGW:          r.NuclearGW,
			SolarGW:            r.SolarGW,
			WindGW:             r.WindGW,
			HydroGW:            r.HydroGW,
			GasGW:              r.GasGW,
			BatteryChargeGW:    r.BatteryChargeGW,
			BatteryDischargeGW: r.BatteryDischargeGW,
			PumpedChargeGW:     r.PumpedChargeGW,
			PumpedDischargeGW:  r.PumpedDischargeGW,
			FlexUpGW:           r.FlexUpGW,
			FlexDownGW:         r.FlexDownGW,
			ImportGW:           r.ImportGW,
			ExportGW:           r.ExportGW,
			CurtailmentGW:      r.CurtailmentGW,
			UnservedGW:         r.UnservedGW,
			BatteryLevelGWh:    r.BatteryLevelGWh,
			PumpedLevelGWh:     r.PumpedLevelGWh,
			PriceEURMWh:        run.Prices[i],
		}
	}
	return rows
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
