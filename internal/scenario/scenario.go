// Package scenario defines the run configuration: a flat value type of
// capacities, prices and policy knobs, with defaults, per-field overrides and
// the horizon adjustments derived from them.
package scenario

import (
	"errors"
	"fmt"
	"math"
)

// BaseYear anchors the horizon adjustments (demand growth, decommission ramp).
const BaseYear = 2025

// Parameters is the immutable per-run configuration. Runs never mutate it;
// overrides produce a new value via Apply.
type Parameters struct {
	// Installed capacity per technology (GW).
	NuclearGW float64 `yaml:"nuclear_gw" json:"nuclear_gw"`
	SolarGW   float64 `yaml:"solar_gw" json:"solar_gw"`
	WindGW    float64 `yaml:"wind_gw" json:"wind_gw"`
	HydroGW   float64 `yaml:"hydro_gw" json:"hydro_gw"`
	GasGW     float64 `yaml:"gas_gw" json:"gas_gw"`

	// Storage.
	BatteryPowerGW   float64 `yaml:"battery_power_gw" json:"battery_power_gw"`
	BatteryEnergyGWh float64 `yaml:"battery_energy_gwh" json:"battery_energy_gwh"`
	PumpedPowerGW    float64 `yaml:"pumped_power_gw" json:"pumped_power_gw"`
	PumpedEnergyGWh  float64 `yaml:"pumped_energy_gwh" json:"pumped_energy_gwh"`

	// Thermal economics.
	GasPriceEURMWh  float64 `yaml:"gas_price_eur_mwh" json:"gas_price_eur_mwh"`
	CO2PriceEURTon  float64 `yaml:"co2_price_eur_ton" json:"co2_price_eur_ton"`
	CCGTEfficiency  float64 `yaml:"ccgt_efficiency" json:"ccgt_efficiency"`
	CCGTOMEURMWh    float64 `yaml:"ccgt_om_eur_mwh" json:"ccgt_om_eur_mwh"`

	// Regulated components.
	NetworkLossRate    float64 `yaml:"network_loss_rate" json:"network_loss_rate"`
	SystemChargeEURMWh float64 `yaml:"system_charge_eur_mwh" json:"system_charge_eur_mwh"`

	// Stochastics.
	Seed int64 `yaml:"seed" json:"seed"`

	// Demand and hydrology.
	BaseDemandTWh float64 `yaml:"base_demand_twh" json:"base_demand_twh"`
	Hydraulicity  float64 `yaml:"hydraulicity" json:"hydraulicity"`

	// Horizon.
	TargetYear                int     `yaml:"target_year" json:"target_year"`
	DemandGrowthRate          float64 `yaml:"demand_growth_rate" json:"demand_growth_rate"`
	ElectrificationTWhPerYear float64 `yaml:"electrification_twh_per_year" json:"electrification_twh_per_year"`
	EfficiencyGainRate        float64 `yaml:"efficiency_gain_rate" json:"efficiency_gain_rate"`
	NuclearDecommission       bool    `yaml:"nuclear_decommission" json:"nuclear_decommission"`
	DecommissionYear          int     `yaml:"decommission_year" json:"decommission_year"`

	// Flexible demand.
	FlexPowerGW float64 `yaml:"flex_power_gw" json:"flex_power_gw"`
	FlexShare   float64 `yaml:"flex_share" json:"flex_share"`

	// Interconnection and scarcity.
	InterconnectGW      float64 `yaml:"interconnect_gw" json:"interconnect_gw"`
	ImportPriceEURMWh   float64 `yaml:"import_price_eur_mwh" json:"import_price_eur_mwh"`
	ExportPriceEURMWh   float64 `yaml:"export_price_eur_mwh" json:"export_price_eur_mwh"`
	ScarcityPriceEURMWh float64 `yaml:"scarcity_price_eur_mwh" json:"scarcity_price_eur_mwh"`
}

// Defaults returns the canonical scenario. Callers override individual fields
// through Apply.
func Defaults() Parameters {
	return Parameters{
		NuclearGW: 7,
		SolarGW:   24,
		WindGW:    31,
		HydroGW:   17,
		GasGW:     24,

		BatteryPowerGW:   3,
		BatteryEnergyGWh: 10,
		PumpedPowerGW:    5,
		PumpedEnergyGWh:  80,

		GasPriceEURMWh: 25,
		CO2PriceEURTon: 50,
		CCGTEfficiency: 0.55,
		CCGTOMEURMWh:   3.5,

		NetworkLossRate:    0.02,
		SystemChargeEURMWh: 4,

		Seed: 42,

		BaseDemandTWh: 250,
		Hydraulicity:  1.0,

		TargetYear:                2030,
		DemandGrowthRate:          0.013,
		ElectrificationTWhPerYear: 1.8,
		EfficiencyGainRate:        0.005,
		NuclearDecommission:       false,
		DecommissionYear:          2035,

		FlexPowerGW: 2.0,
		FlexShare:   0.06,

		InterconnectGW:      3.5,
		ImportPriceEURMWh:   55,
		ExportPriceEURMWh:   40,
		ScarcityPriceEURMWh: 180,
	}
}

// Validate rejects configurations the engine could only answer with
// nonsense. The dispatch and pricing code itself is total over finite
// numeric input; this is an optional fail-fast gate for callers.
func (p Parameters) Validate() error {
	named := []struct {
		name string
		v    float64
	}{
		{"nuclear_gw", p.NuclearGW},
		{"solar_gw", p.SolarGW},
		{"wind_gw", p.WindGW},
		{"hydro_gw", p.HydroGW},
		{"gas_gw", p.GasGW},
		{"battery_power_gw", p.BatteryPowerGW},
		{"battery_energy_gwh", p.BatteryEnergyGWh},
		{"pumped_power_gw", p.PumpedPowerGW},
		{"pumped_energy_gwh", p.PumpedEnergyGWh},
		{"base_demand_twh", p.BaseDemandTWh},
		{"hydraulicity", p.Hydraulicity},
		{"flex_power_gw", p.FlexPowerGW},
		{"flex_share", p.FlexShare},
		{"interconnect_gw", p.InterconnectGW},
	}
	for _, f := range named {
		if f.v < 0 {
			return fmt.Errorf("%s must be >= 0, got %g", f.name, f.v)
		}
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s must be finite, got %g", f.name, f.v)
		}
	}
	if p.Seed == 0 {
		return errors.New("seed must be non-zero")
	}
	if p.TargetYear < BaseYear {
		return fmt.Errorf("target_year must be >= %d, got %d", BaseYear, p.TargetYear)
	}
	if p.NuclearDecommission && p.DecommissionYear <= BaseYear {
		return fmt.Errorf("decommission_year must be > %d, got %d", BaseYear, p.DecommissionYear)
	}
	return nil
}

// AdjustedAnnualDemandTWh derives the effective annual demand for the target
// year: compound growth plus linear electrification, scaled by the
// efficiency-improvement factor, clamped to [180, 360] TWh.
func (p Parameters) AdjustedAnnualDemandTWh() float64 {
	years := float64(p.TargetYear - BaseYear)
	if years < 0 {
		years = 0
	}
	demand := p.BaseDemandTWh * math.Pow(1+p.DemandGrowthRate, years)
	demand += p.ElectrificationTWhPerYear * years
	demand *= math.Pow(1-p.EfficiencyGainRate, years)
	if demand < 180 {
		return 180
	}
	if demand > 360 {
		return 360
	}
	return demand
}

// EffectiveNuclearGW applies the decommission policy: a linear ramp to zero
// between the base year and the decommission year when active, installed
// capacity otherwise.
func (p Parameters) EffectiveNuclearGW() float64 {
	if !p.NuclearDecommission {
		return p.NuclearGW
	}
	if p.TargetYear >= p.DecommissionYear {
		return 0
	}
	span := float64(p.DecommissionYear - BaseYear)
	if span <= 0 {
		return 0
	}
	frac := float64(p.DecommissionYear-p.TargetYear) / span
	if frac > 1 {
		frac = 1
	}
	if frac < 0 {
		frac = 0
	}
	return p.NuclearGW * frac
}
