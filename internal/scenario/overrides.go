package scenario

// Overrides carries optional per-field overrides. Pointer fields distinguish
// "not set" from an explicit zero, which matters here: setting a capacity to
// zero is a meaningful what-if.
type Overrides struct {
	NuclearGW *float64 `yaml:"nuclear_gw" json:"nuclear_gw,omitempty"`
	SolarGW   *float64 `yaml:"solar_gw" json:"solar_gw,omitempty"`
	WindGW    *float64 `yaml:"wind_gw" json:"wind_gw,omitempty"`
	HydroGW   *float64 `yaml:"hydro_gw" json:"hydro_gw,omitempty"`
	GasGW     *float64 `yaml:"gas_gw" json:"gas_gw,omitempty"`

	BatteryPowerGW   *float64 `yaml:"battery_power_gw" json:"battery_power_gw,omitempty"`
	BatteryEnergyGWh *float64 `yaml:"battery_energy_gwh" json:"battery_energy_gwh,omitempty"`
	PumpedPowerGW    *float64 `yaml:"pumped_power_gw" json:"pumped_power_gw,omitempty"`
	PumpedEnergyGWh  *float64 `yaml:"pumped_energy_gwh" json:"pumped_energy_gwh,omitempty"`

	GasPriceEURMWh *float64 `yaml:"gas_price_eur_mwh" json:"gas_price_eur_mwh,omitempty"`
	CO2PriceEURTon *float64 `yaml:"co2_price_eur_ton" json:"co2_price_eur_ton,omitempty"`
	CCGTEfficiency *float64 `yaml:"ccgt_efficiency" json:"ccgt_efficiency,omitempty"`
	CCGTOMEURMWh   *float64 `yaml:"ccgt_om_eur_mwh" json:"ccgt_om_eur_mwh,omitempty"`

	NetworkLossRate    *float64 `yaml:"network_loss_rate" json:"network_loss_rate,omitempty"`
	SystemChargeEURMWh *float64 `yaml:"system_charge_eur_mwh" json:"system_charge_eur_mwh,omitempty"`

	Seed *int64 `yaml:"seed" json:"seed,omitempty"`

	BaseDemandTWh *float64 `yaml:"base_demand_twh" json:"base_demand_twh,omitempty"`
	Hydraulicity  *float64 `yaml:"hydraulicity" json:"hydraulicity,omitempty"`

	TargetYear                *int     `yaml:"target_year" json:"target_year,omitempty"`
	DemandGrowthRate          *float64 `yaml:"demand_growth_rate" json:"demand_growth_rate,omitempty"`
	ElectrificationTWhPerYear *float64 `yaml:"electrification_twh_per_year" json:"electrification_twh_per_year,omitempty"`
	EfficiencyGainRate        *float64 `yaml:"efficiency_gain_rate" json:"efficiency_gain_rate,omitempty"`
	NuclearDecommission       *bool    `yaml:"nuclear_decommission" json:"nuclear_decommission,omitempty"`
	DecommissionYear          *int     `yaml:"decommission_year" json:"decommission_year,omitempty"`

	FlexPowerGW *float64 `yaml:"flex_power_gw" json:"flex_power_gw,omitempty"`
	FlexShare   *float64 `yaml:"flex_share" json:"flex_share,omitempty"`

	InterconnectGW      *float64 `yaml:"interconnect_gw" json:"interconnect_gw,omitempty"`
	ImportPriceEURMWh   *float64 `yaml:"import_price_eur_mwh" json:"import_price_eur_mwh,omitempty"`
	ExportPriceEURMWh   *float64 `yaml:"export_price_eur_mwh" json:"export_price_eur_mwh,omitempty"`
	ScarcityPriceEURMWh *float64 `yaml:"scarcity_price_eur_mwh" json:"scarcity_price_eur_mwh,omitempty"`
}

// Apply overlays set fields from o onto base and returns a new value. The
// base is never mutated.
func Apply(base Parameters, o Overrides) Parameters {
	out := base
	setF := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setF(&out.NuclearGW, o.NuclearGW)
	setF(&out.SolarGW, o.SolarGW)
	setF(&out.WindGW, o.WindGW)
	setF(&out.HydroGW, o.HydroGW)
	setF(&out.GasGW, o.GasGW)
	setF(&out.BatteryPowerGW, o.BatteryPowerGW)
	setF(&out.BatteryEnergyGWh, o.BatteryEnergyGWh)
	setF(&out.PumpedPowerGW, o.PumpedPowerGW)
	setF(&out.PumpedEnergyGWh, o.PumpedEnergyGWh)
	setF(&out.GasPriceEURMWh, o.GasPriceEURMWh)
	setF(&out.CO2PriceEURTon, o.CO2PriceEURTon)
	setF(&out.CCGTEfficiency, o.CCGTEfficiency)
	setF(&out.CCGTOMEURMWh, o.CCGTOMEURMWh)
	setF(&out.NetworkLossRate, o.NetworkLossRate)
	setF(&out.SystemChargeEURMWh, o.SystemChargeEURMWh)
	if o.Seed != nil {
		out.Seed = *o.Seed
	}
	setF(&out.BaseDemandTWh, o.BaseDemandTWh)
	setF(&out.Hydraulicity, o.Hydraulicity)
	if o.TargetYear != nil {
		out.TargetYear = *o.TargetYear
	}
	setF(&out.DemandGrowthRate, o.DemandGrowthRate)
	setF(&out.ElectrificationTWhPerYear, o.ElectrificationTWhPerYear)
	setF(&out.EfficiencyGainRate, o.EfficiencyGainRate)
	if o.NuclearDecommission != nil {
		out.NuclearDecommission = *o.NuclearDecommission
	}
	if o.DecommissionYear != nil {
		out.DecommissionYear = *o.DecommissionYear
	}
	setF(&out.FlexPowerGW, o.FlexPowerGW)
	setF(&out.FlexShare, o.FlexShare)
	setF(&out.InterconnectGW, o.InterconnectGW)
	setF(&out.ImportPriceEURMWh, o.ImportPriceEURMWh)
	setF(&out.ExportPriceEURMWh, o.ExportPriceEURMWh)
	setF(&out.ScarcityPriceEURMWh, o.ScarcityPriceEURMWh)
	return out
}
