// Package engine runs the hourly merit-order dispatch and price formation
// over one simulated year.
package engine

import (
	"math"

	"gridsim/internal/rng"
	"gridsim/internal/scenario"
	"gridsim/internal/series"
)

const (
	// Nuclear runs at a fixed availability factor on effective capacity.
	nuclearAvailability = 0.90

	// Gas can ramp by at most this fraction of installed capacity per hour.
	gasRampFraction = 0.15

	// Battery self-discharge per hour.
	batterySelfDischarge = 0.001

	// Round-trip efficiencies applied on charge.
	batteryChargeEfficiency = 0.90
	pumpedChargeEfficiency  = 0.75

	// Noise gates: flows below these never count as active events.
	activeFlowThresholdGW = 0.2
	deficitThresholdGW    = 0.3
)

// Engine executes scenario runs. Stateless between runs: every Run owns
// fresh storage and weather state.
type Engine struct{}

func New() *Engine { return &Engine{} }

// Run simulates the full year for the given parameters. The whole run is
// pure computation; identical parameters yield identical results. The input
// value is never mutated.
func (e *Engine) Run(p scenario.Parameters) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	solarCF := series.SolarSeries(rng.New(rng.Derive(p.Seed, rng.CloudStream)))
	windCF := series.WindSeries(rng.New(rng.Derive(p.Seed, rng.WindStream)))
	demandShape := series.DemandShape(rng.New(rng.Derive(p.Seed, rng.DemandStream)))

	annualTWh := p.AdjustedAnnualDemandTWh()
	meanDemandGW := annualTWh * 1000 / series.HoursPerYear
	effNuclearGW := p.EffectiveNuclearGW()

	battery := &Reservoir{
		CapacityGWh:      p.BatteryEnergyGWh,
		PowerGW:          p.BatteryPowerGW,
		ChargeEfficiency: batteryChargeEfficiency,
	}
	pumped := &Reservoir{
		CapacityGWh:      p.PumpedEnergyGWh,
		PowerGW:          p.PumpedPowerGW,
		ChargeEfficiency: pumpedChargeEfficiency,
	}

	res := &Result{
		Hours:  make([]HourRecord, 0, series.HoursPerYear),
		Prices: make([]float64, 0, series.HoursPerYear),
	}

	ccgtEff := ccgtEfficiency(p)

	// The first hour has no previous-hour ramp reference; it is bounded by
	// installed capacity alone.
	prevGasGW := p.GasGW

	for h := 0; h < series.HoursPerYear; h++ {
		month := series.MonthOfDay(series.DayOfHour(h))
		demand := meanDemandGW * demandShape[h]

		rec := HourRecord{
			Hour:      h,
			DemandGW:  demand,
			NuclearGW: nuclearAvailability * effNuclearGW,
			SolarGW:   p.SolarGW * solarCF[h],
			WindGW:    p.WindGW * windCF[h],
		}

		hydroEnvelopeGW := p.HydroGW * series.HydroAvailability(month, p.Hydraulicity)
		surplus := rec.NuclearGW + rec.SolarGW + rec.WindGW - demand

		if surplus > 0 {
			rec.CurtailmentGW = allocate(surplus, []step{
				{
					name:  "battery-charge",
					limit: battery.ChargeLimitGW,
					apply: func(gw float64) {
						battery.Charge(gw)
						rec.BatteryChargeGW = gw
					},
				},
				{
					name:  "pumped-charge",
					limit: pumped.ChargeLimitGW,
					apply: func(gw float64) {
						pumped.Charge(gw)
						rec.PumpedChargeGW = gw
					},
				},
				{
					name:  "flex-up",
					limit: func() float64 { return math.Min(p.FlexPowerGW, demand*p.FlexShare) },
					apply: func(gw float64) { rec.FlexUpGW = gw },
				},
				{
					name:  "export",
					limit: func() float64 { return p.InterconnectGW },
					apply: func(gw float64) { rec.ExportGW = gw },
				},
			})
		} else if surplus < 0 {
			gasLimitGW := math.Min(p.GasGW, prevGasGW+p.GasGW*gasRampFraction)
			unserved := allocate(-surplus, []step{
				{
					name:  "hydro",
					limit: func() float64 { return hydroEnvelopeGW },
					apply: func(gw float64) { rec.HydroGW = gw },
				},
				{
					name:  "battery-discharge",
					limit: battery.DischargeLimitGW,
					apply: func(gw float64) {
						battery.Discharge(gw)
						rec.BatteryDischargeGW = gw
					},
				},
				{
					name:  "pumped-discharge",
					limit: pumped.DischargeLimitGW,
					apply: func(gw float64) {
						pumped.Discharge(gw)
						rec.PumpedDischargeGW = gw
					},
				},
				{
					name:  "flex-down",
					limit: func() float64 { return math.Min(p.FlexPowerGW, demand*p.FlexShare) },
					apply: func(gw float64) { rec.FlexDownGW = gw },
				},
				{
					name:  "import",
					limit: func() float64 { return p.InterconnectGW },
					apply: func(gw float64) { rec.ImportGW = gw },
				},
				{
					name:  "gas",
					limit: func() float64 { return gasLimitGW },
					apply: func(gw float64) { rec.GasGW = gw },
				},
			})
			rec.UnservedGW = unserved
			if unserved > deficitThresholdGW {
				res.DeficitHours++
			}
			if unserved > res.MaxDeficitGW {
				res.MaxDeficitGW = unserved
			}
		}

		battery.Decay(batterySelfDischarge)
		rec.BatteryLevelGWh = battery.LevelGWh
		rec.PumpedLevelGWh = pumped.LevelGWh

		res.GasEnergyTWh += rec.GasGW / 1000
		res.EmissionsMtCO2 += rec.GasGW * 1000 * gasEmissionFactor / ccgtEff / 1e6

		price := marginalPrice(p, rec, hydroEnvelopeGW, prevGasGW)
		prevGasGW = rec.GasGW

		res.Hours = append(res.Hours, rec)
		res.Prices = append(res.Prices, price)
		res.WeightedPriceSum += price * demand
		res.DemandSum += demand
	}

	return res, nil
}
