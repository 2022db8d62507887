// Package results turns the completed hourly arrays into annual and monthly
// KPIs.
package results

import (
	"fmt"
	"math"
	"sort"

	"gridsim/internal/engine"
	"gridsim/internal/series"
)

// Results is the derived KPI set for one run. Read-only for consumers.
type Results struct {
	AvgPriceEURMWh         float64 `json:"avg_price_eur_mwh"`
	WeightedAvgPriceEURMWh float64 `json:"weighted_avg_price_eur_mwh"`
	PriceP10               float64 `json:"price_p10"`
	PriceP50               float64 `json:"price_p50"`
	PriceP90               float64 `json:"price_p90"`
	PriceMin               float64 `json:"price_min"`
	PriceMax               float64 `json:"price_max"`

	DemandTWh          float64 `json:"demand_twh"`
	TotalGenerationTWh float64 `json:"total_generation_twh"`
	RenewableSharePct  float64 `json:"renewable_share_pct"`
	GasSharePct        float64 `json:"gas_share_pct"`
	CurtailmentPct     float64 `json:"curtailment_pct"`
	CurtailedTWh       float64 `json:"curtailed_twh"`

	GasEnergyTWh   float64 `json:"gas_energy_twh"`
	EmissionsMtCO2 float64 `json:"emissions_mt_co2"`

	DeficitHours int     `json:"deficit_hours"`
	MaxDeficitGW float64 `json:"max_deficit_gw"`

	Monthly [12]MonthlySummary `json:"monthly"`
}

// MonthlySummary is one 30.5-day bucket of the year, in TWh.
type MonthlySummary struct {
	DemandTWh    float64 `json:"demand_twh"`
	NuclearTWh   float64 `json:"nuclear_twh"`
	SolarTWh     float64 `json:"solar_twh"`
	WindTWh      float64 `json:"wind_twh"`
	HydroTWh     float64 `json:"hydro_twh"`
	GasTWh       float64 `json:"gas_twh"`
	CurtailedTWh float64 `json:"curtailed_twh"`
	AvgPrice     float64 `json:"avg_price_eur_mwh"`
}

// Aggregate computes the KPI set from a completed run. The hourly arrays
// must match the fixed year length; anything else is a programming error,
// not a recoverable condition.
func Aggregate(run *engine.Result) Results {
	if len(run.Hours) != series.HoursPerYear || len(run.Prices) != series.HoursPerYear {
		panic(fmt.Sprintf("hourly arrays must have %d entries, got %d/%d",
			series.HoursPerYear, len(run.Hours), len(run.Prices)))
	}

	out := Results{
		GasEnergyTWh:   run.GasEnergyTWh,
		EmissionsMtCO2: run.EmissionsMtCO2,
		DeficitHours:   run.DeficitHours,
		MaxDeficitGW:   run.MaxDeficitGW,
	}

	var priceSum float64
	var renewableGWh, totalGWh, solarWindGWh, curtailedGWh, demandGWh float64
	var monthlyPriceSum [12]float64
	var monthlyHours [12]int

	for i, rec := range run.Hours {
		price := run.Prices[i]
		priceSum += price

		renewable := rec.SolarGW + rec.WindGW + rec.HydroGW
		total := renewable + rec.NuclearGW + rec.GasGW
		renewableGWh += renewable
		totalGWh += total
		solarWindGWh += rec.SolarGW + rec.WindGW
		curtailedGWh += rec.CurtailmentGW
		demandGWh += rec.DemandGW

		m := series.MonthOfDay(series.DayOfHour(rec.Hour))
		out.Monthly[m].DemandTWh += rec.DemandGW / 1000
		out.Monthly[m].NuclearTWh += rec.NuclearGW / 1000
		out.Monthly[m].SolarTWh += rec.SolarGW / 1000
		out.Monthly[m].WindTWh += rec.WindGW / 1000
		out.Monthly[m].HydroTWh += rec.HydroGW / 1000
		out.Monthly[m].GasTWh += rec.GasGW / 1000
		out.Monthly[m].CurtailedTWh += rec.CurtailmentGW / 1000
		monthlyPriceSum[m] += price
		monthlyHours[m]++
	}

	for m := range out.Monthly {
		if monthlyHours[m] > 0 {
			out.Monthly[m].AvgPrice = monthlyPriceSum[m] / float64(monthlyHours[m])
		}
	}

	n := float64(series.HoursPerYear)
	out.AvgPriceEURMWh = priceSum / n
	if run.DemandSum > 0 {
		out.WeightedAvgPriceEURMWh = run.WeightedPriceSum / run.DemandSum
	}

	sorted := append([]float64(nil), run.Prices...)
	sort.Float64s(sorted)
	out.PriceMin = sorted[0]
	out.PriceMax = sorted[len(sorted)-1]
	out.PriceP10 = percentileSorted(sorted, 0.10)
	out.PriceP50 = percentileSorted(sorted, 0.50)
	out.PriceP90 = percentileSorted(sorted, 0.90)

	out.DemandTWh = demandGWh / 1000
	out.TotalGenerationTWh = totalGWh / 1000
	out.CurtailedTWh = curtailedGWh / 1000
	if totalGWh > 0 {
		out.RenewableSharePct = renewableGWh / totalGWh * 100
		out.GasSharePct = run.GasEnergyTWh * 1000 / totalGWh * 100
	}
	if solarWindGWh > 0 {
		out.CurtailmentPct = curtailedGWh / solarWindGWh * 100
	}

	return out
}

// percentileSorted returns the linearly interpolated order statistic for
// quantile q over an ascending slice.
func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := lo + 1
	if hi >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
