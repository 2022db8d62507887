package series

import (
	"math"

	"gridsim/internal/rng"
)

// Representative latitude for the aggregate fleet (40.4°N).
const latitudeDeg = 40.4

// Elevation cutoff below which output is treated as zero. Keeps the air-mass
// division away from the horizon singularity.
const minSinElevation = 0.02

// Empirical gain calibrating peak clear-sky output to a realistic fleet
// capacity factor.
const solarGain = 1.5

// SolarFactor returns the solar capacity factor for a given zero-based day of
// year, hour of day and cloud transmission factor in [0,1]. It is a pure
// function: solar geometry (Cooper declination, hour angle, elevation) plus a
// simplified exponential clear-sky transmittance.
func SolarFactor(day, hour int, cloud float64) float64 {
	declRad := 23.45 * math.Pi / 180 * math.Sin(2*math.Pi*float64(285+day)/365)
	hourAngleRad := 15 * math.Pi / 180 * (float64(hour) - 12)
	latRad := latitudeDeg * math.Pi / 180

	sinEl := math.Sin(latRad)*math.Sin(declRad) +
		math.Cos(latRad)*math.Cos(declRad)*math.Cos(hourAngleRad)
	if sinEl <= minSinElevation {
		return 0
	}

	airMass := 1 / sinEl
	transmittance := math.Pow(0.7, math.Pow(airMass, 0.678))

	factor := sinEl * transmittance * cloud * solarGain
	return clamp(factor, 0, 1)
}

// SolarSeries produces the full-year hourly solar capacity factors. Cloud
// conditions follow a persistent process pulled toward a seasonal clearness
// target (clearer summers), so consecutive hours share weather.
func SolarSeries(src *rng.Source) []float64 {
	out := make([]float64, HoursPerYear)
	cloud := 0.7
	for h := 0; h < HoursPerYear; h++ {
		day := DayOfHour(h)
		month := MonthOfDay(day)
		target := 0.70 + 0.10*math.Cos(2*math.Pi*float64(month-6)/12)
		cloud = 0.82*cloud + 0.18*target + src.Gauss(0, 0.06)
		cloud = clamp(cloud, 0, 1)
		out[h] = SolarFactor(day, HourOfDay(h), cloud)
	}
	return out
}
