package series

import (
	"math"

	"gridsim/internal/rng"
)

// Monthly base temperatures (°C) for the representative latitude.
var monthlyBaseTemp = [12]float64{8.0, 9.2, 11.8, 14.1, 17.6, 22.4, 25.8, 25.6, 22.3, 16.9, 11.7, 8.7}

const (
	heatingThresholdC = 15.0
	coolingThresholdC = 25.0
	heatingSlope      = 0.028
	coolingSlope      = 0.045
)

// DemandShape produces the full-year normalized demand shape: temperature
// sensitivity (U-shaped around the comfort band), a bimodal intraday profile
// with morning and evening peaks, a weekday/weekend multiplier and a small
// residual noise term. The series is normalized to mean 1 so the caller can
// scale it by the mean demand level directly.
func DemandShape(src *rng.Source) []float64 {
	out := make([]float64, HoursPerYear)
	sum := 0.0
	for h := 0; h < HoursPerYear; h++ {
		day := DayOfHour(h)
		hour := HourOfDay(h)
		month := MonthOfDay(day)

		temp := monthlyBaseTemp[month] +
			4.0*math.Cos(2*math.Pi*float64(hour-15)/24) +
			src.Gauss(0, 1.2)

		sensitivity := 1.0
		if temp < heatingThresholdC {
			sensitivity += heatingSlope * (heatingThresholdC - temp)
		} else if temp > coolingThresholdC {
			sensitivity += coolingSlope * (temp - coolingThresholdC)
		}

		intraday := intradayShape(hour)
		weekday := 1.0
		if isWeekend(day) {
			weekday = 0.93
		}
		residual := 1 + 0.02*(src.Next()-0.5)

		v := sensitivity * intraday * weekday * residual
		out[h] = v
		sum += v
	}

	mean := sum / float64(HoursPerYear)
	for h := range out {
		out[h] /= mean
	}
	return out
}

// intradayShape is bimodal: gaussian peaks near 10h and 20h over a nocturnal
// floor.
func intradayShape(hour int) float64 {
	fh := float64(hour)
	morning := 0.30 * math.Exp(-(fh-10)*(fh-10)/14)
	evening := 0.26 * math.Exp(-(fh-20.5)*(fh-20.5)/9)
	return 0.78 + morning + evening
}

// The modeled year starts on a Monday; days 5 and 6 of each week are the
// weekend.
func isWeekend(day int) bool {
	return day%7 >= 5
}
