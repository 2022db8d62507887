package series

import "math"

const (
	hydroFloor   = 0.08
	hydroCeiling = 0.85
)

// HydroAvailability returns the dispatchable capacity factor envelope for
// hydro in a given month, scaled by the hydraulicity multiplier (wet/dry
// year). The seasonal cosine peaks in spring (snowmelt); unlike solar and
// wind the result bounds dispatch rather than fixing it.
func HydroAvailability(month int, hydraulicity float64) float64 {
	seasonal := 0.22 + 0.10*math.Cos(2*math.Pi*float64(month-3)/12)
	return clamp(seasonal*hydraulicity, hydroFloor, hydroCeiling)
}
