package series

import (
	"math"

	"gridsim/internal/rng"
)

// SynopticBlock is a multi-day meteorological regime segment. Blocks tile the
// year contiguously; each carries one intensity for its whole duration, which
// is what gives the wind series its multi-hour persistence.
type SynopticBlock struct {
	Start     int
	Duration  int
	Intensity float64
}

const (
	minBlockHours = 48
	maxBlockHours = 168

	// AR(1) persistence of the wind state. Deliberately strong: it drives
	// realistic multi-hour ramps downstream instead of i.i.d. noise.
	windPersistence = 0.94

	windFloor   = 0.02
	windCeiling = 0.92
)

// SynopticBlocks partitions the year into contiguous blocks of random
// duration (48-168h) and intensity in [0,1). The final block is truncated at
// the year boundary.
func SynopticBlocks(src *rng.Source) []SynopticBlock {
	var blocks []SynopticBlock
	start := 0
	for start < HoursPerYear {
		dur := minBlockHours + int(src.Next()*float64(maxBlockHours-minBlockHours+1))
		if start+dur > HoursPerYear {
			dur = HoursPerYear - start
		}
		blocks = append(blocks, SynopticBlock{
			Start:     start,
			Duration:  dur,
			Intensity: src.Next(),
		})
		start += dur
	}
	return blocks
}

// WindSeries produces the full-year hourly wind capacity factors. The state
// relaxes toward the active block's target (seasonal winter-peaked base
// scaled by block intensity, with a mild afternoon boost) under gaussian
// perturbation.
func WindSeries(src *rng.Source) []float64 {
	blocks := SynopticBlocks(src)
	out := make([]float64, HoursPerYear)

	blockIdx := 0
	state := seasonalWindBase(0)
	for h := 0; h < HoursPerYear; h++ {
		for blockIdx < len(blocks)-1 && h >= blocks[blockIdx].Start+blocks[blockIdx].Duration {
			blockIdx++
		}
		block := blocks[blockIdx]

		month := MonthOfDay(DayOfHour(h))
		seasonal := seasonalWindBase(month)
		diurnal := 1 + 0.06*math.Cos(2*math.Pi*float64(HourOfDay(h)-15)/24)
		target := seasonal * (0.4 + 1.4*block.Intensity) * diurnal

		state = windPersistence*state + (1-windPersistence)*target + src.Gauss(0, 0.06)
		out[h] = clamp(state, windFloor, windCeiling)
	}
	return out
}

// seasonalWindBase is winter-peaked: month 0 is the maximum. The block
// scaling averages 1.1x, putting the annual mean capacity factor near 0.22.
func seasonalWindBase(month int) float64 {
	return 0.20 + 0.08*math.Cos(2*math.Pi*float64(month)/12)
}
