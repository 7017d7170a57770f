package algorithm

import (
	"math"
	"math/rand/v2"
)

// LengthFunc derives the target length of a single run from the requested
// average length.
type LengthFunc func(average uint, rnd *rand.Rand) uint

// CalculateStringLength returns a length drawn uniformly from the window
// [average-average/4, average+average/4]. The upper bound is capped at
// math.MaxUint. A zero average returns zero without touching rnd.
func CalculateStringLength(average uint, rnd *rand.Rand) uint {
	if average == 0 {
		return 0
	}

	spread := average / 4
	if spread == 0 {
		return average
	}

	upper := min(spread, math.MaxUint-average)
	return average - spread + rnd.UintN(spread+upper+1)
}
