package engine

import (
	"fmt"
	"math"
)

// ToFeetInches formats an inch quantity as "<feet> ft <inches> in".
//
// Feet truncate toward zero and the remaining inches carry the sign of the
// input, so -6 reads "0 ft -6.0 in" and -18 reads "-1 ft -6.0 in". A remainder
// that rounds to a full 12.0 carries into the feet.
func ToFeetInches(totalInches float64) string {
	if IsUndefined(totalInches) {
		return "N/A"
	}
	feet := math.Trunc(totalInches / slopeRun)
	remaining := round1(math.Mod(totalInches, slopeRun))
	if math.Abs(remaining) >= slopeRun {
		feet += math.Copysign(1, remaining)
		remaining = 0
	}
	return fmt.Sprintf("%d ft %.1f in", int64(feet), remaining)
}
