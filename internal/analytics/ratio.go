package analytics

import (
	"math"
	"strconv"
)

// Ratio is a non-negative-denominator ratio that is either a finite value or
// explicitly infinite. Infinite means the numerator was positive while the
// denominator was zero, e.g. a profit factor with no losing trades.
type Ratio struct {
	Value    float64 `json:"value"`
	Infinite bool    `json:"infinite"`
}

func FiniteRatio(v float64) Ratio {
	return Ratio{Value: v}
}

func InfiniteRatio() Ratio {
	return Ratio{Infinite: true}
}

// sentinelRatio divides num by den. A zero denominator gives infinity for a
// positive numerator and 0 otherwise.
func sentinelRatio(num, den float64) Ratio {
	switch {
	case den > 0:
		return FiniteRatio(num / den)
	case num > 0:
		return InfiniteRatio()
	default:
		return FiniteRatio(0)
	}
}

// AtLeast reports whether r >= threshold. Infinity is at least anything.
func (r Ratio) AtLeast(threshold float64) bool {
	return r.Infinite || r.Value >= threshold
}

// Float64 returns +Inf for an infinite ratio.
func (r Ratio) Float64() float64 {
	if r.Infinite {
		return math.Inf(1)
	}
	return r.Value
}

func (r Ratio) String() string {
	if r.Infinite {
		return "∞"
	}
	return strconv.FormatFloat(r.Value, 'f', 2, 64)
}
