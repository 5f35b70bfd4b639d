// Package scoring computes the overall 1-5 coaching rating from a set of
// per-KPI measurements. It is pure: no I/O, no clock, no randomness.
package scoring

import (
	"errors"
	"math"

	"github.com/elevateplus/coaching-api/internal/domain/entities"
)

// Rating scale constants.
const (
	// OverPerformanceCap limits the credit a single KPI can earn for
	// beating its target, so one blowout metric cannot skew the average.
	OverPerformanceCap = 1.2

	// MinRating and MaxRating bound the final rating scale.
	MinRating = 1.0
	MaxRating = 5.0

	ratingDivisor = 5.0
)

// ErrNoWeightedInput is returned when no input carries a positive weight;
// there is nothing to average and no rating can be produced. Callers must
// treat this as a validation failure, not a fatal error.
var ErrNoWeightedInput = errors.New("no KPI carries a positive weight")

// Input is one KPI measurement: the data type from the catalog definition
// plus the raw score, the target agreed for the period, and the weight
// (0-100) this KPI contributes to the overall rating.
type Input struct {
	KPIType string
	Score   float64
	Target  float64
	Weight  float64
}

// Normalize maps a raw measurement onto the 0-1.2 scale where 1.0 means
// the target was exactly met.
//
// Percentage and Currency scores are measured against their target;
// Rating (1-5) scores against the top of their own scale. Any other type
// (Time included) normalizes to 0 - it contributes nothing, but its
// weight still counts toward the denominator in Rate. That asymmetry is
// how the product currently behaves and is kept deliberately; see the
// regression test before changing it.
func Normalize(in Input) float64 {
	var normalized float64
	switch in.KPIType {
	case entities.KPITypePercentage, entities.KPITypeCurrency:
		if in.Target > 0 {
			normalized = in.Score / in.Target
		}
	case entities.KPITypeRating:
		normalized = in.Score / ratingDivisor
	}
	// No lower clamp: a zero or negative score is allowed to pull the
	// average down.
	return math.Min(normalized, OverPerformanceCap)
}

// Rate aggregates all inputs with a positive weight into a single rating
// on the 1-5 scale, rounded to two decimals.
//
// The weighted average of the normalized scores lands on 0-1.2; it is
// rescaled with avg*4+1 so that missing every target floors at 1.0 and
// exactly meeting every target reaches 5.0. Over-performance beyond the
// cap saturates at 5.0 rather than exceeding it.
func Rate(inputs []Input) (float64, error) {
	var totalWeightedScore, totalWeight float64

	for _, in := range inputs {
		if in.Weight <= 0 {
			continue
		}
		totalWeightedScore += Normalize(in) * in.Weight
		totalWeight += in.Weight
	}

	if totalWeight == 0 {
		return 0, ErrNoWeightedInput
	}

	weightedAverage := totalWeightedScore / totalWeight
	rating := weightedAverage*4 + 1
	rating = math.Max(MinRating, math.Min(MaxRating, rating))

	return math.Round(rating*100) / 100, nil
}
