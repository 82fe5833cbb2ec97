package model

import "math"

// DefaultFraction is used when a CountPolicy has no fraction set.
const DefaultFraction = 0.3

const fractionTolerance = 1e-9

// CountPolicy turns a population size into a target mutation count.
type CountPolicy struct {
	Min      *int
	Max      *int
	Fraction *float64
}

// NewCountPolicy builds a policy from optional knobs.
func NewCountPolicy(minCount, maxCount *int, fraction *float64) CountPolicy {
	return CountPolicy{Min: minCount, Max: maxCount, Fraction: fraction}
}

// Calculate returns the number of elements to mutate out of size.
//
// The floor is checked before the ceiling, so a floor above the ceiling wins.
// A negative or NaN fraction contributes zero; an explicit floor still applies.
func (p CountPolicy) Calculate(size int) int {
	if size <= 0 {
		return 0
	}

	fraction := DefaultFraction
	if p.Fraction != nil {
		fraction = *p.Fraction
	}

	count := 0
	if fraction > 0 {
		count = ceilCount(fraction * float64(size))
	}

	if p.Min != nil && *p.Min > count {
		return *p.Min
	}

	if p.Max != nil && *p.Max < count {
		return *p.Max
	}

	return count
}

// ceilCount rounds a positive product up, saturating at math.MaxInt.
// A product within a relative tolerance of a whole number is that number, so
// 0.7*10 (7.000000000000001 in float64) gives 7 while 1e-10 still gives 1.
func ceilCount(product float64) int {
	if nearest := math.Round(product); nearest > 0 && math.Abs(product-nearest) <= fractionTolerance*nearest {
		product = nearest
	}

	if product >= float64(math.MaxInt) {
		return math.MaxInt
	}

	return int(math.Ceil(product))
}

// Int returns a pointer to v, for building policies inline.
func Int(v int) *int {
	return &v
}

// Float returns a pointer to v, for building policies inline.
func Float(v float64) *float64 {
	return &v
}
