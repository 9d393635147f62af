package pricing

import (
	"math"

	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/modules/customer"
)

// The tier exemption schedule is fixed: it is applied identically on every
// recomputation and is not configurable per call.
var exemptionSchedule = map[int]float64{
	1: 0,
	2: 0.50,
	3: 0.75,
	4: 1.00,
	5: 1.00,
}

// ExemptionFraction returns the fraction of the base tax rate waived for a
// customer tier. Tiers outside 1..5 are treated as tier 1.
func ExemptionFraction(tier int) float64 {
	f, ok := exemptionSchedule[tier]
	if !ok {
		return 0
	}
	return f
}

// EffectiveRate computes the tax rate for a customer. Walk-ins pay the
// full base rate; the "all" exemption tag zeroes the rate regardless of
// tier; otherwise the tier schedule scales the base rate down.
func EffectiveRate(c *customer.Customer, baseRate float64) float64 {
	if c == nil {
		return baseRate
	}
	if c.ExemptFromAll() {
		return 0
	}
	return baseRate * (1 - ExemptionFraction(c.Tier))
}

// Tax computes the tax on a subtotal, rounded to the cent. Callers must
// recompute the whole amount on every cart change rather than patch it
// incrementally.
func Tax(subtotal float64, c *customer.Customer, baseRate float64) float64 {
	return RoundCents(subtotal * EffectiveRate(c, baseRate))
}

// RoundCents rounds a dollar amount to two decimal places.
func RoundCents(x float64) float64 {
	return math.Round(x*100) / 100
}
