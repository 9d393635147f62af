package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gokulwholesaleinc-web/wholesale-management-system-sub005/internal/modules/customer"
)

const baseRate = 0.0875

func TestExemptionSchedule(t *testing.T) {
	assert.Equal(t, 0.0, ExemptionFraction(1))
	assert.Equal(t, 0.50, ExemptionFraction(2))
	assert.Equal(t, 0.75, ExemptionFraction(3))
	assert.Equal(t, 1.0, ExemptionFraction(4))
	assert.Equal(t, 1.0, ExemptionFraction(5))
}

func TestEffectiveRateWalkInPaysFullRate(t *testing.T) {
	assert.Equal(t, baseRate, EffectiveRate(nil, baseRate))
}

func TestEffectiveRateMonotoneNonIncreasing(t *testing.T) {
	prev := EffectiveRate(&customer.Customer{Tier: 1}, baseRate)
	for tier := 2; tier <= 5; tier++ {
		rate := EffectiveRate(&customer.Customer{Tier: tier}, baseRate)
		assert.LessOrEqual(t, rate, prev, "rate rose from tier %d to %d", tier-1, tier)
		prev = rate
	}
	assert.Equal(t, 0.0, EffectiveRate(&customer.Customer{Tier: 4}, baseRate))
}

func TestEffectiveRateExemptAllIsZeroRegardlessOfTier(t *testing.T) {
	for tier := 1; tier <= 5; tier++ {
		c := &customer.Customer{Tier: tier, TaxExemptions: []string{"all"}}
		assert.Equal(t, 0.0, EffectiveRate(c, baseRate), "tier %d", tier)
	}
}

func TestTaxRoundsToCent(t *testing.T) {
	// $30.00 at 8.75% is $2.625, which rounds to $2.63.
	assert.Equal(t, 2.63, Tax(30.00, nil, baseRate))
}

func TestTaxZeroForFullyExemptTier(t *testing.T) {
	assert.Equal(t, 0.0, Tax(30.00, &customer.Customer{Tier: 4}, baseRate))
}

func TestTaxIdempotentGivenSameInputs(t *testing.T) {
	c := &customer.Customer{Tier: 3}
	first := Tax(123.45, c, baseRate)
	assert.Equal(t, first, Tax(123.45, c, baseRate))
}
