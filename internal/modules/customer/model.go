package customer

import (
	"time"

	"github.com/google/uuid"
)

// ExemptAll is the sentinel exemption tag that waives sales tax entirely,
// regardless of tier.
const ExemptAll = "all"

// Customer is the read model the register works against. Tier drives both
// tier pricing and the tax-exemption schedule; the credit figures back the
// account-credit payment method.
type Customer struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Tier          int       `json:"tier"`
	TaxExemptions []string  `json:"tax_exemptions,omitempty"`
	CreditLimit   float64   `json:"credit_limit"`
	CreditBalance float64   `json:"credit_balance"`
	CreatedAt     time.Time `json:"created_at"`
}

// AvailableCredit is the headroom left on the customer's credit line.
func (c *Customer) AvailableCredit() float64 {
	avail := c.CreditLimit - c.CreditBalance
	if avail < 0 {
		return 0
	}
	return avail
}

// ExemptFromAll reports whether the customer carries the "all" exemption tag.
func (c *Customer) ExemptFromAll() bool {
	for _, tag := range c.TaxExemptions {
		if tag == ExemptAll {
			return true
		}
	}
	return false
}
