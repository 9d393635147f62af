package pos

import (
	"fmt"
	"strings"
)

const receiptWidth = 40

// FormatReceipt renders a committed transaction as plain text suitable for
// a 40-column register printer.
func FormatReceipt(t *Transaction) string {
	var b strings.Builder

	center := func(s string) {
		if pad := (receiptWidth - len(s)) / 2; pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(s)
		b.WriteByte('\n')
	}
	amount := func(label string, v float64) {
		val := fmt.Sprintf("$%.2f", v)
		b.WriteString(label)
		if pad := receiptWidth - len(label) - len(val); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(val)
		b.WriteByte('\n')
	}
	rule := func() { b.WriteString(strings.Repeat("-", receiptWidth)); b.WriteByte('\n') }

	center("GOKUL WHOLESALE")
	center(fmt.Sprintf("Sale #%d", t.Sequence))
	center(t.CreatedAt.Format("01/02/2006 3:04 PM"))
	rule()

	for _, l := range t.Lines {
		b.WriteString(l.Name)
		b.WriteByte('\n')
		detail := fmt.Sprintf("  %d @ $%.2f", l.Quantity, l.UnitPrice)
		if l.PriceOverridden {
			detail += "*"
		}
		amount(detail, l.LineTotal)
	}

	rule()
	amount("Subtotal", t.Subtotal)
	amount("Tax", t.Tax)
	amount("TOTAL", t.Total)
	rule()

	switch t.PaymentMethod {
	case PaymentCash:
		if t.CashReceived != nil {
			amount("Cash", *t.CashReceived)
			amount("Change", t.ChangeDue)
		} else {
			amount("Cash", t.Total)
		}
	case PaymentCheck:
		b.WriteString(fmt.Sprintf("Check #%s\n", t.CheckNumber))
	case PaymentAccountCredit:
		b.WriteString("Charged to account\n")
	}

	center("Thank you!")
	return b.String()
}
