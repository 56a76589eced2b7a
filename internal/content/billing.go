package content

import "strings"

// BillingPeriod selects how plan prices are displayed.
type BillingPeriod string

const (
	BillingMonthly BillingPeriod = "monthly"
	BillingYearly  BillingPeriod = "yearly"
)

// YearlyDiscountPercent is taken off the monthly price when billed yearly.
const YearlyDiscountPercent = 20

// ParseBillingPeriod maps a query value to a period; anything unrecognised is monthly.
func ParseBillingPeriod(raw string) BillingPeriod {
	if strings.EqualFold(strings.TrimSpace(raw), string(BillingYearly)) {
		return BillingYearly
	}
	return BillingMonthly
}

// Toggle returns the other period.
func (b BillingPeriod) Toggle() BillingPeriod {
	if b == BillingYearly {
		return BillingMonthly
	}
	return BillingYearly
}

// Yearly reports whether b is the yearly period.
func (b BillingPeriod) Yearly() bool {
	return b == BillingYearly
}

// PeriodLabel is the unit shown after the displayed price.
func (b BillingPeriod) PeriodLabel() string {
	if b == BillingYearly {
		return "year"
	}
	return string(PeriodMonth)
}

// DisplayPrice is the price shown for base under period b: base itself for
// monthly billing, floor(base * 0.8) for yearly.
func DisplayPrice(base int, b BillingPeriod) int {
	if b != BillingYearly {
		return base
	}
	discounted := base * (100 - YearlyDiscountPercent)
	if discounted < 0 && discounted%100 != 0 {
		return discounted/100 - 1
	}
	return discounted / 100
}
