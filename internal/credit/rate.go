package credit

import "github.com/shopspring/decimal"

const (
	// internalPlaces is the scale every intermediate money figure is kept at.
	internalPlaces int32 = 12
	displayPlaces  int32 = 2
)

var (
	one           = decimal.NewFromInt(1)
	hundred       = decimal.NewFromInt(100)
	monthsPerYear = decimal.NewFromInt(12)
	minorUnit     = decimal.New(1, -displayPlaces)
)

type RateBasis int

const (
	// RateBasisPeriodic rates already apply per month.
	RateBasisPeriodic RateBasis = iota
	// RateBasisAnnualNominal rates are divided by 12, never compounded.
	RateBasisAnnualNominal
)

// ToMonthlyRate converts a rate expressed on the given basis to a monthly rate.
func ToMonthlyRate(rate decimal.Decimal, basis RateBasis) decimal.Decimal {
	if basis == RateBasisAnnualNominal {
		return exact(rate.Div(monthsPerYear))
	}
	return rate
}

// ProrateAnnual returns one month's share of an annual rate applied to base.
func ProrateAnnual(base, annualRate decimal.Decimal) decimal.Decimal {
	return exact(base.Mul(annualRate).Div(monthsPerYear))
}

// Round2 rounds a money value for display.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(displayPlaces)
}

func exact(d decimal.Decimal) decimal.Decimal {
	return d.Round(internalPlaces)
}
