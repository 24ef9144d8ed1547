package credit

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is one row of a repayment schedule. Installment is the sum of the
// capital, interest and fee parts; Balance is the balance after payment.
type Period struct {
	Number      int
	DueDate     time.Time
	Installment decimal.Decimal
	Capital     decimal.Decimal
	Interest    decimal.Decimal
	Insurance   decimal.Decimal
	Desgravamen decimal.Decimal
	GPS         decimal.Decimal
	Balance     decimal.Decimal
}

// GenerateSchedule amortizes principal over n monthly periods starting one
// month after start. The last period repays whatever balance remains, so the
// schedule always closes at exactly zero.
func GenerateSchedule(method Method, principal, rate decimal.Decimal, n int, start time.Time, fees RecurringFees) ([]Period, error) {
	strategy, err := StrategyFor(method)
	if err != nil {
		return nil, err
	}

	splits := strategy(principal, rate, n)
	schedule := make([]Period, 0, len(splits))
	balance := principal
	for i, split := range splits {
		opening := balance
		capital := split.Capital
		if i == len(splits)-1 {
			capital = opening
		}
		periodFees := fees.ForPeriod(opening)
		balance = opening.Sub(capital)

		schedule = append(schedule, Period{
			Number:      i + 1,
			DueDate:     AddMonths(start, i+1),
			Installment: capital.Add(split.Interest).Add(periodFees.Total()),
			Capital:     capital,
			Interest:    split.Interest,
			Insurance:   periodFees.Insurance,
			Desgravamen: periodFees.Desgravamen,
			GPS:         periodFees.GPS,
			Balance:     balance,
		})
	}
	return schedule, nil
}

// AddMonths moves t by whole calendar months, clamping the day to the end of
// shorter months (Jan 31 + 1 month is Feb 28 or 29).
func AddMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month+time.Month(months), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
