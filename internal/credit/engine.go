// Package credit computes vehicle credit repayment schedules.
//
// Every function is pure: a simulation is recomputed from its Input on each
// call and nothing is retained between calls. Money is carried at 12 decimal
// places and only rounded to cents for display.
package credit

import (
	"time"

	"github.com/shopspring/decimal"
)

type Input struct {
	Price             decimal.Decimal
	DownPayment       DownPaymentInput
	MinDownPaymentPct decimal.Decimal
	TermMonths        int
	Method            Method
	Profile           *FinancingProfile
	Direct            *DirectTerms
	StartDate         time.Time
}

func (in Input) Terms() Terms {
	return Terms{Profile: in.Profile, Direct: in.Direct}
}

// Validate reports the first field that prevents a simulation.
func (in Input) Validate() error {
	if !in.Price.IsPositive() {
		return invalid("price", "must be greater than zero, got %s", in.Price)
	}
	if in.TermMonths <= 0 {
		return invalid("term_months", "must be greater than zero, got %d", in.TermMonths)
	}
	if _, err := StrategyFor(in.Method); err != nil {
		return err
	}
	if in.StartDate.IsZero() {
		return invalid("start_date", "is required")
	}
	return in.Terms().validate()
}

type Output struct {
	Method            Method
	FeeModel          FeeModel
	Price             decimal.Decimal
	DownPaymentPct    decimal.Decimal
	DownPaymentAmount decimal.Decimal
	VehicleBalance    decimal.Decimal
	OneTimeFees       OneTimeFees
	CapitalFinanced   decimal.Decimal
	PeriodicRate      decimal.Decimal
	TermMonths        int
	StartDate         time.Time
	Totals            Totals
	Schedule          []Period
}

func (o *Output) OneTimeFeesTotal() decimal.Decimal {
	return o.OneTimeFees.Total()
}

// Rounded returns a copy with every money value rounded to cents. The
// percentage and the periodic rate keep their precision.
func (o *Output) Rounded() *Output {
	r := *o
	r.Price = Round2(o.Price)
	r.DownPaymentAmount = Round2(o.DownPaymentAmount)
	r.VehicleBalance = Round2(o.VehicleBalance)
	r.OneTimeFees = OneTimeFees{
		Legal:     Round2(o.OneTimeFees.Legal),
		GPS:       Round2(o.OneTimeFees.GPS),
		Insurance: Round2(o.OneTimeFees.Insurance),
	}
	r.CapitalFinanced = Round2(o.CapitalFinanced)
	r.Totals = Totals{
		TotalInterest:      Round2(o.Totals.TotalInterest),
		TotalInsurance:     Round2(o.Totals.TotalInsurance),
		TotalDesgravamen:   Round2(o.Totals.TotalDesgravamen),
		TotalGPS:           Round2(o.Totals.TotalGPS),
		TotalDebt:          Round2(o.Totals.TotalDebt),
		FirstInstallment:   Round2(o.Totals.FirstInstallment),
		LastInstallment:    Round2(o.Totals.LastInstallment),
		AverageInstallment: Round2(o.Totals.AverageInstallment),
	}
	r.Schedule = make([]Period, len(o.Schedule))
	for i, p := range o.Schedule {
		r.Schedule[i] = Period{
			Number:      p.Number,
			DueDate:     p.DueDate,
			Installment: Round2(p.Installment),
			Capital:     Round2(p.Capital),
			Interest:    Round2(p.Interest),
			Insurance:   Round2(p.Insurance),
			Desgravamen: Round2(p.Desgravamen),
			GPS:         Round2(p.GPS),
			Balance:     Round2(p.Balance),
		}
	}
	return &r
}

// Simulate runs the full pipeline: down payment, fees, capital to finance,
// schedule and totals. It returns either a complete Output or an error.
func Simulate(in Input) (*Output, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	dp, err := ResolveDownPayment(in.Price, in.DownPayment, in.MinDownPaymentPct)
	if err != nil {
		return nil, err
	}
	balance := in.Price.Sub(dp.Amount)

	terms := in.Terms()
	fees, err := AssembleFees(terms, in.Price, balance)
	if err != nil {
		return nil, err
	}
	rate, err := terms.PeriodicRate()
	if err != nil {
		return nil, err
	}

	capital := balance.Add(fees.OneTime.Total())
	if in.Method == MethodFlat {
		fees.Recurring = fees.Recurring.OnOriginalBalance(capital)
	}
	schedule, err := GenerateSchedule(in.Method, capital, rate, in.TermMonths, in.StartDate, fees.Recurring)
	if err != nil {
		return nil, err
	}

	return &Output{
		Method:            in.Method,
		FeeModel:          fees.Model,
		Price:             in.Price,
		DownPaymentPct:    dp.Percentage,
		DownPaymentAmount: dp.Amount,
		VehicleBalance:    balance,
		OneTimeFees:       fees.OneTime,
		CapitalFinanced:   capital,
		PeriodicRate:      rate,
		TermMonths:        in.TermMonths,
		StartDate:         in.StartDate,
		Totals:            Summarize(capital, schedule),
		Schedule:          schedule,
	}, nil
}
