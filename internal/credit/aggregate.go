package credit

import "github.com/shopspring/decimal"

type Totals struct {
	TotalInterest      decimal.Decimal
	TotalInsurance     decimal.Decimal
	TotalDesgravamen   decimal.Decimal
	TotalGPS           decimal.Decimal
	TotalDebt          decimal.Decimal
	FirstInstallment   decimal.Decimal
	LastInstallment    decimal.Decimal
	AverageInstallment decimal.Decimal
}

// TotalFees is the sum of the recurring fees billed over the schedule.
func (t Totals) TotalFees() decimal.Decimal {
	return t.TotalInsurance.Add(t.TotalDesgravamen).Add(t.TotalGPS)
}

// Summarize totals a schedule that amortizes principal. An empty schedule
// yields zero totals.
func Summarize(principal decimal.Decimal, schedule []Period) Totals {
	if len(schedule) == 0 {
		return Totals{}
	}

	var t Totals
	installments := decimal.Zero
	for _, p := range schedule {
		t.TotalInterest = t.TotalInterest.Add(p.Interest)
		t.TotalInsurance = t.TotalInsurance.Add(p.Insurance)
		t.TotalDesgravamen = t.TotalDesgravamen.Add(p.Desgravamen)
		t.TotalGPS = t.TotalGPS.Add(p.GPS)
		installments = installments.Add(p.Installment)
	}
	t.TotalDebt = principal.Add(t.TotalInterest).Add(t.TotalFees())
	t.FirstInstallment = schedule[0].Installment
	t.LastInstallment = schedule[len(schedule)-1].Installment
	t.AverageInstallment = exact(installments.Div(decimal.NewFromInt(int64(len(schedule)))))
	return t
}
