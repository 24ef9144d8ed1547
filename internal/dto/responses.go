package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/anyulbade/dealer-credit-simulator/internal/credit"
	"github.com/anyulbade/dealer-credit-simulator/internal/model"
)

// Money renders as a JSON number with two decimals.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{credit.Round2(d)}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.StringFixed(2)), nil
}

type PeriodResponse struct {
	Number      int    `json:"number"`
	DueDate     string `json:"due_date"`
	Installment Money  `json:"installment"`
	Capital     Money  `json:"capital"`
	Interest    Money  `json:"interest"`
	Insurance   Money  `json:"insurance"`
	Desgravamen Money  `json:"desgravamen"`
	GPS         Money  `json:"gps"`
	Balance     Money  `json:"balance"`
}

type TotalsResponse struct {
	TotalInterest      Money `json:"total_interest"`
	TotalInsurance     Money `json:"total_insurance"`
	TotalDesgravamen   Money `json:"total_desgravamen"`
	TotalGPS           Money `json:"total_gps"`
	TotalDebt          Money `json:"total_debt"`
	FirstInstallment   Money `json:"first_installment"`
	LastInstallment    Money `json:"last_installment"`
	AverageInstallment Money `json:"average_installment"`
}

type OneTimeFeesResponse struct {
	Legal     Money `json:"legal"`
	GPS       Money `json:"gps"`
	Insurance Money `json:"insurance"`
	Total     Money `json:"total"`
}

type SimulationResponse struct {
	Method            string              `json:"method"`
	FeeModel          string              `json:"fee_model"`
	VehicleID         string              `json:"vehicle_id,omitempty"`
	Price             Money               `json:"price"`
	DownPaymentPct    decimal.Decimal     `json:"down_payment_pct"`
	DownPaymentAmount Money               `json:"down_payment_amount"`
	VehicleBalance    Money               `json:"vehicle_balance"`
	OneTimeFees       OneTimeFeesResponse `json:"one_time_fees"`
	CapitalFinanced   Money               `json:"capital_financed"`
	PeriodicRate      decimal.Decimal     `json:"periodic_rate"`
	TermMonths        int                 `json:"term_months"`
	StartDate         string              `json:"start_date"`
	Totals            TotalsResponse      `json:"totals"`
	Schedule          []PeriodResponse    `json:"schedule,omitempty"`
}

// NewSimulationResponse renders out for display. The schedule is left out
// unless withSchedule is set.
func NewSimulationResponse(out *credit.Output, withSchedule bool) SimulationResponse {
	r := out.Rounded()
	resp := SimulationResponse{
		Method:            string(r.Method),
		FeeModel:          string(r.FeeModel),
		Price:             NewMoney(r.Price),
		DownPaymentPct:    r.DownPaymentPct.Round(4),
		DownPaymentAmount: NewMoney(r.DownPaymentAmount),
		VehicleBalance:    NewMoney(r.VehicleBalance),
		OneTimeFees: OneTimeFeesResponse{
			Legal:     NewMoney(r.OneTimeFees.Legal),
			GPS:       NewMoney(r.OneTimeFees.GPS),
			Insurance: NewMoney(r.OneTimeFees.Insurance),
			Total:     NewMoney(r.OneTimeFeesTotal()),
		},
		CapitalFinanced: NewMoney(r.CapitalFinanced),
		PeriodicRate:    r.PeriodicRate,
		TermMonths:      r.TermMonths,
		StartDate:       r.StartDate.Format(time.DateOnly),
		Totals:          newTotalsResponse(r.Totals),
	}
	if withSchedule {
		resp.Schedule = make([]PeriodResponse, len(r.Schedule))
		for i, p := range r.Schedule {
			resp.Schedule[i] = PeriodResponse{
				Number:      p.Number,
				DueDate:     p.DueDate.Format(time.DateOnly),
				Installment: NewMoney(p.Installment),
				Capital:     NewMoney(p.Capital),
				Interest:    NewMoney(p.Interest),
				Insurance:   NewMoney(p.Insurance),
				Desgravamen: NewMoney(p.Desgravamen),
				GPS:         NewMoney(p.GPS),
				Balance:     NewMoney(p.Balance),
			}
		}
	}
	return resp
}

func newTotalsResponse(t credit.Totals) TotalsResponse {
	return TotalsResponse{
		TotalInterest:      NewMoney(t.TotalInterest),
		TotalInsurance:     NewMoney(t.TotalInsurance),
		TotalDesgravamen:   NewMoney(t.TotalDesgravamen),
		TotalGPS:           NewMoney(t.TotalGPS),
		TotalDebt:          NewMoney(t.TotalDebt),
		FirstInstallment:   NewMoney(t.FirstInstallment),
		LastInstallment:    NewMoney(t.LastInstallment),
		AverageInstallment: NewMoney(t.AverageInstallment),
	}
}

type ComparisonResponse struct {
	Cheapest string               `json:"cheapest"`
	Savings  Money                `json:"savings"`
	Results  []SimulationResponse `json:"results"`
}

func NewComparisonResponse(cmp *credit.Comparison) ComparisonResponse {
	resp := ComparisonResponse{
		Cheapest: string(cmp.Cheapest),
		Savings:  NewMoney(cmp.Savings),
		Results:  make([]SimulationResponse, len(cmp.Results)),
	}
	for i, out := range cmp.Results {
		resp.Results[i] = NewSimulationResponse(out, false)
	}
	return resp
}

type VehicleListResponse struct {
	Data       []model.Vehicle `json:"data"`
	Pagination Pagination      `json:"pagination"`
}

type ProfileListResponse struct {
	Data []model.FinancingProfile `json:"data"`
}

type ProformaResponse struct {
	ID                uuid.UUID       `json:"id"`
	CreatedBy         uuid.UUID       `json:"created_by"`
	Status            string          `json:"status"`
	VehicleID         *string         `json:"vehicle_id,omitempty"`
	ProfileID         *string         `json:"profile_id,omitempty"`
	FeeModel          string          `json:"fee_model"`
	Method            string          `json:"method"`
	Price             Money           `json:"price"`
	DownPaymentPct    decimal.Decimal `json:"down_payment_pct"`
	DownPaymentAmount Money           `json:"down_payment_amount"`
	TermMonths        int             `json:"term_months"`
	PeriodicRate      decimal.Decimal `json:"periodic_rate"`
	StartDate         string          `json:"start_date"`
	CapitalFinanced   Money           `json:"capital_financed"`
	TotalInterest     Money           `json:"total_interest"`
	TotalInsurance    Money           `json:"total_insurance"`
	TotalDesgravamen  Money           `json:"total_desgravamen"`
	TotalGPS          Money           `json:"total_gps"`
	TotalDebt         Money           `json:"total_debt"`
	FirstInstallment  Money           `json:"first_installment"`
	ExpiresAt         time.Time       `json:"expires_at"`
	CreatedAt         time.Time       `json:"created_at"`
}

func NewProformaResponse(p *model.Proforma) ProformaResponse {
	return ProformaResponse{
		ID:                p.ID,
		CreatedBy:         p.CreatedBy,
		Status:            p.Status,
		VehicleID:         p.VehicleID,
		ProfileID:         p.ProfileID,
		FeeModel:          p.FeeModel,
		Method:            p.Method,
		Price:             NewMoney(p.Price),
		DownPaymentPct:    p.DownPaymentPct,
		DownPaymentAmount: NewMoney(p.DownPaymentAmount),
		TermMonths:        p.TermMonths,
		PeriodicRate:      p.PeriodicRate,
		StartDate:         p.StartDate.Format(time.DateOnly),
		CapitalFinanced:   NewMoney(p.CapitalFinanced),
		TotalInterest:     NewMoney(p.TotalInterest),
		TotalInsurance:    NewMoney(p.TotalInsurance),
		TotalDesgravamen:  NewMoney(p.TotalDesgravamen),
		TotalGPS:          NewMoney(p.TotalGPS),
		TotalDebt:         NewMoney(p.TotalDebt),
		FirstInstallment:  NewMoney(p.FirstInstallment),
		ExpiresAt:         p.ExpiresAt,
		CreatedAt:         p.CreatedAt,
	}
}

type ProformaListResponse struct {
	Data       []ProformaResponse `json:"data"`
	Pagination Pagination         `json:"pagination"`
}

type ValidationError struct {
	Index   int    `json:"index,omitempty"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorListResponse struct {
	Error  string            `json:"error"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}
