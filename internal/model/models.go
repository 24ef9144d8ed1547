package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Vehicle struct {
	ID        string          `json:"id"`
	Brand     string          `json:"brand"`
	Model     string          `json:"model"`
	Year      int             `json:"year"`
	Price     decimal.Decimal `json:"price"`
	Available bool            `json:"available"`
	CreatedAt time.Time       `json:"created_at"`
}

// FinancingProfile is a financing_profiles row. Rates are annual fractions.
type FinancingProfile struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	AnnualRate      decimal.Decimal `json:"annual_rate"`
	LegalFee        decimal.Decimal `json:"legal_fee"`
	InsuranceRate   decimal.Decimal `json:"insurance_rate"`
	DesgravamenRate decimal.Decimal `json:"desgravamen_rate"`
	GPSFee          decimal.Decimal `json:"gps_fee"`
	GPSBilling      string          `json:"gps_billing"`
}

const (
	ProformaDraft    = "DRAFT"
	ProformaExpired  = "EXPIRED"
	ProformaAccepted = "ACCEPTED"
	ProformaRejected = "REJECTED"
)

// Proforma is a saved simulation: the inputs and headline totals, never the
// schedule itself.
type Proforma struct {
	ID                uuid.UUID       `json:"id"`
	CreatedBy         uuid.UUID       `json:"created_by"`
	Status            string          `json:"status"`
	VehicleID         *string         `json:"vehicle_id,omitempty"`
	ProfileID         *string         `json:"profile_id,omitempty"`
	FeeModel          string          `json:"fee_model"`
	Method            string          `json:"method"`
	Price             decimal.Decimal `json:"price"`
	DownPaymentPct    decimal.Decimal `json:"down_payment_pct"`
	DownPaymentAmount decimal.Decimal `json:"down_payment_amount"`
	TermMonths        int             `json:"term_months"`
	PeriodicRate      decimal.Decimal `json:"periodic_rate"`
	StartDate         time.Time       `json:"start_date"`
	CapitalFinanced   decimal.Decimal `json:"capital_financed"`
	TotalInterest     decimal.Decimal `json:"total_interest"`
	TotalInsurance    decimal.Decimal `json:"total_insurance"`
	TotalDesgravamen  decimal.Decimal `json:"total_desgravamen"`
	TotalGPS          decimal.Decimal `json:"total_gps"`
	TotalDebt         decimal.Decimal `json:"total_debt"`
	FirstInstallment  decimal.Decimal `json:"first_installment"`
	ExpiresAt         time.Time       `json:"expires_at"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
