package dto

import "github.com/shopspring/decimal"

// SimulationParams are the inputs shared by simulation, comparison and
// proforma requests. The price comes from the vehicle when VehicleID is set.
// Exactly one of ProfileID or Direct selects the financing terms.
type SimulationParams struct {
	VehicleID         string              `json:"vehicle_id,omitempty"`
	Price             *decimal.Decimal    `json:"price,omitempty"`
	DownPaymentMode   string              `json:"down_payment_mode,omitempty" binding:"omitempty,oneof=PERCENTAGE AMOUNT"`
	DownPaymentPct    decimal.Decimal     `json:"down_payment_pct"`
	DownPaymentAmount decimal.Decimal     `json:"down_payment_amount"`
	TermMonths        int                 `json:"term_months" binding:"required"`
	ProfileID         string              `json:"profile_id,omitempty"`
	Direct            *DirectTermsRequest `json:"direct,omitempty"`
	StartDate         string              `json:"start_date,omitempty"`
}

// DirectTermsRequest rates are percentages: 1.5 means 1.5 %.
type DirectTermsRequest struct {
	MonthlyRatePct     decimal.Decimal `json:"monthly_rate_pct"`
	LegalFee           decimal.Decimal `json:"legal_fee"`
	GPSFee             decimal.Decimal `json:"gps_fee"`
	InsuranceRatePct   decimal.Decimal `json:"insurance_rate_pct"`
	DesgravamenRatePct decimal.Decimal `json:"desgravamen_rate_pct"`
}

// SimulationRequest leaves Method to credit.ParseMethod, which accepts any
// letter case and reports unknown methods on the method field.
type SimulationRequest struct {
	SimulationParams
	Method string `json:"method" binding:"required"`
}

// CompareRequest compares all methods when Methods is empty.
type CompareRequest struct {
	SimulationParams
	Methods []string `json:"methods,omitempty"`
}

type UpdateProformaStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACCEPTED REJECTED"`
}
