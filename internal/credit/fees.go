package credit

import "github.com/shopspring/decimal"

// FeeModel names the rule set used to charge insurance, desgravamen, legal
// and GPS fees. The two models disagree on purpose and are kept apart.
type FeeModel string

const (
	// FeeModelProfile bills insurance and desgravamen monthly on the declining
	// balance, capitalizes the legal fee and bills GPS per the profile.
	FeeModelProfile FeeModel = "PROFILE"
	// FeeModelDirect capitalizes a one-year insurance premium on the full
	// price plus explicit legal and GPS amounts, and bills desgravamen monthly
	// on the original vehicle balance.
	FeeModelDirect FeeModel = "DIRECT"
)

type GPSBilling string

const (
	GPSBillingMonthly     GPSBilling = "MONTHLY"
	GPSBillingCapitalized GPSBilling = "CAPITALIZED"
)

type FeeBasis int

const (
	FeeBasisDecliningBalance FeeBasis = iota
	FeeBasisOriginalBalance
)

// FinancingProfile is a partner's immutable rate and fee set. Rates are
// annual fractions.
type FinancingProfile struct {
	ID              string
	Name            string
	AnnualRate      decimal.Decimal
	LegalFee        decimal.Decimal
	InsuranceRate   decimal.Decimal
	DesgravamenRate decimal.Decimal
	GPSFee          decimal.Decimal
	GPSBilling      GPSBilling
}

// DirectTerms are the explicit terms of direct dealership financing.
// MonthlyRate is already periodic; InsuranceRate and DesgravamenRate are
// annual fractions.
type DirectTerms struct {
	MonthlyRate     decimal.Decimal
	LegalFee        decimal.Decimal
	GPSFee          decimal.Decimal
	InsuranceRate   decimal.Decimal
	DesgravamenRate decimal.Decimal
}

// Terms carries exactly one of a profile or direct terms.
type Terms struct {
	Profile *FinancingProfile
	Direct  *DirectTerms
}

func (t Terms) Model() (FeeModel, error) {
	switch {
	case t.Profile != nil && t.Direct != nil:
		return "", misconfigured("terms", "profile and direct terms are mutually exclusive")
	case t.Profile != nil:
		return FeeModelProfile, nil
	case t.Direct != nil:
		return FeeModelDirect, nil
	}
	return "", misconfigured("terms", "a financing profile or direct terms are required")
}

// PeriodicRate is the monthly interest rate implied by the terms.
func (t Terms) PeriodicRate() (decimal.Decimal, error) {
	model, err := t.Model()
	if err != nil {
		return decimal.Zero, err
	}
	if model == FeeModelProfile {
		return ToMonthlyRate(t.Profile.AnnualRate, RateBasisAnnualNominal), nil
	}
	return ToMonthlyRate(t.Direct.MonthlyRate, RateBasisPeriodic), nil
}

func (t Terms) validate() error {
	model, err := t.Model()
	if err != nil {
		return err
	}

	var checks []namedValue
	if model == FeeModelProfile {
		p := t.Profile
		switch p.GPSBilling {
		case GPSBillingMonthly, GPSBillingCapitalized:
		default:
			return misconfigured("gps_billing", "unknown billing %q for profile %s", p.GPSBilling, p.ID)
		}
		checks = []namedValue{
			{"annual_rate", p.AnnualRate},
			{"legal_fee", p.LegalFee},
			{"insurance_rate", p.InsuranceRate},
			{"desgravamen_rate", p.DesgravamenRate},
			{"gps_fee", p.GPSFee},
		}
	} else {
		d := t.Direct
		checks = []namedValue{
			{"monthly_rate", d.MonthlyRate},
			{"legal_fee", d.LegalFee},
			{"insurance_rate", d.InsuranceRate},
			{"desgravamen_rate", d.DesgravamenRate},
			{"gps_fee", d.GPSFee},
		}
	}
	for _, c := range checks {
		if c.value.IsNegative() {
			return invalid(c.field, "must not be negative, got %s", c.value)
		}
	}
	return nil
}

type namedValue struct {
	field string
	value decimal.Decimal
}

// OneTimeFees are added to the financed capital.
type OneTimeFees struct {
	Legal     decimal.Decimal
	GPS       decimal.Decimal
	Insurance decimal.Decimal
}

func (f OneTimeFees) Total() decimal.Decimal {
	return f.Legal.Add(f.GPS).Add(f.Insurance)
}

// PeriodFees are billed on top of one installment.
type PeriodFees struct {
	Insurance   decimal.Decimal
	Desgravamen decimal.Decimal
	GPS         decimal.Decimal
}

func (f PeriodFees) Total() decimal.Decimal {
	return f.Insurance.Add(f.Desgravamen).Add(f.GPS)
}

// RecurringFees computes the fees of each period. Rates are annual.
type RecurringFees struct {
	Basis           FeeBasis
	InsuranceRate   decimal.Decimal
	DesgravamenRate decimal.Decimal
	GPSMonthly      decimal.Decimal
	// OriginalBase is used instead of the opening balance with FeeBasisOriginalBalance.
	OriginalBase decimal.Decimal
}

// OnOriginalBalance bills every period on base instead of the declining
// balance. Flat schedules charge interest on the original principal, and
// their fees follow the same base.
func (r RecurringFees) OnOriginalBalance(base decimal.Decimal) RecurringFees {
	if r.Basis == FeeBasisOriginalBalance {
		return r
	}
	r.Basis = FeeBasisOriginalBalance
	r.OriginalBase = base
	return r
}

func (r RecurringFees) ForPeriod(openingBalance decimal.Decimal) PeriodFees {
	base := openingBalance
	if r.Basis == FeeBasisOriginalBalance {
		base = r.OriginalBase
	}
	return PeriodFees{
		Insurance:   ProrateAnnual(base, r.InsuranceRate),
		Desgravamen: ProrateAnnual(base, r.DesgravamenRate),
		GPS:         r.GPSMonthly,
	}
}

type FeeSchedule struct {
	Model     FeeModel
	OneTime   OneTimeFees
	Recurring RecurringFees
}

// AssembleFees splits the fees of terms into capitalized one-time amounts and
// per-period charges. balance is the vehicle price minus the down payment.
func AssembleFees(terms Terms, price, balance decimal.Decimal) (FeeSchedule, error) {
	if err := terms.validate(); err != nil {
		return FeeSchedule{}, err
	}

	if terms.Profile != nil {
		p := terms.Profile
		fees := FeeSchedule{
			Model:   FeeModelProfile,
			OneTime: OneTimeFees{Legal: p.LegalFee},
			Recurring: RecurringFees{
				Basis:           FeeBasisDecliningBalance,
				InsuranceRate:   p.InsuranceRate,
				DesgravamenRate: p.DesgravamenRate,
			},
		}
		if p.GPSBilling == GPSBillingCapitalized {
			fees.OneTime.GPS = p.GPSFee
		} else {
			fees.Recurring.GPSMonthly = p.GPSFee
		}
		return fees, nil
	}

	d := terms.Direct
	return FeeSchedule{
		Model: FeeModelDirect,
		OneTime: OneTimeFees{
			Legal:     d.LegalFee,
			GPS:       d.GPSFee,
			Insurance: exact(price.Mul(d.InsuranceRate)),
		},
		Recurring: RecurringFees{
			Basis:           FeeBasisOriginalBalance,
			DesgravamenRate: d.DesgravamenRate,
			OriginalBase:    balance,
		},
	}, nil
}
