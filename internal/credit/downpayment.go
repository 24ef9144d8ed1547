package credit

import "github.com/shopspring/decimal"

type DownPaymentMode string

const (
	DownPaymentUnset        DownPaymentMode = ""
	DownPaymentByPercentage DownPaymentMode = "PERCENTAGE"
	DownPaymentByAmount     DownPaymentMode = "AMOUNT"
)

func (m DownPaymentMode) valid() bool {
	switch m {
	case DownPaymentUnset, DownPaymentByPercentage, DownPaymentByAmount:
		return true
	}
	return false
}

// DownPaymentInput is the caller's down payment choice. With Mode unset,
// whichever of Percentage or Amount is non-zero drives. Whatever the mode,
// when both are set they must describe the same down payment.
type DownPaymentInput struct {
	Mode       DownPaymentMode
	Percentage decimal.Decimal
	Amount     decimal.Decimal
}

// DownPayment holds the percentage and amount views of a down payment for the
// current vehicle price. The field selected by the mode is the source of
// truth and the other one is derived from it. Both are kept at internal
// precision; rounding to cents is left to presentation.
type DownPayment struct {
	mode       DownPaymentMode
	price      decimal.Decimal
	minPct     decimal.Decimal
	percentage decimal.Decimal
	amount     decimal.Decimal
}

// NewDownPayment starts in percentage mode at the policy minimum.
func NewDownPayment(price, minPct decimal.Decimal) (*DownPayment, error) {
	if price.IsNegative() {
		return nil, invalid("price", "must not be negative")
	}
	if minPct.IsNegative() || minPct.GreaterThan(hundred) {
		return nil, invalid("min_down_payment_pct", "must be between 0 and 100")
	}
	d := &DownPayment{
		mode:       DownPaymentByPercentage,
		price:      price,
		minPct:     minPct,
		percentage: minPct,
	}
	d.amount = d.amountFor(minPct)
	return d, nil
}

func (d *DownPayment) Mode() DownPaymentMode { return d.mode }

func (d *DownPayment) Price() decimal.Decimal { return d.price }

func (d *DownPayment) MinPercentage() decimal.Decimal { return d.minPct }

func (d *DownPayment) Percentage() decimal.Decimal { return d.percentage }

func (d *DownPayment) Amount() decimal.Decimal { return d.amount }

// SetMode changes which field drives without touching either value.
func (d *DownPayment) SetMode(mode DownPaymentMode) error {
	if mode != DownPaymentByPercentage && mode != DownPaymentByAmount {
		return invalid("down_payment_mode", "must be %s or %s", DownPaymentByPercentage, DownPaymentByAmount)
	}
	d.mode = mode
	return nil
}

// SetByPercentage raises pct to the policy minimum when needed and derives
// the amount from the current price.
func (d *DownPayment) SetByPercentage(pct decimal.Decimal) error {
	if pct.IsNegative() || pct.GreaterThan(hundred) {
		return invalid("down_payment_pct", "must be between 0 and 100, got %s", pct)
	}
	d.mode = DownPaymentByPercentage
	d.percentage = decimal.Max(pct, d.minPct)
	d.amount = d.amountFor(d.percentage)
	return nil
}

// SetByAmount raises amt to the policy minimum when needed and derives the
// percentage. A non-positive price leaves the percentage at zero and reports
// a configuration error.
func (d *DownPayment) SetByAmount(amt decimal.Decimal) error {
	if amt.IsNegative() {
		return invalid("down_payment_amount", "must not be negative, got %s", amt)
	}
	d.mode = DownPaymentByAmount
	if !d.price.IsPositive() {
		d.amount = exact(amt)
		d.percentage = decimal.Zero
		return misconfigured("price", "must be positive to derive a down payment percentage")
	}
	if amt.GreaterThan(d.price) {
		return invalid("down_payment_amount", "%s exceeds vehicle price %s", amt, d.price)
	}

	if amt.LessThan(d.amountFor(d.minPct)) {
		d.percentage = d.minPct
		d.amount = d.amountFor(d.minPct)
		return nil
	}
	d.amount = exact(amt)
	d.percentage = exact(d.amount.Mul(hundred).Div(d.price))
	return nil
}

// SetPrice re-derives the amount from the stored percentage, so a percentage
// choice carries over to another vehicle.
func (d *DownPayment) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return invalid("price", "must not be negative")
	}
	d.price = price
	d.amount = d.amountFor(d.percentage)
	return nil
}

// Balance is the part of the price left to finance.
func (d *DownPayment) Balance() decimal.Decimal {
	return d.price.Sub(d.amount)
}

func (d *DownPayment) amountFor(pct decimal.Decimal) decimal.Decimal {
	return exact(d.price.Mul(pct).Div(hundred))
}

type ResolvedDownPayment struct {
	Mode       DownPaymentMode
	Percentage decimal.Decimal
	Amount     decimal.Decimal
}

// ResolveDownPayment applies in to a fresh DownPayment for price and returns
// the reconciled values.
func ResolveDownPayment(price decimal.Decimal, in DownPaymentInput, minPct decimal.Decimal) (ResolvedDownPayment, error) {
	if !in.Mode.valid() {
		return ResolvedDownPayment{}, invalid("down_payment_mode", "unknown mode %q", in.Mode)
	}
	d, err := NewDownPayment(price, minPct)
	if err != nil {
		return ResolvedDownPayment{}, err
	}
	if err := d.checkAgreement(in); err != nil {
		return ResolvedDownPayment{}, err
	}

	switch in.Mode {
	case DownPaymentByPercentage:
		err = d.SetByPercentage(in.Percentage)
	case DownPaymentByAmount:
		err = d.SetByAmount(in.Amount)
	default:
		err = d.resolveUnset(in)
	}
	if err != nil {
		return ResolvedDownPayment{}, err
	}
	return ResolvedDownPayment{Mode: d.mode, Percentage: d.percentage, Amount: d.amount}, nil
}

func (d *DownPayment) resolveUnset(in DownPaymentInput) error {
	if in.Percentage.IsZero() && !in.Amount.IsZero() {
		return d.SetByAmount(in.Amount)
	}
	return d.SetByPercentage(in.Percentage)
}

// checkAgreement rejects a percentage and an amount that are both given but
// differ by more than one minor unit at the current price.
func (d *DownPayment) checkAgreement(in DownPaymentInput) error {
	if in.Percentage.IsZero() || in.Amount.IsZero() {
		return nil
	}
	if d.amountFor(in.Percentage).Sub(in.Amount).Abs().GreaterThan(minorUnit) {
		return invalid("down_payment", "percentage %s%% and amount %s disagree for price %s", in.Percentage, in.Amount, d.price)
	}
	return nil
}
