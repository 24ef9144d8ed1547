package credit

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Method string

const (
	// MethodFrench keeps the installment constant.
	MethodFrench Method = "FRENCH"
	// MethodGerman keeps the capital part constant.
	MethodGerman Method = "GERMAN"
	// MethodFlat charges simple interest on the original principal.
	MethodFlat Method = "FLAT"
)

// Methods lists the supported methods in presentation order.
func Methods() []Method {
	return []Method{MethodFrench, MethodGerman, MethodFlat}
}

func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := strategies[m]; !ok {
		return "", invalid("method", "unknown amortization method %q", s)
	}
	return m, nil
}

// Split is the capital and interest of one period.
type Split struct {
	Capital  decimal.Decimal
	Interest decimal.Decimal
}

// Strategy produces n splits for principal at periodic rate. Every strategy
// returns nil for n <= 0.
type Strategy func(principal, rate decimal.Decimal, n int) []Split

var strategies = map[Method]Strategy{
	MethodFrench: French,
	MethodGerman: German,
	MethodFlat:   Flat,
}

func StrategyFor(m Method) (Strategy, error) {
	s, ok := strategies[m]
	if !ok {
		return nil, invalid("method", "unknown amortization method %q", m)
	}
	return s, nil
}

// FrenchInstallment is the constant payment P*r*(1+r)^n / ((1+r)^n - 1),
// or P/n at a zero rate.
func FrenchInstallment(principal, rate decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 {
		return decimal.Zero
	}
	periods := decimal.NewFromInt(int64(n))
	if rate.IsZero() {
		return exact(principal.Div(periods))
	}
	growth := one.Add(rate).Pow(periods)
	return exact(principal.Mul(rate).Mul(growth).Div(growth.Sub(one)))
}

func French(principal, rate decimal.Decimal, n int) []Split {
	if n <= 0 {
		return nil
	}
	installment := FrenchInstallment(principal, rate, n)
	splits := make([]Split, 0, n)
	balance := principal
	for i := 0; i < n; i++ {
		interest := exact(balance.Mul(rate))
		capital := installment.Sub(interest)
		splits = append(splits, Split{Capital: capital, Interest: interest})
		balance = balance.Sub(capital)
	}
	return splits
}

func German(principal, rate decimal.Decimal, n int) []Split {
	if n <= 0 {
		return nil
	}
	capital := exact(principal.Div(decimal.NewFromInt(int64(n))))
	splits := make([]Split, 0, n)
	balance := principal
	for i := 0; i < n; i++ {
		splits = append(splits, Split{Capital: capital, Interest: exact(balance.Mul(rate))})
		balance = balance.Sub(capital)
	}
	return splits
}

func Flat(principal, rate decimal.Decimal, n int) []Split {
	if n <= 0 {
		return nil
	}
	periods := decimal.NewFromInt(int64(n))
	totalInterest := principal.Mul(rate).Mul(periods)
	split := Split{
		Capital:  exact(principal.Div(periods)),
		Interest: exact(totalInterest.Div(periods)),
	}
	splits := make([]Split, n)
	for i := range splits {
		splits[i] = split
	}
	return splits
}
