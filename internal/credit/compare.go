package credit

import "github.com/shopspring/decimal"

type Comparison struct {
	Results []*Output
	// Cheapest is the method with the lowest total debt; ties keep the
	// earlier method.
	Cheapest Method
	// Savings is the total debt difference between the most and the least
	// expensive method.
	Savings decimal.Decimal
}

// Compare simulates in once per method. With no methods given it compares
// all supported methods. in.Method is ignored.
func Compare(in Input, methods ...Method) (*Comparison, error) {
	if len(methods) == 0 {
		methods = Methods()
	}

	cmp := &Comparison{Results: make([]*Output, 0, len(methods))}
	var cheapest, dearest *Output
	for _, m := range methods {
		run := in
		run.Method = m
		out, err := Simulate(run)
		if err != nil {
			return nil, err
		}
		cmp.Results = append(cmp.Results, out)

		if cheapest == nil || out.Totals.TotalDebt.LessThan(cheapest.Totals.TotalDebt) {
			cheapest = out
		}
		if dearest == nil || out.Totals.TotalDebt.GreaterThan(dearest.Totals.TotalDebt) {
			dearest = out
		}
	}
	cmp.Cheapest = cheapest.Method
	cmp.Savings = dearest.Totals.TotalDebt.Sub(cheapest.Totals.TotalDebt)
	return cmp, nil
}
