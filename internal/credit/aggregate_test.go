package credit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	t.Run("happy: German totals", func(t *testing.T) {
		schedule, err := GenerateSchedule(MethodGerman, d("10000"), d("0.015"), 12, jan15, RecurringFees{})
		require.NoError(t, err)

		totals := Summarize(d("10000"), schedule)
		assertMoney(t, "975.00", totals.TotalInterest)
		assertMoney(t, "10975.00", totals.TotalDebt)
		assertMoney(t, "983.33", totals.FirstInstallment)
		assertMoney(t, "845.83", totals.LastInstallment)
		assertMoney(t, "914.58", totals.AverageInstallment)
		assert.True(t, totals.TotalFees().IsZero())
	})

	t.Run("happy: recurring fees are part of the debt", func(t *testing.T) {
		fees := RecurringFees{
			Basis:           FeeBasisDecliningBalance,
			InsuranceRate:   d("0.036"),
			DesgravamenRate: d("0.006"),
			GPSMonthly:      d("25"),
		}
		schedule, err := GenerateSchedule(MethodFrench, d("20300"), d("0.015"), 24, jan15, fees)
		require.NoError(t, err)

		totals := Summarize(d("20300"), schedule)
		assertMoney(t, "4023.02", totals.TotalInterest)
		assertMoney(t, "804.60", totals.TotalInsurance)
		assertMoney(t, "134.10", totals.TotalDesgravamen)
		assertMoney(t, "600.00", totals.TotalGPS)
		assertMoney(t, "25861.73", totals.TotalDebt)
		assertMoney(t, "1077.57", totals.AverageInstallment)
	})

	t.Run("edge: empty schedule", func(t *testing.T) {
		totals := Summarize(d("10000"), nil)
		assert.True(t, totals.TotalDebt.IsZero())
		assert.True(t, totals.TotalInterest.IsZero())
		assert.True(t, totals.AverageInstallment.IsZero())
		assert.True(t, totals.FirstInstallment.IsZero())
	})
}
