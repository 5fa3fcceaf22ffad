package finance

import (
	"testing"

	"github.com/900mahdi/mohasib3/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSummary(t *testing.T) {
	rec := models.FinancialRecord{
		Income:    10_000_000,
		Expenses:  3_000_000,
		Wages:     1_000_000,
		DebtsToUs: 800_000,
		DebtsByUs: 300_000,
		GoldPrice: 14_500,
	}

	got := ComputeSummary(rec)

	assert.Equal(t, float64(6_000_000), got.NetProfit)
	assert.Equal(t, float64(500_000), got.NetDebts)
	assert.Equal(t, float64(60), got.ProfitPercent)
	assert.Equal(t, float64(40), got.OperatingPercent)

	require.Len(t, got.Breakdown, 3)
	assert.Equal(t, float64(6_000_000), got.Breakdown[0].Value)
	assert.Equal(t, float64(3_000_000), got.Breakdown[1].Value)
	assert.Equal(t, float64(1_000_000), got.Breakdown[2].Value)
	assert.Equal(t, float64(60), got.Breakdown[0].Percent)
}

func TestComputeSummaryZeroIncome(t *testing.T) {
	got := ComputeSummary(models.FinancialRecord{Expenses: 500, Wages: 100})

	assert.Equal(t, float64(-600), got.NetProfit)
	assert.Equal(t, float64(0), got.ProfitPercent, "zero income must not divide")
	assert.Equal(t, float64(0), got.OperatingPercent)
	assert.Equal(t, float64(0), got.Breakdown[0].Value, "losses render as a zero profit slice")
}

func TestComputeSummaryCostsExceedIncome(t *testing.T) {
	got := ComputeSummary(models.FinancialRecord{Income: 100, Expenses: 500})
	assert.Equal(t, float64(0), got.ProfitPercent)
	assert.Equal(t, float64(100), got.OperatingPercent, "ratio is clamped at 100")
}

func TestComputeSummaryCarriesZakat(t *testing.T) {
	rec := models.FinancialRecord{Liquidity: 2_000_000, Inventory: 1_000_000, GoldPrice: 14_500}
	got := ComputeSummary(rec)
	assert.Equal(t, ComputeZakat(rec), got.Zakat)
}
