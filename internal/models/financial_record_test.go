package models

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func float(v float64) *float64 { return &v }

func TestPartialRecordApply(t *testing.T) {
	rec := FinancialRecord{
		Income:      1000,
		Expenses:    200,
		Wages:       100,
		Inventory:   5000,
		Liquidity:   3000,
		DebtsToUs:   400,
		DebtsByUs:   50,
		GoldPrice:   14_500,
		LastUpdated: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	partial := PartialRecord{Inventory: float(50_000_000)}
	partial.Apply(&rec)

	assert.Equal(t, float64(50_000_000), rec.Inventory)

	// Every other field keeps its prior value.
	assert.Equal(t, float64(1000), rec.Income)
	assert.Equal(t, float64(200), rec.Expenses)
	assert.Equal(t, float64(100), rec.Wages)
	assert.Equal(t, float64(3000), rec.Liquidity)
	assert.Equal(t, float64(400), rec.DebtsToUs)
	assert.Equal(t, float64(50), rec.DebtsByUs)
	assert.Equal(t, float64(14_500), rec.GoldPrice)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), rec.LastUpdated)
}

func TestPartialRecordApplyMultipleFields(t *testing.T) {
	rec := FinancialRecord{Income: 1, Liquidity: 2}

	partial := PartialRecord{Income: float(9), Liquidity: float(8), Wages: float(7)}
	partial.Apply(&rec)

	assert.Equal(t, float64(9), rec.Income)
	assert.Equal(t, float64(8), rec.Liquidity)
	assert.Equal(t, float64(7), rec.Wages)
}

func TestPartialRecordApplyGoldPrice(t *testing.T) {
	rec := FinancialRecord{Income: 1000, GoldPrice: 14_500}

	partial := PartialRecord{GoldPrice: float(20_000)}
	partial.Apply(&rec)

	assert.Equal(t, float64(20_000), rec.GoldPrice)
	assert.Equal(t, float64(1000), rec.Income)
}

func TestPartialRecordApplySanitizes(t *testing.T) {
	rec := FinancialRecord{}
	partial := PartialRecord{Income: float(-500)}
	partial.Apply(&rec)
	assert.Equal(t, float64(0), rec.Income, "negative input is coerced to 0")
}

func TestPartialRecordIsEmpty(t *testing.T) {
	assert.True(t, PartialRecord{}.IsEmpty())
	assert.False(t, PartialRecord{Wages: float(0)}.IsEmpty(), "an explicit zero is a mention")
}

func TestSanitize(t *testing.T) {
	rec := FinancialRecord{
		Income:    math.NaN(),
		Expenses:  math.Inf(1),
		Wages:     -100,
		Liquidity: 42,
	}
	rec.Sanitize()

	assert.Equal(t, float64(0), rec.Income)
	assert.Equal(t, float64(0), rec.Expenses)
	assert.Equal(t, float64(0), rec.Wages)
	assert.Equal(t, float64(42), rec.Liquidity)
}

func TestDefaultFinancialRecord(t *testing.T) {
	rec := DefaultFinancialRecord()
	assert.Equal(t, float64(DefaultGoldPrice), rec.GoldPrice)
	assert.Zero(t, rec.Income)
	assert.Zero(t, rec.Liquidity)
	assert.False(t, rec.LastUpdated.IsZero())
}
