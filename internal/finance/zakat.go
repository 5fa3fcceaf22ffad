package finance

import "github.com/900mahdi/mohasib3/internal/models"

// NisabGoldGrams is the reference weight of 24k gold defining the nisab.
const NisabGoldGrams = 85

// ZakatRate is the levy applied to the zakat base once the nisab is met.
const ZakatRate = 0.025

type ZakatResult struct {
	ZakatBase float64 `json:"zakatBase"` // الوعاء الزكوي
	Threshold float64 `json:"threshold"` // النصاب
	Required  bool    `json:"isRequired"`
	AmountDue float64 `json:"amountDue"`
}

// ComputeZakat derives the zakat obligation from the record. It is a pure
// function and the result is never stored, always recomputed.
//
// Base = liquidity + inventory + receivables - payables. A negative base can
// never meet the non-negative threshold, so it yields no obligation.
func ComputeZakat(rec models.FinancialRecord) ZakatResult {
	base := rec.Liquidity + rec.Inventory + rec.DebtsToUs - rec.DebtsByUs
	threshold := rec.GoldPrice * NisabGoldGrams
	required := base >= threshold

	var due float64
	if required {
		due = base * ZakatRate
	}

	return ZakatResult{
		ZakatBase: base,
		Threshold: threshold,
		Required:  required,
		AmountDue: due,
	}
}
