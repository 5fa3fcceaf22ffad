package finance

import (
	"math"

	"github.com/900mahdi/mohasib3/internal/models"
)

type BreakdownSlice struct {
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Percent float64 `json:"percent"`
}

type AnnualSummary struct {
	NetProfit        float64          `json:"netProfit"`
	NetDebts         float64          `json:"netDebts"`
	ProfitPercent    float64          `json:"profitPercent"`    // نسبة صافي الربح من الدخل
	OperatingPercent float64          `json:"operatingPercent"` // نسبة التكاليف التشغيلية من الدخل
	Breakdown        []BreakdownSlice `json:"breakdown"`
	Zakat            ZakatResult      `json:"zakat"`
}

// clampPercent bounds a ratio to the displayable 0..100 range. A zero income
// always yields 0 rather than NaN/Inf.
func clampPercent(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	p := part / whole * 100
	return math.Max(0, math.Min(100, p))
}

// ComputeSummary derives the dashboard figures from the record. Like the
// zakat calculation it is pure and recomputed on every request.
func ComputeSummary(rec models.FinancialRecord) AnnualSummary {
	netProfit := rec.Income - (rec.Expenses + rec.Wages)

	breakdown := []BreakdownSlice{
		{Name: "صافي الربح", Value: math.Max(0, netProfit)},
		{Name: "المصاريف العامة", Value: rec.Expenses},
		{Name: "أجور العمال", Value: rec.Wages},
	}
	var total float64
	for _, s := range breakdown {
		total += s.Value
	}
	for i := range breakdown {
		breakdown[i].Percent = clampPercent(breakdown[i].Value, total)
	}

	return AnnualSummary{
		NetProfit:        netProfit,
		NetDebts:         rec.DebtsToUs - rec.DebtsByUs,
		ProfitPercent:    clampPercent(netProfit, rec.Income),
		OperatingPercent: clampPercent(rec.Expenses+rec.Wages, rec.Income),
		Breakdown:        breakdown,
		Zakat:            ComputeZakat(rec),
	}
}
