package models

import (
	"math"
	"time"
)

// DefaultGoldPrice: سعر تقريبي لجرام الذهب عيار 24 بالدينار الجزائري
const DefaultGoldPrice = 14500

// FinancialRecord is the single persisted business entity: the merchant's
// annual figures plus the gold reference price used for the nisab threshold.
// JSON field names match what the dashboard front end stores and displays.
type FinancialRecord struct {
	Income      float64   `json:"income"`
	Expenses    float64   `json:"expenses"`
	Wages       float64   `json:"wages"`
	DebtsToUs   float64   `json:"debtsToUs"`
	DebtsByUs   float64   `json:"debtsByUs"`
	Inventory   float64   `json:"inventory"`
	Liquidity   float64   `json:"liquidity"`
	GoldPrice   float64   `json:"goldPrice"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// DefaultFinancialRecord returns the zero-valued first-run record with the
// placeholder gold price.
func DefaultFinancialRecord() FinancialRecord {
	return FinancialRecord{
		GoldPrice:   DefaultGoldPrice,
		LastUpdated: time.Now(),
	}
}

// Sanitize clamps every numeric field to a finite, non-negative value.
// Invalid or partial input from the entry form arrives as 0, never as an error.
func (r *FinancialRecord) Sanitize() {
	fields := []*float64{
		&r.Income, &r.Expenses, &r.Wages,
		&r.DebtsToUs, &r.DebtsByUs,
		&r.Inventory, &r.Liquidity, &r.GoldPrice,
	}
	for _, f := range fields {
		if math.IsNaN(*f) || math.IsInf(*f, 0) || *f < 0 {
			*f = 0
		}
	}
}

// PartialRecord carries an optional subset of the editable numeric fields.
// A nil field was not mentioned and must leave the stored value untouched.
// The gold price is editable field-by-field like the rest, but the voice
// extractor never sets it: its response schema is limited to the seven
// financial fields.
type PartialRecord struct {
	Income    *float64 `json:"income,omitempty"`
	Expenses  *float64 `json:"expenses,omitempty"`
	Wages     *float64 `json:"wages,omitempty"`
	DebtsToUs *float64 `json:"debtsToUs,omitempty"`
	DebtsByUs *float64 `json:"debtsByUs,omitempty"`
	Inventory *float64 `json:"inventory,omitempty"`
	Liquidity *float64 `json:"liquidity,omitempty"`
	GoldPrice *float64 `json:"goldPrice,omitempty"`
}

// IsEmpty reports whether no field was mentioned at all.
func (p PartialRecord) IsEmpty() bool {
	return p.Income == nil && p.Expenses == nil && p.Wages == nil &&
		p.DebtsToUs == nil && p.DebtsByUs == nil &&
		p.Inventory == nil && p.Liquidity == nil &&
		p.GoldPrice == nil
}

// Apply merges the mentioned fields into the record, last write wins per
// field. Unspecified fields keep their prior values.
func (p PartialRecord) Apply(r *FinancialRecord) {
	if p.Income != nil {
		r.Income = *p.Income
	}
	if p.Expenses != nil {
		r.Expenses = *p.Expenses
	}
	if p.Wages != nil {
		r.Wages = *p.Wages
	}
	if p.DebtsToUs != nil {
		r.DebtsToUs = *p.DebtsToUs
	}
	if p.DebtsByUs != nil {
		r.DebtsByUs = *p.DebtsByUs
	}
	if p.Inventory != nil {
		r.Inventory = *p.Inventory
	}
	if p.Liquidity != nil {
		r.Liquidity = *p.Liquidity
	}
	if p.GoldPrice != nil {
		r.GoldPrice = *p.GoldPrice
	}
	r.Sanitize()
}
