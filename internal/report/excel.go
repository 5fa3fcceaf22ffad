package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/900mahdi/mohasib3/internal/finance"
	"github.com/900mahdi/mohasib3/internal/models"

	"github.com/xuri/excelize/v2"
)

const sheetName = "التقرير السنوي"

// BuildAnnualExcel renders the record and its derived figures into a
// single-sheet workbook.
func BuildAnnualExcel(rec models.FinancialRecord) (*bytes.Buffer, error) {
	summary := finance.ComputeSummary(rec)

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("remove default sheet: %w", err)
	}

	rows := [][]interface{}{
		{"حصيلة التاجر - التقرير المالي السنوي", ""},
		{"تاريخ آخر تحديث", rec.LastUpdated.Format(time.RFC3339)},
		{"", ""},
		{"الدخل السنوي", rec.Income},
		{"المصاريف العامة", rec.Expenses},
		{"أجور العمال", rec.Wages},
		{"قيمة المخزون", rec.Inventory},
		{"السيولة المتاحة", rec.Liquidity},
		{"الديون لنا", rec.DebtsToUs},
		{"الديون علينا", rec.DebtsByUs},
		{"سعر جرام الذهب (عيار 24)", rec.GoldPrice},
		{"", ""},
		{"صافي الربح", summary.NetProfit},
		{"صافي الديون", summary.NetDebts},
		{"", ""},
		{"الوعاء الزكوي", summary.Zakat.ZakatBase},
		{"النصاب (85 جرام ذهب)", summary.Zakat.Threshold},
		{"الزكاة واجبة", zakatStatus(summary.Zakat.Required)},
		{"المبلغ المستحق للدفع", summary.Zakat.AmountDue},
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf, nil
}

func zakatStatus(required bool) string {
	if required {
		return "واجبة"
	}
	return "غير واجبة"
}
