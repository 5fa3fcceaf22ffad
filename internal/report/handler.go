package report

import (
	"fmt"
	"log"
	"time"

	"github.com/900mahdi/mohasib3/internal/models"
	"github.com/900mahdi/mohasib3/internal/store"

	"github.com/gofiber/fiber/v2"
)

// GET /api/reports/annual?format=excel|pdf
// PDF generation is a placeholder awaiting the integrating system.
func AnnualReportHandler(s store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		format := c.Query("format", "excel")

		switch format {
		case "excel":
			// fall through below
		case "pdf":
			return fiber.NewError(fiber.StatusNotImplemented, "تقارير PDF غير متوفرة بعد")
		default:
			return fiber.NewError(fiber.StatusBadRequest, "صيغة التقرير يجب أن تكون pdf أو excel")
		}

		rec, found, err := s.LoadRecord()
		if err != nil {
			log.Println("financial record load:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر تحميل البيانات المالية")
		}
		if !found {
			rec = models.DefaultFinancialRecord()
		}

		buf, err := BuildAnnualExcel(rec)
		if err != nil {
			log.Println("excel report build:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر توليد التقرير")
		}

		filename := fmt.Sprintf("haseelat-annual-%s.xlsx", time.Now().Format("2006-01-02"))
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		return c.Send(buf.Bytes())
	}
}
