package finance

import (
	"log"
	"time"

	"github.com/900mahdi/mohasib3/internal/models"
	"github.com/900mahdi/mohasib3/internal/store"

	"github.com/gofiber/fiber/v2"
)

// loadOrDefault returns the stored record, or the zero-valued default with
// the placeholder gold price on first run. The default is not persisted; it
// only becomes durable through an explicit save.
func loadOrDefault(s store.Store) (models.FinancialRecord, error) {
	rec, found, err := s.LoadRecord()
	if err != nil {
		return models.FinancialRecord{}, err
	}
	if !found {
		return models.DefaultFinancialRecord(), nil
	}
	return rec, nil
}

// GET /api/financial-record
func GetRecordHandler(s store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec, err := loadOrDefault(s)
		if err != nil {
			log.Println("financial record load:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر تحميل البيانات المالية")
		}
		return c.JSON(rec)
	}
}

// PUT /api/financial-record
// The explicit save: the only operation that refreshes lastUpdated.
func SaveRecordHandler(s store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rec models.FinancialRecord
		if err := c.BodyParser(&rec); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "نص الطلب غير صالح")
		}

		rec.Sanitize()
		rec.LastUpdated = time.Now()

		if err := s.SaveRecord(rec); err != nil {
			log.Println("financial record save:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر حفظ البيانات المالية")
		}

		return c.JSON(fiber.Map{
			"message": "تم حفظ البيانات بنجاح في قاعدة البيانات المحلية",
			"record":  rec,
		})
	}
}

// PATCH /api/financial-record
// Field-by-field edit: mentioned fields overwrite, the rest keep their
// values, lastUpdated is left alone.
func UpdateRecordHandler(s store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var partial models.PartialRecord
		if err := c.BodyParser(&partial); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "نص الطلب غير صالح")
		}

		rec, err := loadOrDefault(s)
		if err != nil {
			log.Println("financial record load:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر تحميل البيانات المالية")
		}

		partial.Apply(&rec)

		if err := s.SaveRecord(rec); err != nil {
			log.Println("financial record save:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر حفظ البيانات المالية")
		}

		return c.JSON(rec)
	}
}

// GET /api/dashboard/summary
func DashboardSummaryHandler(s store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec, err := loadOrDefault(s)
		if err != nil {
			log.Println("financial record load:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر تحميل البيانات المالية")
		}

		return c.JSON(fiber.Map{
			"record":  rec,
			"summary": ComputeSummary(rec),
		})
	}
}
