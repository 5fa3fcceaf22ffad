package voice

import (
	"log"
	"strings"

	"github.com/900mahdi/mohasib3/internal/models"
	"github.com/900mahdi/mohasib3/internal/nlu"
	"github.com/900mahdi/mohasib3/internal/store"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/semaphore"
)

type CommandRequest struct {
	Transcript string `json:"transcript"`
}

type CommandResponse struct {
	Fields models.PartialRecord   `json:"fields"`
	Record models.FinancialRecord `json:"record"`
}

// POST /api/voice-commands
// Takes the final transcript delivered by the device's speech capture,
// extracts the mentioned fields and merges them into the stored record
// through the same per-field overwrite as manual edits. An extraction that
// yields nothing is a valid silent no-op, never an error.
func CommandHandler(s store.Store, extractor nlu.Extractor) fiber.Handler {
	// At most one extraction request may be outstanding at a time; the
	// client shows a disabled "processing" microphone meanwhile.
	inFlight := semaphore.NewWeighted(1)

	return func(c *fiber.Ctx) error {
		var body CommandRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "نص الطلب غير صالح")
		}

		body.Transcript = strings.TrimSpace(body.Transcript)
		if body.Transcript == "" {
			return fiber.NewError(fiber.StatusBadRequest, "النص الصوتي فارغ")
		}

		if !inFlight.TryAcquire(1) {
			return fiber.NewError(fiber.StatusConflict, "جاري تحليل البيانات...")
		}
		defer inFlight.Release(1)

		fields := extractor.Extract(c.Context(), body.Transcript)

		rec, found, err := s.LoadRecord()
		if err != nil {
			log.Println("financial record load:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر تحميل البيانات المالية")
		}
		if !found {
			rec = models.DefaultFinancialRecord()
		}

		if !fields.IsEmpty() {
			fields.Apply(&rec)
			if err := s.SaveRecord(rec); err != nil {
				log.Println("financial record save:", err)
				return fiber.NewError(fiber.StatusInternalServerError, "تعذر حفظ البيانات المالية")
			}
		}

		return c.JSON(CommandResponse{Fields: fields, Record: rec})
	}
}
