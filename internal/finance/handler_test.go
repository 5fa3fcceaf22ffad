package finance

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/900mahdi/mohasib3/internal/models"
	"github.com/900mahdi/mohasib3/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(st store.Store) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Get("/api/financial-record", GetRecordHandler(st))
	app.Put("/api/financial-record", SaveRecordHandler(st))
	app.Patch("/api/financial-record", UpdateRecordHandler(st))
	app.Get("/api/dashboard/summary", DashboardSummaryHandler(st))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, out any) int {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode == fiber.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestGetRecordFirstRun(t *testing.T) {
	app := newApp(store.NewMemoryStore())

	var rec models.FinancialRecord
	status := doJSON(t, app, "GET", "/api/financial-record", nil, &rec)

	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(models.DefaultGoldPrice), rec.GoldPrice)
	assert.Zero(t, rec.Income)
}

func TestSaveRecordStampsLastUpdated(t *testing.T) {
	st := store.NewMemoryStore()
	app := newApp(st)

	before := time.Now()
	body := models.FinancialRecord{Income: 5_000_000, Liquidity: 1_000_000, GoldPrice: 14_500}

	var out struct {
		Record models.FinancialRecord `json:"record"`
	}
	status := doJSON(t, app, "PUT", "/api/financial-record", body, &out)
	require.Equal(t, fiber.StatusOK, status)

	assert.False(t, out.Record.LastUpdated.Before(before), "save must refresh lastUpdated")

	stored, found, err := st.LoadRecord()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, float64(5_000_000), stored.Income)
}

func TestSaveRecordCoercesNegativeInput(t *testing.T) {
	st := store.NewMemoryStore()
	app := newApp(st)

	status := doJSON(t, app, "PUT", "/api/financial-record",
		map[string]any{"income": -500, "liquidity": 1000}, nil)
	require.Equal(t, fiber.StatusOK, status)

	stored, _, err := st.LoadRecord()
	require.NoError(t, err)
	assert.Equal(t, float64(0), stored.Income)
	assert.Equal(t, float64(1000), stored.Liquidity)
}

func TestUpdateRecordKeepsLastUpdated(t *testing.T) {
	st := store.NewMemoryStore()
	saved := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, st.SaveRecord(models.FinancialRecord{
		Income:      100,
		Wages:       10,
		GoldPrice:   14_500,
		LastUpdated: saved,
	}))
	app := newApp(st)

	var rec models.FinancialRecord
	status := doJSON(t, app, "PATCH", "/api/financial-record",
		map[string]any{"wages": 999}, &rec)
	require.Equal(t, fiber.StatusOK, status)

	assert.Equal(t, float64(999), rec.Wages)
	assert.Equal(t, float64(100), rec.Income, "unmentioned field untouched")
	assert.True(t, rec.LastUpdated.Equal(saved), "field edits must not restamp lastUpdated")
}

func TestUpdateRecordGoldPrice(t *testing.T) {
	st := store.NewMemoryStore()
	require.NoError(t, st.SaveRecord(models.FinancialRecord{
		Income:    100,
		GoldPrice: 14_500,
	}))
	app := newApp(st)

	var rec models.FinancialRecord
	status := doJSON(t, app, "PATCH", "/api/financial-record",
		map[string]any{"goldPrice": 20_000}, &rec)
	require.Equal(t, fiber.StatusOK, status)

	assert.Equal(t, float64(20_000), rec.GoldPrice)
	assert.Equal(t, float64(100), rec.Income, "unmentioned field untouched")

	stored, _, err := st.LoadRecord()
	require.NoError(t, err)
	assert.Equal(t, float64(20_000), stored.GoldPrice)
}

func TestDashboardSummary(t *testing.T) {
	st := store.NewMemoryStore()
	require.NoError(t, st.SaveRecord(models.FinancialRecord{
		Liquidity: 2_000_000,
		Inventory: 1_000_000,
		GoldPrice: 14_500,
	}))
	app := newApp(st)

	var out struct {
		Summary AnnualSummary `json:"summary"`
	}
	status := doJSON(t, app, "GET", "/api/dashboard/summary", nil, &out)
	require.Equal(t, fiber.StatusOK, status)

	assert.Equal(t, float64(3_000_000), out.Summary.Zakat.ZakatBase)
	assert.Equal(t, float64(1_232_500), out.Summary.Zakat.Threshold)
	assert.True(t, out.Summary.Zakat.Required)
	assert.Equal(t, float64(75_000), out.Summary.Zakat.AmountDue)
}
