package main

import (
	"log"
	"strings"

	"github.com/900mahdi/mohasib3/internal/auth"
	"github.com/900mahdi/mohasib3/internal/config"
	"github.com/900mahdi/mohasib3/internal/database"
	"github.com/900mahdi/mohasib3/internal/finance"
	"github.com/900mahdi/mohasib3/internal/models"
	"github.com/900mahdi/mohasib3/internal/nlu"
	"github.com/900mahdi/mohasib3/internal/report"
	"github.com/900mahdi/mohasib3/internal/store"
	"github.com/900mahdi/mohasib3/internal/voice"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// setupApp builds the Fiber app and registers every route. Reads are open to
// both roles and must be registered before the merchant-only group: Fiber
// matches in registration order and the group's middleware is mounted on the
// shared /api prefix.
func setupApp(cfg *config.Config, st store.Store, authSvc *auth.Service, extractor nlu.Extractor) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "خطأ غير متوقع في الخادم",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/login", auth.LoginHandler(cfg, authSvc))
	api.Post("/auth/biometric", auth.BiometricLoginHandler(cfg, authSvc))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())
	protected.Post("/auth/logout", auth.LogoutHandler())
	protected.Post("/auth/change-password", auth.ChangePasswordHandler(authSvc))

	// Reads, open to both roles
	protected.Get("/financial-record", finance.GetRecordHandler(st))
	protected.Get("/dashboard/summary", finance.DashboardSummaryHandler(st))
	protected.Get("/reports/annual", report.AnnualReportHandler(st))

	// Mutations: the accountant role is read-only on the entry screen
	merchant := protected.Group("")
	merchant.Use(auth.RequireRole(models.RoleMerchant))

	merchant.Put("/financial-record", finance.SaveRecordHandler(st))
	merchant.Patch("/financial-record", finance.UpdateRecordHandler(st))
	merchant.Post("/voice-commands", voice.CommandHandler(st, extractor))

	return app
}

func main() {
	cfg := config.Load()
	db := database.Init(cfg)

	st := store.NewGormStore(db)
	authSvc := auth.NewService(st)
	extractor := nlu.NewGeminiExtractor(cfg.GeminiAPIKey, cfg.GeminiModel)

	app := setupApp(cfg, st, authSvc, extractor)

	log.Println("Server listening on port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
