package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "cardtracker/docs"
	"cardtracker/internal/service"
)

// RegisterRoutes attaches the HTML pages, the JSON API and the operational endpoints.
// The app must be configured with web.Engine as its views.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc service.CardService, log *zap.Logger) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	// The OpenAPI document omits host and schemes, so the UI calls whichever host served it.
	app.Get("/swagger/*", swagger.HandlerDefault)

	pages := NewPages(svc, log)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard", fiber.StatusFound)
	})
	app.Get("/dashboard", pages.Dashboard)
	app.Get("/inventory", pages.Inventory)
	app.Get("/cards/new", pages.NewCardForm)
	app.Post("/cards", pages.CreateCard)
	app.Get("/cards/:id/edit", pages.EditCardForm)
	app.Post("/cards/:id", pages.UpdateCard)
	app.Post("/cards/:id/delete", pages.DeleteCard)

	api := app.Group("/api")
	api.Get("/cards", ListCards(svc))
	api.Post("/cards", CreateCard(svc))
	api.Get("/cards/:id", GetCard(svc))
	api.Put("/cards/:id", UpdateCard(svc))
	api.Delete("/cards/:id", DeleteCard(svc))
	api.Post("/cards/:id/photos", UploadPhoto(svc))
	api.Get("/cards/:id/photos", ListPhotos(svc))
	api.Get("/stats", GetStats(svc))
}
