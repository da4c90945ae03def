package api

import (
	"finextract/internal/api/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRouter wires the HTTP surface. BodyLimit bounds uploads; everything
// else is plain JSON routing.
func SetupRouter(
	docHandler *handlers.DocumentHandler,
	ratingHandler *handlers.RatingHandler,
	bodyLimit int,
) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: bodyLimit,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(logger.New())

	api := app.Group("/api/v1")

	documents := api.Group("/documents")
	documents.Post("/upload", docHandler.Upload)
	documents.Post("/save", docHandler.Save)
	documents.Get("/recent", docHandler.Recent)

	api.Get("/models", docHandler.Models)

	ratings := api.Group("/ratings")
	ratings.Post("", ratingHandler.Submit)
	ratings.Get("", ratingHandler.List)

	return app
}
