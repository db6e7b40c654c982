package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graph-gophers/graphql-go"

	"github.com/vineetbagga004/Viral-Nation-Assessment/auth"
	"github.com/vineetbagga004/Viral-Nation-Assessment/graph"
)

func SetupRoutes(app *fiber.App, schema *graphql.Schema, tokens *auth.TokenService) {
	// The auth gate runs on every request and never rejects; resolvers
	// decide whether anonymity is acceptable.
	app.Use(auth.Middleware(tokens))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	app.Post("/graphql", graph.Handler(schema))
}
