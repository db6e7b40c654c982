package graph

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graph-gophers/graphql-go"
)

type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler serves GraphQL over POST. Execution runs with the request's user
// context, so resolvers see the identity the auth middleware attached.
func Handler(schema *graphql.Schema) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req request
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Failed to parse request body",
			})
		}

		response := schema.Exec(c.UserContext(), req.Query, req.OperationName, req.Variables)
		return c.JSON(response)
	}
}
