// handlers/scoreboard.go
package handlers

import (
	"context"
	"errors"
	"time"

	"tictactoe-scoreboard/models"
	"tictactoe-scoreboard/services"

	"github.com/gofiber/fiber/v2"
)

const welcomeMessage = "Welcome to the Tic-Tac-Toe API! Use /scoreboard to view the scores."

func SetupScoreboardRoutes(app *fiber.App, scoreService *services.ScoreService, storeTimeout time.Duration) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(welcomeMessage)
	})

	app.Get("/scoreboard", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), storeTimeout)
		defer cancel()

		scores, err := scoreService.GetRankedScores(ctx)
		if err != nil {
			return errorResponse(c, "failed to fetch scoreboard", err)
		}
		return c.JSON(scores)
	})

	app.Post("/start_game", func(c *fiber.Ctx) error {
		var match models.MatchResult
		if err := c.BodyParser(&match); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), storeTimeout)
		defer cancel()

		if err := scoreService.ApplyMatchResult(ctx, match); err != nil {
			return errorResponse(c, "failed to update scores", err)
		}
		return c.JSON(fiber.Map{"message": "Scores updated!"})
	})

	app.Get("/healthz", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), storeTimeout)
		defer cancel()

		if err := scoreService.Ping(ctx); err != nil {
			return errorResponse(c, "store unreachable", err)
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})
}

func errorResponse(c *fiber.Ctx, msg string, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrMalformedRequest):
		status = fiber.StatusBadRequest
	case errors.Is(err, services.ErrStoreUnavailable):
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(fiber.Map{
		"error": msg,
		"cause": err.Error(),
	})
}
