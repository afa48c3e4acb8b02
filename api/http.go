package api

import (
	"github.com/gofiber/fiber/v2"
)

type SongkickHandler interface {
	SearchLocations(ctx *fiber.Ctx) error
	ListEvents(ctx *fiber.Ctx) error
	GetEventDetails(ctx *fiber.Ctx) error
	TrackLocation(ctx *fiber.Ctx) error
	GetUsageMetrics(ctx *fiber.Ctx) error
}
