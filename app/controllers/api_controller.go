package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	apiStatusMessage = "Avalinx API Online"
	apiVersion       = "0.0.1"
)

// HandleAPIStatus is the liveness/version endpoint.
func HandleAPIStatus(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    apiStatusMessage,
		"version":   apiVersion,
		"timestamp": time.Now().UnixMilli(),
	})
}
