package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/alexandreventurin/AvalinxGHL/app/models"
	"github.com/alexandreventurin/AvalinxGHL/app/repository"
	"github.com/alexandreventurin/AvalinxGHL/internal/pkg/apperror"
	"github.com/alexandreventurin/AvalinxGHL/internal/pkg/reviewlinks"
	"github.com/alexandreventurin/AvalinxGHL/internal/pkg/session"
)

// ReviewController manages the canonical review destination stored on the
// provider.
type ReviewController struct {
	service  *reviewlinks.Service
	sessions *session.Manager
}

func NewReviewController(service *reviewlinks.Service, tokens repository.TokenRepository) *ReviewController {
	return &ReviewController{
		service:  service,
		sessions: session.NewManager(tokens),
	}
}

// HandleSetReviewLink stores the canonical destination URL as the location's
// custom value, updating in place when it already exists.
func (rc *ReviewController) HandleSetReviewLink(c *fiber.Ctx) error {
	var req models.SetReviewLinkRequest
	if err := parseAndValidate(c, &req); err != nil {
		return respondError(c, err, "Invalid request")
	}

	token, err := rc.sessions.ForLocation(req.LocationID)
	if err != nil {
		return respondError(c, err, "Failed to resolve session")
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), providerCallTimeout)
	defer cancel()

	result, err := rc.service.SaveReviewLink(ctx, token.AccessToken, req.LocationID, req.Link)
	if err != nil {
		return respondError(c, err, "Failed to save review link")
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// HandleGetReviewLink returns the canonical destination, or a null link when
// it was never configured.
func (rc *ReviewController) HandleGetReviewLink(c *fiber.Ctx) error {
	locationID := c.Query("locationId")
	if locationID == "" {
		return respondError(c, apperror.NewValidation("locationId query parameter is required", ""), "Invalid request")
	}

	token, err := rc.sessions.ForLocation(locationID)
	if err != nil {
		return respondError(c, err, "Failed to resolve session")
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), providerCallTimeout)
	defer cancel()

	link, ok, err := rc.service.GetReviewLink(ctx, token.AccessToken, locationID)
	if err != nil {
		return respondError(c, err, "Failed to fetch review link")
	}
	if !ok {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"link": nil})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"link": link})
}
