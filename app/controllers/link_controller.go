package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/alexandreventurin/AvalinxGHL/app/models"
	"github.com/alexandreventurin/AvalinxGHL/app/repository"
	"github.com/alexandreventurin/AvalinxGHL/internal/pkg/reviewlinks"
	"github.com/alexandreventurin/AvalinxGHL/internal/pkg/session"
)

// LinkController manages employee short links: creation, listing and the
// public redirect that counts clicks.
type LinkController struct {
	service  *reviewlinks.Service
	sessions *session.Manager
}

func NewLinkController(service *reviewlinks.Service, tokens repository.TokenRepository) *LinkController {
	return &LinkController{
		service:  service,
		sessions: session.NewManager(tokens),
	}
}

// HandleCreateEmployeeLink derives a tracked short link for one employee.
// Requires the location's review link to be configured first.
func (lc *LinkController) HandleCreateEmployeeLink(c *fiber.Ctx) error {
	var req models.CreateEmployeeLinkRequest
	if err := parseAndValidate(c, &req); err != nil {
		return respondError(c, err, "Invalid request")
	}

	token, err := lc.sessions.ForLocation(req.LocationID)
	if err != nil {
		return respondError(c, err, "Failed to resolve session")
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), providerCallTimeout)
	defer cancel()

	link, shortURL, err := lc.service.CreateEmployeeLink(ctx, token.AccessToken, req.LocationID, req.EmployeeName)
	if err != nil {
		return respondError(c, err, "Failed to create employee link")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"id":           link.ID,
		"employeeName": link.EmployeeName,
		"locationId":   link.LocationID,
		"destination":  link.Destination,
		"clicks":       link.Clicks,
		"createdAt":    link.CreatedAt,
		"shortUrl":     shortURL,
	})
}

// HandleListEmployeeLinks returns every employee link in insertion order.
func (lc *LinkController) HandleListEmployeeLinks(c *fiber.Ctx) error {
	links, err := lc.service.ListEmployeeLinks()
	if err != nil {
		return respondError(c, err, "Failed to list employee links")
	}
	return c.Status(fiber.StatusOK).JSON(links)
}

// HandleResolveEmployeeLink counts one click and redirects the visitor to
// the frozen destination.
func (lc *LinkController) HandleResolveEmployeeLink(c *fiber.Ctx) error {
	destination, err := lc.service.ResolveClick(c.Params("id"))
	if err != nil {
		return respondError(c, err, "Failed to resolve employee link")
	}
	return c.Redirect(destination, fiber.StatusFound)
}
