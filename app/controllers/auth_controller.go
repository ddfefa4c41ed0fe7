package controllers

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/alexandreventurin/AvalinxGHL/app/models"
	"github.com/alexandreventurin/AvalinxGHL/app/repository"
	"github.com/alexandreventurin/AvalinxGHL/internal/pkg/session"
)

// exchange + profile fetch both run against the provider, keep them bounded
const providerCallTimeout = 20 * time.Second

// GhlAPI is the slice of the provider client the auth controller needs.
type GhlAPI interface {
	AuthorizeURL() string
	ExchangeCode(ctx context.Context, code string) (*models.GhlToken, error)
	GetLocation(ctx context.Context, accessToken, locationID string) (*models.GhlAccount, error)
}

// AuthController binds the OAuth lifecycle to the stores: connect, callback,
// profile fetch and disconnect.
type AuthController struct {
	provider GhlAPI
	tokens   repository.TokenRepository
	accounts repository.AccountRepository
	sessions *session.Manager
}

func NewAuthController(provider GhlAPI, repos *repository.Repositories) *AuthController {
	return &AuthController{
		provider: provider,
		tokens:   repos.Token,
		accounts: repos.Account,
		sessions: session.NewManager(repos.Token),
	}
}

// HandleConnect starts the OAuth flow by redirecting the browser to the
// provider's location chooser.
func (ac *AuthController) HandleConnect(c *fiber.Ctx) error {
	return c.Redirect(ac.provider.AuthorizeURL(), fiber.StatusFound)
}

// HandleCallback finishes the OAuth flow: exchanges the authorization code,
// persists the token and sends the browser back home.
func (ac *AuthController) HandleCallback(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Authorization code is required",
		})
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), providerCallTimeout)
	defer cancel()

	token, err := ac.provider.ExchangeCode(ctx, code)
	if err != nil {
		// any exchange failure is a server-side problem from the browser's
		// point of view, including a malformed provider response
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to complete OAuth flow",
			"details": err.Error(),
		})
	}

	if err := ac.tokens.Save(token.LocationID, token); err != nil {
		return respondError(c, err, "Failed to save authentication token")
	}

	log.Printf("[auth] token saved for location: %s", token.LocationID)
	return c.Redirect("/", fiber.StatusFound)
}

// HandleMe reports the active session: fetches the business profile from the
// provider, refreshes the cached snapshot and returns connection details.
func (ac *AuthController) HandleMe(c *fiber.Ctx) error {
	locationID, token, err := ac.sessions.Active()
	if err != nil {
		return respondError(c, err, "Failed to resolve session")
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), providerCallTimeout)
	defer cancel()

	account, err := ac.provider.GetLocation(ctx, token.AccessToken, locationID)
	if err != nil {
		return respondError(c, err, "Failed to fetch user data")
	}

	if err := ac.accounts.Save(locationID, account); err != nil {
		return respondError(c, err, "Failed to cache account data")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"connected":   true,
		"locationId":  account.LocationID,
		"companyId":   account.CompanyID,
		"name":        account.Name,
		"address":     account.Address,
		"timezone":    account.Timezone,
		"country":     account.Country,
		"tokenExpiry": token.ExpiresInMinutes(time.Now()),
		"accessToken": token.MaskedAccessToken(),
	})
}

// HandleDisconnect ends every stored session. Deletion is best effort per
// location; partial failure reports 207 with the tally instead of aborting.
func (ac *AuthController) HandleDisconnect(c *fiber.Ctx) error {
	all, err := ac.tokens.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to disconnect",
		})
	}

	succeeded, failed := 0, 0
	for locationID := range all {
		if err := ac.deleteLocation(locationID); err != nil {
			failed++
			log.Printf("[auth] failed to disconnect location %s: %v", locationID, err)
			continue
		}
		succeeded++
		log.Printf("[auth] successfully disconnected location: %s", locationID)
	}

	allSuccessful := failed == 0
	status := fiber.StatusOK
	message := "Successfully disconnected"
	if !allSuccessful {
		message = "Disconnect completed with errors"
		if succeeded > 0 {
			status = fiber.StatusMultiStatus
		} else {
			status = fiber.StatusInternalServerError
		}
	}

	return c.Status(status).JSON(fiber.Map{
		"success": allSuccessful,
		"message": message,
		"details": fiber.Map{"success": succeeded, "failed": failed},
	})
}

func (ac *AuthController) deleteLocation(locationID string) error {
	if err := ac.tokens.Delete(locationID); err != nil {
		return err
	}
	return ac.accounts.Delete(locationID)
}
