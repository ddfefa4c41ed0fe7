package controllers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/alexandreventurin/AvalinxGHL/internal/pkg/apperror"
)

// statusForKind maps the error taxonomy onto HTTP statuses. Provider
// failures surface as plain 500s, the upstream message travels in details.
func statusForKind(kind apperror.Kind) int {
	switch kind {
	case apperror.KindValidation, apperror.KindPrecondition:
		return fiber.StatusBadRequest
	case apperror.KindNotFound:
		return fiber.StatusNotFound
	case apperror.KindSession:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError writes a classified error as JSON. Unclassified errors get
// the fallback message so internals never leak raw.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return c.Status(statusForKind(appErr.Kind)).JSON(appErr)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   fallback,
		"details": err.Error(),
	})
}

// parseAndValidate decodes the request body into out and runs struct
// validation on it.
func parseAndValidate(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return apperror.NewValidation("invalid request body", err.Error())
	}

	v := validator.New()
	if err := v.Struct(out); err != nil {
		return apperror.NewValidation("request validation failed", err.Error())
	}
	return nil
}
