package controller

import (
	"errors"

	"construction-deepwiki-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// sessionId pulls the id the session middleware stored on the request.
// The middleware runs on every route group, so the value is always set.
func sessionId(ctx *fiber.Ctx) string {
	return ctx.Locals("session_id").(string)
}

// httpStatus maps service sentinels onto client-facing statuses; the
// error middleware renders the envelope. Unmapped errors fall through
// to the 500 handler.
func httpStatus(err error) error {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return fiber.NewError(fiber.StatusUnauthorized, "Session expired, refresh to start a new one")
	case errors.Is(err, service.ErrNoSiteOpen),
		errors.Is(err, service.ErrNoPendingQuestion),
		errors.Is(err, service.ErrInvalidUpload):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrJobNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	default:
		return err
	}
}
