package handler

import (
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/fibersentry/pkg/reqctx"
)

// CaptureMessage reports a message through the request's scope and returns
// the event ID. The event carries the request data the middleware attached.
func CaptureMessage(c fiber.Ctx) error {
	msg := c.Query("message")
	if msg == "" {
		return badRequest(c, "message query parameter is required")
	}

	hub := reqctx.HubOrCurrent(c.Context())
	eventID := hub.CaptureMessage(msg)
	if eventID == nil {
		return fiber.ErrInternalServerError
	}

	return ok(c, fiber.Map{"event_id": string(*eventID)})
}

// IdentifyUser attaches a user identity to the request's scope. Every event
// captured later in this request carries it; no other request sees it.
func IdentifyUser(c fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return badRequest(c, "id query parameter is required")
	}

	hub := reqctx.HubOrCurrent(c.Context())
	hub.Scope().SetUser(sentry.User{ID: id})

	return ok(c, fiber.Map{"user_id": id})
}

// Boom fails with an unhandled error so the full capture path can be
// exercised against a live DSN.
func Boom(c fiber.Ctx) error {
	return fmt.Errorf("boom: intentional failure for event reporting")
}

// Panic fails with a panic; the recover middleware turns it into a 500
// after the reporting middleware has captured it.
func Panic(c fiber.Ctx) error {
	panic("panic: intentional failure for event reporting")
}
