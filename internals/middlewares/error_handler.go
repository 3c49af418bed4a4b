package middlewares

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/constants"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/errs"
)

// ErrorHandler is the single boundary that maps errors to responses:
// domain kinds get their taxonomy status, fiber errors pass through, and
// anything else becomes an opaque 500 (no internals leak to the client).
func ErrorHandler(c *fiber.Ctx, err error) error {
	var de *errs.Error
	if errors.As(err, &de) {
		log.Printf("[WARN] %s %s → %d %s", c.Method(), c.Path(), errs.StatusOf(de.Kind), de.Message)
		return helper.JsonError(c, errs.StatusOf(de.Kind), de.Message)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	log.Printf("[ERROR] %s %s → 500 %v", c.Method(), c.Path(), err)
	return helper.JsonError(c, fiber.StatusInternalServerError, constants.MsgInternal)
}
