package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"schoolku_backend/internals/helpers/errs"
)

func TestKindOf(t *testing.T) {
	err := errs.New(errs.Conflict, "already checked in for the same date")
	assert.Equal(t, errs.Conflict, errs.KindOf(err))

	wrapped := fmt.Errorf("create checkin: %w", err)
	assert.Equal(t, errs.Conflict, errs.KindOf(wrapped))

	assert.Equal(t, errs.Kind(0), errs.KindOf(errors.New("plain")))
	assert.Equal(t, errs.Kind(0), errs.KindOf(nil))
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, fiber.StatusNotFound, errs.StatusOf(errs.NotFound))
	assert.Equal(t, fiber.StatusBadRequest, errs.StatusOf(errs.InvalidState))
	assert.Equal(t, fiber.StatusBadRequest, errs.StatusOf(errs.InvalidInput))
	assert.Equal(t, fiber.StatusConflict, errs.StatusOf(errs.Conflict))
	assert.Equal(t, fiber.StatusInternalServerError, errs.StatusOf(errs.Kind(0)))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	err := errs.Wrap(errs.Conflict, "room name already in use", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "room name already in use")
}
