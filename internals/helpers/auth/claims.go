// Package helperAuth reads the identity the JWT middleware hydrated into
// fiber locals. Controllers never touch raw claims.
package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	LocUserID   = "user_id"
	LocSchoolID = "school_id"
	LocRole     = "role"
)

// GetUserIDFromToken returns the authenticated user's id.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, LocUserID)
}

// GetSchoolIDFromToken returns the tenant the token is scoped to.
func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, LocSchoolID)
}

// GetSchoolIDFromPath resolves the tenant from the :school_id path segment
// and rejects a mismatch with the token scope. Every scoped route goes
// through this so a token can never write into another school.
func GetSchoolIDFromPath(c *fiber.Ctx) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params("school_id"))
	pathID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid school id")
	}
	tokenID, err := GetSchoolIDFromToken(c)
	if err != nil {
		return uuid.Nil, err
	}
	if pathID != tokenID {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Token is not scoped to this school")
	}
	return pathID, nil
}

// GetRoleFromToken returns the role claim ("" when absent).
func GetRoleFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocRole).(string); ok {
		return v
	}
	return ""
}

func localUUID(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	return id, nil
}
