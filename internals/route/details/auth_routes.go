package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	authRoute "schoolku_backend/internals/features/users/auth/route"
)

func AuthRoutes(r fiber.Router, db *gorm.DB, cfg *configs.Config) {
	authRoute.AuthRoutes(r, db, cfg)
}
