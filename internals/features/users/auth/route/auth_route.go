package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	authController "schoolku_backend/internals/features/users/auth/controller"
	"schoolku_backend/internals/middlewares"
)

func AuthRoutes(r fiber.Router, db *gorm.DB, cfg *configs.Config) {
	ctl := &authController.AuthController{DB: db, Cfg: cfg}

	auth := r.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/register", ctl.Register)
}
