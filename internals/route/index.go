// Package routes wires every feature mount point onto the app. Two outer
// groups: /api (public auth) and /api/a/:school_id (school scope; the
// path school id must match the token, enforced per handler).
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/constants"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
	routeDetails "schoolku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) {
	startTime = time.Now()

	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app.Group("/api"), db, cfg)

	// ===================== SCHOOL SCOPE =====================
	log.Println("[INFO] Setting up SCHOOL group (Auth + RoleCheck)...")
	school := app.Group("/api/a/:school_id",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              cfg.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMiddleware.RequireRoles(constants.TeacherAndAbove...),
	)

	log.Println("[INFO] Mounting Attendance routes...")
	routeDetails.AttendanceRoutes(school, db, cfg)

	// admin-only management surface inside the same scope
	admin := school.Group("", authMiddleware.RequireRoles(constants.AdminOnly...))

	log.Println("[INFO] Mounting Academics routes...")
	routeDetails.AcademicsAdminRoutes(admin, db)

	log.Println("[INFO] Mounting People routes...")
	routeDetails.PeopleAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Finance routes...")
	routeDetails.FinanceAdminRoutes(admin, db, cfg)
}
