package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionController "schoolku_backend/internals/features/academics/sessions/controller"
)

func SessionAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &sessionController.SessionController{DB: db}

	sessions := r.Group("/academic-sessions")
	sessions.Post("/", ctl.CreateSession)
	sessions.Get("/", ctl.ListSessions)
	sessions.Get("/:id", ctl.GetSession)
	sessions.Put("/:id", ctl.UpdateSession)
	sessions.Delete("/:id", ctl.DeleteSession)
	sessions.Post("/:id/make-current", ctl.MakeSessionCurrent)
	sessions.Post("/:id/terms", ctl.CreateTerm)
	sessions.Get("/:id/terms", ctl.ListTerms)
}
