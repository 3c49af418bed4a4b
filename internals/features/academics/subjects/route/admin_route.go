package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectController "schoolku_backend/internals/features/academics/subjects/controller"
)

func SubjectAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &subjectController.SubjectController{DB: db}

	subjects := r.Group("/subjects")
	subjects.Post("/", ctl.CreateSubject)
	subjects.Get("/", ctl.ListSubjects)
	subjects.Get("/:id", ctl.GetSubject)
	subjects.Put("/:id", ctl.UpdateSubject)
	subjects.Delete("/:id", ctl.DeleteSubject)
}
