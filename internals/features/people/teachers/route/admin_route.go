package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherController "schoolku_backend/internals/features/people/teachers/controller"
)

// TeacherAdminRoutes: full teacher CRUD.
// Mount: TeacherAdminRoutes(app.Group("/api/a/:school_id"), db)
func TeacherAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &teacherController.TeacherController{DB: db}

	teachers := r.Group("/teachers")
	teachers.Post("/", ctl.CreateTeacher)
	teachers.Get("/", ctl.ListTeachers)
	teachers.Get("/:id", ctl.GetTeacher)
	teachers.Put("/:id", ctl.UpdateTeacher)
	teachers.Delete("/:id", ctl.DeactivateTeacher)
}
