package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "schoolku_backend/internals/features/people/students/controller"
)

func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &studentController.StudentController{DB: db}

	students := r.Group("/students")
	students.Post("/", ctl.CreateStudent)
	students.Get("/", ctl.ListStudents)
	students.Get("/:id", ctl.GetStudent)
	students.Put("/:id", ctl.UpdateStudent)
	students.Delete("/:id", ctl.DeleteStudent)
}
