package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentRoute "schoolku_backend/internals/features/people/students/route"
	teacherRoute "schoolku_backend/internals/features/people/teachers/route"
)

func PeopleAdminRoutes(r fiber.Router, db *gorm.DB) {
	teacherRoute.TeacherAdminRoutes(r, db)
	studentRoute.StudentAdminRoutes(r, db)
}
