package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classRoute "schoolku_backend/internals/features/academics/classes/route"
	departmentRoute "schoolku_backend/internals/features/academics/departments/route"
	roomRoute "schoolku_backend/internals/features/academics/rooms/route"
	sessionRoute "schoolku_backend/internals/features/academics/sessions/route"
	subjectRoute "schoolku_backend/internals/features/academics/subjects/route"
)

func AcademicsAdminRoutes(r fiber.Router, db *gorm.DB) {
	sessionRoute.SessionAdminRoutes(r, db)
	departmentRoute.DepartmentAdminRoutes(r, db)
	subjectRoute.SubjectAdminRoutes(r, db)
	classRoute.ClassAdminRoutes(r, db)
	roomRoute.RoomAdminRoutes(r, db)
}
