package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	departmentController "schoolku_backend/internals/features/academics/departments/controller"
)

func DepartmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &departmentController.DepartmentController{DB: db}

	departments := r.Group("/departments")
	departments.Post("/", ctl.CreateDepartment)
	departments.Get("/", ctl.ListDepartments)
	departments.Get("/:id", ctl.GetDepartment)
	departments.Put("/:id", ctl.UpdateDepartment)
	departments.Delete("/:id", ctl.DeleteDepartment)
}
