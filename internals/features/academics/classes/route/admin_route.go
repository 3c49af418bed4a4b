package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classController "schoolku_backend/internals/features/academics/classes/controller"
)

func ClassAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &classController.ClassController{DB: db}

	classes := r.Group("/classes")
	classes.Post("/", ctl.CreateClass)
	classes.Get("/", ctl.ListClasses)
	classes.Get("/:id", ctl.GetClass)
	classes.Put("/:id", ctl.UpdateClass)
	classes.Delete("/:id", ctl.DeleteClass)
	classes.Post("/:id/streams", ctl.CreateStream)
	classes.Get("/:id/streams", ctl.ListStreams)
}
