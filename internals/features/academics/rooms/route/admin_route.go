package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	roomController "schoolku_backend/internals/features/academics/rooms/controller"
	"schoolku_backend/internals/features/academics/rooms/service"
	"schoolku_backend/internals/features/academics/rooms/store"
)

// RoomAdminRoutes: full room CRUD.
func RoomAdminRoutes(r fiber.Router, db *gorm.DB) {
	svc := service.NewRoomService(&store.GormRoomStore{DB: db})
	ctl := &roomController.RoomController{Service: svc}

	rooms := r.Group("/rooms")
	rooms.Post("/", ctl.CreateRoom)
	rooms.Get("/", ctl.ListRooms)
	rooms.Get("/:id", ctl.GetRoom)
	rooms.Put("/:id", ctl.UpdateRoom)
	rooms.Delete("/:id", ctl.DeleteRoom)
}
