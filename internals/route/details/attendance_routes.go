package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	checkinRoute "schoolku_backend/internals/features/attendance/teacher_checkin/route"
)

func AttendanceRoutes(r fiber.Router, db *gorm.DB, cfg *configs.Config) {
	checkinRoute.CheckinRoutes(r, db, cfg)
}
