package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/constants"
	checkinController "schoolku_backend/internals/features/attendance/teacher_checkin/controller"
	"schoolku_backend/internals/features/attendance/teacher_checkin/service"
	"schoolku_backend/internals/features/attendance/teacher_checkin/store"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// CheckinRoutes mounts the manual check-in endpoints.
// Mount: CheckinRoutes(app.Group("/api/a/:school_id"), db, cfg)
func CheckinRoutes(r fiber.Router, db *gorm.DB, cfg *configs.Config) {
	svc := service.NewCheckinService(
		&store.GormTeacherResolver{DB: db},
		&store.GormCheckinStore{DB: db},
		service.Window{StartHour: cfg.AttendanceStartHour, EndHour: cfg.AttendanceEndHour},
		cfg.Timezone,
	)
	ctl := &checkinController.CheckinController{Service: svc}

	checkin := r.Group("/attendance/teacher/manual-checkin")
	checkin.Post("/", ctl.ManualCheckin)
	checkin.Get("/", ctl.ListOwnCheckins)
	checkin.Get("/date/:date",
		authMiddleware.RequireRoles(constants.AdminOnly...),
		ctl.ListCheckinsForDate)
}
