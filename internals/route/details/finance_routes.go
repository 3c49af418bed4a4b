package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	paymentRoute "schoolku_backend/internals/features/finance/payments/route"
)

func FinanceAdminRoutes(r fiber.Router, db *gorm.DB, cfg *configs.Config) {
	paymentRoute.PaymentAdminRoutes(r, db, cfg)
}
