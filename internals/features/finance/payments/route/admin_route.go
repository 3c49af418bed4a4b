package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	paymentController "schoolku_backend/internals/features/finance/payments/controller"
	"schoolku_backend/internals/features/finance/payments/service"
	"schoolku_backend/internals/features/finance/payments/store"
)

// PaymentAdminRoutes mounts the fee-payment endpoints. An empty Midtrans
// server key leaves the gateway step disabled.
func PaymentAdminRoutes(r fiber.Router, db *gorm.DB, cfg *configs.Config) {
	var gw service.Gateway
	if cfg.MidtransServerKey != "" {
		gw = service.NewMidtransGateway(cfg.MidtransServerKey, cfg.MidtransUseProd)
	}

	svc := service.NewPaymentService(
		&store.GormStudentResolver{DB: db},
		&store.GormPaymentStore{DB: db},
		gw,
		cfg.Timezone,
	)
	ctl := &paymentController.PaymentController{DB: db, Service: svc}

	payments := r.Group("/payments")
	payments.Post("/", ctl.CreatePayment)
	payments.Get("/", ctl.ListPayments)
	payments.Get("/:id", ctl.GetPayment)
}
