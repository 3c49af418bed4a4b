package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	paymentDTO "schoolku_backend/internals/features/finance/payments/dto"
	paymentModel "schoolku_backend/internals/features/finance/payments/model"
	"schoolku_backend/internals/features/finance/payments/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
	"schoolku_backend/internals/helpers/txscope"
)

type PaymentController struct {
	DB      *gorm.DB
	Service *service.PaymentService
}

// POST /api/a/:school_id/payments
//
// The insert runs inside one transaction so a rolled-back request leaves
// no partial payment row behind.
func (h *PaymentController) CreatePayment(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}

	var req paymentDTO.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidPayload)
	}
	req.Normalize()
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	var row *paymentModel.PaymentModel
	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var err error
		row, err = h.Service.Record(c.UserContext(), schoolID, req.ToInput(), txscope.Within(tx))
		return err
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, constants.MsgPaymentRecorded, paymentDTO.FromPaymentModel(*row))
}

// GET /api/a/:school_id/payments?from=&to=
func (h *PaymentController) ListPayments(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 200)
	rows, total, err := h.Service.List(c.UserContext(), schoolID,
		strings.TrimSpace(c.Query("from")), strings.TrimSpace(c.Query("to")),
		paging.Limit, paging.Offset)
	if err != nil {
		return err
	}

	return helper.JsonList(c, constants.MsgPaymentsFetched, paymentDTO.FromPaymentModels(rows),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/a/:school_id/payments/:id
func (h *PaymentController) GetPayment(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidID)
	}

	row, err := h.Service.Get(c.UserContext(), schoolID, id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", paymentDTO.FromPaymentModel(*row))
}
