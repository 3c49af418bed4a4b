package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/constants"
	checkinDTO "schoolku_backend/internals/features/attendance/teacher_checkin/dto"
	"schoolku_backend/internals/features/attendance/teacher_checkin/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
	"schoolku_backend/internals/helpers/txscope"
)

type CheckinController struct {
	Service *service.CheckinService
}

// POST /api/a/:school_id/attendance/teacher/manual-checkin
func (h *CheckinController) ManualCheckin(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req checkinDTO.ManualCheckinRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidPayload)
	}
	req.Normalize()
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	row, err := h.Service.ManualCheckin(c.UserContext(), schoolID, userID, service.ManualCheckinInput{
		Date:        req.Date,
		CheckInTime: req.CheckInTime,
		Reason:      req.Reason,
	}, txscope.None())
	if err != nil {
		return err
	}

	return helper.JsonCreated(c, constants.MsgCheckinCreated, checkinDTO.FromCheckinModel(*row))
}

// GET /api/a/:school_id/attendance/teacher/manual-checkin
func (h *CheckinController) ListOwnCheckins(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 200)
	rows, total, err := h.Service.ListOwn(c.UserContext(), schoolID, userID, paging.Limit, paging.Offset)
	if err != nil {
		return err
	}

	return helper.JsonList(c, constants.MsgCheckinListFetched,
		checkinDTO.FromCheckinModels(rows),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/a/:school_id/attendance/teacher/manual-checkin/date/:date
func (h *CheckinController) ListCheckinsForDate(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}

	date := strings.TrimSpace(c.Params("date"))
	rows, err := h.Service.ListForDate(c.UserContext(), schoolID, date)
	if err != nil {
		return err
	}

	return helper.JsonOK(c, constants.MsgCheckinListFetched, checkinDTO.FromCheckinModels(rows))
}
