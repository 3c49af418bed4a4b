package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
	roomDTO "schoolku_backend/internals/features/academics/rooms/dto"
	"schoolku_backend/internals/features/academics/rooms/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
	"schoolku_backend/internals/helpers/txscope"
)

type RoomController struct {
	Service *service.RoomService
}

// POST /api/a/:school_id/rooms
func (h *RoomController) CreateRoom(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}

	var req roomDTO.CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidPayload)
	}
	req.Normalize()
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	row := req.ToModel(schoolID)
	if err := h.Service.Create(c.UserContext(), &row, txscope.None()); err != nil {
		return err
	}

	return helper.JsonCreated(c, constants.MsgRoomCreated, roomDTO.FromRoomModel(row))
}

// GET /api/a/:school_id/rooms
func (h *RoomController) ListRooms(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 200)
	rows, total, err := h.Service.List(c.UserContext(), schoolID, c.Query("q"), paging.Limit, paging.Offset)
	if err != nil {
		return err
	}

	return helper.JsonList(c, "", roomDTO.FromRoomModels(rows),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/a/:school_id/rooms/:id
func (h *RoomController) GetRoom(c *fiber.Ctx) error {
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
	return helper.JsonOK(c, "", roomDTO.FromRoomModel(*row))
}

// PUT /api/a/:school_id/rooms/:id
func (h *RoomController) UpdateRoom(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidID)
	}

	var req roomDTO.UpdateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidPayload)
	}
	req.Normalize()
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	row, err := h.Service.Get(c.UserContext(), schoolID, id)
	if err != nil {
		return err
	}
	req.Apply(row)
	if err := h.Service.Update(c.UserContext(), row); err != nil {
		return err
	}

	return helper.JsonUpdated(c, constants.MsgRoomUpdated, roomDTO.FromRoomModel(*row))
}

// DELETE /api/a/:school_id/rooms/:id
func (h *RoomController) DeleteRoom(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidID)
	}

	row, err := h.Service.Delete(c.UserContext(), schoolID, id)
	if err != nil {
		return err
	}
	return helper.JsonDeleted(c, constants.MsgRoomDeleted, roomDTO.FromRoomModel(*row))
}
