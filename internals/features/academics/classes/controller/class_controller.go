package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	classDTO "schoolku_backend/internals/features/academics/classes/dto"
	classModel "schoolku_backend/internals/features/academics/classes/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type ClassController struct {
	DB *gorm.DB
}

// POST /api/a/:school_id/classes
func (h *ClassController) CreateClass(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}

	var req classDTO.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidPayload)
	}
	req.Normalize()
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	m := req.ToModel(schoolID)
	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&classModel.ClassModel{}).
			Where("class_school_id = ? AND lower(class_name) = lower(?)", schoolID, req.Name).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, constants.MsgClassNameTaken)
		}

		if err := tx.Create(&m).Error; err != nil {
			if isUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, constants.MsgClassNameTaken)
			}
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, constants.MsgClassCreated, classDTO.FromClassModel(m))
}

// GET /api/a/:school_id/classes
func (h *ClassController) ListClasses(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 200)
	tx := h.DB.WithContext(c.UserContext()).Model(&classModel.ClassModel{}).
		Where("class_school_id = ?", schoolID)
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("lower(class_name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}

	var rows []classModel.ClassModel
	if err := tx.Order("class_level ASC, class_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}

	return helper.JsonList(c, "", classDTO.FromClassModels(rows),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/a/:school_id/classes/:id
func (h *ClassController) GetClass(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidID)
	}

	m, err := h.findClass(c, schoolID, id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", classDTO.FromClassModel(*m))
}

// PUT /api/a/:school_id/classes/:id
func (h *ClassController) UpdateClass(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidID)
	}

	var req classDTO.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidPayload)
	}
	req.Normalize()
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	var m classModel.ClassModel
	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("class_id = ? AND class_school_id = ?", id, schoolID).
			First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, constants.MsgClassNotFound)
			}
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
		}

		if req.Name != nil && !strings.EqualFold(*req.Name, m.ClassName) {
			var cnt int64
			if err := tx.Model(&classModel.ClassModel{}).
				Where("class_school_id = ? AND lower(class_name) = lower(?) AND class_id <> ?",
					schoolID, *req.Name, id).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
			}
			if cnt > 0 {
				return fiber.NewError(fiber.StatusConflict, constants.MsgClassNameTaken)
			}
		}

		req.Apply(&m)
		if err := tx.Save(&m).Error; err != nil {
			if isUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, constants.MsgClassNameTaken)
			}
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonUpdated(c, constants.MsgClassUpdated, classDTO.FromClassModel(m))
}

// DELETE /api/a/:school_id/classes/:id: soft delete.
func (h *ClassController) DeleteClass(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidID)
	}

	m, err := h.findClass(c, schoolID, id)
	if err != nil {
		return err
	}

	if err := h.DB.WithContext(c.UserContext()).Delete(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}

	return helper.JsonDeleted(c, constants.MsgClassDeleted, classDTO.FromClassModel(*m))
}

// POST /api/a/:school_id/classes/:id/streams
func (h *ClassController) CreateStream(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidID)
	}

	var req classDTO.CreateStreamRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidPayload)
	}
	req.Normalize()
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	m := req.ToModel(id)
	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&classModel.ClassModel{}).
			Where("class_id = ? AND class_school_id = ?", id, schoolID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, constants.MsgClassNotFound)
		}

		if err := tx.Model(&classModel.ClassStreamModel{}).
			Where("stream_class_id = ? AND lower(stream_name) = lower(?)", id, req.Name).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, constants.MsgStreamNameTaken)
		}

		if err := tx.Create(&m).Error; err != nil {
			if isUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, constants.MsgStreamNameTaken)
			}
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, constants.MsgStreamCreated, classDTO.FromStreamModel(m))
}

// GET /api/a/:school_id/classes/:id/streams
func (h *ClassController) ListStreams(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidID)
	}

	if _, err := h.findClass(c, schoolID, id); err != nil {
		return err
	}

	var rows []classModel.ClassStreamModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("stream_class_id = ?", id).
		Order("stream_name ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}

	return helper.JsonOK(c, "", classDTO.FromStreamModels(rows))
}

func (h *ClassController) findClass(c *fiber.Ctx, schoolID, id uuid.UUID) (*classModel.ClassModel, error) {
	var m classModel.ClassModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("class_id = ? AND class_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, constants.MsgClassNotFound)
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}
	return &m, nil
}

func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
