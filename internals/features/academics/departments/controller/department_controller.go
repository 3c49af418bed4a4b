package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	departmentDTO "schoolku_backend/internals/features/academics/departments/dto"
	departmentModel "schoolku_backend/internals/features/academics/departments/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type DepartmentController struct {
	DB *gorm.DB
}

// POST /api/a/:school_id/departments
func (h *DepartmentController) CreateDepartment(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}

	var req departmentDTO.CreateDepartmentRequest
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
		if err := tx.Model(&departmentModel.DepartmentModel{}).
			Where("department_school_id = ? AND lower(department_name) = lower(?)", schoolID, req.Name).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, constants.MsgDepartmentNameTaken)
		}

		if err := tx.Create(&m).Error; err != nil {
			if isUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, constants.MsgDepartmentNameTaken)
			}
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, constants.MsgDepartmentCreated, departmentDTO.FromDepartmentModel(m))
}

// GET /api/a/:school_id/departments
func (h *DepartmentController) ListDepartments(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 200)
	tx := h.DB.WithContext(c.UserContext()).Model(&departmentModel.DepartmentModel{}).
		Where("department_school_id = ?", schoolID)
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("lower(department_name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}

	var rows []departmentModel.DepartmentModel
	if err := tx.Order("department_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}

	return helper.JsonList(c, "", departmentDTO.FromDepartmentModels(rows),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/a/:school_id/departments/:id
func (h *DepartmentController) GetDepartment(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidID)
	}

	var m departmentModel.DepartmentModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("department_id = ? AND department_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, constants.MsgDepartmentNotFound)
		}
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}
	return helper.JsonOK(c, "", departmentDTO.FromDepartmentModel(m))
}

// PUT /api/a/:school_id/departments/:id
func (h *DepartmentController) UpdateDepartment(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidID)
	}

	var req departmentDTO.UpdateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidPayload)
	}
	req.Normalize()
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	var m departmentModel.DepartmentModel
	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("department_id = ? AND department_school_id = ?", id, schoolID).
			First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, constants.MsgDepartmentNotFound)
			}
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
		}

		if req.Name != nil && !strings.EqualFold(*req.Name, m.DepartmentName) {
			var cnt int64
			if err := tx.Model(&departmentModel.DepartmentModel{}).
				Where("department_school_id = ? AND lower(department_name) = lower(?) AND department_id <> ?",
					schoolID, *req.Name, id).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
			}
			if cnt > 0 {
				return fiber.NewError(fiber.StatusConflict, constants.MsgDepartmentNameTaken)
			}
		}

		req.Apply(&m)
		if err := tx.Save(&m).Error; err != nil {
			if isUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, constants.MsgDepartmentNameTaken)
			}
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonUpdated(c, constants.MsgDepartmentUpdated, departmentDTO.FromDepartmentModel(m))
}

// DELETE /api/a/:school_id/departments/:id: soft delete.
func (h *DepartmentController) DeleteDepartment(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidID)
	}

	var m departmentModel.DepartmentModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("department_id = ? AND department_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, constants.MsgDepartmentNotFound)
		}
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}

	if err := h.DB.WithContext(c.UserContext()).Delete(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}

	return helper.JsonDeleted(c, constants.MsgDepartmentDeleted, departmentDTO.FromDepartmentModel(m))
}

func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
