package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	teacherDTO "schoolku_backend/internals/features/people/teachers/dto"
	teacherModel "schoolku_backend/internals/features/people/teachers/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type TeacherController struct {
	DB *gorm.DB
}

// POST /api/a/:school_id/teachers
func (h *TeacherController) CreateTeacher(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}

	var req teacherDTO.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidPayload)
	}
	req.Normalize()
	if req.StaffNo == "" {
		// staff numbers are school-scoped; timestamp suffix keeps generated ones unique
		req.StaffNo = fmt.Sprintf("T-%d", time.Now().UnixMilli())
	}
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	m := req.ToModel(schoolID)
	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&teacherModel.TeacherModel{}).
			Where("teacher_user_id = ?", req.UserID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, constants.MsgTeacherUserLinked)
		}

		cnt = 0
		if err := tx.Model(&teacherModel.TeacherModel{}).
			Where("teacher_school_id = ? AND lower(teacher_staff_no) = lower(?)", schoolID, req.StaffNo).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, constants.MsgStaffNoTaken)
		}

		if err := tx.Create(&m).Error; err != nil {
			if isUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, constants.MsgStaffNoTaken)
			}
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, constants.MsgTeacherCreated, teacherDTO.FromTeacherModel(m))
}

// GET /api/a/:school_id/teachers
func (h *TeacherController) ListTeachers(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}

	var q teacherDTO.ListTeacherQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidQuery)
	}
	paging := helper.ResolvePaging(c, 20, 200)

	tx := h.DB.WithContext(c.UserContext()).Model(&teacherModel.TeacherModel{}).
		Where("teacher_school_id = ?", schoolID)
	if q.Active != nil {
		tx = tx.Where("teacher_is_active = ?", *q.Active)
	}
	if q.Q != nil && strings.TrimSpace(*q.Q) != "" {
		kw := "%" + strings.ToLower(strings.TrimSpace(*q.Q)) + "%"
		tx = tx.Where("lower(teacher_staff_no) LIKE ?", kw)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}

	var rows []teacherModel.TeacherModel
	if err := tx.Order("teacher_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}

	return helper.JsonList(c, "", teacherDTO.FromTeacherModels(rows),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/a/:school_id/teachers/:id
func (h *TeacherController) GetTeacher(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidID)
	}

	var m teacherModel.TeacherModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("teacher_id = ? AND teacher_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, constants.MsgTeacherNotFound)
		}
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}
	return helper.JsonOK(c, "", teacherDTO.FromTeacherModel(m))
}

// PUT /api/a/:school_id/teachers/:id
func (h *TeacherController) UpdateTeacher(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidID)
	}

	var req teacherDTO.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidPayload)
	}
	req.Normalize()
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	var m teacherModel.TeacherModel
	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("teacher_id = ? AND teacher_school_id = ?", id, schoolID).
			First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, constants.MsgTeacherNotFound)
			}
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
		}

		if req.StaffNo != nil && !strings.EqualFold(*req.StaffNo, m.TeacherStaffNo) {
			var cnt int64
			if err := tx.Model(&teacherModel.TeacherModel{}).
				Where("teacher_school_id = ? AND lower(teacher_staff_no) = lower(?) AND teacher_id <> ?",
					schoolID, *req.StaffNo, id).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
			}
			if cnt > 0 {
				return fiber.NewError(fiber.StatusConflict, constants.MsgStaffNoTaken)
			}
		}

		req.Apply(&m)
		if err := tx.Save(&m).Error; err != nil {
			if isUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, constants.MsgStaffNoTaken)
			}
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonUpdated(c, constants.MsgTeacherUpdated, teacherDTO.FromTeacherModel(m))
}

// DELETE /api/a/:school_id/teachers/:id: deactivate, keep history.
func (h *TeacherController) DeactivateTeacher(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidID)
	}

	var m teacherModel.TeacherModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("teacher_id = ? AND teacher_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, constants.MsgTeacherNotFound)
		}
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}

	if err := h.DB.WithContext(c.UserContext()).Model(&m).
		Update("teacher_is_active", false).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}
	m.TeacherIsActive = false

	return helper.JsonUpdated(c, constants.MsgTeacherDeactivated, teacherDTO.FromTeacherModel(m))
}

func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
