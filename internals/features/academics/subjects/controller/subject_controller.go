package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	departmentModel "schoolku_backend/internals/features/academics/departments/model"
	subjectDTO "schoolku_backend/internals/features/academics/subjects/dto"
	subjectModel "schoolku_backend/internals/features/academics/subjects/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type SubjectController struct {
	DB *gorm.DB
}

// POST /api/a/:school_id/subjects
//
// Code and name are each unique per school (case-insensitive). Both are
// pre-checked inside the insert transaction; the partial unique indexes
// catch anything that races past the pre-check.
func (h *SubjectController) CreateSubject(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}

	var req subjectDTO.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidPayload)
	}
	req.Normalize()
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	m := req.ToModel(schoolID)
	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if req.DepartmentID != nil {
			var cnt int64
			if err := tx.Model(&departmentModel.DepartmentModel{}).
				Where("department_id = ? AND department_school_id = ?", *req.DepartmentID, schoolID).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
			}
			if cnt == 0 {
				return fiber.NewError(fiber.StatusNotFound, constants.MsgDepartmentNotFound)
			}
		}

		if err := subjectCodeOrNameTaken(tx, schoolID, req.Code, req.Name, uuid.Nil); err != nil {
			return err
		}

		if err := tx.Create(&m).Error; err != nil {
			if isUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, constants.MsgSubjectCodeTaken)
			}
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, constants.MsgSubjectCreated, subjectDTO.FromSubjectModel(m))
}

// GET /api/a/:school_id/subjects
func (h *SubjectController) ListSubjects(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 200)
	tx := h.DB.WithContext(c.UserContext()).Model(&subjectModel.SubjectModel{}).
		Where("subject_school_id = ?", schoolID)
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		needle := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("lower(subject_name) LIKE ? OR lower(subject_code) LIKE ?", needle, needle)
	}
	if dep := strings.TrimSpace(c.Query("department_id")); dep != "" {
		depID, err := uuid.Parse(dep)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidQuery)
		}
		tx = tx.Where("subject_department_id = ?", depID)
	}
	if act := strings.TrimSpace(c.Query("active")); act != "" {
		tx = tx.Where("subject_is_active = ?", act == "true" || act == "1")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}

	var rows []subjectModel.SubjectModel
	if err := tx.Order("subject_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}

	return helper.JsonList(c, "", subjectDTO.FromSubjectModels(rows),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/a/:school_id/subjects/:id
func (h *SubjectController) GetSubject(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidID)
	}

	var m subjectModel.SubjectModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("subject_id = ? AND subject_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, constants.MsgSubjectNotFound)
		}
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}
	return helper.JsonOK(c, "", subjectDTO.FromSubjectModel(m))
}

// PUT /api/a/:school_id/subjects/:id
func (h *SubjectController) UpdateSubject(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidID)
	}

	var req subjectDTO.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidPayload)
	}
	req.Normalize()
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	var m subjectModel.SubjectModel
	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("subject_id = ? AND subject_school_id = ?", id, schoolID).
			First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, constants.MsgSubjectNotFound)
			}
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
		}

		code, name := m.SubjectCode, m.SubjectName
		if req.Code != nil {
			code = *req.Code
		}
		if req.Name != nil {
			name = *req.Name
		}
		if err := subjectCodeOrNameTaken(tx, schoolID, code, name, id); err != nil {
			return err
		}

		req.Apply(&m)
		if err := tx.Save(&m).Error; err != nil {
			if isUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, constants.MsgSubjectCodeTaken)
			}
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonUpdated(c, constants.MsgSubjectUpdated, subjectDTO.FromSubjectModel(m))
}

// DELETE /api/a/:school_id/subjects/:id: soft delete.
func (h *SubjectController) DeleteSubject(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidID)
	}

	var m subjectModel.SubjectModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("subject_id = ? AND subject_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, constants.MsgSubjectNotFound)
		}
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}

	if err := h.DB.WithContext(c.UserContext()).Delete(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}

	return helper.JsonDeleted(c, constants.MsgSubjectDeleted, subjectDTO.FromSubjectModel(m))
}

func subjectCodeOrNameTaken(tx *gorm.DB, schoolID uuid.UUID, code, name string, excludeID uuid.UUID) error {
	var cnt int64
	if err := tx.Model(&subjectModel.SubjectModel{}).
		Where("subject_school_id = ? AND lower(subject_code) = lower(?) AND subject_id <> ?",
			schoolID, code, excludeID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}
	if cnt > 0 {
		return fiber.NewError(fiber.StatusConflict, constants.MsgSubjectCodeTaken)
	}

	if err := tx.Model(&subjectModel.SubjectModel{}).
		Where("subject_school_id = ? AND lower(subject_name) = lower(?) AND subject_id <> ?",
			schoolID, name, excludeID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}
	if cnt > 0 {
		return fiber.NewError(fiber.StatusConflict, constants.MsgSubjectNameTaken)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
