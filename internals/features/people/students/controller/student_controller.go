package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	studentDTO "schoolku_backend/internals/features/people/students/dto"
	studentModel "schoolku_backend/internals/features/people/students/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type StudentController struct {
	DB *gorm.DB
}

// POST /api/a/:school_id/students: admission create.
func (h *StudentController) CreateStudent(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}

	var req studentDTO.CreateStudentRequest
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
		if err := tx.Model(&studentModel.StudentModel{}).
			Where("student_school_id = ? AND lower(student_admission_no) = lower(?)",
				schoolID, req.AdmissionNo).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, constants.MsgAdmissionNoTaken)
		}

		if err := tx.Create(&m).Error; err != nil {
			if isUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, constants.MsgAdmissionNoTaken)
			}
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, constants.MsgStudentCreated, studentDTO.FromStudentModel(m))
}

// GET /api/a/:school_id/students?q=&class_id=&stream_id=&active=
func (h *StudentController) ListStudents(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 200)
	tx := h.DB.WithContext(c.UserContext()).Model(&studentModel.StudentModel{}).
		Where("student_school_id = ?", schoolID)
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		needle := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("lower(student_full_name) LIKE ? OR lower(student_admission_no) LIKE ?", needle, needle)
	}
	if cls := strings.TrimSpace(c.Query("class_id")); cls != "" {
		classID, err := uuid.Parse(cls)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidQuery)
		}
		tx = tx.Where("student_class_id = ?", classID)
	}
	if str := strings.TrimSpace(c.Query("stream_id")); str != "" {
		streamID, err := uuid.Parse(str)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidQuery)
		}
		tx = tx.Where("student_stream_id = ?", streamID)
	}
	if act := strings.TrimSpace(c.Query("active")); act != "" {
		tx = tx.Where("student_is_active = ?", act == "true" || act == "1")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}

	var rows []studentModel.StudentModel
	if err := tx.Order("student_full_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}

	return helper.JsonList(c, "", studentDTO.FromStudentModels(rows),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/a/:school_id/students/:id
func (h *StudentController) GetStudent(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidID)
	}

	m, err := h.findStudent(c, schoolID, id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", studentDTO.FromStudentModel(*m))
}

// PUT /api/a/:school_id/students/:id
func (h *StudentController) UpdateStudent(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidID)
	}

	var req studentDTO.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidPayload)
	}
	req.Normalize()
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	m, err := h.findStudent(c, schoolID, id)
	if err != nil {
		return err
	}
	req.Apply(m)
	if err := h.DB.WithContext(c.UserContext()).Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}

	return helper.JsonUpdated(c, constants.MsgStudentUpdated, studentDTO.FromStudentModel(*m))
}

// DELETE /api/a/:school_id/students/:id: soft delete.
func (h *StudentController) DeleteStudent(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidID)
	}

	m, err := h.findStudent(c, schoolID, id)
	if err != nil {
		return err
	}

	if err := h.DB.WithContext(c.UserContext()).Delete(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}

	return helper.JsonDeleted(c, constants.MsgStudentDeleted, studentDTO.FromStudentModel(*m))
}

func (h *StudentController) findStudent(c *fiber.Ctx, schoolID, id uuid.UUID) (*studentModel.StudentModel, error) {
	var m studentModel.StudentModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("student_id = ? AND student_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, constants.MsgStudentNotFound)
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}
	return &m, nil
}

func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
