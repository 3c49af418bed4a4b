package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	sessionDTO "schoolku_backend/internals/features/academics/sessions/dto"
	sessionModel "schoolku_backend/internals/features/academics/sessions/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type SessionController struct {
	DB *gorm.DB
}

// POST /api/a/:school_id/academic-sessions
//
// When is_current is set the previous current session is unset in the
// same transaction, so at most one session per school is ever current.
func (h *SessionController) CreateSession(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}

	var req sessionDTO.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidPayload)
	}
	req.Normalize()
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}
	if start, end := req.Dates(); !start.Before(end) {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgSessionDatesWrong)
	}

	m := req.ToModel(schoolID)
	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&sessionModel.AcademicSessionModel{}).
			Where("session_school_id = ? AND lower(session_name) = lower(?)", schoolID, req.Name).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, constants.MsgSessionNameTaken)
		}

		if m.SessionIsCurrent {
			if err := unsetCurrentSession(tx, schoolID); err != nil {
				return err
			}
		}

		if err := tx.Create(&m).Error; err != nil {
			if isUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, constants.MsgSessionNameTaken)
			}
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, constants.MsgSessionCreated, sessionDTO.FromSessionModel(m))
}

// GET /api/a/:school_id/academic-sessions
func (h *SessionController) ListSessions(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 200)
	tx := h.DB.WithContext(c.UserContext()).Model(&sessionModel.AcademicSessionModel{}).
		Where("session_school_id = ?", schoolID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}

	var rows []sessionModel.AcademicSessionModel
	if err := tx.Order("session_start_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}

	return helper.JsonList(c, "", sessionDTO.FromSessionModels(rows),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/a/:school_id/academic-sessions/:id
func (h *SessionController) GetSession(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidID)
	}

	m, err := h.findSession(c, schoolID, id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", sessionDTO.FromSessionModel(*m))
}

// PUT /api/a/:school_id/academic-sessions/:id
func (h *SessionController) UpdateSession(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidID)
	}

	var req sessionDTO.UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidPayload)
	}
	req.Normalize()
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	var m sessionModel.AcademicSessionModel
	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ? AND session_school_id = ?", id, schoolID).
			First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, constants.MsgSessionNotFound)
			}
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
		}

		if req.Name != nil && !strings.EqualFold(*req.Name, m.SessionName) {
			var cnt int64
			if err := tx.Model(&sessionModel.AcademicSessionModel{}).
				Where("session_school_id = ? AND lower(session_name) = lower(?) AND session_id <> ?",
					schoolID, *req.Name, id).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
			}
			if cnt > 0 {
				return fiber.NewError(fiber.StatusConflict, constants.MsgSessionNameTaken)
			}
		}

		req.Apply(&m)
		if !m.SessionStartDate.Before(m.SessionEndDate) {
			return fiber.NewError(fiber.StatusBadRequest, constants.MsgSessionDatesWrong)
		}

		if err := tx.Save(&m).Error; err != nil {
			if isUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, constants.MsgSessionNameTaken)
			}
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonUpdated(c, constants.MsgSessionUpdated, sessionDTO.FromSessionModel(m))
}

// POST /api/a/:school_id/academic-sessions/:id/make-current
func (h *SessionController) MakeSessionCurrent(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidID)
	}

	var m sessionModel.AcademicSessionModel
	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ? AND session_school_id = ?", id, schoolID).
			First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, constants.MsgSessionNotFound)
			}
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
		}

		if err := unsetCurrentSession(tx, schoolID); err != nil {
			return err
		}

		m.SessionIsCurrent = true
		if err := tx.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonUpdated(c, constants.MsgSessionMadeCurrent, sessionDTO.FromSessionModel(m))
}

// DELETE /api/a/:school_id/academic-sessions/:id: soft delete.
func (h *SessionController) DeleteSession(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidID)
	}

	m, err := h.findSession(c, schoolID, id)
	if err != nil {
		return err
	}

	if err := h.DB.WithContext(c.UserContext()).Delete(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}

	return helper.JsonDeleted(c, constants.MsgSessionDeleted, sessionDTO.FromSessionModel(*m))
}

// POST /api/a/:school_id/academic-sessions/:id/terms
func (h *SessionController) CreateTerm(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidID)
	}

	var req sessionDTO.CreateTermRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidPayload)
	}
	req.Normalize()
	if err := helper.Validate().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFieldErrors(err))
	}

	m := req.ToModel(id)
	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var sess sessionModel.AcademicSessionModel
		if err := tx.Where("session_id = ? AND session_school_id = ?", id, schoolID).
			First(&sess).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, constants.MsgSessionNotFound)
			}
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
		}

		if m.TermStartDate.Before(sess.SessionStartDate) ||
			m.TermEndDate.After(sess.SessionEndDate) ||
			!m.TermStartDate.Before(m.TermEndDate) {
			return fiber.NewError(fiber.StatusBadRequest, constants.MsgTermDatesWrong)
		}

		var cnt int64
		if err := tx.Model(&sessionModel.AcademicTermModel{}).
			Where("term_session_id = ? AND lower(term_name) = lower(?)", id, req.Name).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, constants.MsgTermNameTaken)
		}

		if err := tx.Create(&m).Error; err != nil {
			if isUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, constants.MsgTermNameTaken)
			}
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, constants.MsgTermCreated, sessionDTO.FromTermModel(m))
}

// GET /api/a/:school_id/academic-sessions/:id/terms
func (h *SessionController) ListTerms(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromPath(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidID)
	}

	if _, err := h.findSession(c, schoolID, id); err != nil {
		return err
	}

	var rows []sessionModel.AcademicTermModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("term_session_id = ?", id).
		Order("term_start_date ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}

	return helper.JsonOK(c, "", sessionDTO.FromTermModels(rows))
}

func (h *SessionController) findSession(c *fiber.Ctx, schoolID, id uuid.UUID) (*sessionModel.AcademicSessionModel, error) {
	var m sessionModel.AcademicSessionModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("session_id = ? AND session_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, constants.MsgSessionNotFound)
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}
	return &m, nil
}

func unsetCurrentSession(tx *gorm.DB, schoolID uuid.UUID) error {
	if err := tx.Model(&sessionModel.AcademicSessionModel{}).
		Where("session_school_id = ? AND session_is_current = TRUE", schoolID).
		Update("session_is_current", false).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternal)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
