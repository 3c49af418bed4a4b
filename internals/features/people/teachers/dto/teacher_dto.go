package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "schoolku_backend/internals/features/people/teachers/model"
)

type CreateTeacherRequest struct {
	UserID       uuid.UUID  `json:"user_id" validate:"required"`
	StaffNo      string     `json:"staff_no" validate:"omitempty,min=1,max=40"`
	DepartmentID *uuid.UUID `json:"department_id"`
}

func (r *CreateTeacherRequest) Normalize() {
	r.StaffNo = strings.ToUpper(strings.TrimSpace(r.StaffNo))
}

func (r CreateTeacherRequest) ToModel(schoolID uuid.UUID) m.TeacherModel {
	return m.TeacherModel{
		TeacherSchoolID:     schoolID,
		TeacherUserID:       r.UserID,
		TeacherStaffNo:      r.StaffNo,
		TeacherDepartmentID: r.DepartmentID,
		TeacherIsActive:     true,
	}
}

type UpdateTeacherRequest struct {
	StaffNo      *string    `json:"staff_no" validate:"omitempty,min=1,max=40"`
	DepartmentID *uuid.UUID `json:"department_id"`
	IsActive     *bool      `json:"is_active"`
}

func (r *UpdateTeacherRequest) Normalize() {
	if r.StaffNo != nil {
		s := strings.ToUpper(strings.TrimSpace(*r.StaffNo))
		r.StaffNo = &s
	}
}

func (r UpdateTeacherRequest) Apply(t *m.TeacherModel) {
	if r.StaffNo != nil {
		t.TeacherStaffNo = *r.StaffNo
	}
	if r.DepartmentID != nil {
		t.TeacherDepartmentID = r.DepartmentID
	}
	if r.IsActive != nil {
		t.TeacherIsActive = *r.IsActive
	}
}

type ListTeacherQuery struct {
	Active *bool   `query:"active"`
	Q      *string `query:"q"`
}

// TeacherResponse is the exposed field allow-list.
type TeacherResponse struct {
	TeacherID    uuid.UUID  `json:"teacher_id"`
	UserID       uuid.UUID  `json:"user_id"`
	StaffNo      string     `json:"staff_no"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
}

func FromTeacherModel(t m.TeacherModel) TeacherResponse {
	return TeacherResponse{
		TeacherID:    t.TeacherID,
		UserID:       t.TeacherUserID,
		StaffNo:      t.TeacherStaffNo,
		DepartmentID: t.TeacherDepartmentID,
		IsActive:     t.TeacherIsActive,
		CreatedAt:    t.TeacherCreatedAt,
	}
}

func FromTeacherModels(rows []m.TeacherModel) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromTeacherModel(r))
	}
	return out
}
