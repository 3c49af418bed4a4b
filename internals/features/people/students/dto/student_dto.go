package dto

import (
	"strings"

	"github.com/google/uuid"

	m "schoolku_backend/internals/features/people/students/model"
)

type CreateStudentRequest struct {
	AdmissionNo string     `json:"admission_no" validate:"required,min=1,max=40"`
	FullName    string     `json:"full_name" validate:"required,min=1,max=160"`
	ClassID     *uuid.UUID `json:"class_id"`
	StreamID    *uuid.UUID `json:"stream_id"`
}

func (r *CreateStudentRequest) Normalize() {
	r.AdmissionNo = strings.ToUpper(strings.TrimSpace(r.AdmissionNo))
	r.FullName = strings.TrimSpace(r.FullName)
}

func (r CreateStudentRequest) ToModel(schoolID uuid.UUID) m.StudentModel {
	return m.StudentModel{
		StudentSchoolID:    schoolID,
		StudentAdmissionNo: r.AdmissionNo,
		StudentFullName:    r.FullName,
		StudentClassID:     r.ClassID,
		StudentStreamID:    r.StreamID,
		StudentIsActive:    true,
	}
}

type UpdateStudentRequest struct {
	FullName *string    `json:"full_name" validate:"omitempty,min=1,max=160"`
	ClassID  *uuid.UUID `json:"class_id"`
	StreamID *uuid.UUID `json:"stream_id"`
	IsActive *bool      `json:"is_active"`
}

func (r *UpdateStudentRequest) Normalize() {
	if r.FullName != nil {
		v := strings.TrimSpace(*r.FullName)
		r.FullName = &v
	}
}

func (r UpdateStudentRequest) Apply(row *m.StudentModel) {
	if r.FullName != nil {
		row.StudentFullName = *r.FullName
	}
	if r.ClassID != nil {
		row.StudentClassID = r.ClassID
	}
	if r.StreamID != nil {
		row.StudentStreamID = r.StreamID
	}
	if r.IsActive != nil {
		row.StudentIsActive = *r.IsActive
	}
}

type StudentResponse struct {
	StudentID   uuid.UUID  `json:"student_id"`
	AdmissionNo string     `json:"admission_no"`
	FullName    string     `json:"full_name"`
	ClassID     *uuid.UUID `json:"class_id,omitempty"`
	StreamID    *uuid.UUID `json:"stream_id,omitempty"`
	IsActive    bool       `json:"is_active"`
}

func FromStudentModel(s m.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:   s.StudentID,
		AdmissionNo: s.StudentAdmissionNo,
		FullName:    s.StudentFullName,
		ClassID:     s.StudentClassID,
		StreamID:    s.StudentStreamID,
		IsActive:    s.StudentIsActive,
	}
}

func FromStudentModels(rows []m.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromStudentModel(r))
	}
	return out
}
