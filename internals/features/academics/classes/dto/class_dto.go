package dto

import (
	"strings"

	"github.com/google/uuid"

	m "schoolku_backend/internals/features/academics/classes/model"
)

type CreateClassRequest struct {
	Name         string     `json:"name" validate:"required,min=1,max=120"`
	Level        int        `json:"level" validate:"gte=0,lte=20"`
	DepartmentID *uuid.UUID `json:"department_id"`
}

func (r *CreateClassRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r CreateClassRequest) ToModel(schoolID uuid.UUID) m.ClassModel {
	return m.ClassModel{
		ClassSchoolID:     schoolID,
		ClassDepartmentID: r.DepartmentID,
		ClassName:         r.Name,
		ClassLevel:        r.Level,
	}
}

type UpdateClassRequest struct {
	Name         *string    `json:"name" validate:"omitempty,min=1,max=120"`
	Level        *int       `json:"level" validate:"omitempty,gte=0,lte=20"`
	DepartmentID *uuid.UUID `json:"department_id"`
}

func (r *UpdateClassRequest) Normalize() {
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		r.Name = &v
	}
}

func (r UpdateClassRequest) Apply(row *m.ClassModel) {
	if r.Name != nil {
		row.ClassName = *r.Name
	}
	if r.Level != nil {
		row.ClassLevel = *r.Level
	}
	if r.DepartmentID != nil {
		row.ClassDepartmentID = r.DepartmentID
	}
}

type CreateStreamRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=80"`
	Capacity *int   `json:"capacity" validate:"omitempty,gte=1,lte=500"`
}

func (r *CreateStreamRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r CreateStreamRequest) ToModel(classID uuid.UUID) m.ClassStreamModel {
	return m.ClassStreamModel{
		StreamClassID:  classID,
		StreamName:     r.Name,
		StreamCapacity: r.Capacity,
	}
}

type ClassResponse struct {
	ClassID      uuid.UUID  `json:"class_id"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
	Name         string     `json:"name"`
	Level        int        `json:"level"`
}

func FromClassModel(c m.ClassModel) ClassResponse {
	return ClassResponse{
		ClassID:      c.ClassID,
		DepartmentID: c.ClassDepartmentID,
		Name:         c.ClassName,
		Level:        c.ClassLevel,
	}
}

func FromClassModels(rows []m.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromClassModel(r))
	}
	return out
}

type StreamResponse struct {
	StreamID uuid.UUID `json:"stream_id"`
	ClassID  uuid.UUID `json:"class_id"`
	Name     string    `json:"name"`
	Capacity *int      `json:"capacity,omitempty"`
}

func FromStreamModel(s m.ClassStreamModel) StreamResponse {
	return StreamResponse{
		StreamID: s.StreamID,
		ClassID:  s.StreamClassID,
		Name:     s.StreamName,
		Capacity: s.StreamCapacity,
	}
}

func FromStreamModels(rows []m.ClassStreamModel) []StreamResponse {
	out := make([]StreamResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromStreamModel(r))
	}
	return out
}
