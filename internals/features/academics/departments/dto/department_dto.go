package dto

import (
	"strings"

	"github.com/google/uuid"

	m "schoolku_backend/internals/features/academics/departments/model"
)

type CreateDepartmentRequest struct {
	Name string  `json:"name" validate:"required,min=1,max=120"`
	Desc *string `json:"desc"`
}

func (r *CreateDepartmentRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	if r.Desc != nil {
		d := strings.TrimSpace(*r.Desc)
		if d == "" {
			r.Desc = nil
		} else {
			r.Desc = &d
		}
	}
}

func (r CreateDepartmentRequest) ToModel(schoolID uuid.UUID) m.DepartmentModel {
	return m.DepartmentModel{
		DepartmentSchoolID: schoolID,
		DepartmentName:     r.Name,
		DepartmentDesc:     r.Desc,
	}
}

type UpdateDepartmentRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=120"`
	Desc *string `json:"desc"`
}

func (r *UpdateDepartmentRequest) Normalize() {
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		r.Name = &v
	}
	if r.Desc != nil {
		v := strings.TrimSpace(*r.Desc)
		r.Desc = &v
	}
}

func (r UpdateDepartmentRequest) Apply(row *m.DepartmentModel) {
	if r.Name != nil {
		row.DepartmentName = *r.Name
	}
	if r.Desc != nil {
		row.DepartmentDesc = r.Desc
	}
}

type DepartmentResponse struct {
	DepartmentID uuid.UUID `json:"department_id"`
	Name         string    `json:"name"`
	Desc         *string   `json:"desc,omitempty"`
}

func FromDepartmentModel(d m.DepartmentModel) DepartmentResponse {
	return DepartmentResponse{
		DepartmentID: d.DepartmentID,
		Name:         d.DepartmentName,
		Desc:         d.DepartmentDesc,
	}
}

func FromDepartmentModels(rows []m.DepartmentModel) []DepartmentResponse {
	out := make([]DepartmentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromDepartmentModel(r))
	}
	return out
}
