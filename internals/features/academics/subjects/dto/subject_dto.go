package dto

import (
	"strings"

	"github.com/google/uuid"

	m "schoolku_backend/internals/features/academics/subjects/model"
	helper "schoolku_backend/internals/helpers"
)

type CreateSubjectRequest struct {
	Code         string     `json:"code" validate:"required,min=1,max=40"`
	Name         string     `json:"name" validate:"required,min=1,max=120"`
	Desc         *string    `json:"desc"`
	DepartmentID *uuid.UUID `json:"department_id"`
	IsActive     *bool      `json:"is_active"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))
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

func (r CreateSubjectRequest) ToModel(schoolID uuid.UUID) m.SubjectModel {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return m.SubjectModel{
		SubjectSchoolID:     schoolID,
		SubjectDepartmentID: r.DepartmentID,
		SubjectCode:         r.Code,
		SubjectName:         r.Name,
		SubjectSlug:         helper.Slugify(r.Name, 160),
		SubjectDesc:         r.Desc,
		SubjectIsActive:     active,
	}
}

type UpdateSubjectRequest struct {
	Code         *string    `json:"code" validate:"omitempty,min=1,max=40"`
	Name         *string    `json:"name" validate:"omitempty,min=1,max=120"`
	Desc         *string    `json:"desc"`
	DepartmentID *uuid.UUID `json:"department_id"`
	IsActive     *bool      `json:"is_active"`
}

func (r *UpdateSubjectRequest) Normalize() {
	if r.Code != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.Code))
		r.Code = &v
	}
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		r.Name = &v
	}
	if r.Desc != nil {
		v := strings.TrimSpace(*r.Desc)
		r.Desc = &v
	}
}

// Apply copies set fields onto the row. Renames refresh the slug.
func (r UpdateSubjectRequest) Apply(row *m.SubjectModel) {
	if r.Code != nil {
		row.SubjectCode = *r.Code
	}
	if r.Name != nil {
		row.SubjectName = *r.Name
		row.SubjectSlug = helper.Slugify(*r.Name, 160)
	}
	if r.Desc != nil {
		row.SubjectDesc = r.Desc
	}
	if r.DepartmentID != nil {
		row.SubjectDepartmentID = r.DepartmentID
	}
	if r.IsActive != nil {
		row.SubjectIsActive = *r.IsActive
	}
}

type SubjectResponse struct {
	SubjectID    uuid.UUID  `json:"subject_id"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
	Code         string     `json:"code"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug"`
	Desc         *string    `json:"desc,omitempty"`
	IsActive     bool       `json:"is_active"`
}

func FromSubjectModel(s m.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectID:    s.SubjectID,
		DepartmentID: s.SubjectDepartmentID,
		Code:         s.SubjectCode,
		Name:         s.SubjectName,
		Slug:         s.SubjectSlug,
		Desc:         s.SubjectDesc,
		IsActive:     s.SubjectIsActive,
	}
}

func FromSubjectModels(rows []m.SubjectModel) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromSubjectModel(r))
	}
	return out
}
