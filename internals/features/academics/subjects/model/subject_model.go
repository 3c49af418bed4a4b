package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectModel struct {
	SubjectID           uuid.UUID  `gorm:"column:subject_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subject_id"`
	SubjectSchoolID     uuid.UUID  `gorm:"column:subject_school_id;type:uuid;not null;index" json:"subject_school_id"`
	SubjectDepartmentID *uuid.UUID `gorm:"column:subject_department_id;type:uuid" json:"subject_department_id,omitempty"`

	SubjectCode string  `gorm:"column:subject_code;type:varchar(40);not null" json:"subject_code"`
	SubjectName string  `gorm:"column:subject_name;type:varchar(120);not null" json:"subject_name"`
	SubjectSlug string  `gorm:"column:subject_slug;type:varchar(160);not null" json:"subject_slug"`
	SubjectDesc *string `gorm:"column:subject_desc;type:text" json:"subject_desc,omitempty"`

	SubjectIsActive bool `gorm:"column:subject_is_active;not null;default:true" json:"subject_is_active"`

	SubjectCreatedAt time.Time      `gorm:"column:subject_created_at;not null;autoCreateTime" json:"subject_created_at"`
	SubjectUpdatedAt time.Time      `gorm:"column:subject_updated_at;not null;autoUpdateTime" json:"subject_updated_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index" json:"subject_deleted_at,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }
