package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DepartmentModel struct {
	DepartmentID       uuid.UUID `gorm:"column:department_id;type:uuid;default:gen_random_uuid();primaryKey" json:"department_id"`
	DepartmentSchoolID uuid.UUID `gorm:"column:department_school_id;type:uuid;not null;index" json:"department_school_id"`

	DepartmentName string  `gorm:"column:department_name;type:varchar(120);not null" json:"department_name"`
	DepartmentDesc *string `gorm:"column:department_desc;type:text" json:"department_desc,omitempty"`

	DepartmentCreatedAt time.Time      `gorm:"column:department_created_at;not null;autoCreateTime" json:"department_created_at"`
	DepartmentUpdatedAt time.Time      `gorm:"column:department_updated_at;not null;autoUpdateTime" json:"department_updated_at"`
	DepartmentDeletedAt gorm.DeletedAt `gorm:"column:department_deleted_at;index" json:"department_deleted_at,omitempty"`
}

func (DepartmentModel) TableName() string { return "departments" }
