package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherModel struct {
	TeacherID       uuid.UUID `gorm:"column:teacher_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_id"`
	TeacherSchoolID uuid.UUID `gorm:"column:teacher_school_id;type:uuid;not null;index" json:"teacher_school_id"`
	TeacherUserID   uuid.UUID `gorm:"column:teacher_user_id;type:uuid;not null" json:"teacher_user_id"`

	TeacherStaffNo      string     `gorm:"column:teacher_staff_no;type:varchar(40);not null" json:"teacher_staff_no"`
	TeacherDepartmentID *uuid.UUID `gorm:"column:teacher_department_id;type:uuid" json:"teacher_department_id,omitempty"`

	TeacherIsActive  bool           `gorm:"column:teacher_is_active;not null;default:true" json:"teacher_is_active"`
	TeacherCreatedAt time.Time      `gorm:"column:teacher_created_at;not null;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time      `gorm:"column:teacher_updated_at;not null;autoUpdateTime" json:"teacher_updated_at"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index" json:"teacher_deleted_at,omitempty"`
}

func (TeacherModel) TableName() string { return "teachers" }
