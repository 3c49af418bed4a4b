package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassModel struct {
	ClassID           uuid.UUID  `gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_id"`
	ClassSchoolID     uuid.UUID  `gorm:"column:class_school_id;type:uuid;not null;index" json:"class_school_id"`
	ClassDepartmentID *uuid.UUID `gorm:"column:class_department_id;type:uuid" json:"class_department_id,omitempty"`

	ClassName  string `gorm:"column:class_name;type:varchar(120);not null" json:"class_name"`
	ClassLevel int    `gorm:"column:class_level;not null;default:0" json:"class_level"`

	ClassCreatedAt time.Time      `gorm:"column:class_created_at;not null;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"column:class_updated_at;not null;autoUpdateTime" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"class_deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }

type ClassStreamModel struct {
	StreamID      uuid.UUID `gorm:"column:stream_id;type:uuid;default:gen_random_uuid();primaryKey" json:"stream_id"`
	StreamClassID uuid.UUID `gorm:"column:stream_class_id;type:uuid;not null;index" json:"stream_class_id"`

	StreamName     string `gorm:"column:stream_name;type:varchar(80);not null" json:"stream_name"`
	StreamCapacity *int   `gorm:"column:stream_capacity" json:"stream_capacity,omitempty"`

	StreamCreatedAt time.Time      `gorm:"column:stream_created_at;not null;autoCreateTime" json:"stream_created_at"`
	StreamUpdatedAt time.Time      `gorm:"column:stream_updated_at;not null;autoUpdateTime" json:"stream_updated_at"`
	StreamDeletedAt gorm.DeletedAt `gorm:"column:stream_deleted_at;index" json:"stream_deleted_at,omitempty"`
}

func (ClassStreamModel) TableName() string { return "class_streams" }
