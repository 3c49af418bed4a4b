package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AcademicSessionModel struct {
	SessionID       uuid.UUID `gorm:"column:session_id;type:uuid;default:gen_random_uuid();primaryKey" json:"session_id"`
	SessionSchoolID uuid.UUID `gorm:"column:session_school_id;type:uuid;not null;index" json:"session_school_id"`

	SessionName      string    `gorm:"column:session_name;type:varchar(80);not null" json:"session_name"`
	SessionStartDate time.Time `gorm:"column:session_start_date;type:date;not null" json:"session_start_date"`
	SessionEndDate   time.Time `gorm:"column:session_end_date;type:date;not null" json:"session_end_date"`
	SessionIsCurrent bool      `gorm:"column:session_is_current;not null;default:false" json:"session_is_current"`

	SessionCreatedAt time.Time      `gorm:"column:session_created_at;not null;autoCreateTime" json:"session_created_at"`
	SessionUpdatedAt time.Time      `gorm:"column:session_updated_at;not null;autoUpdateTime" json:"session_updated_at"`
	SessionDeletedAt gorm.DeletedAt `gorm:"column:session_deleted_at;index" json:"session_deleted_at,omitempty"`
}

func (AcademicSessionModel) TableName() string { return "academic_sessions" }

type AcademicTermModel struct {
	TermID        uuid.UUID `gorm:"column:term_id;type:uuid;default:gen_random_uuid();primaryKey" json:"term_id"`
	TermSessionID uuid.UUID `gorm:"column:term_session_id;type:uuid;not null;index" json:"term_session_id"`

	TermName      string    `gorm:"column:term_name;type:varchar(80);not null" json:"term_name"`
	TermStartDate time.Time `gorm:"column:term_start_date;type:date;not null" json:"term_start_date"`
	TermEndDate   time.Time `gorm:"column:term_end_date;type:date;not null" json:"term_end_date"`

	TermCreatedAt time.Time `gorm:"column:term_created_at;not null;autoCreateTime" json:"term_created_at"`
	TermUpdatedAt time.Time `gorm:"column:term_updated_at;not null;autoUpdateTime" json:"term_updated_at"`
}

func (AcademicTermModel) TableName() string { return "academic_terms" }
