package model

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/helpers/dbtime"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// TeacherCheckinModel is one manual attendance submission. Rows are
// write-once here; approval transitions belong to a separate workflow.
type TeacherCheckinModel struct {
	CheckinID        uuid.UUID `gorm:"column:checkin_id;type:uuid;default:gen_random_uuid();primaryKey" json:"checkin_id"`
	CheckinSchoolID  uuid.UUID `gorm:"column:checkin_school_id;type:uuid;not null;index" json:"checkin_school_id"`
	CheckinTeacherID uuid.UUID `gorm:"column:checkin_teacher_id;type:uuid;not null;index" json:"checkin_teacher_id"`

	CheckinDate   time.Time  `gorm:"column:checkin_date;type:date;not null" json:"checkin_date"`
	CheckinTime   dbtime.Tod `gorm:"column:checkin_time;type:time;not null" json:"checkin_time"`
	CheckinReason string     `gorm:"column:checkin_reason;type:varchar(255);not null" json:"checkin_reason"`
	CheckinStatus string     `gorm:"column:checkin_status;type:varchar(10);not null;default:PENDING" json:"checkin_status"`

	CheckinSubmittedAt time.Time `gorm:"column:checkin_submitted_at;not null;autoCreateTime" json:"checkin_submitted_at"`
	CheckinCreatedAt   time.Time `gorm:"column:checkin_created_at;not null;autoCreateTime" json:"checkin_created_at"`
	CheckinUpdatedAt   time.Time `gorm:"column:checkin_updated_at;not null;autoUpdateTime" json:"checkin_updated_at"`
}

func (TeacherCheckinModel) TableName() string { return "teacher_checkins" }
