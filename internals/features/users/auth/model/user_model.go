package model

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserSchoolID uuid.UUID `gorm:"column:user_school_id;type:uuid;not null;index" json:"user_school_id"`

	UserEmail        string `gorm:"column:user_email;type:varchar(160);not null" json:"user_email"`
	UserPasswordHash string `gorm:"column:user_password_hash;type:text;not null" json:"-"`
	UserFullName     string `gorm:"column:user_full_name;type:varchar(160);not null" json:"user_full_name"`
	UserRole         string `gorm:"column:user_role;type:varchar(20);not null;default:staff" json:"user_role"`

	UserIsActive  bool      `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`
	UserCreatedAt time.Time `gorm:"column:user_created_at;not null;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;not null;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }
