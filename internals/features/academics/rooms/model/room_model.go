package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RoomModel struct {
	RoomID       uuid.UUID `gorm:"column:room_id;type:uuid;default:gen_random_uuid();primaryKey" json:"room_id"`
	RoomSchoolID uuid.UUID `gorm:"column:room_school_id;type:uuid;not null;index" json:"room_school_id"`

	RoomName     string  `gorm:"column:room_name;type:varchar(120);not null" json:"room_name"`
	RoomCapacity int     `gorm:"column:room_capacity;not null;default:0" json:"room_capacity"`
	RoomLocation *string `gorm:"column:room_location;type:varchar(160)" json:"room_location,omitempty"`
	RoomFloor    *int    `gorm:"column:room_floor" json:"room_floor,omitempty"`
	RoomType     string  `gorm:"column:room_type;type:varchar(40);not null;default:classroom" json:"room_type"`

	RoomFacilities datatypes.JSON `gorm:"column:room_facilities;type:jsonb" json:"room_facilities,omitempty"`

	RoomCreatedAt time.Time      `gorm:"column:room_created_at;not null;autoCreateTime" json:"room_created_at"`
	RoomUpdatedAt time.Time      `gorm:"column:room_updated_at;not null;autoUpdateTime" json:"room_updated_at"`
	RoomDeletedAt gorm.DeletedAt `gorm:"column:room_deleted_at;index" json:"room_deleted_at,omitempty"`
}

func (RoomModel) TableName() string { return "rooms" }
