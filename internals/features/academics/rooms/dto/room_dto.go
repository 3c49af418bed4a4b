package dto

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "schoolku_backend/internals/features/academics/rooms/model"
)

type CreateRoomRequest struct {
	Name       string         `json:"name" validate:"required,min=1,max=120"`
	Capacity   int            `json:"capacity" validate:"gte=0"`
	Location   *string        `json:"location" validate:"omitempty,max=160"`
	Floor      *int           `json:"floor"`
	RoomType   string         `json:"room_type" validate:"omitempty,oneof=classroom lab library office hall"`
	Facilities datatypes.JSON `json:"facilities"`
}

func (r *CreateRoomRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	if r.Location != nil {
		v := strings.TrimSpace(*r.Location)
		if v == "" {
			r.Location = nil
		} else {
			r.Location = &v
		}
	}
	r.RoomType = strings.ToLower(strings.TrimSpace(r.RoomType))
	if r.RoomType == "" {
		r.RoomType = "classroom"
	}
}

func (r CreateRoomRequest) ToModel(schoolID uuid.UUID) m.RoomModel {
	return m.RoomModel{
		RoomSchoolID:   schoolID,
		RoomName:       r.Name,
		RoomCapacity:   r.Capacity,
		RoomLocation:   r.Location,
		RoomFloor:      r.Floor,
		RoomType:       r.RoomType,
		RoomFacilities: r.Facilities,
	}
}

type UpdateRoomRequest struct {
	Name       *string        `json:"name" validate:"omitempty,min=1,max=120"`
	Capacity   *int           `json:"capacity" validate:"omitempty,gte=0"`
	Location   *string        `json:"location" validate:"omitempty,max=160"`
	Floor      *int           `json:"floor"`
	RoomType   *string        `json:"room_type" validate:"omitempty,oneof=classroom lab library office hall"`
	Facilities datatypes.JSON `json:"facilities"`
}

func (r *UpdateRoomRequest) Normalize() {
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		r.Name = &v
	}
	if r.RoomType != nil {
		v := strings.ToLower(strings.TrimSpace(*r.RoomType))
		r.RoomType = &v
	}
}

func (r UpdateRoomRequest) Apply(row *m.RoomModel) {
	if r.Name != nil {
		row.RoomName = *r.Name
	}
	if r.Capacity != nil {
		row.RoomCapacity = *r.Capacity
	}
	if r.Location != nil {
		row.RoomLocation = r.Location
	}
	if r.Floor != nil {
		row.RoomFloor = r.Floor
	}
	if r.RoomType != nil {
		row.RoomType = *r.RoomType
	}
	if len(r.Facilities) > 0 {
		row.RoomFacilities = r.Facilities
	}
}

// RoomResponse is the exposed field allow-list.
type RoomResponse struct {
	RoomID     uuid.UUID      `json:"room_id"`
	Name       string         `json:"name"`
	Capacity   int            `json:"capacity"`
	Location   *string        `json:"location,omitempty"`
	Floor      *int           `json:"floor,omitempty"`
	RoomType   string         `json:"room_type"`
	Facilities datatypes.JSON `json:"facilities,omitempty"`
}

func FromRoomModel(r m.RoomModel) RoomResponse {
	return RoomResponse{
		RoomID:     r.RoomID,
		Name:       r.RoomName,
		Capacity:   r.RoomCapacity,
		Location:   r.RoomLocation,
		Floor:      r.RoomFloor,
		RoomType:   r.RoomType,
		Facilities: r.RoomFacilities,
	}
}

func FromRoomModels(rows []m.RoomModel) []RoomResponse {
	out := make([]RoomResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromRoomModel(r))
	}
	return out
}
