// Package service runs the room create/update workflow: uniqueness is
// checked app-side first, the unique index backs it, both surface Conflict.
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
	roomModel "schoolku_backend/internals/features/academics/rooms/model"
	"schoolku_backend/internals/features/academics/rooms/store"
	"schoolku_backend/internals/helpers/errs"
	"schoolku_backend/internals/helpers/txscope"
)

type RoomService struct {
	Rooms store.RoomStore
}

func NewRoomService(rooms store.RoomStore) *RoomService {
	return &RoomService{Rooms: rooms}
}

func (s *RoomService) Create(ctx context.Context, row *roomModel.RoomModel, scope txscope.Scope) error {
	exists, err := s.Rooms.NameExists(ctx, row.RoomSchoolID, row.RoomName, nil)
	if err != nil {
		return err
	}
	if exists {
		return errs.New(errs.Conflict, constants.MsgRoomNameTaken)
	}

	if err := s.Rooms.Create(ctx, row, scope); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return errs.New(errs.Conflict, constants.MsgRoomNameTaken)
		}
		return err
	}
	return nil
}

func (s *RoomService) Get(ctx context.Context, schoolID, id uuid.UUID) (*roomModel.RoomModel, error) {
	row, err := s.Rooms.ByID(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, errs.New(errs.NotFound, constants.MsgRoomNotFound)
	}
	return row, nil
}

// Update persists an already-mutated row after re-checking the name key.
func (s *RoomService) Update(ctx context.Context, row *roomModel.RoomModel) error {
	exists, err := s.Rooms.NameExists(ctx, row.RoomSchoolID, row.RoomName, &row.RoomID)
	if err != nil {
		return err
	}
	if exists {
		return errs.New(errs.Conflict, constants.MsgRoomNameTaken)
	}

	if err := s.Rooms.Save(ctx, row); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return errs.New(errs.Conflict, constants.MsgRoomNameTaken)
		}
		return err
	}
	return nil
}

func (s *RoomService) Delete(ctx context.Context, schoolID, id uuid.UUID) (*roomModel.RoomModel, error) {
	row, err := s.Get(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}
	if err := s.Rooms.Delete(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

func (s *RoomService) List(ctx context.Context, schoolID uuid.UUID, search string, limit, offset int) ([]roomModel.RoomModel, int64, error) {
	return s.Rooms.List(ctx, schoolID, search, limit, offset)
}
