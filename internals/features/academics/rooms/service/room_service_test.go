package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	roomModel "schoolku_backend/internals/features/academics/rooms/model"
	"schoolku_backend/internals/features/academics/rooms/service"
	"schoolku_backend/internals/features/academics/rooms/store"
	"schoolku_backend/internals/helpers/errs"
	"schoolku_backend/internals/helpers/txscope"
)

func newRoom(schoolID uuid.UUID, name string) *roomModel.RoomModel {
	return &roomModel.RoomModel{
		RoomSchoolID: schoolID,
		RoomName:     name,
		RoomCapacity: 40,
		RoomType:     "classroom",
	}
}

func TestCreateRoom(t *testing.T) {
	svc := service.NewRoomService(store.NewMemoryRoomStore())
	schoolID := uuid.New()

	row := newRoom(schoolID, "Science Lab 1")
	require.NoError(t, svc.Create(context.Background(), row, txscope.None()))
	assert.NotEqual(t, uuid.Nil, row.RoomID)

	got, err := svc.Get(context.Background(), schoolID, row.RoomID)
	require.NoError(t, err)
	assert.Equal(t, "Science Lab 1", got.RoomName)
	assert.Equal(t, 40, got.RoomCapacity)
}

func TestCreateRoom_DuplicateNameCaseInsensitive(t *testing.T) {
	svc := service.NewRoomService(store.NewMemoryRoomStore())
	schoolID := uuid.New()

	require.NoError(t, svc.Create(context.Background(), newRoom(schoolID, "Science Lab 1"), txscope.None()))

	err := svc.Create(context.Background(), newRoom(schoolID, "SCIENCE lab 1"), txscope.None())
	assert.Equal(t, errs.Conflict, errs.KindOf(err))

	// storage still holds exactly one
	rows, total, err := svc.List(context.Background(), schoolID, "", 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, rows, 1)
}

func TestCreateRoom_SameNameOtherSchool(t *testing.T) {
	svc := service.NewRoomService(store.NewMemoryRoomStore())

	require.NoError(t, svc.Create(context.Background(), newRoom(uuid.New(), "Hall A"), txscope.None()))
	assert.NoError(t, svc.Create(context.Background(), newRoom(uuid.New(), "Hall A"), txscope.None()))
}

func TestUpdateRoom_NameCollision(t *testing.T) {
	svc := service.NewRoomService(store.NewMemoryRoomStore())
	schoolID := uuid.New()

	a := newRoom(schoolID, "Room A")
	b := newRoom(schoolID, "Room B")
	require.NoError(t, svc.Create(context.Background(), a, txscope.None()))
	require.NoError(t, svc.Create(context.Background(), b, txscope.None()))

	b.RoomName = "room a"
	err := svc.Update(context.Background(), b)
	assert.Equal(t, errs.Conflict, errs.KindOf(err))

	// renaming to its own name is fine
	a.RoomCapacity = 50
	assert.NoError(t, svc.Update(context.Background(), a))
}

func TestGetRoom_NotFound(t *testing.T) {
	svc := service.NewRoomService(store.NewMemoryRoomStore())

	_, err := svc.Get(context.Background(), uuid.New(), uuid.New())
	assert.Equal(t, errs.NotFound, errs.KindOf(err))
}

func TestDeleteRoom(t *testing.T) {
	svc := service.NewRoomService(store.NewMemoryRoomStore())
	schoolID := uuid.New()

	row := newRoom(schoolID, "Old Hall")
	require.NoError(t, svc.Create(context.Background(), row, txscope.None()))

	_, err := svc.Delete(context.Background(), schoolID, row.RoomID)
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), schoolID, row.RoomID)
	assert.Equal(t, errs.NotFound, errs.KindOf(err))
}
