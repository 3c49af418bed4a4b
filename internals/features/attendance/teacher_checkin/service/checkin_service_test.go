package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkinModel "schoolku_backend/internals/features/attendance/teacher_checkin/model"
	"schoolku_backend/internals/features/attendance/teacher_checkin/service"
	"schoolku_backend/internals/features/attendance/teacher_checkin/store"
	teacherModel "schoolku_backend/internals/features/people/teachers/model"
	"schoolku_backend/internals/helpers/errs"
	"schoolku_backend/internals/helpers/txscope"
)

var fixedNow = time.Date(2025, 9, 20, 10, 0, 0, 0, time.UTC)

type fixture struct {
	svc      *service.CheckinService
	checkins *store.MemoryCheckinStore
	schoolID uuid.UUID
	userID   uuid.UUID
}

func newFixture(t *testing.T, active bool) fixture {
	t.Helper()

	schoolID := uuid.New()
	userID := uuid.New()

	teachers := store.NewMemoryTeacherResolver()
	teachers.Put(teacherModel.TeacherModel{
		TeacherID:       uuid.New(),
		TeacherSchoolID: schoolID,
		TeacherUserID:   userID,
		TeacherStaffNo:  "T-001",
		TeacherIsActive: active,
	})

	checkins := store.NewMemoryCheckinStore()
	svc := service.NewCheckinService(teachers, checkins, service.Window{StartHour: 7, EndHour: 17}, time.UTC)
	svc.Now = func() time.Time { return fixedNow }

	return fixture{svc: svc, checkins: checkins, schoolID: schoolID, userID: userID}
}

func TestManualCheckin_Succeeds(t *testing.T) {
	f := newFixture(t, true)

	row, err := f.svc.ManualCheckin(context.Background(), f.schoolID, f.userID, service.ManualCheckinInput{
		Date:        "2025-09-20",
		CheckInTime: "07:30:00",
		Reason:      "Late due to medical appointment",
	}, txscope.None())
	require.NoError(t, err)

	// response carries the submitted values unchanged
	assert.Equal(t, "2025-09-20", row.CheckinDate.Format("2006-01-02"))
	assert.Equal(t, "07:30:00", row.CheckinTime.String())
	assert.Equal(t, "Late due to medical appointment", row.CheckinReason)
	assert.Equal(t, checkinModel.StatusPending, row.CheckinStatus)
	assert.NotEqual(t, uuid.Nil, row.CheckinID)
}

func TestManualCheckin_RoundTrip(t *testing.T) {
	f := newFixture(t, true)

	created, err := f.svc.ManualCheckin(context.Background(), f.schoolID, f.userID, service.ManualCheckinInput{
		Date:        "2025-09-19",
		CheckInTime: "08:15:00",
		Reason:      "Traffic",
	}, txscope.None())
	require.NoError(t, err)

	rows, total, err := f.svc.ListOwn(context.Background(), f.schoolID, f.userID, 20, 0)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	assert.Equal(t, created.CheckinID, rows[0].CheckinID)
	assert.Equal(t, "08:15:00", rows[0].CheckinTime.String())
	assert.Equal(t, "Traffic", rows[0].CheckinReason)
}

func TestManualCheckin_TeacherNotFound(t *testing.T) {
	f := newFixture(t, true)

	_, err := f.svc.ManualCheckin(context.Background(), f.schoolID, uuid.New(), service.ManualCheckinInput{
		Date:        "2025-09-20",
		CheckInTime: "07:30:00",
		Reason:      "x",
	}, txscope.None())
	assert.Equal(t, errs.NotFound, errs.KindOf(err))
}

func TestManualCheckin_InactiveTeacher(t *testing.T) {
	f := newFixture(t, false)

	_, err := f.svc.ManualCheckin(context.Background(), f.schoolID, f.userID, service.ManualCheckinInput{
		Date:        "2025-09-20",
		CheckInTime: "07:30:00",
		Reason:      "x",
	}, txscope.None())
	assert.Equal(t, errs.InvalidState, errs.KindOf(err))
}

func TestManualCheckin_FutureDateRejected(t *testing.T) {
	f := newFixture(t, true)

	_, err := f.svc.ManualCheckin(context.Background(), f.schoolID, f.userID, service.ManualCheckinInput{
		Date:        "2025-09-21",
		CheckInTime: "07:30:00",
		Reason:      "x",
	}, txscope.None())
	assert.Equal(t, errs.InvalidInput, errs.KindOf(err))

	// today itself is fine
	_, err = f.svc.ManualCheckin(context.Background(), f.schoolID, f.userID, service.ManualCheckinInput{
		Date:        "2025-09-20",
		CheckInTime: "07:30:00",
		Reason:      "x",
	}, txscope.None())
	assert.NoError(t, err)
}

func TestManualCheckin_WindowIsHalfOpen(t *testing.T) {
	f := newFixture(t, true)

	// start boundary included
	_, err := f.svc.ManualCheckin(context.Background(), f.schoolID, f.userID, service.ManualCheckinInput{
		Date:        "2025-09-18",
		CheckInTime: "07:00:00",
		Reason:      "x",
	}, txscope.None())
	assert.NoError(t, err)

	// end boundary excluded
	_, err = f.svc.ManualCheckin(context.Background(), f.schoolID, f.userID, service.ManualCheckinInput{
		Date:        "2025-09-17",
		CheckInTime: "17:00:00",
		Reason:      "x",
	}, txscope.None())
	assert.Equal(t, errs.InvalidInput, errs.KindOf(err))

	// before the window
	_, err = f.svc.ManualCheckin(context.Background(), f.schoolID, f.userID, service.ManualCheckinInput{
		Date:        "2025-09-17",
		CheckInTime: "06:59:00",
		Reason:      "x",
	}, txscope.None())
	assert.Equal(t, errs.InvalidInput, errs.KindOf(err))

	// minutes do not rescue an out-of-window hour; 16:59 is the last valid minute
	_, err = f.svc.ManualCheckin(context.Background(), f.schoolID, f.userID, service.ManualCheckinInput{
		Date:        "2025-09-17",
		CheckInTime: "16:59:59",
		Reason:      "x",
	}, txscope.None())
	assert.NoError(t, err)
}

func TestManualCheckin_DuplicateDateConflicts(t *testing.T) {
	f := newFixture(t, true)

	in := service.ManualCheckinInput{
		Date:        "2025-09-20",
		CheckInTime: "07:30:00",
		Reason:      "Late due to medical appointment",
	}
	_, err := f.svc.ManualCheckin(context.Background(), f.schoolID, f.userID, in, txscope.None())
	require.NoError(t, err)

	_, err = f.svc.ManualCheckin(context.Background(), f.schoolID, f.userID, in, txscope.None())
	assert.Equal(t, errs.Conflict, errs.KindOf(err))

	// no second record was written
	_, total, err := f.svc.ListOwn(context.Background(), f.schoolID, f.userID, 20, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestManualCheckin_StorageDuplicateBecomesConflict(t *testing.T) {
	// Two submissions can both pass the pre-check before either commits;
	// the unique index is the backstop and must surface as Conflict too.
	f := newFixture(t, true)

	row := &checkinModel.TeacherCheckinModel{
		CheckinSchoolID:  f.schoolID,
		CheckinTeacherID: teacherIDOf(t, f),
		CheckinDate:      time.Date(2025, 9, 20, 0, 0, 0, 0, time.UTC),
		CheckinStatus:    checkinModel.StatusPending,
		CheckinReason:    "seeded behind the pre-check",
	}
	require.NoError(t, f.checkins.Create(context.Background(), row, txscope.None()))

	_, err := f.svc.ManualCheckin(context.Background(), f.schoolID, f.userID, service.ManualCheckinInput{
		Date:        "2025-09-20",
		CheckInTime: "07:30:00",
		Reason:      "x",
	}, txscope.None())
	assert.Equal(t, errs.Conflict, errs.KindOf(err))
}

func TestListForDate(t *testing.T) {
	f := newFixture(t, true)

	_, err := f.svc.ManualCheckin(context.Background(), f.schoolID, f.userID, service.ManualCheckinInput{
		Date:        "2025-09-20",
		CheckInTime: "07:30:00",
		Reason:      "x",
	}, txscope.None())
	require.NoError(t, err)

	rows, err := f.svc.ListForDate(context.Background(), f.schoolID, "2025-09-20")
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	rows, err = f.svc.ListForDate(context.Background(), f.schoolID, "2025-09-19")
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = f.svc.ListForDate(context.Background(), f.schoolID, "20-09-2025")
	assert.Equal(t, errs.InvalidInput, errs.KindOf(err))
}

func teacherIDOf(t *testing.T, f fixture) uuid.UUID {
	t.Helper()
	teacher, err := f.svc.Teachers.FindByUserID(context.Background(), f.schoolID, f.userID)
	require.NoError(t, err)
	require.NotNil(t, teacher)
	return teacher.TeacherID
}
