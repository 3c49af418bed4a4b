// Package service runs the manual check-in workflow: resolve the owning
// teacher, apply the constraint rules in order, write the row, and hand the
// model back for response mapping. Rules stop at the first violation.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
	checkinModel "schoolku_backend/internals/features/attendance/teacher_checkin/model"
	"schoolku_backend/internals/features/attendance/teacher_checkin/store"
	teacherModel "schoolku_backend/internals/features/people/teachers/model"
	"schoolku_backend/internals/helpers/dbtime"
	"schoolku_backend/internals/helpers/errs"
	"schoolku_backend/internals/helpers/txscope"
)

// Window is the allowed check-in interval [StartHour, EndHour). Only the
// truncated HH component of the submitted time is compared against it.
type Window struct {
	StartHour int
	EndHour   int
}

func (w Window) Contains(hour int) bool {
	return hour >= w.StartHour && hour < w.EndHour
}

type CheckinService struct {
	Teachers store.TeacherResolver
	Checkins store.CheckinStore
	Window   Window
	TZ       *time.Location

	// Now is injectable so every rule is testable against a fixed clock.
	Now func() time.Time
}

func NewCheckinService(teachers store.TeacherResolver, checkins store.CheckinStore, w Window, tz *time.Location) *CheckinService {
	if tz == nil {
		tz = time.UTC
	}
	return &CheckinService{
		Teachers: teachers,
		Checkins: checkins,
		Window:   w,
		TZ:       tz,
		Now:      time.Now,
	}
}

type ManualCheckinInput struct {
	Date        string // YYYY-MM-DD, already format-validated by the DTO
	CheckInTime string // HH:MM[:SS]
	Reason      string
}

// ManualCheckin records one submission for the teacher linked to userID.
// The duplicate pre-check is a fast path; the storage unique index is the
// real guarantee and its violation surfaces as the same Conflict.
func (s *CheckinService) ManualCheckin(ctx context.Context, schoolID, userID uuid.UUID, in ManualCheckinInput, scope txscope.Scope) (*checkinModel.TeacherCheckinModel, error) {
	teacher, err := s.resolveTeacher(ctx, schoolID, userID)
	if err != nil {
		return nil, err
	}

	date, err := time.ParseInLocation("2006-01-02", in.Date, s.TZ)
	if err != nil {
		return nil, errs.New(errs.InvalidInput, constants.MsgInvalidPayload)
	}
	tod, err := dbtime.Parse(in.CheckInTime)
	if err != nil {
		return nil, errs.New(errs.InvalidInput, constants.MsgInvalidPayload)
	}

	if err := s.checkConstraints(ctx, teacher.TeacherID, date, tod); err != nil {
		return nil, err
	}

	row := &checkinModel.TeacherCheckinModel{
		CheckinSchoolID:    schoolID,
		CheckinTeacherID:   teacher.TeacherID,
		CheckinDate:        date,
		CheckinTime:        tod,
		CheckinReason:      in.Reason,
		CheckinStatus:      checkinModel.StatusPending,
		CheckinSubmittedAt: s.Now(),
	}
	if err := s.Checkins.Create(ctx, row, scope); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, errs.New(errs.Conflict, constants.MsgAlreadyCheckedIn)
		}
		return nil, err
	}
	return row, nil
}

// resolveTeacher is the identity step: existence first, then the explicit
// active check, so the two failure kinds stay distinguishable.
func (s *CheckinService) resolveTeacher(ctx context.Context, schoolID, userID uuid.UUID) (*teacherModel.TeacherModel, error) {
	teacher, err := s.Teachers.FindByUserID(ctx, schoolID, userID)
	if err != nil {
		return nil, err
	}
	if teacher == nil {
		return nil, errs.New(errs.NotFound, constants.MsgTeacherNotFound)
	}
	if !teacher.TeacherIsActive {
		return nil, errs.New(errs.InvalidState, constants.MsgTeacherInactive)
	}
	return teacher, nil
}

// checkConstraints applies the ordered rule sequence: temporal validity,
// window validity, duplicate check.
func (s *CheckinService) checkConstraints(ctx context.Context, teacherID uuid.UUID, date time.Time, tod dbtime.Tod) error {
	today := s.today()
	if date.After(today) {
		return errs.New(errs.InvalidInput, constants.MsgDateInFuture)
	}

	if !s.Window.Contains(tod.Hour()) {
		return errs.New(errs.InvalidInput, constants.MsgTimeOutsideWindow)
	}

	exists, err := s.Checkins.ExistsForDate(ctx, teacherID, date)
	if err != nil {
		return err
	}
	if exists {
		return errs.New(errs.Conflict, constants.MsgAlreadyCheckedIn)
	}
	return nil
}

// today truncates the injected clock to midnight in the school timezone.
func (s *CheckinService) today() time.Time {
	now := s.Now().In(s.TZ)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.TZ)
}

// ListOwn returns the caller teacher's submissions, newest first.
func (s *CheckinService) ListOwn(ctx context.Context, schoolID, userID uuid.UUID, limit, offset int) ([]checkinModel.TeacherCheckinModel, int64, error) {
	teacher, err := s.resolveTeacher(ctx, schoolID, userID)
	if err != nil {
		return nil, 0, err
	}
	return s.Checkins.ListByTeacher(ctx, teacher.TeacherID, limit, offset)
}

// ListForDate is the admin view of every check-in on one date.
func (s *CheckinService) ListForDate(ctx context.Context, schoolID uuid.UUID, date string) ([]checkinModel.TeacherCheckinModel, error) {
	day, err := time.ParseInLocation("2006-01-02", date, s.TZ)
	if err != nil {
		return nil, errs.New(errs.InvalidInput, constants.MsgInvalidPayload)
	}
	return s.Checkins.ListBySchoolDate(ctx, schoolID, day)
}
