// Package store persists manual check-ins and resolves their owning
// teacher. The service layer only sees these interfaces.
package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	checkinModel "schoolku_backend/internals/features/attendance/teacher_checkin/model"
	teacherModel "schoolku_backend/internals/features/people/teachers/model"
	"schoolku_backend/internals/helpers/txscope"
)

// ErrDuplicate is returned when the storage unique index on
// (teacher, date) rejects an insert. The service maps it to Conflict.
var ErrDuplicate = errors.New("checkin already exists for teacher and date")

type TeacherResolver interface {
	// FindByUserID returns nil, nil when no teacher is linked to the user.
	FindByUserID(ctx context.Context, schoolID, userID uuid.UUID) (*teacherModel.TeacherModel, error)
}

type CheckinStore interface {
	ExistsForDate(ctx context.Context, teacherID uuid.UUID, date time.Time) (bool, error)
	Create(ctx context.Context, row *checkinModel.TeacherCheckinModel, scope txscope.Scope) error
	ListByTeacher(ctx context.Context, teacherID uuid.UUID, limit, offset int) ([]checkinModel.TeacherCheckinModel, int64, error)
	ListBySchoolDate(ctx context.Context, schoolID uuid.UUID, date time.Time) ([]checkinModel.TeacherCheckinModel, error)
}

/* =========================================================
   GORM implementations
   ========================================================= */

type GormTeacherResolver struct {
	DB *gorm.DB
}

func (s *GormTeacherResolver) FindByUserID(ctx context.Context, schoolID, userID uuid.UUID) (*teacherModel.TeacherModel, error) {
	var t teacherModel.TeacherModel
	err := s.DB.WithContext(ctx).
		Where("teacher_school_id = ? AND teacher_user_id = ?", schoolID, userID).
		First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type GormCheckinStore struct {
	DB *gorm.DB
}

func (s *GormCheckinStore) ExistsForDate(ctx context.Context, teacherID uuid.UUID, date time.Time) (bool, error) {
	var cnt int64
	err := s.DB.WithContext(ctx).Model(&checkinModel.TeacherCheckinModel{}).
		Where("checkin_teacher_id = ? AND checkin_date = ?", teacherID, date.Format("2006-01-02")).
		Count(&cnt).Error
	return cnt > 0, err
}

func (s *GormCheckinStore) Create(ctx context.Context, row *checkinModel.TeacherCheckinModel, scope txscope.Scope) error {
	db := scope.DB(s.DB).WithContext(ctx)
	if err := db.Create(row).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "uq_checkins_teacher_date") ||
			strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *GormCheckinStore) ListByTeacher(ctx context.Context, teacherID uuid.UUID, limit, offset int) ([]checkinModel.TeacherCheckinModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&checkinModel.TeacherCheckinModel{}).
		Where("checkin_teacher_id = ?", teacherID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []checkinModel.TeacherCheckinModel
	if err := tx.Order("checkin_date DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *GormCheckinStore) ListBySchoolDate(ctx context.Context, schoolID uuid.UUID, date time.Time) ([]checkinModel.TeacherCheckinModel, error) {
	var rows []checkinModel.TeacherCheckinModel
	err := s.DB.WithContext(ctx).
		Where("checkin_school_id = ? AND checkin_date = ?", schoolID, date.Format("2006-01-02")).
		Order("checkin_time ASC").
		Find(&rows).Error
	return rows, err
}
