package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	checkinModel "schoolku_backend/internals/features/attendance/teacher_checkin/model"
	teacherModel "schoolku_backend/internals/features/people/teachers/model"
	"schoolku_backend/internals/helpers/txscope"
)

// MemoryTeacherResolver and MemoryCheckinStore back the service in tests
// and local tooling without a database.

type MemoryTeacherResolver struct {
	mu       sync.RWMutex
	teachers map[uuid.UUID]teacherModel.TeacherModel // keyed by user id
}

func NewMemoryTeacherResolver() *MemoryTeacherResolver {
	return &MemoryTeacherResolver{teachers: map[uuid.UUID]teacherModel.TeacherModel{}}
}

func (s *MemoryTeacherResolver) Put(t teacherModel.TeacherModel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teachers[t.TeacherUserID] = t
}

func (s *MemoryTeacherResolver) FindByUserID(_ context.Context, schoolID, userID uuid.UUID) (*teacherModel.TeacherModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.teachers[userID]
	if !ok || t.TeacherSchoolID != schoolID {
		return nil, nil
	}
	cp := t
	return &cp, nil
}

type checkinKey struct {
	teacher uuid.UUID
	date    string
}

type MemoryCheckinStore struct {
	mu   sync.RWMutex
	rows map[checkinKey]checkinModel.TeacherCheckinModel
}

func NewMemoryCheckinStore() *MemoryCheckinStore {
	return &MemoryCheckinStore{rows: map[checkinKey]checkinModel.TeacherCheckinModel{}}
}

func (s *MemoryCheckinStore) ExistsForDate(_ context.Context, teacherID uuid.UUID, date time.Time) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.rows[checkinKey{teacherID, date.Format("2006-01-02")}]
	return ok, nil
}

func (s *MemoryCheckinStore) Create(_ context.Context, row *checkinModel.TeacherCheckinModel, _ txscope.Scope) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := checkinKey{row.CheckinTeacherID, row.CheckinDate.Format("2006-01-02")}
	if _, ok := s.rows[key]; ok {
		return ErrDuplicate
	}
	if row.CheckinID == uuid.Nil {
		row.CheckinID = uuid.New()
	}
	now := time.Now()
	if row.CheckinSubmittedAt.IsZero() {
		row.CheckinSubmittedAt = now
	}
	row.CheckinCreatedAt = now
	row.CheckinUpdatedAt = now
	s.rows[key] = *row
	return nil
}

func (s *MemoryCheckinStore) ListByTeacher(_ context.Context, teacherID uuid.UUID, limit, offset int) ([]checkinModel.TeacherCheckinModel, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var all []checkinModel.TeacherCheckinModel
	for _, r := range s.rows {
		if r.CheckinTeacherID == teacherID {
			all = append(all, r)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CheckinDate.After(all[j].CheckinDate)
	})

	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (s *MemoryCheckinStore) ListBySchoolDate(_ context.Context, schoolID uuid.UUID, date time.Time) ([]checkinModel.TeacherCheckinModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	day := date.Format("2006-01-02")
	var out []checkinModel.TeacherCheckinModel
	for _, r := range s.rows {
		if r.CheckinSchoolID == schoolID && r.CheckinDate.Format("2006-01-02") == day {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CheckinTime.Before(out[j].CheckinTime)
	})
	return out, nil
}
