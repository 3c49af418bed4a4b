package store

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	roomModel "schoolku_backend/internals/features/academics/rooms/model"
	"schoolku_backend/internals/helpers/txscope"
)

// ErrDuplicate: the case-insensitive name index rejected an insert.
var ErrDuplicate = errors.New("room name already exists in school")

type RoomStore interface {
	NameExists(ctx context.Context, schoolID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error)
	Create(ctx context.Context, row *roomModel.RoomModel, scope txscope.Scope) error
	ByID(ctx context.Context, schoolID, id uuid.UUID) (*roomModel.RoomModel, error)
	Save(ctx context.Context, row *roomModel.RoomModel) error
	Delete(ctx context.Context, row *roomModel.RoomModel) error
	List(ctx context.Context, schoolID uuid.UUID, search string, limit, offset int) ([]roomModel.RoomModel, int64, error)
}

/* =========================================================
   GORM implementation
   ========================================================= */

type GormRoomStore struct {
	DB *gorm.DB
}

func (s *GormRoomStore) NameExists(ctx context.Context, schoolID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error) {
	tx := s.DB.WithContext(ctx).Model(&roomModel.RoomModel{}).
		Where("room_school_id = ? AND lower(room_name) = lower(?)", schoolID, name)
	if excludeID != nil {
		tx = tx.Where("room_id <> ?", *excludeID)
	}
	var cnt int64
	if err := tx.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (s *GormRoomStore) Create(ctx context.Context, row *roomModel.RoomModel, scope txscope.Scope) error {
	db := scope.DB(s.DB).WithContext(ctx)
	if err := db.Create(row).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "uq_rooms_name_per_school") ||
			strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *GormRoomStore) ByID(ctx context.Context, schoolID, id uuid.UUID) (*roomModel.RoomModel, error) {
	var row roomModel.RoomModel
	err := s.DB.WithContext(ctx).
		Where("room_id = ? AND room_school_id = ?", id, schoolID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *GormRoomStore) Save(ctx context.Context, row *roomModel.RoomModel) error {
	if err := s.DB.WithContext(ctx).Save(row).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *GormRoomStore) Delete(ctx context.Context, row *roomModel.RoomModel) error {
	return s.DB.WithContext(ctx).Delete(row).Error
}

func (s *GormRoomStore) List(ctx context.Context, schoolID uuid.UUID, search string, limit, offset int) ([]roomModel.RoomModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&roomModel.RoomModel{}).
		Where("room_school_id = ?", schoolID)
	if strings.TrimSpace(search) != "" {
		kw := "%" + strings.ToLower(strings.TrimSpace(search)) + "%"
		tx = tx.Where("lower(room_name) LIKE ?", kw)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []roomModel.RoomModel
	if err := tx.Order("room_name ASC").
		Limit(limit).Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

/* =========================================================
   In-memory implementation (tests, local tooling)
   ========================================================= */

type MemoryRoomStore struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]roomModel.RoomModel
}

func NewMemoryRoomStore() *MemoryRoomStore {
	return &MemoryRoomStore{rows: map[uuid.UUID]roomModel.RoomModel{}}
}

func (s *MemoryRoomStore) NameExists(_ context.Context, schoolID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for id, r := range s.rows {
		if excludeID != nil && id == *excludeID {
			continue
		}
		if r.RoomSchoolID == schoolID && strings.EqualFold(r.RoomName, name) {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryRoomStore) Create(_ context.Context, row *roomModel.RoomModel, _ txscope.Scope) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.rows {
		if r.RoomSchoolID == row.RoomSchoolID && strings.EqualFold(r.RoomName, row.RoomName) {
			return ErrDuplicate
		}
	}
	if row.RoomID == uuid.Nil {
		row.RoomID = uuid.New()
	}
	s.rows[row.RoomID] = *row
	return nil
}

func (s *MemoryRoomStore) ByID(_ context.Context, schoolID, id uuid.UUID) (*roomModel.RoomModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rows[id]
	if !ok || r.RoomSchoolID != schoolID {
		return nil, nil
	}
	cp := r
	return &cp, nil
}

func (s *MemoryRoomStore) Save(_ context.Context, row *roomModel.RoomModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, r := range s.rows {
		if id != row.RoomID && r.RoomSchoolID == row.RoomSchoolID && strings.EqualFold(r.RoomName, row.RoomName) {
			return ErrDuplicate
		}
	}
	s.rows[row.RoomID] = *row
	return nil
}

func (s *MemoryRoomStore) Delete(_ context.Context, row *roomModel.RoomModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rows, row.RoomID)
	return nil
}

func (s *MemoryRoomStore) List(_ context.Context, schoolID uuid.UUID, search string, limit, offset int) ([]roomModel.RoomModel, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var all []roomModel.RoomModel
	for _, r := range s.rows {
		if r.RoomSchoolID != schoolID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(r.RoomName), strings.ToLower(search)) {
			continue
		}
		all = append(all, r)
	}

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
