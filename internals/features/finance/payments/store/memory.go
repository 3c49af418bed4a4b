package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	paymentModel "schoolku_backend/internals/features/finance/payments/model"
	studentModel "schoolku_backend/internals/features/people/students/model"
	"schoolku_backend/internals/helpers/txscope"
)

// MemoryStudentResolver and MemoryPaymentStore back the service in tests
// without a database.

type MemoryStudentResolver struct {
	mu       sync.RWMutex
	students map[uuid.UUID]studentModel.StudentModel
}

func NewMemoryStudentResolver() *MemoryStudentResolver {
	return &MemoryStudentResolver{students: map[uuid.UUID]studentModel.StudentModel{}}
}

func (s *MemoryStudentResolver) Put(st studentModel.StudentModel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.students[st.StudentID] = st
}

func (s *MemoryStudentResolver) FindByID(_ context.Context, schoolID, studentID uuid.UUID) (*studentModel.StudentModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.students[studentID]
	if !ok || st.StudentSchoolID != schoolID {
		return nil, nil
	}
	cp := st
	return &cp, nil
}

type MemoryPaymentStore struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]paymentModel.PaymentModel
}

func NewMemoryPaymentStore() *MemoryPaymentStore {
	return &MemoryPaymentStore{rows: map[uuid.UUID]paymentModel.PaymentModel{}}
}

func (s *MemoryPaymentStore) ReferenceExists(_ context.Context, schoolID uuid.UUID, reference string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.rows {
		if r.PaymentSchoolID == schoolID && r.PaymentReference != nil &&
			strings.EqualFold(*r.PaymentReference, reference) {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryPaymentStore) Create(_ context.Context, row *paymentModel.PaymentModel, _ txscope.Scope) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if row.PaymentReference != nil {
		for _, r := range s.rows {
			if r.PaymentSchoolID == row.PaymentSchoolID && r.PaymentReference != nil &&
				strings.EqualFold(*r.PaymentReference, *row.PaymentReference) {
				return ErrDuplicateReference
			}
		}
	}
	if row.PaymentID == uuid.Nil {
		row.PaymentID = uuid.New()
	}
	now := time.Now()
	row.PaymentCreatedAt = now
	row.PaymentUpdatedAt = now
	s.rows[row.PaymentID] = *row
	return nil
}

func (s *MemoryPaymentStore) SaveGatewayResult(_ context.Context, row *paymentModel.PaymentModel, _ txscope.Scope) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.rows[row.PaymentID]
	if !ok {
		return nil
	}
	stored.PaymentGatewayToken = row.PaymentGatewayToken
	stored.PaymentGatewayRedirectURL = row.PaymentGatewayRedirectURL
	s.rows[row.PaymentID] = stored
	return nil
}

func (s *MemoryPaymentStore) ByID(_ context.Context, schoolID, id uuid.UUID) (*paymentModel.PaymentModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.rows[id]
	if !ok || p.PaymentSchoolID != schoolID {
		return nil, nil
	}
	cp := p
	return &cp, nil
}

func (s *MemoryPaymentStore) ListBySchool(_ context.Context, schoolID uuid.UUID, from, to *time.Time, limit, offset int) ([]paymentModel.PaymentModel, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var all []paymentModel.PaymentModel
	for _, r := range s.rows {
		if r.PaymentSchoolID != schoolID {
			continue
		}
		if from != nil && r.PaymentPaidDate.Before(*from) {
			continue
		}
		if to != nil && r.PaymentPaidDate.After(*to) {
			continue
		}
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].PaymentPaidDate.After(all[j].PaymentPaidDate)
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
