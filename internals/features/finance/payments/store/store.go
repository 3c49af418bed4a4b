// Package store persists fee payments and resolves the paying student.
package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	paymentModel "schoolku_backend/internals/features/finance/payments/model"
	studentModel "schoolku_backend/internals/features/people/students/model"
	"schoolku_backend/internals/helpers/txscope"
)

// ErrDuplicateReference is returned when the storage unique index on
// (school, reference) rejects an insert.
var ErrDuplicateReference = errors.New("payment reference already recorded")

type StudentResolver interface {
	// FindByID returns nil, nil when the student does not exist.
	FindByID(ctx context.Context, schoolID, studentID uuid.UUID) (*studentModel.StudentModel, error)
}

type PaymentStore interface {
	ReferenceExists(ctx context.Context, schoolID uuid.UUID, reference string) (bool, error)
	Create(ctx context.Context, row *paymentModel.PaymentModel, scope txscope.Scope) error
	SaveGatewayResult(ctx context.Context, row *paymentModel.PaymentModel, scope txscope.Scope) error
	ByID(ctx context.Context, schoolID, id uuid.UUID) (*paymentModel.PaymentModel, error)
	ListBySchool(ctx context.Context, schoolID uuid.UUID, from, to *time.Time, limit, offset int) ([]paymentModel.PaymentModel, int64, error)
}

/* =========================================================
   GORM implementations
   ========================================================= */

type GormStudentResolver struct {
	DB *gorm.DB
}

func (s *GormStudentResolver) FindByID(ctx context.Context, schoolID, studentID uuid.UUID) (*studentModel.StudentModel, error) {
	var st studentModel.StudentModel
	err := s.DB.WithContext(ctx).
		Where("student_id = ? AND student_school_id = ?", studentID, schoolID).
		First(&st).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

type GormPaymentStore struct {
	DB *gorm.DB
}

func (s *GormPaymentStore) ReferenceExists(ctx context.Context, schoolID uuid.UUID, reference string) (bool, error) {
	var cnt int64
	err := s.DB.WithContext(ctx).Model(&paymentModel.PaymentModel{}).
		Where("payment_school_id = ? AND lower(payment_reference) = lower(?)", schoolID, reference).
		Count(&cnt).Error
	return cnt > 0, err
}

func (s *GormPaymentStore) Create(ctx context.Context, row *paymentModel.PaymentModel, scope txscope.Scope) error {
	db := scope.DB(s.DB).WithContext(ctx)
	if err := db.Create(row).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "uq_payments_reference_per_school") ||
			strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return ErrDuplicateReference
		}
		return err
	}
	return nil
}

// SaveGatewayResult updates the gateway columns on the same handle the
// insert ran on. When the caller is inside a transaction the new row is
// not visible to the pool yet, so updating through the base handle would
// silently match nothing.
func (s *GormPaymentStore) SaveGatewayResult(ctx context.Context, row *paymentModel.PaymentModel, scope txscope.Scope) error {
	return scope.DB(s.DB).WithContext(ctx).Model(row).Updates(map[string]interface{}{
		"payment_gateway_token":        row.PaymentGatewayToken,
		"payment_gateway_redirect_url": row.PaymentGatewayRedirectURL,
	}).Error
}

func (s *GormPaymentStore) ByID(ctx context.Context, schoolID, id uuid.UUID) (*paymentModel.PaymentModel, error) {
	var p paymentModel.PaymentModel
	err := s.DB.WithContext(ctx).
		Where("payment_id = ? AND payment_school_id = ?", id, schoolID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *GormPaymentStore) ListBySchool(ctx context.Context, schoolID uuid.UUID, from, to *time.Time, limit, offset int) ([]paymentModel.PaymentModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&paymentModel.PaymentModel{}).
		Where("payment_school_id = ?", schoolID)
	if from != nil {
		tx = tx.Where("payment_paid_date >= ?", from.Format("2006-01-02"))
	}
	if to != nil {
		tx = tx.Where("payment_paid_date <= ?", to.Format("2006-01-02"))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []paymentModel.PaymentModel
	if err := tx.Order("payment_paid_date DESC, payment_created_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
