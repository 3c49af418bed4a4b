// Package service runs the fee-payment workflow: resolve the paying
// student, apply the constraint rules in order, write the row, then hand
// the model back for response mapping.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
	paymentModel "schoolku_backend/internals/features/finance/payments/model"
	"schoolku_backend/internals/features/finance/payments/store"
	studentModel "schoolku_backend/internals/features/people/students/model"
	"schoolku_backend/internals/helpers/errs"
	"schoolku_backend/internals/helpers/txscope"
)

// Gateway creates a hosted-checkout transaction for a recorded payment.
// Implementations must be safe to skip: a nil Gateway disables the step.
type Gateway interface {
	CreateTransaction(orderID string, grossAmount int64, customerName string) (token, redirectURL string, err error)
}

type PaymentService struct {
	Students store.StudentResolver
	Payments store.PaymentStore
	Gateway  Gateway
	TZ       *time.Location

	// Now is injectable so the paid-date rule and receipt numbers are
	// testable against a fixed clock.
	Now func() time.Time
}

func NewPaymentService(students store.StudentResolver, payments store.PaymentStore, gw Gateway, tz *time.Location) *PaymentService {
	if tz == nil {
		tz = time.UTC
	}
	return &PaymentService{
		Students: students,
		Payments: payments,
		Gateway:  gw,
		TZ:       tz,
		Now:      time.Now,
	}
}

type RecordPaymentInput struct {
	StudentID uuid.UUID
	Amount    float64
	Method    string
	Reference *string // optional external reference, unique per school
	PaidDate  string  // YYYY-MM-DD, already format-validated by the DTO
	Note      *string
}

// Record writes one payment for the student. The reference pre-check is a
// fast path; the storage unique index is the real guarantee and its
// violation surfaces as the same Conflict.
func (s *PaymentService) Record(ctx context.Context, schoolID uuid.UUID, in RecordPaymentInput, scope txscope.Scope) (*paymentModel.PaymentModel, error) {
	student, err := s.resolveStudent(ctx, schoolID, in.StudentID)
	if err != nil {
		return nil, err
	}

	paidDate, err := time.ParseInLocation("2006-01-02", in.PaidDate, s.TZ)
	if err != nil {
		return nil, errs.New(errs.InvalidInput, constants.MsgInvalidPayload)
	}
	if paidDate.After(s.today()) {
		return nil, errs.New(errs.InvalidInput, constants.MsgPaidDateInFuture)
	}

	if in.Reference != nil {
		exists, err := s.Payments.ReferenceExists(ctx, schoolID, *in.Reference)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, errs.New(errs.Conflict, constants.MsgPaymentRefTaken)
		}
	}

	row := &paymentModel.PaymentModel{
		PaymentSchoolID:  schoolID,
		PaymentStudentID: student.StudentID,
		PaymentAmount:    in.Amount,
		PaymentMethod:    in.Method,
		PaymentReference: in.Reference,
		PaymentReceiptNo: s.receiptNo(),
		PaymentPaidDate:  paidDate,
		PaymentNote:      in.Note,
	}
	if err := s.Payments.Create(ctx, row, scope); err != nil {
		if errors.Is(err, store.ErrDuplicateReference) {
			return nil, errs.New(errs.Conflict, constants.MsgPaymentRefTaken)
		}
		return nil, err
	}

	s.chargeGateway(ctx, row, student, scope)
	return row, nil
}

// chargeGateway is best effort: a failed or unconfigured gateway never
// fails the recording itself. The caller's scope rides along so the
// token update hits the same transaction the insert ran in.
func (s *PaymentService) chargeGateway(ctx context.Context, row *paymentModel.PaymentModel, student *studentModel.StudentModel, scope txscope.Scope) {
	if s.Gateway == nil || row.PaymentMethod != paymentModel.MethodGateway {
		return
	}

	token, redirect, err := s.Gateway.CreateTransaction(row.PaymentReceiptNo, int64(row.PaymentAmount), student.StudentFullName)
	if err != nil {
		log.Printf("[WARN] payment gateway charge failed for %s: %v", row.PaymentReceiptNo, err)
		return
	}

	row.PaymentGatewayToken = &token
	if redirect != "" {
		row.PaymentGatewayRedirectURL = &redirect
	}
	if err := s.Payments.SaveGatewayResult(ctx, row, scope); err != nil {
		log.Printf("[WARN] storing gateway token failed for %s: %v", row.PaymentReceiptNo, err)
	}
}

func (s *PaymentService) resolveStudent(ctx context.Context, schoolID, studentID uuid.UUID) (*studentModel.StudentModel, error) {
	student, err := s.Students.FindByID(ctx, schoolID, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, errs.New(errs.NotFound, constants.MsgStudentNotFound)
	}
	if !student.StudentIsActive {
		return nil, errs.New(errs.InvalidState, constants.MsgStudentInactive)
	}
	return student, nil
}

func (s *PaymentService) today() time.Time {
	now := s.Now().In(s.TZ)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.TZ)
}

// receiptNo is server generated and unique enough per school: date plus
// nanosecond tail. The receipt unique index backs it up.
func (s *PaymentService) receiptNo() string {
	now := s.Now().In(s.TZ)
	return fmt.Sprintf("RCP-%s-%06d", now.Format("20060102"), now.UnixNano()%1000000)
}

// Get returns one payment or NotFound.
func (s *PaymentService) Get(ctx context.Context, schoolID, id uuid.UUID) (*paymentModel.PaymentModel, error) {
	p, err := s.Payments.ByID(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errs.New(errs.NotFound, constants.MsgPaymentNotFound)
	}
	return p, nil
}

// List returns payments in the optional [from, to] paid-date range.
func (s *PaymentService) List(ctx context.Context, schoolID uuid.UUID, from, to string, limit, offset int) ([]paymentModel.PaymentModel, int64, error) {
	var fromT, toT *time.Time
	if from != "" {
		d, err := time.ParseInLocation("2006-01-02", from, s.TZ)
		if err != nil {
			return nil, 0, errs.New(errs.InvalidInput, constants.MsgInvalidQuery)
		}
		fromT = &d
	}
	if to != "" {
		d, err := time.ParseInLocation("2006-01-02", to, s.TZ)
		if err != nil {
			return nil, 0, errs.New(errs.InvalidInput, constants.MsgInvalidQuery)
		}
		toT = &d
	}
	return s.Payments.ListBySchool(ctx, schoolID, fromT, toT, limit, offset)
}
