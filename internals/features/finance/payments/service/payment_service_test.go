package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	paymentModel "schoolku_backend/internals/features/finance/payments/model"
	"schoolku_backend/internals/features/finance/payments/service"
	"schoolku_backend/internals/features/finance/payments/store"
	studentModel "schoolku_backend/internals/features/people/students/model"
	"schoolku_backend/internals/helpers/errs"
	"schoolku_backend/internals/helpers/txscope"
)

var fixedNow = time.Date(2025, 9, 20, 10, 0, 0, 0, time.UTC)

type fakeGateway struct {
	calls int
	fail  bool
}

func (g *fakeGateway) CreateTransaction(orderID string, grossAmount int64, customerName string) (string, string, error) {
	g.calls++
	if g.fail {
		return "", "", errors.New("gateway unreachable")
	}
	return "snap-token-" + orderID, "https://pay.example/" + orderID, nil
}

type fixture struct {
	svc       *service.PaymentService
	payments  *store.MemoryPaymentStore
	gateway   *fakeGateway
	schoolID  uuid.UUID
	studentID uuid.UUID
}

func newFixture(t *testing.T, active bool) fixture {
	t.Helper()

	schoolID := uuid.New()
	studentID := uuid.New()

	students := store.NewMemoryStudentResolver()
	students.Put(studentModel.StudentModel{
		StudentID:          studentID,
		StudentSchoolID:    schoolID,
		StudentAdmissionNo: "ADM-001",
		StudentFullName:    "Jane Doe",
		StudentIsActive:    active,
	})

	payments := store.NewMemoryPaymentStore()
	gw := &fakeGateway{}
	svc := service.NewPaymentService(students, payments, gw, time.UTC)
	svc.Now = func() time.Time { return fixedNow }

	return fixture{svc: svc, payments: payments, gateway: gw, schoolID: schoolID, studentID: studentID}
}

func strptr(s string) *string { return &s }

func TestRecordPayment_Succeeds(t *testing.T) {
	f := newFixture(t, true)

	row, err := f.svc.Record(context.Background(), f.schoolID, service.RecordPaymentInput{
		StudentID: f.studentID,
		Amount:    150000,
		Method:    paymentModel.MethodCash,
		Reference: strptr("BNK-778"),
		PaidDate:  "2025-09-20",
		Note:      strptr("Term 1 fees"),
	}, txscope.None())
	require.NoError(t, err)

	assert.Equal(t, f.studentID, row.PaymentStudentID)
	assert.Equal(t, "2025-09-20", row.PaymentPaidDate.Format("2006-01-02"))
	assert.True(t, strings.HasPrefix(row.PaymentReceiptNo, "RCP-20250920-"), row.PaymentReceiptNo)
	assert.NotEqual(t, uuid.Nil, row.PaymentID)
	// cash payments never touch the gateway
	assert.Zero(t, f.gateway.calls)
}

func TestRecordPayment_StudentNotFound(t *testing.T) {
	f := newFixture(t, true)

	_, err := f.svc.Record(context.Background(), f.schoolID, service.RecordPaymentInput{
		StudentID: uuid.New(),
		Amount:    1000,
		Method:    paymentModel.MethodCash,
		PaidDate:  "2025-09-20",
	}, txscope.None())
	assert.Equal(t, errs.NotFound, errs.KindOf(err))
}

func TestRecordPayment_InactiveStudent(t *testing.T) {
	f := newFixture(t, false)

	_, err := f.svc.Record(context.Background(), f.schoolID, service.RecordPaymentInput{
		StudentID: f.studentID,
		Amount:    1000,
		Method:    paymentModel.MethodCash,
		PaidDate:  "2025-09-20",
	}, txscope.None())
	assert.Equal(t, errs.InvalidState, errs.KindOf(err))
}

func TestRecordPayment_FuturePaidDateRejected(t *testing.T) {
	f := newFixture(t, true)

	_, err := f.svc.Record(context.Background(), f.schoolID, service.RecordPaymentInput{
		StudentID: f.studentID,
		Amount:    1000,
		Method:    paymentModel.MethodCash,
		PaidDate:  "2025-09-21",
	}, txscope.None())
	assert.Equal(t, errs.InvalidInput, errs.KindOf(err))

	// today itself is fine
	_, err = f.svc.Record(context.Background(), f.schoolID, service.RecordPaymentInput{
		StudentID: f.studentID,
		Amount:    1000,
		Method:    paymentModel.MethodCash,
		PaidDate:  "2025-09-20",
	}, txscope.None())
	assert.NoError(t, err)
}

func TestRecordPayment_DuplicateReferenceConflicts(t *testing.T) {
	f := newFixture(t, true)

	in := service.RecordPaymentInput{
		StudentID: f.studentID,
		Amount:    1000,
		Method:    paymentModel.MethodBank,
		Reference: strptr("BNK-001"),
		PaidDate:  "2025-09-20",
	}
	_, err := f.svc.Record(context.Background(), f.schoolID, in, txscope.None())
	require.NoError(t, err)

	// case-insensitive collision
	in.Reference = strptr("bnk-001")
	_, err = f.svc.Record(context.Background(), f.schoolID, in, txscope.None())
	assert.Equal(t, errs.Conflict, errs.KindOf(err))

	// no second record was written
	_, total, err := f.svc.List(context.Background(), f.schoolID, "", "", 20, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestRecordPayment_StorageDuplicateBecomesConflict(t *testing.T) {
	// Two submissions can both pass the pre-check before either commits;
	// the unique index is the backstop and must surface as Conflict too.
	f := newFixture(t, true)

	seeded := &paymentModel.PaymentModel{
		PaymentSchoolID:  f.schoolID,
		PaymentStudentID: f.studentID,
		PaymentAmount:    500,
		PaymentMethod:    paymentModel.MethodBank,
		PaymentReference: strptr("BNK-RACE"),
		PaymentReceiptNo: "RCP-SEED",
		PaymentPaidDate:  time.Date(2025, 9, 19, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, f.payments.Create(context.Background(), seeded, txscope.None()))

	_, err := f.svc.Record(context.Background(), f.schoolID, service.RecordPaymentInput{
		StudentID: f.studentID,
		Amount:    500,
		Method:    paymentModel.MethodBank,
		Reference: strptr("BNK-RACE"),
		PaidDate:  "2025-09-20",
	}, txscope.None())
	assert.Equal(t, errs.Conflict, errs.KindOf(err))
}

func TestRecordPayment_MissingReferenceNeverCollides(t *testing.T) {
	f := newFixture(t, true)

	for i := 0; i < 3; i++ {
		_, err := f.svc.Record(context.Background(), f.schoolID, service.RecordPaymentInput{
			StudentID: f.studentID,
			Amount:    1000,
			Method:    paymentModel.MethodCash,
			PaidDate:  "2025-09-20",
		}, txscope.None())
		require.NoError(t, err)
	}

	_, total, err := f.svc.List(context.Background(), f.schoolID, "", "", 20, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
}

func TestRecordPayment_GatewayTokenStored(t *testing.T) {
	f := newFixture(t, true)

	row, err := f.svc.Record(context.Background(), f.schoolID, service.RecordPaymentInput{
		StudentID: f.studentID,
		Amount:    250000,
		Method:    paymentModel.MethodGateway,
		PaidDate:  "2025-09-20",
	}, txscope.None())
	require.NoError(t, err)
	require.NotNil(t, row.PaymentGatewayToken)
	assert.Equal(t, "snap-token-"+row.PaymentReceiptNo, *row.PaymentGatewayToken)
	assert.Equal(t, 1, f.gateway.calls)

	stored, err := f.svc.Get(context.Background(), f.schoolID, row.PaymentID)
	require.NoError(t, err)
	require.NotNil(t, stored.PaymentGatewayToken)
}

// readCommittedStore emulates database visibility rules: rows written
// inside a transaction stay invisible to pool-handle reads and writes
// until commit, so any write that escapes the caller's transaction
// silently matches nothing, exactly like a zero-row UPDATE.
type readCommittedStore struct {
	committed *store.MemoryPaymentStore
	pending   []paymentModel.PaymentModel
}

func (s *readCommittedStore) ReferenceExists(ctx context.Context, schoolID uuid.UUID, reference string) (bool, error) {
	return s.committed.ReferenceExists(ctx, schoolID, reference)
}

func (s *readCommittedStore) Create(ctx context.Context, row *paymentModel.PaymentModel, scope txscope.Scope) error {
	if !scope.InTransaction() {
		return s.committed.Create(ctx, row, scope)
	}
	if row.PaymentID == uuid.Nil {
		row.PaymentID = uuid.New()
	}
	s.pending = append(s.pending, *row)
	return nil
}

func (s *readCommittedStore) SaveGatewayResult(ctx context.Context, row *paymentModel.PaymentModel, scope txscope.Scope) error {
	if !scope.InTransaction() {
		// pool handle: the uncommitted row does not exist here yet
		return s.committed.SaveGatewayResult(ctx, row, scope)
	}
	for i := range s.pending {
		if s.pending[i].PaymentID == row.PaymentID {
			s.pending[i].PaymentGatewayToken = row.PaymentGatewayToken
			s.pending[i].PaymentGatewayRedirectURL = row.PaymentGatewayRedirectURL
			return nil
		}
	}
	return nil
}

func (s *readCommittedStore) ByID(ctx context.Context, schoolID, id uuid.UUID) (*paymentModel.PaymentModel, error) {
	return s.committed.ByID(ctx, schoolID, id)
}

func (s *readCommittedStore) ListBySchool(ctx context.Context, schoolID uuid.UUID, from, to *time.Time, limit, offset int) ([]paymentModel.PaymentModel, int64, error) {
	return s.committed.ListBySchool(ctx, schoolID, from, to, limit, offset)
}

func (s *readCommittedStore) commit(ctx context.Context) error {
	for i := range s.pending {
		row := s.pending[i]
		if err := s.committed.Create(ctx, &row, txscope.None()); err != nil {
			return err
		}
	}
	s.pending = nil
	return nil
}

func TestRecordPayment_GatewayTokenSurvivesCallerTransaction(t *testing.T) {
	// The HTTP handler records inside DB.Transaction, so the gateway token
	// update must run on the same handle as the insert. A pool-handle
	// update would match zero rows and the token would be gone on commit.
	f := newFixture(t, true)
	rc := &readCommittedStore{committed: f.payments}
	f.svc.Payments = rc

	row, err := f.svc.Record(context.Background(), f.schoolID, service.RecordPaymentInput{
		StudentID: f.studentID,
		Amount:    250000,
		Method:    paymentModel.MethodGateway,
		PaidDate:  "2025-09-20",
	}, txscope.Within(&gorm.DB{}))
	require.NoError(t, err)
	require.NotNil(t, row.PaymentGatewayToken)

	require.NoError(t, rc.commit(context.Background()))

	stored, err := f.svc.Get(context.Background(), f.schoolID, row.PaymentID)
	require.NoError(t, err)
	require.NotNil(t, stored.PaymentGatewayToken)
	assert.Equal(t, "snap-token-"+row.PaymentReceiptNo, *stored.PaymentGatewayToken)
}

func TestRecordPayment_GatewayFailureDoesNotFailRecording(t *testing.T) {
	f := newFixture(t, true)
	f.gateway.fail = true

	row, err := f.svc.Record(context.Background(), f.schoolID, service.RecordPaymentInput{
		StudentID: f.studentID,
		Amount:    250000,
		Method:    paymentModel.MethodGateway,
		PaidDate:  "2025-09-20",
	}, txscope.None())
	require.NoError(t, err)
	assert.Nil(t, row.PaymentGatewayToken)

	// the payment itself was still recorded
	stored, err := f.svc.Get(context.Background(), f.schoolID, row.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, row.PaymentReceiptNo, stored.PaymentReceiptNo)
}

func TestListPayments_DateFilter(t *testing.T) {
	f := newFixture(t, true)

	for _, day := range []string{"2025-09-18", "2025-09-19", "2025-09-20"} {
		_, err := f.svc.Record(context.Background(), f.schoolID, service.RecordPaymentInput{
			StudentID: f.studentID,
			Amount:    1000,
			Method:    paymentModel.MethodCash,
			PaidDate:  day,
		}, txscope.None())
		require.NoError(t, err)
	}

	rows, total, err := f.svc.List(context.Background(), f.schoolID, "2025-09-19", "2025-09-20", 20, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, rows, 2)

	_, _, err = f.svc.List(context.Background(), f.schoolID, "19-09-2025", "", 20, 0)
	assert.Equal(t, errs.InvalidInput, errs.KindOf(err))
}

func TestGetPayment_NotFound(t *testing.T) {
	f := newFixture(t, true)

	_, err := f.svc.Get(context.Background(), f.schoolID, uuid.New())
	assert.Equal(t, errs.NotFound, errs.KindOf(err))
}
