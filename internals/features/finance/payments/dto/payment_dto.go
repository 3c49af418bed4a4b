package dto

import (
	"strings"

	"github.com/google/uuid"

	m "schoolku_backend/internals/features/finance/payments/model"
	"schoolku_backend/internals/features/finance/payments/service"
)

type CreatePaymentRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Amount    float64   `json:"amount" validate:"required,gt=0"`
	Method    string    `json:"method" validate:"required,oneof=cash bank mobile gateway"`
	Reference *string   `json:"reference" validate:"omitempty,min=1,max=80"`
	PaidDate  string    `json:"paid_date" validate:"required,datetime=2006-01-02"`
	Note      *string   `json:"note" validate:"omitempty,max=255"`
}

func (r *CreatePaymentRequest) Normalize() {
	r.Method = strings.ToLower(strings.TrimSpace(r.Method))
	r.PaidDate = strings.TrimSpace(r.PaidDate)
	if r.Reference != nil {
		v := strings.TrimSpace(*r.Reference)
		if v == "" {
			r.Reference = nil
		} else {
			r.Reference = &v
		}
	}
	if r.Note != nil {
		v := strings.TrimSpace(*r.Note)
		if v == "" {
			r.Note = nil
		} else {
			r.Note = &v
		}
	}
}

func (r CreatePaymentRequest) ToInput() service.RecordPaymentInput {
	return service.RecordPaymentInput{
		StudentID: r.StudentID,
		Amount:    r.Amount,
		Method:    r.Method,
		Reference: r.Reference,
		PaidDate:  r.PaidDate,
		Note:      r.Note,
	}
}

type PaymentResponse struct {
	PaymentID   uuid.UUID `json:"payment_id"`
	StudentID   uuid.UUID `json:"student_id"`
	Amount      float64   `json:"amount"`
	Method      string    `json:"method"`
	Reference   *string   `json:"reference,omitempty"`
	ReceiptNo   string    `json:"receipt_no"`
	PaidDate    string    `json:"paid_date"`
	Note        *string   `json:"note,omitempty"`
	SnapToken   *string   `json:"snap_token,omitempty"`
	RedirectURL *string   `json:"redirect_url,omitempty"`
}

func FromPaymentModel(p m.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.PaymentID,
		StudentID:   p.PaymentStudentID,
		Amount:      p.PaymentAmount,
		Method:      p.PaymentMethod,
		Reference:   p.PaymentReference,
		ReceiptNo:   p.PaymentReceiptNo,
		PaidDate:    p.PaymentPaidDate.Format("2006-01-02"),
		Note:        p.PaymentNote,
		SnapToken:   p.PaymentGatewayToken,
		RedirectURL: p.PaymentGatewayRedirectURL,
	}
}

func FromPaymentModels(rows []m.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromPaymentModel(r))
	}
	return out
}
