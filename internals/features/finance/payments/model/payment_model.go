package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MethodCash    = "cash"
	MethodBank    = "bank"
	MethodMobile  = "mobile"
	MethodGateway = "gateway"
)

type PaymentModel struct {
	PaymentID        uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`
	PaymentSchoolID  uuid.UUID `gorm:"column:payment_school_id;type:uuid;not null;index" json:"payment_school_id"`
	PaymentStudentID uuid.UUID `gorm:"column:payment_student_id;type:uuid;not null;index" json:"payment_student_id"`

	PaymentAmount    float64   `gorm:"column:payment_amount;type:numeric(12,2);not null" json:"payment_amount"`
	PaymentMethod    string    `gorm:"column:payment_method;type:varchar(20);not null" json:"payment_method"`
	PaymentReference *string   `gorm:"column:payment_reference;type:varchar(80)" json:"payment_reference,omitempty"`
	PaymentReceiptNo string    `gorm:"column:payment_receipt_no;type:varchar(40);not null" json:"payment_receipt_no"`
	PaymentPaidDate  time.Time `gorm:"column:payment_paid_date;type:date;not null" json:"payment_paid_date"`
	PaymentNote      *string   `gorm:"column:payment_note;type:varchar(255)" json:"payment_note,omitempty"`

	PaymentGatewayToken       *string `gorm:"column:payment_gateway_token;type:text" json:"payment_gateway_token,omitempty"`
	PaymentGatewayRedirectURL *string `gorm:"column:payment_gateway_redirect_url;type:text" json:"payment_gateway_redirect_url,omitempty"`

	PaymentCreatedAt time.Time      `gorm:"column:payment_created_at;not null;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt time.Time      `gorm:"column:payment_updated_at;not null;autoUpdateTime" json:"payment_updated_at"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index" json:"payment_deleted_at,omitempty"`
}

func (PaymentModel) TableName() string { return "payments" }
