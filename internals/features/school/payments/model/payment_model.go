package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	studentModel "dancebook_backend/internals/features/users/students/model"
)

type PaymentType string

const (
	TypeSingle    PaymentType = "single"
	TypeMonthly   PaymentType = "monthly"
	TypeQuarterly PaymentType = "quarterly"
	TypeYearly    PaymentType = "yearly"
)

type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodTransfer PaymentMethod = "transfer"
	MethodBlik     PaymentMethod = "blik"
	MethodCard     PaymentMethod = "card"
)

// PaymentModel: status, paid_at and valid_until are server-controlled.
type PaymentModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID     uuid.UUID       `gorm:"type:uuid;not null" json:"student_id"`
	Amount        decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	PaymentType   PaymentType     `gorm:"size:20;not null" json:"payment_type"`
	PaymentMethod PaymentMethod   `gorm:"size:20;not null" json:"payment_method"`
	Status        PaymentStatus   `gorm:"size:20;not null;default:pending" json:"status"`
	CreatedAt     time.Time       `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	PaidAt        *time.Time      `gorm:"type:timestamptz" json:"paid_at,omitempty"`
	ValidUntil    *datatypes.Date `gorm:"type:date" json:"valid_until,omitempty"`

	Student *studentModel.StudentModel `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

// ValidUntil is the last day a payment made on paid covers, in the school's calendar.
// Unknown types cover the paid day only.
func ValidUntil(t PaymentType, paid time.Time, loc *time.Location) datatypes.Date {
	local := paid.In(loc)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
	switch t {
	case TypeMonthly:
		day = addMonths(day, 1)
	case TypeQuarterly:
		day = addMonths(day, 3)
	case TypeYearly:
		day = addMonths(day, 12)
	}
	return datatypes.Date(day)
}

// addMonths clamps to the last day of the target month (Jan 31 + 1 → Feb 28).
func addMonths(d time.Time, n int) time.Time {
	first := time.Date(d.Year(), d.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()
	day := d.Day()
	if day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}
