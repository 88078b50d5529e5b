package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"dancebook_backend/internals/features/school/payments/model"
	"dancebook_backend/internals/helpers/dbtime"
)

var maxAmount = decimal.RequireFromString("99999999.99")

// checkAmount mirrors NUMERIC(10,2): non-negative, at most two decimals.
func checkAmount(a decimal.Decimal) []string {
	var msgs []string
	if a.IsNegative() {
		msgs = append(msgs, "Ensure this value is greater than or equal to 0.")
	}
	if a.GreaterThan(maxAmount) {
		msgs = append(msgs, "Ensure that there are no more than 10 digits in total.")
	}
	if !a.Equal(a.Round(2)) {
		msgs = append(msgs, "Ensure that there are no more than 2 decimal places.")
	}
	return msgs
}

/* =========================================================
   CREATE (admin)
========================================================= */

type PaymentCreateRequest struct {
	StudentID     string          `json:"student_id" validate:"required,uuid"`
	Amount        *decimal.Decimal `json:"amount" validate:"required"`
	PaymentType   string           `json:"payment_type" validate:"required,oneof=single monthly quarterly yearly"`
	PaymentMethod string           `json:"payment_method" validate:"required,oneof=cash transfer blik card"`
}

func (r *PaymentCreateRequest) Normalize() {
	r.StudentID = strings.TrimSpace(r.StudentID)
	r.PaymentType = strings.ToLower(strings.TrimSpace(r.PaymentType))
	r.PaymentMethod = strings.ToLower(strings.TrimSpace(r.PaymentMethod))
}

// Check covers what validator tags cannot express for decimals.
func (r PaymentCreateRequest) Check() map[string][]string {
	if r.Amount == nil {
		return nil
	}
	if msgs := checkAmount(*r.Amount); len(msgs) > 0 {
		return map[string][]string{"amount": msgs}
	}
	return nil
}

func (r PaymentCreateRequest) ToModel() *model.PaymentModel {
	studentID, _ := uuid.Parse(r.StudentID)
	return &model.PaymentModel{
		StudentID:     studentID,
		Amount:        *r.Amount,
		PaymentType:   model.PaymentType(r.PaymentType),
		PaymentMethod: model.PaymentMethod(r.PaymentMethod),
		Status:        model.PaymentPending,
	}
}

/* =========================================================
   PATCH (admin, pending only)
========================================================= */

type PaymentUpdateRequest struct {
	Amount        *decimal.Decimal `json:"amount"`
	PaymentType   *string          `json:"payment_type" validate:"omitempty,oneof=single monthly quarterly yearly"`
	PaymentMethod *string          `json:"payment_method" validate:"omitempty,oneof=cash transfer blik card"`
}

func (r *PaymentUpdateRequest) Normalize() {
	for _, p := range []*string{r.PaymentType, r.PaymentMethod} {
		if p != nil {
			*p = strings.ToLower(strings.TrimSpace(*p))
		}
	}
}

func (r PaymentUpdateRequest) Check() map[string][]string {
	if r.Amount == nil {
		return nil
	}
	if msgs := checkAmount(*r.Amount); len(msgs) > 0 {
		return map[string][]string{"amount": msgs}
	}
	return nil
}

func (r *PaymentUpdateRequest) ApplyUpdate(m *model.PaymentModel) {
	if r.Amount != nil {
		m.Amount = *r.Amount
	}
	if r.PaymentType != nil {
		m.PaymentType = model.PaymentType(*r.PaymentType)
	}
	if r.PaymentMethod != nil {
		m.PaymentMethod = model.PaymentMethod(*r.PaymentMethod)
	}
}

/* =========================================================
   QUERY / RESPONSE
========================================================= */

type ListPaymentsQuery struct {
	StudentID string `query:"student_id" json:"student_id" validate:"omitempty,uuid"`
	Status    string `query:"status" json:"status" validate:"omitempty,oneof=pending completed failed refunded"`
}

type PaymentResponse struct {
	ID            uuid.UUID           `json:"id"`
	StudentID     uuid.UUID           `json:"student_id"`
	StudentName   string              `json:"student_name,omitempty"`
	Amount        string              `json:"amount"`
	PaymentType   model.PaymentType   `json:"payment_type"`
	PaymentMethod model.PaymentMethod `json:"payment_method"`
	Status        model.PaymentStatus `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
	PaidAt        *time.Time          `json:"paid_at"`
	ValidUntil    *string             `json:"valid_until"`
}

func FromModel(m *model.PaymentModel) PaymentResponse {
	resp := PaymentResponse{
		ID:            m.ID,
		StudentID:     m.StudentID,
		Amount:        m.Amount.StringFixed(2),
		PaymentType:   m.PaymentType,
		PaymentMethod: m.PaymentMethod,
		Status:        m.Status,
		CreatedAt:     m.CreatedAt,
		PaidAt:        m.PaidAt,
		ValidUntil:    dbtime.FormatDatePtr(m.ValidUntil),
	}
	if m.Student != nil {
		resp.StudentName = m.Student.FullName()
	}
	return resp
}

func FromModels(rows []model.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
