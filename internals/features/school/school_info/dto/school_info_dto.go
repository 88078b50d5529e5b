package dto

import (
	"strings"
	"time"

	"dancebook_backend/internals/features/school/school_info/model"
)

// SchoolInfoUpdateRequest serves PUT and PATCH; nil fields stay untouched.
type SchoolInfoUpdateRequest struct {
	Name                *string `json:"name" validate:"omitempty,notblank,max=200"`
	Address             *string `json:"address" validate:"omitempty,notblank"`
	Phone               *string `json:"phone" validate:"omitempty,notblank,max=20"`
	Email               *string `json:"email" validate:"omitempty,email,max=255"`
	BankName            *string `json:"bank_name" validate:"omitempty,notblank,max=100"`
	BankAccount         *string `json:"bank_account" validate:"omitempty,notblank,max=50"`
	BankRecipient       *string `json:"bank_recipient" validate:"omitempty,notblank,max=200"`
	BlikNumber          *string `json:"blik_number" validate:"omitempty,max=20"`
	TransferTitlePrefix *string `json:"transfer_title_prefix" validate:"omitempty,max=100"`
	TaxID               *string `json:"tax_id" validate:"omitempty,max=20"`
}

func (r *SchoolInfoUpdateRequest) fields() []*string {
	return []*string{
		r.Name, r.Address, r.Phone, r.Email, r.BankName, r.BankAccount,
		r.BankRecipient, r.BlikNumber, r.TransferTitlePrefix, r.TaxID,
	}
}

func (r *SchoolInfoUpdateRequest) Normalize() {
	for _, p := range r.fields() {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
	if r.Email != nil {
		*r.Email = strings.ToLower(*r.Email)
	}
}

func (r *SchoolInfoUpdateRequest) Empty() bool {
	for _, p := range r.fields() {
		if p != nil {
			return false
		}
	}
	return true
}

// Changes returns the column→value map for gorm Updates.
func (r *SchoolInfoUpdateRequest) Changes() map[string]any {
	out := map[string]any{}
	set := func(col string, p *string) {
		if p != nil {
			out[col] = *p
		}
	}
	set("name", r.Name)
	set("address", r.Address)
	set("phone", r.Phone)
	set("email", r.Email)
	set("bank_name", r.BankName)
	set("bank_account", r.BankAccount)
	set("bank_recipient", r.BankRecipient)
	set("blik_number", r.BlikNumber)
	set("transfer_title_prefix", r.TransferTitlePrefix)
	set("tax_id", r.TaxID)
	return out
}

type SchoolInfoResponse struct {
	Name                string    `json:"name"`
	Address             string    `json:"address"`
	Phone               string    `json:"phone"`
	Email               string    `json:"email"`
	BankName            string    `json:"bank_name"`
	BankAccount         string    `json:"bank_account"`
	BankRecipient       string    `json:"bank_recipient"`
	BlikNumber          string    `json:"blik_number"`
	TransferTitlePrefix string    `json:"transfer_title_prefix"`
	TaxID               string    `json:"tax_id"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func FromModel(m *model.SchoolInfoModel) SchoolInfoResponse {
	return SchoolInfoResponse{
		Name:                m.Name,
		Address:             m.Address,
		Phone:               m.Phone,
		Email:               m.Email,
		BankName:            m.BankName,
		BankAccount:         m.BankAccount,
		BankRecipient:       m.BankRecipient,
		BlikNumber:          m.BlikNumber,
		TransferTitlePrefix: m.TransferTitlePrefix,
		TaxID:               m.TaxID,
		UpdatedAt:           m.UpdatedAt,
	}
}
