package dto

import (
	"testing"

	"github.com/shopspring/decimal"

	"dancebook_backend/internals/features/school/payments/model"
	helper "dancebook_backend/internals/helpers"
)

func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestPaymentCreateRequestCheck(t *testing.T) {
	tests := []struct {
		amount string
		ok     bool
	}{
		{"0", true},
		{"150.00", true},
		{"99999999.99", true},
		{"100000000.00", false},
		{"-1", false},
		{"10.555", false},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			req := PaymentCreateRequest{Amount: amount(tt.amount)}
			errs := req.Check()
			if (errs == nil) != tt.ok {
				t.Fatalf("Check(%s) = %v", tt.amount, errs)
			}
		})
	}
}

func TestPaymentCreateRequestValidation(t *testing.T) {
	v := helper.NewValidator()

	req := PaymentCreateRequest{
		StudentID:     " 6f1b1a9e-5d53-4d8e-9a55-3b1f9b2c0a11 ",
		Amount:        amount("200"),
		PaymentType:   " Monthly ",
		PaymentMethod: "BLIK",
	}
	req.Normalize()
	if errs := helper.ValidateStruct(v, req); errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	m := req.ToModel()
	if m.Status != model.PaymentPending || m.PaymentType != model.TypeMonthly || m.PaymentMethod != model.MethodBlik {
		t.Fatalf("unexpected model %+v", m)
	}

	bad := PaymentCreateRequest{StudentID: "nope", PaymentType: "weekly", PaymentMethod: "cheque"}
	errs := helper.ValidateStruct(v, bad)
	for _, f := range []string{"student_id", "amount", "payment_type", "payment_method"} {
		if len(errs[f]) == 0 {
			t.Errorf("expected an error on %s, got %v", f, errs)
		}
	}
}

func TestPaymentResponseAmountFormatting(t *testing.T) {
	m := &model.PaymentModel{Amount: decimal.RequireFromString("120.5")}
	if got := FromModel(m).Amount; got != "120.50" {
		t.Fatalf("amount = %q", got)
	}
	if FromModel(m).ValidUntil != nil {
		t.Fatal("valid_until should be null until the payment completes")
	}
}
