package dto

import (
	"testing"

	helper "dancebook_backend/internals/helpers"
)

func ptr(s string) *string { return &s }

func TestSchoolInfoUpdateChanges(t *testing.T) {
	req := SchoolInfoUpdateRequest{
		Name:  ptr("  Studio Rytm "),
		Email: ptr(" Kontakt@Rytm.PL "),
		TaxID: ptr(""),
	}
	req.Normalize()
	if errs := helper.ValidateStruct(helper.NewValidator(), req); errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}

	got := req.Changes()
	if len(got) != 3 {
		t.Fatalf("changes = %v", got)
	}
	if got["name"] != "Studio Rytm" || got["email"] != "kontakt@rytm.pl" || got["tax_id"] != "" {
		t.Fatalf("changes = %v", got)
	}
	if _, ok := got["address"]; ok {
		t.Fatal("untouched field included")
	}
}

func TestSchoolInfoUpdateValidation(t *testing.T) {
	req := SchoolInfoUpdateRequest{Name: ptr("   "), Email: ptr("nope")}
	req.Normalize()
	errs := helper.ValidateStruct(helper.NewValidator(), req)
	if len(errs["name"]) == 0 || len(errs["email"]) == 0 {
		t.Fatalf("errs = %v", errs)
	}

	if !(&SchoolInfoUpdateRequest{}).Empty() {
		t.Fatal("zero request should be empty")
	}
}
