package helper

import (
	"errors"
	"testing"
)

type sampleInput struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"notblank,max=5"`
	Capacity int    `json:"max_participants" validate:"gt=0"`
}

func TestValidateStructUsesJSONNames(t *testing.T) {
	v := NewValidator()
	errs := ValidateStruct(v, sampleInput{Email: "nope", Name: "   ", Capacity: 0})
	if errs == nil {
		t.Fatal("expected errors")
	}
	for _, field := range []string{"email", "name", "max_participants"} {
		if len(errs[field]) == 0 {
			t.Errorf("missing errors for %q in %v", field, errs)
		}
	}
	if errs["email"][0] != "Enter a valid email address." {
		t.Errorf("email message = %q", errs["email"][0])
	}
}

func TestValidateStructOK(t *testing.T) {
	v := NewValidator()
	if errs := ValidateStruct(v, sampleInput{Email: "a@b.pl", Name: "Tango", Capacity: 3}); errs != nil {
		t.Fatalf("unexpected errors %v", errs)
	}
}

func TestValidationErrorMapNonValidator(t *testing.T) {
	got := ValidationErrorMap(errors.New("bad json"))
	if got["non_field_errors"][0] != "bad json" {
		t.Fatalf("got %v", got)
	}
}

func TestMergeFieldErrors(t *testing.T) {
	got := MergeFieldErrors(nil, map[string][]string{"a": {"x"}})
	got = MergeFieldErrors(got, map[string][]string{"a": {"y"}})
	if len(got["a"]) != 2 {
		t.Fatalf("got %v", got)
	}
}
