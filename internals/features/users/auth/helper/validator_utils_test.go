package helpers

import "testing"

func TestValidatePassword(t *testing.T) {
	tests := map[string]bool{
		"short1":          false,
		"onlyletters":     false,
		"12345678":        false,
		"salsa2024":       true,
		"Tango Nuevo 1 x": true,
	}
	for pw, ok := range tests {
		if err := ValidatePassword(pw); (err == nil) != ok {
			t.Errorf("ValidatePassword(%q) err = %v, want ok=%v", pw, err, ok)
		}
	}
}

func TestHashAndCheck(t *testing.T) {
	h, err := HashPassword("salsa2024")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h == "salsa2024" {
		t.Fatal("hash must not equal plaintext")
	}
	if err := CheckPasswordHash(h, "salsa2024"); err != nil {
		t.Fatalf("check: %v", err)
	}
	if err := CheckPasswordHash(h, "bachata2024"); err == nil {
		t.Fatal("wrong password accepted")
	}
}
