package utils

import "testing"

func TestNormalizePhoneNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"(555) 123-4567", "5551234567"},
		{"+1 555 123 4567", "+15551234567"},
		{"  +33 6 12 34 56 78 ", "+33612345678"},
		{"555.123.4567", "5551234567"},
		{"", ""},
		{"+", ""},
	}
	for _, tt := range tests {
		if got := NormalizePhoneNumber(tt.in); got != tt.want {
			t.Errorf("NormalizePhoneNumber(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidatePhoneNumber(t *testing.T) {
	valid := []string{"5551234", "+15551234567", "+442071838750"}
	for _, number := range valid {
		if !ValidatePhoneNumber(number) {
			t.Errorf("ValidatePhoneNumber(%q) = false, want true", number)
		}
	}

	invalid := []string{"", "123456", "+123456789012345678"}
	for _, number := range invalid {
		if ValidatePhoneNumber(number) {
			t.Errorf("ValidatePhoneNumber(%q) = true, want false", number)
		}
	}
}
