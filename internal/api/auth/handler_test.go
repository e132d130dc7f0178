package auth

import "testing"

func TestIsPasswordStrong(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"abcd1234", true},
		{"longenough1", true},
		{"short1", false},
		{"onlyletters", false},
		{"12345678", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := isPasswordStrong(tc.password); got != tc.want {
			t.Errorf("isPasswordStrong(%q) = %v, want %v", tc.password, got, tc.want)
		}
	}
}

func TestIsEmailValid(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"ana@example.com", true},
		{"ana.silva+tag@sub.example.co", true},
		{"no-at-sign", false},
		{"missing@tld", false},
		{"@example.com", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := isEmailValid(tc.email); got != tc.want {
			t.Errorf("isEmailValid(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}

func TestGenerateTokenIsUnique(t *testing.T) {
	a := generateToken()
	b := generateToken()

	if len(a) != 32 {
		t.Errorf("token length = %d, want 32 hex chars", len(a))
	}
	if a == b {
		t.Error("two generated tokens collided")
	}
}
