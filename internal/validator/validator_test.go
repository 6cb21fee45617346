package validator

import "testing"

func TestStrictEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.domain.org",
		"u+tag@example.co",
	}
	invalid := []string{
		"",
		"no-at-sign",
		"a@b",
		"user@localhost",
		"a @b.com",
		"@example.com",
		"user@.com",
	}

	for _, email := range valid {
		if !strictEmailRegex.MatchString(email) {
			t.Errorf("expected %q to be accepted", email)
		}
	}
	for _, email := range invalid {
		if strictEmailRegex.MatchString(email) {
			t.Errorf("expected %q to be rejected", email)
		}
	}
}
