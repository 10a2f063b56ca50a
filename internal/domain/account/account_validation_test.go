package account_test

import (
	"testing"

	"aura-server/internal/domain/account"
)

func TestRegistrationValidator(t *testing.T) {
	validator := account.NewRegistrationValidator(nil)

	tests := []struct {
		name            string
		email           string
		password        string
		confirmPassword string
		want            []string
	}{
		{
			name:            "valid registration",
			email:           "student@iitbhilai.ac.in",
			password:        "TestPass123",
			confirmPassword: "TestPass123",
			want:            nil,
		},
		{
			name:            "foreign domain",
			email:           "student@gmail.com",
			password:        "TestPass123",
			confirmPassword: "TestPass123",
			want:            []string{"Only @iitbhilai.ac.in domain emails are allowed"},
		},
		{
			name:            "uppercase domain rejected",
			email:           "student@IITBhilai.ac.in",
			password:        "TestPass123",
			confirmPassword: "TestPass123",
			want:            []string{"Only @iitbhilai.ac.in domain emails are allowed"},
		},
		{
			name:            "short password",
			email:           "student@iitbhilai.ac.in",
			password:        "Tp1",
			confirmPassword: "Tp1",
			want:            []string{"Password must be at least 8 characters long"},
		},
		{
			name:            "no digit",
			email:           "student@iitbhilai.ac.in",
			password:        "TestPassword",
			confirmPassword: "TestPassword",
			want:            []string{"Password must contain at least one digit"},
		},
		{
			name:            "no uppercase",
			email:           "student@iitbhilai.ac.in",
			password:        "testpass123",
			confirmPassword: "testpass123",
			want:            []string{"Password must contain at least one uppercase letter"},
		},
		{
			name:            "mismatched confirmation",
			email:           "student@iitbhilai.ac.in",
			password:        "TestPass123",
			confirmPassword: "TestPass124",
			want:            []string{"Passwords do not match"},
		},
		{
			name:            "all rules broken in fixed order",
			email:           "student@gmail.com",
			password:        "weak",
			confirmPassword: "other",
			want: []string{
				"Only @iitbhilai.ac.in domain emails are allowed",
				"Password must be at least 8 characters long",
				"Password must contain at least one digit",
				"Password must contain at least one uppercase letter",
				"Passwords do not match",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validator.Validate(tt.email, tt.password, tt.confirmPassword)
			if len(got) != len(tt.want) {
				t.Fatalf("Validate() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Validate()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRegistrationValidatorCustomDomains(t *testing.T) {
	validator := account.NewRegistrationValidator(&account.RegistrationValidationConfig{
		AllowedDomains:    []string{"@iitbhilai.ac.in", "@example.org"},
		MinPasswordLength: 8,
	})

	if !validator.IsAllowedDomain("someone@example.org") {
		t.Error("IsAllowedDomain() = false for configured domain")
	}
	if validator.IsAllowedDomain("someone@example.com") {
		t.Error("IsAllowedDomain() = true for unlisted domain")
	}

	got := validator.Validate("someone@other.io", "TestPass123", "TestPass123")
	want := "Only @iitbhilai.ac.in or @example.org domain emails are allowed"
	if len(got) != 1 || got[0] != want {
		t.Errorf("Validate() = %v, want [%s]", got, want)
	}
}
