package utils

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

type demoProject struct {
	Title       string `validate:"required,max=100"`
	Description string `validate:"required,min=50"`
}

type demoRequest struct {
	FirstName string        `validate:"required,max=50"`
	Email     string        `validate:"required,email"`
	Bio       string        `validate:"required,min=50,max=500"`
	Skills    []string      `validate:"required,min=1"`
	Website   string        `validate:"omitempty,url"`
	Projects  []demoProject `validate:"required,min=1,max=6,dive"`
}

func TestValidationErrorMap(t *testing.T) {
	v := validator.New()
	err := v.Struct(demoRequest{
		Email:   "not-an-email",
		Bio:     "short",
		Website: "not a url",
		Projects: []demoProject{
			{Title: "ok", Description: "short"},
		},
	})
	if err == nil {
		t.Fatal("expected validation errors")
	}

	fields := ValidationErrorMap(err)
	want := map[string]string{
		"firstName":               "is required",
		"email":                   "must be a valid email address",
		"bio":                     "must be at least 50 characters",
		"skills":                  "is required",
		"website":                 "must be a valid URL",
		"projects[0].description": "must be at least 50 characters",
	}
	for path, message := range want {
		if fields[path] != message {
			t.Errorf("fields[%q] = %q, want %q", path, fields[path], message)
		}
	}
}

func TestValidationErrorMapSliceBounds(t *testing.T) {
	v := validator.New()
	err := v.Struct(demoRequest{
		FirstName: "Ana",
		Email:     "ana@x.edu",
		Bio:       "I build small, sharp tools and occasionally a website that survives contact with users.",
		Skills:    []string{"Go"},
		Projects:  []demoProject{},
	})
	if err == nil {
		t.Fatal("expected validation errors")
	}

	fields := ValidationErrorMap(err)
	if fields["projects"] != "must have at least 1 items" {
		t.Errorf("projects message = %q", fields["projects"])
	}
}

func TestValidationErrorMapNonValidatorError(t *testing.T) {
	if fields := ValidationErrorMap(errors.New("unexpected EOF")); fields != nil {
		t.Errorf("expected nil for a non-validator error, got %v", fields)
	}
}

func TestSanitizeInput(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  Ana  ", "Ana"},
		{"Ana\x00Lee", "AnaLee"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := SanitizeInput(tc.in); got != tc.want {
			t.Errorf("SanitizeInput(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
