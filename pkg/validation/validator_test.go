package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type signupForm struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Role     string `json:"role" binding:"required,role"`
}

func validate(t *testing.T, v any) error {
	t.Helper()
	Init()
	engine, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		t.Fatal("gin binding validator unavailable")
	}
	return engine.Struct(v)
}

func TestToDetailsFieldMessages(t *testing.T) {
	err := validate(t, signupForm{
		Email:    "not-an-email",
		Password: "short",
		Role:     "superuser",
	})
	if err == nil {
		t.Fatal("expected validation errors")
	}

	details := ToDetails(err)
	want := map[string]string{
		"name":     "is required",
		"email":    "must be a valid email",
		"password": "min length 8",
		"role":     "must be one of: user, admin",
	}
	for field, msg := range want {
		if details[field] != msg {
			t.Errorf("%s = %q, want %q", field, details[field], msg)
		}
	}
}

func TestToDetailsUsesJSONNames(t *testing.T) {
	type form struct {
		DisplayName string `json:"display_name" binding:"required"`
	}
	details := ToDetails(validate(t, form{}))
	if details["display_name"] == "" {
		t.Fatalf("details keyed by struct name, not json tag: %v", details)
	}
}

func TestToDetailsValidInput(t *testing.T) {
	err := validate(t, signupForm{
		Name:     "Demo",
		Email:    "demo@example.com",
		Password: "password123",
		Role:     "admin",
	})
	if err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
	if ToDetails(nil) != nil {
		t.Fatal("nil error should yield nil details")
	}
}
