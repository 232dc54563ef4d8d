package auth

import (
	"errors"
	"testing"

	"guest-portal-backend/internal/model"
)

func TestAuthenticateDemoAccounts(t *testing.T) {
	directory, err := NewDemoDirectory()
	if err != nil {
		t.Fatalf("build directory: %v", err)
	}

	user, err := directory.Authenticate("admin@guestportal.app", "admin123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.Role != model.RoleSuperAdmin || user.TenantID != "" {
		t.Fatalf("user = %#v", user)
	}

	// Email matching is case-insensitive.
	if _, err := directory.Authenticate("Manager@VillaVista.ba", "vista123"); err != nil {
		t.Fatalf("mixed-case email rejected: %v", err)
	}
}

func TestAuthenticateFailsTheSameWay(t *testing.T) {
	directory, err := NewDemoDirectory()
	if err != nil {
		t.Fatalf("build directory: %v", err)
	}

	_, wrongPassword := directory.Authenticate("admin@guestportal.app", "nope")
	_, unknownEmail := directory.Authenticate("ghost@guestportal.app", "admin123")

	if !errors.Is(wrongPassword, ErrInvalidCredentials) || !errors.Is(unknownEmail, ErrInvalidCredentials) {
		t.Fatalf("errors differ: %v vs %v", wrongPassword, unknownEmail)
	}
}

func TestLookup(t *testing.T) {
	directory, err := NewDemoDirectory()
	if err != nil {
		t.Fatalf("build directory: %v", err)
	}

	user, ok := directory.Lookup("reception@starigrad.ba")
	if !ok || user.Role != model.RoleTenantViewer || user.TenantID != "tenant-stari-grad" {
		t.Fatalf("lookup = %#v ok=%v", user, ok)
	}
	if _, ok := directory.Lookup("ghost@guestportal.app"); ok {
		t.Fatal("unknown email found")
	}
}
