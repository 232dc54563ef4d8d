package auth

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"guest-portal-backend/internal/model"
)

// Directory is an in-memory user list. Accounts are fixed demo users; there
// is no signup flow.
type Directory struct {
	mu    sync.RWMutex
	users map[string]directoryEntry
}

type directoryEntry struct {
	user         model.User
	passwordHash []byte
}

// NewDemoDirectory builds the directory of built-in demo accounts, one per
// role plus a tenant viewer for a second tenant.
func NewDemoDirectory() (*Directory, error) {
	d := &Directory{users: map[string]directoryEntry{}}

	demo := []struct {
		user     model.User
		password string
	}{
		{
			user: model.User{
				ID:    "user-admin",
				Email: "admin@guestportal.app",
				Name:  "Portal Admin",
				Role:  model.RoleSuperAdmin,
			},
			password: "admin123",
		},
		{
			user: model.User{
				ID:       "user-vista-admin",
				Email:    "manager@villavista.ba",
				Name:     "Villa Vista Manager",
				Role:     model.RoleTenantAdmin,
				TenantID: "tenant-vista",
			},
			password: "vista123",
		},
		{
			user: model.User{
				ID:       "user-stari-grad-viewer",
				Email:    "reception@starigrad.ba",
				Name:     "Stari Grad Reception",
				Role:     model.RoleTenantViewer,
				TenantID: "tenant-stari-grad",
			},
			password: "starigrad123",
		},
	}

	now := time.Now().UTC()
	for _, entry := range demo {
		hash, err := bcrypt.GenerateFromPassword([]byte(entry.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashing demo password: %w", err)
		}
		user := entry.user
		user.Active = true
		user.CreatedAt = now
		user.UpdatedAt = now
		d.users[strings.ToLower(user.Email)] = directoryEntry{user: user, passwordHash: hash}
	}
	return d, nil
}

var ErrInvalidCredentials = fmt.Errorf("invalid email or password")

// Authenticate checks the password for the account and returns the user.
// The same error comes back for an unknown email and a wrong password.
func (d *Directory) Authenticate(email, password string) (model.User, error) {
	d.mu.RLock()
	entry, ok := d.users[strings.ToLower(email)]
	d.mu.RUnlock()
	if !ok {
		return model.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(entry.passwordHash, []byte(password)); err != nil {
		return model.User{}, ErrInvalidCredentials
	}
	return entry.user, nil
}

// Lookup returns the user for an email without checking a password.
func (d *Directory) Lookup(email string) (model.User, bool) {
	d.mu.RLock()
	entry, ok := d.users[strings.ToLower(email)]
	d.mu.RUnlock()
	return entry.user, ok
}
