package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Roles are a closed set. Role checks are exact-match; no role subsumes
// another.
const (
	RolePatient      = "patient"
	RoleMedicalStaff = "medical_staff"
)

// User is a provisioned account. Accounts are created out of band and are
// read-only to the credential authority: exactly one role per user, immutable
// after provisioning.
type User struct {
	Username     string
	Role         string
	PasswordHash string
}

// ErrUserNotFound is returned by UserStore implementations. The authority
// collapses it into ErrInvalidCredentials before anything reaches a caller.
var ErrUserNotFound = errors.New("user not found")

// UserStore looks up provisioned accounts. Implementations must be safe for
// concurrent use.
type UserStore interface {
	Lookup(ctx context.Context, username string) (*User, error)
}

// MemoryStore is an in-process UserStore. The map is never mutated after
// construction, so no locking is needed.
type MemoryStore struct {
	users map[string]*User
}

func NewMemoryStore(users ...*User) *MemoryStore {
	m := make(map[string]*User, len(users))
	for _, u := range users {
		m[u.Username] = u
	}
	return &MemoryStore{users: m}
}

func (s *MemoryStore) Lookup(_ context.Context, username string) (*User, error) {
	u, ok := s.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// HashPassword produces a bcrypt hash suitable for User.PasswordHash.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

// SeedDemoUsers builds a MemoryStore with the two demo accounts used in
// development: patient1/patientpass and medic1/medicpass. Hashes are computed
// at startup so no plaintext or precomputed hash is committed.
func SeedDemoUsers() (*MemoryStore, error) {
	patientHash, err := HashPassword("patientpass")
	if err != nil {
		return nil, err
	}
	medicHash, err := HashPassword("medicpass")
	if err != nil {
		return nil, err
	}
	return NewMemoryStore(
		&User{Username: "patient1", Role: RolePatient, PasswordHash: patientHash},
		&User{Username: "medic1", Role: RoleMedicalStaff, PasswordHash: medicHash},
	), nil
}
