// Package auth decides how member passwords are stored and how a claimed
// password is checked against the stored one.
//
// Callers never compare passwords themselves; they go through a Verifier,
// so the storage scheme can change from plaintext to bcrypt without
// touching the login path.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	SchemePlaintext = "plaintext"
	SchemeBcrypt    = "bcrypt"
)

// Verifier turns a password into its stored form and checks claims
// against that form.
type Verifier interface {
	// Seal returns the value to persist for password.
	Seal(password string) (string, error)

	// Verify reports whether claimed matches the stored value.
	Verify(claimed, stored string) bool
}

// Account is a fixed credential pair that does not live in a table.
type Account struct {
	Email    string
	Password string
}

// Matches reports whether email and password are exactly the account's.
func (a Account) Matches(email, password string) bool {
	return a.Email != "" &&
		email == a.Email &&
		Plaintext{}.Verify(password, a.Password)
}

// New returns the Verifier for the named scheme.
func New(scheme string) (Verifier, error) {
	switch scheme {
	case SchemePlaintext, "":
		return Plaintext{}, nil
	case SchemeBcrypt:
		return NewBcrypt(), nil
	default:
		return nil, fmt.Errorf("auth: unknown password scheme %q", scheme)
	}
}

// Plaintext stores passwords as given. It exists for compatibility with
// databases created by the legacy admin panel.
type Plaintext struct{}

func (Plaintext) Seal(password string) (string, error) { return password, nil }

func (Plaintext) Verify(claimed, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(claimed), []byte(stored)) == 1
}

// DefaultBcryptCost is used by NewBcrypt.
const DefaultBcryptCost = 12

// MaxBcryptPasswordLen is the longest password bcrypt can hash, in bytes.
const MaxBcryptPasswordLen = 72

// ErrPasswordTooLong is returned by Seal for a password the scheme cannot
// store. It is a problem with the input, not with the store.
var ErrPasswordTooLong = errors.New("password is too long")

// Bcrypt stores salted bcrypt hashes.
type Bcrypt struct {
	cost int
}

// NewBcrypt returns a Bcrypt verifier with DefaultBcryptCost.
func NewBcrypt() *Bcrypt {
	return &Bcrypt{cost: DefaultBcryptCost}
}

// NewBcryptWithCost is NewBcrypt with an explicit cost; tests use
// bcrypt.MinCost to stay fast.
func NewBcryptWithCost(cost int) *Bcrypt {
	return &Bcrypt{cost: cost}
}

func (b *Bcrypt) Seal(password string) (string, error) {
	if len(password) > MaxBcryptPasswordLen {
		return "", fmt.Errorf("%w: at most %d bytes", ErrPasswordTooLong, MaxBcryptPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("auth: hash password: %w", err)
	}
	return string(hash), nil
}

func (b *Bcrypt) Verify(claimed, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(claimed)) == nil
}
