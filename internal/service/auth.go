package service

import (
	"context"

	"github.com/aanand-mishra/its-api/internal/auth"
	"github.com/aanand-mishra/its-api/internal/types"
)

// Auth checks login credentials. There are no sessions: a successful
// login simply echoes the email back as the caller's identity.
type Auth struct {
	admin     auth.Account
	students  *Registry[types.Student]
	faculties *Registry[types.Faculty]
}

func NewAuth(admin auth.Account, students *Registry[types.Student], faculties *Registry[types.Faculty]) *Auth {
	return &Auth{admin: admin, students: students, faculties: faculties}
}

// Authenticate returns creds.Email when the credentials are valid for
// creds.Role.
//
// Admin is checked against the configured account. Faculty and Student
// succeed when any record of that kind has the email and a password the
// registry's verifier accepts.
func (a *Auth) Authenticate(ctx context.Context, creds types.Credentials) (string, error) {
	if err := check(creds); err != nil {
		return "", err
	}

	var (
		ok  bool
		err error
	)
	switch creds.Role {
	case types.RoleAdmin:
		if !a.admin.Matches(creds.Email, creds.Password) {
			return "", ErrInvalidAdminCredentials
		}
		return creds.Email, nil
	case types.RoleFaculty:
		ok, err = a.faculties.matchCredentials(ctx, creds.Email, creds.Password)
	case types.RoleStudent:
		ok, err = a.students.matchCredentials(ctx, creds.Email, creds.Password)
	}
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrInvalidCredentials
	}

	return creds.Email, nil
}
