// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles:
// handlers, services, and storage can all import types without depending
// on each other.
package types

// Member holds the fields shared by every person registered in the
// tracking system. Students and faculties embed it, so the JSON encoding
// is flat: { "id": "...", "name": "...", ..., "isActive": 0 }.
//
// Struct tags serve two purposes:
//
//  1. json:"..."  — the camelCase keys the admin UI expects.
//
//  2. validate:"..." — rules checked by the go-playground/validator
//     package. "required" means the field must be non-empty. There is no
//     format validation beyond presence.
type Member struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"     validate:"required"`
	Mobile   string     `json:"mobile"   validate:"required"`
	Address  string     `json:"address"  validate:"required"`
	Email    string     `json:"email"    validate:"required"`
	College  string     `json:"college"  validate:"required"`
	Password string     `json:"password" validate:"required"`
	IsActive ActiveFlag `json:"isActive"`
}

// Entity is implemented by every record kind that goes through the
// register / list / remove / toggle-active lifecycle.
//
// The methods use value receivers so a Student or Faculty can be passed
// around by value and still rebuilt with a modified Member.
type Entity[T any] interface {
	Base() Member
	WithBase(m Member) T
}

// Student is an intern registered in the system.
type Student struct {
	Member
	InternshipDomain string `json:"internshipDomain" validate:"required"`
}

func (s Student) Base() Member { return s.Member }

func (s Student) WithBase(m Member) Student {
	s.Member = m
	return s
}

// Faculty is a mentor registered in the system. It carries no fields
// beyond the shared Member set.
type Faculty struct {
	Member
}

func (f Faculty) Base() Member { return f.Member }

func (f Faculty) WithBase(m Member) Faculty {
	f.Member = m
	return f
}
