package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Text is a form field stored as a string. The admin UI posts some
// fields, such as mobile numbers, as JSON numbers, so any scalar is
// accepted and kept as written: 9876543210 becomes "9876543210".
// Objects and arrays are rejected.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errors.New("empty value")
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case '{', '[':
		return fmt.Errorf("expected a text value, got %s", data)
	case 'n':
		*t = ""
	default:
		*t = Text(data)
	}
	return nil
}

// Form is a registration request body that builds a record of kind T.
type Form[T any] interface {
	Record() T
}

// MemberForm is the registration body shared by students and faculties.
// It has no id or isActive: both are assigned on registration, so any
// value a client sends for them is ignored without being decoded.
type MemberForm struct {
	Name     Text `json:"name"`
	Mobile   Text `json:"mobile"`
	Address  Text `json:"address"`
	Email    Text `json:"email"`
	College  Text `json:"college"`
	Password Text `json:"password"`
}

func (f MemberForm) member() Member {
	return Member{
		Name:     string(f.Name),
		Mobile:   string(f.Mobile),
		Address:  string(f.Address),
		Email:    string(f.Email),
		College:  string(f.College),
		Password: string(f.Password),
	}
}

// StudentForm is the body of POST /students.
type StudentForm struct {
	MemberForm
	InternshipDomain Text `json:"internshipDomain"`
}

func (f StudentForm) Record() Student {
	return Student{Member: f.member(), InternshipDomain: string(f.InternshipDomain)}
}

// FacultyForm is the body of POST /faculties.
type FacultyForm struct {
	MemberForm
}

func (f FacultyForm) Record() Faculty {
	return Faculty{Member: f.member()}
}
