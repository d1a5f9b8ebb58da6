package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidLoginID  = errors.New("login id must be 4-20 lowercase letters or digits")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidPassword = errors.New("password must be at least 8 characters")
)

var (
	loginIDPattern = regexp.MustCompile(`^[a-z0-9]{4,20}$`)
	emailPattern   = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

type LoginID struct {
	value string
}

func NewLoginID(s string) (LoginID, error) {
	s = strings.TrimSpace(s)
	if !loginIDPattern.MatchString(s) {
		return LoginID{}, ErrInvalidLoginID
	}
	return LoginID{value: s}, nil
}

func (l LoginID) String() string { return l.value }

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if !emailPattern.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) String() string { return e.value }

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrInvalidPassword
	}
	return Password{value: s}, nil
}

func (p Password) Value() string { return p.value }

type Credentials struct {
	loginID  LoginID
	password Password
}

func NewCredentials(loginID, password string) (Credentials, error) {
	l, err := NewLoginID(loginID)
	if err != nil {
		return Credentials{}, err
	}
	p, err := NewPassword(password)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{loginID: l, password: p}, nil
}

func (c Credentials) LoginID() LoginID   { return c.loginID }
func (c Credentials) Password() Password { return c.password }
