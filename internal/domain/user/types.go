package user

import "errors"

var ErrInvalidRole = errors.New("invalid user role")

type Role string

const (
	RoleGuest Role = "GUEST"
	RoleHost  Role = "HOST"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleGuest, RoleHost:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsHost() bool {
	return r == RoleHost
}
