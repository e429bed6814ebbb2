// Package session holds the per-client view state: who is signed in and which
// application the reviewer has open.
package session

import (
	"errors"
	"fmt"
	"strings"
)

type Role string

const (
	RoleNone     Role = ""
	RoleEmployee Role = "employee"
	RoleHR       Role = "hr"
)

var ErrUnknownRole = errors.New("role must be employee or hr")

func ParseRole(s string) (Role, error) {
	switch role := Role(strings.ToLower(strings.TrimSpace(s))); role {
	case RoleEmployee, RoleHR:
		return role, nil
	default:
		return RoleNone, fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

type State struct {
	Role             Role
	SelectedRecordID string
}

func (s State) LoggedIn() bool {
	return s.Role != RoleNone
}

// Login switches role and closes any open detail view.
func (s *State) Login(role Role) {
	s.Role = role
	s.SelectedRecordID = ""
}

// Logout returns to role selection. Stored applications are untouched.
func (s *State) Logout() {
	s.Role = RoleNone
	s.SelectedRecordID = ""
}

func (s *State) Select(id string) {
	s.SelectedRecordID = id
}

func (s *State) Dismiss() {
	s.SelectedRecordID = ""
}
