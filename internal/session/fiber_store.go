package session

import (
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
)

const (
	keyRole     = "role"
	keySelected = "selected_record_id"
)

// FromFiber reads the state kept in a fiber session.
func FromFiber(sess *fibersession.Session) State {
	var st State
	if role, ok := sess.Get(keyRole).(string); ok {
		st.Role = Role(role)
	}
	if id, ok := sess.Get(keySelected).(string); ok {
		st.SelectedRecordID = id
	}
	return st
}

// SaveTo writes st into sess and persists it.
func (s State) SaveTo(sess *fibersession.Session) error {
	if s.Role == RoleNone {
		sess.Delete(keyRole)
	} else {
		sess.Set(keyRole, string(s.Role))
	}
	if s.SelectedRecordID == "" {
		sess.Delete(keySelected)
	} else {
		sess.Set(keySelected, s.SelectedRecordID)
	}
	return sess.Save()
}
