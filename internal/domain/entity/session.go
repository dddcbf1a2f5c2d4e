package entity

import "time"

// Session represents a server-side login session resolved from an HTTP-only
// cookie. The token is an opaque random identifier; the email links the
// session back to its identity record. Multiple concurrent sessions per email
// are permitted.
type Session struct {
	Token     string    // Opaque session token, unique per row.
	UserID    int64     // Identity id, populated for store-user sessions.
	Email     string    // Identity reference used to resolve the user.
	CreatedAt time.Time // Stored in UTC; expiry is CreatedAt + configured window.
}

// ExpiresAt computes the moment this session becomes invalid under the given
// expiry window.
func (s *Session) ExpiresAt(expiry time.Duration) time.Time {
	return s.CreatedAt.Add(expiry)
}

// Expired reports whether the session is past its window at the given instant.
// Both sides of the comparison are normalized to UTC so a "Z"-suffixed stored
// timestamp is never compared against a naive local time.
func (s *Session) Expired(expiry time.Duration, now time.Time) bool {
	return now.UTC().After(s.ExpiresAt(expiry).UTC())
}
