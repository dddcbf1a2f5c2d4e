package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_Expired(t *testing.T) {
	createdAt := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	session := &Session{Token: "token", Email: "admin@example.com", CreatedAt: createdAt}

	assert.False(t, session.Expired(time.Hour, createdAt.Add(30*time.Minute)))
	assert.False(t, session.Expired(time.Hour, createdAt.Add(time.Hour)))
	assert.True(t, session.Expired(time.Hour, createdAt.Add(time.Hour+time.Second)))
}

func TestSession_ExpiredNormalizesTimeZones(t *testing.T) {
	manila := time.FixedZone("PST", 8*60*60)
	createdAt := time.Date(2026, 8, 28, 18, 0, 0, 0, manila) // 10:00 UTC
	session := &Session{Token: "token", CreatedAt: createdAt}

	now := time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)
	assert.False(t, session.Expired(time.Hour, now))
	assert.True(t, session.Expired(time.Hour, now.Add(time.Hour)))
}

func TestSession_ExpiresAt(t *testing.T) {
	createdAt := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	session := &Session{CreatedAt: createdAt}

	assert.Equal(t, createdAt.Add(24*time.Hour), session.ExpiresAt(24*time.Hour))
}
