package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"session": map[string]any{
			"storeUser": map[string]any{
				"cookieName": "",
			},
		},
		"storage": map[string]any{
			"publicBaseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SESSION_STOREUSER_COOKIENAME", want: "session.storeUser.cookieName"},
		{envKey: "STORAGE_PUBLICBASEURL", want: "storage.publicBaseUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestSessionConfig_ExpiryDefaultsToOneDay(t *testing.T) {
	var cfg SessionConfig
	if got := cfg.Expiry(); got != 24*time.Hour {
		t.Fatalf("Expiry() = %v, want %v", got, 24*time.Hour)
	}

	cfg.ExpiryMinutes = 30
	if got := cfg.Expiry(); got != 30*time.Minute {
		t.Fatalf("Expiry() = %v, want %v", got, 30*time.Minute)
	}
}

func TestApplySessionDefaults(t *testing.T) {
	var sessions SessionsConfig
	applySessionDefaults(&sessions)

	if sessions.Admin.CookieName != "session_id" || sessions.Admin.Table != "sessions" {
		t.Fatalf("unexpected admin session defaults: %+v", sessions.Admin)
	}
	if sessions.StoreUser.CookieName != "store_user_session" || sessions.StoreUser.Table != "store_user_sessions" {
		t.Fatalf("unexpected store user session defaults: %+v", sessions.StoreUser)
	}

	// Configured values survive.
	sessions.Admin.CookieName = "custom"
	applySessionDefaults(&sessions)
	if sessions.Admin.CookieName != "custom" {
		t.Fatalf("configured cookie name was overwritten: %q", sessions.Admin.CookieName)
	}
}
