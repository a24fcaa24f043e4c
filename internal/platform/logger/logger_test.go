package logger

import (
	"strings"
	"testing"
)

func TestSanitizeKVsRedactsCredentials(t *testing.T) {
	l := &Logger{redact: redaction{enabled: true}}

	out := l.sanitizeKVs([]interface{}{"email", "a@b.c", "password", "pw", "route", "/login"})
	if len(out) != 6 {
		t.Fatalf("unexpected length: %d", len(out))
	}
	if out[1] != "[REDACTED]" || out[3] != "[REDACTED]" {
		t.Fatalf("expected credentials to be redacted, got %v", out)
	}
	if out[5] != "/login" {
		t.Fatalf("expected route untouched, got %v", out[5])
	}
}

func TestSanitizeKVsHashesUserIDs(t *testing.T) {
	l := &Logger{redact: redaction{enabled: true, salt: "s"}}

	out := l.sanitizeKVs([]interface{}{"user_id", 42})
	got, ok := out[1].(string)
	if !ok || !strings.HasPrefix(got, "hash:") {
		t.Fatalf("expected hashed user id, got %v", out[1])
	}
	again := l.sanitizeKVs([]interface{}{"user_id", 42})
	if again[1] != got {
		t.Fatalf("hash should be stable: %v vs %v", again[1], got)
	}
}

func TestSanitizeKVsDisabled(t *testing.T) {
	l := &Logger{}
	in := []interface{}{"password", "pw"}
	out := l.sanitizeKVs(in)
	if out[1] != "pw" {
		t.Fatalf("redaction disabled should pass values through, got %v", out[1])
	}
}
