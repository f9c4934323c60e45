package sqlite

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type warning struct {
	msg    string
	fields map[string]interface{}
}

type mockLogger struct {
	warnings []warning
}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.warnings = append(m.warnings, warning{msg: msg, fields: fields})
}

func newTestClient(t *testing.T, logger Logger) *Client {
	t.Helper()
	client, err := NewSQLiteCacheWithLogger(filepath.Join(t.TempDir(), "cache.db"), logger)
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestClient_SetGetDelete(t *testing.T) {
	client := newTestClient(t, nil)
	ctx := context.Background()

	if err := client.Set(ctx, "summary:abc:5:10", []byte(`{"summaryText":"x"}`), time.Hour); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := client.Get(ctx, "summary:abc:5:10")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != `{"summaryText":"x"}` {
		t.Errorf("Get() = %s", got)
	}

	if err := client.Delete(ctx, "summary:abc:5:10"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := client.Get(ctx, "summary:abc:5:10"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestClient_ZeroTTLNeverExpires(t *testing.T) {
	client := newTestClient(t, nil)
	ctx := context.Background()

	if err := client.Set(ctx, "forever", []byte("v"), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	client.cleanup()

	if _, err := client.Get(ctx, "forever"); err != nil {
		t.Errorf("zero TTL entry should persist, got %v", err)
	}
}

func TestClient_Expiry(t *testing.T) {
	client := newTestClient(t, nil)
	ctx := context.Background()

	if _, err := client.db.Exec(setStatement, "stale", []byte("v"), time.Now().Add(-time.Minute).Unix()); err != nil {
		t.Fatalf("seeding expired row failed: %v", err)
	}
	if err := client.Set(ctx, "fresh", []byte("v"), time.Hour); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if _, err := client.Get(ctx, "stale"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected expired entry to be missing, got %v", err)
	}
	if _, err := client.Get(ctx, "fresh"); err != nil {
		t.Errorf("expected fresh entry, got %v", err)
	}

	stats, err := client.Stats()
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats["expired_entries"] != 1 || stats["total_entries"] != 2 {
		t.Errorf("unexpected stats before cleanup: %v", stats)
	}

	client.cleanup()

	stats, _ = client.Stats()
	if stats["total_entries"] != 1 {
		t.Errorf("expected cleanup to remove expired entry, got %v", stats["total_entries"])
	}
}

func TestClient_InjectionKeysAreData(t *testing.T) {
	client := newTestClient(t, nil)
	ctx := context.Background()

	keys := []string{
		"search:snippet:flu'; DROP TABLE cache; --",
		"search:snippet:x' OR '1'='1",
		"search:snippet:x' UNION SELECT null--",
	}
	for i, key := range keys {
		value := []byte{byte('a' + i)}
		if err := client.Set(ctx, key, value, time.Hour); err != nil {
			t.Fatalf("Set(%q) error = %v", key, err)
		}
	}

	for i, key := range keys {
		got, err := client.Get(ctx, key)
		if err != nil {
			t.Fatalf("Get(%q) error = %v", key, err)
		}
		if !bytes.Equal(got, []byte{byte('a' + i)}) {
			t.Errorf("Get(%q) = %q", key, got)
		}
	}

	if _, err := client.Get(ctx, "search:snippet:x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("injection must not match other keys, got %v", err)
	}
}

func TestClient_LogsSuspiciousKeys(t *testing.T) {
	logger := &mockLogger{}
	client := newTestClient(t, logger)

	if err := client.Set(context.Background(), "user_data';DROP TABLE cache;--", []byte("v"), time.Hour); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	patterns := map[string]bool{}
	for _, w := range logger.warnings {
		if p, ok := w.fields["pattern"].(string); ok {
			patterns[p] = true
		}
	}
	for _, want := range []string{"'", ";", "--"} {
		if !patterns[want] {
			t.Errorf("expected warning for pattern %q, got %v", want, patterns)
		}
	}
}

func TestClient_BinaryRoundTrip(t *testing.T) {
	client := newTestClient(t, nil)
	ctx := context.Background()

	data := []byte{0x00, 0x01, 0xFF, 0xFE, '\n', '\''}
	if err := client.Set(ctx, "binary", data, time.Hour); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := client.Get(ctx, "binary")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Get() = %v, want %v", got, data)
	}
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"valid", "search:snippet:query", false},
		{"empty", "", true},
		{"null byte", "key\x00", true},
		{"too long", strings.Repeat("k", maxKeyLength+1), true},
		{"max length", strings.Repeat("k", maxKeyLength), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKey(tt.key, nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateKey() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateValue(t *testing.T) {
	if err := ValidateValue(nil); err == nil {
		t.Error("expected error for empty value")
	}
	if err := ValidateValue(make([]byte, maxValueLength+1)); err == nil {
		t.Error("expected error for oversized value")
	}
	if err := ValidateValue([]byte("ok")); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestTruncateKey(t *testing.T) {
	if got := truncateKey("short"); got != "short" {
		t.Errorf("truncateKey() = %q", got)
	}
	long := strings.Repeat("a", 60)
	if got := truncateKey(long); got != strings.Repeat("a", 50)+"..." {
		t.Errorf("truncateKey() = %q", got)
	}
}
