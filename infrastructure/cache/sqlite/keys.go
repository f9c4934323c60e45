// ABOUTME: Key and value validation for the SQLite cache
// ABOUTME: All statements are parameterized; suspicious keys are logged, not rejected

package sqlite

import (
	"errors"
	"fmt"
	"strings"
)

// Logger is the subset of the core logger the cache needs
type Logger interface {
	Warn(msg string, fields map[string]interface{})
}

const (
	maxKeyLength   = 512
	maxValueLength = 1024 * 1024
)

// Statements against the cache table. Every value is bound as a parameter.
const (
	schemaStatement = `
		CREATE TABLE IF NOT EXISTS cache (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			expiry INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_expiry ON cache(expiry);`
	getStatement     = "SELECT value FROM cache WHERE key = ? AND (expiry = 0 OR expiry > ?)"
	setStatement     = "INSERT OR REPLACE INTO cache (key, value, expiry) VALUES (?, ?, ?)"
	deleteStatement  = "DELETE FROM cache WHERE key = ?"
	cleanupStatement = "DELETE FROM cache WHERE expiry != 0 AND expiry <= ?"
)

var suspiciousPatterns = []string{"--", "/*", "*/", ";", "'", "\"", "\\", "\n", "\r", "\t"}

// ValidateKey rejects empty, oversized and NUL-containing keys
func ValidateKey(key string, logger Logger) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	if len(key) > maxKeyLength {
		return fmt.Errorf("key too long: max %d characters", maxKeyLength)
	}

	if strings.Contains(key, "\x00") {
		return errors.New("key cannot contain null bytes")
	}

	if logger != nil {
		for _, pattern := range suspiciousPatterns {
			if strings.Contains(key, pattern) {
				logger.Warn("Suspicious pattern detected in cache key", map[string]interface{}{
					"pattern":     pattern,
					"key_length":  len(key),
					"key_preview": truncateKey(key),
				})
			}
		}
	}

	return nil
}

// truncateKey returns a safe preview of the key for logging
func truncateKey(key string) string {
	const maxPreview = 50
	if len(key) <= maxPreview {
		return key
	}
	return key[:maxPreview] + "..."
}

// ValidateValue rejects empty and oversized values
func ValidateValue(value []byte) error {
	if len(value) == 0 {
		return errors.New("value cannot be empty")
	}

	if len(value) > maxValueLength {
		return fmt.Errorf("value too large: max %d bytes", maxValueLength)
	}

	return nil
}
