package utils

import (
	"strings"

	"github.com/google/uuid"
)

// UUIDGenerator issues time-ordered ids, so object keys and run ids sort by
// creation time.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7. v4 is used only when the clock source fails.
func (g *UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// Key returns a fresh id with ext appended, lower-cased and dot-prefixed.
func (g *UUIDGenerator) Key(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return g.Generate() + ext
}

// IsUUID reports whether s is a uuid in the canonical 36 character form.
// Braced and urn: forms are rejected.
func IsUUID(s string) bool {
	return len(s) == 36 && uuid.Validate(s) == nil
}
