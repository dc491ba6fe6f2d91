package service

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// newDisplayId builds short human readable ids like "session_a1b2c3d4":
// a fixed prefix plus the first 8 hex chars of a fresh UUID.
func newDisplayId(prefix string) string {
	u := uuid.New()
	return prefix + hex.EncodeToString(u[:4])
}
