package logging

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// GenerateSessionID creates a unique, time-sortable session identifier.
// Example: 01JAB3Z6Q8W5M7X2C4V9N0K1PD
func GenerateSessionID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// ShortSessionID extracts the short ID (last 4 chars) from a full session ID.
// Example: "01JAB3Z6Q8W5M7X2C4V9N0K1PD" -> "K1PD"
func ShortSessionID(sessionID string) string {
	if len(sessionID) < 4 {
		return sessionID
	}
	return sessionID[len(sessionID)-4:]
}
