package token

import (
	"time"

	"github.com/google/uuid"
)

// Maker defines a contract for anything that can create and verify session
// tokens, so the token implementation can be swapped without touching the
// rest of the application.
type Maker interface {
	CreateToken(sessionID uuid.UUID, duration time.Duration) (string, error)

	VerifyToken(token string) (*Payload, error)
}
