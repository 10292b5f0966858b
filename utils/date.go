package utils

import (
	"fmt"
	"time"
)

// DateLocation is the app's timezone; PSLE scheduling is Singapore-local.
var DateLocation *time.Location

// InitializeDateLocation loads the configured timezone once at startup.
func InitializeDateLocation() error {
	loc, err := time.LoadLocation("Asia/Singapore")
	if err != nil {
		return fmt.Errorf("failed to load date location: %w", err)
	}
	DateLocation = loc
	return nil
}
