package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewID returns a prefixed UUID, e.g. "sess_2f1a…". Prefixes in use:
// rs (recall set), rp (recall point), sess (session), msg (message),
// out (outcome), rh (rabbithole).
func NewID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.New().String())
}

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall clock.
func SystemClock() Clock { return systemClock{} }
