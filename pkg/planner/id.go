package planner

import (
	"strconv"
	"sync"
	"time"
)

var (
	idMu   sync.Mutex
	lastID int64
)

// NewID mints an identifier derived from the creation timestamp.
// Nanosecond resolution plus a monotonic bump keeps back-to-back mints
// distinct within a process.
func NewID() string {
	idMu.Lock()
	defer idMu.Unlock()
	now := time.Now().UnixNano()
	if now <= lastID {
		now = lastID + 1
	}
	lastID = now
	return strconv.FormatInt(now, 10)
}
