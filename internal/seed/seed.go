// Package seed produces the seed strings that identify puzzles.
package seed

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"time"
)

// Daily formats t as YYYY-M-D with no zero padding. The format is a
// cross-session contract: changing it changes which puzzle every
// player sees on a given date.
func Daily(t time.Time) string {
	return fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month()), t.Day())
}

// Practice returns a fresh random seed string using crypto/rand.
func Practice() (string, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return "", fmt.Errorf("read random seed: %w", err)
	}
	return fmt.Sprintf("practice-%d", binary.LittleEndian.Uint64(b[:])), nil
}
