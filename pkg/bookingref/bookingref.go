// Package bookingref generates human-readable booking confirmation
// numbers of the form TB-<timestamp><suffix>, where the timestamp is the
// current unix time in base36 (uppercased) and the suffix is four random
// characters from A-Z0-9. Codes are probabilistically unique; there is
// no global registry of issued numbers.
package bookingref

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const suffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const suffixLength = 4

// New returns a fresh confirmation number.
func New() (string, error) {
	return newAt(time.Now())
}

func newAt(now time.Time) (string, error) {
	b := make([]byte, suffixLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random suffix: %w", err)
	}

	suffix := make([]byte, suffixLength)
	for i, v := range b {
		suffix[i] = suffixAlphabet[int(v)%len(suffixAlphabet)]
	}

	ts := strings.ToUpper(strconv.FormatInt(now.Unix(), 36))
	return "TB-" + ts + string(suffix), nil
}
