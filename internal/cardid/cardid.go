// Package cardid generates the human-facing sequential card identifiers (CARD0000001, CARD0000002, ...).
package cardid

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// Prefix starts every card identifier.
	Prefix = "CARD"
	// Width is the zero-padded width of the numeric suffix.
	Width = 7
)

// ErrMalformed is returned when an existing identifier has no unsigned numeric suffix after Prefix,
// or when the suffix cannot be incremented.
var ErrMalformed = errors.New("malformed card id")

// Format renders n as a card identifier.
func Format(n int64) string {
	return fmt.Sprintf("%s%0*d", Prefix, Width, n)
}

// Parse extracts the numeric suffix of id.
func Parse(id string) (int64, error) {
	rest, ok := strings.CutPrefix(id, Prefix)
	if !ok || rest == "" {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, id)
	}
	if strings.TrimLeft(rest, "0123456789") != "" {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, id)
	}
	n, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, id)
	}
	return n, nil
}

// Next returns the identifier that follows last. An empty last means the table is empty.
func Next(last string) (string, error) {
	if last == "" {
		return Format(1), nil
	}
	n, err := Parse(last)
	if err != nil {
		return "", err
	}
	if n == math.MaxInt64 {
		return "", fmt.Errorf("%w: %q has no successor", ErrMalformed, last)
	}
	return Format(n + 1), nil
}

// Fallback derives an identifier from the last Width digits of the millisecond clock.
// It is used when the last identifier cannot be read.
func Fallback(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > Width {
		ms = ms[len(ms)-Width:]
	} else {
		ms = strings.Repeat("0", Width-len(ms)) + ms
	}
	return Prefix + ms
}
