// Package slot defines the addressing scheme for hourly time slots.
//
// A slot key is the canonical string address of a one-hour cell on the
// timeline, e.g. "timeslot-2025-01-15-09". The key is the single source of
// truth for where a task lives; no separate coordinates are stored anywhere.
package slot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrInvalidKey  = errors.New("invalid slot key")
	ErrInvalidHour = errors.New("hour must be in range 0-23")
)

// Prefix is the literal prefix of every slot key.
const Prefix = "timeslot-"

// ZoneUnscheduled is the sentinel drop-zone identifier for the unscheduled
// list. It is an interaction-layer name, never a slot key: the repository
// only ever sees nil for unscheduled tasks.
const ZoneUnscheduled = "unscheduled"

// Key is a slot address of the form "timeslot-YYYY-MM-DD-HH".
type Key string

// Encode builds the slot key for the given calendar date and hour of day.
// The time component of date is ignored. Encode never validates: an
// out-of-range hour produces a key that fails to decode. Use NewKey when
// the hour comes from untrusted input.
func Encode(date time.Time, hour int) Key {
	return Key(fmt.Sprintf("%s%s-%02d", Prefix, date.Format("2006-01-02"), hour))
}

// NewKey is like Encode but rejects out-of-range hours.
func NewKey(date time.Time, hour int) (Key, error) {
	if hour < 0 || hour > 23 {
		return "", ErrInvalidHour
	}
	return Encode(date, hour), nil
}

// Decode parses a slot key back into its (date, hour) pair.
// Keys not produced by Encode yield ErrInvalidKey, never a guessed default.
func Decode(key Key) (time.Time, int, error) {
	s := string(key)
	if !strings.HasPrefix(s, Prefix) {
		return time.Time{}, 0, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	rest := s[len(Prefix):]

	// "YYYY-MM-DD-HH" is exactly 13 characters.
	if len(rest) != 13 || rest[10] != '-' {
		return time.Time{}, 0, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}

	date, err := time.ParseInLocation("2006-01-02", rest[:10], time.Local)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}

	hh := rest[11:]
	if !isDigits(hh) {
		return time.Time{}, 0, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, 0, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}

	return date, hour, nil
}

// Valid reports whether the key decodes cleanly.
func (k Key) Valid() bool {
	_, _, err := Decode(k)
	return err == nil
}

// Date returns the calendar date component of the key.
func (k Key) Date() time.Time {
	d, _, _ := Decode(k)
	return d
}

// Hour returns the hour-of-day component of the key.
func (k Key) Hour() int {
	_, h, _ := Decode(k)
	return h
}

func (k Key) String() string {
	return string(k)
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
