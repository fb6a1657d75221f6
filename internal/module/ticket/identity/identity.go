package identity

import (
	"crypto/rand"
	"encoding/base32"
	"strconv"
	"strings"
	"time"
)

const idPrefix = "TKT-"

// randomSuffixBytes gives 80 bits of entropy, enough that collisions stay
// negligible at tens of tickets per day.
const randomSuffixBytes = 10

var suffixEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// NewTicketID returns an uppercase token of the form
// TKT-<base36 unix millis><base32 random>. The time component keeps IDs
// roughly sortable; uniqueness comes from the random suffix.
func NewTicketID() string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))

	buf := make([]byte, randomSuffixBytes)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}

	return idPrefix + ts + suffixEncoding.EncodeToString(buf)
}

// ValidUntil returns the end of the validity window: purchase date plus three
// calendar months.
func ValidUntil(purchase time.Time) time.Time {
	return addMonths(purchase, 3)
}

// addMonths preserves the day of month, clamping to the last day when the
// target month is shorter: Jan 31 + 3 months is Apr 30, not the May 1 that
// time.AddDate would normalize the overflow to.
func addMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()

	target := time.Date(year, month+time.Month(months), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := daysIn(target.Year(), target.Month()); day > last {
		day = last
	}

	return time.Date(target.Year(), target.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
