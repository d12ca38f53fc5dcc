package pagination

import (
	"encoding/base64"
	"fmt"
	"time"
)

const dayFormat = time.DateOnly

// EncodeDayToken creates an opaque cursor for pagination over calendar-day keyed records.
// URL-safe so it can travel in a query string.
func EncodeDayToken(day time.Time) string {
	return base64.URLEncoding.EncodeToString([]byte(day.Format(dayFormat)))
}

// DecodeDayToken parses a cursor created by EncodeDayToken. The day is returned at midnight UTC.
func DecodeDayToken(token string) (time.Time, error) {
	decoded, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	day, err := time.ParseInLocation(dayFormat, string(decoded), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}
	return day, nil
}
