package utils

import (
	"strings"
	"time"
)

// CompactTimestamp converts a GPX <time> value (ISO 8601) to the
// "20060102_150405" form used in derived track names. The wall clock of the
// source offset is kept.
func CompactTimestamp(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("20060102_150405"), true
		}
	}
	return "", false
}
