package services

import (
	"fmt"
	"time"
)

// startTimeLayout is the canonical minute-precision form every stored
// start_time is normalized to. Minute-precision ISO-8601 strings sort
// chronologically under plain string comparison, which the listing relies
// on.
const startTimeLayout = "2006-01-02T15:04"

// timestampLayout is the second-precision form used for created_at and
// archived_at.
const timestampLayout = "2006-01-02T15:04:05"

var startTimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

// parseStartTime accepts ISO-8601 date-times at minute or second precision,
// with either a "T" or a space separator. Values carry no zone and are
// interpreted as local wall-clock time, matching the stamps this package
// writes.
func parseStartTime(value string) (time.Time, error) {
	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", value)
}
