package common

import (
	"time"
)

const timeFormat = "2 January 2006 at 15:04"

// UtcTimeFormat formats the time 't' in the UTC zone using the log timestamp layout.
func UtcTimeFormat(t time.Time) string {
	return t.UTC().Format(timeFormat) + " UTC"
}
