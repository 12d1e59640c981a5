// Package format holds the display formatting shared by the feed, watch,
// and recommendation responses.
package format

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// ViewCount renders a count the way the UI shows it: literal below a
// thousand, one decimal plus "K" below a million, one decimal plus "M" above.
// Zero (and absent counts parsed as zero) render as "0".
func ViewCount(count int64) string {
	switch {
	case count >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(count)/1_000_000)
	case count >= 1_000:
		return fmt.Sprintf("%.1fK", float64(count)/1_000)
	default:
		return strconv.FormatInt(count, 10)
	}
}

// PublishedAgo renders the age of a timestamp relative to now, in whole days
// rounded up: "1 day ago" at exactly one day, plain days below a week, weeks
// below a month, months beyond that. The difference is taken as an absolute
// value, so future dates format the same as past ones.
func PublishedAgo(published, now time.Time) string {
	diff := now.Sub(published)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours() / 24))

	switch {
	case days == 1:
		return "1 day ago"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return fmt.Sprintf("%d weeks ago", (days+6)/7)
	default:
		return fmt.Sprintf("%d months ago", (days+29)/30)
	}
}

// ParseCount converts the numeric strings the upstream API uses for
// statistics into an int64. Empty or malformed values count as zero.
func ParseCount(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
