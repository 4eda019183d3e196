// Copyright (c) 2025 Purplefish Digital.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import "time"

// dateLayout is the calendar-day form all result rows are keyed by.
// ISO dates compare correctly as strings, so the store filters date
// ranges with plain comparison.
const dateLayout = "2006-01-02"

// todayUTC returns the current calendar day, UTC truncation.
func todayUTC() string {
	return time.Now().UTC().Format(dateLayout)
}

// daysAgoUTC returns the calendar day n days before today, UTC
// truncation.
func daysAgoUTC(n int) string {
	return time.Now().UTC().AddDate(0, 0, -n).Format(dateLayout)
}
