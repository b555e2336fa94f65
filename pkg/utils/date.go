package utils

import "time"

// UTCMidnight truncates t to midnight UTC. Business dates (reconciliation
// days, stock ledger transaction dates) are always stored as these instants
// so lookups from different callers hit the same row.
func UTCMidnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
