package main

import "card-server/internal/util"

// Recency ledger caps: how many records the store retains, and how many
// the home page shows after merging.
const (
	recencyStoreCap   = 10
	recencyDisplayCap = 5
)

// MergeRecents combines the viewed ledger with records derived from the
// authored profile collection. Viewed entries come first and win on
// username collision; the result is deduplicated by username keeping the
// first occurrence, capped at recencyDisplayCap. Both inputs are already
// most-recent-first, so no re-sorting happens here.
func MergeRecents(viewed, authored []RecencyRecord) []RecencyRecord {
	seen := make(map[string]bool, len(viewed)+len(authored))
	merged := make([]RecencyRecord, 0, len(viewed)+len(authored))

	for _, rec := range viewed {
		if seen[rec.Username] {
			continue
		}
		seen[rec.Username] = true
		merged = append(merged, rec)
	}
	for _, rec := range authored {
		if seen[rec.Username] {
			continue
		}
		seen[rec.Username] = true
		merged = append(merged, rec)
	}

	return util.LimitSlice(merged, recencyDisplayCap)
}
