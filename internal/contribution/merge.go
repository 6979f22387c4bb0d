// Package contribution implements the daily-contribution bookkeeping:
// calendar-day merging, the rolling 365-day retention window, streak
// computation and the week-aligned heatmap layout.
package contribution

import (
	"sort"
	"time"

	model "github.com/harilal-sah-kanu/Portfolio-sub000/internal/models"
)

// RetentionDays is the rolling window applied after every write.
const RetentionDays = 365

// SameDay reports calendar-day equality: year/month/day components match,
// clock time is ignored.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// TruncateDay strips the clock-time portion of t.
func TruncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MergeDay folds incoming into existing with OR semantics. Merging is
// monotonic: activity already recorded is never unset. A nil existing
// means the day is absent and incoming becomes the entry.
func MergeDay(existing *model.ContributionDay, incoming model.ContributionDay) model.ContributionDay {
	incoming.Date = TruncateDay(incoming.Date)
	if existing == nil {
		return incoming
	}
	return model.ContributionDay{
		Date:        TruncateDay(existing.Date),
		Solved:      existing.Solved || incoming.Solved,
		Contributed: existing.Contributed || incoming.Contributed,
	}
}

// SetManual overwrites (not ORs) the entry for date, inserting it if absent.
// This is the one non-monotonic write: an admin can clear a day by hand.
func SetManual(days []model.ContributionDay, date time.Time, solved, contributed bool) []model.ContributionDay {
	date = TruncateDay(date)
	for i := range days {
		if SameDay(days[i].Date, date) {
			days[i].Solved = solved
			days[i].Contributed = contributed
			return days
		}
	}
	days = append(days, model.ContributionDay{Date: date, Solved: solved, Contributed: contributed})
	sortByDate(days)
	return days
}

// MergeAll folds incoming into existing via MergeDay, applies retention once
// at the end, and reports how many distinct days were newly created. Used by
// sync-all so a re-merge of already-known history counts zero new days.
func MergeAll(existing, incoming []model.ContributionDay, now time.Time) ([]model.ContributionDay, int) {
	merged := make([]model.ContributionDay, len(existing))
	copy(merged, existing)

	newDays := 0
	for _, in := range incoming {
		idx := -1
		for i := range merged {
			if SameDay(merged[i].Date, in.Date) {
				idx = i
				break
			}
		}
		if idx >= 0 {
			merged[idx] = MergeDay(&merged[idx], in)
		} else {
			merged = append(merged, MergeDay(nil, in))
			newDays++
		}
	}

	merged = ApplyRetention(merged, now)
	sortByDate(merged)
	return merged, newDays
}

// ApplyRetention drops every entry dated more than RetentionDays before now.
func ApplyRetention(days []model.ContributionDay, now time.Time) []model.ContributionDay {
	cutoff := TruncateDay(now).AddDate(0, 0, -RetentionDays)
	kept := days[:0]
	for _, d := range days {
		if !TruncateDay(d.Date).Before(cutoff) {
			kept = append(kept, d)
		}
	}
	return kept
}

// Combine builds the all-platforms union: for each calendar day, solved and
// contributed are OR'd across every enabled profile. The result feeds one
// streak/total computation, not one per platform.
func Combine(profiles []model.CodingProfile) []model.ContributionDay {
	var combined []model.ContributionDay
	for _, p := range profiles {
		if !p.Enabled {
			continue
		}
		for _, d := range p.DailyContributions {
			idx := -1
			for i := range combined {
				if SameDay(combined[i].Date, d.Date) {
					idx = i
					break
				}
			}
			if idx >= 0 {
				combined[idx] = MergeDay(&combined[idx], d)
			} else {
				combined = append(combined, MergeDay(nil, d))
			}
		}
	}
	sortByDate(combined)
	return combined
}

func sortByDate(days []model.ContributionDay) {
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
}
