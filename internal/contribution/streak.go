package contribution

import (
	"time"

	model "github.com/harilal-sah-kanu/Portfolio-sub000/internal/models"
)

// CurrentStreak counts consecutive active days walking backward from today.
// An inactive today does not break a streak that is still pending for the
// day, so counting starts at yesterday in that case. The first gap stops
// the walk; earlier activity cannot heal it.
func CurrentStreak(days []model.ContributionDay, today time.Time) int {
	active := activeDaySet(days)
	cursor := TruncateDay(today)
	if !active[dayKey(cursor)] {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for active[dayKey(cursor)] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

// TotalActiveDays counts distinct active days in the retained window.
// Contiguity is not required.
func TotalActiveDays(days []model.ContributionDay) int {
	return len(activeDaySet(days))
}

func activeDaySet(days []model.ContributionDay) map[string]bool {
	set := make(map[string]bool, len(days))
	for _, d := range days {
		if d.Active() {
			set[dayKey(d.Date)] = true
		}
	}
	return set
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
