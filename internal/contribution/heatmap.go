package contribution

import (
	"time"

	model "github.com/harilal-sah-kanu/Portfolio-sub000/internal/models"
)

// Contribution levels for rendering. Level 3 is never produced; the color
// scale jumps from "one kind of activity" straight to "both kinds".
const (
	LevelNone   = 0
	LevelSingle = 1
	LevelBoth   = 4
)

// LevelFor buckets one day's activity for the heatmap color scale.
func LevelFor(d *model.ContributionDay) int {
	switch {
	case d == nil:
		return LevelNone
	case d.Solved && d.Contributed:
		return LevelBoth
	case d.Solved || d.Contributed:
		return LevelSingle
	default:
		return LevelNone
	}
}

// BuildGrid projects the trailing 365 calendar days ending at today
// (inclusive) into Sunday-aligned weeks. The first week is left-padded with
// nil slots so the oldest day lands in its weekday column, and the final
// week is right-padded to seven slots.
func BuildGrid(days []model.ContributionDay, today time.Time) model.HeatmapGrid {
	byDay := make(map[string]model.ContributionDay, len(days))
	for _, d := range days {
		byDay[dayKey(d.Date)] = d
	}

	start := TruncateDay(today).AddDate(0, 0, -(RetentionDays - 1))
	leadPad := int(start.Weekday())

	var cells []model.HeatmapDay
	for i := 0; i < leadPad; i++ {
		cells = append(cells, model.HeatmapDay{Level: LevelNone})
	}
	for i := 0; i < RetentionDays; i++ {
		date := start.AddDate(0, 0, i)
		var entry *model.ContributionDay
		if d, ok := byDay[dayKey(date)]; ok {
			entry = &d
		}
		cells = append(cells, model.HeatmapDay{Date: &date, Level: LevelFor(entry)})
	}
	for len(cells)%7 != 0 {
		cells = append(cells, model.HeatmapDay{Level: LevelNone})
	}

	grid := model.HeatmapGrid{Weeks: make([]model.HeatmapWeek, len(cells)/7)}
	for i, cell := range cells {
		grid.Weeks[i/7][i%7] = cell
	}
	return grid
}

// MonthLabels walks the weeks in order and emits a label at each week whose
// first real day falls in a month different from the previously labeled one,
// yielding one label per month transition.
func MonthLabels(grid model.HeatmapGrid) []model.MonthLabel {
	labels := []model.MonthLabel{}
	lastMonth := time.Month(0)
	lastYear := 0
	for wi, week := range grid.Weeks {
		var first *time.Time
		for _, day := range week {
			if day.Date != nil {
				first = day.Date
				break
			}
		}
		if first == nil {
			continue
		}
		if first.Month() != lastMonth || first.Year() != lastYear {
			labels = append(labels, model.MonthLabel{Name: first.Month().String()[:3], WeekIndex: wi})
			lastMonth = first.Month()
			lastYear = first.Year()
		}
	}
	return labels
}
