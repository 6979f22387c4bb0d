package contribution

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/harilal-sah-kanu/Portfolio-sub000/internal/models"
)

func TestBuildGridAlignment(t *testing.T) {
	// The window covers exactly 52 weeks plus one day, so the oldest day
	// shares today's weekday and the leading padding follows from it.
	tests := []struct {
		name  string
		today time.Time
	}{
		{"window ending saturday", day(2024, 6, 15)},
		{"window ending monday", day(2024, 6, 17)},
		{"window ending sunday", day(2024, 6, 16)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := BuildGrid(nil, tt.today)
			require.NotEmpty(t, grid.Weeks)

			start := tt.today.AddDate(0, 0, -(RetentionDays - 1))
			wantPad := int(start.Weekday())

			first := grid.Weeks[0]
			for i := 0; i < wantPad; i++ {
				assert.Nil(t, first[i].Date, "slot %d should be leading padding", i)
			}
			require.NotNil(t, first[wantPad].Date)
			assert.True(t, SameDay(*first[wantPad].Date, start),
				"oldest day must land in its weekday column")

			// Total real cells across all weeks is exactly the window size.
			real := 0
			var last *time.Time
			for _, week := range grid.Weeks {
				for _, cell := range week {
					if cell.Date != nil {
						real++
						last = cell.Date
					}
				}
			}
			assert.Equal(t, RetentionDays, real)
			assert.True(t, SameDay(*last, tt.today))

			// Final week is right-padded with nil out to seven slots.
			final := grid.Weeks[len(grid.Weeks)-1]
			wantTail := int(tt.today.Weekday())
			for i := wantTail + 1; i < 7; i++ {
				assert.Nil(t, final[i].Date, "slot %d should be trailing padding", i)
			}
		})
	}
}

func TestBuildGridLevels(t *testing.T) {
	today := day(2024, 6, 15)
	days := []model.ContributionDay{
		entry(day(2024, 6, 13), true, false),
		entry(day(2024, 6, 14), false, true),
		entry(day(2024, 6, 15), true, true),
	}

	grid := BuildGrid(days, today)

	levels := map[string]int{}
	for _, week := range grid.Weeks {
		for _, cell := range week {
			if cell.Date != nil {
				levels[cell.Date.Format("2006-01-02")] = cell.Level
			}
		}
	}

	assert.Equal(t, LevelSingle, levels["2024-06-13"])
	assert.Equal(t, LevelSingle, levels["2024-06-14"])
	assert.Equal(t, LevelBoth, levels["2024-06-15"])
	assert.Equal(t, LevelNone, levels["2024-06-12"])
}

func TestLevelForNeverProducesThree(t *testing.T) {
	d := day(2024, 1, 1)
	cases := []*model.ContributionDay{
		nil,
		{Date: d},
		{Date: d, Solved: true},
		{Date: d, Contributed: true},
		{Date: d, Solved: true, Contributed: true},
	}
	for _, c := range cases {
		assert.NotEqual(t, 3, LevelFor(c))
	}
}

func TestMonthLabels(t *testing.T) {
	grid := BuildGrid(nil, day(2024, 6, 15))
	labels := MonthLabels(grid)

	require.NotEmpty(t, labels)

	// Labels appear in week order and never repeat for consecutive weeks
	// of the same month.
	prevWeek := -1
	for _, l := range labels {
		assert.Greater(t, l.WeekIndex, prevWeek)
		prevWeek = l.WeekIndex
	}

	// A trailing 365-day window crosses 12 or 13 month boundaries.
	assert.GreaterOrEqual(t, len(labels), 12)
	assert.LessOrEqual(t, len(labels), 14)

	first := labels[0]
	assert.Equal(t, 0, first.WeekIndex)
	assert.Equal(t, "Jun", first.Name, "window starting 2023-06-17 labels June first")
}
