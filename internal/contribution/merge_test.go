package contribution

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/harilal-sah-kanu/Portfolio-sub000/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func entry(date time.Time, solved, contributed bool) model.ContributionDay {
	return model.ContributionDay{Date: date, Solved: solved, Contributed: contributed}
}

func TestMergeDaySameCalendarDay(t *testing.T) {
	morning := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	night := time.Date(2024, 3, 1, 23, 59, 59, 0, time.UTC)

	existing := entry(morning, true, false)
	merged, newDays := MergeAll(
		[]model.ContributionDay{existing},
		[]model.ContributionDay{entry(night, false, true)},
		day(2024, 3, 2),
	)

	require.Len(t, merged, 1, "same calendar day must not produce two entries")
	assert.Equal(t, 0, newDays)
	assert.True(t, merged[0].Solved)
	assert.True(t, merged[0].Contributed)
}

func TestMergeDayMonotonic(t *testing.T) {
	d := day(2024, 5, 10)
	tests := []struct {
		name            string
		existing, in    model.ContributionDay
		solved, contrib bool
	}{
		{"or of disjoint flags", entry(d, true, false), entry(d, false, true), true, true},
		{"incoming all false keeps existing", entry(d, true, true), entry(d, false, false), true, true},
		{"both false stays false", entry(d, false, false), entry(d, false, false), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeDay(&tt.existing, tt.in)
			assert.Equal(t, tt.solved, got.Solved)
			assert.Equal(t, tt.contrib, got.Contributed)
		})
	}
}

func TestMergeAllIdempotent(t *testing.T) {
	now := day(2024, 6, 1)
	existing := []model.ContributionDay{entry(day(2024, 5, 30), true, false)}
	incoming := []model.ContributionDay{entry(day(2024, 5, 31), false, true)}

	once, newOnce := MergeAll(existing, incoming, now)
	twice, newTwice := MergeAll(once, incoming, now)

	assert.Equal(t, 1, newOnce)
	assert.Equal(t, 0, newTwice, "re-merging known history adds no days")
	assert.Equal(t, once, twice)
}

func TestSetManualOverwrites(t *testing.T) {
	d := day(2024, 4, 2)
	days := []model.ContributionDay{entry(d, true, true)}

	days = SetManual(days, d, false, false)

	require.Len(t, days, 1)
	assert.False(t, days[0].Solved, "manual set replaces, it does not OR")
	assert.False(t, days[0].Contributed)
}

func TestSetManualInsertsMissingDay(t *testing.T) {
	days := SetManual(nil, day(2024, 4, 2), true, false)
	require.Len(t, days, 1)
	assert.True(t, days[0].Solved)
	assert.False(t, days[0].Contributed)
}

func TestRetentionDropsOldEntries(t *testing.T) {
	now := day(2024, 7, 1)
	old := entry(now.AddDate(0, 0, -400), true, true)
	edge := entry(now.AddDate(0, 0, -365), true, false)
	fresh := entry(now.AddDate(0, 0, -1), false, true)

	merged, _ := MergeAll(nil, []model.ContributionDay{old, edge, fresh}, now)

	require.Len(t, merged, 2, "entry 400 days old must be pruned")
	assert.True(t, SameDay(merged[0].Date, edge.Date))
	assert.True(t, SameDay(merged[1].Date, fresh.Date))
}

func TestCombineUnionsEnabledProfiles(t *testing.T) {
	a := model.CodingProfile{
		Platform: model.PlatformLeetCode,
		Enabled:  true,
		DailyContributions: []model.ContributionDay{
			entry(day(2024, 3, 1), true, false),
		},
	}
	b := model.CodingProfile{
		Platform: model.PlatformGitHub,
		Enabled:  true,
		DailyContributions: []model.ContributionDay{
			entry(day(2024, 3, 2), false, true),
		},
	}
	disabled := model.CodingProfile{
		Platform: model.PlatformCodeChef,
		Enabled:  false,
		DailyContributions: []model.ContributionDay{
			entry(day(2024, 3, 3), true, true),
		},
	}

	combined := Combine([]model.CodingProfile{a, b, disabled})

	require.Len(t, combined, 2, "disabled profiles stay out of the union")
	assert.Equal(t, 2, TotalActiveDays(combined))
	assert.Equal(t, 2, CurrentStreak(combined, day(2024, 3, 2)),
		"union streak spans days no single profile covered alone")
}

func TestCombineOrsOverlappingDays(t *testing.T) {
	d := day(2024, 3, 1)
	a := model.CodingProfile{Enabled: true, DailyContributions: []model.ContributionDay{entry(d, true, false)}}
	b := model.CodingProfile{Enabled: true, DailyContributions: []model.ContributionDay{entry(d, false, true)}}

	combined := Combine([]model.CodingProfile{a, b})

	require.Len(t, combined, 1)
	assert.True(t, combined[0].Solved)
	assert.True(t, combined[0].Contributed)
}
