package contribution

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	model "github.com/harilal-sah-kanu/Portfolio-sub000/internal/models"
)

func TestCurrentStreak(t *testing.T) {
	tests := []struct {
		name  string
		days  []model.ContributionDay
		today time.Time
		want  int
	}{
		{
			name:  "no activity",
			days:  nil,
			today: day(2024, 6, 13),
			want:  0,
		},
		{
			name: "today inactive counts from yesterday",
			days: []model.ContributionDay{
				entry(day(2024, 6, 10), true, false),
				entry(day(2024, 6, 11), false, true),
				entry(day(2024, 6, 12), true, true),
			},
			today: day(2024, 6, 13),
			want:  3,
		},
		{
			name: "gap stops backward walk",
			days: []model.ContributionDay{
				entry(day(2024, 6, 10), true, false),
				entry(day(2024, 6, 12), true, false),
			},
			today: day(2024, 6, 12),
			want:  1,
		},
		{
			name: "today active extends streak",
			days: []model.ContributionDay{
				entry(day(2024, 6, 11), true, false),
				entry(day(2024, 6, 12), false, true),
			},
			today: day(2024, 6, 12),
			want:  2,
		},
		{
			name: "two-day-old activity is broken",
			days: []model.ContributionDay{
				entry(day(2024, 6, 10), true, true),
			},
			today: day(2024, 6, 13),
			want:  0,
		},
		{
			name: "inactive entry does not count as active",
			days: []model.ContributionDay{
				entry(day(2024, 6, 11), false, false),
				entry(day(2024, 6, 12), true, false),
			},
			today: day(2024, 6, 12),
			want:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CurrentStreak(tt.days, tt.today))
		})
	}
}

func TestTotalActiveDays(t *testing.T) {
	days := []model.ContributionDay{
		entry(day(2024, 1, 5), true, false),
		entry(day(2024, 2, 9), false, true),
		entry(day(2024, 3, 14), false, false), // recorded but inactive
		entry(day(2024, 4, 1), true, true),
	}
	assert.Equal(t, 3, TotalActiveDays(days), "active days need not be contiguous")
}
