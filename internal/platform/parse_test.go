package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/harilal-sah-kanu/Portfolio-sub000/internal/models"
)

func TestParseLeetCodeStatsMirrorShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want model.LeetCodeStats
	}{
		{
			name: "herokuapp mirror",
			raw: `{"status":"success","totalSolved":250,"easySolved":120,
				"mediumSolved":100,"hardSolved":30,"ranking":54321}`,
			want: model.LeetCodeStats{TotalSolved: 250, EasySolved: 120, MediumSolved: 100, HardSolved: 30, Ranking: 54321},
		},
		{
			name: "vercel mirror key variants",
			raw: `{"solvedProblem":250,"easySolvedProblem":120,
				"mediumSolvedProblem":100,"hardSolvedProblem":30,"rank":54321,"contestAttend":7}`,
			want: model.LeetCodeStats{TotalSolved: 250, EasySolved: 120, MediumSolved: 100, HardSolved: 30, Ranking: 54321, ContestParticipation: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, ok := parseLeetCodeStats(decode(t, tt.raw))
			require.True(t, ok)
			assert.Equal(t, tt.want, stats)
		})
	}
}

func TestParseLeetCodeStatsRejectsErrors(t *testing.T) {
	_, ok := parseLeetCodeStats(decode(t, `{"status":"error","message":"user does not exist"}`))
	assert.False(t, ok)

	_, ok = parseLeetCodeStats(decode(t, `{"unrelated":"shape"}`))
	assert.False(t, ok)
}

func TestDecodeSubmissionCalendar(t *testing.T) {
	// 1717977600 = 2024-06-10T00:00:00Z, 1718064000 = 2024-06-11.
	payload := decode(t, `{"submissionCalendar":{"1717977600":3,"1718064000":0,"garbage":5}}`)

	days := decodeSubmissionCalendar(payload)

	require.Len(t, days, 1, "zero-count and unparsable keys are skipped")
	assert.Equal(t, 2024, days[0].Date.Year())
	assert.True(t, days[0].Solved)
	assert.False(t, days[0].Contributed)
}

func TestParseCodeforcesInfo(t *testing.T) {
	payload := decode(t, `{"status":"OK","result":[{"handle":"tourist","rating":3779,"maxRating":4009}]}`)

	stats, ok := parseCodeforcesInfo(payload)

	require.True(t, ok)
	assert.Equal(t, 3779, stats.Rating)
	assert.Equal(t, 4009, stats.MaxRating)

	_, ok = parseCodeforcesInfo(decode(t, `{"status":"FAILED","comment":"handle not found"}`))
	assert.False(t, ok)
}

func TestCodeforcesSubmissionDaysDeduplicates(t *testing.T) {
	payload := decode(t, `{"result":[
		{"verdict":"OK","creationTimeSeconds":1717977600},
		{"verdict":"OK","creationTimeSeconds":1717981200},
		{"verdict":"WRONG_ANSWER","creationTimeSeconds":1718064000}
	]}`)

	days := codeforcesSubmissionDays(list(payload, "result"))

	require.Len(t, days, 1, "same-day submissions collapse, rejected verdicts are ignored")
	assert.True(t, days[0].Solved)
}

func TestGithubEventDays(t *testing.T) {
	payload := decode(t, `{"events":[
		{"type":"PushEvent","created_at":"2024-06-10T08:30:00Z"},
		{"type":"IssuesEvent","created_at":"2024-06-10T20:00:00Z"},
		{"type":"PushEvent","created_at":"2024-06-11T10:00:00Z"},
		{"type":"PushEvent","created_at":"not-a-time"}
	]}`)

	days := githubEventDays(list(payload, "events"))

	require.Len(t, days, 2)
	for _, d := range days {
		assert.True(t, d.Contributed)
		assert.False(t, d.Solved)
	}
}

func TestParseCodeChefStats(t *testing.T) {
	payload := decode(t, `{"success":true,"currentRating":1823,"highestRating":1901,
		"stars":4,"problemsSolved":312}`)

	stats, ok := parseCodeChefStats(payload)

	require.True(t, ok)
	flat := stats.Flat()
	assert.Equal(t, float64(1823), flat["rating"])
	assert.Equal(t, float64(1901), flat["maxRating"])
	assert.Equal(t, float64(312), flat["totalSolved"])
	assert.Equal(t, float64(4), flat["badges"])

	_, ok = parseCodeChefStats(decode(t, `{"success":false,"message":"user not found"}`))
	assert.False(t, ok)
}

func TestParseGeeksforGeeksStats(t *testing.T) {
	payload := decode(t, `{"info":{"userName":"someone","totalProblemsSolved":180,"instituteRank":12},
		"solvedStats":{"easy":{"count":60},"basic":{"count":20},"medium":{"count":80},"hard":{"count":20}}}`)

	stats, ok := parseGeeksforGeeksStats(payload)

	require.True(t, ok)
	flat := stats.Flat()
	assert.Equal(t, float64(180), flat["totalSolved"])
	assert.Equal(t, float64(80), flat["easySolved"], "easy bucket folds in basic and school")
	assert.Equal(t, float64(80), flat["mediumSolved"])
	assert.Equal(t, float64(20), flat["hardSolved"])
}
