package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatMapMergeIsShallow(t *testing.T) {
	existing := StatMap{"rating": 1400, "totalSolved": 50}

	merged := existing.Merge(StatMap{"rating": 1500})

	assert.Equal(t, float64(1500), merged["rating"], "new keys overwrite")
	assert.Equal(t, float64(50), merged["totalSolved"], "unspecified keys survive")
}

func TestStatMapMergeIntoNil(t *testing.T) {
	var existing StatMap

	merged := existing.Merge(StatMap{"followers": 10})

	require.NotNil(t, merged)
	assert.Equal(t, float64(10), merged["followers"])
}

func TestPlatformValid(t *testing.T) {
	for _, p := range Platforms {
		assert.True(t, p.Valid(), "%s should be valid", p)
	}
	assert.False(t, Platform("myspace").Valid())
	assert.False(t, Platform("").Valid())
}

func TestCodingProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		profile CodingProfile
		wantErr bool
	}{
		{"valid", CodingProfile{Platform: PlatformLeetCode, Username: "someone"}, false},
		{"bad platform", CodingProfile{Platform: "myspace", Username: "someone"}, true},
		{"missing username", CodingProfile{Platform: PlatformGitHub}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVariantsFlattenToTheirOwnKeys(t *testing.T) {
	tests := []struct {
		name     string
		stats    PlatformStats
		wantKeys []string
	}{
		{"leetcode", LeetCodeStats{TotalSolved: 1}, []string{"totalSolved", "easySolved", "mediumSolved", "hardSolved", "ranking", "contestParticipation", "badges"}},
		{"github", GitHubStats{TotalRepos: 1}, []string{"totalRepos", "totalStars", "totalCommits", "followers"}},
		{"codeforces", CodeforcesStats{Rating: 1}, []string{"rating", "maxRating", "totalSolved", "contestParticipation"}},
		{"codechef", CodeChefStats{Rating: 1}, []string{"rating", "maxRating", "totalSolved", "contestParticipation", "badges"}},
		{"hackerrank", HackerRankStats{}, []string{"totalSolved", "badges", "ranking"}},
		{"geeksforgeeks", GeeksforGeeksStats{}, []string{"totalSolved", "easySolved", "mediumSolved", "hardSolved", "ranking"}},
		{"interviewbit", InterviewBitStats{}, []string{"totalSolved", "ranking", "badges"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flat := tt.stats.Flat()
			require.Len(t, flat, len(tt.wantKeys))
			for _, k := range tt.wantKeys {
				_, ok := flat[k]
				assert.True(t, ok, "missing key %s", k)
			}
		})
	}
}
