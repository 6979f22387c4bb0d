package model

import (
	"fmt"
	"time"
)

// Platform identifies one external coding or source-hosting site.
type Platform string

const (
	PlatformLeetCode      Platform = "leetcode"
	PlatformCodeChef      Platform = "codechef"
	PlatformCodeforces    Platform = "codeforces"
	PlatformHackerRank    Platform = "hackerrank"
	PlatformGitHub        Platform = "github"
	PlatformGeeksforGeeks Platform = "geeksforgeeks"
	PlatformInterviewBit  Platform = "interviewbit"
)

// Platforms lists every supported platform, in display order.
var Platforms = []Platform{
	PlatformLeetCode,
	PlatformCodeChef,
	PlatformCodeforces,
	PlatformHackerRank,
	PlatformGitHub,
	PlatformGeeksforGeeks,
	PlatformInterviewBit,
}

// Valid reports whether p is one of the supported platforms.
func (p Platform) Valid() bool {
	for _, known := range Platforms {
		if p == known {
			return true
		}
	}
	return false
}

// StatMap is the flat per-platform counter bag persisted as jsonb.
// Which keys are meaningful depends on the platform; see the typed
// variants below.
type StatMap map[string]float64

// Merge shallow-merges incoming into s: keys present in incoming
// overwrite, everything else is preserved. Returns the merged map so
// a nil receiver can be merged into.
func (s StatMap) Merge(incoming StatMap) StatMap {
	if s == nil {
		s = StatMap{}
	}
	for k, v := range incoming {
		s[k] = v
	}
	return s
}

// PlatformStats is implemented by the typed per-platform stat variants.
// Flat converts a variant into the persisted StatMap shape.
type PlatformStats interface {
	Flat() StatMap
}

// LeetCodeStats covers problem-solving counters from LeetCode.
type LeetCodeStats struct {
	TotalSolved          int `json:"totalSolved"`
	EasySolved           int `json:"easySolved"`
	MediumSolved         int `json:"mediumSolved"`
	HardSolved           int `json:"hardSolved"`
	Ranking              int `json:"ranking"`
	ContestParticipation int `json:"contestParticipation"`
	Badges               int `json:"badges"`
}

func (s LeetCodeStats) Flat() StatMap {
	return StatMap{
		"totalSolved":          float64(s.TotalSolved),
		"easySolved":           float64(s.EasySolved),
		"mediumSolved":         float64(s.MediumSolved),
		"hardSolved":           float64(s.HardSolved),
		"ranking":              float64(s.Ranking),
		"contestParticipation": float64(s.ContestParticipation),
		"badges":               float64(s.Badges),
	}
}

// GitHubStats covers source-hosting counters from GitHub.
type GitHubStats struct {
	TotalRepos   int `json:"totalRepos"`
	TotalStars   int `json:"totalStars"`
	TotalCommits int `json:"totalCommits"`
	Followers    int `json:"followers"`
}

func (s GitHubStats) Flat() StatMap {
	return StatMap{
		"totalRepos":   float64(s.TotalRepos),
		"totalStars":   float64(s.TotalStars),
		"totalCommits": float64(s.TotalCommits),
		"followers":    float64(s.Followers),
	}
}

// CodeforcesStats covers rated-contest counters from Codeforces.
type CodeforcesStats struct {
	Rating               int `json:"rating"`
	MaxRating            int `json:"maxRating"`
	TotalSolved          int `json:"totalSolved"`
	ContestParticipation int `json:"contestParticipation"`
}

func (s CodeforcesStats) Flat() StatMap {
	return StatMap{
		"rating":               float64(s.Rating),
		"maxRating":            float64(s.MaxRating),
		"totalSolved":          float64(s.TotalSolved),
		"contestParticipation": float64(s.ContestParticipation),
	}
}

// CodeChefStats covers rated-contest counters from CodeChef.
type CodeChefStats struct {
	Rating               int `json:"rating"`
	MaxRating            int `json:"maxRating"`
	TotalSolved          int `json:"totalSolved"`
	ContestParticipation int `json:"contestParticipation"`
	Badges               int `json:"badges"`
}

func (s CodeChefStats) Flat() StatMap {
	return StatMap{
		"rating":               float64(s.Rating),
		"maxRating":            float64(s.MaxRating),
		"totalSolved":          float64(s.TotalSolved),
		"contestParticipation": float64(s.ContestParticipation),
		"badges":               float64(s.Badges),
	}
}

// HackerRankStats covers HackerRank problem-solving counters.
type HackerRankStats struct {
	TotalSolved int `json:"totalSolved"`
	Badges      int `json:"badges"`
	Ranking     int `json:"ranking"`
}

func (s HackerRankStats) Flat() StatMap {
	return StatMap{
		"totalSolved": float64(s.TotalSolved),
		"badges":      float64(s.Badges),
		"ranking":     float64(s.Ranking),
	}
}

// GeeksforGeeksStats covers GeeksforGeeks problem-solving counters.
type GeeksforGeeksStats struct {
	TotalSolved  int `json:"totalSolved"`
	EasySolved   int `json:"easySolved"`
	MediumSolved int `json:"mediumSolved"`
	HardSolved   int `json:"hardSolved"`
	Ranking      int `json:"ranking"`
}

func (s GeeksforGeeksStats) Flat() StatMap {
	return StatMap{
		"totalSolved":  float64(s.TotalSolved),
		"easySolved":   float64(s.EasySolved),
		"mediumSolved": float64(s.MediumSolved),
		"hardSolved":   float64(s.HardSolved),
		"ranking":      float64(s.Ranking),
	}
}

// InterviewBitStats covers InterviewBit problem-solving counters.
type InterviewBitStats struct {
	TotalSolved int `json:"totalSolved"`
	Ranking     int `json:"ranking"`
	Badges      int `json:"badges"`
}

func (s InterviewBitStats) Flat() StatMap {
	return StatMap{
		"totalSolved": float64(s.TotalSolved),
		"ranking":     float64(s.Ranking),
		"badges":      float64(s.Badges),
	}
}

// ContributionDay is one calendar-day activity record. Date carries day
// granularity only; two entries are the same day iff year/month/day match.
type ContributionDay struct {
	Date        time.Time `json:"date"`
	Solved      bool      `json:"solved"`
	Contributed bool      `json:"contributed"`
}

// Active reports whether anything happened on this day.
func (d ContributionDay) Active() bool {
	return d.Solved || d.Contributed
}

// CodingProfile is one external-platform identity, unique per platform.
type CodingProfile struct {
	ID                 string            `json:"id"`
	Platform           Platform          `json:"platform"`
	Username           string            `json:"username"`
	ProfileURL         string            `json:"profileUrl,omitempty"`
	Stats              StatMap           `json:"stats"`
	DailyContributions []ContributionDay `json:"dailyContributions"`
	Enabled            bool              `json:"enabled"`
	LastUpdated        time.Time         `json:"lastUpdated"`
	CreatedAt          time.Time         `json:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt"`
}

// Validate checks the fields required on create/update.
func (p *CodingProfile) Validate() error {
	if !p.Platform.Valid() {
		return fmt.Errorf("unknown platform %q", p.Platform)
	}
	if p.Username == "" {
		return fmt.Errorf("username is required")
	}
	return nil
}

// HeatmapDay is one rendered cell. Date is nil for padding slots.
type HeatmapDay struct {
	Date  *time.Time `json:"date"`
	Level int        `json:"level"`
}

// HeatmapWeek is a Sunday-to-Saturday column of seven cells.
type HeatmapWeek [7]HeatmapDay

// HeatmapGrid is the trailing-365-day calendar, oldest week first.
type HeatmapGrid struct {
	Weeks []HeatmapWeek `json:"weeks"`
}

// MonthLabel positions a month name above the week where that month starts.
type MonthLabel struct {
	Name      string `json:"name"`
	WeekIndex int    `json:"weekIndex"`
}

// SyncResult summarizes one sync-all invocation so the caller can refresh
// without re-fetching everything.
type SyncResult struct {
	Profile        *CodingProfile `json:"profile"`
	Stats          StatMap        `json:"stats"`
	MergedDays     int            `json:"mergedDays"`
	ActivitySynced bool           `json:"activitySynced"`
	Message        string         `json:"message,omitempty"`
}

// CombinedContributions is the public aggregate over all enabled profiles.
type CombinedContributions struct {
	Days            []ContributionDay `json:"days"`
	TotalActiveDays int               `json:"totalActiveDays"`
	CurrentStreak   int               `json:"currentStreak"`
	Heatmap         HeatmapGrid       `json:"heatmap"`
	MonthLabels     []MonthLabel      `json:"monthLabels"`
}
