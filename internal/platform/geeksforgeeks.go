package platform

import (
	"context"
	"fmt"

	model "github.com/harilal-sah-kanu/Portfolio-sub000/internal/models"
)

// geeksforGeeksAdapter reads the unofficial GeeksforGeeks profile mirrors.
// Stats only.
type geeksforGeeksAdapter struct{}

var geeksforGeeksStatsURLs = []string{
	"https://geeks-for-geeks-api.vercel.app/%s",
	"https://gfg-api.vercel.app/%s",
}

func (a *geeksforGeeksAdapter) Platform() model.Platform { return model.PlatformGeeksforGeeks }

func (a *geeksforGeeksAdapter) SupportsActivity() bool { return false }

func (a *geeksforGeeksAdapter) ProfileURL(username string) string {
	return "https://www.geeksforgeeks.org/user/" + username
}

func (a *geeksforGeeksAdapter) FetchStats(ctx context.Context, username string) (model.PlatformStats, error) {
	urls := make([]string, len(geeksforGeeksStatsURLs))
	for i, u := range geeksforGeeksStatsURLs {
		urls[i] = fmt.Sprintf(u, username)
	}
	return tryEndpoints(ctx, a.Platform(), urls, parseGeeksforGeeksStats)
}

func parseGeeksforGeeksStats(payload map[string]interface{}) (model.PlatformStats, bool) {
	info := sub(payload, "info")
	if info == nil {
		info = payload
	}
	solved := sub(payload, "solvedStats")

	stats := model.GeeksforGeeksStats{
		TotalSolved: pickNum(info, "totalProblemsSolved", "total_problems_solved", "totalSolved"),
		Ranking:     pickNum(info, "instituteRank", "ranking", "rank"),
	}
	if solved != nil {
		stats.EasySolved = countGfGBucket(solved, "easy") + countGfGBucket(solved, "basic") + countGfGBucket(solved, "school")
		stats.MediumSolved = countGfGBucket(solved, "medium")
		stats.HardSolved = countGfGBucket(solved, "hard")
	}
	if stats.TotalSolved == 0 && stats.Ranking == 0 {
		return nil, false
	}
	return stats, true
}

func countGfGBucket(solved map[string]interface{}, difficulty string) int {
	bucket := sub(solved, difficulty)
	if bucket == nil {
		return 0
	}
	return pickNum(bucket, "count")
}

func (a *geeksforGeeksAdapter) FetchActivity(ctx context.Context, username string) ([]model.ContributionDay, error) {
	return nil, &FetchError{
		Platform: a.Platform(),
		Reason:   "geeksforgeeks exposes no activity history, contribution calendar is manual update only",
	}
}
