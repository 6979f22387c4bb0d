package platform

import (
	"context"

	model "github.com/harilal-sah-kanu/Portfolio-sub000/internal/models"
)

// hackerRankAdapter reads the HackerRank profile API. Stats only; there is
// no public activity feed.
type hackerRankAdapter struct{}

func (a *hackerRankAdapter) Platform() model.Platform { return model.PlatformHackerRank }

func (a *hackerRankAdapter) SupportsActivity() bool { return false }

func (a *hackerRankAdapter) ProfileURL(username string) string {
	return "https://www.hackerrank.com/profile/" + username
}

func (a *hackerRankAdapter) FetchStats(ctx context.Context, username string) (model.PlatformStats, error) {
	return tryEndpoints(ctx, a.Platform(), []string{
		"https://www.hackerrank.com/rest/contests/master/hackers/" + username + "/profile",
	}, parseHackerRankStats)
}

func parseHackerRankStats(payload map[string]interface{}) (model.PlatformStats, bool) {
	profile := sub(payload, "model")
	if profile == nil {
		profile = payload
	}
	if _, ok := profile["username"]; !ok {
		if _, ok := profile["name"]; !ok {
			return nil, false
		}
	}
	return model.HackerRankStats{
		TotalSolved: pickNum(profile, "solved_challenges", "totalSolved", "challenges_solved"),
		Badges:      pickNum(profile, "badges_count", "badges"),
		Ranking:     pickNum(profile, "rank", "ranking"),
	}, true
}

func (a *hackerRankAdapter) FetchActivity(ctx context.Context, username string) ([]model.ContributionDay, error) {
	return nil, &FetchError{
		Platform: a.Platform(),
		Reason:   "hackerrank exposes no activity history, contribution calendar is manual update only",
	}
}
