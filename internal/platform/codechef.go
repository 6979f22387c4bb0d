package platform

import (
	"context"
	"fmt"

	model "github.com/harilal-sah-kanu/Portfolio-sub000/internal/models"
)

// codeChefAdapter reads the unofficial CodeChef mirrors. CodeChef exposes
// no public history API, so activity stays manual-update only.
type codeChefAdapter struct{}

var codeChefStatsURLs = []string{
	"https://codechef-api.vercel.app/handle/%s",
	"https://codechef-api-v2.vercel.app/handle/%s",
}

func (a *codeChefAdapter) Platform() model.Platform { return model.PlatformCodeChef }

func (a *codeChefAdapter) SupportsActivity() bool { return false }

func (a *codeChefAdapter) ProfileURL(username string) string {
	return "https://www.codechef.com/users/" + username
}

func (a *codeChefAdapter) FetchStats(ctx context.Context, username string) (model.PlatformStats, error) {
	urls := make([]string, len(codeChefStatsURLs))
	for i, u := range codeChefStatsURLs {
		urls[i] = fmt.Sprintf(u, username)
	}
	return tryEndpoints(ctx, a.Platform(), urls, parseCodeChefStats)
}

func parseCodeChefStats(payload map[string]interface{}) (model.PlatformStats, bool) {
	if success, ok := payload["success"].(bool); ok && !success {
		return nil, false
	}
	stats := model.CodeChefStats{
		Rating:               pickNum(payload, "currentRating", "rating"),
		MaxRating:            pickNum(payload, "highestRating", "maxRating", "highest_rating"),
		TotalSolved:          pickNum(payload, "problemsSolved", "totalSolved", "fullySolved"),
		ContestParticipation: pickNum(payload, "contestParticipation", "contestsAttended"),
		Badges:               pickNum(payload, "stars", "badges"),
	}
	if stats.Rating == 0 && stats.MaxRating == 0 {
		return nil, false
	}
	return stats, true
}

func (a *codeChefAdapter) FetchActivity(ctx context.Context, username string) ([]model.ContributionDay, error) {
	return nil, &FetchError{
		Platform: a.Platform(),
		Reason:   "codechef has no public history API, contribution calendar is manual update only",
	}
}
