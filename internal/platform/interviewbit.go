package platform

import (
	"context"
	"fmt"

	model "github.com/harilal-sah-kanu/Portfolio-sub000/internal/models"
)

// interviewBitAdapter reads the InterviewBit profile API. Stats only.
type interviewBitAdapter struct{}

func (a *interviewBitAdapter) Platform() model.Platform { return model.PlatformInterviewBit }

func (a *interviewBitAdapter) SupportsActivity() bool { return false }

func (a *interviewBitAdapter) ProfileURL(username string) string {
	return "https://www.interviewbit.com/profile/" + username
}

func (a *interviewBitAdapter) FetchStats(ctx context.Context, username string) (model.PlatformStats, error) {
	return tryEndpoints(ctx, a.Platform(), []string{
		fmt.Sprintf("https://www.interviewbit.com/v2/profile/username/?id=%s", username),
	}, parseInterviewBitStats)
}

func parseInterviewBitStats(payload map[string]interface{}) (model.PlatformStats, bool) {
	profile := sub(payload, "user")
	if profile == nil {
		profile = payload
	}
	stats := model.InterviewBitStats{
		TotalSolved: pickNum(profile, "total_problems_solved", "problems_solved", "totalSolved"),
		Ranking:     pickNum(profile, "global_rank", "rank", "ranking"),
		Badges:      pickNum(profile, "badges_count", "badges"),
	}
	if stats.TotalSolved == 0 && stats.Ranking == 0 {
		return nil, false
	}
	return stats, true
}

func (a *interviewBitAdapter) FetchActivity(ctx context.Context, username string) ([]model.ContributionDay, error) {
	return nil, &FetchError{
		Platform: a.Platform(),
		Reason:   "interviewbit exposes no activity history, contribution calendar is manual update only",
	}
}
