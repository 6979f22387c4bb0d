package platform

import (
	"context"
	"fmt"
	"strconv"
	"time"

	model "github.com/harilal-sah-kanu/Portfolio-sub000/internal/models"
)

// leetCodeAdapter reads the unofficial LeetCode stats mirrors. The first
// mirror also exposes the submission calendar used for activity history.
type leetCodeAdapter struct{}

var leetCodeStatsURLs = []string{
	"https://leetcode-stats-api.herokuapp.com/%s",
	"https://leetcode-api-faisalshohag.vercel.app/%s",
}

func (a *leetCodeAdapter) Platform() model.Platform { return model.PlatformLeetCode }

func (a *leetCodeAdapter) SupportsActivity() bool { return true }

func (a *leetCodeAdapter) ProfileURL(username string) string {
	return "https://leetcode.com/u/" + username
}

func (a *leetCodeAdapter) FetchStats(ctx context.Context, username string) (model.PlatformStats, error) {
	urls := make([]string, len(leetCodeStatsURLs))
	for i, u := range leetCodeStatsURLs {
		urls[i] = fmt.Sprintf(u, username)
	}
	return tryEndpoints(ctx, a.Platform(), urls, parseLeetCodeStats)
}

// parseLeetCodeStats probes both mirror shapes: the herokuapp mirror uses
// totalSolved/easySolved/..., the vercel one solvedProblem/easySolved/... .
func parseLeetCodeStats(payload map[string]interface{}) (model.PlatformStats, bool) {
	if status, ok := payload["status"].(string); ok && status == "error" {
		return nil, false
	}

	stats := model.LeetCodeStats{
		TotalSolved:          pickNum(payload, "totalSolved", "solvedProblem"),
		EasySolved:           pickNum(payload, "easySolved", "easySolvedProblem"),
		MediumSolved:         pickNum(payload, "mediumSolved", "mediumSolvedProblem"),
		HardSolved:           pickNum(payload, "hardSolved", "hardSolvedProblem"),
		Ranking:              pickNum(payload, "ranking", "rank"),
		ContestParticipation: pickNum(payload, "contestParticipation", "contestAttend"),
		Badges:               pickNum(payload, "badges", "badgeCount"),
	}
	if stats.TotalSolved == 0 && stats.Ranking == 0 {
		return nil, false
	}
	return stats, true
}

func (a *leetCodeAdapter) FetchActivity(ctx context.Context, username string) ([]model.ContributionDay, error) {
	var payload map[string]interface{}
	var lastErr error
	for _, u := range leetCodeStatsURLs {
		p, err := getJSON(ctx, fmt.Sprintf(u, username))
		if err != nil {
			lastErr = err
			continue
		}
		payload = p
		break
	}
	if payload == nil {
		return nil, &FetchError{Platform: a.Platform(), Reason: "could not fetch submission calendar", Err: lastErr}
	}

	days := decodeSubmissionCalendar(payload)
	if days == nil {
		return nil, &FetchError{Platform: a.Platform(), Reason: "response has no submission calendar"}
	}
	return days, nil
}

// decodeSubmissionCalendar turns the day→count map (UNIX-timestamp keys)
// into one record per day with at least one submission.
func decodeSubmissionCalendar(payload map[string]interface{}) []model.ContributionDay {
	calendar, ok := payload["submissionCalendar"].(map[string]interface{})
	if !ok {
		return nil
	}

	days := []model.ContributionDay{}
	for key, v := range calendar {
		ts, err := strconv.ParseInt(key, 10, 64)
		if err != nil || num(v) <= 0 {
			continue
		}
		date := time.Unix(ts, 0).UTC()
		days = append(days, model.ContributionDay{
			Date:   time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
			Solved: true,
		})
	}
	return days
}
