package platform

import (
	"context"
	"fmt"
	"time"

	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/logger"
	model "github.com/harilal-sah-kanu/Portfolio-sub000/internal/models"
)

// codeforcesAdapter reads the official Codeforces API (user.info,
// user.rating, user.status).
type codeforcesAdapter struct{}

func (a *codeforcesAdapter) Platform() model.Platform { return model.PlatformCodeforces }

func (a *codeforcesAdapter) SupportsActivity() bool { return true }

func (a *codeforcesAdapter) ProfileURL(username string) string {
	return "https://codeforces.com/profile/" + username
}

func (a *codeforcesAdapter) FetchStats(ctx context.Context, username string) (model.PlatformStats, error) {
	payload, err := getJSON(ctx, "https://codeforces.com/api/user.info?handles="+username)
	if err != nil {
		return nil, &FetchError{Platform: a.Platform(), Reason: "user.info failed", Err: err}
	}

	stats, ok := parseCodeforcesInfo(payload)
	if !ok {
		return nil, &FetchError{Platform: a.Platform(), Reason: fmt.Sprintf("handle %q not found", username)}
	}

	// Contest count comes from user.rating; a failure there degrades to 0.
	if contests, err := a.fetchContestCount(ctx, username); err != nil {
		logger.Warning("codeforces: contest count for %s unavailable: %v", username, err)
	} else {
		stats.ContestParticipation = contests
	}

	return stats, nil
}

func parseCodeforcesInfo(payload map[string]interface{}) (model.CodeforcesStats, bool) {
	if status, _ := payload["status"].(string); status != "OK" {
		return model.CodeforcesStats{}, false
	}
	results := list(payload, "result")
	if len(results) == 0 {
		return model.CodeforcesStats{}, false
	}
	user, ok := results[0].(map[string]interface{})
	if !ok {
		return model.CodeforcesStats{}, false
	}
	return model.CodeforcesStats{
		Rating:    pickNum(user, "rating"),
		MaxRating: pickNum(user, "maxRating", "max_rating"),
	}, true
}

func (a *codeforcesAdapter) fetchContestCount(ctx context.Context, username string) (int, error) {
	payload, err := getJSON(ctx, "https://codeforces.com/api/user.rating?handle="+username)
	if err != nil {
		return 0, err
	}
	if status, _ := payload["status"].(string); status != "OK" {
		return 0, fmt.Errorf("user.rating status %q", status)
	}
	return len(list(payload, "result")), nil
}

// FetchActivity derives solved days from accepted submissions.
func (a *codeforcesAdapter) FetchActivity(ctx context.Context, username string) ([]model.ContributionDay, error) {
	payload, err := getJSON(ctx, fmt.Sprintf("https://codeforces.com/api/user.status?handle=%s&from=1&count=1000", username))
	if err != nil {
		return nil, &FetchError{Platform: a.Platform(), Reason: "user.status failed", Err: err}
	}
	if status, _ := payload["status"].(string); status != "OK" {
		return nil, &FetchError{Platform: a.Platform(), Reason: fmt.Sprintf("user.status returned %q", status)}
	}
	return codeforcesSubmissionDays(list(payload, "result")), nil
}

func codeforcesSubmissionDays(submissions []interface{}) []model.ContributionDay {
	seen := map[string]bool{}
	days := []model.ContributionDay{}
	for _, s := range submissions {
		submission, ok := s.(map[string]interface{})
		if !ok {
			continue
		}
		if verdict, _ := submission["verdict"].(string); verdict != "OK" {
			continue
		}
		ts := int64(num(submission["creationTimeSeconds"]))
		if ts == 0 {
			continue
		}
		date := time.Unix(ts, 0).UTC()
		key := date.Format("2006-01-02")
		if seen[key] {
			continue
		}
		seen[key] = true
		days = append(days, model.ContributionDay{
			Date:   time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
			Solved: true,
		})
	}
	return days
}
