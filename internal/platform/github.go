package platform

import (
	"context"
	"fmt"
	"time"

	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/logger"
	model "github.com/harilal-sah-kanu/Portfolio-sub000/internal/models"
)

// gitHubAdapter reads the public GitHub REST API. The star count is a
// secondary enrichment call: if it fails or times out the stats fetch
// still succeeds with zero stars.
type gitHubAdapter struct{}

func (a *gitHubAdapter) Platform() model.Platform { return model.PlatformGitHub }

func (a *gitHubAdapter) SupportsActivity() bool { return true }

func (a *gitHubAdapter) ProfileURL(username string) string {
	return "https://github.com/" + username
}

func (a *gitHubAdapter) FetchStats(ctx context.Context, username string) (model.PlatformStats, error) {
	payload, err := getJSON(ctx, "https://api.github.com/users/"+username)
	if err != nil {
		return nil, &FetchError{Platform: a.Platform(), Reason: "user lookup failed", Err: err}
	}
	if _, ok := payload["login"]; !ok {
		return nil, &FetchError{Platform: a.Platform(), Reason: fmt.Sprintf("user %q not found", username)}
	}

	stats := model.GitHubStats{
		TotalRepos: pickNum(payload, "public_repos", "publicRepos"),
		Followers:  pickNum(payload, "followers"),
	}

	// Enrichment only: a failed or slow star count degrades to 0.
	stars, commits, err := a.fetchStarsAndCommits(ctx, username)
	if err != nil {
		logger.Warning("github: star/commit enrichment for %s failed, defaulting to 0: %v", username, err)
	} else {
		stats.TotalStars = stars
		stats.TotalCommits = commits
	}

	return stats, nil
}

// fetchStarsAndCommits sums stargazers over the first 100 repos and push
// commits over recent public events.
func (a *gitHubAdapter) fetchStarsAndCommits(ctx context.Context, username string) (int, int, error) {
	repos, err := getJSONList(ctx, fmt.Sprintf("https://api.github.com/users/%s/repos?per_page=100", username))
	if err != nil {
		return 0, 0, err
	}
	stars := 0
	for _, r := range repos {
		repo, ok := r.(map[string]interface{})
		if !ok {
			continue
		}
		stars += pickNum(repo, "stargazers_count")
	}

	commits := 0
	events, err := getJSONList(ctx, fmt.Sprintf("https://api.github.com/users/%s/events/public?per_page=100", username))
	if err != nil {
		// Stars already fetched; commits alone degrade.
		logger.Warning("github: commit count for %s unavailable: %v", username, err)
		return stars, 0, nil
	}
	for _, e := range events {
		event, ok := e.(map[string]interface{})
		if !ok || event["type"] != "PushEvent" {
			continue
		}
		if payload := sub(event, "payload"); payload != nil {
			commits += len(list(payload, "commits"))
		}
	}
	return stars, commits, nil
}

// FetchActivity derives active days from recent public event timestamps.
func (a *gitHubAdapter) FetchActivity(ctx context.Context, username string) ([]model.ContributionDay, error) {
	events, err := getJSONList(ctx, fmt.Sprintf("https://api.github.com/users/%s/events/public?per_page=100", username))
	if err != nil {
		return nil, &FetchError{Platform: a.Platform(), Reason: "could not fetch public events", Err: err}
	}
	return githubEventDays(events), nil
}

func githubEventDays(events []interface{}) []model.ContributionDay {
	seen := map[string]bool{}
	days := []model.ContributionDay{}
	for _, e := range events {
		event, ok := e.(map[string]interface{})
		if !ok {
			continue
		}
		createdAt, _ := event["created_at"].(string)
		ts, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			continue
		}
		key := ts.UTC().Format("2006-01-02")
		if seen[key] {
			continue
		}
		seen[key] = true
		days = append(days, model.ContributionDay{
			Date:        time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC),
			Contributed: true,
		})
	}
	return days
}
