// Package services orchestrates the platform adapters, the contribution
// merge engine and the store.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/cache"
	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/contribution"
	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/database"
	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/logger"
	model "github.com/harilal-sah-kanu/Portfolio-sub000/internal/models"
	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/platform"
	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/scanner"
)

// ErrProfileNotFound maps to a 404 at the handler layer.
var ErrProfileNotFound = errors.New("coding profile not found")

const profileColumns = `id, platform, username, profile_url, stats, daily_contributions,
	enabled, last_updated, created_at, updated_at`

// LoadProfile fetches one coding profile by id.
func LoadProfile(ctx context.Context, id string) (*model.CodingProfile, error) {
	row := database.DB.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM coding_profiles WHERE id=$1`, id)

	p, err := scanner.ScanCodingProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

// LoadProfiles fetches all profiles, optionally only the enabled ones.
func LoadProfiles(ctx context.Context, enabledOnly bool) ([]model.CodingProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM coding_profiles ORDER BY platform`
	if enabledOnly {
		query = `SELECT ` + profileColumns + ` FROM coding_profiles WHERE enabled ORDER BY platform`
	}

	rows, err := database.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []model.CodingProfile
	for rows.Next() {
		p, err := scanner.ScanCodingProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

// FetchStatsOnly runs a one-shot adapter fetch without persisting anything,
// so the admin can preview (and hand-correct) the numbers before saving.
func FetchStatsOnly(ctx context.Context, p model.Platform, username string) (model.StatMap, string, error) {
	adapter, err := platform.ForPlatform(p)
	if err != nil {
		return nil, "", err
	}
	stats, err := adapter.FetchStats(ctx, username)
	if err != nil {
		return nil, "", err
	}
	return stats.Flat(), adapter.ProfileURL(username), nil
}

// SyncAll fetches stats and activity history for one profile and persists
// both in a single row update. A stats failure aborts the whole sync; an
// unsupported activity feed is reported, not silently skipped. Nothing is
// partially committed.
func SyncAll(ctx context.Context, profileID string) (*model.SyncResult, error) {
	p, err := LoadProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	adapter, err := platform.ForPlatform(p.Platform)
	if err != nil {
		return nil, err
	}

	fetched, err := adapter.FetchStats(ctx, p.Username)
	if err != nil {
		return nil, fmt.Errorf("syncing %s stats: %w", p.Platform, err)
	}

	var activity []model.ContributionDay
	activitySynced := false
	message := ""
	if adapter.SupportsActivity() {
		activity, err = adapter.FetchActivity(ctx, p.Username)
		if err != nil {
			return nil, fmt.Errorf("syncing %s activity: %w", p.Platform, err)
		}
		activitySynced = true
	} else {
		message = fmt.Sprintf("%s has no activity feed, contribution calendar is manual update only", p.Platform)
	}

	now := time.Now()
	p.Stats = p.Stats.Merge(fetched.Flat())
	merged, newDays := contribution.MergeAll(p.DailyContributions, activity, now)
	p.DailyContributions = merged
	p.ProfileURL = adapter.ProfileURL(p.Username)
	p.LastUpdated = now

	// One row, one UPDATE: stats and activity land together or not at all.
	_, err = database.DB.Exec(ctx, `
		UPDATE coding_profiles
		SET stats=$1, daily_contributions=$2, profile_url=$3, last_updated=$4, updated_at=NOW()
		WHERE id=$5`,
		p.Stats, p.DailyContributions, p.ProfileURL, p.LastUpdated, p.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("persisting %s sync: %w", p.Platform, err)
	}

	cache.InvalidateCombined(ctx)
	logger.Success("synced %s/%s: %d new contribution days", p.Platform, p.Username, newDays)

	return &model.SyncResult{
		Profile:        p,
		Stats:          p.Stats,
		MergedDays:     newDays,
		ActivitySynced: activitySynced,
		Message:        message,
	}, nil
}

// CombinedContributions builds the public aggregate over every enabled
// profile: union the days, then run one streak/total/heatmap pass.
func CombinedContributions(ctx context.Context, today time.Time) (*model.CombinedContributions, error) {
	profiles, err := LoadProfiles(ctx, true)
	if err != nil {
		return nil, err
	}

	days := contribution.Combine(profiles)
	grid := contribution.BuildGrid(days, today)

	return &model.CombinedContributions{
		Days:            days,
		TotalActiveDays: contribution.TotalActiveDays(days),
		CurrentStreak:   contribution.CurrentStreak(days, today),
		Heatmap:         grid,
		MonthLabels:     contribution.MonthLabels(grid),
	}, nil
}
