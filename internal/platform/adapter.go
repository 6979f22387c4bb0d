// Package platform fetches statistics and activity history from external
// coding platforms, one adapter per site, normalizing every response into
// the model stat variants.
package platform

import (
	"context"
	"errors"
	"fmt"

	model "github.com/harilal-sah-kanu/Portfolio-sub000/internal/models"
)

// Adapter is implemented once per external platform.
type Adapter interface {
	Platform() model.Platform

	// FetchStats pulls the current counters for username. All candidate
	// endpoints failing yields a *FetchError; the admin falls back to
	// manual entry, callers never retry automatically.
	FetchStats(ctx context.Context, username string) (model.PlatformStats, error)

	// FetchActivity pulls historical day records. Platforms without a
	// public history API return a *FetchError telling the admin the
	// contribution calendar is manual-update only.
	FetchActivity(ctx context.Context, username string) ([]model.ContributionDay, error)

	// SupportsActivity reports whether FetchActivity can ever succeed,
	// so stats-only sync stays selectable independently.
	SupportsActivity() bool

	// ProfileURL is the canonical public link for username.
	ProfileURL(username string) string
}

// FetchError is the adapter failure surfaced to the admin.
type FetchError struct {
	Platform model.Platform
	Reason   string
	Err      error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Platform, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Platform, e.Reason)
}

func (e *FetchError) Unwrap() error { return e.Err }

// IsFetchError reports whether err originated from a platform adapter.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

// ForPlatform returns the adapter for p.
func ForPlatform(p model.Platform) (Adapter, error) {
	switch p {
	case model.PlatformLeetCode:
		return &leetCodeAdapter{}, nil
	case model.PlatformGitHub:
		return &gitHubAdapter{}, nil
	case model.PlatformCodeforces:
		return &codeforcesAdapter{}, nil
	case model.PlatformCodeChef:
		return &codeChefAdapter{}, nil
	case model.PlatformHackerRank:
		return &hackerRankAdapter{}, nil
	case model.PlatformGeeksforGeeks:
		return &geeksforGeeksAdapter{}, nil
	case model.PlatformInterviewBit:
		return &interviewBitAdapter{}, nil
	default:
		return nil, fmt.Errorf("unknown platform %q", p)
	}
}
