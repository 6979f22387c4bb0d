package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/cache"
	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/contribution"
	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/database"
	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/middleware"
	model "github.com/harilal-sah-kanu/Portfolio-sub000/internal/models"
	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/platform"
	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/services"
	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/utils"
)

// GetCodingProfiles lists profiles. Public callers see enabled ones; the
// admin can pass ?all=true to include hidden profiles.
func GetCodingProfiles(w http.ResponseWriter, r *http.Request) {
	enabledOnly := true
	if r.URL.Query().Get("all") == "true" && middleware.IsAdmin(r) {
		enabledOnly = false
	}

	profiles, err := services.LoadProfiles(r.Context(), enabledOnly)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query coding profiles", err)
		return
	}
	if profiles == nil {
		profiles = []model.CodingProfile{}
	}

	utils.Success(w, profiles)
}

// GetCodingProfile returns a single profile by id.
func GetCodingProfile(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	profile, err := services.LoadProfile(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			utils.Error(w, http.StatusNotFound, "coding profile not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not get coding profile", err)
		return
	}

	utils.Success(w, profile)
}

// GetCombinedContributions serves the all-platforms contribution calendar,
// streak and heatmap. Cached briefly; any profile write invalidates it.
func GetCombinedContributions(w http.ResponseWriter, r *http.Request) {
	var cached model.CombinedContributions
	if cache.GetCombined(r.Context(), &cached) {
		utils.Success(w, cached)
		return
	}

	combined, err := services.CombinedContributions(r.Context(), time.Now())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not build combined contributions", err)
		return
	}

	cache.SetCombined(r.Context(), combined)
	utils.Success(w, combined)
}

// CreateCodingProfile creates or upserts-by-platform a profile.
func CreateCodingProfile(w http.ResponseWriter, r *http.Request) {
	var p model.CodingProfile
	if err := utils.DecodeJSON(r, &p); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}
	if err := p.Validate(); err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if p.Stats == nil {
		p.Stats = model.StatMap{}
	}
	p.DailyContributions = contribution.ApplyRetention(p.DailyContributions, time.Now())
	if p.DailyContributions == nil {
		p.DailyContributions = []model.ContributionDay{}
	}
	if p.ProfileURL == "" {
		if adapter, err := platform.ForPlatform(p.Platform); err == nil {
			p.ProfileURL = adapter.ProfileURL(p.Username)
		}
	}

	err := database.DB.QueryRow(r.Context(), `
		INSERT INTO coding_profiles (id, platform, username, profile_url, stats, daily_contributions, enabled, last_updated, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW(), NOW())
		ON CONFLICT (platform) DO UPDATE
		SET username=EXCLUDED.username,
			profile_url=EXCLUDED.profile_url,
			stats=EXCLUDED.stats,
			daily_contributions=EXCLUDED.daily_contributions,
			enabled=EXCLUDED.enabled,
			last_updated=NOW(),
			updated_at=NOW()
		RETURNING id, last_updated, created_at, updated_at`,
		uuid.NewString(), p.Platform, p.Username, p.ProfileURL, p.Stats, p.DailyContributions, p.Enabled,
	).Scan(&p.ID, &p.LastUpdated, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save coding profile", err)
		return
	}

	cache.InvalidateCombined(r.Context())
	utils.Created(w, p)
}

// UpdateCodingProfile applies a manual admin edit. Provided stat keys
// override stored ones, everything else is preserved — this is the designed
// recovery path when an adapter fetch fails.
func UpdateCodingProfile(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var payload struct {
		Username   *string       `json:"username"`
		ProfileURL *string       `json:"profileUrl"`
		Stats      model.StatMap `json:"stats"`
		Enabled    *bool         `json:"enabled"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	p, err := services.LoadProfile(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			utils.Error(w, http.StatusNotFound, "coding profile not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not load coding profile", err)
		return
	}

	if payload.Username != nil {
		if *payload.Username == "" {
			utils.Error(w, http.StatusBadRequest, "username cannot be empty")
			return
		}
		p.Username = *payload.Username
	}
	if payload.ProfileURL != nil {
		p.ProfileURL = *payload.ProfileURL
	}
	if payload.Enabled != nil {
		p.Enabled = *payload.Enabled
	}
	if payload.Stats != nil {
		p.Stats = p.Stats.Merge(payload.Stats)
		p.LastUpdated = time.Now()
	}

	_, err = database.DB.Exec(r.Context(), `
		UPDATE coding_profiles
		SET username=$1, profile_url=$2, stats=$3, enabled=$4, last_updated=$5, updated_at=NOW()
		WHERE id=$6`,
		p.Username, p.ProfileURL, p.Stats, p.Enabled, p.LastUpdated, p.ID,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update coding profile", err)
		return
	}

	cache.InvalidateCombined(r.Context())
	utils.Success(w, p)
}

// DeleteCodingProfile removes a profile outright; nothing cascades.
func DeleteCodingProfile(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	tag, err := database.DB.Exec(r.Context(), `DELETE FROM coding_profiles WHERE id=$1`, id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not delete coding profile", err)
		return
	}
	if tag.RowsAffected() == 0 {
		utils.Error(w, http.StatusNotFound, "coding profile not found")
		return
	}

	cache.InvalidateCombined(r.Context())
	utils.Message(w, "coding profile deleted")
}

// FetchPlatformStats runs a one-shot adapter fetch without persisting, so
// the admin can preview the numbers before creating or editing a profile.
func FetchPlatformStats(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Platform model.Platform `json:"platform"`
		Username string         `json:"username"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}
	if !payload.Platform.Valid() {
		utils.Error(w, http.StatusBadRequest, "unknown platform")
		return
	}
	if payload.Username == "" {
		utils.Error(w, http.StatusBadRequest, "username is required")
		return
	}

	stats, profileURL, err := services.FetchStatsOnly(r.Context(), payload.Platform, payload.Username)
	if err != nil {
		// Adapter failures are a 400: the admin falls back to manual entry.
		utils.Error(w, http.StatusBadRequest, "could not fetch stats, enter them manually", err)
		return
	}

	utils.Success(w, map[string]interface{}{
		"platform":   payload.Platform,
		"username":   payload.Username,
		"profileUrl": profileURL,
		"stats":      stats,
	})
}

// SetDailyContribution writes a single day entry by hand. Unlike sync
// merging, the given values replace whatever the day held before.
func SetDailyContribution(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var payload struct {
		Date        string `json:"date"`
		Solved      bool   `json:"solved"`
		Contributed bool   `json:"contributed"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	date := time.Now()
	if payload.Date != "" {
		parsed, err := parseDate(payload.Date)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "date must be YYYY-MM-DD or RFC3339", err)
			return
		}
		date = parsed
	}

	p, err := services.LoadProfile(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			utils.Error(w, http.StatusNotFound, "coding profile not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not load coding profile", err)
		return
	}

	days := contribution.SetManual(p.DailyContributions, date, payload.Solved, payload.Contributed)
	days = contribution.ApplyRetention(days, time.Now())
	p.DailyContributions = days
	p.LastUpdated = time.Now()

	_, err = database.DB.Exec(r.Context(), `
		UPDATE coding_profiles
		SET daily_contributions=$1, last_updated=$2, updated_at=NOW()
		WHERE id=$3`,
		p.DailyContributions, p.LastUpdated, p.ID,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save daily contribution", err)
		return
	}

	cache.InvalidateCombined(r.Context())
	utils.Success(w, p)
}

// SyncProfile runs the full stats+activity sync for one profile.
func SyncProfile(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := services.SyncAll(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProfileNotFound):
			utils.Error(w, http.StatusNotFound, "coding profile not found")
		case platform.IsFetchError(err):
			utils.Error(w, http.StatusBadRequest, "platform sync failed, update stats manually", err)
		default:
			utils.Error(w, http.StatusInternalServerError, "sync failed", err)
		}
		return
	}

	utils.Success(w, result)
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
