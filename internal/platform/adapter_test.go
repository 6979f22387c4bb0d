package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/harilal-sah-kanu/Portfolio-sub000/internal/models"
)

func decode(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	return payload
}

func TestForPlatformCoversEveryPlatform(t *testing.T) {
	for _, p := range model.Platforms {
		adapter, err := ForPlatform(p)
		require.NoError(t, err)
		assert.Equal(t, p, adapter.Platform())
		assert.NotEmpty(t, adapter.ProfileURL("someone"))
	}

	_, err := ForPlatform(model.Platform("myspace"))
	assert.Error(t, err)
}

func TestTryEndpointsFallsBackInOrder(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer broken.Close()

	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"totalSolved": 42, "ranking": 1000})
	}))
	defer healthy.Close()

	stats, err := tryEndpoints(context.Background(), model.PlatformLeetCode,
		[]string{broken.URL, healthy.URL}, parseLeetCodeStats)

	require.NoError(t, err)
	assert.Equal(t, float64(42), stats.Flat()["totalSolved"])
}

func TestTryEndpointsAllFailing(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusNotFound)
	}))
	defer broken.Close()

	_, err := tryEndpoints(context.Background(), model.PlatformLeetCode,
		[]string{broken.URL, broken.URL}, parseLeetCodeStats)

	require.Error(t, err)
	assert.True(t, IsFetchError(err))
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, model.PlatformLeetCode, fe.Platform)
}

func TestPickNumProbesVariants(t *testing.T) {
	payload := decode(t, `{"solvedProblem": 120, "rank": "345", "nested": {"x": 1}}`)

	assert.Equal(t, 120, pickNum(payload, "totalSolved", "solvedProblem"))
	assert.Equal(t, 345, pickNum(payload, "ranking", "rank"))
	assert.Equal(t, 0, pickNum(payload, "missing", "alsoMissing"), "absent fields default to 0")
}

func TestActivityUnsupportedPlatforms(t *testing.T) {
	for _, p := range []model.Platform{
		model.PlatformCodeChef,
		model.PlatformHackerRank,
		model.PlatformGeeksforGeeks,
		model.PlatformInterviewBit,
	} {
		t.Run(string(p), func(t *testing.T) {
			adapter, err := ForPlatform(p)
			require.NoError(t, err)
			assert.False(t, adapter.SupportsActivity())

			_, err = adapter.FetchActivity(context.Background(), "someone")
			require.Error(t, err)
			assert.True(t, IsFetchError(err))
			assert.Contains(t, err.Error(), "manual update only")
		})
	}
}
