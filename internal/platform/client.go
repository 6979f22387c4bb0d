package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	model "github.com/harilal-sah-kanu/Portfolio-sub000/internal/models"
)

// FetchTimeout bounds every external call so a hung endpoint cannot stall
// a whole sync.
const FetchTimeout = 8 * time.Second

var httpClient = &http.Client{Timeout: FetchTimeout}

// getJSON fetches url and decodes the body into a generic map.
func getJSON(ctx context.Context, url string) (map[string]interface{}, error) {
	ctx, cancel := context.WithTimeout(ctx, FetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "portfolio-backend")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, err
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", url, err)
	}
	return payload, nil
}

// getJSONList is getJSON for endpoints that answer with a top-level array.
func getJSONList(ctx context.Context, url string) ([]interface{}, error) {
	ctx, cancel := context.WithTimeout(ctx, FetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "portfolio-backend")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, err
	}

	var payload []interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", url, err)
	}
	return payload, nil
}

// tryEndpoints walks an ordered list of candidate mirror URLs and returns
// the first parse that succeeds. Mirror APIs expose the same logical fields
// under different keys, so parse probes each payload defensively.
func tryEndpoints(ctx context.Context, p model.Platform, urls []string, parse func(map[string]interface{}) (model.PlatformStats, bool)) (model.PlatformStats, error) {
	var lastErr error
	for _, url := range urls {
		payload, err := getJSON(ctx, url)
		if err != nil {
			lastErr = err
			continue
		}
		if stats, ok := parse(payload); ok {
			return stats, nil
		}
		lastErr = fmt.Errorf("no recognizable data at %s", url)
	}
	return nil, &FetchError{Platform: p, Reason: "could not fetch stats, enter them manually", Err: lastErr}
}

// num coerces a loosely-typed JSON value to float64, defaulting to 0.
func num(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case json.Number:
		f, _ := n.Float64()
		return f
	case string:
		var f float64
		fmt.Sscanf(n, "%f", &f)
		return f
	default:
		return 0
	}
}

// pickNum probes m for the first present key and coerces it to int.
// Missing fields default to 0 rather than failing the fetch.
func pickNum(m map[string]interface{}, keys ...string) int {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return int(num(v))
		}
	}
	return 0
}

// sub descends into a nested object, returning nil when the path is absent.
func sub(m map[string]interface{}, keys ...string) map[string]interface{} {
	current := m
	for _, k := range keys {
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return current
}

// list extracts a nested array value.
func list(m map[string]interface{}, key string) []interface{} {
	l, _ := m[key].([]interface{})
	return l
}
