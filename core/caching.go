package core

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/oceanpulse/oceanpulse/internal/contract"
)

// currentCacheVersion defines the version of the cached summary layout
const currentCacheVersion = 1

// summaryCacheKey creates a unique key for one domain summary. The key covers
// the MPA identity and geometry plus the assessment window, so moving the MPA
// or changing the window can never produce a stale hit.
func summaryCacheKey(domain string, cfg *contract.Config) string {
	// Use canonical helpers from contract.Config to ensure consistent time granularity
	windowStart := cfg.GetWindowStart()
	windowEnd := cfg.GetWindowEnd()

	key := fmt.Sprintf("%s:%s:%.4f:%.4f:%.1f:%d:%d:%g:%s",
		domain,
		cfg.MPA.ID,
		cfg.MPA.Lat,
		cfg.MPA.Lon,
		cfg.MPA.RadiusKm,
		windowStart.Unix(),
		windowEnd.Unix(),
		cfg.CellSizeDeg,
		strings.Join(cfg.Ecosystems, ","),
	)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(key)))
}

// cachedSummary wraps compute with the summary cache. A fresh entry with the
// current version bypasses recomputation entirely, including the upstream
// fetch; anything else recomputes and stores the result best-effort.
func cachedSummary[T any](cfg *contract.Config, mgr contract.CacheManager, domain string, compute func() (T, error)) (T, error) {
	var store contract.CacheStore
	if mgr != nil {
		store = mgr.GetSummaryStore()
	}
	if store == nil || cfg.NoCache {
		// Fallback to direct computation
		return compute()
	}

	key := summaryCacheKey(domain, cfg)

	// Check for cache hit
	if result, ok := checkCacheHit[T](store, key); ok {
		return result, nil
	}

	// Cache miss: compute and store
	result, err := compute()
	if err != nil {
		return result, err
	}
	if data, err := json.Marshal(result); err == nil {
		_ = store.Set(key, data, currentCacheVersion, time.Now().Unix())
	}
	return result, nil
}

// checkCacheHit attempts to retrieve and validate a cached summary.
func checkCacheHit[T any](store contract.CacheStore, key string) (T, bool) {
	var zero T
	data, version, ts, err := store.Get(key)
	if err != nil {
		return zero, false // Cache miss
	}

	// Validate version and staleness
	if version != currentCacheVersion {
		return zero, false
	}
	if time.Since(time.Unix(ts, 0)) > contract.SummaryCacheTTL {
		return zero, false
	}

	var result T
	if err := json.Unmarshal(data, &result); err != nil {
		return zero, false
	}
	return result, true
}
