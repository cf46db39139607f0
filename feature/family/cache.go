package family

import (
	"context"
	"sync"
	"time"

	"pseudo-manager/feature/family/models"

	"golang.org/x/sync/singleflight"
)

// verifyEntry is one cached verify report.
type verifyEntry struct {
	report *models.VerifyReport
	built  time.Time
	ttl    time.Duration
}

func (e *verifyEntry) expired() bool {
	if e.ttl == 0 {
		return true // no caching
	}
	return time.Since(e.built) > e.ttl
}

// verifyCache holds verify reports keyed by family label. Verification walks
// every blob of a family, so repeated requests within the TTL are served
// from here; singleflight collapses concurrent rebuilds of the same label.
type verifyCache struct {
	mu      sync.RWMutex
	entries map[string]*verifyEntry
	sf      singleflight.Group
}

var globalVerifyCache = &verifyCache{
	entries: make(map[string]*verifyEntry),
}

// GetOrBuildVerifyReport returns a cached verify report for the family, or
// runs a verification and caches the result. A zero TTL bypasses the cache
// entirely.
func GetOrBuildVerifyReport(ctx context.Context, repo *Repository, label string, ttl time.Duration) (*models.VerifyReport, error) {
	if ttl == 0 {
		return VerifyFamily(ctx, repo, label)
	}

	globalVerifyCache.mu.RLock()
	entry, exists := globalVerifyCache.entries[label]
	globalVerifyCache.mu.RUnlock()

	if exists && !entry.expired() {
		return entry.report, nil
	}

	result, err, _ := globalVerifyCache.sf.Do(label, func() (interface{}, error) {
		// Double-check after acquiring the singleflight lock.
		globalVerifyCache.mu.RLock()
		entry, exists := globalVerifyCache.entries[label]
		globalVerifyCache.mu.RUnlock()

		if exists && !entry.expired() {
			return entry.report, nil
		}

		report, err := VerifyFamily(ctx, repo, label)
		if err != nil {
			return nil, err
		}

		globalVerifyCache.mu.Lock()
		globalVerifyCache.entries[label] = &verifyEntry{report: report, built: time.Now(), ttl: ttl}
		globalVerifyCache.mu.Unlock()

		return report, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*models.VerifyReport), nil
}

// InvalidateVerifyReport drops the cached report for a family, forcing the
// next request to re-verify.
func InvalidateVerifyReport(label string) {
	globalVerifyCache.mu.Lock()
	delete(globalVerifyCache.entries, label)
	globalVerifyCache.mu.Unlock()
}
