package jobs

import (
	"github.com/budgetsakkie/price-backend/services"
	"github.com/sirupsen/logrus"
)

// CacheCleanupJob reclaims memory held by expired entries in both caches.
// Expiry itself is lazy (a stale entry reads as a miss), so this job only
// frees memory and never changes cache behavior.
type CacheCleanupJob struct {
	ResultCache   *services.CacheService
	ResponseCache *services.CacheService
}

func NewCacheCleanupJob(resultCache, responseCache *services.CacheService) *CacheCleanupJob {
	return &CacheCleanupJob{
		ResultCache:   resultCache,
		ResponseCache: responseCache,
	}
}

func (j *CacheCleanupJob) Run() {
	logrus.Info("Starting Cache Cleanup Job")

	resultRemoved := j.ResultCache.CleanupExpired()
	responseRemoved := j.ResponseCache.CleanupExpired()

	logrus.WithFields(logrus.Fields{
		"result_entries_removed":   resultRemoved,
		"response_entries_removed": responseRemoved,
	}).Info("Cache Cleanup Job completed")
}
