package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/wonny/pumpwatch/internal/contracts"
	"github.com/wonny/pumpwatch/internal/s1_universe"
	"github.com/wonny/pumpwatch/pkg/logger"
	"github.com/wonny/pumpwatch/pkg/redis"
)

// UniverseJob refreshes the tracked universe every trading morning.
// The selector only rebuilds on a month change; other mornings this job
// re-reads the cached symbol list, so running it daily is cheap.
// ⭐ SSOT: Universe 갱신 스케줄은 이 Job에서만
type UniverseJob struct {
	source     contracts.CoarseSource
	selector   *s1_universe.Selector
	repository *s1_universe.Repository
	cache      *redis.Cache
	schedule   string
	logger     *logger.Logger
}

// NewUniverseJob creates a new universe job
func NewUniverseJob(
	source contracts.CoarseSource,
	selector *s1_universe.Selector,
	repository *s1_universe.Repository,
	cache *redis.Cache,
	schedule string,
	log *logger.Logger,
) *UniverseJob {
	return &UniverseJob{
		source:     source,
		selector:   selector,
		repository: repository,
		cache:      cache,
		schedule:   schedule,
		logger:     log,
	}
}

// Name returns the job name
func (j *UniverseJob) Name() string {
	return "universe_refresh"
}

// Schedule returns the cron schedule (trading mornings, exchange time)
func (j *UniverseJob) Schedule() string {
	return j.schedule
}

// Run executes the universe refresh
func (j *UniverseJob) Run(ctx context.Context) error {
	today := time.Now()
	j.logger.Info("Starting scheduled universe refresh")

	snapshot, err := j.source.GetCoarseSnapshot(ctx, today)
	if err != nil {
		return fmt.Errorf("get coarse snapshot: %w", err)
	}

	symbols := j.selector.Select(int(today.Month()), snapshot.Stocks)
	universe := j.selector.Snapshot(today)

	if err := j.repository.SaveUniverse(ctx, universe); err != nil {
		return fmt.Errorf("save universe: %w", err)
	}

	if j.cache != nil {
		if err := j.cache.Set(ctx, redis.LatestUniverseKey(), universe, redis.TTLDaily); err != nil {
			j.logger.WithError(err).Warn("Universe cache write failed")
		}
	}

	j.logger.WithFields(map[string]interface{}{
		"month":          universe.Month,
		"tracked_count":  len(symbols),
		"excluded_count": len(universe.Excluded),
		"candidates":     snapshot.Count(),
	}).Info("Universe refresh completed")

	return nil
}
