package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/wonny/pumpwatch/internal/contracts"
	"github.com/wonny/pumpwatch/internal/s1_universe"
	"github.com/wonny/pumpwatch/internal/s2_alpha"
	"github.com/wonny/pumpwatch/pkg/logger"
	"github.com/wonny/pumpwatch/pkg/redis"
)

// InsightsJob ranks the session after the close and publishes reversal
// insights for the day's biggest gainers
// ⭐ SSOT: 인사이트 생성 스케줄은 이 Job에서만
type InsightsJob struct {
	source     contracts.SessionSource
	universe   *s1_universe.Repository
	model      *s2_alpha.Model
	repository *s2_alpha.Repository
	cache      *redis.Cache
	sink       contracts.InsightSink
	schedule   string
	logger     *logger.Logger
}

// NewInsightsJob creates a new insights job
func NewInsightsJob(
	source contracts.SessionSource,
	universe *s1_universe.Repository,
	model *s2_alpha.Model,
	repository *s2_alpha.Repository,
	cache *redis.Cache,
	sink contracts.InsightSink,
	schedule string,
	log *logger.Logger,
) *InsightsJob {
	return &InsightsJob{
		source:     source,
		universe:   universe,
		model:      model,
		repository: repository,
		cache:      cache,
		sink:       sink,
		schedule:   schedule,
		logger:     log,
	}
}

// Name returns the job name
func (j *InsightsJob) Name() string {
	return "insights_generation"
}

// Schedule returns the cron schedule (after the close, exchange time)
func (j *InsightsJob) Schedule() string {
	return j.schedule
}

// Run executes the post-close ranking
func (j *InsightsJob) Run(ctx context.Context) error {
	today := time.Now()
	j.logger.Info("Starting scheduled insights generation")

	universe, err := j.universe.GetLatestUniverse(ctx)
	if err != nil {
		return fmt.Errorf("get latest universe: %w", err)
	}
	if universe.Count() == 0 {
		j.logger.Warn("Universe is empty, no insights to generate")
		return nil
	}

	snapshot, err := j.source.GetSessionBars(ctx, universe.Symbols, today)
	if err != nil {
		return fmt.Errorf("get session bars: %w", err)
	}

	insights := j.model.Rank(snapshot.Bars)
	batch := &contracts.InsightBatch{
		Date:     snapshot.Date,
		Insights: insights,
	}

	if err := j.repository.SaveInsights(ctx, batch); err != nil {
		return fmt.Errorf("save insights: %w", err)
	}

	if j.cache != nil {
		if err := j.cache.Set(ctx, redis.LatestInsightsKey(), batch, redis.TTLDaily); err != nil {
			j.logger.WithError(err).Warn("Insights cache write failed")
		}
	}

	if j.sink != nil {
		j.sink.Publish(batch)
	}

	j.logger.WithFields(map[string]interface{}{
		"tracked_count": universe.Count(),
		"insight_count": batch.Count(),
		"top_symbols":   batch.Symbols(),
	}).Info("Insights generation completed")

	return nil
}
