package commands

import (
	"fmt"
	"time"

	"github.com/wonny/pumpwatch/internal/contracts"
	"github.com/wonny/pumpwatch/internal/s0_data"
	"github.com/wonny/pumpwatch/internal/s1_universe"
	"github.com/wonny/pumpwatch/internal/s2_alpha"
	"github.com/wonny/pumpwatch/internal/scheduler"
	"github.com/wonny/pumpwatch/internal/scheduler/jobs"
	"github.com/wonny/pumpwatch/internal/strategyconfig"
	"github.com/wonny/pumpwatch/pkg/config"
	"github.com/wonny/pumpwatch/pkg/database"
	"github.com/wonny/pumpwatch/pkg/logger"
	"github.com/wonny/pumpwatch/pkg/redis"
)

// runtime bundles the shared service dependencies
type runtime struct {
	cfg      *config.Config
	strategy *strategyconfig.Config
	log      *logger.Logger
	db       *database.DB
	redis    *redis.Client
	cache    *redis.Cache

	coarseRepo   *s0_data.CoarseRepository
	sessionRepo  *s0_data.SessionRepository
	universeRepo *s1_universe.Repository
	insightRepo  *s2_alpha.Repository

	selector *s1_universe.Selector
	model    *s2_alpha.Model
}

// newRuntime loads config, connects the stores, and builds the pipeline stages
func newRuntime() (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if strategyFile != "" {
		cfg.StrategyFile = strategyFile
	}

	log := logger.New(cfg)

	strategy, _, err := strategyconfig.Load(cfg.StrategyFile)
	if err != nil {
		return nil, fmt.Errorf("load strategy config: %w", err)
	}
	for _, warning := range strategyconfig.Warn(strategy) {
		log.WithField("code", warning.Code).Warn(warning.Message)
	}

	hash, err := strategyconfig.Hash(strategy)
	if err != nil {
		return nil, fmt.Errorf("hash strategy config: %w", err)
	}
	log.WithFields(map[string]interface{}{
		"strategy_id": strategy.Meta.StrategyID,
		"config_hash": hash[:12],
	}).Info("Strategy config loaded")

	db, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	redisClient, err := redis.New(cfg)
	if err != nil {
		log.WithError(err).Warn("Redis unavailable, continuing without cache")
		redisClient = nil
	}
	var cache *redis.Cache
	if redisClient != nil {
		cache = redis.NewCache(redisClient)
	}

	selector, err := s1_universe.NewSelector(s1_universe.Config{
		MaxSymbols:          strategy.Universe.Filters.MaxSymbols,
		MinVolume:           strategy.Universe.Filters.MinVolume,
		MaxVolume:           strategy.Universe.Filters.MaxVolume,
		MinPrice:            strategy.Universe.Filters.MinPrice,
		MaxPrice:            strategy.Universe.Filters.MaxPrice,
		RequireFundamentals: strategy.Universe.Filters.RequireFundamentals,
	})
	if err != nil {
		return nil, fmt.Errorf("build universe selector: %w", err)
	}

	model, err := s2_alpha.NewModel(s2_alpha.Config{
		Lookback:       strategy.Alpha.Lookback,
		Resolution:     strategy.Alpha.Resolution.Std(),
		NumberOfStocks: strategy.Alpha.NumberOfStocks,
	})
	if err != nil {
		return nil, fmt.Errorf("build alpha model: %w", err)
	}

	return &runtime{
		cfg:          cfg,
		strategy:     strategy,
		log:          log,
		db:           db,
		redis:        redisClient,
		cache:        cache,
		coarseRepo:   s0_data.NewCoarseRepository(db.Pool),
		sessionRepo:  s0_data.NewSessionRepository(db.Pool),
		universeRepo: s1_universe.NewRepository(db.Pool),
		insightRepo:  s2_alpha.NewRepository(db.Pool),
		selector:     selector,
		model:        model,
	}, nil
}

// close releases the runtime's connections
func (rt *runtime) close() {
	if rt.redis != nil {
		rt.redis.Close()
	}
	if rt.db != nil {
		rt.db.Close()
	}
}

// location resolves the strategy timezone, falling back to UTC
func (rt *runtime) location() *time.Location {
	loc, err := time.LoadLocation(rt.strategy.Meta.Timezone)
	if err != nil {
		rt.log.WithError(err).Warn("Invalid strategy timezone, using UTC")
		return time.UTC
	}
	return loc
}

// newScheduler builds a scheduler with both pipeline jobs registered
func (rt *runtime) newScheduler(sink contracts.InsightSink) (*scheduler.Scheduler, error) {
	sched := scheduler.New(rt.log, rt.location())

	universeJob := jobs.NewUniverseJob(
		rt.coarseRepo,
		rt.selector,
		rt.universeRepo,
		rt.cache,
		rt.strategy.Schedule.UniverseCron,
		rt.log,
	)
	if err := sched.AddJob(universeJob); err != nil {
		return nil, err
	}

	insightsJob := jobs.NewInsightsJob(
		rt.sessionRepo,
		rt.universeRepo,
		rt.model,
		rt.insightRepo,
		rt.cache,
		sink,
		rt.strategy.Schedule.InsightsCron,
		rt.log,
	)
	if err := sched.AddJob(insightsJob); err != nil {
		return nil, err
	}

	return sched, nil
}
