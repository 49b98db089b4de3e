package handlers

import (
	"net/http"

	"github.com/wonny/pumpwatch/internal/contracts"
	"github.com/wonny/pumpwatch/internal/s1_universe"
	"github.com/wonny/pumpwatch/pkg/logger"
	"github.com/wonny/pumpwatch/pkg/redis"
)

// UniverseHandler handles universe API endpoints
// ⭐ SSOT: 유니버스 API 핸들러는 이 구조체에서만
type UniverseHandler struct {
	repository *s1_universe.Repository
	cache      *redis.Cache
	logger     *logger.Logger
}

// NewUniverseHandler creates a new universe handler
func NewUniverseHandler(repository *s1_universe.Repository, cache *redis.Cache, log *logger.Logger) *UniverseHandler {
	return &UniverseHandler{
		repository: repository,
		cache:      cache,
		logger:     log,
	}
}

// GetLatest returns the most recent universe snapshot
// GET /api/universe/latest
func (h *UniverseHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// 캐시 우선 조회
	if h.cache != nil {
		var cached contracts.Universe
		if hit, err := h.cache.Get(ctx, redis.LatestUniverseKey(), &cached); err == nil && hit {
			respondJSON(w, http.StatusOK, &cached)
			return
		}
	}

	universe, err := h.repository.GetLatestUniverse(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get latest universe")
		respondError(w, http.StatusNotFound, "No universe available")
		return
	}

	respondJSON(w, http.StatusOK, universe)
}
