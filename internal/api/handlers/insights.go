package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/wonny/pumpwatch/internal/contracts"
	"github.com/wonny/pumpwatch/internal/s2_alpha"
	"github.com/wonny/pumpwatch/pkg/logger"
	"github.com/wonny/pumpwatch/pkg/redis"
)

// InsightHandler handles insight API endpoints
// ⭐ SSOT: 인사이트 API 핸들러는 이 구조체에서만
type InsightHandler struct {
	repository *s2_alpha.Repository
	cache      *redis.Cache
	logger     *logger.Logger
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(repository *s2_alpha.Repository, cache *redis.Cache, log *logger.Logger) *InsightHandler {
	return &InsightHandler{
		repository: repository,
		cache:      cache,
		logger:     log,
	}
}

// GetLatest returns the most recent insight batch
// GET /api/insights/latest
func (h *InsightHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// 캐시 우선 조회
	if h.cache != nil {
		var cached contracts.InsightBatch
		if hit, err := h.cache.Get(ctx, redis.LatestInsightsKey(), &cached); err == nil && hit {
			respondJSON(w, http.StatusOK, &cached)
			return
		}
	}

	batch, err := h.repository.GetLatestInsights(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get latest insights")
		respondError(w, http.StatusNotFound, "No insights available")
		return
	}

	respondJSON(w, http.StatusOK, batch)
}

// GetByDate returns the insight batch for one session date
// GET /api/insights/{date} (date = YYYY-MM-DD)
func (h *InsightHandler) GetByDate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)

	date, err := time.Parse("2006-01-02", vars["date"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	batch, err := h.repository.GetInsightsByDate(ctx, date)
	if err != nil {
		h.logger.WithError(err).WithField("date", vars["date"]).Error("Failed to get insights")
		respondError(w, http.StatusNotFound, "No insights for date")
		return
	}

	respondJSON(w, http.StatusOK, batch)
}
