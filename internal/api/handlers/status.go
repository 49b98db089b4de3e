package handlers

import (
	"net/http"

	"github.com/wonny/pumpwatch/internal/scheduler"
	"github.com/wonny/pumpwatch/pkg/logger"
)

// StatusHandler exposes scheduler job statistics
type StatusHandler struct {
	scheduler *scheduler.Scheduler
	logger    *logger.Logger
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(sched *scheduler.Scheduler, log *logger.Logger) *StatusHandler {
	return &StatusHandler{
		scheduler: sched,
		logger:    log,
	}
}

// GetJobs returns per-job run statistics
// GET /api/status/jobs
func (h *StatusHandler) GetJobs(w http.ResponseWriter, r *http.Request) {
	if h.scheduler == nil {
		respondError(w, http.StatusServiceUnavailable, "Scheduler not running")
		return
	}

	respondJSON(w, http.StatusOK, h.scheduler.Stats())
}
