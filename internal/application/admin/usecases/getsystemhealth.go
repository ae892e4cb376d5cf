package usecases

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/folio-hq/folio/internal/application/admin/dto"
	"github.com/folio-hq/folio/internal/shared/biztime"
	"github.com/folio-hq/folio/internal/shared/logger"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusUnhealthy = "unhealthy"
)

type GetSystemHealthUseCase struct {
	db        DatabasePinger
	startedAt time.Time
	logger    logger.Interface
}

func NewGetSystemHealthUseCase(db DatabasePinger, startedAt time.Time, log logger.Interface) *GetSystemHealthUseCase {
	return &GetSystemHealthUseCase{
		db:        db,
		startedAt: startedAt,
		logger:    log,
	}
}

// Execute never fails; an unreachable store is reported as unhealthy.
func (uc *GetSystemHealthUseCase) Execute(ctx context.Context) *dto.SystemHealthDTO {
	now := biztime.NowUTC()

	result := &dto.SystemHealthDTO{
		Status:     healthStatusHealthy,
		Goroutines: runtime.NumGoroutine(),
		Uptime:     now.Sub(uc.startedAt).Truncate(time.Second).String(),
		Timestamp:  now,
	}

	start := time.Now()
	if err := uc.db.PingContext(ctx); err != nil {
		uc.logger.Errorw("database health check failed", "error", err)
		result.Status = healthStatusUnhealthy
		result.Database = dto.DatabaseHealthDTO{Status: "disconnected", ResponseTime: "n/a"}
	} else {
		result.Database = dto.DatabaseHealthDTO{
			Status:       "connected",
			ResponseTime: fmt.Sprintf("%dms", time.Since(start).Milliseconds()),
		}
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	result.Memory = dto.MemoryDTO{
		UsedMB:  mem.HeapAlloc / 1024 / 1024,
		TotalMB: mem.Sys / 1024 / 1024,
	}

	return result
}

// Healthy reports whether the snapshot should be served with a 2xx status.
func Healthy(h *dto.SystemHealthDTO) bool {
	return h != nil && h.Status == healthStatusHealthy
}
