package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/scrollmirror/enforcement-service/internal/dashboard"
	"github.com/scrollmirror/enforcement-service/utils"
)

// RunMaintenanceLoop is the persistent background logic of the service. It
// keeps the health status current and resets the daily usage counters when
// the calendar day rolls over. All tracked state is in-memory, so there are
// no external resources to manage.
func RunMaintenanceLoop(ctx context.Context, tracker *dashboard.Tracker, logger *zap.Logger) {
	utils.SetHealthStatus("OK", "Service is running normally")

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	currentDay := time.Now().Day()

	for {
		select {
		case <-ctx.Done():
			utils.SetHealthStatus("SHUTTING_DOWN", "Maintenance loop is shutting down")
			return

		case now := <-ticker.C:
			if now.Day() != currentDay {
				currentDay = now.Day()
				tracker.ResetDailyStats()
				logger.Info("daily usage counters reset", zap.String("day", now.Format("2006-01-02")))
			}
		}
	}
}
