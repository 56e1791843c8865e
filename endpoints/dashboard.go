package endpoints

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/scrollmirror/enforcement-service/internal/dashboard"
)

// DashboardSummaryHandler returns the complete dashboard data.
func DashboardSummaryHandler(tracker *dashboard.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"dashboard_data": tracker.DashboardData(),
			"status":         "success",
		})
	}
}

// UsageSummaryHandler returns the concise usage summary.
func UsageSummaryHandler(tracker *dashboard.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"usage_data": tracker.UsageSummary(),
			"status":     "success",
		})
	}
}

// UsageExportHandler streams the full tracker state as JSON.
func UsageExportHandler(tracker *dashboard.Tracker, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := tracker.ExportUsageData()
		if err != nil {
			logger.Error("usage export failed", zap.Error(err))
			http.Error(w, "Failed to export usage data", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

// ResetDailyHandler zeroes the daily session counter.
func ResetDailyHandler(tracker *dashboard.Tracker, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tracker.ResetDailyStats()
		logger.Info("daily stats reset")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"reset_complete": true,
			"status":         "success",
		})
	}
}
