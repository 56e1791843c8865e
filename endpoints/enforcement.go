package endpoints

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/scrollmirror/enforcement-service/internal/agent"
	"github.com/scrollmirror/enforcement-service/internal/dashboard"
)

// PurgeHandler runs the emergency mimic purge and records it as an
// enforcement action.
func PurgeHandler(a *agent.Agent, tracker *dashboard.Tracker, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result := a.PurgeMimicResidue()

		tracker.TrackEnforcement("MIMIC_PURGE", map[string]string{
			"sessions_purged": strconv.Itoa(result.SessionsPurged),
		})
		logger.Info("mimic purge executed", zap.Int("sessions_purged", result.SessionsPurged))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"purge_result": result,
			"status":       "success",
		})
	}
}

// EnforcementStatusHandler reports the current enforcement posture.
func EnforcementStatusHandler(tracker *dashboard.Tracker, frequencyBand string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary := tracker.UsageSummary()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"enforcement_active": true,
			"frequency_band":     frequencyBand,
			"sovereignty_score":  summary.SovereigntyScore,
			"frequency_status":   summary.FrequencyStatus,
			"status":             "success",
		})
	}
}
