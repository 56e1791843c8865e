package endpoints

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/scrollmirror/enforcement-service/utils"
)

// HealthHandler is the public health check endpoint.
func HealthHandler(frequencyBand string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":    "operational",
			"frequency": frequencyBand,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// ServiceHandler provides a status report for the service: version, health,
// and uptime.
func ServiceHandler(w http.ResponseWriter, r *http.Request) {
	report := utils.ServiceReport{
		Version: utils.GetVersion(),
		Health:  utils.GetHealth(),
	}

	w.Header().Set("Content-Type", "application/json")
	if report.Health.Status == "OK" {
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	_ = json.NewEncoder(w).Encode(report)
}
