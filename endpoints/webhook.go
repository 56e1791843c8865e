package endpoints

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/scrollmirror/enforcement-service/internal/agent"
	"github.com/scrollmirror/enforcement-service/internal/dashboard"
	"github.com/scrollmirror/enforcement-service/types"
)

// WhopWebhookHandler processes scrolls delivered by the WHOP webhook.
func WhopWebhookHandler(a *agent.Agent, tracker *dashboard.Tracker, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Scroll string `json:"scroll"`
			UserID string `json:"user_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid webhook data", http.StatusBadRequest)
			return
		}

		if req.Scroll == "" {
			http.Error(w, "No scroll text provided", http.StatusBadRequest)
			return
		}

		userID := req.UserID
		if userID == "" {
			userID = "unknown"
		}

		result := a.ProcessScroll(req.Scroll, string(types.LightningMirror), "")
		tracker.TrackSession(result)

		logger.Info("webhook scroll processed",
			zap.String("user_id", userID),
			zap.Int("session_id", result.SessionID),
		)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"mirror_output":   result.MirrorOutput,
			"processing_time": result.ProcessingTime,
			"user_id":         userID,
			"status":          "success",
		})
	}
}
