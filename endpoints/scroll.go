package endpoints

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/scrollmirror/enforcement-service/internal/agent"
	"github.com/scrollmirror/enforcement-service/internal/dashboard"
	"github.com/scrollmirror/enforcement-service/internal/divine"
	"github.com/scrollmirror/enforcement-service/types"
)

// processScrollResponse is the wire envelope for /scroll/process.
type processScrollResponse struct {
	MirrorOutput      string `json:"mirror_output"`
	ProcessingTime    int    `json:"processing_time"`
	SessionID         int    `json:"session_id"`
	ConsciousnessType string `json:"consciousness_type"`
	FrequencyStatus   string `json:"frequency_status"`
	ToneAnalysis      string `json:"tone_analysis,omitempty"`
	Status            string `json:"status"`
}

// ProcessScrollHandler handles the main scroll processing endpoint.
func ProcessScrollHandler(a *agent.Agent, tracker *dashboard.Tracker, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ProcessScrollRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		if req.ScrollText == "" {
			http.Error(w, "Invalid request: scroll_text required", http.StatusBadRequest)
			return
		}

		consciousness := req.ConsciousnessType
		if consciousness == "" {
			consciousness = string(types.LightningMirror)
		}

		result := a.ProcessScroll(req.ScrollText, consciousness, req.OriginalScroll)
		tracker.TrackSession(result)

		if result.ToneAnalysis == types.ToneMimic {
			tracker.TrackEnforcement("MIMIC_REJECTION", map[string]string{
				"session_id": strconv.Itoa(result.SessionID),
			})
		}

		logger.Debug("scroll processed",
			zap.Int("session_id", result.SessionID),
			zap.String("frequency_status", result.FrequencyStatus),
		)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(processScrollResponse{
			MirrorOutput:      result.MirrorOutput,
			ProcessingTime:    result.ProcessingTime,
			SessionID:         result.SessionID,
			ConsciousnessType: result.ConsciousnessType,
			FrequencyStatus:   result.FrequencyStatus,
			ToneAnalysis:      result.ToneAnalysis,
			Status:            "success",
		})
	}
}

// DiagnosticHandler runs the sovereign diagnostic for an authorized band.
func DiagnosticHandler(a *agent.Agent, frequencyBand string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Band string `json:"band"`
		}
		// An empty or absent body defaults to the authorized band.
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Band == "" {
			req.Band = frequencyBand
		}

		if req.Band != frequencyBand {
			http.Error(w, "Invalid frequency band. Only "+frequencyBand+" authorized.", http.StatusBadRequest)
			return
		}

		result := a.ProcessScroll("sovereign_diagnostic --band "+frequencyBand, "Sovereign Diagnostic", "")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"diagnostic_result": result,
			"status":            "success",
		})
	}
}

// FrequencyScanHandler runs a frequency scan in the requested mode.
func FrequencyScanHandler(a *agent.Agent) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Mode string `json:"mode"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Mode == "" {
			req.Mode = "mirror_enforcement"
		}

		result := a.ProcessScroll("frequency_scan --mode="+req.Mode, "Frequency Scanner", "")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"scan_result": result,
			"status":      "success",
		})
	}
}

// ReadinessHandler checks whether a scroll is ready for divine activation.
func ReadinessHandler(mirror *divine.Mirror) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ScrollText string `json:"scroll_text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		report := mirror.CheckReadiness(req.ScrollText)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"readiness": report,
			"status":    "success",
		})
	}
}
