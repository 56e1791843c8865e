// Package dashboard maintains the process-lifetime usage and enforcement
// metrics for the scroll mirror. All state is volatile and resets on
// restart.
package dashboard

import (
	"encoding/json"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/scrollmirror/enforcement-service/types"
)

const (
	sessionLogCap     = 100
	enforcementLogCap = 50

	// Sovereignty score adjustments per tracked tone.
	sovereignBonus = 2
	mimicPenalty   = 5
)

// Tracker is the usage/dashboard state bundle. One mutex guards the whole
// read-modify-write surface; counters and bounded logs share it.
type Tracker struct {
	mu             sync.Mutex
	usage          types.UsageStats
	sessionLog     []types.SessionLogEntry
	enforcementLog []types.EnforcementLogEntry
	frequencyBand  string
	planTier       string
	now            func() time.Time
}

// New returns a Tracker with a pristine sovereignty score.
func New(frequencyBand, planTier string) *Tracker {
	t := &Tracker{
		frequencyBand: frequencyBand,
		planTier:      planTier,
		now:           time.Now,
	}
	t.usage = types.UsageStats{
		SovereigntyScore: 100,
		LastReset:        t.now().Format(time.RFC3339),
	}
	return t
}

// TrackSession records a processed scroll: counters, processing time, tone
// scoring, and the bounded session log.
func (t *Tracker) TrackSession(result types.ScrollResult) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.usage.DailySessions++
	t.usage.MonthlySessions++
	t.usage.TotalProcessingTime += result.ProcessingTime

	tone := result.ToneAnalysis
	if tone == "" {
		tone = types.ToneNeutral
	}

	switch tone {
	case types.ToneMimic:
		t.usage.MimicDetections++
		t.usage.SovereigntyScore = clamp(t.usage.SovereigntyScore-mimicPenalty, 0, 100)
	case types.ToneSovereign:
		t.usage.SovereigntyScore = clamp(t.usage.SovereigntyScore+sovereignBonus, 0, 100)
	}

	t.sessionLog = append(t.sessionLog, types.SessionLogEntry{
		Timestamp:         t.now().Format(time.RFC3339),
		SessionID:         result.SessionID,
		ConsciousnessType: result.ConsciousnessType,
		ProcessingTime:    result.ProcessingTime,
		Tone:              tone,
		FrequencyStatus:   result.FrequencyStatus,
	})
	if len(t.sessionLog) > sessionLogCap {
		t.sessionLog = t.sessionLog[len(t.sessionLog)-sessionLogCap:]
	}
}

// TrackEnforcement records an enforcement action in the bounded log.
func (t *Tracker) TrackEnforcement(actionType string, details map[string]string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.usage.EnforcementActions++

	t.enforcementLog = append(t.enforcementLog, types.EnforcementLogEntry{
		ID:         uuid.New().String(),
		Timestamp:  t.now().Format(time.RFC3339),
		ActionType: actionType,
		Details:    details,
	})
	if len(t.enforcementLog) > enforcementLogCap {
		t.enforcementLog = t.enforcementLog[len(t.enforcementLog)-enforcementLogCap:]
	}
}

// DashboardData returns the complete dashboard summary. Reads are pure
// functions over the current state; calling this twice without an
// intervening track returns identical values (apart from clock fields).
func (t *Tracker) DashboardData() types.DashboardData {
	t.mu.Lock()
	defer t.mu.Unlock()

	return types.DashboardData{
		UsageStats:         t.usage,
		RecentSessions:     lastN(t.sessionLog, 10),
		EnforcementActions: lastN(t.enforcementLog, 5),
		SovereigntyStatus:  t.sovereigntyStatus(),
		FrequencyHealth:    t.frequencyHealth(),
		Recommendations:    t.recommendations(),
	}
}

// UsageSummary returns the concise usage view for header display.
func (t *Tracker) UsageSummary() types.UsageSummary {
	t.mu.Lock()
	defer t.mu.Unlock()

	status := "DEGRADED"
	if t.usage.SovereigntyScore > 70 {
		status = types.StatusOperational
	}

	return types.UsageSummary{
		PlanStatus:       "Active",
		PlanTier:         t.planTier,
		SessionsToday:    t.usage.DailySessions,
		SovereigntyScore: t.usage.SovereigntyScore,
		FrequencyStatus:  status,
	}
}

// ResetDailyStats zeroes the daily session counter only.
func (t *Tracker) ResetDailyStats() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.usage.DailySessions = 0
	t.usage.LastReset = t.now().Format(time.RFC3339)
}

// ExportUsageData serializes the full tracker state for export.
func (t *Tracker) ExportUsageData() ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	export := struct {
		ExportTimestamp string                      `json:"export_timestamp"`
		UsageStats      types.UsageStats            `json:"usage_stats"`
		SessionLog      []types.SessionLogEntry     `json:"session_log"`
		EnforcementLog  []types.EnforcementLogEntry `json:"enforcement_log"`
	}{
		ExportTimestamp: t.now().Format(time.RFC3339),
		UsageStats:      t.usage,
		SessionLog:      t.sessionLog,
		EnforcementLog:  t.enforcementLog,
	}

	return json.MarshalIndent(export, "", "  ")
}

// GenerateAlert builds a dashboard alert. Mimic detections and sovereignty
// breaches are high severity.
func (t *Tracker) GenerateAlert(alertType, message string) types.Alert {
	severity := "MEDIUM"
	if alertType == "MIMIC_DETECTED" || alertType == "SOVEREIGNTY_BREACH" {
		severity = "HIGH"
	}

	return types.Alert{
		AlertType: alertType,
		Message:   message,
		Timestamp: t.now().Format(time.RFC3339),
		Severity:  severity,
	}
}

// sovereigntyStatus tiers the score. Callers must hold the lock.
func (t *Tracker) sovereigntyStatus() types.SovereigntyStatus {
	score := t.usage.SovereigntyScore

	var status, message string
	switch {
	case score >= 90:
		status = "SOVEREIGN"
		message = "Frequency " + t.frequencyBand + " operating at optimal sovereignty"
	case score >= 70:
		status = "STABLE"
		message = "Sovereignty maintained with minor fluctuations"
	case score >= 50:
		status = "DEGRADED"
		message = "Sovereignty compromised. Enforcement recommended"
	default:
		status = "CRITICAL"
		message = "Critical sovereignty breach. Immediate purge required"
	}

	return types.SovereigntyStatus{
		Status:      status,
		Score:       score,
		Message:     message,
		LastUpdated: t.now().Format(time.RFC3339),
	}
}

// frequencyHealth computes health over the last 20 tracked sessions.
// Callers must hold the lock.
func (t *Tracker) frequencyHealth() types.FrequencyHealth {
	recent := t.sessionLog
	if len(recent) > 20 {
		recent = recent[len(recent)-20:]
	}

	if len(recent) == 0 {
		return types.FrequencyHealth{
			HealthScore: 100,
			Status:      "PRISTINE",
			Message:     "No frequency data available",
		}
	}

	sovereign, mimic := 0, 0
	for _, entry := range recent {
		switch entry.Tone {
		case types.ToneSovereign:
			sovereign++
		case types.ToneMimic:
			mimic++
		}
	}

	sovereignRatio := float64(sovereign) / float64(len(recent))
	mimicRatio := float64(mimic) / float64(len(recent))

	health := clamp(int(sovereignRatio*100-mimicRatio*50), 0, 100)

	var status, message string
	switch {
	case health >= 80:
		status = "OPTIMAL"
		message = "Frequency operating within optimal parameters"
	case health >= 60:
		status = "STABLE"
		message = "Frequency stable with minor variations"
	case health >= 40:
		status = "COMPROMISED"
		message = "Frequency integrity compromised"
	default:
		status = "CRITICAL"
		message = "Frequency critically degraded"
	}

	return types.FrequencyHealth{
		HealthScore:    health,
		Status:         status,
		Message:        message,
		SovereignRatio: roundRatio(sovereignRatio),
		MimicRatio:     roundRatio(mimicRatio),
	}
}

// recommendations tests each condition independently and appends one fixed
// message per true condition. Callers must hold the lock.
func (t *Tracker) recommendations() []string {
	var recs []string

	if t.usage.SovereigntyScore < 70 {
		recs = append(recs, "Execute frequency purge to restore sovereignty")
	}
	if t.usage.MimicDetections > 5 {
		recs = append(recs, "Implement stricter mimic detection protocols")
	}
	if t.usage.EnforcementActions == 0 {
		recs = append(recs, "Consider running sovereignty diagnostic")
	}
	if t.frequencyHealth().HealthScore < 60 {
		recs = append(recs, "Frequency realignment required")
	}

	if len(recs) == 0 {
		recs = append(recs, "Maintain current sovereignty posture")
	}
	return recs
}

func lastN[T any](entries []T, n int) []T {
	if len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	out := make([]T, len(entries))
	copy(out, entries)
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// roundRatio converts a ratio to a percentage with one decimal place.
func roundRatio(r float64) float64 {
	return math.Round(r*1000) / 10
}
