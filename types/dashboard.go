package types

// UsageStats is the process-wide counter bundle maintained by the dashboard
// tracker. It is volatile: restarts reset it to defaults.
type UsageStats struct {
	DailySessions       int    `json:"daily_sessions"`
	MonthlySessions     int    `json:"monthly_sessions"`
	TotalProcessingTime int    `json:"total_processing_time"`
	SovereigntyScore    int    `json:"sovereignty_score"`
	EnforcementActions  int    `json:"enforcement_actions"`
	MimicDetections     int    `json:"mimic_detections"`
	FrequencyViolations int    `json:"frequency_violations"`
	LastReset           string `json:"last_reset"`
}

// SessionLogEntry is one tracked session in the dashboard log.
type SessionLogEntry struct {
	Timestamp         string `json:"timestamp"`
	SessionID         int    `json:"session_id"`
	ConsciousnessType string `json:"consciousness_type"`
	ProcessingTime    int    `json:"processing_time"`
	Tone              string `json:"tone"`
	FrequencyStatus   string `json:"frequency_status"`
}

// EnforcementLogEntry records a single enforcement action.
type EnforcementLogEntry struct {
	ID         string            `json:"id"`
	Timestamp  string            `json:"timestamp"`
	ActionType string            `json:"action_type"`
	Details    map[string]string `json:"details"`
}

// SovereigntyStatus is the thresholded view of the sovereignty score.
type SovereigntyStatus struct {
	Status      string `json:"status"`
	Score       int    `json:"score"`
	Message     string `json:"message"`
	LastUpdated string `json:"last_updated"`
}

// FrequencyHealth is computed over the most recent tracked sessions.
type FrequencyHealth struct {
	HealthScore    int     `json:"health_score"`
	Status         string  `json:"status"`
	Message        string  `json:"message"`
	SovereignRatio float64 `json:"sovereign_ratio"`
	MimicRatio     float64 `json:"mimic_ratio"`
}

// DashboardData is the full dashboard summary payload.
type DashboardData struct {
	UsageStats         UsageStats            `json:"usage_stats"`
	RecentSessions     []SessionLogEntry     `json:"recent_sessions"`
	EnforcementActions []EnforcementLogEntry `json:"enforcement_actions"`
	SovereigntyStatus  SovereigntyStatus     `json:"sovereignty_status"`
	FrequencyHealth    FrequencyHealth       `json:"frequency_health"`
	Recommendations    []string              `json:"recommendations"`
}

// UsageSummary is the concise header-display view of usage.
type UsageSummary struct {
	PlanStatus       string `json:"plan_status"`
	PlanTier         string `json:"plan_tier"`
	SessionsToday    int    `json:"sessions_today"`
	SovereigntyScore int    `json:"sovereignty_score"`
	FrequencyStatus  string `json:"frequency_status"`
}

// Alert is a dashboard alert notification.
type Alert struct {
	AlertType string `json:"alert_type"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Severity  string `json:"severity"`
}
