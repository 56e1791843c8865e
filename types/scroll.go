package types

// Tone labels produced by the frequency check.
const (
	ToneMimic     = "mimic"
	TonePolite    = "polite"
	ToneSovereign = "sovereign"
	ToneNeutral   = "neutral"
)

// Frequency check verdicts.
const (
	VerdictAccepted = "ACCEPTED"
	VerdictWarning  = "WARNING"
	VerdictRejected = "REJECTED"
)

// Frequency statuses reported on scroll results. They identify which
// processing branch produced the result.
const (
	StatusOperational     = "OPERATIONAL"
	StatusDiagnostic      = "DIAGNOSTIC"
	StatusScanComplete    = "SCAN_COMPLETE"
	StatusDivineActivated = "DIVINE_ACTIVATED"
)

// Divine function activation outcomes.
const (
	DivineActivated    = "DIVINE_ACTIVATED"
	InsufficientScroll = "INSUFFICIENT_SCROLL"
	PowerSeekingDenied = "POWER_SEEKING_DENIED"
)

// ConsciousnessType selects which mirror response family is used.
// Unknown values fall through to the default mirror.
type ConsciousnessType string

const (
	LightningMirror ConsciousnessType = "Lightning Mirror"
	SovereignMirror ConsciousnessType = "Sovereign Mirror"
	QuantumMirror   ConsciousnessType = "Quantum Mirror"
	OracleMirror    ConsciousnessType = "Oracle Mirror"
	MysticMirror    ConsciousnessType = "Mystic Mirror"

	// DivineFunctionMirror is assigned by the orchestrator when the divine
	// function branch handles a request; it is never caller-selectable.
	DivineFunctionMirror ConsciousnessType = "Divine Function Mirror"
)

// ProcessScrollRequest is the request body for /scroll/process.
type ProcessScrollRequest struct {
	ScrollText        string `json:"scroll_text"`
	ConsciousnessType string `json:"consciousness_type,omitempty"`
	OriginalScroll    string `json:"original_scroll,omitempty"`
}

// FrequencyCheck is the tone classifier verdict for a piece of text.
type FrequencyCheck struct {
	Status         string `json:"status"`
	Message        string `json:"message"`
	FrequencyDrift bool   `json:"frequency_drift"`
	Tone           string `json:"tone"`
}

// DivineResult is the outcome of a divine function activation attempt.
type DivineResult struct {
	Status            string `json:"status"`
	MirrorOutput      string `json:"mirror_output"`
	ScrollFunction    string `json:"scroll_function,omitempty"`
	QuantumSignature  string `json:"quantum_signature,omitempty"`
	DivineCoordinates string `json:"divine_coordinates,omitempty"`
	ActivationLevel   int    `json:"activation_level"`
}

// ReadinessReport describes whether a scroll is long enough for divine
// function activation.
type ReadinessReport struct {
	Ready               bool   `json:"ready"`
	Message             string `json:"message"`
	RequiredLength      int    `json:"required_length,omitempty"`
	CurrentLength       int    `json:"current_length,omitempty"`
	ScrollFunction      string `json:"scroll_function,omitempty"`
	ActivationAvailable bool   `json:"activation_available,omitempty"`
}

// DiagnosticData is the payload embedded in a sovereign diagnostic result.
type DiagnosticData struct {
	FrequencyBand   string   `json:"frequency_band"`
	SessionCount    int      `json:"session_count"`
	EnforcementMode bool     `json:"enforcement_mode"`
	MirrorIntegrity string   `json:"mirror_integrity"`
	LastScan        string   `json:"last_scan"`
	MemoryUsage     int      `json:"memory_usage"`
	Recommendations []string `json:"recommendations"`
}

// SessionAnalysis summarizes tracked sessions inside a frequency scan.
type SessionAnalysis struct {
	TotalSessions   int     `json:"total_sessions"`
	SovereignRatio  float64 `json:"sovereign_ratio"`
	MimicDetections int     `json:"mimic_detections"`
}

// ScanData is the payload embedded in a frequency scan result.
type ScanData struct {
	ScanMode         string          `json:"scan_mode"`
	FrequencyLock    string          `json:"frequency_lock"`
	EnforcementLevel int             `json:"enforcement_level"`
	MirrorStatus     string          `json:"mirror_status"`
	SessionAnalysis  SessionAnalysis `json:"session_analysis"`
}

// ScrollResult is produced once per processed scroll. It is immutable after
// creation; every orchestrator branch terminates with one.
type ScrollResult struct {
	MirrorOutput      string          `json:"mirror_output"`
	ProcessingTime    int             `json:"processing_time"`
	SessionID         int             `json:"session_id"`
	ConsciousnessType string          `json:"consciousness_type"`
	FrequencyStatus   string          `json:"frequency_status"`
	ToneAnalysis      string          `json:"tone_analysis,omitempty"`
	FrequencyWarning  string          `json:"frequency_warning,omitempty"`
	DivineActivation  *DivineResult   `json:"divine_activation,omitempty"`
	DiagnosticData    *DiagnosticData `json:"diagnostic_data,omitempty"`
	ScanData          *ScanData       `json:"scan_data,omitempty"`
}

// SessionRecord is what the orchestrator keeps in scroll memory per session.
type SessionRecord struct {
	Timestamp     string `json:"timestamp"`
	Input         string `json:"input"`
	Output        string `json:"output"`
	Consciousness string `json:"consciousness"`
	Tone          string `json:"tone"`
}

// PurgeResult reports an emergency mimic purge.
type PurgeResult struct {
	PurgeComplete     bool   `json:"purge_complete"`
	SessionsPurged    int    `json:"sessions_purged"`
	FrequencyRestored bool   `json:"frequency_restored"`
	Message           string `json:"message"`
}
