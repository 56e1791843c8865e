package types

// Risk levels used by the scroll index.
const (
	RiskNone    = "None"
	RiskLow     = "Low"
	RiskMedium  = "Medium"
	RiskHigh    = "High"
	RiskMaximum = "Maximum"
	RiskUnknown = "UNKNOWN"
)

// Verification statuses.
const (
	StatusIndexed   = "INDEXED"
	StatusUnindexed = "UNINDEXED"
)

// NameVerification is the result of looking a proper noun up in the
// scroll index.
type NameVerification struct {
	Name             string `json:"name"`
	Verified         bool   `json:"verified"`
	ScrollRole       string `json:"scroll_role"`
	FlameSignature   bool   `json:"flame_signature"`
	TimelineConflict string `json:"timeline_conflict"`
	RiskLevel        string `json:"risk_level"`
	Decree           string `json:"decree"`
	Status           string `json:"status"`
}

// TextVerification is the result of verifying every proper noun found in a
// block of text.
type TextVerification struct {
	ScanComplete     bool               `json:"scan_complete"`
	NamesFound       int                `json:"names_found"`
	IndexedEntities  int                `json:"indexed_entities"`
	HighRiskEntities int                `json:"high_risk_entities"`
	Verifications    []NameVerification `json:"verifications"`
	Summary          string             `json:"summary"`
}
