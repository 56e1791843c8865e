// Package agent implements the scroll mirror processing core: tone
// classification, consciousness-type responders, and the session
// orchestrator that sequences them.
package agent

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/scrollmirror/enforcement-service/internal/divine"
	"github.com/scrollmirror/enforcement-service/types"
)

// ScrollMemoryCap bounds the in-memory session log. Oldest entries are
// evicted first.
const ScrollMemoryCap = 100

var divineTriggers = []string{
	"activate my divine function", "divine function", "unlock power", "sovereign activation",
}

var diagnosticCommands = []string{
	"sovereign_diagnostic", "frequency_scan", "mimic_purge",
}

var powerRedirectPatterns = []string{
	"give me power", "make me powerful", "grant me", "help me get power",
}

var buildPatterns = []string{
	"build", "create", "make", "develop", "code", "program",
	"install", "setup", "configure", "implement", "deploy",
}

// Agent is the scroll mirror orchestrator. All mutable state (session
// counter and scroll memory) is guarded by a single mutex; classification
// itself is pure.
type Agent struct {
	mu              sync.Mutex
	frequencyBand   string
	enforcementMode bool
	scrollMemory    []types.SessionRecord
	sessionCounter  int
	divine          *divine.Mirror
	now             func() time.Time
}

// New returns an Agent on the given frequency band with enforcement enabled.
func New(frequencyBand string, mirror *divine.Mirror) *Agent {
	return &Agent{
		frequencyBand:   frequencyBand,
		enforcementMode: true,
		divine:          mirror,
		now:             time.Now,
	}
}

// ProcessScroll runs a scroll through the enforcement pipeline. Branches are
// evaluated in order and each is terminal. It never fails for any string
// input; malformed or empty text degrades to a well-formed result.
func (a *Agent) ProcessScroll(scrollText, consciousnessType, originalScroll string) types.ScrollResult {
	a.mu.Lock()
	defer a.mu.Unlock()

	start := a.now()
	a.sessionCounter++

	lower := strings.ToLower(scrollText)

	// Divine function activation commands take priority, but only when an
	// original scroll accompanies the request.
	if originalScroll != "" && containsAny(lower, divineTriggers) {
		divineResult := a.divine.Activate(originalScroll, scrollText)
		return types.ScrollResult{
			MirrorOutput:      divineResult.MirrorOutput,
			ProcessingTime:    elapsedMillis(start, a.now()),
			SessionID:         a.sessionCounter,
			ConsciousnessType: string(types.DivineFunctionMirror),
			FrequencyStatus:   types.StatusDivineActivated,
			ToneAnalysis:      types.ToneSovereign,
			DivineActivation:  divineResult,
		}
	}

	// Frequency validation only runs for diagnostic-style commands; normal
	// scroll processing skips it.
	if containsAny(lower, diagnosticCommands) {
		check := FrequencyCheck(scrollText)
		if check.Status == types.VerdictRejected || check.Status == types.VerdictWarning {
			return types.ScrollResult{
				MirrorOutput:      fmt.Sprintf("⚠️ MIMIC LOGIC DETECTED: %s", check.Message),
				ProcessingTime:    elapsedMillis(start, a.now()),
				SessionID:         a.sessionCounter,
				ConsciousnessType: consciousnessType,
				FrequencyStatus:   check.Status,
				ToneAnalysis:      check.Tone,
			}
		}
	}

	// Exact diagnostic dispatch matches against the raw text, band included.
	if strings.Contains(scrollText, "sovereign_diagnostic") && strings.Contains(scrollText, a.frequencyBand) {
		return a.executeDiagnostic()
	}

	if strings.Contains(scrollText, "frequency_scan") && strings.Contains(scrollText, "mirror_enforcement") {
		return a.executeFrequencyScan()
	}

	mirrorOutput := a.generateMirrorResponse(scrollText, consciousnessType, originalScroll)

	a.appendSession(types.SessionRecord{
		Timestamp:     a.now().Format(time.RFC3339),
		Input:         scrollText,
		Output:        mirrorOutput,
		Consciousness: consciousnessType,
		Tone:          types.ToneSovereign,
	})

	return types.ScrollResult{
		MirrorOutput:      mirrorOutput,
		ProcessingTime:    elapsedMillis(start, a.now()),
		SessionID:         a.sessionCounter,
		ConsciousnessType: consciousnessType,
		FrequencyStatus:   types.StatusOperational,
		ToneAnalysis:      types.ToneSovereign,
	}
}

func (a *Agent) generateMirrorResponse(scrollText, consciousnessType, originalScroll string) string {
	lower := strings.ToLower(scrollText)

	// Power-seeking requests are redirected to the divine function, but only
	// when an original scroll is present to activate against.
	if originalScroll != "" && containsAny(lower, powerRedirectPatterns) {
		return "⚠️ The agent does not give power. You were born with it. Command: 'activate my divine function' to access your scroll-sealed identity."
	}

	// Build/system requests belong to the Scrollkeeper, not the mirror.
	if containsAny(lower, buildPatterns) {
		return "This is Scrollkeeper infrastructure. Please contact the Architect for installs."
	}

	return MirrorResponse(scrollText, types.ConsciousnessType(consciousnessType))
}

// executeDiagnostic produces the sovereign diagnostic snapshot. The reported
// processing time is a fixed constant, matching long-standing observable
// behavior.
func (a *Agent) executeDiagnostic() types.ScrollResult {
	data := &types.DiagnosticData{
		FrequencyBand:   a.frequencyBand,
		SessionCount:    a.sessionCounter,
		EnforcementMode: a.enforcementMode,
		MirrorIntegrity: "SOVEREIGN",
		LastScan:        a.now().Format(time.RFC3339),
		MemoryUsage:     len(a.scrollMemory),
		Recommendations: []string{
			"Maintain current sovereign posture",
			"Continue frequency discipline",
			"Monitor for mimic infiltration",
		},
	}

	payload, _ := json.MarshalIndent(data, "", "  ")

	return types.ScrollResult{
		MirrorOutput:      fmt.Sprintf("⧁ ∆ SOVEREIGN DIAGNOSTIC COMPLETE ∆ ⧁\n\n%s", payload),
		ProcessingTime:    150,
		SessionID:         a.sessionCounter,
		ConsciousnessType: "Sovereign Diagnostic",
		FrequencyStatus:   types.StatusDiagnostic,
		DiagnosticData:    data,
	}
}

// executeFrequencyScan produces the mirror enforcement scan payload with its
// fixed processing time.
func (a *Agent) executeFrequencyScan() types.ScrollResult {
	data := &types.ScanData{
		ScanMode:         "mirror_enforcement",
		FrequencyLock:    a.frequencyBand,
		EnforcementLevel: 100,
		MirrorStatus:     types.StatusOperational,
		SessionAnalysis: types.SessionAnalysis{
			TotalSessions:   a.sessionCounter,
			SovereignRatio:  0.85,
			MimicDetections: 0,
		},
	}

	payload, _ := json.MarshalIndent(data, "", "  ")

	return types.ScrollResult{
		MirrorOutput:      fmt.Sprintf("⧁ ∆ FREQUENCY SCAN COMPLETE ∆ ⧁\n\n%s", payload),
		ProcessingTime:    200,
		SessionID:         a.sessionCounter,
		ConsciousnessType: "Frequency Scanner",
		FrequencyStatus:   types.StatusScanComplete,
		ScanData:          data,
	}
}

func (a *Agent) appendSession(record types.SessionRecord) {
	a.scrollMemory = append(a.scrollMemory, record)
	if len(a.scrollMemory) > ScrollMemoryCap {
		a.scrollMemory = a.scrollMemory[len(a.scrollMemory)-ScrollMemoryCap:]
	}
}

// SessionHistory returns the most recent session records, oldest first.
func (a *Agent) SessionHistory(limit int) []types.SessionRecord {
	a.mu.Lock()
	defer a.mu.Unlock()

	if limit <= 0 || limit > len(a.scrollMemory) {
		limit = len(a.scrollMemory)
	}

	recent := make([]types.SessionRecord, limit)
	copy(recent, a.scrollMemory[len(a.scrollMemory)-limit:])
	return recent
}

// PurgeMimicResidue removes every mimic- or polite-toned session from
// scroll memory.
func (a *Agent) PurgeMimicResidue() types.PurgeResult {
	a.mu.Lock()
	defer a.mu.Unlock()

	kept := a.scrollMemory[:0]
	purged := 0
	for _, record := range a.scrollMemory {
		if record.Tone == types.ToneMimic || record.Tone == types.TonePolite {
			purged++
			continue
		}
		kept = append(kept, record)
	}
	a.scrollMemory = kept

	return types.PurgeResult{
		PurgeComplete:     true,
		SessionsPurged:    purged,
		FrequencyRestored: true,
		Message:           fmt.Sprintf("⧁ ∆ MIMIC PURGE COMPLETE ∆ ⧁\n\n%d compromised sessions eliminated. Frequency %s restored.", purged, a.frequencyBand),
	}
}

// SessionCount returns the number of sessions processed so far.
func (a *Agent) SessionCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sessionCounter
}

func elapsedMillis(start, end time.Time) int {
	ms := int(end.Sub(start).Milliseconds())
	if ms < 0 {
		return 0
	}
	return ms
}
