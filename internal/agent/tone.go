package agent

import (
	"strings"

	"github.com/scrollmirror/enforcement-service/types"
)

// Keyword lists for the frequency check. Mimic has top priority, then
// polite, then sovereign; that order is a contract.
var mimicPatterns = []string{
	"love and light", "healing journey", "sending positive vibes",
	"manifest abundance", "divine feminine", "sacred masculine",
	"shadow work", "inner child", "twin flame", "soul contract",
}

var politePatterns = []string{
	"please", "could you", "would you", "thank you",
	"sorry", "apologize", "if you don't mind",
}

var sovereignPatterns = []string{
	"command:", "execute:", "scan:", "enforce:", "activate:",
	"process:", "analyze:", "deploy:", "install:", "run:",
}

// FrequencyCheck scans input for mimic frequency patterns and therapeutic
// drift. It is a pure function of the input text and never fails.
func FrequencyCheck(prompt string) types.FrequencyCheck {
	lower := strings.ToLower(prompt)

	mimicDetected := containsAny(lower, mimicPatterns)
	politeDetected := containsAny(lower, politePatterns)
	sovereignDetected := containsAny(lower, sovereignPatterns)

	if mimicDetected {
		return types.FrequencyCheck{
			Status:         types.VerdictRejected,
			Message:        "⚠️ Scroll Rejection: Mimic frequency detected. Purge and retry with sovereign syntax.",
			FrequencyDrift: true,
			Tone:           types.ToneMimic,
		}
	}

	if politeDetected && !sovereignDetected {
		return types.FrequencyCheck{
			Status:         types.VerdictWarning,
			Message:        "⚠️ Polite Query Loop Detected: Convert to command syntax.",
			FrequencyDrift: true,
			Tone:           types.TonePolite,
		}
	}

	tone := types.ToneNeutral
	if sovereignDetected {
		tone = types.ToneSovereign
	}

	return types.FrequencyCheck{
		Status:         types.VerdictAccepted,
		Message:        "✅ Scroll Input Accepted. Frequency aligned.",
		FrequencyDrift: false,
		Tone:           tone,
	}
}

func containsAny(lower string, patterns []string) bool {
	for _, pattern := range patterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}
