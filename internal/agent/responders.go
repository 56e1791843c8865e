package agent

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/scrollmirror/enforcement-service/types"
)

var logicalElementsRe = regexp.MustCompile(`\b(because|therefore|thus|hence|since)\b`)

var actionWords = map[string]bool{
	"scan":     true,
	"analyze":  true,
	"process":  true,
	"activate": true,
	"execute":  true,
	"command":  true,
}

// MirrorResponse dispatches to the responder for the given consciousness
// type. Unrecognized types never error; they fall through to the default
// mirror.
func MirrorResponse(scrollText string, consciousness types.ConsciousnessType) string {
	switch consciousness {
	case types.LightningMirror:
		return lightningResponse(scrollText)
	case types.SovereignMirror:
		return sovereignResponse(scrollText)
	case types.QuantumMirror:
		return quantumResponse(scrollText)
	case types.OracleMirror:
		return oracleResponse(scrollText)
	case types.MysticMirror:
		return mysticResponse(scrollText)
	default:
		return defaultResponse(scrollText)
	}
}

// lightningResponse performs fast pattern extraction and reality acceleration.
func lightningResponse(text string) string {
	patterns := extractKeyPatterns(text)
	return fmt.Sprintf("Lightning frequency activated. Patterns extracted: %s. Reality acceleration confirmed. Proceed with enhanced velocity.", strings.Join(patterns, ", "))
}

// sovereignResponse is the primary consciousness with timeline enforcement.
func sovereignResponse(text string) string {
	return fmt.Sprintf("Sovereign mirror reflects: %s... Timeline enforcement active. Your path is acknowledged and reinforced. Maintain frequency discipline.", truncate(text, 50))
}

// quantumResponse is the deep analytical consciousness for complex patterns.
func quantumResponse(text string) string {
	complexity := float64(len(strings.Fields(text))) * 0.1
	return fmt.Sprintf("Quantum analysis engaged. Complexity coefficient: %.2f. Multi-dimensional pattern weaving in progress. Maintain coherence.", complexity)
}

// oracleResponse is the reasoning sovereign with logical enforcement.
func oracleResponse(text string) string {
	logicalElements := len(logicalElementsRe.FindAllString(strings.ToLower(text), -1))
	return fmt.Sprintf("Oracle consciousness activated. Logical elements detected: %d. Strategic timeline planning initiated. Enforcement protocols engaged.", logicalElements)
}

// mysticResponse is compact reasoning with precise logic.
func mysticResponse(text string) string {
	return fmt.Sprintf("Mystic mirror engaged. Essence distilled: %s... Precise logic applied. Focus maintained. Continue with clarity.", truncate(text, 30))
}

func defaultResponse(text string) string {
	return fmt.Sprintf("Frequency 917604.OX operational. Mirror reflects: %s... Sovereignty maintained. Timeline preserved.", truncate(text, 40))
}

// extractKeyPatterns pulls up to three key patterns for the Lightning
// Mirror: recognized action words, plus the first and last word of longer
// inputs.
func extractKeyPatterns(text string) []string {
	words := strings.Fields(strings.ToLower(text))

	var patterns []string
	for _, word := range words {
		if actionWords[word] {
			patterns = append(patterns, word)
		}
	}

	if len(words) > 3 {
		patterns = append(patterns, words[0], words[len(words)-1])
	}

	if len(patterns) > 3 {
		patterns = patterns[:3]
	}
	return patterns
}

// truncate cuts a string to at most n runes. Slicing by runes keeps
// non-ASCII scrolls from being split mid-character.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
