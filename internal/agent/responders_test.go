package agent

import (
	"strings"
	"testing"

	"github.com/scrollmirror/enforcement-service/types"
)

func TestLightningResponseExtractsPatterns(t *testing.T) {
	response := MirrorResponse("scan the field and analyze everything now", types.LightningMirror)

	if !strings.Contains(response, "Lightning frequency activated") {
		t.Errorf("Expected lightning banner, got %q", response)
	}
	// Action words come first, then first/last word, capped at three.
	if !strings.Contains(response, "scan, analyze, scan") {
		t.Errorf("Expected extracted patterns 'scan, analyze, scan', got %q", response)
	}
}

func TestQuantumResponseComplexityCoefficient(t *testing.T) {
	// Five words at 0.1 each.
	response := MirrorResponse("one two three four five", types.QuantumMirror)

	if !strings.Contains(response, "Complexity coefficient: 0.50") {
		t.Errorf("Expected complexity coefficient 0.50, got %q", response)
	}
}

func TestOracleResponseCountsLogicalElements(t *testing.T) {
	response := MirrorResponse("It follows because therefore thus we proceed", types.OracleMirror)

	if !strings.Contains(response, "Logical elements detected: 3") {
		t.Errorf("Expected 3 logical elements, got %q", response)
	}
}

func TestSovereignResponseTruncates(t *testing.T) {
	long := strings.Repeat("x", 80)
	response := MirrorResponse(long, types.SovereignMirror)

	if !strings.Contains(response, strings.Repeat("x", 50)+"...") {
		t.Errorf("Expected 50-char truncation, got %q", response)
	}
	if strings.Contains(response, strings.Repeat("x", 51)) {
		t.Errorf("Expected no more than 50 chars of input, got %q", response)
	}
}

func TestMysticResponse(t *testing.T) {
	response := MirrorResponse("distill this essence", types.MysticMirror)

	if !strings.Contains(response, "Mystic mirror engaged") {
		t.Errorf("Expected mystic banner, got %q", response)
	}
}

func TestUnknownConsciousnessFallsThroughToDefault(t *testing.T) {
	response := MirrorResponse("any text at all", types.ConsciousnessType("Shadow Mirror"))

	if !strings.Contains(response, "Mirror reflects:") {
		t.Errorf("Expected default mirror response, got %q", response)
	}
}

func TestTruncateIsRuneSafe(t *testing.T) {
	// Multi-byte runes must not be split.
	got := truncate("ΔΔΔΔΔ", 3)
	if got != "ΔΔΔ" {
		t.Errorf("Expected ΔΔΔ, got %q", got)
	}
}
