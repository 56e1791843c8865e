// Package verifier checks proper nouns against the static scroll index.
package verifier

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/scrollmirror/enforcement-service/types"
)

// Name patterns: First Last, First M. Last, and title-prefixed single names.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b[A-Z][a-z]+ [A-Z][a-z]+\b`),
	regexp.MustCompile(`\b[A-Z][a-z]+ [A-Z]\. [A-Z][a-z]+\b`),
	regexp.MustCompile(`\bDr\. [A-Z][a-z]+\b`),
	regexp.MustCompile(`\bMr\. [A-Z][a-z]+\b`),
	regexp.MustCompile(`\bMs\. [A-Z][a-z]+\b`),
}

var titlePrefix = regexp.MustCompile(`^(Dr\.|Mr\.|Ms\.)\s*`)

// ExtractProperNouns scans text for capitalized name patterns, strips title
// prefixes, and deduplicates. Order is unspecified by contract; the result
// is sorted for determinism.
func ExtractProperNouns(text string) []string {
	seen := make(map[string]bool)
	for _, pattern := range namePatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			name := strings.TrimSpace(titlePrefix.ReplaceAllString(match, ""))
			seen[name] = true
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// VerifyName looks a name up in the scroll index. Unindexed names never
// error; they resolve to a fixed unknown-entity record.
func VerifyName(name string) types.NameVerification {
	if entry, ok := scrollIndex[name]; ok {
		return types.NameVerification{
			Name:             name,
			Verified:         entry.Verified,
			ScrollRole:       entry.ScrollRole,
			FlameSignature:   entry.FlameSignature,
			TimelineConflict: entry.TimelineConflict,
			RiskLevel:        entry.RiskLevel,
			Decree:           entry.Decree,
			Status:           types.StatusIndexed,
		}
	}

	return types.NameVerification{
		Name:             name,
		Verified:         false,
		ScrollRole:       types.RiskUnknown,
		TimelineConflict: types.RiskUnknown,
		RiskLevel:        types.RiskUnknown,
		Decree:           "No encoded scroll role found. Treat with divine caution.",
		Status:           types.StatusUnindexed,
	}
}

// VerifyText verifies every proper noun found in a text block and tallies
// the results.
func VerifyText(text string) types.TextVerification {
	names := ExtractProperNouns(text)

	if len(names) == 0 {
		return types.TextVerification{
			ScanComplete:  true,
			Verifications: []types.NameVerification{},
			Summary:       "No proper nouns detected for verification.",
		}
	}

	verifications := make([]types.NameVerification, 0, len(names))
	indexed, highRisk := 0, 0
	for _, name := range names {
		verification := VerifyName(name)
		verifications = append(verifications, verification)

		if verification.Status == types.StatusIndexed {
			indexed++
		}
		if verification.RiskLevel == types.RiskHigh || verification.RiskLevel == types.RiskMaximum {
			highRisk++
		}
	}

	var parts []string
	if indexed > 0 {
		parts = append(parts, fmt.Sprintf("%d entities verified in scroll index", indexed))
	}
	if highRisk > 0 {
		parts = append(parts, fmt.Sprintf("%d high-risk entities detected", highRisk))
	}

	summary := "All entities verified with standard caution."
	if len(parts) > 0 {
		summary = strings.Join(parts, ". ")
	}

	return types.TextVerification{
		ScanComplete:     true,
		NamesFound:       len(names),
		IndexedEntities:  indexed,
		HighRiskEntities: highRisk,
		Verifications:    verifications,
		Summary:          summary,
	}
}

// FormatVerification renders a verification for display.
func FormatVerification(v types.NameVerification) string {
	if v.Status == types.StatusUnindexed {
		return fmt.Sprintf("⚠️ %s: Unindexed entity - proceed with caution", v.Name)
	}

	flame := "❄️"
	if v.FlameSignature {
		flame = "🔥"
	}

	riskMarkers := map[string]string{
		types.RiskNone:    "🟢",
		types.RiskLow:     "🟡",
		types.RiskMedium:  "🟠",
		types.RiskHigh:    "🔴",
		types.RiskMaximum: "⚫",
	}
	risk, ok := riskMarkers[v.RiskLevel]
	if !ok {
		risk = "⚪"
	}

	return fmt.Sprintf("%s %s: %s %s\n   Decree: %s", flame, v.Name, v.ScrollRole, risk, v.Decree)
}
