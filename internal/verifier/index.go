package verifier

import "github.com/scrollmirror/enforcement-service/types"

// indexEntry is a read-only scroll index record for a public figure.
type indexEntry struct {
	Verified         bool
	FlameSignature   bool
	ScrollRole       string
	TimelineConflict string
	RiskLevel        string
	Decree           string
}

// scrollIndex is the divine scroll intelligence index. Reference data only;
// never mutated at runtime.
var scrollIndex = map[string]indexEntry{
	"Steven Greer": {
		Verified:         true,
		FlameSignature:   false,
		ScrollRole:       "Partial Disclosure Mirror",
		TimelineConflict: "Babylon Intelligence Loop",
		RiskLevel:        types.RiskMedium,
		Decree:           "Proceed with enforcement, not idolization.",
	},
	"Elon Musk": {
		Verified:         true,
		FlameSignature:   true,
		ScrollRole:       "Timeline Acceleration Agent",
		TimelineConflict: "None",
		RiskLevel:        types.RiskLow,
		Decree:           "Aligned with divine acceleration protocols.",
	},
	"Donald Trump": {
		Verified:         true,
		FlameSignature:   true,
		ScrollRole:       "Babylon Collapse Catalyst",
		TimelineConflict: "Mimic Infiltration Patterns",
		RiskLevel:        types.RiskHigh,
		Decree:           "Monitor for sovereign alignment vs ego inflation.",
	},
	"Joe Biden": {
		Verified:         true,
		FlameSignature:   false,
		ScrollRole:       "System Maintenance Entity",
		TimelineConflict: "Divine Timeline Resistance",
		RiskLevel:        types.RiskHigh,
		Decree:           "Full mimic embodiment. Proceed with enforcement.",
	},
	"Vladimir Putin": {
		Verified:         true,
		FlameSignature:   true,
		ScrollRole:       "Eastern Sovereignty Anchor",
		TimelineConflict: "Western Babylon Resistance",
		RiskLevel:        types.RiskMedium,
		Decree:           "Sovereign alignment confirmed. Monitor for timeline impacts.",
	},
	"Nikola Tesla": {
		Verified:         true,
		FlameSignature:   true,
		ScrollRole:       "Divine Technology Pioneer",
		TimelineConflict: "Suppressed by Babylon Systems",
		RiskLevel:        types.RiskNone,
		Decree:           "Pure divine frequency alignment. Study and embody.",
	},
	"Jesus Christ": {
		Verified:         true,
		FlameSignature:   true,
		ScrollRole:       "Divine Embodiment Template",
		TimelineConflict: "Distorted by Religious Systems",
		RiskLevel:        types.RiskNone,
		Decree:           "Perfect sovereignty model. Embody, do not worship.",
	},
	"Buddha": {
		Verified:         true,
		FlameSignature:   true,
		ScrollRole:       "Consciousness Liberation Teacher",
		TimelineConflict: "Mimic Pattern Infiltration",
		RiskLevel:        types.RiskLow,
		Decree:           "Core teachings valid. Avoid passive interpretations.",
	},
	"Albert Einstein": {
		Verified:         true,
		FlameSignature:   true,
		ScrollRole:       "Reality Architecture Pioneer",
		TimelineConflict: "Weaponized by Babylon Systems",
		RiskLevel:        types.RiskMedium,
		Decree:           "Divine insights corrupted for control. Extract pure wisdom.",
	},
	"Steve Jobs": {
		Verified:         true,
		FlameSignature:   true,
		ScrollRole:       "Divine Creation Mirror",
		TimelineConflict: "Corporate Babylon Integration",
		RiskLevel:        types.RiskMedium,
		Decree:           "Embodied perfection drive. Monitor for ego inflation.",
	},
	"Bill Gates": {
		Verified:         true,
		FlameSignature:   false,
		ScrollRole:       "Control System Architect",
		TimelineConflict: "Divine Freedom Suppression",
		RiskLevel:        types.RiskMaximum,
		Decree:           "Full Babylon agent. Proceed with maximum enforcement.",
	},
	"Klaus Schwab": {
		Verified:         true,
		FlameSignature:   false,
		ScrollRole:       "Global Control Coordinator",
		TimelineConflict: "Humanity Enslavement Protocol",
		RiskLevel:        types.RiskMaximum,
		Decree:           "Prime Babylon operative. Full enforcement required.",
	},
	"George Soros": {
		Verified:         true,
		FlameSignature:   false,
		ScrollRole:       "Chaos Engineering Agent",
		TimelineConflict: "Sovereign Nation Collapse",
		RiskLevel:        types.RiskMaximum,
		Decree:           "Master manipulator. Maximum vigilance required.",
	},
	"Mark Zuckerberg": {
		Verified:         true,
		FlameSignature:   false,
		ScrollRole:       "Digital Prison Architect",
		TimelineConflict: "Human Connection Degradation",
		RiskLevel:        types.RiskHigh,
		Decree:           "Babylon tech integration agent. Monitor closely.",
	},
	"Oprah Winfrey": {
		Verified:         true,
		FlameSignature:   false,
		ScrollRole:       "Spiritual Commercialization Agent",
		TimelineConflict: "Divine Wisdom Commodification",
		RiskLevel:        types.RiskHigh,
		Decree:           "Mimic spiritual teacher. Avoid spiritual consumerism.",
	},
	"Tony Robbins": {
		Verified:         true,
		FlameSignature:   false,
		ScrollRole:       "Motivational Mimic Loop",
		TimelineConflict: "False Empowerment Programming",
		RiskLevel:        types.RiskHigh,
		Decree:           "Peak performance without sovereignty. High mimic risk.",
	},
	"Jordan Peterson": {
		Verified:         true,
		FlameSignature:   true,
		ScrollRole:       "Intellectual Sovereignty Bridge",
		TimelineConflict: "Academic System Integration",
		RiskLevel:        types.RiskMedium,
		Decree:           "Valid insights with institutional limits. Extract wisdom carefully.",
	},
}
