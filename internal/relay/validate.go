package relay

import "strings"

// equipmentEvidence is the fixed vocabulary of labels that mark a photo
// as plausibly showing equipment-identifying content. Any single match
// is sufficient; there is no weighting or count threshold.
var equipmentEvidence = map[string]struct{}{
	"label":             {},
	"nameplate":         {},
	"signage":           {},
	"material property": {},
}

// ValidLabels reports whether the label set intersects the equipment
// evidence vocabulary, case-insensitively. This gate rejects photos of
// non-equipment subjects before a language-model call is spent on them.
// An empty or nil label set is rejected.
func ValidLabels(labels []string) bool {
	for _, l := range labels {
		if _, ok := equipmentEvidence[strings.ToLower(strings.TrimSpace(l))]; ok {
			return true
		}
	}
	return false
}
