package relay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidLabels(t *testing.T) {
	testCases := []struct {
		name   string
		labels []string
		want   bool
	}{
		{"nameplate alone", []string{"nameplate"}, true},
		{"evidence among noise", []string{"building", "nameplate", "wall"}, true},
		{"signage", []string{"signage"}, true},
		{"label", []string{"label"}, true},
		{"material property", []string{"material property"}, true},
		{"mixed case", []string{"NamePlate"}, true},
		{"surrounding whitespace", []string{"  signage  "}, true},
		{"scenery only", []string{"tree", "sky"}, false},
		{"people", []string{"person", "smile"}, false},
		{"substring is not a match", []string{"nameplates", "labeling"}, false},
		{"empty set", []string{}, false},
		{"nil set", nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidLabels(tc.labels))
		})
	}
}
