package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFences(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{"bare text", `{"a": 1}`, `{"a": 1}`},
		{"plain fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"yaml fence", "```yaml\na: 1\n```", "a: 1"},
		{"surrounding whitespace", "  \n{\"a\": 1}\n ", `{"a": 1}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripCodeFences(tc.in))
		})
	}
}
