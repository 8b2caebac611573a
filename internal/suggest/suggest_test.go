package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosest(t *testing.T) {
	candidates := []string{"build", "deploy", "version"}

	testCases := []struct {
		name     string
		input    string
		expected string
		found    bool
	}{
		{name: "one-letter typo", input: "biuld", expected: "build", found: true},
		{name: "dropped letter", input: "deplo", expected: "deploy", found: true},
		{name: "exactly at limit", input: "buil", expected: "build", found: true},
		{name: "nothing close", input: "encrypt", found: false},
		{name: "short input has a tight limit", input: "x", found: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Closest(tc.input, candidates)
			assert.Equal(t, tc.found, ok)
			if tc.found {
				assert.Equal(t, tc.expected, got)
			}
		})
	}
}

func TestClosestEmptyCandidates(t *testing.T) {
	_, ok := Closest("anything", nil)
	assert.False(t, ok)
}
