package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expectErr bool
		expected  Shape
	}{
		{
			name:     "bare word is a command candidate",
			raw:      "build",
			expected: Shape{Raw: "build", DashCount: 0, Body: "build"},
		},
		{
			name:     "single short flag",
			raw:      "-v",
			expected: Shape{Raw: "-v", DashCount: 1, Body: "v"},
		},
		{
			name:     "short flag cluster",
			raw:      "-xvz",
			expected: Shape{Raw: "-xvz", DashCount: 1, Body: "xvz"},
		},
		{
			name:     "long option",
			raw:      "--verbose",
			expected: Shape{Raw: "--verbose", DashCount: 2, Body: "verbose"},
		},
		{
			name:     "value-looking word stays a command candidate",
			raw:      "out.txt",
			expected: Shape{Raw: "out.txt", DashCount: 0, Body: "out.txt"},
		},
		{
			name:      "three dashes",
			raw:       "---verbose",
			expectErr: true,
		},
		{
			name:      "lone dash",
			raw:       "-",
			expectErr: true,
		},
		{
			name:      "lone double dash",
			raw:       "--",
			expectErr: true,
		},
		{
			name:      "empty argument",
			raw:       "",
			expectErr: true,
		},
		{
			name:      "digit in short body",
			raw:       "-x1",
			expectErr: true,
		},
		{
			name:      "negative number is not a short option",
			raw:       "-5",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			shape, err := Classify(tc.raw)
			if tc.expectErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, shape)
		})
	}
}

func TestIsCluster(t *testing.T) {
	cluster, err := Classify("-xvz")
	require.NoError(t, err)
	assert.True(t, cluster.IsCluster())

	single, err := Classify("-v")
	require.NoError(t, err)
	assert.False(t, single.IsCluster())

	long, err := Classify("--xvz")
	require.NoError(t, err)
	assert.False(t, long.IsCluster())
}
