package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDataURL(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "jpeg prefix is rewritten to png",
			input:    "data:image/jpeg;base64,AAAA",
			expected: "data:image/png;base64,AAAA",
		},
		{
			name:     "png prefix stays png",
			input:    "data:image/png;base64,AAAA",
			expected: "data:image/png;base64,AAAA",
		},
		{
			name:     "webp prefix is rewritten to png",
			input:    "data:image/webp;base64,Zm9v",
			expected: "data:image/png;base64,Zm9v",
		},
		{
			name:     "raw base64 gets a png prefix",
			input:    "AAAA",
			expected: "data:image/png;base64,AAAA",
		},
		{
			name:     "prefix is only stripped at the start",
			input:    "AAAAdata:image/jpeg;base64,BBBB",
			expected: "data:image/png;base64,AAAAdata:image/jpeg;base64,BBBB",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeDataURL(tc.input))
		})
	}
}
