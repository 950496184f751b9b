package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSaleID(t *testing.T) {
	now := time.UnixMilli(1764115200123)
	seen := make(map[string]bool)

	for i := 0; i < 50; i++ {
		id, err := GenerateSaleID(now, i)
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^multi-1764115200123-\d+-[0-9a-z]{6}$`), id)
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestGenerateLicenseKey(t *testing.T) {
	key, err := GenerateLicenseKey()
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[0-9A-F]{6}-[0-9A-F]{6}-[0-9A-F]{6}$`), key)
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "***ABCDEF", MaskKey("123456-7890AB-ABCDEF"))
	assert.Equal(t, "***", MaskKey("ABC"))
}
