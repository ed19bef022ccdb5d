package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYMD(t *testing.T) {
	s := "2025-03-10"
	got, ok := ParseYMD(&s)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), got)

	_, ok = ParseYMD(nil)
	assert.False(t, ok)

	empty := ""
	_, ok = ParseYMD(&empty)
	assert.False(t, ok)

	bad := "3/10/25"
	_, ok = ParseYMD(&bad)
	assert.False(t, ok)

	// Normalized-but-impossible dates do not survive persistence parsing.
	impossible := "2025-13-40"
	_, ok = ParseYMD(&impossible)
	assert.False(t, ok)
}

func TestFormatYMD(t *testing.T) {
	assert.Equal(t, "", FormatYMD(nil))
	d := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-10", FormatYMD(&d))
}
