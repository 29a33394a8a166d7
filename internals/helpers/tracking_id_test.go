package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTrackingID_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := GenerateTrackingID()
		require.Len(t, id, TrackingIDLength)
		for _, r := range id {
			assert.True(t, strings.ContainsRune(trackingIDAlphabet, r), "karakter di luar alfabet: %q", r)
		}
	}
}

func TestGenerateTrackingID_Unique(t *testing.T) {
	const n = 10000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := GenerateTrackingID()
		_, dup := seen[id]
		require.False(t, dup, "tracking id tabrakan: %s", id)
		seen[id] = struct{}{}
	}
}

func TestLooksLikeTrackingID(t *testing.T) {
	assert.True(t, LooksLikeTrackingID("abcDEF1234567890ghij"))
	assert.True(t, LooksLikeTrackingID(GenerateTrackingID()))

	assert.False(t, LooksLikeTrackingID(""))
	assert.False(t, LooksLikeTrackingID("short"))
	assert.False(t, LooksLikeTrackingID("abcDEF1234567890ghi"))   // 19
	assert.False(t, LooksLikeTrackingID("abcDEF1234567890ghijk")) // 21
	assert.False(t, LooksLikeTrackingID("abcDEF1234567890ghi-"))  // non-alnum
	assert.False(t, LooksLikeTrackingID("ext1"))                  // external id biasa
}
