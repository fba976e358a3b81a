package searcher

import (
	"math"
	"strconv"
	"sync/atomic"

	"github.com/poiesic/quicklaunch/config"
)

// DefaultMaxResults caps the working set when the user setting is
// absent or malformed.
const DefaultMaxResults = 10

// maxResultCount caches the resolved setting for the process lifetime.
// 0 means unresolved.
var maxResultCount atomic.Int32

// MaxResultCount resolves the result cap from the user settings. The
// value is resolved once per process and cached; ClearMaxResultCountCache
// forces a re-resolution after a settings change. A malformed setting
// falls back to DefaultMaxResults rather than failing the session.
func MaxResultCount(settings *config.Settings) int {
	if v := maxResultCount.Load(); v > 0 {
		return int(v)
	}
	v := resolveMaxResultCount(settings)
	maxResultCount.Store(int32(v))
	return v
}

// ClearMaxResultCountCache discards the cached setting so the next
// session re-reads it. Safe to call from any goroutine.
func ClearMaxResultCountCache() {
	maxResultCount.Store(0)
}

func resolveMaxResultCount(settings *config.Settings) int {
	if settings == nil || settings.NumberOfDisplayElements == "" {
		return DefaultMaxResults
	}
	// Parse as float first so oversized values truncate instead of
	// failing outright.
	f, err := strconv.ParseFloat(settings.NumberOfDisplayElements, 64)
	if err != nil || math.IsNaN(f) || f < 1 {
		return DefaultMaxResults
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}
