package badger

import (
	"fmt"

	"github.com/poiesic/quicklaunch/core"
)

// Key prefixes for different data types
const (
	historyPrefix  = "histrec"
	favoritePrefix = "favrec"
)

// makeHistoryKey generates a key for a (query, entry) launch counter.
// The query is folded into a content hash so arbitrary query text never
// becomes part of a key. Format: prefix:queryID:entryID
func makeHistoryKey(queryID core.ID, entryID string) []byte {
	return []byte(fmt.Sprintf("%s:%016x:%s", historyPrefix, uint64(queryID), entryID))
}

// makePartialHistoryKey generates the prefix shared by every launch
// counter of one query, for iteration.
func makePartialHistoryKey(queryID core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%016x:", historyPrefix, uint64(queryID)))
}

// makeFavoriteKey generates a key for a pinned entry identity.
func makeFavoriteKey(entryID string) []byte {
	return []byte(fmt.Sprintf("%s:%s", favoritePrefix, entryID))
}
