package core

import "time"

// ValuedRecord pairs an entry identity with the number of times it was
// selected for a given query. The history store returns these when a
// query has been made before.
type ValuedRecord struct {
	Record string
	Value  int
}

// FavRecord marks an entry identity as pinned by the user.
type FavRecord struct {
	Record  string
	AddedAt time.Time
}
