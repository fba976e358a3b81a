package searcher

import "github.com/poiesic/quicklaunch/core"

// Consumer is the UI side of a search session. The session holds it as
// a non-owning handle: Live is consulted before every delivery, and a
// consumer that reports dead is treated as a silent cancellation, never
// as an error.
//
// DisplayResults is only invoked from the dispatcher goroutine, with
// entries ordered best-first under the session's ordering contract.
type Consumer interface {
	Live() bool
	DisplayResults(session uint64, entries []core.Entry)
}
