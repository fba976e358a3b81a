// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package searcher runs search sessions: it coordinates provider
// enumeration, scoring, history boosting, deduplication and a bounded
// best-of-N working set, and delivers live snapshots of that set to a
// UI consumer while the search is still running.
//
// A session runs its enumeration phase on a background goroutine and
// never touches UI-owned state directly: snapshots are handed to a
// Dispatcher, a single-goroutine delivery queue that drops deliveries
// from sessions that are no longer current. Cancellation is
// cooperative, idempotent, and keyed by session identity so a stale
// delivery can never reach the consumer after its session was replaced.
package searcher
