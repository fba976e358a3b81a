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


// Package core defines the domain model for the launcher search system.
//
// The central type is Entry, the polymorphic unit being searched. Each
// entry carries a globally unique identity, a display name, a derived
// NormalizedName used for matching and highlighting, and a relevance
// score that is only meaningful within the search session that set it.
//
// Optional behaviors of concrete entry kinds (tag membership, launch
// actions) are expressed as capability interfaces probed with type
// assertions rather than concrete type checks.
package core
