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


// Package provider implements the data layer of the search core.
//
// A Provider owns a set of entries and streams the ones matching a
// query into a Sink. The DataHandler fans a request out to every
// registered provider concurrently; a failing provider is logged and
// isolated, it never aborts results already accepted from the others.
package provider
