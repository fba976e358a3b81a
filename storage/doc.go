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


// Package storage provides the storage abstraction layer for the
// launcher search core.
//
// This package defines repository interfaces that decouple storage
// implementation from the search logic. The ranking core consumes
// history as a read-only lookup loaded once per session; favorites are
// consumed by the popup-menu logic outside the core. Public
// constructors in backend packages return these interfaces so consumers
// never couple to BadgerDB specifics and tests can substitute mocks.
package storage
