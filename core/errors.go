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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidEntry indicates an entry failed validation.
	ErrInvalidEntry = errors.New("invalid entry")

	// ErrEmptyID indicates an entry identity is empty.
	ErrEmptyID = errors.New("entry id cannot be empty")

	// ErrMissingScheme indicates an entry identity has no provider scheme prefix.
	ErrMissingScheme = errors.New("entry id must carry a provider scheme")

	// ErrNoLaunchAction indicates a launch was attempted on an entry kind
	// without a defined launch action.
	ErrNoLaunchAction = errors.New("no launch action defined")
)
