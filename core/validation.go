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

import (
	"fmt"
	"strings"
)

// ValidateEntry validates an entry according to domain rules.
//
// Validation rules:
//   - ID must not be empty
//   - ID must carry a provider scheme ("app://", "contact://", ...)
//
// NOT validated (session-owned, transient):
//   - relevance and its provenance
//   - normalized name (nil is a valid "not searchable" state)
func ValidateEntry(e Entry) error {
	if e == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidEntry)
	}
	if e.ID() == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrEmptyID)
	}
	if !strings.Contains(e.ID(), "://") {
		return fmt.Errorf("%w: %w: %q", ErrInvalidEntry, ErrMissingScheme, e.ID())
	}
	return nil
}
