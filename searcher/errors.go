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


package searcher

import "errors"

var (
	// ErrDataHandlerRequired is returned when a data handler is not provided.
	ErrDataHandlerRequired = errors.New("data handler required")

	// ErrHistoryRequired is returned when a history repository is not provided.
	ErrHistoryRequired = errors.New("history repository required")

	// ErrDispatcherRequired is returned when a dispatcher is not provided.
	ErrDispatcherRequired = errors.New("dispatcher required")
)
