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


package storage

import (
	"fmt"
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"

	"github.com/poiesic/quicklaunch/core"
)

// MarshalValuedRecord serializes a ValuedRecord to bytes.
func MarshalValuedRecord(record core.ValuedRecord) []byte {
	size := ord.String.Size(record.Record) + varint.Int.Size(record.Value)
	buf := make([]byte, size)
	n := ord.String.Marshal(record.Record, buf)
	varint.Int.Marshal(record.Value, buf[n:])
	return buf
}

// UnmarshalValuedRecord deserializes a ValuedRecord from bytes.
func UnmarshalValuedRecord(data []byte) (core.ValuedRecord, error) {
	var record core.ValuedRecord
	id, n, err := ord.String.Unmarshal(data)
	if err != nil {
		return record, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	value, _, err := varint.Int.Unmarshal(data[n:])
	if err != nil {
		return record, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	record.Record = id
	record.Value = value
	return record, nil
}

// MarshalFavRecord serializes a FavRecord to bytes.
func MarshalFavRecord(record core.FavRecord) []byte {
	added := record.AddedAt.UnixMicro()
	size := ord.String.Size(record.Record) + varint.Int64.Size(added)
	buf := make([]byte, size)
	n := ord.String.Marshal(record.Record, buf)
	varint.Int64.Marshal(added, buf[n:])
	return buf
}

// UnmarshalFavRecord deserializes a FavRecord from bytes.
func UnmarshalFavRecord(data []byte) (core.FavRecord, error) {
	var record core.FavRecord
	id, n, err := ord.String.Unmarshal(data)
	if err != nil {
		return record, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	added, _, err := varint.Int64.Unmarshal(data[n:])
	if err != nil {
		return record, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	record.Record = id
	record.AddedAt = time.UnixMicro(added).UTC()
	return record, nil
}
