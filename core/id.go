package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a compact identifier derived from text content.
// The search core uses it to key per-query history buckets so that the
// full query text never becomes part of a storage key.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}
