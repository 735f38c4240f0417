// Package rlp encodes and decodes flat lists of byte strings in the
// recursive length prefix format used by legacy Ethereum transactions.
//
// Encoding rules:
//   - a single byte below 0x80 is its own encoding
//   - a string of up to 55 bytes is prefixed with 0x80+len
//   - a longer string is prefixed with 0xB7+len(len) and the big-endian len
//   - a list uses the same scheme with 0xC0 and 0xF7 over the concatenated
//     item encodings
//
// DecodeList is the exact inverse of EncodeList and rejects anything
// EncodeList cannot produce: nested lists, trailing bytes and non-minimal
// length prefixes.
package rlp

import (
	"errors"
	"fmt"

	ethrlp "github.com/ethereum/go-ethereum/rlp"
)

// ErrDecode is wrapped by every decoding failure.
var ErrDecode = errors.New("malformed rlp")

// EncodeList returns the RLP encoding of items as a single list.
func EncodeList(items [][]byte) []byte {
	w := ethrlp.NewEncoderBuffer(nil)
	defer w.Flush()

	idx := w.List()
	for _, item := range items {
		w.WriteBytes(item)
	}
	w.ListEnd(idx)
	return w.ToBytes()
}

// EncodeString returns the RLP encoding of a single byte string.
func EncodeString(b []byte) []byte {
	w := ethrlp.NewEncoderBuffer(nil)
	defer w.Flush()

	w.WriteBytes(b)
	return w.ToBytes()
}

// DecodeList parses b as exactly one list of byte strings. Returned items
// are copies and do not alias b.
func DecodeList(b []byte) ([][]byte, error) {
	content, rest, err := ethrlp.SplitList(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after list", ErrDecode, len(rest))
	}

	items := make([][]byte, 0, 9)
	for i := 0; len(content) > 0; i++ {
		kind, val, tail, err := ethrlp.Split(content)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrDecode, i, err)
		}
		if kind == ethrlp.List {
			return nil, fmt.Errorf("%w: item %d is a list, want byte string", ErrDecode, i)
		}
		item := make([]byte, len(val))
		copy(item, val)
		items = append(items, item)
		content = tail
	}
	return items, nil
}
