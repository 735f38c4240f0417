package txsign

import (
	"fmt"

	"github.com/erc7824/nitrolite/txsigner/pkg/rlp"
)

const (
	// FieldCount is the number of fields of a signed legacy transaction.
	FieldCount = 9
	// UnsignedFieldCount is the number of fields covered by the signature.
	UnsignedFieldCount = 6
)

// Field indexes into Fields.
const (
	FieldNonce = iota
	FieldGasPrice
	FieldGasLimit
	FieldTo
	FieldValue
	FieldData
	FieldV
	FieldR
	FieldS
)

var fieldNames = [FieldCount]string{"nonce", "gasPrice", "gasLimit", "to", "value", "data", "v", "r", "s"}

// FieldName returns the input key of field i, or "" when i is out of range.
func FieldName(i int) string {
	if i < 0 || i >= FieldCount {
		return ""
	}
	return fieldNames[i]
}

// IsNumeric reports whether field i holds a big-endian integer.
func IsNumeric(i int) bool {
	switch i {
	case FieldNonce, FieldGasPrice, FieldGasLimit, FieldValue, FieldV:
		return true
	default:
		return false
	}
}

// Fields holds the canonical byte strings of a legacy transaction in wire
// order. Numeric fields are minimal big-endian, zero being the empty string.
type Fields [FieldCount][]byte

// Unsigned returns the six fields covered by the signature.
func (f Fields) Unsigned() [][]byte {
	return f[:UnsignedFieldCount]
}

// EncodeUnsigned returns the RLP list of the six unsigned fields. Its
// Keccak-256 hash is the digest that gets signed.
func (f Fields) EncodeUnsigned() []byte {
	return rlp.EncodeList(f.Unsigned())
}

// Encode returns the RLP list of all nine fields.
func (f Fields) Encode() []byte {
	return rlp.EncodeList(f[:])
}

// IsSigned reports whether any of v, r or s is set.
func (f Fields) IsSigned() bool {
	return len(f[FieldV]) > 0 || len(f[FieldR]) > 0 || len(f[FieldS]) > 0
}

// Clone returns a copy of f that shares no memory with it.
func (f Fields) Clone() Fields {
	var out Fields
	for i, b := range f {
		out[i] = append([]byte{}, b...)
	}
	return out
}

// DecodeFields parses an encoded transaction. Both the unsigned six-field
// form and the signed nine-field form are accepted; the trailing fields of
// the former are left empty.
func DecodeFields(b []byte) (Fields, error) {
	items, err := rlp.DecodeList(b)
	if err != nil {
		return Fields{}, err
	}
	if len(items) != UnsignedFieldCount && len(items) != FieldCount {
		return Fields{}, fmt.Errorf("%w: got %d fields, want %d or %d", ErrDecode, len(items), UnsignedFieldCount, FieldCount)
	}

	var f Fields
	copy(f[:], items)
	for i := len(items); i < FieldCount; i++ {
		f[i] = []byte{}
	}
	return f, nil
}
