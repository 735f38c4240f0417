package txsign

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Payload is the data field of a transaction, given as hex text or raw
// bytes. The zero value is an empty payload.
type Payload struct {
	hex   string
	raw   []byte
	isHex bool
}

// PayloadHex parses s lazily as hex with an optional 0x prefix. An odd
// number of digits is left-padded with a zero nibble, so "0" is the single
// byte 0x00.
func PayloadHex(s string) Payload {
	return Payload{hex: s, isHex: true}
}

// PayloadBytes copies b as the payload.
func PayloadBytes(b []byte) Payload {
	return Payload{raw: append([]byte{}, b...)}
}

// Bytes returns the decoded payload.
func (p Payload) Bytes() ([]byte, error) {
	if !p.isHex {
		return append([]byte{}, p.raw...), nil
	}
	digits, _ := cutHexPrefix(p.hex)
	if digits == "" {
		return []byte{}, nil
	}
	if len(digits)%2 == 1 {
		digits = "0" + digits
	}
	b, err := hexutil.Decode("0x" + digits)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return b, nil
}
